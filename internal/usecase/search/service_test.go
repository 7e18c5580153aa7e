package search

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/infrastructure/cache"
)

type fakeEmbeddingRepo struct {
	embeddings []entities.Embedding
	listErr    error
}

func (f *fakeEmbeddingRepo) Create(_ context.Context, _ *entities.Embedding) error {
	return nil
}

func (f *fakeEmbeddingRepo) ListWithTranscripts(_ context.Context) ([]entities.Embedding, error) {
	return f.embeddings, f.listErr
}

type fakeEmbedder struct {
	out   []float64
	err   error
	calls int
}

func (f *fakeEmbedder) Embed(_ context.Context, _ string) ([]float64, error) {
	f.calls++
	return f.out, f.err
}

func storedEmbedding(title string, v []float64) entities.Embedding {
	t := entities.NewTranscript("ext-"+title, title, time.Now(), 30, "text")
	e := entities.NewEmbedding(t.ID, v)
	e.Transcript = t
	return *e
}

func newTestService(repo *fakeEmbeddingRepo, embedder *fakeEmbedder) Service {
	return NewService(repo, embedder, cache.NewMemoryStore(), time.Hour, zap.NewNop())
}

func TestSearch_RanksByCosineSimilarity(t *testing.T) {
	repo := &fakeEmbeddingRepo{embeddings: []entities.Embedding{
		storedEmbedding("orthogonal", []float64{0, 1}),
		storedEmbedding("aligned", []float64{1, 0}),
		storedEmbedding("diagonal", []float64{1, 1}),
	}}
	embedder := &fakeEmbedder{out: []float64{1, 0}}

	matches, err := newTestService(repo, embedder).Search(context.Background(), "query")

	require.NoError(t, err)
	require.Len(t, matches, 3)
	assert.Equal(t, "aligned", matches[0].Transcript.Title)
	assert.Equal(t, "diagonal", matches[1].Transcript.Title)
	assert.Equal(t, "orthogonal", matches[2].Transcript.Title)
	assert.InDelta(t, 1.0, matches[0].Score, 1e-9)
	assert.InDelta(t, 0.0, matches[2].Score, 1e-9)
}

func TestSearch_TiesKeepStoredOrder(t *testing.T) {
	repo := &fakeEmbeddingRepo{embeddings: []entities.Embedding{
		storedEmbedding("first", []float64{1, 0}),
		storedEmbedding("second", []float64{2, 0}),
	}}
	embedder := &fakeEmbedder{out: []float64{1, 0}}

	matches, err := newTestService(repo, embedder).Search(context.Background(), "query")

	require.NoError(t, err)
	require.Len(t, matches, 2)
	// Both score 1.0; the earlier stored row must win the tie.
	assert.Equal(t, "first", matches[0].Transcript.Title)
	assert.Equal(t, "second", matches[1].Transcript.Title)
}

func TestSearch_CapsResults(t *testing.T) {
	repo := &fakeEmbeddingRepo{}
	for i := 0; i < 8; i++ {
		repo.embeddings = append(repo.embeddings, storedEmbedding(fmt.Sprintf("t%d", i), []float64{1, float64(i)}))
	}
	embedder := &fakeEmbedder{out: []float64{1, 0}}

	matches, err := newTestService(repo, embedder).Search(context.Background(), "query")

	require.NoError(t, err)
	assert.Len(t, matches, resultLimit)
}

func TestSearch_SkipsEmbeddingsWithoutTranscript(t *testing.T) {
	orphan := *entities.NewEmbedding(entities.NewTranscript("x", "x", time.Now(), 1, "x").ID, []float64{1, 0})
	repo := &fakeEmbeddingRepo{embeddings: []entities.Embedding{
		orphan,
		storedEmbedding("kept", []float64{1, 0}),
	}}
	embedder := &fakeEmbedder{out: []float64{1, 0}}

	matches, err := newTestService(repo, embedder).Search(context.Background(), "query")

	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "kept", matches[0].Transcript.Title)
}

func TestSearch_EmptyCorpus(t *testing.T) {
	embedder := &fakeEmbedder{out: []float64{1, 0}}

	matches, err := newTestService(&fakeEmbeddingRepo{}, embedder).Search(context.Background(), "query")

	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestSearch_CachesQueryEmbedding(t *testing.T) {
	repo := &fakeEmbeddingRepo{embeddings: []entities.Embedding{
		storedEmbedding("only", []float64{1, 0}),
	}}
	embedder := &fakeEmbedder{out: []float64{1, 0}}
	svc := newTestService(repo, embedder)

	_, err := svc.Search(context.Background(), "same query")
	require.NoError(t, err)
	_, err = svc.Search(context.Background(), "same query")
	require.NoError(t, err)

	assert.Equal(t, 1, embedder.calls)
}

func TestSearch_EmbedderFailure(t *testing.T) {
	embedder := &fakeEmbedder{err: errors.New("down")}

	_, err := newTestService(&fakeEmbeddingRepo{}, embedder).Search(context.Background(), "query")

	require.Error(t, err)
}

package search

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/meeting-insights/errors"
	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/domain/repositories"
	"github.com/johnquangdev/meeting-insights/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-insights/pkg/ai"
	"github.com/johnquangdev/meeting-insights/pkg/vector"
)

// resultLimit caps how many matches a search returns
const resultLimit = 5

const cacheKeyPrefix = "search:embedding:"

// Match pairs a transcript with its similarity to the query
type Match struct {
	Transcript *entities.Transcript
	Score      float64
}

// Service answers free-text queries over the transcript corpus
type Service interface {
	Search(ctx context.Context, query string) ([]Match, error)
}

type searchService struct {
	embeddingRepo repositories.EmbeddingRepository
	embedder      ai.Embedder
	store         cache.Store
	cacheTTL      time.Duration
	logger        *zap.Logger
}

// NewService constructs the retrieval service
func NewService(
	embeddingRepo repositories.EmbeddingRepository,
	embedder ai.Embedder,
	store cache.Store,
	cacheTTL time.Duration,
	logger *zap.Logger,
) Service {
	return &searchService{
		embeddingRepo: embeddingRepo,
		embedder:      embedder,
		store:         store,
		cacheTTL:      cacheTTL,
		logger:        logger,
	}
}

// Search embeds the query, scores it against every stored embedding and
// returns the top matches in descending similarity. Equal scores keep the
// stored order, so repeated queries over an unchanged corpus rank
// identically every time.
func (s *searchService) Search(ctx context.Context, query string) ([]Match, error) {
	queryVector, err := s.queryVector(ctx, query)
	if err != nil {
		return nil, apperrors.ErrEmbeddingFailed(err)
	}

	embeddings, err := s.embeddingRepo.ListWithTranscripts(ctx)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}

	matches := make([]Match, 0, len(embeddings))
	for i := range embeddings {
		if embeddings[i].Transcript == nil {
			continue
		}
		matches = append(matches, Match{
			Transcript: embeddings[i].Transcript,
			Score:      vector.Cosine(queryVector, embeddings[i].Vector),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > resultLimit {
		matches = matches[:resultLimit]
	}
	return matches, nil
}

// queryVector embeds the query text, going through the cache so repeated
// queries skip the embedding call. Cache failures are logged and ignored.
func (s *searchService) queryVector(ctx context.Context, query string) ([]float64, error) {
	key := cacheKey(query)

	if cached, ok, err := s.store.Get(ctx, key); err != nil {
		s.logger.Warn("embedding cache read failed", zap.Error(err))
	} else if ok {
		var v []float64
		if err := json.Unmarshal([]byte(cached), &v); err == nil {
			return v, nil
		}
		s.logger.Warn("discarding undecodable cached embedding", zap.String("key", key))
	}

	v, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(v); err == nil {
		if err := s.store.Set(ctx, key, string(encoded), s.cacheTTL); err != nil {
			s.logger.Warn("embedding cache write failed", zap.Error(err))
		}
	}
	return v, nil
}

func cacheKey(query string) string {
	sum := sha256.Sum256([]byte(query))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}

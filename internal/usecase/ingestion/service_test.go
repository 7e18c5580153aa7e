package ingestion

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	apperrors "github.com/johnquangdev/meeting-insights/errors"
	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/domain/repositories"
)

type fakeTranscriptRepo struct {
	byExternalID map[string]*entities.Transcript
	created      []*entities.Transcript
	createErr    error
	raceWinner   *entities.Transcript
	stages       map[uuid.UUID]entities.IngestStage
	summaries    map[uuid.UUID]string
}

func newFakeTranscriptRepo() *fakeTranscriptRepo {
	return &fakeTranscriptRepo{
		byExternalID: make(map[string]*entities.Transcript),
		stages:       make(map[uuid.UUID]entities.IngestStage),
		summaries:    make(map[uuid.UUID]string),
	}
}

func (f *fakeTranscriptRepo) Create(_ context.Context, t *entities.Transcript) error {
	if f.createErr != nil {
		if f.raceWinner != nil {
			f.byExternalID[f.raceWinner.ExternalID] = f.raceWinner
		}
		return f.createErr
	}
	if _, ok := f.byExternalID[t.ExternalID]; ok {
		return gorm.ErrDuplicatedKey
	}
	f.byExternalID[t.ExternalID] = t
	f.created = append(f.created, t)
	f.stages[t.ID] = entities.StageCreated
	return nil
}

func (f *fakeTranscriptRepo) FindByExternalID(_ context.Context, externalID string) (*entities.Transcript, error) {
	return f.byExternalID[externalID], nil
}

func (f *fakeTranscriptRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.Transcript, error) {
	for _, t := range f.byExternalID {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (f *fakeTranscriptRepo) List(_ context.Context) ([]entities.Transcript, error) {
	return nil, nil
}

func (f *fakeTranscriptRepo) UpdateSummary(_ context.Context, id uuid.UUID, summary string, stage entities.IngestStage) error {
	f.summaries[id] = summary
	f.stages[id] = stage
	return nil
}

func (f *fakeTranscriptRepo) SetStage(_ context.Context, id uuid.UUID, stage entities.IngestStage) error {
	f.stages[id] = stage
	return nil
}

func (f *fakeTranscriptRepo) TopicFrequencies(_ context.Context) ([]repositories.TopicCount, error) {
	return nil, nil
}

func (f *fakeTranscriptRepo) SentimentPoints(_ context.Context) ([]repositories.SentimentPoint, error) {
	return nil, nil
}

type fakeParticipantRepo struct {
	byEmail map[string]*entities.Participant
	links   map[string]int
	upserts int
}

func newFakeParticipantRepo() *fakeParticipantRepo {
	return &fakeParticipantRepo{
		byEmail: make(map[string]*entities.Participant),
		links:   make(map[string]int),
	}
}

func (f *fakeParticipantRepo) UpsertByEmail(_ context.Context, p *entities.Participant) error {
	f.upserts++
	if _, ok := f.byEmail[p.Email]; !ok {
		f.byEmail[p.Email] = p
	}
	return nil
}

func (f *fakeParticipantRepo) FindByEmail(_ context.Context, email string) (*entities.Participant, error) {
	return f.byEmail[email], nil
}

func (f *fakeParticipantRepo) Link(_ context.Context, participantID, transcriptID uuid.UUID) error {
	key := participantID.String() + "/" + transcriptID.String()
	f.links[key]++
	return nil
}

func (f *fakeParticipantRepo) ListWithTranscripts(_ context.Context) ([]entities.Participant, error) {
	return nil, nil
}

func (f *fakeParticipantRepo) ListWithTranscriptTopics(_ context.Context) ([]entities.Participant, error) {
	return nil, nil
}

type fakeEmbeddingRepo struct {
	stored []*entities.Embedding
}

func (f *fakeEmbeddingRepo) Create(_ context.Context, e *entities.Embedding) error {
	f.stored = append(f.stored, e)
	return nil
}

func (f *fakeEmbeddingRepo) ListWithTranscripts(_ context.Context) ([]entities.Embedding, error) {
	return nil, nil
}

type fakeGateway struct {
	extractOut   string
	extractErr   error
	embedOut     []float64
	embedErr     error
	summaryOut   string
	summaryErr   error
	extractCalls int
	embedCalls   int
	summaryCalls int
}

func (f *fakeGateway) Extract(_ context.Context, _ string) (string, error) {
	f.extractCalls++
	return f.extractOut, f.extractErr
}

func (f *fakeGateway) Embed(_ context.Context, _ string) ([]float64, error) {
	f.embedCalls++
	return f.embedOut, f.embedErr
}

func (f *fakeGateway) Summarize(_ context.Context, _ string) (string, error) {
	f.summaryCalls++
	return f.summaryOut, f.summaryErr
}

func happyGateway() *fakeGateway {
	return &fakeGateway{
		extractOut: `{"topics":["roadmap"],"action_items":["send deck"],"decisions":["ship it"],"sentiment":"positive"}`,
		embedOut:   []float64{0.1, 0.2, 0.3},
		summaryOut: "The team agreed to ship.",
	}
}

func testInput() Input {
	return Input{
		TranscriptID:    "meet-001",
		Title:           "Planning sync",
		OccurredAt:      time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		DurationMinutes: 45,
		Transcript:      "Alice: let's ship. Bob: agreed.",
		Participants: []ParticipantInput{
			{Name: "Alice", Email: "alice@acme.com"},
			{Name: "Bob", Email: "bob@acme.com"},
		},
	}
}

func newTestService(tr *fakeTranscriptRepo, pr *fakeParticipantRepo, er *fakeEmbeddingRepo, gw *fakeGateway) Service {
	return NewService(tr, pr, er, gw, zap.NewNop())
}

func TestIngest_FullPipeline(t *testing.T) {
	tr := newFakeTranscriptRepo()
	pr := newFakeParticipantRepo()
	er := &fakeEmbeddingRepo{}
	gw := happyGateway()

	result, err := newTestService(tr, pr, er, gw).Ingest(context.Background(), testInput())

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.AlreadyExists)

	transcript := result.Transcript
	assert.Equal(t, entities.SentimentPositive, transcript.Sentiment)
	assert.Equal(t, entities.StageComplete, transcript.Stage)
	assert.Equal(t, entities.StageComplete, tr.stages[transcript.ID])
	require.NotNil(t, transcript.Summary)
	assert.Equal(t, "The team agreed to ship.", *transcript.Summary)
	assert.Len(t, transcript.Topics, 1)
	assert.Len(t, transcript.Participants, 2)
	require.Len(t, er.stored, 1)
	assert.Equal(t, transcript.ID, er.stored[0].TranscriptID)
	assert.Len(t, pr.links, 2)
}

func TestIngest_Idempotent(t *testing.T) {
	tr := newFakeTranscriptRepo()
	pr := newFakeParticipantRepo()
	er := &fakeEmbeddingRepo{}
	gw := happyGateway()
	svc := newTestService(tr, pr, er, gw)

	first, err := svc.Ingest(context.Background(), testInput())
	require.NoError(t, err)

	second, err := svc.Ingest(context.Background(), testInput())
	require.NoError(t, err)

	assert.True(t, second.AlreadyExists)
	assert.Equal(t, first.Transcript.ID, second.Transcript.ID)
	// The replay must not touch the gateway or stores again.
	assert.Equal(t, 1, gw.extractCalls)
	assert.Equal(t, 1, gw.embedCalls)
	assert.Len(t, er.stored, 1)
}

func TestIngest_ExtractionFailureDegradesGracefully(t *testing.T) {
	tr := newFakeTranscriptRepo()
	pr := newFakeParticipantRepo()
	er := &fakeEmbeddingRepo{}
	gw := happyGateway()
	gw.extractErr = errors.New("model unavailable")

	result, err := newTestService(tr, pr, er, gw).Ingest(context.Background(), testInput())

	require.NoError(t, err)
	assert.False(t, result.AlreadyExists)
	assert.Empty(t, result.Transcript.Topics)
	assert.Empty(t, result.Transcript.Actions)
	assert.Empty(t, result.Transcript.Decisions)
	assert.Equal(t, entities.SentimentNeutral, result.Transcript.Sentiment)
	assert.Equal(t, entities.StageComplete, result.Transcript.Stage)
}

func TestIngest_UndecodableExtractionDegradesGracefully(t *testing.T) {
	tr := newFakeTranscriptRepo()
	pr := newFakeParticipantRepo()
	er := &fakeEmbeddingRepo{}
	gw := happyGateway()
	gw.extractOut = "I cannot produce JSON today."

	result, err := newTestService(tr, pr, er, gw).Ingest(context.Background(), testInput())

	require.NoError(t, err)
	assert.Empty(t, result.Transcript.Topics)
	assert.Equal(t, entities.SentimentNeutral, result.Transcript.Sentiment)
}

func TestIngest_EmbeddingFailureLeavesTranscriptBehind(t *testing.T) {
	tr := newFakeTranscriptRepo()
	pr := newFakeParticipantRepo()
	er := &fakeEmbeddingRepo{}
	gw := happyGateway()
	gw.embedErr = errors.New("embedding service down")

	_, err := newTestService(tr, pr, er, gw).Ingest(context.Background(), testInput())

	require.Error(t, err)
	var appErr apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorCode_AI_EMBEDDING_FAILED, appErr.Code)

	// The transcript row survives, stranded at the created stage.
	require.Len(t, tr.created, 1)
	assert.Equal(t, entities.StageCreated, tr.stages[tr.created[0].ID])
	assert.Empty(t, er.stored)
	assert.Equal(t, 0, gw.summaryCalls)
}

func TestIngest_SummaryFailureLeavesEmbeddedStage(t *testing.T) {
	tr := newFakeTranscriptRepo()
	pr := newFakeParticipantRepo()
	er := &fakeEmbeddingRepo{}
	gw := happyGateway()
	gw.summaryErr = errors.New("summary service down")

	_, err := newTestService(tr, pr, er, gw).Ingest(context.Background(), testInput())

	require.Error(t, err)
	var appErr apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorCode_AI_SUMMARY_FAILED, appErr.Code)

	require.Len(t, tr.created, 1)
	assert.Equal(t, entities.StageEmbedded, tr.stages[tr.created[0].ID])
	assert.Len(t, er.stored, 1)
}

func TestIngest_DuplicateRaceReturnsWinner(t *testing.T) {
	tr := newFakeTranscriptRepo()
	pr := newFakeParticipantRepo()
	er := &fakeEmbeddingRepo{}
	gw := happyGateway()

	// The winner's row lands between our idempotency check and our insert.
	winner := entities.NewTranscript("meet-001", "Planning sync", time.Now(), 45, "text")
	tr.createErr = gorm.ErrDuplicatedKey
	tr.raceWinner = winner

	result, err := newTestService(tr, pr, er, gw).Ingest(context.Background(), testInput())

	require.NoError(t, err)
	assert.True(t, result.AlreadyExists)
	assert.Equal(t, winner.ID, result.Transcript.ID)
}

func TestIngest_DuplicateParticipantInRequestLinksOnce(t *testing.T) {
	tr := newFakeTranscriptRepo()
	pr := newFakeParticipantRepo()
	er := &fakeEmbeddingRepo{}
	gw := happyGateway()

	in := testInput()
	in.Participants = []ParticipantInput{
		{Name: "Alice", Email: "alice@acme.com"},
		{Name: "Alice B", Email: "alice@acme.com"},
	}

	result, err := newTestService(tr, pr, er, gw).Ingest(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, 1, pr.upserts)
	assert.Len(t, pr.links, 1)
	assert.Len(t, result.Transcript.Participants, 1)
	// The first spelling wins.
	assert.Equal(t, "Alice", result.Transcript.Participants[0].Name)
}

func TestIngest_SharedParticipantReusedAcrossTranscripts(t *testing.T) {
	tr := newFakeTranscriptRepo()
	pr := newFakeParticipantRepo()
	er := &fakeEmbeddingRepo{}
	gw := happyGateway()
	svc := newTestService(tr, pr, er, gw)

	first, err := svc.Ingest(context.Background(), testInput())
	require.NoError(t, err)

	in := testInput()
	in.TranscriptID = "meet-002"
	second, err := svc.Ingest(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, first.Transcript.Participants[0].ID, second.Transcript.Participants[0].ID)
	assert.Len(t, pr.byEmail, 2)
}

package ingestion

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	apperrors "github.com/johnquangdev/meeting-insights/errors"
	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/domain/repositories"
	"github.com/johnquangdev/meeting-insights/pkg/ai"
)

// ParticipantInput is one attendee of an ingested meeting
type ParticipantInput struct {
	Name  string
	Email string
	Role  *string
}

// Input is everything the pipeline needs to ingest one transcript
type Input struct {
	TranscriptID    string
	Title           string
	OccurredAt      time.Time
	DurationMinutes int
	Transcript      string
	Participants    []ParticipantInput
	Metadata        map[string]interface{}
}

// Result reports the outcome of an ingestion run
type Result struct {
	Transcript    *entities.Transcript
	AlreadyExists bool
}

// Service runs the ingestion pipeline
type Service interface {
	Ingest(ctx context.Context, in Input) (*Result, error)
}

type ingestService struct {
	transcriptRepo  repositories.TranscriptRepository
	participantRepo repositories.ParticipantRepository
	embeddingRepo   repositories.EmbeddingRepository
	gateway         ai.Gateway
	parser          *Parser
	logger          *zap.Logger
}

// NewService constructs the ingestion pipeline service
func NewService(
	transcriptRepo repositories.TranscriptRepository,
	participantRepo repositories.ParticipantRepository,
	embeddingRepo repositories.EmbeddingRepository,
	gateway ai.Gateway,
	logger *zap.Logger,
) Service {
	return &ingestService{
		transcriptRepo:  transcriptRepo,
		participantRepo: participantRepo,
		embeddingRepo:   embeddingRepo,
		gateway:         gateway,
		parser:          NewParser(),
		logger:          logger,
	}
}

// Ingest runs the pipeline stage by stage. Stages before the first AI call
// are cheap checks; once the transcript row exists, every later failure
// aborts the request but leaves the row behind with its stage marker telling
// how far processing got. Nothing retries a stranded transcript.
func (s *ingestService) Ingest(ctx context.Context, in Input) (*Result, error) {
	existing, err := s.transcriptRepo.FindByExternalID(ctx, in.TranscriptID)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	if existing != nil {
		s.logger.Info("transcript already ingested, skipping",
			zap.String("transcript_id", in.TranscriptID),
			zap.String("id", existing.ID.String()))
		return &Result{Transcript: existing, AlreadyExists: true}, nil
	}

	extraction := s.extract(ctx, in)

	transcript := entities.NewTranscript(in.TranscriptID, in.Title, in.OccurredAt, in.DurationMinutes, in.Transcript)
	transcript.Sentiment = extraction.Sentiment
	transcript.Metadata = in.Metadata
	for _, name := range extraction.Topics {
		transcript.Topics = append(transcript.Topics, entities.Topic{TranscriptID: transcript.ID, Name: name})
	}
	for _, text := range extraction.ActionItems {
		transcript.Actions = append(transcript.Actions, entities.ActionItem{TranscriptID: transcript.ID, Text: text})
	}
	for _, text := range extraction.Decisions {
		transcript.Decisions = append(transcript.Decisions, entities.Decision{TranscriptID: transcript.ID, Text: text})
	}

	if err := s.transcriptRepo.Create(ctx, transcript); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a race with a concurrent request for the same external id.
			// The winner's row is the canonical one.
			winner, ferr := s.transcriptRepo.FindByExternalID(ctx, in.TranscriptID)
			if ferr == nil && winner != nil {
				s.logger.Info("lost ingestion race, returning existing transcript",
					zap.String("transcript_id", in.TranscriptID))
				return &Result{Transcript: winner, AlreadyExists: true}, nil
			}
			return nil, apperrors.ErrAlreadyExists("Transcript")
		}
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	s.logger.Info("transcript created",
		zap.String("id", transcript.ID.String()),
		zap.Int("topics", len(transcript.Topics)),
		zap.Int("actions", len(transcript.Actions)),
		zap.Int("decisions", len(transcript.Decisions)))

	if err := s.resolveParticipants(ctx, transcript, in.Participants); err != nil {
		return nil, err
	}

	vector, err := s.gateway.Embed(ctx, in.Transcript)
	if err != nil {
		s.logger.Error("embedding generation failed",
			zap.String("id", transcript.ID.String()), zap.Error(err))
		return nil, apperrors.ErrEmbeddingFailed(err)
	}
	if err := s.embeddingRepo.Create(ctx, entities.NewEmbedding(transcript.ID, vector)); err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	if err := s.transcriptRepo.SetStage(ctx, transcript.ID, entities.StageEmbedded); err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	transcript.Stage = entities.StageEmbedded

	summary, err := s.gateway.Summarize(ctx, in.Transcript)
	if err != nil {
		s.logger.Error("summary generation failed",
			zap.String("id", transcript.ID.String()), zap.Error(err))
		return nil, apperrors.ErrSummaryFailed(err)
	}
	if err := s.transcriptRepo.UpdateSummary(ctx, transcript.ID, summary, entities.StageSummarized); err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	transcript.Summary = &summary
	transcript.Stage = entities.StageSummarized

	if err := s.transcriptRepo.SetStage(ctx, transcript.ID, entities.StageComplete); err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	transcript.Stage = entities.StageComplete

	s.logger.Info("ingestion complete", zap.String("id", transcript.ID.String()))
	return &Result{Transcript: transcript}, nil
}

// extract asks the gateway for structured entities and degrades to the
// empty/neutral extraction when the model is unreachable or returns output
// that does not decode. Ingestion proceeds either way.
func (s *ingestService) extract(ctx context.Context, in Input) *entities.Extraction {
	content, err := s.gateway.Extract(ctx, in.Transcript)
	if err != nil {
		s.logger.Warn("entity extraction failed, storing without entities",
			zap.String("transcript_id", in.TranscriptID), zap.Error(err))
		return entities.EmptyExtraction()
	}
	extraction, ok := s.parser.Parse(content)
	if !ok {
		s.logger.Warn("extraction output did not decode, storing without entities",
			zap.String("transcript_id", in.TranscriptID))
	}
	return extraction
}


package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

// TopicCount is a topic-frequency aggregation row
type TopicCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// SentimentPoint is a single transcript's contribution to the sentiment trend
type SentimentPoint struct {
	OccurredAt time.Time          `json:"occurred_at"`
	Sentiment  entities.Sentiment `json:"sentiment"`
}

// TranscriptRepository defines transcript persistence operations
type TranscriptRepository interface {
	// Create persists the transcript together with its topic/action/decision
	// children as one composite write.
	Create(ctx context.Context, transcript *entities.Transcript) error

	// FindByExternalID returns (nil, nil) when no transcript carries the
	// caller-supplied id.
	FindByExternalID(ctx context.Context, externalID string) (*entities.Transcript, error)

	// FindByID loads a transcript with its children and participants, or
	// (nil, nil) when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Transcript, error)

	// List returns all transcripts with children and participants.
	List(ctx context.Context) ([]entities.Transcript, error)

	// UpdateSummary attaches the summary text and advances the stage marker.
	UpdateSummary(ctx context.Context, id uuid.UUID, summary string, stage entities.IngestStage) error

	// SetStage advances the persisted ingest stage marker.
	SetStage(ctx context.Context, id uuid.UUID, stage entities.IngestStage) error

	// TopicFrequencies counts topics grouped by exact text, descending.
	TopicFrequencies(ctx context.Context) ([]TopicCount, error)

	// SentimentPoints returns (occurred_at, sentiment) pairs ascending by time.
	SentimentPoints(ctx context.Context) ([]SentimentPoint, error)
}

package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

// ParticipantRepository defines participant persistence operations
type ParticipantRepository interface {
	// UpsertByEmail inserts the participant unless a record with the same
	// email already exists, in which case it is a no-op. Safe under
	// concurrent ingestion of the same new email.
	UpsertByEmail(ctx context.Context, participant *entities.Participant) error

	// FindByEmail returns the canonical record for an email, or (nil, nil).
	FindByEmail(ctx context.Context, email string) (*entities.Participant, error)

	// Link creates the (participant, transcript) association row. Linking the
	// same pair twice is a no-op.
	Link(ctx context.Context, participantID, transcriptID uuid.UUID) error

	// ListWithTranscripts returns all participants with their linked
	// transcripts preloaded.
	ListWithTranscripts(ctx context.Context) ([]entities.Participant, error)

	// ListWithTranscriptTopics additionally preloads each linked transcript's
	// topics, for the connection graph.
	ListWithTranscriptTopics(ctx context.Context) ([]entities.Participant, error)
}

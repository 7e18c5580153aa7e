package repositories

import (
	"context"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

// EmbeddingRepository defines embedding persistence operations
type EmbeddingRepository interface {
	// Create persists the vector for a transcript (one embedding per
	// transcript, enforced by the store).
	Create(ctx context.Context, embedding *entities.Embedding) error

	// ListWithTranscripts returns every stored embedding with its owning
	// transcript, in insertion order. Retrieval iterates this set, so
	// transcripts without an embedding never reach the scorer.
	ListWithTranscripts(ctx context.Context) ([]entities.Embedding, error)
}

package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/domain/repositories"
)

// embeddingRepository implements the EmbeddingRepository interface
type embeddingRepository struct {
	db *gorm.DB
}

// NewEmbeddingRepository creates a new embedding repository
func NewEmbeddingRepository(db *gorm.DB) repositories.EmbeddingRepository {
	return &embeddingRepository{db: db}
}

// Create persists the vector for a transcript
func (r *embeddingRepository) Create(ctx context.Context, embedding *entities.Embedding) error {
	if embedding == nil {
		return errors.New("embedding cannot be nil")
	}
	return r.db.WithContext(ctx).Create(embedding).Error
}

// ListWithTranscripts returns every embedding with its owning transcript in
// insertion order, which keeps tie-breaks in retrieval deterministic.
func (r *embeddingRepository) ListWithTranscripts(ctx context.Context) ([]entities.Embedding, error) {
	var embeddings []entities.Embedding
	err := r.db.WithContext(ctx).
		Preload("Transcript").
		Order("created_at ASC").
		Find(&embeddings).Error
	return embeddings, err
}

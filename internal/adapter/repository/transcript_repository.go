package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/domain/repositories"
)

// transcriptRepository implements the TranscriptRepository interface
type transcriptRepository struct {
	db *gorm.DB
}

// NewTranscriptRepository creates a new transcript repository
func NewTranscriptRepository(db *gorm.DB) repositories.TranscriptRepository {
	return &transcriptRepository{db: db}
}

// Create persists a transcript with its topic/action/decision children in one
// composite write. A unique violation on external_id surfaces as
// gorm.ErrDuplicatedKey for the orchestrator to translate.
func (r *transcriptRepository) Create(ctx context.Context, transcript *entities.Transcript) error {
	if transcript == nil {
		return errors.New("transcript cannot be nil")
	}
	return r.db.WithContext(ctx).Create(transcript).Error
}

// FindByExternalID retrieves a transcript by the caller-supplied id
func (r *transcriptRepository) FindByExternalID(ctx context.Context, externalID string) (*entities.Transcript, error) {
	var transcript entities.Transcript
	if err := r.db.WithContext(ctx).Where("external_id = ?", externalID).First(&transcript).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &transcript, nil
}

// FindByID retrieves a transcript with children and participants
func (r *transcriptRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Transcript, error) {
	var transcript entities.Transcript
	err := r.db.WithContext(ctx).
		Preload("Topics").
		Preload("Actions").
		Preload("Decisions").
		Preload("Participants").
		Where("id = ?", id).
		First(&transcript).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &transcript, nil
}

// List retrieves all transcripts with children and participants
func (r *transcriptRepository) List(ctx context.Context) ([]entities.Transcript, error) {
	var transcripts []entities.Transcript
	err := r.db.WithContext(ctx).
		Preload("Topics").
		Preload("Actions").
		Preload("Decisions").
		Preload("Participants").
		Order("occurred_at DESC").
		Find(&transcripts).Error
	return transcripts, err
}

// UpdateSummary attaches the summary and advances the stage marker
func (r *transcriptRepository) UpdateSummary(ctx context.Context, id uuid.UUID, summary string, stage entities.IngestStage) error {
	return r.db.WithContext(ctx).
		Model(&entities.Transcript{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"summary": summary,
			"stage":   stage,
		}).Error
}

// SetStage advances the persisted ingest stage marker
func (r *transcriptRepository) SetStage(ctx context.Context, id uuid.UUID, stage entities.IngestStage) error {
	return r.db.WithContext(ctx).
		Model(&entities.Transcript{}).
		Where("id = ?", id).
		Update("stage", stage).Error
}

// TopicFrequencies counts topics grouped by exact text, most frequent first
func (r *transcriptRepository) TopicFrequencies(ctx context.Context) ([]repositories.TopicCount, error) {
	var rows []repositories.TopicCount
	err := r.db.WithContext(ctx).
		Model(&entities.Topic{}).
		Select("name, COUNT(*) AS count").
		Group("name").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}

// SentimentPoints returns (occurred_at, sentiment) pairs ascending by time
func (r *transcriptRepository) SentimentPoints(ctx context.Context) ([]repositories.SentimentPoint, error) {
	var rows []repositories.SentimentPoint
	err := r.db.WithContext(ctx).
		Model(&entities.Transcript{}).
		Select("occurred_at, sentiment").
		Order("occurred_at ASC").
		Scan(&rows).Error
	return rows, err
}

package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/domain/repositories"
)

// participantRepository implements the ParticipantRepository interface
type participantRepository struct {
	db *gorm.DB
}

// NewParticipantRepository creates a new participant repository
func NewParticipantRepository(db *gorm.DB) repositories.ParticipantRepository {
	return &participantRepository{db: db}
}

// UpsertByEmail inserts the participant unless the email is already taken.
// ON CONFLICT DO NOTHING keeps the existing record's name/role, so two
// requests racing on a new email cannot violate the uniqueness invariant.
func (r *participantRepository) UpsertByEmail(ctx context.Context, participant *entities.Participant) error {
	if participant == nil {
		return errors.New("participant cannot be nil")
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).
		Create(participant).Error
}

// FindByEmail retrieves the canonical participant record for an email
func (r *participantRepository) FindByEmail(ctx context.Context, email string) (*entities.Participant, error) {
	var participant entities.Participant
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&participant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &participant, nil
}

// Link creates the association row; re-linking the same pair is a no-op
func (r *participantRepository) Link(ctx context.Context, participantID, transcriptID uuid.UUID) error {
	link := entities.ParticipantOnTranscript{
		ParticipantID: participantID,
		TranscriptID:  transcriptID,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&link).Error
}

// ListWithTranscripts retrieves all participants with linked transcripts
func (r *participantRepository) ListWithTranscripts(ctx context.Context) ([]entities.Participant, error) {
	var participants []entities.Participant
	err := r.db.WithContext(ctx).
		Preload("Transcripts").
		Order("name ASC").
		Find(&participants).Error
	return participants, err
}

// ListWithTranscriptTopics retrieves participants with transcripts and topics
func (r *participantRepository) ListWithTranscriptTopics(ctx context.Context) ([]entities.Participant, error) {
	var participants []entities.Participant
	err := r.db.WithContext(ctx).
		Preload("Transcripts.Topics").
		Order("name ASC").
		Find(&participants).Error
	return participants, err
}

package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Participant is a meeting attendee identified by email. The record is shared
// across transcripts: created lazily on first appearance, reused afterwards,
// never merged or deleted.
type Participant struct {
	ID    uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name  string    `json:"name" gorm:"type:varchar(255);not null"`
	Email string    `json:"email" gorm:"type:varchar(255);not null;uniqueIndex"`
	Role  *string   `json:"role,omitempty" gorm:"type:varchar(100)"`

	Transcripts []Transcript `json:"transcripts,omitempty" gorm:"many2many:participant_transcripts"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Participant) TableName() string {
	return "participants"
}

// NewParticipant creates a participant record
func NewParticipant(name, email string, role *string) *Participant {
	return &Participant{
		ID:    uuid.New(),
		Name:  name,
		Email: email,
		Role:  role,
	}
}

// Organization derives the organization from the email domain.
func (p *Participant) Organization() string {
	if idx := strings.Index(p.Email, "@"); idx >= 0 && idx+1 < len(p.Email) {
		return p.Email[idx+1:]
	}
	return "Unknown"
}

// ParticipantOnTranscript links a participant to a transcript, one row per
// (participant, transcript) pair.
type ParticipantOnTranscript struct {
	ParticipantID uuid.UUID `json:"participant_id" gorm:"type:uuid;primaryKey"`
	TranscriptID  uuid.UUID `json:"transcript_id" gorm:"type:uuid;primaryKey"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (ParticipantOnTranscript) TableName() string {
	return "participant_transcripts"
}

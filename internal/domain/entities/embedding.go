package entities

import (
	"time"

	"github.com/google/uuid"
)

// Embedding holds the semantic vector for a transcript, one per transcript.
// Its existence marks the embedding stage as completed; a transcript without
// one is invisible to retrieval.
type Embedding struct {
	ID           uuid.UUID   `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TranscriptID uuid.UUID   `json:"transcript_id" gorm:"type:uuid;not null;uniqueIndex"`
	Transcript   *Transcript `json:"transcript,omitempty" gorm:"foreignKey:TranscriptID;constraint:OnDelete:CASCADE"`
	Vector       []float64   `json:"vector" gorm:"type:jsonb;serializer:json;not null"`
	CreatedAt    time.Time   `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Embedding) TableName() string {
	return "embeddings"
}

// NewEmbedding creates an embedding owned by the given transcript
func NewEmbedding(transcriptID uuid.UUID, vector []float64) *Embedding {
	return &Embedding{
		ID:           uuid.New(),
		TranscriptID: transcriptID,
		Vector:       vector,
	}
}

package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Sentiment is the overall tone extracted from a transcript
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// NormalizeSentiment maps arbitrary model output onto the sentiment enum,
// defaulting to neutral for anything unrecognized.
func NormalizeSentiment(s string) Sentiment {
	switch Sentiment(s) {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return Sentiment(s)
	default:
		return SentimentNeutral
	}
}

// Score maps a sentiment onto the three-point scale used by the trend rollup.
func (s Sentiment) Score() float64 {
	switch s {
	case SentimentPositive:
		return 1
	case SentimentNegative:
		return 0
	default:
		return 0.5
	}
}

// IngestStage is the persisted marker of how far ingestion progressed for a
// transcript. A transcript stuck before "complete" was stranded by a failed
// request; the pipeline never retries it on its own.
type IngestStage string

const (
	StageCreated    IngestStage = "created"
	StageEmbedded   IngestStage = "embedded"
	StageSummarized IngestStage = "summarized"
	StageComplete   IngestStage = "complete"
)

// Transcript is the aggregate root: a stored meeting transcript with its
// extracted children. ExternalID is the caller-supplied idempotency key.
type Transcript struct {
	ID              uuid.UUID         `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ExternalID      string            `json:"transcript_id" gorm:"column:external_id;type:varchar(255);not null;uniqueIndex"`
	Title           string            `json:"title" gorm:"type:varchar(500);not null"`
	OccurredAt      time.Time         `json:"occurred_at" gorm:"not null;index"`
	DurationMinutes int               `json:"duration_minutes"`
	Text            string            `json:"transcript" gorm:"type:text;not null"`
	Sentiment       Sentiment         `json:"sentiment" gorm:"type:varchar(20);not null;default:'neutral'"`
	Summary         *string           `json:"summary" gorm:"type:text"`
	Stage           IngestStage       `json:"stage" gorm:"type:varchar(20);not null;default:'created'"`
	Metadata        datatypes.JSONMap `json:"metadata,omitempty" gorm:"type:jsonb"`

	Topics       []Topic       `json:"topics,omitempty" gorm:"foreignKey:TranscriptID;constraint:OnDelete:CASCADE"`
	Actions      []ActionItem  `json:"actions,omitempty" gorm:"foreignKey:TranscriptID;constraint:OnDelete:CASCADE"`
	Decisions    []Decision    `json:"decisions,omitempty" gorm:"foreignKey:TranscriptID;constraint:OnDelete:CASCADE"`
	Participants []Participant `json:"participants,omitempty" gorm:"many2many:participant_transcripts"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Transcript) TableName() string {
	return "transcripts"
}

// NewTranscript creates a transcript in its initial stage
func NewTranscript(externalID, title string, occurredAt time.Time, durationMinutes int, text string) *Transcript {
	return &Transcript{
		ID:              uuid.New(),
		ExternalID:      externalID,
		Title:           title,
		OccurredAt:      occurredAt,
		DurationMinutes: durationMinutes,
		Text:            text,
		Sentiment:       SentimentNeutral,
		Stage:           StageCreated,
	}
}

// Topic is a discussion theme owned by exactly one transcript
type Topic struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TranscriptID uuid.UUID `json:"transcript_id" gorm:"type:uuid;not null;index"`
	Name         string    `json:"name" gorm:"type:varchar(500);not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Topic) TableName() string {
	return "topics"
}

// ActionItem is a task or follow-up owned by exactly one transcript
type ActionItem struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TranscriptID uuid.UUID `json:"transcript_id" gorm:"type:uuid;not null;index"`
	Text         string    `json:"text" gorm:"type:text;not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (ActionItem) TableName() string {
	return "action_items"
}

// Decision is a recorded decision owned by exactly one transcript
type Decision struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TranscriptID uuid.UUID `json:"transcript_id" gorm:"type:uuid;not null;index"`
	Text         string    `json:"text" gorm:"type:text;not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Decision) TableName() string {
	return "decisions"
}

package dto

import (
	"time"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

// IngestParticipantRequest is one attendee in an ingestion payload
type IngestParticipantRequest struct {
	Name  string  `json:"name" validate:"required"`
	Email string  `json:"email" validate:"required,email"`
	Role  *string `json:"role,omitempty"`
}

// IngestRequest is the body of POST /api/ingest
type IngestRequest struct {
	TranscriptID    string                     `json:"transcript_id" validate:"required"`
	Title           string                     `json:"title" validate:"required"`
	OccurredAt      time.Time                  `json:"occurred_at" validate:"required"`
	DurationMinutes int                        `json:"duration_minutes" validate:"gte=0"`
	Transcript      string                     `json:"transcript" validate:"required"`
	Participants    []IngestParticipantRequest `json:"participants" validate:"dive"`
	Metadata        map[string]interface{}     `json:"metadata,omitempty"`
}

// Ingest status values returned to the caller
const (
	IngestStatusProcessed     = "processed"
	IngestStatusAlreadyExists = "already_exists"
)

// ExtractedPayload is the structured knowledge pulled out of a transcript
type ExtractedPayload struct {
	Topics    []string `json:"topics"`
	Actions   []string `json:"action_items"`
	Decisions []string `json:"decisions"`
	Sentiment string   `json:"sentiment"`
}

// IngestResponse is the body returned by POST /api/ingest
type IngestResponse struct {
	ID        string            `json:"id"`
	Status    string            `json:"status"`
	Extracted *ExtractedPayload `json:"extracted,omitempty"`
	Summary   *string           `json:"summary,omitempty"`
}

// NewIngestResponse builds the response for a freshly processed transcript
func NewIngestResponse(t *entities.Transcript) IngestResponse {
	extracted := &ExtractedPayload{
		Topics:    make([]string, 0, len(t.Topics)),
		Actions:   make([]string, 0, len(t.Actions)),
		Decisions: make([]string, 0, len(t.Decisions)),
		Sentiment: string(t.Sentiment),
	}
	for _, topic := range t.Topics {
		extracted.Topics = append(extracted.Topics, topic.Name)
	}
	for _, action := range t.Actions {
		extracted.Actions = append(extracted.Actions, action.Text)
	}
	for _, decision := range t.Decisions {
		extracted.Decisions = append(extracted.Decisions, decision.Text)
	}
	return IngestResponse{
		ID:        t.ID.String(),
		Status:    IngestStatusProcessed,
		Extracted: extracted,
		Summary:   t.Summary,
	}
}

// NewDuplicateIngestResponse builds the response for an idempotent replay
func NewDuplicateIngestResponse(t *entities.Transcript) IngestResponse {
	return IngestResponse{
		ID:     t.ID.String(),
		Status: IngestStatusAlreadyExists,
	}
}

package dto

import (
	"time"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

// TranscriptParticipant is an attendee as rendered in transcript responses
type TranscriptParticipant struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Role  *string `json:"role,omitempty"`
}

// TranscriptResponse is a stored transcript with its extracted children
type TranscriptResponse struct {
	ID              string                  `json:"id"`
	TranscriptID    string                  `json:"transcript_id"`
	Title           string                  `json:"title"`
	OccurredAt      time.Time               `json:"occurred_at"`
	DurationMinutes int                     `json:"duration_minutes"`
	Sentiment       string                  `json:"sentiment"`
	Summary         *string                 `json:"summary,omitempty"`
	Topics          []string                `json:"topics"`
	Actions         []string                `json:"action_items"`
	Decisions       []string                `json:"decisions"`
	Participants    []TranscriptParticipant `json:"participants"`
	CreatedAt       time.Time               `json:"created_at"`
}

// NewTranscriptResponse maps a transcript entity onto its API shape
func NewTranscriptResponse(t *entities.Transcript) TranscriptResponse {
	resp := TranscriptResponse{
		ID:              t.ID.String(),
		TranscriptID:    t.ExternalID,
		Title:           t.Title,
		OccurredAt:      t.OccurredAt,
		DurationMinutes: t.DurationMinutes,
		Sentiment:       string(t.Sentiment),
		Summary:         t.Summary,
		Topics:          make([]string, 0, len(t.Topics)),
		Actions:         make([]string, 0, len(t.Actions)),
		Decisions:       make([]string, 0, len(t.Decisions)),
		Participants:    make([]TranscriptParticipant, 0, len(t.Participants)),
		CreatedAt:       t.CreatedAt,
	}
	for _, topic := range t.Topics {
		resp.Topics = append(resp.Topics, topic.Name)
	}
	for _, action := range t.Actions {
		resp.Actions = append(resp.Actions, action.Text)
	}
	for _, decision := range t.Decisions {
		resp.Decisions = append(resp.Decisions, decision.Text)
	}
	for _, p := range t.Participants {
		resp.Participants = append(resp.Participants, TranscriptParticipant{
			ID:    p.ID.String(),
			Name:  p.Name,
			Email: p.Email,
			Role:  p.Role,
		})
	}
	return resp
}

// NewTranscriptListResponse maps a slice of transcript entities
func NewTranscriptListResponse(transcripts []entities.Transcript) []TranscriptResponse {
	out := make([]TranscriptResponse, 0, len(transcripts))
	for i := range transcripts {
		out = append(out, NewTranscriptResponse(&transcripts[i]))
	}
	return out
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-insights/internal/adapter/dto"
	"github.com/johnquangdev/meeting-insights/internal/usecase/analytics"
)

// Analytics handles rollup requests over the ingested corpus
type Analytics struct {
	svc    analytics.Service
	logger *zap.Logger
}

// NewAnalytics creates the analytics handler
func NewAnalytics(svc analytics.Service, logger *zap.Logger) *Analytics {
	return &Analytics{svc: svc, logger: logger}
}

// Topics processes GET /api/analytics/topics
func (h *Analytics) Topics(c echo.Context) error {
	counts, err := h.svc.TopicFrequencies(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	out := make([]dto.TopicFrequency, 0, len(counts))
	for _, tc := range counts {
		out = append(out, dto.TopicFrequency{Topic: tc.Name, Count: tc.Count})
	}
	return HandleSuccess(h.logger, c, http.StatusOK, out)
}

// Participants processes GET /api/analytics/participants
func (h *Analytics) Participants(c echo.Context) error {
	engagements, err := h.svc.ParticipantEngagement(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	out := make([]dto.ParticipantEngagement, 0, len(engagements))
	for _, e := range engagements {
		item := dto.ParticipantEngagement{
			Name:          e.Participant.Name,
			Email:         e.Participant.Email,
			Role:          e.Participant.Role,
			MeetingsCount: len(e.Meetings),
			Meetings:      make([]dto.MeetingRef, 0, len(e.Meetings)),
		}
		for _, m := range e.Meetings {
			item.Meetings = append(item.Meetings, dto.MeetingRef{
				ID:         m.ID.String(),
				Title:      m.Title,
				OccurredAt: m.OccurredAt,
			})
		}
		out = append(out, item)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, out)
}

// Sentiment processes GET /api/analytics/sentiment
func (h *Analytics) Sentiment(c echo.Context) error {
	trend, err := h.svc.SentimentTrend(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	out := make([]dto.SentimentTrendPoint, 0, len(trend))
	for _, p := range trend {
		out = append(out, dto.SentimentTrendPoint{Date: p.Date, AvgSentimentScore: p.Average})
	}
	return HandleSuccess(h.logger, c, http.StatusOK, out)
}

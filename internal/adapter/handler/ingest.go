package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/meeting-insights/errors"
	"github.com/johnquangdev/meeting-insights/internal/adapter/dto"
	"github.com/johnquangdev/meeting-insights/internal/usecase/ingestion"
)

// Ingest handles transcript ingestion requests
type Ingest struct {
	svc    ingestion.Service
	logger *zap.Logger
}

// NewIngest creates the ingestion handler
func NewIngest(svc ingestion.Service, logger *zap.Logger) *Ingest {
	return &Ingest{svc: svc, logger: logger}
}

// Handle processes POST /api/ingest
func (h *Ingest) Handle(c echo.Context) error {
	var req dto.IngestRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("Request body is not valid JSON"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrValidation(err))
	}

	in := ingestion.Input{
		TranscriptID:    req.TranscriptID,
		Title:           req.Title,
		OccurredAt:      req.OccurredAt,
		DurationMinutes: req.DurationMinutes,
		Transcript:      req.Transcript,
		Metadata:        req.Metadata,
	}
	for _, p := range req.Participants {
		in.Participants = append(in.Participants, ingestion.ParticipantInput{
			Name:  p.Name,
			Email: p.Email,
			Role:  p.Role,
		})
	}

	result, err := h.svc.Ingest(c.Request().Context(), in)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if result.AlreadyExists {
		return HandleSuccess(h.logger, c, http.StatusOK, dto.NewDuplicateIngestResponse(result.Transcript))
	}
	return HandleSuccess(h.logger, c, http.StatusOK, dto.NewIngestResponse(result.Transcript))
}

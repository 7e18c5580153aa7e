package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/meeting-insights/errors"
	"github.com/johnquangdev/meeting-insights/internal/adapter/dto"
	"github.com/johnquangdev/meeting-insights/internal/domain/repositories"
)

// Transcript handles transcript read requests
type Transcript struct {
	repo   repositories.TranscriptRepository
	logger *zap.Logger
}

// NewTranscript creates the transcript handler
func NewTranscript(repo repositories.TranscriptRepository, logger *zap.Logger) *Transcript {
	return &Transcript{repo: repo, logger: logger}
}

// List processes GET /api/transcripts
func (h *Transcript) List(c echo.Context) error {
	transcripts, err := h.repo.List(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrDBQueryFailed(err))
	}
	return HandleSuccess(h.logger, c, http.StatusOK, dto.NewTranscriptListResponse(transcripts))
}

// GetByID processes GET /api/transcripts/:id
func (h *Transcript) GetByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("Transcript id must be a UUID"))
	}

	transcript, err := h.repo.FindByID(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrDBQueryFailed(err))
	}
	if transcript == nil {
		return HandleError(h.logger, c, apperrors.ErrNotFound("Transcript"))
	}
	return HandleSuccess(h.logger, c, http.StatusOK, dto.NewTranscriptResponse(transcript))
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/meeting-insights/errors"
	"github.com/johnquangdev/meeting-insights/internal/adapter/dto"
	"github.com/johnquangdev/meeting-insights/internal/usecase/search"
)

// Search handles semantic search requests
type Search struct {
	svc    search.Service
	logger *zap.Logger
}

// NewSearch creates the search handler
func NewSearch(svc search.Service, logger *zap.Logger) *Search {
	return &Search{svc: svc, logger: logger}
}

// Handle processes GET /api/search?q=
func (h *Search) Handle(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return HandleError(h.logger, c, apperrors.ErrMissingQuery())
	}

	matches, err := h.svc.Search(c.Request().Context(), query)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	resp := dto.SearchResponse{
		Query:   query,
		Results: make([]dto.SearchResult, 0, len(matches)),
	}
	for _, m := range matches {
		resp.Results = append(resp.Results, dto.SearchResult{
			Transcript: dto.NewTranscriptResponse(m.Transcript),
			Score:      m.Score,
		})
	}
	return HandleSuccess(h.logger, c, http.StatusOK, resp)
}

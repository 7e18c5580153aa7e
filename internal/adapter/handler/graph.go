package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-insights/internal/adapter/dto"
	"github.com/johnquangdev/meeting-insights/internal/usecase/analytics"
)

// Graph handles collaboration graph requests
type Graph struct {
	svc    analytics.Service
	logger *zap.Logger
}

// NewGraph creates the graph handler
func NewGraph(svc analytics.Service, logger *zap.Logger) *Graph {
	return &Graph{svc: svc, logger: logger}
}

// Connections processes GET /api/graph/connections
func (h *Graph) Connections(c echo.Context) error {
	connections, err := h.svc.Connections(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	resp := dto.GraphResponse{Connections: make([]dto.Connection, 0, len(connections))}
	for _, conn := range connections {
		resp.Connections = append(resp.Connections, dto.Connection{
			Person:           conn.Person,
			Organization:     conn.Organization,
			Topics:           conn.Topics,
			InteractionCount: conn.InteractionCount,
		})
	}
	return HandleSuccess(h.logger, c, http.StatusOK, resp)
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meeting-insights/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg               *config.Config
	ingestHandler     *Ingest
	transcriptHandler *Transcript
	searchHandler     *Search
	analyticsHandler  *Analytics
	graphHandler      *Graph
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	ingestHandler *Ingest,
	transcriptHandler *Transcript,
	searchHandler *Search,
	analyticsHandler *Analytics,
	graphHandler *Graph,
) *Router {
	return &Router{
		cfg:               cfg,
		ingestHandler:     ingestHandler,
		transcriptHandler: transcriptHandler,
		searchHandler:     searchHandler,
		analyticsHandler:  analyticsHandler,
		graphHandler:      graphHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	api := e.Group("/api")

	api.POST("/ingest", rt.ingestHandler.Handle)

	api.GET("/transcripts", rt.transcriptHandler.List)
	api.GET("/transcripts/:id", rt.transcriptHandler.GetByID)

	api.GET("/search", rt.searchHandler.Handle)

	api.GET("/analytics/topics", rt.analyticsHandler.Topics)
	api.GET("/analytics/participants", rt.analyticsHandler.Participants)
	api.GET("/analytics/sentiment", rt.analyticsHandler.Sentiment)

	api.GET("/graph/connections", rt.graphHandler.Connections)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	httpmw "github.com/middlegroundapp/middleground/internal/infrastructure/http/middleware"
	"github.com/middlegroundapp/middleground/internal/infrastructure/cache"
	"github.com/middlegroundapp/middleground/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	meetingHandler *Meeting
	limiterStore   *cache.MemoryStore
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, meetingHandler *Meeting, limiterStore *cache.MemoryStore) *Router {
	return &Router{
		cfg:            cfg,
		meetingHandler: meetingHandler,
		limiterStore:   limiterStore,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	api := e.Group("/api")
	rt.setupMeetingRoutes(api)
}

// setupMeetingRoutes configures meeting routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetings := g.Group("/meetings")

	createLimit := httpmw.RateLimit(
		rt.limiterStore,
		rt.cfg.RateLimit.CreateMeetingMax,
		rt.cfg.RateLimit.CreateMeetingWindow,
	)

	meetings.POST("", rt.meetingHandler.CreateMeeting, createLimit)
	meetings.GET("/:id", rt.meetingHandler.GetStatus)
	meetings.POST("/:id/location", rt.meetingHandler.SubmitLocation)
	meetings.GET("/:id/suggestions", rt.meetingHandler.GetSuggestions)
	meetings.POST("/:id/finalize", rt.meetingHandler.Finalize)
	meetings.POST("/:id/invitations/expire", rt.meetingHandler.ExpireInvitation)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}

// Package handlers exposes the visit flows over HTTP.
package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"triptactix/chat"
	"triptactix/database"
	"triptactix/search"
	"triptactix/sessions"
)

// History is the read side of the search history store.
type History interface {
	Recent(ctx context.Context, limit int) ([]database.SearchLog, error)
	Ping(ctx context.Context) error
}

type Handler struct {
	store   *sessions.Store
	history History
	logger  *slog.Logger
	now     func() time.Time
}

// New builds the API handlers. history may be nil when no database is configured.
func New(store *sessions.Store, history History, logger *slog.Logger) *Handler {
	return &Handler{
		store:   store,
		history: history,
		logger:  logger.With("component", "handlers"),
		now:     time.Now,
	}
}

// Register mounts every route on api, normally the /api group.
func (h *Handler) Register(api gin.IRouter) {
	api.GET("/health", h.Health)

	api.GET("/airports", h.Airports)
	api.GET("/destinations", h.Destinations)
	api.GET("/routes/popular", h.PopularRoutes)

	api.POST("/sessions", h.CreateSession)
	api.DELETE("/sessions/:id", h.DeleteSession)

	visit := api.Group("/sessions/:id")
	{
		visit.GET("/flights", h.FlightState)
		visit.POST("/flights/search", h.SearchFlights)
		visit.GET("/hotels", h.HotelState)
		visit.POST("/hotels/search", h.SearchHotels)

		visit.GET("/itinerary", h.ItineraryState)
		visit.POST("/itinerary/messages", h.SendMessage)
		visit.POST("/itinerary/quick-actions", h.SendQuickAction)
		visit.GET("/itinerary/pdf", h.DownloadTranscript)
	}

	api.GET("/history", h.History)
}

// visit resolves the :id path parameter, answering 404 itself when unknown.
func (h *Handler) visit(c *gin.Context) (*sessions.Visit, bool) {
	v, err := h.store.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return nil, false
	}
	return v, true
}

// respondError maps flow errors onto status codes.
func (h *Handler) respondError(c *gin.Context, err error) {
	var verr *search.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "field": verr.Field})
	case errors.Is(err, chat.ErrEmptyMessage), errors.Is(err, chat.ErrUnknownAction):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, chat.ErrBusy):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, sessions.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
	default:
		h.logger.ErrorContext(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

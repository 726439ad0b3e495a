package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health reports liveness plus the state of the optional history database.
func (h *Handler) Health(c *gin.Context) {
	dbStatus := "disabled"
	if h.history != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.history.Ping(ctx); err != nil {
			dbStatus = "unreachable"
		} else {
			dbStatus = "connected"
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"service":  "TripTactix API",
		"database": dbStatus,
		"sessions": h.store.Len(),
	})
}

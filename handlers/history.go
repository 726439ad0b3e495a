package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"triptactix/database"
)

// History lists recently recorded searches, newest first.
func (h *Handler) History(c *gin.Context) {
	if h.history == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Search history is not enabled"})
		return
	}

	limit := database.DefaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a number"})
			return
		}
		limit = n
	}

	logs, err := h.history.Recent(c.Request.Context(), database.ClampLimit(limit))
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "history query failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load search history"})
		return
	}
	if logs == nil {
		logs = []database.SearchLog{}
	}
	c.JSON(http.StatusOK, gin.H{"searches": logs})
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"triptactix/sessions"
)

// CreateSession opens a new visit with idle search flows and a greeted chat.
func (h *Handler) CreateSession(c *gin.Context) {
	v := h.store.Create()
	c.JSON(http.StatusCreated, gin.H{
		"session_id": v.ID,
		"created_at": v.CreatedAt,
	})
}

func (h *Handler) DeleteSession(c *gin.Context) {
	if err := h.store.Delete(c.Param("id")); err != nil {
		if errors.Is(err, sessions.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"triptactix/search"
)

func (h *Handler) FlightState(c *gin.Context) {
	v, ok := h.visit(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, v.Flights.Snapshot())
}

// SearchFlights runs one flight search and answers with the resulting state.
// A failed search is still a 200: the failure is part of the page state.
func (h *Handler) SearchFlights(c *gin.Context) {
	v, ok := h.visit(c)
	if !ok {
		return
	}

	var req search.FlightCriteria
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	snap, err := v.Flights.Submit(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *Handler) HotelState(c *gin.Context) {
	v, ok := h.visit(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, v.Hotels.Snapshot())
}

func (h *Handler) SearchHotels(c *gin.Context) {
	v, ok := h.visit(c)
	if !ok {
		return
	}

	var req search.HotelCriteria
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	snap, err := v.Hotels.Submit(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"triptactix/chat"
	"triptactix/search"
	"triptactix/services"
	"triptactix/sessions"
)

type messageRequest struct {
	Content string `json:"content"`
}

type quickActionRequest struct {
	Action string `json:"action" binding:"required"`
}

type replyResponse struct {
	Reply chat.Message  `json:"reply"`
	Chat  chat.Snapshot `json:"chat"`
}

func (h *Handler) ItineraryState(c *gin.Context) {
	v, ok := h.visit(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, v.Chat.Snapshot())
}

// SendMessage blocks until the assistant replies or the offline reply is used.
func (h *Handler) SendMessage(c *gin.Context) {
	v, ok := h.visit(c)
	if !ok {
		return
	}

	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	reply, err := v.Chat.Send(c.Request.Context(), req.Content)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, replyResponse{Reply: reply, Chat: v.Chat.Snapshot()})
}

func (h *Handler) SendQuickAction(c *gin.Context) {
	v, ok := h.visit(c)
	if !ok {
		return
	}

	var req quickActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	reply, err := v.Chat.SendQuickAction(c.Request.Context(), req.Action)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, replyResponse{Reply: reply, Chat: v.Chat.Snapshot()})
}

// DownloadTranscript renders the visit's conversation as a PDF attachment.
func (h *Handler) DownloadTranscript(c *gin.Context) {
	v, ok := h.visit(c)
	if !ok {
		return
	}

	pdfBytes, err := services.GenerateTranscriptPDF(transcriptData(v, h.now()))
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "transcript pdf failed", "session", v.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
		return
	}

	filename := fmt.Sprintf("TripTactix_Itinerary_%s.pdf", shortID(v.ID))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func transcriptData(v *sessions.Visit, now time.Time) services.TranscriptData {
	data := services.TranscriptData{
		SessionID: v.ID,
		Generated: now,
		Trip:      tripRows(v.Flights.Snapshot(), v.Hotels.Snapshot()),
	}
	for _, m := range v.Chat.Transcript() {
		data.Messages = append(data.Messages, services.TranscriptEntry{
			Sender:  string(m.Sender),
			Content: m.Content,
			Time:    m.Timestamp,
		})
	}
	return data
}

// tripRows summarises the last criteria submitted on each search page.
func tripRows(flights search.FlightSnapshot, hotels search.HotelSnapshot) []services.TranscriptRow {
	var rows []services.TranscriptRow
	if f := flights.Criteria; f != nil {
		rows = append(rows,
			services.TranscriptRow{Label: "Flight", Value: f.Origin + " - " + f.Destination},
			services.TranscriptRow{Label: "Departure", Value: f.DepartureDate},
		)
		if f.ReturnDate != "" {
			rows = append(rows, services.TranscriptRow{Label: "Return", Value: f.ReturnDate})
		}
		rows = append(rows, services.TranscriptRow{
			Label: "Travellers",
			Value: fmt.Sprintf("%d adults, %d children, %d infants", f.Adults, f.Children, f.Infants),
		})
	}
	if hc := hotels.Criteria; hc != nil {
		rows = append(rows,
			services.TranscriptRow{Label: "Hotel", Value: hc.Destination},
			services.TranscriptRow{Label: "Stay", Value: hc.CheckIn + " to " + hc.CheckOut},
			services.TranscriptRow{Label: "Rooms", Value: fmt.Sprintf("%d", hc.Rooms)},
		)
	}
	return rows
}

func shortID(id string) string {
	id = strings.ReplaceAll(id, "-", "")
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

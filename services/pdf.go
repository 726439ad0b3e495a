package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

type TranscriptEntry struct {
	Sender  string // "user" or "ai"
	Content string
	Time    time.Time
}

type TranscriptRow struct {
	Label string
	Value string
}

type TranscriptData struct {
	SessionID string
	Generated time.Time
	// Trip holds the visit's latest search criteria, shown above the chat.
	Trip     []TranscriptRow
	Messages []TranscriptEntry
}

// GenerateTranscriptPDF renders an itinerary chat into a PDF and returns the raw bytes.
func GenerateTranscriptPDF(data TranscriptData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 25)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-18)
		pdf.SetDrawColor(200, 200, 200)
		pdf.SetLineWidth(0.3)
		pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(150, 150, 150)
		pdf.CellFormat(0, 8,
			tr(fmt.Sprintf("TripTactix itinerary assistant · Not a booking confirmation · Page %d", pdf.PageNo())),
			"", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	// ── Header Bar ───────────────────────────────────────────
	pdf.SetFillColor(13, 24, 37)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "TripTactix", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(212, 168, 67)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "Itinerary Conversation", "", 1, "L", false, 0, "")

	pdf.SetY(35)

	// ── Disclaimer ───────────────────────────────────────────
	pdf.SetFillColor(255, 248, 225)
	pdf.SetDrawColor(212, 168, 67)
	pdf.SetTextColor(130, 90, 20)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetLineWidth(0.4)
	y := pdf.GetY()
	pdf.Rect(20, y, 170, 12, "FD")
	pdf.SetXY(23, y+2)
	pdf.MultiCell(164, 4,
		tr("Suggestions below were generated automatically and may be incomplete. Verify prices, schedules and opening hours before booking."),
		"", "C", false)

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.2)
	pdf.Ln(6)

	sectionHeader := func(title string) {
		pdf.SetFillColor(13, 24, 37)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+tr(title), "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(55, 7, tr(label), "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(115, 7, tr(value), "", 1, "L", false, 0, "")
	}

	generated := data.Generated
	if generated.IsZero() {
		generated = time.Now()
	}

	sectionHeader("Session")
	row("Reference", data.SessionID)
	row("Generated", generated.UTC().Format("02 Jan 2006, 15:04 UTC"))
	row("Messages", fmt.Sprintf("%d", len(data.Messages)))
	pdf.Ln(4)

	if len(data.Trip) > 0 {
		sectionHeader("Trip Overview")
		for _, r := range data.Trip {
			row(r.Label, r.Value)
		}
		pdf.Ln(4)
	}

	// ── Conversation ──────────────────────────────────────────
	sectionHeader("Conversation")
	for _, m := range data.Messages {
		who := "You"
		pdf.SetTextColor(13, 24, 37)
		if m.Sender == "ai" {
			who = "Assistant"
			pdf.SetTextColor(150, 110, 30)
		}
		pdf.SetFont("Helvetica", "B", 9)
		stamp := ""
		if !m.Time.IsZero() {
			stamp = " · " + m.Time.Format("15:04")
		}
		pdf.CellFormat(170, 6, tr(who+stamp), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(40, 40, 40)
		pdf.MultiCell(170, 5, tr(m.Content), "", "L", false)
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output failed: %w", err)
	}
	return buf.Bytes(), nil
}

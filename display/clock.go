package display

import (
	"strings"
	"time"
)

var timestampLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
}

// FormatClock renders a backend timestamp as a 12-hour clock ("03:04 PM").
// The wall time of the timestamp is kept; no zone conversion happens.
func FormatClock(at string) string {
	at = strings.TrimSpace(at)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, at); err == nil {
			return t.Format("03:04 PM")
		}
	}
	return Placeholder
}

// FormatDate renders a calendar date the way result messages show it ("10/20/2026").
func FormatDate(t time.Time) string {
	return t.Format("1/2/2006")
}

package fixtures

import (
	"fmt"
	"strings"
)

var dayPlans = []string{
	"Arrive, check in and take an evening walk through the old town.",
	"Guided tour of the main landmarks, then a local food market for dinner.",
	"Museum morning, afternoon at leisure, sunset viewpoint.",
	"Day trip to the surrounding countryside.",
	"Shopping for souvenirs and a farewell dinner.",
}

// Itinerary returns a plain day-by-day plan for query.
func Itinerary(query string) string {
	query = strings.TrimSpace(query)
	var b strings.Builder
	fmt.Fprintf(&b, "Here is a suggested plan for \"%s\":\n", query)
	for i, p := range dayPlans {
		fmt.Fprintf(&b, "\nDay %d: %s", i+1, p)
	}
	b.WriteString("\n\nPrices and opening hours change often, so check them before you book.")
	return b.String()
}

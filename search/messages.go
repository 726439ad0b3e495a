package search

import (
	"fmt"
	"time"

	"triptactix/catalog"
	"triptactix/display"
)

const (
	flightFailureMessage = "Failed to search flights. Please try again in a moment."
	hotelFailureMessage  = "Failed to search hotels. Please try again in a moment."
)

var flightSuggestions = []string{
	"Try different dates (flights may not be available on all dates)",
	"Search popular routes like Delhi ↔ Mumbai or Mumbai ↔ Bangalore",
	"Check if the route has regular flights available",
	"Some international routes may have limited availability",
}

var hotelSuggestions = []string{
	"Try different dates (hotels may not be available on all dates)",
	"Search popular destinations like Mumbai, Delhi, or Bangalore",
	"Check if the destination has hotels available",
	"Some destinations may have limited hotel availability",
}

// FlightSuggestions returns the tips shown with a failed flight search.
func FlightSuggestions() []string { return append([]string(nil), flightSuggestions...) }

func HotelSuggestions() []string { return append([]string(nil), hotelSuggestions...) }

func appError(msg string) string {
	return "Error: " + msg
}

func noFlightsMessage(c FlightCriteria) string {
	return fmt.Sprintf("No flights found for %s (%s) to %s (%s) on %s. Please try different dates or routes.",
		catalog.CityFor(c.Origin), c.Origin,
		catalog.CityFor(c.Destination), c.Destination,
		displayDate(c.DepartureDate))
}

func noHotelsMessage(c HotelCriteria) string {
	return fmt.Sprintf("No hotels found for %s from %s to %s. Please try different dates or destinations.",
		c.Destination, displayDate(c.CheckIn), displayDate(c.CheckOut))
}

func displayDate(s string) string {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return s
	}
	return display.FormatDate(t)
}

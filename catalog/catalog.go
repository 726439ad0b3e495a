// Package catalog holds the static pick lists offered by the search forms.
package catalog

import "strings"

type Airport struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type PopularRoute struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Duration string `json:"duration"`
	Price    string `json:"price"`
	Discount string `json:"discount"`
}

var airports = []Airport{
	{"DEL", "Indira Gandhi International Airport", "New Delhi", "India"},
	{"BOM", "Chhatrapati Shivaji International Airport", "Mumbai", "India"},
	{"BLR", "Kempegowda International Airport", "Bangalore", "India"},
	{"MAA", "Chennai International Airport", "Chennai", "India"},
	{"CCU", "Netaji Subhas Chandra Bose International Airport", "Kolkata", "India"},
	{"HYD", "Rajiv Gandhi International Airport", "Hyderabad", "India"},
	{"GOI", "Goa International Airport", "Goa", "India"},
	{"LHR", "Heathrow Airport", "London", "United Kingdom"},
	{"JFK", "John F. Kennedy International Airport", "New York", "United States"},
	{"DXB", "Dubai International Airport", "Dubai", "United Arab Emirates"},
	{"CDG", "Charles de Gaulle Airport", "Paris", "France"},
	{"FRA", "Frankfurt Airport", "Frankfurt", "Germany"},
	{"SIN", "Singapore Changi Airport", "Singapore", "Singapore"},
}

var destinations = []string{
	"Mumbai, Maharashtra",
	"Goa",
	"Jaipur, Rajasthan",
	"New Delhi",
	"Bangalore, Karnataka",
	"Chennai, Tamil Nadu",
	"Kolkata, West Bengal",
	"Hyderabad, Telangana",
	"Pune, Maharashtra",
	"Ahmedabad, Gujarat",
}

var popularRoutes = []PopularRoute{
	{"Delhi", "Mumbai", "2h 30m", "3,999", "15% OFF"},
	{"Mumbai", "Dubai", "3h 15m", "12,999", "20% OFF"},
	{"Bangalore", "Singapore", "4h 30m", "15,999", "10% OFF"},
	{"Delhi", "London", "9h 45m", "35,999", "25% OFF"},
	{"Mumbai", "New York", "15h 30m", "45,999", "30% OFF"},
	{"Chennai", "Bangkok", "3h 45m", "8,999", "18% OFF"},
}

// Airports returns a copy of the airport list.
func Airports() []Airport {
	return append([]Airport(nil), airports...)
}

// FilterAirports matches q against code, city and airport name, ignoring case.
// An empty query returns every airport.
func FilterAirports(q string) []Airport {
	q = strings.ToLower(strings.TrimSpace(q))
	out := make([]Airport, 0, len(airports))
	for _, a := range airports {
		if strings.Contains(strings.ToLower(a.Name), q) ||
			strings.Contains(strings.ToLower(a.City), q) ||
			strings.Contains(strings.ToLower(a.Code), q) {
			out = append(out, a)
		}
	}
	return out
}

// LookupAirport finds an airport by IATA code.
func LookupAirport(code string) (Airport, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, a := range airports {
		if a.Code == code {
			return a, true
		}
	}
	return Airport{}, false
}

// CityFor returns the city served by code, or the code itself when unknown.
func CityFor(code string) string {
	if a, ok := LookupAirport(code); ok {
		return a.City
	}
	return strings.ToUpper(strings.TrimSpace(code))
}

func FilterDestinations(q string) []string {
	q = strings.ToLower(strings.TrimSpace(q))
	out := make([]string, 0, len(destinations))
	for _, d := range destinations {
		if strings.Contains(strings.ToLower(d), q) {
			out = append(out, d)
		}
	}
	return out
}

func PopularRoutes() []PopularRoute {
	return append([]PopularRoute(nil), popularRoutes...)
}

// AirportForCity resolves a popular-route city to an airport. "Delhi" matches
// "New Delhi" the way the route cards are labelled.
func AirportForCity(city string) (Airport, bool) {
	city = strings.ToLower(strings.TrimSpace(city))
	if city == "" {
		return Airport{}, false
	}
	for _, a := range airports {
		if strings.ToLower(a.City) == city {
			return a, true
		}
	}
	for _, a := range airports {
		if strings.HasSuffix(strings.ToLower(a.City), " "+city) {
			return a, true
		}
	}
	return Airport{}, false
}

// Package fixtures generates Amadeus-shaped offers for the mock backend.
package fixtures

import (
	"fmt"
	"math"
	"strings"
	"time"

	"triptactix/services"
)

type routeInfo struct {
	basePrice float64 // EUR
	duration  int     // minutes
}

var routes = map[string]routeInfo{
	"DEL-BOM": {45, 130}, "DEL-BLR": {55, 165}, "DEL-MAA": {55, 170},
	"DEL-CCU": {50, 135}, "DEL-HYD": {50, 135}, "DEL-GOI": {60, 155},
	"BOM-BLR": {40, 100}, "BOM-GOI": {35, 75}, "BOM-MAA": {42, 115},
	"BOM-HYD": {38, 90}, "BLR-MAA": {30, 60}, "MAA-HYD": {35, 80},
	"CCU-BLR": {55, 160},
	"BOM-DXB": {140, 195}, "DEL-DXB": {150, 225}, "BLR-SIN": {170, 270},
	"MAA-SIN": {160, 245}, "DEL-LHR": {420, 585}, "BOM-LHR": {430, 600},
	"DEL-FRA": {380, 520}, "DEL-CDG": {400, 560}, "BOM-JFK": {610, 930},
	"LHR-JFK": {450, 480}, "LHR-CDG": {80, 75}, "FRA-CDG": {90, 70},
	"DXB-LHR": {320, 450}, "SIN-DXB": {260, 440},
}

type airlineOption struct {
	code     string
	priceMod float64
	stops    int
	aircraft string
}

var airlineOptions = []airlineOption{
	{"AI", 1.00, 0, "32N"},
	{"6E", 0.85, 0, "320"},
	{"UK", 1.15, 0, "789"},
	{"SG", 0.75, 1, "738"},
	{"EK", 1.30, 1, "77W"},
}

var hubs = []string{"HYD", "DXB", "BLR", "FRA"}

func lookupRoute(origin, destination string) (routeInfo, bool) {
	if r, ok := routes[origin+"-"+destination]; ok {
		return r, true
	}
	r, ok := routes[destination+"-"+origin]
	return r, ok
}

// FlightOffers returns one offer per airline tier for a known route and none
// for anything else.
func FlightOffers(req services.FlightSearchRequest) []services.RawFlightOffer {
	origin := strings.ToUpper(req.Origin)
	destination := strings.ToUpper(req.Destination)
	info, ok := lookupRoute(origin, destination)
	if !ok {
		return []services.RawFlightOffer{}
	}

	depDate, err := time.Parse("2006-01-02", req.DepartureDate)
	if err != nil {
		return []services.RawFlightOffer{}
	}
	travellers := max(req.Adults, 1) + max(req.Children, 0)

	offers := make([]services.RawFlightOffer, 0, len(airlineOptions))
	for i, opt := range airlineOptions {
		price := math.Floor(info.basePrice*opt.priceMod/5) * 5 * float64(travellers)

		dur := info.duration
		if opt.stops > 0 {
			dur += 90
		}
		dep := time.Date(depDate.Year(), depDate.Month(), depDate.Day(), 6+i*3, 10*i, 0, 0, time.UTC)

		offers = append(offers, services.RawFlightOffer{
			ID: fmt.Sprintf("%d", i+1),
			Itineraries: []services.RawItinerary{{
				Duration: isoDuration(dur),
				Segments: segments(opt, i, origin, destination, dep, dur),
			}},
			Price: services.RawPrice{
				Total:    services.NewAmount(price),
				Base:     services.NewAmount(math.Round(price * 0.82)),
				Currency: "EUR",
			},
			ValidatingAirlineCodes: []string{opt.code},
		})
	}
	return offers
}

func segments(opt airlineOption, i int, origin, destination string, dep time.Time, dur int) []services.RawSegment {
	number := fmt.Sprintf("%d", 100+i*111)
	if opt.stops == 0 {
		return []services.RawSegment{
			segment(opt, number, origin, destination, dep, dep.Add(time.Duration(dur)*time.Minute)),
		}
	}

	hub := hubFor(origin, destination)
	// Two equal legs around a 90 minute connection.
	leg := time.Duration((dur-90)/2) * time.Minute
	firstArr := dep.Add(leg)
	secondDep := firstArr.Add(90 * time.Minute)
	return []services.RawSegment{
		segment(opt, number, origin, hub, dep, firstArr),
		segment(opt, fmt.Sprintf("%d", 101+i*111), hub, destination, secondDep, secondDep.Add(leg)),
	}
}

func segment(opt airlineOption, number, from, to string, dep, arr time.Time) services.RawSegment {
	s := services.RawSegment{
		Departure:   services.RawEndpoint{IataCode: from, At: dep.Format("2006-01-02T15:04:05")},
		Arrival:     services.RawEndpoint{IataCode: to, At: arr.Format("2006-01-02T15:04:05")},
		CarrierCode: opt.code,
		Number:      services.Text(number),
	}
	s.Aircraft.Code = opt.aircraft
	return s
}

func hubFor(origin, destination string) string {
	for _, h := range hubs {
		if h != origin && h != destination {
			return h
		}
	}
	return hubs[0]
}

func isoDuration(minutes int) string {
	h, m := minutes/60, minutes%60
	if m == 0 {
		return fmt.Sprintf("PT%dH", h)
	}
	return fmt.Sprintf("PT%dH%dM", h, m)
}

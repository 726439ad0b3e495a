// Package display reshapes raw backend offers into render-ready records.
// Every function here is total: missing fields become placeholders.
package display

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"triptactix/services"
)

var (
	flightAmenities = []string{"wifi", "meals"}
	hotelAmenities  = []string{"wifi", "restaurant", "parking", "spa"}
)

const defaultFlightRating = 4.0

type Endpoint struct {
	Time    string `json:"time"`
	Airport string `json:"airport"`
	City    string `json:"city"`
}

type Flight struct {
	ID           string   `json:"id"`
	Airline      string   `json:"airline"`
	AirlineCode  string   `json:"airline_code"`
	FlightNumber string   `json:"flight_number"`
	Departure    Endpoint `json:"departure"`
	Arrival      Endpoint `json:"arrival"`
	Duration     string   `json:"duration"`
	Price        Price    `json:"price"`
	Stops        int      `json:"stops"`
	StopLabel    string   `json:"stop_label"`
	Aircraft     string   `json:"aircraft"`
	Amenities    []string `json:"amenities"`
	Rating       float64  `json:"rating"`
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Hotel struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Location      string       `json:"location"`
	Rating        float64      `json:"rating"`
	Reviews       int          `json:"reviews"`
	Price         Price        `json:"price"`
	OriginalPrice *Price       `json:"original_price,omitempty"`
	Discount      int          `json:"discount"`
	Image         string       `json:"image"`
	Amenities     []string     `json:"amenities"`
	Badge         string       `json:"badge"`
	Description   string       `json:"description"`
	Features      []string     `json:"features"`
	ChainCode     string       `json:"chain_code,omitempty"`
	Coordinates   *Coordinates `json:"coordinates,omitempty"`
	Available     bool         `json:"available"`
	CheckIn       string       `json:"check_in,omitempty"`
	CheckOut      string       `json:"check_out,omitempty"`
	RoomType      string       `json:"room_type,omitempty"`
	BedType       string       `json:"bed_type,omitempty"`
	BedCount      int          `json:"bed_count,omitempty"`
}

// Normalizer applies one price rule to every offer it formats.
type Normalizer struct {
	Prices PriceRule
}

func NewNormalizer(prices PriceRule) *Normalizer {
	return &Normalizer{Prices: prices}
}

// Flight formats the outbound itinerary of raw. originCity and destCity come
// from the search criteria since offers only carry airport codes.
func (n *Normalizer) Flight(raw services.RawFlightOffer, originCity, destCity string) Flight {
	var itin services.RawItinerary
	if len(raw.Itineraries) > 0 {
		itin = raw.Itineraries[0]
	}

	var first, last *services.RawSegment
	if len(itin.Segments) > 0 {
		first = &itin.Segments[0]
		last = &itin.Segments[len(itin.Segments)-1]
	}

	code := ""
	if len(raw.ValidatingAirlineCodes) > 0 {
		code = raw.ValidatingAirlineCodes[0]
	} else if first != nil {
		code = first.CarrierCode
	}

	f := Flight{
		ID:           raw.ID,
		Airline:      AirlineName(code),
		AirlineCode:  strings.ToUpper(code),
		FlightNumber: Placeholder,
		Departure:    Endpoint{Time: Placeholder, Airport: Placeholder, City: orPlaceholder(originCity)},
		Arrival:      Endpoint{Time: Placeholder, Airport: Placeholder, City: orPlaceholder(destCity)},
		Duration:     FormatDuration(itin.Duration),
		Price:        n.Prices.Normalize(raw.Price.Total, raw.Price.Currency),
		Stops:        max(len(itin.Segments)-1, 0),
		Aircraft:     Placeholder,
		Amenities:    append([]string(nil), flightAmenities...),
		Rating:       defaultFlightRating,
	}
	f.StopLabel = StopLabel(f.Stops)

	if first != nil {
		f.FlightNumber = orPlaceholder(strings.TrimSpace(first.CarrierCode + " " + string(first.Number)))
		f.Departure.Time = FormatClock(first.Departure.At)
		f.Departure.Airport = orPlaceholder(first.Departure.IataCode)
		f.Aircraft = orPlaceholder(first.Aircraft.Code)
	}
	if last != nil {
		f.Arrival.Time = FormatClock(last.Arrival.At)
		f.Arrival.Airport = orPlaceholder(last.Arrival.IataCode)
	}
	return f
}

// Hotel formats the first room offer of raw. Rating, review count and
// discount are seeded from the hotel id so they never change between calls.
func (n *Normalizer) Hotel(raw services.RawHotelOffer, destination string) Hotel {
	info := raw.Hotel
	var offer services.RawRoomOffer
	if len(raw.Offers) > 0 {
		offer = raw.Offers[0]
	}

	seed := Seed(info.HotelID)
	discount := HotelDiscount(seed)

	h := Hotel{
		ID:        info.HotelID,
		Name:      info.Name,
		Location:  fmt.Sprintf("%s, %s", orDefault(info.CityCode, "City"), destination),
		Rating:    HotelRating(seed),
		Reviews:   HotelReviews(seed),
		Discount:  discount,
		Image:     HotelImage(info.Name, info.ChainCode),
		Amenities: append([]string(nil), hotelAmenities...),
		Badge:     ChainName(info.Name, info.ChainCode),
		ChainCode: info.ChainCode,
		Available: raw.Available,
		CheckIn:   offer.CheckInDate,
		CheckOut:  offer.CheckOutDate,
		RoomType:  offer.Room.TypeEstimated.Category,
		BedType:   offer.Room.TypeEstimated.BedType,
		BedCount:  int(offer.Room.TypeEstimated.Beds),
	}
	if h.ID == "" {
		h.ID = "hotel-" + strconv.Itoa(Seed(info.Name))
	}
	if h.Name == "" {
		h.Name = "Hotel Name Not Available"
	}

	if offer.Price.Total.Valid {
		h.Price = n.Prices.Normalize(offer.Price.Total, offer.Price.Currency)
	} else {
		h.Price = n.Prices.Whole(5000 + seed%20000)
	}
	if offer.Price.Base.Valid {
		base := n.Prices.Normalize(offer.Price.Base, offer.Price.Currency)
		orig := n.Prices.Whole(int(math.Round(float64(base.Amount) * (1 + float64(discount)/100))))
		h.OriginalPrice = &orig
	}

	h.Description = offer.Room.Description.Text
	if h.Description == "" {
		category := "hotel room"
		if c := offer.Room.TypeEstimated.Category; c != "" {
			category = strings.ReplaceAll(strings.ToLower(c), "_", " ")
		}
		h.Description = fmt.Sprintf("Luxurious %s with modern amenities", category)
	}

	tier := "Standard Amenities"
	if offer.Room.TypeEstimated.Category == "DELUXE_ROOM" {
		tier = "Deluxe Amenities"
	}
	h.Features = []string{"Free WiFi", "Restaurant", "Parking", tier}

	if info.Latitude.Valid && info.Longitude.Valid {
		h.Coordinates = &Coordinates{Latitude: info.Latitude.Value, Longitude: info.Longitude.Value}
	}
	return h
}

// StopLabel renders a stop count: "Non-stop", "1 stop", "2 stops".
func StopLabel(stops int) string {
	switch {
	case stops <= 0:
		return "Non-stop"
	case stops == 1:
		return "1 stop"
	default:
		return fmt.Sprintf("%d stops", stops)
	}
}

func orPlaceholder(s string) string {
	return orDefault(s, Placeholder)
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

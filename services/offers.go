package services

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ─── Requests / responses of the remote backend ──────────────────────────────

type FlightSearchRequest struct {
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DepartureDate string  `json:"departure_date"`
	ReturnDate    *string `json:"return_date"`
	Adults        int     `json:"adults"`
	Children      int     `json:"children"`
	Infants       int     `json:"infants"`
}

type FlightSearchResponse struct {
	Success         bool             `json:"success"`
	OutboundFlights []RawFlightOffer `json:"outbound_flights"`
	Error           string           `json:"error,omitempty"`
}

type HotelSearchRequest struct {
	Destination string `json:"destination"`
	CheckIn     string `json:"check_in"`
	CheckOut    string `json:"check_out"`
	Rooms       int    `json:"rooms"`
	Adults      int    `json:"adults"`
	Children    int    `json:"children"`
}

type HotelSearchResponse struct {
	Success bool            `json:"success"`
	Hotels  []RawHotelOffer `json:"hotels"`
	Error   string          `json:"error,omitempty"`
}

type RAGResponse struct {
	Itinerary string `json:"itinerary,omitempty"`
	Error     string `json:"error,omitempty"`
}

// ─── Raw offers (Amadeus shaped, only partially trusted) ─────────────────────

type RawFlightOffer struct {
	ID                     string         `json:"id"`
	Itineraries            []RawItinerary `json:"itineraries"`
	Price                  RawPrice       `json:"price"`
	ValidatingAirlineCodes []string       `json:"validatingAirlineCodes"`
}

type RawItinerary struct {
	Duration string       `json:"duration"`
	Segments []RawSegment `json:"segments"`
}

type RawSegment struct {
	Departure   RawEndpoint `json:"departure"`
	Arrival     RawEndpoint `json:"arrival"`
	CarrierCode string      `json:"carrierCode"`
	Number      Text        `json:"number"`
	Aircraft    struct {
		Code string `json:"code"`
	} `json:"aircraft"`
}

type RawEndpoint struct {
	IataCode string `json:"iataCode"`
	At       string `json:"at"`
}

type RawPrice struct {
	Total    Amount `json:"total"`
	Base     Amount `json:"base"`
	Currency string `json:"currency"`
}

type RawHotelOffer struct {
	Hotel     RawHotel       `json:"hotel"`
	Available bool           `json:"available"`
	Offers    []RawRoomOffer `json:"offers"`
}

type RawHotel struct {
	HotelID   string     `json:"hotelId"`
	Name      string     `json:"name"`
	CityCode  string     `json:"cityCode"`
	ChainCode string     `json:"chainCode"`
	Latitude  Coordinate `json:"latitude"`
	Longitude Coordinate `json:"longitude"`
}

type RawRoomOffer struct {
	CheckInDate  string   `json:"checkInDate"`
	CheckOutDate string   `json:"checkOutDate"`
	Price        RawPrice `json:"price"`
	Room         RawRoom  `json:"room"`
}

type RawRoom struct {
	Description struct {
		Text string `json:"text"`
	} `json:"description"`
	TypeEstimated struct {
		Category string `json:"category"`
		Beds     Count  `json:"beds"`
		BedType  string `json:"bedType"`
	} `json:"typeEstimated"`
}

// Amount is a price that may arrive as a JSON string ("1500.00") or number.
// Anything unparseable decodes as absent rather than failing the whole body.
type Amount struct {
	Value float64
	Valid bool
}

func NewAmount(v float64) Amount {
	return Amount{Value: v, Valid: true}
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	v, ok := parseNumber(b)
	*a = Amount{Value: v, Valid: ok}
	return nil
}

// MarshalJSON writes the string form the upstream API uses.
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(strconv.FormatFloat(a.Value, 'f', 2, 64))), nil
}

// Coordinate is a latitude or longitude decoded as leniently as Amount.
type Coordinate struct {
	Value float64
	Valid bool
}

func NewCoordinate(v float64) Coordinate {
	return Coordinate{Value: v, Valid: true}
}

func (c *Coordinate) UnmarshalJSON(b []byte) error {
	v, ok := parseNumber(b)
	*c = Coordinate{Value: v, Valid: ok}
	return nil
}

func (c Coordinate) MarshalJSON() ([]byte, error) {
	if !c.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(c.Value, 'f', -1, 64)), nil
}

// Text is a string field that may arrive as a JSON number ("number": 123).
// Objects, arrays and booleans decode as empty.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = Text(s)
		return nil
	}
	if _, ok := parseNumber(b); ok {
		*t = Text(strings.TrimSpace(string(b)))
		return nil
	}
	*t = ""
	return nil
}

// Count is a non-negative whole number that may arrive as a string ("2").
// Anything unparseable decodes as zero.
type Count int

func (n *Count) UnmarshalJSON(b []byte) error {
	v, ok := parseNumber(b)
	if !ok || v < 0 || v > math.MaxInt32 {
		*n = 0
		return nil
	}
	*n = Count(v)
	return nil
}

// parseNumber reads a JSON number or a string holding one.
func parseNumber(b []byte) (float64, bool) {
	s := strings.TrimSpace(string(b))
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return 0, false
		}
		s = strings.TrimSpace(str)
	}
	if s == "" || s == "null" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

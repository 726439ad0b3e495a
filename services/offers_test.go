package services

import (
	"encoding/json"
	"testing"
)

func TestAmountUnmarshal(t *testing.T) {
	tests := []struct {
		in    string
		want  float64
		valid bool
	}{
		{`"1500.00"`, 1500, true},
		{`1500`, 1500, true},
		{`" 12.5 "`, 12.5, true},
		{`null`, 0, false},
		{`""`, 0, false},
		{`"N/A"`, 0, false},
		{`"NaN"`, 0, false},
	}
	for _, tt := range tests {
		var a Amount
		if err := json.Unmarshal([]byte(tt.in), &a); err != nil {
			t.Errorf("Unmarshal(%s) error = %v", tt.in, err)
			continue
		}
		if a.Valid != tt.valid || a.Value != tt.want {
			t.Errorf("Unmarshal(%s) = %+v, want %v valid=%v", tt.in, a, tt.want, tt.valid)
		}
	}
}

func TestRawHotelOfferTolerant(t *testing.T) {
	body := `{"hotel": {"hotelId": "HLBOM1", "name": "Hilton", "latitude": 19.1},
		"offers": [{"price": {"total": "abc", "currency": "INR"}}]}`

	var h RawHotelOffer
	if err := json.Unmarshal([]byte(body), &h); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if h.Offers[0].Price.Total.Valid {
		t.Error("unparseable total should be absent")
	}
	if !h.Hotel.Latitude.Valid || h.Hotel.Latitude.Value != 19.1 || h.Hotel.Longitude.Valid {
		t.Errorf("coordinates = %+v %+v", h.Hotel.Latitude, h.Hotel.Longitude)
	}
}

func TestScalarFieldsTolerateWrongTypes(t *testing.T) {
	flights := `{"success": true, "outbound_flights": [{"id": "1", "itineraries": [{"segments": [
		{"carrierCode": "AI", "number": 123},
		{"carrierCode": "AI", "number": {"bad": true}}]}]}]}`

	var fr FlightSearchResponse
	if err := json.Unmarshal([]byte(flights), &fr); err != nil {
		t.Fatalf("flight response rejected: %v", err)
	}
	segs := fr.OutboundFlights[0].Itineraries[0].Segments
	if segs[0].Number != "123" || segs[1].Number != "" {
		t.Errorf("numbers = %q %q", segs[0].Number, segs[1].Number)
	}

	hotels := `{"success": true, "hotels": [{"hotel": {"hotelId": "X", "latitude": "19.07", "longitude": "east"},
		"offers": [{"room": {"typeEstimated": {"beds": "2"}}}]},
		{"hotel": {"hotelId": "Y"}, "offers": [{"room": {"typeEstimated": {"beds": "two"}}}]}]}`

	var hr HotelSearchResponse
	if err := json.Unmarshal([]byte(hotels), &hr); err != nil {
		t.Fatalf("hotel response rejected: %v", err)
	}
	first := hr.Hotels[0]
	if !first.Hotel.Latitude.Valid || first.Hotel.Latitude.Value != 19.07 || first.Hotel.Longitude.Valid {
		t.Errorf("coordinates = %+v %+v", first.Hotel.Latitude, first.Hotel.Longitude)
	}
	if got := first.Offers[0].Room.TypeEstimated.Beds; got != 2 {
		t.Errorf("beds = %d, want 2", got)
	}
	if got := hr.Hotels[1].Offers[0].Room.TypeEstimated.Beds; got != 0 {
		t.Errorf("unparseable beds = %d, want 0", got)
	}
}

func TestCoordinateMarshal(t *testing.T) {
	b, err := json.Marshal(RawHotel{Latitude: NewCoordinate(19.0760)})
	if err != nil {
		t.Fatal(err)
	}
	var back RawHotel
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if back.Latitude.Value != 19.076 || back.Longitude.Valid {
		t.Errorf("round trip = %s", b)
	}
}

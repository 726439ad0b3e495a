package fixtures

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"triptactix/display"
	"triptactix/services"
)

func TestFlightOffers(t *testing.T) {
	offers := FlightOffers(services.FlightSearchRequest{Origin: "bom", Destination: "DEL", DepartureDate: "2026-10-20", Adults: 2})
	if len(offers) != len(airlineOptions) {
		t.Fatalf("got %d offers", len(offers))
	}

	for i, o := range offers {
		segs := o.Itineraries[0].Segments
		if segs[0].Departure.IataCode != "BOM" || segs[len(segs)-1].Arrival.IataCode != "DEL" {
			t.Errorf("offer %d route = %s -> %s", i, segs[0].Departure.IataCode, segs[len(segs)-1].Arrival.IataCode)
		}
		if len(segs)-1 != airlineOptions[i].stops {
			t.Errorf("offer %d has %d segments", i, len(segs))
		}
		if display.FormatDuration(o.Itineraries[0].Duration) == display.Placeholder {
			t.Errorf("offer %d duration %q not parseable", i, o.Itineraries[0].Duration)
		}
		if !o.Price.Total.Valid || o.Price.Total.Value <= 0 {
			t.Errorf("offer %d price = %+v", i, o.Price.Total)
		}
	}

	// DEL-BOM base 45 EUR, AI tier, two adults.
	if got := offers[0].Price.Total.Value; got != 90 {
		t.Errorf("AI price = %v, want 90", got)
	}
}

func TestFlightOffers_UnknownRoute(t *testing.T) {
	if got := FlightOffers(services.FlightSearchRequest{Origin: "DEL", Destination: "XYZ", DepartureDate: "2026-10-20"}); len(got) != 0 {
		t.Errorf("unknown route returned %d offers", len(got))
	}
}

func TestHotelOffers(t *testing.T) {
	offers := HotelOffers(services.HotelSearchRequest{Destination: "Mumbai, Maharashtra", CheckIn: "2026-10-20", CheckOut: "2026-10-23", Rooms: 1})
	if len(offers) != len(cityHotels["mumbai"]) {
		t.Fatalf("got %d offers", len(offers))
	}
	first := offers[0]
	if first.Hotel.CityCode != "BOM" || first.Hotel.HotelID != "MCBOM001" {
		t.Errorf("hotel = %+v", first.Hotel)
	}
	if got := first.Offers[0].Price.Total.Value; got != 14500*3 {
		t.Errorf("total = %v", got)
	}

	if got := HotelOffers(services.HotelSearchRequest{Destination: "Delhi"}); len(got) == 0 {
		t.Error("Delhi should resolve to New Delhi hotels")
	}
	if got := HotelOffers(services.HotelSearchRequest{Destination: "Atlantis"}); len(got) != 0 {
		t.Errorf("unknown destination returned %d offers", len(got))
	}
}

func TestRouterAgainstClient(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(NewRouter(logger))
	defer srv.Close()

	client := services.NewBackendClient(srv.URL, 0, logger)
	ctx := context.Background()

	flights, err := client.SearchFlights(ctx, services.FlightSearchRequest{Origin: "DEL", Destination: "BOM", DepartureDate: "2026-10-20", Adults: 1})
	if err != nil || !flights.Success || len(flights.OutboundFlights) == 0 {
		t.Fatalf("SearchFlights() = %+v, %v", flights, err)
	}

	hotels, err := client.SearchHotels(ctx, services.HotelSearchRequest{Destination: "Goa", CheckIn: "2026-10-20", CheckOut: "2026-10-21"})
	if err != nil || len(hotels.Hotels) == 0 {
		t.Fatalf("SearchHotels() = %+v, %v", hotels, err)
	}

	rag, err := client.Itinerary(ctx, "Weekend in Goa")
	if err != nil || !strings.Contains(rag.Itinerary, "Weekend in Goa") {
		t.Fatalf("Itinerary() = %+v, %v", rag, err)
	}
}

package fixtures

import (
	"fmt"
	"math"
	"strings"
	"time"

	"triptactix/catalog"
	"triptactix/services"
)

type hotelSeed struct {
	name    string
	chain   string
	nightly float64 // INR
	lat     float64
	lon     float64
}

var cityHotels = map[string][]hotelSeed{
	"mumbai": {
		{"JW Marriott Mumbai Juhu", "MC", 14500, 19.1009, 72.8258},
		{"Courtyard by Marriott Mumbai International Airport", "MC", 8200, 19.1136, 72.8697},
		{"Hilton Mumbai International Airport", "HL", 9800, 19.1082, 72.8680},
		{"Holiday Inn Mumbai International Airport", "HI", 6900, 19.1039, 72.8553},
		{"The Taj Mahal Palace", "", 22000, 18.9217, 72.8332},
	},
	"goa": {
		{"Novotel Goa Candolim", "NV", 7600, 15.5170, 73.7628},
		{"Radisson Blu Resort Goa", "RD", 8800, 15.2162, 73.9277},
		{"Hyatt Centric Candolim Goa", "HY", 9400, 15.5161, 73.7694},
		{"Cidade de Goa", "", 11200, 15.4614, 73.8071},
	},
	"new delhi": {
		{"Hyatt Regency Delhi", "HY", 11800, 28.5680, 77.1859},
		{"Sheraton New Delhi", "SW", 9900, 28.5290, 77.2183},
		{"The Westin Gurgaon", "WS", 10400, 28.5030, 77.0903},
		{"Holiday Inn New Delhi Mayur Vihar", "HI", 6400, 28.5843, 77.3106},
		{"The Imperial New Delhi", "", 17500, 28.6253, 77.2183},
	},
	"bangalore": {
		{"The Ritz-Carlton Bangalore", "RC", 18500, 12.9719, 77.6077},
		{"Radisson Blu Atria Bengaluru", "RD", 7400, 12.9766, 77.5822},
		{"Novotel Bengaluru Techpark", "NV", 6600, 12.9857, 77.7296},
		{"Shangri-La Bengaluru", "", 12900, 12.9925, 77.5866},
	},
	"jaipur": {
		{"Hilton Jaipur", "HL", 7200, 26.9124, 75.7873},
		{"Holiday Inn Jaipur City Centre", "HI", 5600, 26.9156, 75.8003},
		{"Rambagh Palace", "", 32000, 26.8985, 75.8081},
	},
	"chennai": {
		{"Hyatt Regency Chennai", "HY", 8900, 13.0446, 80.2489},
		{"Novotel Chennai OMR", "NV", 5900, 12.9007, 80.2279},
		{"ITC Grand Chola", "", 14800, 13.0106, 80.2206},
	},
	"paris": {
		{"Pullman Paris Tour Eiffel", "", 24500, 48.8554, 2.2928},
		{"Hilton Paris Opera", "HL", 27800, 48.8754, 2.3262},
		{"Novotel Paris Centre Tour Eiffel", "NV", 17900, 48.8493, 2.2849},
		{"Hotel des Arts Montmartre", "", 11600, 48.8844, 2.3380},
	},
	"london": {
		{"Hilton London Tower Bridge", "HL", 19800, 51.5040, -0.0812},
		{"The Hoxton Shoreditch", "", 16500, 51.5254, -0.0797},
		{"InterContinental London Park Lane", "IC", 38500, 51.5044, -0.1496},
		{"citizenM London Bankside", "", 14500, 51.5067, -0.1003},
	},
	"dubai": {
		{"JW Marriott Marquis Dubai", "MC", 21800, 25.1857, 55.2573},
		{"Hyatt Regency Dubai Creek Heights", "HY", 12400, 25.2346, 55.3232},
		{"Atlantis The Palm", "", 42000, 25.1304, 55.1171},
		{"InterContinental Dubai Festival City", "IC", 15300, 25.2220, 55.3524},
	},
}

var roomCategories = []struct {
	category string
	bedType  string
	beds     int
}{
	{"STANDARD_ROOM", "DOUBLE", 1},
	{"DELUXE_ROOM", "KING", 1},
	{"SUPERIOR_ROOM", "TWIN", 2},
}

// HotelOffers returns offers for a known destination and none for anything
// else. Prices are per stay in INR.
func HotelOffers(req services.HotelSearchRequest) []services.RawHotelOffer {
	city := cityKey(req.Destination)
	seeds, ok := cityHotels[city]
	if !ok {
		return []services.RawHotelOffer{}
	}

	nights := stayNights(req.CheckIn, req.CheckOut)
	rooms := max(req.Rooms, 1)
	cityCode := cityCodeFor(city)

	offers := make([]services.RawHotelOffer, 0, len(seeds))
	for i, h := range seeds {
		room := roomCategories[i%len(roomCategories)]
		total := math.Round(h.nightly * float64(nights*rooms))

		offer := services.RawHotelOffer{
			Hotel: services.RawHotel{
				HotelID:   fmt.Sprintf("%s%s%03d", chainOrDefault(h.chain), cityCode, i+1),
				Name:      h.name,
				CityCode:  cityCode,
				ChainCode: h.chain,
				Latitude:  services.NewCoordinate(h.lat),
				Longitude: services.NewCoordinate(h.lon),
			},
			Available: true,
			Offers: []services.RawRoomOffer{{
				CheckInDate:  req.CheckIn,
				CheckOutDate: req.CheckOut,
				Price: services.RawPrice{
					Total:    services.NewAmount(total),
					Base:     services.NewAmount(math.Round(total * 0.88)),
					Currency: "INR",
				},
			}},
		}
		offer.Offers[0].Room.TypeEstimated.Category = room.category
		offer.Offers[0].Room.TypeEstimated.BedType = room.bedType
		offer.Offers[0].Room.TypeEstimated.Beds = services.Count(room.beds)
		offers = append(offers, offer)
	}
	return offers
}

// cityKey reduces "Mumbai, Maharashtra" or "Delhi" to a cityHotels key.
func cityKey(destination string) string {
	city := strings.ToLower(strings.TrimSpace(destination))
	if i := strings.Index(city, ","); i >= 0 {
		city = strings.TrimSpace(city[:i])
	}
	if city == "delhi" {
		return "new delhi"
	}
	return city
}

func cityCodeFor(city string) string {
	if a, ok := catalog.AirportForCity(city); ok {
		return a.Code
	}
	code := strings.ToUpper(strings.ReplaceAll(city, " ", ""))
	if len(code) > 3 {
		code = code[:3]
	}
	return code
}

func chainOrDefault(code string) string {
	if code == "" {
		return "XX"
	}
	return code
}

func stayNights(checkIn, checkOut string) int {
	in, err1 := time.Parse("2006-01-02", checkIn)
	out, err2 := time.Parse("2006-01-02", checkOut)
	if err1 != nil || err2 != nil || !out.After(in) {
		return 1
	}
	return int(out.Sub(in).Hours() / 24)
}

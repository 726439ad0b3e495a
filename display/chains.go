package display

import (
	"math"
	"strings"
	"unicode/utf16"
)

// FallbackChain is the badge for hotels outside the chain table.
const FallbackChain = "PREMIUM HOTEL"

var hotelImages = []string{
	"/dubai-modern-skyline-with-burj-khalifa-at-night.jpg",
	"/tokyo-skyline-with-mount-fuji-in-background-at-sun.jpg",
	"/eiffel-tower-and-paris-cityscape-at-golden-hour.jpg",
	"/santorini-white-buildings-and-blue-domes-overlooki.jpg",
	"/bali-rice-terraces-with-traditional-temples.jpg",
	"/machu-picchu-ancient-ruins-in-misty-mountains.jpg",
}

type brand struct {
	keyword string
	label   string
	image   string
}

type chain struct {
	keyword string
	code    string
	brand
	subBrands []brand
}

// Order matters: the first matching chain wins.
var chains = []chain{
	{
		keyword: "marriott", code: "MC",
		brand: brand{label: "MARRIOTT", image: hotelImages[2]},
		subBrands: []brand{
			{keyword: "courtyard", label: "COURTYARD", image: hotelImages[0]},
			{keyword: "jw", label: "JW MARRIOTT", image: hotelImages[1]},
		},
	},
	{keyword: "hilton", code: "HL", brand: brand{label: "HILTON", image: hotelImages[3]}},
	{keyword: "holiday inn", code: "HI", brand: brand{label: "HOLIDAY INN", image: hotelImages[5]}},
	{keyword: "intercontinental", code: "IC", brand: brand{label: "INTERCONTINENTAL", image: hotelImages[4]}},
	{keyword: "hyatt", code: "HY", brand: brand{label: "HYATT", image: hotelImages[0]}},
	{keyword: "radisson", code: "RD", brand: brand{label: "RADISSON", image: hotelImages[2]}},
	{keyword: "novotel", code: "NV", brand: brand{label: "NOVOTEL", image: hotelImages[1]}},
	{keyword: "sheraton", code: "SW", brand: brand{label: "SHERATON"}},
	{keyword: "westin", code: "WS", brand: brand{label: "WESTIN"}},
	{keyword: "ritz", code: "RC", brand: brand{label: "RITZ-CARLTON"}},
}

func matchBrand(name, code string) (brand, bool) {
	name = strings.ToLower(name)
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, c := range chains {
		if !strings.Contains(name, c.keyword) && code != c.code {
			continue
		}
		for _, sub := range c.subBrands {
			if strings.Contains(name, sub.keyword) {
				return sub, true
			}
		}
		return c.brand, true
	}
	return brand{}, false
}

// ChainName returns the badge label for a hotel, e.g. "JW MARRIOTT".
func ChainName(name, code string) string {
	if b, ok := matchBrand(name, code); ok {
		return b.label
	}
	return FallbackChain
}

// HotelImage picks the picture for a hotel. Chains without a picture of
// their own fall through to the name hash like unknown hotels.
func HotelImage(name, code string) string {
	if b, ok := matchBrand(name, code); ok && b.image != "" {
		return b.image
	}
	return hotelImages[Seed(name)%len(hotelImages)]
}

// Seed sums the UTF-16 code units of id, so characters outside the BMP
// count as their two surrogates. Empty ids seed as "default".
func Seed(id string) int {
	if id == "" {
		id = "default"
	}
	sum := 0
	for _, u := range utf16.Encode([]rune(id)) {
		sum += int(u)
	}
	return sum
}

// HotelRating is between 4.5 and 5.0, one decimal.
func HotelRating(seed int) float64 {
	r := 4.0 + float64(seed%100)/100 + 0.5
	return math.Min(5.0, math.Round(r*10)/10)
}

func HotelReviews(seed int) int {
	return 50 + seed%1000 + seed%500
}

// HotelDiscount is a percentage between 5 and 29.
func HotelDiscount(seed int) int {
	return 5 + seed%25
}

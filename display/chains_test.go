package display

import "testing"

func TestChainName(t *testing.T) {
	tests := []struct {
		name, code, want string
	}{
		{"Courtyard by Marriott Mumbai", "", "COURTYARD"},
		{"JW Marriott Juhu", "", "JW MARRIOTT"},
		{"Some Tower", "MC", "MARRIOTT"},
		{"Hilton Garden Inn", "", "HILTON"},
		{"Holiday Inn Express", "", "HOLIDAY INN"},
		{"The Ritz Residences", "", "RITZ-CARLTON"},
		{"Unbranded", "ws", "WESTIN"},
		{"Hilton by Hyatt", "", "HILTON"},
		{"Taj Palace", "TJ", "PREMIUM HOTEL"},
		{"", "", "PREMIUM HOTEL"},
	}
	for _, tt := range tests {
		if got := ChainName(tt.name, tt.code); got != tt.want {
			t.Errorf("ChainName(%q, %q) = %q, want %q", tt.name, tt.code, got, tt.want)
		}
	}
}

func TestHotelImage(t *testing.T) {
	if got := HotelImage("Hilton Mumbai", ""); got != hotelImages[3] {
		t.Errorf("Hilton image = %q", got)
	}
	// "ab" sums to 195; 195 % 6 == 3.
	if got := HotelImage("ab", ""); got != hotelImages[3] {
		t.Errorf("hashed image = %q", got)
	}
	// Sheraton has no picture of its own.
	if got := HotelImage("Sheraton", ""); got != hotelImages[Seed("Sheraton")%len(hotelImages)] {
		t.Errorf("Sheraton image = %q", got)
	}
}

func TestMappingIsPure(t *testing.T) {
	names := []string{"Taj Palace", "Marriott", "Zed Inn", "", "ホテル"}
	for _, n := range names {
		if ChainName(n, "") != ChainName(n, "") || HotelImage(n, "") != HotelImage(n, "") {
			t.Errorf("mapping for %q is not deterministic", n)
		}
	}
}

func TestSeededValues(t *testing.T) {
	if Seed("") != Seed("default") {
		t.Error("empty id should seed as default")
	}

	seed := Seed("MCBOMJW") // 77+67+66+79+77+74+87 = 527
	if seed != 527 {
		t.Fatalf("Seed = %d, want 527", seed)
	}
	if got := HotelRating(seed); got != 4.8 {
		t.Errorf("HotelRating = %v, want 4.8", got)
	}
	if got := HotelReviews(seed); got != 50+527+27 {
		t.Errorf("HotelReviews = %d", got)
	}
	if got := HotelDiscount(seed); got != 5+527%25 {
		t.Errorf("HotelDiscount = %d", got)
	}

	for s := 0; s < 2000; s++ {
		r := HotelRating(s)
		if r < 4.5 || r > 5.0 {
			t.Fatalf("HotelRating(%d) = %v out of range", s, r)
		}
		if d := HotelDiscount(s); d < 5 || d > 29 {
			t.Fatalf("HotelDiscount(%d) = %d out of range", s, d)
		}
	}
}

func TestHotelRating(t *testing.T) {
	tests := []struct {
		id   string
		want float64
	}{
		{"MCBOMJW", 4.8},  // 4.0 + 0.27 + 0.5
		{"HLDEL001", 4.6}, // 4.0 + 0.06 + 0.5
		{"", 4.9},         // "default": 4.0 + 0.41 + 0.5
		{"c", 5.0},        // 99: 4.0 + 0.99 + 0.5, capped
	}
	for _, tt := range tests {
		if got := HotelRating(Seed(tt.id)); got != tt.want {
			t.Errorf("HotelRating(Seed(%q)) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestSeedCountsUTF16Units(t *testing.T) {
	// U+1F600 is the surrogate pair D83D DE00.
	if got, want := Seed("\U0001F600"), 0xD83D+0xDE00; got != want {
		t.Errorf("Seed(emoji) = %d, want %d", got, want)
	}
	if got := Seed("é"); got != 0xE9 {
		t.Errorf("Seed(é) = %d", got)
	}
}

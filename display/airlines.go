package display

import "strings"

var airlineNames = map[string]string{
	"AI": "Air India",
	"6E": "IndiGo",
	"UK": "Vistara",
	"SG": "SpiceJet",
	"IX": "Air India Express",
	"QP": "Akasa Air",
	"TK": "Turkish Airlines",
	"LH": "Lufthansa",
	"AF": "Air France",
	"BA": "British Airways",
	"EK": "Emirates",
	"QR": "Qatar Airways",
	"FZ": "FlyDubai",
	"UA": "United Airlines",
	"AA": "American Airlines",
	"DL": "Delta Air Lines",
	"KL": "KLM",
	"LX": "Swiss International Air Lines",
	"SQ": "Singapore Airlines",
	"CX": "Cathay Pacific",
	"NH": "ANA",
	"JL": "Japan Airlines",
	"EY": "Etihad Airways",
	"TG": "Thai Airways",
}

// AirlineName resolves an IATA carrier code. Unknown codes are shown as-is.
func AirlineName(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if name, ok := airlineNames[code]; ok {
		return name
	}
	if code != "" {
		return code
	}
	return "Unknown"
}

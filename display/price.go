package display

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"triptactix/services"
)

// DefaultCurrency is assumed when the backend omits a currency code.
const DefaultCurrency = "EUR"

// MinorUnitThreshold is the amount above which a foreign price is read as
// minor units (cents).
const MinorUnitThreshold = 1000

// defaultRates are approximate units of INR per unit of currency. They are
// display heuristics, not FX quotes.
var defaultRates = map[string]float64{
	"INR": 1,
	"EUR": 90,
	"USD": 83,
	"GBP": 105,
	"AED": 22.6,
}

var symbols = map[string]string{
	"INR": "₹",
	"EUR": "€",
	"USD": "$",
	"GBP": "£",
}

type Price struct {
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
	Label    string `json:"label"`
}

// PriceRule converts backend prices into one display currency.
type PriceRule struct {
	Target    string
	Rates     map[string]float64
	Threshold float64
}

// NewPriceRule builds the rule for target using the built-in rate table.
func NewPriceRule(target string) (PriceRule, error) {
	target = strings.ToUpper(strings.TrimSpace(target))
	if _, ok := defaultRates[target]; !ok {
		return PriceRule{}, fmt.Errorf("unsupported display currency %q", target)
	}
	return PriceRule{Target: target, Rates: defaultRates, Threshold: MinorUnitThreshold}, nil
}

// Normalize converts amount in currency to the target currency. Absent
// amounts become zero; codes missing from the rate table are taken to be in
// the target currency already. The result is never negative.
func (r PriceRule) Normalize(amount services.Amount, currency string) Price {
	code := strings.ToUpper(strings.TrimSpace(currency))
	if code == "" {
		code = DefaultCurrency
	}

	v := 0.0
	if amount.Valid {
		v = amount.Value
	}

	if rate, ok := r.Rates[code]; ok && code != r.Target {
		if v > r.Threshold {
			v /= 100
		}
		v = v * rate / r.Rates[r.Target]
	}

	return r.Whole(int(math.Max(0, math.Round(v))))
}

// Whole wraps an amount that is already in the target currency.
func (r PriceRule) Whole(n int) Price {
	if n < 0 {
		n = 0
	}
	return Price{Amount: n, Currency: r.Target, Label: FormatMoney(n, r.Target)}
}

// FormatMoney renders n with thousands grouping, e.g. "₹8,999".
func FormatMoney(n int, currency string) string {
	p := message.NewPrinter(language.English)
	if sym, ok := symbols[currency]; ok {
		return sym + p.Sprintf("%d", n)
	}
	return currency + " " + p.Sprintf("%d", n)
}

package search

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// ErrIncomplete is matched by validation errors caused by a missing field.
var ErrIncomplete = errors.New("search criteria incomplete")

type ValidationError struct {
	Field   string
	Message string
	Missing bool
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	if e.Missing {
		return ErrIncomplete
	}
	return nil
}

func missing(field string) *ValidationError {
	return &ValidationError{Field: field, Message: "is required", Missing: true}
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// FlightCriteria is one flight search. Dates are YYYY-MM-DD.
type FlightCriteria struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
	ReturnDate    string `json:"return_date,omitempty"`
	Adults        int    `json:"adults"`
	Children      int    `json:"children"`
	Infants       int    `json:"infants"`
}

// Complete reports whether every required field is filled in.
func (c FlightCriteria) Complete() bool {
	return strings.TrimSpace(c.Origin) != "" &&
		strings.TrimSpace(c.Destination) != "" &&
		strings.TrimSpace(c.DepartureDate) != ""
}

func (c FlightCriteria) normalized() FlightCriteria {
	c.Origin = strings.ToUpper(strings.TrimSpace(c.Origin))
	c.Destination = strings.ToUpper(strings.TrimSpace(c.Destination))
	c.DepartureDate = strings.TrimSpace(c.DepartureDate)
	c.ReturnDate = strings.TrimSpace(c.ReturnDate)
	if c.Adults == 0 {
		c.Adults = 1
	}
	return c
}

// Validate checks c against today's date.
func (c FlightCriteria) Validate(today time.Time) error {
	switch {
	case c.Origin == "":
		return missing("origin")
	case c.Destination == "":
		return missing("destination")
	case c.DepartureDate == "":
		return missing("departure_date")
	}
	if strings.EqualFold(c.Origin, c.Destination) {
		return invalid("destination", "must differ from origin")
	}

	dep, err := time.Parse(dateLayout, c.DepartureDate)
	if err != nil {
		return invalid("departure_date", "must be a date in YYYY-MM-DD form")
	}
	if dep.Before(day(today)) {
		return invalid("departure_date", "must not be in the past")
	}
	if c.ReturnDate != "" {
		ret, err := time.Parse(dateLayout, c.ReturnDate)
		if err != nil {
			return invalid("return_date", "must be a date in YYYY-MM-DD form")
		}
		if ret.Before(dep) {
			return invalid("return_date", "must not be before the departure date")
		}
	}
	return validateTravellers(c.Adults, c.Children, c.Infants)
}

// HotelCriteria is one hotel search. Dates are YYYY-MM-DD.
type HotelCriteria struct {
	Destination string `json:"destination"`
	CheckIn     string `json:"check_in"`
	CheckOut    string `json:"check_out"`
	Rooms       int    `json:"rooms"`
	Adults      int    `json:"adults"`
	Children    int    `json:"children"`
}

func (c HotelCriteria) Complete() bool {
	return strings.TrimSpace(c.Destination) != "" &&
		strings.TrimSpace(c.CheckIn) != "" &&
		strings.TrimSpace(c.CheckOut) != ""
}

func (c HotelCriteria) normalized() HotelCriteria {
	c.Destination = strings.TrimSpace(c.Destination)
	c.CheckIn = strings.TrimSpace(c.CheckIn)
	c.CheckOut = strings.TrimSpace(c.CheckOut)
	if c.Rooms == 0 {
		c.Rooms = 1
	}
	if c.Adults == 0 {
		c.Adults = 1
	}
	return c
}

func (c HotelCriteria) Validate() error {
	switch {
	case c.Destination == "":
		return missing("destination")
	case c.CheckIn == "":
		return missing("check_in")
	case c.CheckOut == "":
		return missing("check_out")
	}

	in, err := time.Parse(dateLayout, c.CheckIn)
	if err != nil {
		return invalid("check_in", "must be a date in YYYY-MM-DD form")
	}
	out, err := time.Parse(dateLayout, c.CheckOut)
	if err != nil {
		return invalid("check_out", "must be a date in YYYY-MM-DD form")
	}
	if !out.After(in) {
		return invalid("check_out", "must be after the check-in date")
	}
	if c.Rooms < 1 {
		return invalid("rooms", "must be at least 1")
	}
	return validateTravellers(c.Adults, c.Children, 0)
}

func validateTravellers(adults, children, infants int) error {
	switch {
	case adults < 1:
		return invalid("adults", "must be at least 1")
	case children < 0:
		return invalid("children", "must not be negative")
	case infants < 0:
		return invalid("infants", "must not be negative")
	}
	return nil
}

// day truncates t to midnight UTC of its calendar date.
func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

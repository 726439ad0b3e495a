package search

import (
	"context"
	"log/slog"

	"triptactix/catalog"
	"triptactix/display"
	"triptactix/services"
)

type FlightBackend interface {
	SearchFlights(ctx context.Context, req services.FlightSearchRequest) (*services.FlightSearchResponse, error)
}

// FlightSearch is the flight page's submission flow.
type FlightSearch struct {
	backend FlightBackend
	opts    Options
	logger  *slog.Logger
	flow    *flow[FlightCriteria, display.Flight]
}

func NewFlightSearch(backend FlightBackend, opts Options) *FlightSearch {
	opts = opts.withDefaults()
	return &FlightSearch{
		backend: backend,
		opts:    opts,
		logger:  opts.Logger.With("flow", "flights"),
		flow:    newFlow[FlightCriteria, display.Flight](flightSuggestions, opts.Now),
	}
}

func (s *FlightSearch) Snapshot() FlightSnapshot {
	return s.flow.snapshot()
}

// Submit validates c and runs one search. Validation errors leave the flow
// untouched. Backend failures are not errors: they end in StatusFailed.
func (s *FlightSearch) Submit(ctx context.Context, c FlightCriteria) (FlightSnapshot, error) {
	c = c.normalized()
	if err := c.Validate(s.opts.Now()); err != nil {
		return FlightSnapshot{}, err
	}

	epoch := s.flow.begin(c)
	req := services.FlightSearchRequest{
		Origin:        c.Origin,
		Destination:   c.Destination,
		DepartureDate: c.DepartureDate,
		Adults:        c.Adults,
		Children:      c.Children,
		Infants:       c.Infants,
	}
	if c.ReturnDate != "" {
		rd := c.ReturnDate
		req.ReturnDate = &rd
	}

	resp, err := s.backend.SearchFlights(ctx, req)

	var (
		status  = StatusFailed
		results []display.Flight
		message string
	)
	switch {
	case err != nil:
		s.logger.WarnContext(ctx, "flight search failed", "request_id", epoch, "error", err)
		message = flightFailureMessage
	case resp.Success && len(resp.OutboundFlights) > 0:
		status = StatusSuccess
		originCity, destCity := cityName(c.Origin), cityName(c.Destination)
		results = make([]display.Flight, 0, len(resp.OutboundFlights))
		for _, raw := range resp.OutboundFlights {
			results = append(results, s.opts.Normalizer.Flight(raw, originCity, destCity))
		}
	case resp.Error != "":
		message = appError(resp.Error)
	default:
		message = noFlightsMessage(c)
	}

	if !s.flow.finish(epoch, status, results, message) {
		s.logger.DebugContext(ctx, "discarding stale flight response", "request_id", epoch)
		return s.Snapshot(), nil
	}

	s.logger.InfoContext(ctx, "flight search finished",
		"request_id", epoch,
		"route", c.Origin+"-"+c.Destination,
		"status", status,
		"results", len(results),
	)
	record(ctx, s.opts, s.logger, Record{
		Kind: "flights", Criteria: c, Status: status, Message: message, Results: len(results), At: s.opts.Now(),
	})
	return s.Snapshot(), nil
}

// cityName is the city shown next to an airport code, empty when unknown.
func cityName(code string) string {
	if a, ok := catalog.LookupAirport(code); ok {
		return a.City
	}
	return ""
}

func record(ctx context.Context, opts Options, logger *slog.Logger, rec Record) {
	if opts.Recorder == nil {
		return
	}
	if err := opts.Recorder.RecordSearch(ctx, rec); err != nil {
		logger.WarnContext(ctx, "failed to record search", "kind", rec.Kind, "error", err)
	}
}

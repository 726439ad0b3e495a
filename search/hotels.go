package search

import (
	"context"
	"log/slog"

	"triptactix/display"
	"triptactix/services"
)

type HotelBackend interface {
	SearchHotels(ctx context.Context, req services.HotelSearchRequest) (*services.HotelSearchResponse, error)
}

// HotelSearch is the hotel page's submission flow.
type HotelSearch struct {
	backend HotelBackend
	opts    Options
	logger  *slog.Logger
	flow    *flow[HotelCriteria, display.Hotel]
}

func NewHotelSearch(backend HotelBackend, opts Options) *HotelSearch {
	opts = opts.withDefaults()
	return &HotelSearch{
		backend: backend,
		opts:    opts,
		logger:  opts.Logger.With("flow", "hotels"),
		flow:    newFlow[HotelCriteria, display.Hotel](hotelSuggestions, opts.Now),
	}
}

func (s *HotelSearch) Snapshot() HotelSnapshot {
	return s.flow.snapshot()
}

func (s *HotelSearch) Submit(ctx context.Context, c HotelCriteria) (HotelSnapshot, error) {
	c = c.normalized()
	if err := c.Validate(); err != nil {
		return HotelSnapshot{}, err
	}

	epoch := s.flow.begin(c)
	resp, err := s.backend.SearchHotels(ctx, services.HotelSearchRequest{
		Destination: c.Destination,
		CheckIn:     c.CheckIn,
		CheckOut:    c.CheckOut,
		Rooms:       c.Rooms,
		Adults:      c.Adults,
		Children:    c.Children,
	})

	var (
		status  = StatusFailed
		results []display.Hotel
		message string
	)
	switch {
	case err != nil:
		s.logger.WarnContext(ctx, "hotel search failed", "request_id", epoch, "error", err)
		message = hotelFailureMessage
	case resp.Success && len(resp.Hotels) > 0:
		status = StatusSuccess
		results = make([]display.Hotel, 0, len(resp.Hotels))
		for _, raw := range resp.Hotels {
			results = append(results, s.opts.Normalizer.Hotel(raw, c.Destination))
		}
	case resp.Error != "":
		message = appError(resp.Error)
	default:
		message = noHotelsMessage(c)
	}

	if !s.flow.finish(epoch, status, results, message) {
		s.logger.DebugContext(ctx, "discarding stale hotel response", "request_id", epoch)
		return s.Snapshot(), nil
	}

	s.logger.InfoContext(ctx, "hotel search finished",
		"request_id", epoch,
		"destination", c.Destination,
		"status", status,
		"results", len(results),
	)
	record(ctx, s.opts, s.logger, Record{
		Kind: "hotels", Criteria: c, Status: status, Message: message, Results: len(results), At: s.opts.Now(),
	})
	return s.Snapshot(), nil
}

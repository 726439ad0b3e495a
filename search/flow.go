// Package search runs the flight and hotel search flows of one visit.
//
// A flow moves idle → searching → success | failed. Every submission takes a
// new request id; a response that arrives after a newer submission started is
// dropped, so a slow first search can never overwrite a faster second one.
package search

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"triptactix/display"
)

type Status string

const (
	StatusIdle      Status = "idle"
	StatusSearching Status = "searching"
	StatusSuccess   Status = "success"
	StatusFailed    Status = "failed"
)

// Snapshot is a copy of a flow's state, safe to serialize.
type Snapshot[C, R any] struct {
	Status        Status    `json:"status"`
	RequestID     uint64    `json:"request_id"`
	Criteria      *C        `json:"criteria,omitempty"`
	Results       []R       `json:"results"`
	Message       string    `json:"message,omitempty"`
	Suggestions   []string  `json:"suggestions,omitempty"`
	SubmitEnabled bool      `json:"submit_enabled"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type (
	FlightSnapshot = Snapshot[FlightCriteria, display.Flight]
	HotelSnapshot  = Snapshot[HotelCriteria, display.Hotel]
)

// Record describes one finished search for the history store.
type Record struct {
	Kind     string
	Criteria any
	Status   Status
	Message  string
	Results  int
	At       time.Time
}

// Recorder persists finished searches. Failures are logged, never surfaced.
type Recorder interface {
	RecordSearch(ctx context.Context, rec Record) error
}

type Options struct {
	Normalizer *display.Normalizer
	Recorder   Recorder
	Logger     *slog.Logger
	Now        func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Normalizer == nil {
		rule, _ := display.NewPriceRule("INR")
		o.Normalizer = display.NewNormalizer(rule)
	}
	return o
}

type completer interface {
	Complete() bool
}

// flow holds the state shared by both search pages.
type flow[C completer, R any] struct {
	mu          sync.Mutex
	epoch       uint64
	status      Status
	criteria    *C
	results     []R
	message     string
	suggestions []string
	updatedAt   time.Time
	now         func() time.Time
}

func newFlow[C completer, R any](suggestions []string, now func() time.Time) *flow[C, R] {
	return &flow[C, R]{status: StatusIdle, suggestions: suggestions, now: now, updatedAt: now()}
}

// begin starts a submission and returns its request id.
func (f *flow[C, R]) begin(c C) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.epoch++
	f.status = StatusSearching
	f.criteria = &c
	f.message = ""
	f.updatedAt = f.now()
	return f.epoch
}

// finish applies an outcome unless a newer submission has started since.
func (f *flow[C, R]) finish(epoch uint64, status Status, results []R, message string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if epoch != f.epoch {
		return false
	}
	f.status = status
	f.results = results
	f.message = message
	f.updatedAt = f.now()
	return true
}

func (f *flow[C, R]) snapshot() Snapshot[C, R] {
	f.mu.Lock()
	defer f.mu.Unlock()

	s := Snapshot[C, R]{
		Status:    f.status,
		RequestID: f.epoch,
		Results:   append(make([]R, 0, len(f.results)), f.results...),
		Message:   f.message,
		UpdatedAt: f.updatedAt,
	}
	if f.criteria != nil {
		c := *f.criteria
		s.Criteria = &c
		s.SubmitEnabled = c.Complete() && f.status != StatusSearching
	}
	if f.status == StatusFailed {
		s.Suggestions = append([]string(nil), f.suggestions...)
	}
	return s
}

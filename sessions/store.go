// Package sessions keeps the in-memory state of every open page visit.
package sessions

import (
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"triptactix/chat"
	"triptactix/search"
)

var ErrNotFound = errors.New("session not found")

// Visit is the state of one page visit: both search flows and the chat.
type Visit struct {
	ID        string
	CreatedAt time.Time
	Flights   *search.FlightSearch
	Hotels    *search.HotelSearch
	Chat      *chat.Session

	lastSeen atomic.Int64
}

func (v *Visit) touch(now time.Time) { v.lastSeen.Store(now.UnixNano()) }

func (v *Visit) LastSeen() time.Time { return time.Unix(0, v.lastSeen.Load()) }

// Factory builds the flows of a new visit.
type Factory func() (*search.FlightSearch, *search.HotelSearch, *chat.Session)

// Store holds visits and evicts the ones idle for longer than the TTL.
type Store struct {
	mu      sync.RWMutex
	visits  map[string]*Visit
	ttl     time.Duration
	factory Factory
	now     func() time.Time
	logger  *slog.Logger

	done      chan struct{}
	closeOnce sync.Once
}

// NewStore starts the eviction janitor. A zero ttl keeps visits until deleted.
func NewStore(ttl time.Duration, factory Factory, logger *slog.Logger) *Store {
	s := newStore(ttl, factory, logger, time.Now)
	if ttl > 0 {
		go s.janitor(sweepInterval(ttl))
	}
	return s
}

func newStore(ttl time.Duration, factory Factory, logger *slog.Logger, now func() time.Time) *Store {
	return &Store{
		visits:  make(map[string]*Visit),
		ttl:     ttl,
		factory: factory,
		now:     now,
		logger:  logger.With("component", "sessions"),
		done:    make(chan struct{}),
	}
}

func sweepInterval(ttl time.Duration) time.Duration {
	return min(max(ttl/2, time.Second), time.Minute)
}

func (s *Store) Create() *Visit {
	flights, hotels, conversation := s.factory()
	now := s.now()
	v := &Visit{
		ID:        uuid.NewString(),
		CreatedAt: now,
		Flights:   flights,
		Hotels:    hotels,
		Chat:      conversation,
	}
	v.touch(now)

	s.mu.Lock()
	s.visits[v.ID] = v
	s.mu.Unlock()

	s.logger.Debug("session created", "session_id", v.ID)
	return v
}

// Get returns the visit and marks it as active.
func (s *Store) Get(id string) (*Visit, error) {
	s.mu.RLock()
	v, ok := s.visits[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	v.touch(s.now())
	return v, nil
}

func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.visits[id]; !ok {
		return ErrNotFound
	}
	delete(s.visits, id)
	return nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.visits)
}

// Close stops the janitor and drops every visit.
func (s *Store) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		s.mu.Lock()
		s.visits = make(map[string]*Visit)
		s.mu.Unlock()
	})
}

// sweep removes visits idle for longer than the TTL and reports how many.
func (s *Store) sweep() int {
	if s.ttl <= 0 {
		return 0
	}
	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()
	evicted := 0
	for id, v := range s.visits {
		if v.LastSeen().Before(cutoff) {
			delete(s.visits, id)
			evicted++
		}
	}
	return evicted
}

func (s *Store) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := s.sweep(); n > 0 {
				s.logger.Info("evicted idle sessions", "count", n)
			}
		case <-s.done:
			return
		}
	}
}

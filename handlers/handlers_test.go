package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"triptactix/chat"
	"triptactix/database"
	"triptactix/display"
	"triptactix/fixtures"
	"triptactix/search"
	"triptactix/services"
	"triptactix/sessions"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeHistory struct {
	logs  []database.SearchLog
	err   error
	limit int
}

func (f *fakeHistory) Recent(_ context.Context, limit int) ([]database.SearchLog, error) {
	f.limit = limit
	return f.logs, f.err
}

func (f *fakeHistory) Ping(context.Context) error { return f.err }

type blockingAssistant struct {
	release chan struct{}
}

func (b blockingAssistant) Itinerary(ctx context.Context, _ string) (*services.RAGResponse, error) {
	select {
	case <-b.release:
		return &services.RAGResponse{Itinerary: "Day 1: arrive."}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

type testAPI struct {
	router *gin.Engine
	store  *sessions.Store
}

// newTestAPI wires the handlers to the mock backend. A nil assistant uses the
// mock backend's /rag endpoint.
func newTestAPI(t *testing.T, assistant services.Assistant, history History) *testAPI {
	t.Helper()
	logger := discardLogger()

	backendSrv := httptest.NewServer(fixtures.NewRouter(logger))
	t.Cleanup(backendSrv.Close)
	backend := services.NewBackendClient(backendSrv.URL, 5*time.Second, logger)
	if assistant == nil {
		assistant = backend
	}

	rule, err := display.NewPriceRule("INR")
	if err != nil {
		t.Fatal(err)
	}
	opts := search.Options{Normalizer: display.NewNormalizer(rule), Logger: logger}

	store := sessions.NewStore(0, func() (*search.FlightSearch, *search.HotelSearch, *chat.Session) {
		return search.NewFlightSearch(backend, opts),
			search.NewHotelSearch(backend, opts),
			chat.NewSession(assistant, chat.Options{Logger: logger})
	}, logger)
	t.Cleanup(store.Close)

	return &testAPI{
		router: NewRouter(New(store, history, logger), []string{"http://localhost:3000"}, logger),
		store:  store,
	}
}

func (a *testAPI) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testAPI) newSession(t *testing.T) string {
	t.Helper()
	w := a.do(t, http.MethodPost, "/api/sessions", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("create session: status %d, body %s", w.Code, w.Body)
	}
	var resp struct {
		SessionID string `json:"session_id"`
	}
	decode(t, w, &resp)
	if resp.SessionID == "" {
		t.Fatal("empty session id")
	}
	return resp.SessionID
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %s: %v", w.Body, err)
	}
}

func inDays(n int) string {
	return time.Now().AddDate(0, 0, n).Format("2006-01-02")
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name    string
		history History
		want    string
	}{
		{"no database", nil, "disabled"},
		{"database up", &fakeHistory{}, "connected"},
		{"database down", &fakeHistory{err: errors.New("refused")}, "unreachable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t, nil, tt.history)
			w := api.do(t, http.MethodGet, "/api/health", nil)
			if w.Code != http.StatusOK {
				t.Fatalf("status %d", w.Code)
			}
			var resp map[string]any
			decode(t, w, &resp)
			if resp["status"] != "ok" || resp["database"] != tt.want {
				t.Errorf("resp = %v", resp)
			}
			if w.Header().Get("X-Request-ID") == "" {
				t.Error("missing X-Request-ID")
			}
		})
	}
}

func TestCatalogRoutes(t *testing.T) {
	api := newTestAPI(t, nil, nil)

	w := api.do(t, http.MethodGet, "/api/airports?q=mum", nil)
	var airports struct {
		Airports []struct {
			Code string `json:"code"`
		} `json:"airports"`
	}
	decode(t, w, &airports)
	if len(airports.Airports) != 1 || airports.Airports[0].Code != "BOM" {
		t.Errorf("airports = %+v", airports.Airports)
	}

	w = api.do(t, http.MethodGet, "/api/destinations?q=goa", nil)
	var dests struct {
		Destinations []string `json:"destinations"`
	}
	decode(t, w, &dests)
	if len(dests.Destinations) != 1 || dests.Destinations[0] != "Goa" {
		t.Errorf("destinations = %v", dests.Destinations)
	}

	w = api.do(t, http.MethodGet, "/api/routes/popular", nil)
	var routes struct {
		Routes []popularRoute `json:"routes"`
	}
	decode(t, w, &routes)
	if len(routes.Routes) == 0 {
		t.Fatal("no popular routes")
	}
	if r := routes.Routes[0]; r.FromCode != "DEL" || r.ToCode != "BOM" {
		t.Errorf("first route codes = %s -> %s", r.FromCode, r.ToCode)
	}
}

func TestSessionLifecycle(t *testing.T) {
	api := newTestAPI(t, nil, nil)
	id := api.newSession(t)

	w := api.do(t, http.MethodGet, "/api/sessions/"+id+"/flights", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("flights state: %d", w.Code)
	}
	var snap search.FlightSnapshot
	decode(t, w, &snap)
	if snap.Status != search.StatusIdle || snap.SubmitEnabled {
		t.Errorf("fresh flight state = %+v", snap)
	}

	if w := api.do(t, http.MethodDelete, "/api/sessions/"+id, nil); w.Code != http.StatusNoContent {
		t.Fatalf("delete: %d", w.Code)
	}
	if w := api.do(t, http.MethodDelete, "/api/sessions/"+id, nil); w.Code != http.StatusNotFound {
		t.Errorf("second delete: %d", w.Code)
	}
}

func TestUnknownSession(t *testing.T) {
	api := newTestAPI(t, nil, nil)
	paths := []struct{ method, path string }{
		{http.MethodGet, "/api/sessions/nope/flights"},
		{http.MethodPost, "/api/sessions/nope/flights/search"},
		{http.MethodGet, "/api/sessions/nope/hotels"},
		{http.MethodPost, "/api/sessions/nope/hotels/search"},
		{http.MethodGet, "/api/sessions/nope/itinerary"},
		{http.MethodPost, "/api/sessions/nope/itinerary/messages"},
		{http.MethodGet, "/api/sessions/nope/itinerary/pdf"},
	}
	for _, p := range paths {
		if w := api.do(t, p.method, p.path, map[string]string{}); w.Code != http.StatusNotFound {
			t.Errorf("%s %s = %d", p.method, p.path, w.Code)
		}
	}
}

func TestSearchFlights(t *testing.T) {
	api := newTestAPI(t, nil, nil)
	id := api.newSession(t)

	w := api.do(t, http.MethodPost, "/api/sessions/"+id+"/flights/search", map[string]any{
		"origin": "del", "destination": "BOM", "departure_date": inDays(7), "adults": 1,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", w.Code, w.Body)
	}
	var snap search.FlightSnapshot
	decode(t, w, &snap)
	if snap.Status != search.StatusSuccess || len(snap.Results) == 0 {
		t.Fatalf("snapshot = %+v", snap)
	}
	if !snap.SubmitEnabled {
		t.Error("submit should be enabled after the search finished")
	}
	f := snap.Results[0]
	if f.Departure.City != "New Delhi" || f.Price.Currency != "INR" || !strings.HasPrefix(f.Price.Label, "₹") {
		t.Errorf("flight = %+v", f)
	}
}

func TestSearchFlights_UnknownRouteFails(t *testing.T) {
	api := newTestAPI(t, nil, nil)
	id := api.newSession(t)

	w := api.do(t, http.MethodPost, "/api/sessions/"+id+"/flights/search", map[string]any{
		"origin": "DEL", "destination": "SIN", "departure_date": inDays(7),
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	var snap search.FlightSnapshot
	decode(t, w, &snap)
	if snap.Status != search.StatusFailed || !strings.HasPrefix(snap.Message, "No flights found for New Delhi (DEL) to Singapore (SIN)") {
		t.Errorf("snapshot = %+v", snap)
	}
	if len(snap.Suggestions) != 4 {
		t.Errorf("suggestions = %v", snap.Suggestions)
	}
}

func TestSearchValidation(t *testing.T) {
	api := newTestAPI(t, nil, nil)
	id := api.newSession(t)

	tests := []struct {
		name string
		path string
		body any
	}{
		{"missing origin", "/flights/search", map[string]any{"destination": "BOM", "departure_date": inDays(3)}},
		{"same airports", "/flights/search", map[string]any{"origin": "DEL", "destination": "del", "departure_date": inDays(3)}},
		{"past departure", "/flights/search", map[string]any{"origin": "DEL", "destination": "BOM", "departure_date": "2020-01-01"}},
		{"malformed body", "/flights/search", "not an object"},
		{"check-out before check-in", "/hotels/search", map[string]any{"destination": "Goa", "check_in": inDays(5), "check_out": inDays(4)}},
		{"missing destination", "/hotels/search", map[string]any{"check_in": inDays(5), "check_out": inDays(6)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := api.do(t, http.MethodPost, "/api/sessions/"+id+tt.path, tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status %d, body %s", w.Code, w.Body)
			}
		})
	}

	// Rejected submissions leave the flow untouched.
	w := api.do(t, http.MethodGet, "/api/sessions/"+id+"/flights", nil)
	var snap search.FlightSnapshot
	decode(t, w, &snap)
	if snap.Status != search.StatusIdle || snap.RequestID != 0 {
		t.Errorf("flow changed by invalid submissions: %+v", snap)
	}
}

func TestSearchHotels(t *testing.T) {
	api := newTestAPI(t, nil, nil)
	id := api.newSession(t)

	w := api.do(t, http.MethodPost, "/api/sessions/"+id+"/hotels/search", map[string]any{
		"destination": "Goa", "check_in": inDays(10), "check_out": inDays(12), "rooms": 1, "adults": 2,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", w.Code, w.Body)
	}
	var snap search.HotelSnapshot
	decode(t, w, &snap)
	if snap.Status != search.StatusSuccess || len(snap.Results) == 0 {
		t.Fatalf("snapshot = %+v", snap)
	}
	for _, h := range snap.Results {
		if h.Rating > 5 || h.Price.Amount <= 0 {
			t.Errorf("hotel = %+v", h)
		}
	}
}

func TestItineraryMessages(t *testing.T) {
	api := newTestAPI(t, nil, nil)
	id := api.newSession(t)

	w := api.do(t, http.MethodGet, "/api/sessions/"+id+"/itinerary", nil)
	var snap chat.Snapshot
	decode(t, w, &snap)
	if len(snap.Messages) != 1 || snap.Messages[0].Sender != chat.SenderAI || len(snap.QuickActions) != 7 {
		t.Fatalf("initial chat = %+v", snap)
	}

	w = api.do(t, http.MethodPost, "/api/sessions/"+id+"/itinerary/messages", map[string]string{"content": "3 days in Paris"})
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", w.Code, w.Body)
	}
	var resp replyResponse
	decode(t, w, &resp)
	if resp.Reply.Sender != chat.SenderAI || resp.Reply.Content == "" {
		t.Errorf("reply = %+v", resp.Reply)
	}
	if len(resp.Chat.Messages) != 3 || !resp.Chat.Connected || resp.Chat.Typing {
		t.Errorf("chat = %+v", resp.Chat)
	}

	w = api.do(t, http.MethodPost, "/api/sessions/"+id+"/itinerary/quick-actions", map[string]string{"action": "Dining"})
	if w.Code != http.StatusOK {
		t.Fatalf("quick action status %d", w.Code)
	}
	decode(t, w, &resp)
	if got := resp.Chat.Messages[3].Content; !strings.HasPrefix(got, "Help me with") {
		t.Errorf("quick action message = %q", got)
	}
}

func TestItineraryErrors(t *testing.T) {
	api := newTestAPI(t, nil, nil)
	id := api.newSession(t)

	tests := []struct {
		name string
		path string
		body any
	}{
		{"blank message", "/itinerary/messages", map[string]string{"content": "   "}},
		{"unknown action", "/itinerary/quick-actions", map[string]string{"action": "Karaoke"}},
		{"missing action", "/itinerary/quick-actions", map[string]string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := api.do(t, http.MethodPost, "/api/sessions/"+id+tt.path, tt.body); w.Code != http.StatusBadRequest {
				t.Errorf("status %d, body %s", w.Code, w.Body)
			}
		})
	}
}

func TestItineraryBusy(t *testing.T) {
	release := make(chan struct{})
	api := newTestAPI(t, blockingAssistant{release: release}, nil)
	id := api.newSession(t)

	done := make(chan int, 1)
	go func() {
		w := api.do(t, http.MethodPost, "/api/sessions/"+id+"/itinerary/messages", map[string]string{"content": "first"})
		done <- w.Code
	}()

	visit, err := api.store.Get(id)
	if err != nil {
		t.Fatal(err)
	}
	deadline := time.Now().Add(2 * time.Second)
	for !visit.Chat.Snapshot().Typing {
		if time.Now().After(deadline) {
			t.Fatal("first message never started")
		}
		time.Sleep(5 * time.Millisecond)
	}

	w := api.do(t, http.MethodPost, "/api/sessions/"+id+"/itinerary/messages", map[string]string{"content": "second"})
	if w.Code != http.StatusConflict {
		t.Errorf("second send status %d", w.Code)
	}

	close(release)
	if code := <-done; code != http.StatusOK {
		t.Errorf("first send status %d", code)
	}
}

func TestDownloadTranscript(t *testing.T) {
	api := newTestAPI(t, nil, nil)
	id := api.newSession(t)

	api.do(t, http.MethodPost, "/api/sessions/"+id+"/flights/search", map[string]any{
		"origin": "DEL", "destination": "BOM", "departure_date": inDays(7),
	})
	api.do(t, http.MethodPost, "/api/sessions/"+id+"/itinerary/messages", map[string]string{"content": "Plan a budget trip"})

	w := api.do(t, http.MethodGet, "/api/sessions/"+id+"/itinerary/pdf", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", w.Code, w.Body)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content type = %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "TripTactix_Itinerary_") {
		t.Errorf("content disposition = %q", cd)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Error("body is not a PDF")
	}
}

func TestTripRows(t *testing.T) {
	flights := search.FlightSnapshot{Criteria: &search.FlightCriteria{
		Origin: "DEL", Destination: "BOM", DepartureDate: "2026-10-20", ReturnDate: "2026-10-25", Adults: 2,
	}}
	hotels := search.HotelSnapshot{Criteria: &search.HotelCriteria{
		Destination: "Goa", CheckIn: "2026-10-20", CheckOut: "2026-10-22", Rooms: 1,
	}}

	rows := tripRows(flights, hotels)
	if len(rows) != 7 {
		t.Fatalf("rows = %+v", rows)
	}
	if rows[0].Value != "DEL - BOM" || rows[2].Label != "Return" {
		t.Errorf("flight rows = %+v", rows[:4])
	}
	if got := tripRows(search.FlightSnapshot{}, search.HotelSnapshot{}); len(got) != 0 {
		t.Errorf("empty snapshots produced rows %+v", got)
	}
}

func TestHistory(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		api := newTestAPI(t, nil, nil)
		if w := api.do(t, http.MethodGet, "/api/history", nil); w.Code != http.StatusServiceUnavailable {
			t.Errorf("status %d", w.Code)
		}
	})

	t.Run("lists and clamps", func(t *testing.T) {
		hist := &fakeHistory{logs: []database.SearchLog{{ID: "1", Kind: "flights", Status: "success", Results: 5}}}
		api := newTestAPI(t, nil, hist)

		w := api.do(t, http.MethodGet, "/api/history?limit=500", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status %d", w.Code)
		}
		var resp struct {
			Searches []database.SearchLog `json:"searches"`
		}
		decode(t, w, &resp)
		if len(resp.Searches) != 1 || hist.limit != database.MaxHistoryLimit {
			t.Errorf("searches = %+v, limit = %d", resp.Searches, hist.limit)
		}
	})

	t.Run("bad limit", func(t *testing.T) {
		api := newTestAPI(t, nil, &fakeHistory{})
		if w := api.do(t, http.MethodGet, "/api/history?limit=ten", nil); w.Code != http.StatusBadRequest {
			t.Errorf("status %d", w.Code)
		}
	})

	t.Run("query error", func(t *testing.T) {
		api := newTestAPI(t, nil, &fakeHistory{err: errors.New("boom")})
		if w := api.do(t, http.MethodGet, "/api/history", nil); w.Code != http.StatusInternalServerError {
			t.Errorf("status %d", w.Code)
		}
	})
}

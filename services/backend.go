package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"triptactix/contextkeys"
)

var (
	// ErrTransport covers failures before any HTTP status was received.
	ErrTransport = errors.New("backend unreachable")
	// ErrDecode means the backend answered 2xx with a body that is not the expected JSON.
	ErrDecode = errors.New("malformed backend response")
)

// StatusError is returned for non-2xx answers.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend error (%d) on %s %s: %s", e.StatusCode, e.Method, e.Path, e.Body)
}

const maxErrorBody = 4 << 10

// ─── Backend Client ───────────────────────────────────────────────────────────

// BackendClient talks to the travel backend: flight search, hotel search and
// the RAG itinerary endpoint. No auth, no retries.
type BackendClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewBackendClient creates a client for baseURL. A zero timeout means requests
// are bounded only by the caller's context.
func NewBackendClient(baseURL string, timeout time.Duration, logger *slog.Logger) *BackendClient {
	return &BackendClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With("component", "backend_client"),
	}
}

// SearchFlights calls POST /api/search-flights.
func (c *BackendClient) SearchFlights(ctx context.Context, req FlightSearchRequest) (*FlightSearchResponse, error) {
	var resp FlightSearchResponse
	if err := c.do(ctx, http.MethodPost, "/api/search-flights", req, &resp); err != nil {
		return nil, fmt.Errorf("flight search: %w", err)
	}
	return &resp, nil
}

// SearchHotels calls POST /api/search-hotels.
func (c *BackendClient) SearchHotels(ctx context.Context, req HotelSearchRequest) (*HotelSearchResponse, error) {
	var resp HotelSearchResponse
	if err := c.do(ctx, http.MethodPost, "/api/search-hotels", req, &resp); err != nil {
		return nil, fmt.Errorf("hotel search: %w", err)
	}
	return &resp, nil
}

// Itinerary calls GET /rag?query=. It satisfies Assistant.
func (c *BackendClient) Itinerary(ctx context.Context, query string) (*RAGResponse, error) {
	var resp RAGResponse
	path := "/rag?query=" + url.QueryEscape(query)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("itinerary: %w", err)
	}
	return &resp, nil
}

func (c *BackendClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id := contextkeys.RequestIDFromContext(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "backend request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "backend request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}

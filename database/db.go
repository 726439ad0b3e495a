// Package database stores the optional search history in PostgreSQL.
package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"triptactix/search"
)

const (
	connectAttempts = 5
	connectBackoff  = 2 * time.Second

	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

// ─── Models ──────────────────────────────────────────────────────────────────

type SearchLog struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	Criteria  json.RawMessage `json:"criteria"`
	Status    string          `json:"status"`
	Message   string          `json:"message,omitempty"`
	Results   int             `json:"results"`
	CreatedAt time.Time       `json:"created_at"`
}

// Store records finished searches. It implements search.Recorder.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// ─── Init ─────────────────────────────────────────────────────────────────────

// Open connects to dsn, waiting for the server to come up, and applies migrations.
func Open(ctx context.Context, dsn string, logger *slog.Logger) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	logger = logger.With("component", "database")
	for i := 1; i <= connectAttempts; i++ {
		if err = db.PingContext(ctx); err == nil {
			break
		}
		logger.Warn("waiting for database", "attempt", i, "of", connectAttempts, "error", err)
		select {
		case <-ctx.Done():
			db.Close()
			return nil, ctx.Err()
		case <-time.After(connectBackoff):
		}
	}
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	s := &Store{db: db, logger: logger}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	logger.Info("database connected and migrated")
	return s, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}

// ─── Migrations ───────────────────────────────────────────────────────────────

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS search_log (
		id          TEXT PRIMARY KEY,
		kind        TEXT NOT NULL,
		criteria    JSONB NOT NULL,
		status      TEXT NOT NULL,
		message     TEXT,
		results     INTEGER NOT NULL DEFAULT 0,
		created_at  TIMESTAMPTZ DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_search_log_created_at
		ON search_log(created_at DESC)`,
}

func (s *Store) migrate(ctx context.Context) error {
	for _, m := range migrations {
		if _, err := s.db.ExecContext(ctx, m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}
	return nil
}

// ─── CRUD ─────────────────────────────────────────────────────────────────────

func (s *Store) RecordSearch(ctx context.Context, rec search.Record) error {
	row, err := newSearchLog(rec)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO search_log (id, kind, criteria, status, message, results, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		row.ID, row.Kind, []byte(row.Criteria), row.Status, row.Message, row.Results, row.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert search log: %w", err)
	}
	return nil
}

// Recent lists the newest searches first.
func (s *Store) Recent(ctx context.Context, limit int) ([]SearchLog, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, kind, criteria, status, COALESCE(message, ''), results, created_at
		FROM search_log
		ORDER BY created_at DESC
		LIMIT $1`, ClampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("query search log: %w", err)
	}
	defer rows.Close()

	out := make([]SearchLog, 0)
	for rows.Next() {
		var l SearchLog
		var criteria []byte
		if err := rows.Scan(&l.ID, &l.Kind, &criteria, &l.Status, &l.Message, &l.Results, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan search log: %w", err)
		}
		l.Criteria = json.RawMessage(criteria)
		out = append(out, l)
	}
	return out, rows.Err()
}

// ─── Helpers ──────────────────────────────────────────────────────────────────

func newSearchLog(rec search.Record) (SearchLog, error) {
	criteria, err := json.Marshal(rec.Criteria)
	if err != nil {
		return SearchLog{}, fmt.Errorf("encode criteria: %w", err)
	}
	at := rec.At
	if at.IsZero() {
		at = time.Now()
	}
	return SearchLog{
		ID:        uuid.NewString(),
		Kind:      rec.Kind,
		Criteria:  criteria,
		Status:    string(rec.Status),
		Message:   rec.Message,
		Results:   rec.Results,
		CreatedAt: at.UTC(),
	}, nil
}

// ClampLimit bounds a requested page size.
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		return MaxHistoryLimit
	default:
		return limit
	}
}

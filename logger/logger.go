// Package logger builds the process-wide slog.Logger.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/lmittmann/tint"

	"triptactix/config"
)

// New returns the application logger and a close func that flushes any
// forwarding client. The console handler is tint (colored), text or JSON;
// Fluent Bit forwarding is added on top when enabled.
func New(logCfg config.LogConfig, fluentCfg config.FluentConfig) (*slog.Logger, func() error, error) {
	return newLogger(os.Stdout, logCfg, fluentCfg)
}

func newLogger(w io.Writer, logCfg config.LogConfig, fluentCfg config.FluentConfig) (*slog.Logger, func() error, error) {
	level, err := ParseLevel(logCfg.Level)
	if err != nil {
		return nil, nil, err
	}

	handler := consoleHandler(w, logCfg, level)
	closeFn := func() error { return nil }

	if fluentCfg.Enabled {
		client, err := fluent.New(fluent.Config{
			FluentHost: fluentCfg.Host,
			FluentPort: fluentCfg.Port,
			TagPrefix:  fluentCfg.Tag,
			// Connect lazily so a missing Fluent Bit never blocks startup.
			Async: true,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create fluent client: %w", err)
		}
		handler = NewMultiHandler(handler, NewFluentHandler(client, level))
		closeFn = client.Close
	}

	return slog.New(handler), closeFn, nil
}

func consoleHandler(w io.Writer, cfg config.LogConfig, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}

	switch {
	case cfg.Format == "json":
		return slog.NewJSONHandler(w, opts)
	case cfg.Color:
		return tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: "2006-01-02 15:04:05",
		})
	default:
		return slog.NewTextHandler(w, opts)
	}
}

// ParseLevel maps debug/info/warn/error to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"triptactix/chat"
	"triptactix/config"
	"triptactix/database"
	"triptactix/display"
	"triptactix/handlers"
	"triptactix/logger"
	"triptactix/search"
	"triptactix/services"
	"triptactix/sessions"
)

func main() {
	app := fx.New(
		fx.Provide(
			config.Load,
			provideLogger,
			provideBackend,
			provideNormalizer,
			provideAssistant,
			provideHistory,
			provideSessions,
			provideHandler,
			provideRouter,
		),
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			l := &fxevent.SlogLogger{Logger: log}
			l.UseLogLevel(slog.LevelDebug)
			return l
		}),
		fx.Invoke(startServer),
	)

	if err := app.Err(); err != nil {
		slog.Error("failed to start TripTactix", "error", err)
		os.Exit(1)
	}
	app.Run()
}

func provideLogger(lc fx.Lifecycle, cfg *config.Config) (*slog.Logger, error) {
	log, closeLog, err := logger.New(cfg.Log, cfg.Fluent)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(log)
	lc.Append(fx.StopHook(closeLog))
	return log, nil
}

func provideBackend(cfg *config.Config, log *slog.Logger) *services.BackendClient {
	return services.NewBackendClient(cfg.Backend.URL, cfg.Backend.Timeout, log)
}

func provideNormalizer(cfg *config.Config) (*display.Normalizer, error) {
	rule, err := display.NewPriceRule(cfg.Display.Currency)
	if err != nil {
		return nil, fmt.Errorf("DISPLAY_CURRENCY: %w", err)
	}
	return display.NewNormalizer(rule), nil
}

// provideAssistant puts the backend's RAG endpoint first and the optional
// LLM provider behind it.
func provideAssistant(lc fx.Lifecycle, cfg *config.Config, backend *services.BackendClient, log *slog.Logger) (services.Assistant, error) {
	llm, closeLLM, err := services.NewLLMAssistant(context.Background(), cfg.Assistant)
	if err != nil {
		return nil, fmt.Errorf("assistant: %w", err)
	}
	lc.Append(fx.StopHook(closeLLM))

	chain := services.NewAssistantChain(log).
		Add("rag", backend).
		Add(cfg.Assistant.Provider, llm)
	log.Info("assistant ready", "tiers", chain.Len(), "provider", cfg.Assistant.Provider)
	return chain, nil
}

// provideHistory returns nil when no database is configured.
func provideHistory(lc fx.Lifecycle, cfg *config.Config, log *slog.Logger) (*database.Store, error) {
	if !cfg.Database.Enabled() {
		log.Info("search history disabled, no database configured")
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	store, err := database.Open(ctx, cfg.Database.DSN, log)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(store.Close))
	return store, nil
}

func provideSessions(
	lc fx.Lifecycle,
	cfg *config.Config,
	backend *services.BackendClient,
	normalizer *display.Normalizer,
	assistant services.Assistant,
	history *database.Store,
	log *slog.Logger,
) *sessions.Store {
	opts := search.Options{Normalizer: normalizer, Logger: log}
	if history != nil {
		opts.Recorder = history
	}

	store := sessions.NewStore(cfg.Sessions.TTL, func() (*search.FlightSearch, *search.HotelSearch, *chat.Session) {
		return search.NewFlightSearch(backend, opts),
			search.NewHotelSearch(backend, opts),
			chat.NewSession(assistant, chat.Options{Logger: log})
	}, log)
	lc.Append(fx.StopHook(store.Close))
	return store
}

func provideHandler(store *sessions.Store, history *database.Store, log *slog.Logger) *handlers.Handler {
	if history == nil {
		return handlers.New(store, nil, log)
	}
	return handlers.New(store, history, log)
}

func provideRouter(cfg *config.Config, h *handlers.Handler, log *slog.Logger) *gin.Engine {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	return handlers.NewRouter(h, cfg.FrontendURLs, log)
}

func startServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, log *slog.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return fmt.Errorf("listen on %s: %w", srv.Addr, err)
			}
			log.Info("TripTactix API starting", "port", cfg.Port, "backend", cfg.Backend.URL)
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("http server stopped", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ─── Models ──────────────────────────────────────────────────────────────────

type Config struct {
	Port         string
	GinMode      string
	FrontendURLs []string

	Backend   BackendConfig
	Display   DisplayConfig
	Sessions  SessionConfig
	Database  DatabaseConfig
	Assistant AssistantConfig
	Log       LogConfig
	Fluent    FluentConfig
}

// BackendConfig points at the remote search / RAG backend.
type BackendConfig struct {
	URL string
	// Zero means no client-side timeout; the request context still applies.
	Timeout time.Duration
}

type DisplayConfig struct {
	Currency string
}

type SessionConfig struct {
	TTL time.Duration
}

// DatabaseConfig is optional. An empty DSN disables the search history store.
type DatabaseConfig struct {
	DSN string
}

func (d DatabaseConfig) Enabled() bool { return d.DSN != "" }

type AssistantConfig struct {
	Provider      string // "", "openai" or "gemini"
	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string
	GeminiKey     string
	GeminiModel   string
}

type LogConfig struct {
	Level  string
	Format string // "text" or "json"
	Color  bool
}

type FluentConfig struct {
	Enabled bool
	Host    string
	Port    int
	Tag     string
}

// ─── Load ────────────────────────────────────────────────────────────────────

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds the configuration from environment variables only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		GinMode:      os.Getenv("GIN_MODE"),
		FrontendURLs: frontendURLs(os.Getenv("FRONTEND_URL")),
		Backend: BackendConfig{
			URL: strings.TrimRight(getEnv("BACKEND_URL", "http://127.0.0.1:8000"), "/"),
		},
		Display: DisplayConfig{
			Currency: strings.ToUpper(getEnv("DISPLAY_CURRENCY", "INR")),
		},
		Database: DatabaseConfig{DSN: buildDSN()},
		Assistant: AssistantConfig{
			Provider:      strings.ToLower(os.Getenv("ASSISTANT_PROVIDER")),
			OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
			OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
			GeminiKey:     os.Getenv("GEMINI_API_KEY"),
			GeminiModel:   getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "text")),
		},
		Fluent: FluentConfig{
			Host: getEnv("FLUENT_HOST", "127.0.0.1"),
			Tag:  getEnv("FLUENT_TAG", "triptactix"),
		},
	}

	var err error
	if cfg.Backend.Timeout, err = getDuration("BACKEND_TIMEOUT", 0); err != nil {
		return nil, err
	}
	if cfg.Sessions.TTL, err = getDuration("SESSION_TTL", 30*time.Minute); err != nil {
		return nil, err
	}
	if cfg.Log.Color, err = getBool("LOG_COLOR", true); err != nil {
		return nil, err
	}
	if cfg.Fluent.Enabled, err = getBool("FLUENT_ENABLED", false); err != nil {
		return nil, err
	}
	if cfg.Fluent.Port, err = getInt("FLUENT_PORT", 24224); err != nil {
		return nil, err
	}

	switch cfg.Assistant.Provider {
	case "", "none":
		cfg.Assistant.Provider = ""
	case "openai":
		if cfg.Assistant.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required when ASSISTANT_PROVIDER=openai")
		}
	case "gemini":
		if cfg.Assistant.GeminiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required when ASSISTANT_PROVIDER=gemini")
		}
	default:
		return nil, fmt.Errorf("unsupported ASSISTANT_PROVIDER %q: use openai or gemini", cfg.Assistant.Provider)
	}

	return cfg, nil
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

func frontendURLs(raw string) []string {
	origins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	for _, u := range strings.Split(raw, ",") {
		u = strings.TrimSpace(u)
		if u != "" {
			origins = append(origins, u)
		}
	}
	return origins
}

func buildDSN() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	host := os.Getenv("DB_HOST")
	if host == "" {
		return ""
	}

	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	pass := getEnv("DB_PASSWORD", "postgres")
	name := getEnv("DB_NAME", "triptactix")
	sslmode := getEnv("DB_SSLMODE", "disable")

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, pass, name, sslmode)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%s must be a non-negative duration like 30s: %q", key, v)
	}
	return d, nil
}

func getBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be true or false: %q", key, v)
	}
	return b, nil
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %q", key, v)
	}
	return n, nil
}

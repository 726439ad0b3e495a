// Command mockbackend serves generated flight, hotel and itinerary data on
// the same HTTP contract as the real travel backend.
package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"triptactix/config"
	"triptactix/fixtures"
	"triptactix/logger"
)

func main() {
	_ = godotenv.Load()

	log, closeLog, err := logger.New(config.LogConfig{
		Level:  os.Getenv("LOG_LEVEL"),
		Format: os.Getenv("LOG_FORMAT"),
		Color:  true,
	}, config.FluentConfig{})
	if err != nil {
		slog.Error("invalid logger configuration", "error", err)
		os.Exit(1)
	}

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}

	addr := os.Getenv("MOCK_BACKEND_ADDR")
	if addr == "" {
		addr = "127.0.0.1:8000"
	}

	log.Info("mock backend listening", "addr", addr)
	if err := fixtures.NewRouter(log).Run(addr); err != nil {
		log.Error("mock backend stopped", "error", err)
		_ = closeLog()
		os.Exit(1)
	}
	_ = closeLog()
}

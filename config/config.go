// Package config loads server configuration from the environment, with an
// optional .env file.
package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Addr is the HTTP listen address.
	Addr string

	// DataPath is the preference database file. Empty means ephemeral:
	// preferences live in memory and vanish on restart.
	DataPath string

	// LogLevel is one of debug, info, warn, error.
	LogLevel slog.Level

	// Greeting overrides the assistant message seeding each conversation.
	Greeting string
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first if present.
func Load() *Config {
	godotenv.Load()

	return &Config{
		Addr:     getEnvOrDefault("PARLEY_ADDR", ":8080"),
		DataPath: getEnvOrDefault("PARLEY_DATA", "parley.db"),
		LogLevel: parseLevel(os.Getenv("PARLEY_LOG_LEVEL")),
		Greeting: os.Getenv("PARLEY_GREETING"),
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Environment string
	LogLevel    slog.Level

	// WorldDir is where world YAML files live.
	WorldDir string

	// RedisURL enables Redis-backed saves when set; otherwise saves stay
	// in process memory.
	RedisURL string
	// SaveTTL is how long a saved game lives in Redis.
	SaveTTL time.Duration
}

func Load() *Config {
	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    parseLogLevel(getEnv("LOG_LEVEL", "info")),
		WorldDir:    getEnv("WORLD_DIR", "./data/worlds"),
		RedisURL:    getEnv("REDIS_URL", ""),
		SaveTTL:     parseHours(getEnv("SAVE_TTL_HOURS", "720")),
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func parseHours(s string) time.Duration {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		n = 720
	}
	return time.Duration(n) * time.Hour
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Package config loads server settings from the environment
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every server setting. Flags in cmd/server override these after Load.
type Config struct {
	Host string
	Port int

	// StorageType selects the backend: mongo, redis or memory
	StorageType string
	MongoURL    string
	MongoDB     string
	RedisURL    string

	SessionSecret   string
	SessionDuration time.Duration

	StaticDir          string
	CORSAllowedOrigins []string
	LoginRatePerMinute int

	LogLevel  string
	LogFormat string
}

// Load reads an optional .env file and then the environment
func Load() Config {
	_ = godotenv.Load(".env")

	return Config{
		Host:               getenv("HOST", ""),
		Port:               getenvInt("PORT", 8000),
		StorageType:        getenv("STORAGE_TYPE", "mongo"),
		MongoURL:           getenv("MONGO_URL", ""),
		MongoDB:            getenv("MONGO_DB", ""),
		RedisURL:           getenv("REDIS_URL", "redis://localhost:6379/0"),
		SessionSecret:      getenv("SESSION_SECRET", ""),
		SessionDuration:    getenvDuration("SESSION_DURATION", time.Hour),
		StaticDir:          getenv("STATIC_DIR", ""),
		CORSAllowedOrigins: getenvList("CORS_ALLOWED_ORIGINS"),
		LoginRatePerMinute: getenvInt("LOGIN_RATE_PER_MINUTE", 10),
		LogLevel:           getenv("LOG_LEVEL", "info"),
		LogFormat:          getenv("LOG_FORMAT", "json"),
	}
}

// Addr returns the listen address
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getenv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getenvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func getenvList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

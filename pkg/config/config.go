package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string
	LogLevel string

	APIBaseURL string
	APITimeout time.Duration

	SessionStore string
	SessionFile  string
	SessionKey   string
	RedisURL     string

	DeliveryFee        int64
	Currency           string
	CatalogConcurrency int

	TraceExporter string

	HTTPPort int
}

func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppEnv:             getEnv("APP_ENV", "dev"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		APIBaseURL:         getEnv("API_BASE_URL", "http://localhost:8080/api"),
		APITimeout:         getEnvDuration("API_TIMEOUT", 0),
		SessionStore:       getEnv("SESSION_STORE", "file"),
		SessionFile:        getEnv("SESSION_FILE", defaultSessionFile()),
		SessionKey:         getEnv("SESSION_KEY", "default"),
		RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379/0"),
		DeliveryFee:        int64(getEnvInt("DELIVERY_FEE", 2000)),
		Currency:           getEnv("CURRENCY", "RWF"),
		CatalogConcurrency: getEnvInt("CATALOG_CONCURRENCY", 10),
		TraceExporter:      getEnv("TRACE_EXPORTER", "none"),
		HTTPPort:           getEnvInt("HTTP_PORT", 8080),
	}
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".storefront-session.json"
	}
	return filepath.Join(home, ".storefront", "session.json")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

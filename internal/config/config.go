package config

import (
	"os"
	"strconv"
	"time"
)

// Storage backends selectable via STORAGE_BACKEND.
const (
	StorageMemory = "memory"
	StorageFile   = "file"
	StorageRedis  = "redis"
)

// Notification transports selectable via NOTIFY_TRANSPORT.
const (
	NotifyNATS      = "nats"
	NotifyWebsocket = "websocket"
	NotifyOff       = "off"
)

type Config struct {
	APIBaseURL     string
	APITimeout     time.Duration
	MaxRetries     int
	SearchCacheTTL time.Duration

	StorageBackend string
	StoragePath    string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	NotifyTransport string
	NATSURL         string
	NATSConnTimeout time.Duration
	NotifyWSURL     string

	OTLPCollectorURL string
}

func LoadConfig() (*Config, error) {
	config := &Config{
		APIBaseURL:     getEnvString("API_BASE_URL", "https://job-board-api-production.up.railway.app/api/v1"),
		APITimeout:     getEnvDuration("API_TIMEOUT", 15*time.Second),
		MaxRetries:     getEnvInt("MAX_RETRIES", 3),
		SearchCacheTTL: getEnvDuration("SEARCH_CACHE_TTL", 0),

		StorageBackend: getEnvString("STORAGE_BACKEND", StorageFile),
		StoragePath:    getEnvString("STORAGE_PATH", defaultStoragePath()),

		RedisAddr:     getEnvString("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnvString("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		NotifyTransport: getEnvString("NOTIFY_TRANSPORT", NotifyOff),
		NATSURL:         getEnvString("NATS_URL", "nats://localhost:4222"),
		NATSConnTimeout: getEnvDuration("NATS_CONN_TIMEOUT", 10*time.Second),
		NotifyWSURL:     getEnvString("NOTIFY_WS_URL", ""),

		OTLPCollectorURL: getEnvString("OTLP_COLLECTOR_URL", ""),
	}

	return config, nil
}

func defaultStoragePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".jobdeck/session.json"
	}
	return home + "/.jobdeck/session.json"
}

func getEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

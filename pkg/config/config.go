package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Tracking TrackingConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port         string
	AllowOrigins []string
}

type RedisConfig struct {
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
}

type JWTConfig struct {
	SecretKey string
}

// TrackingConfig holds the event pipeline knobs. Defaults mirror the
// storefront client: batches of 10, 5s interval, forced flush at 50
// queued events, at most 100 failed events kept for retry.
type TrackingConfig struct {
	CollectorURL  string
	BatchSize     int
	BatchInterval time.Duration
	MaxQueueSize  int
	RetryCap      int
	CacheTTL      time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, errors.New("invalid redis database")
	}

	batchInterval, err := time.ParseDuration(getEnv("TRACKING_BATCH_INTERVAL", "5s"))
	if err != nil {
		return nil, errors.New("invalid tracking batch interval")
	}

	cacheTTL, err := time.ParseDuration(getEnv("RECOMMENDATION_CACHE_TTL", "5m"))
	if err != nil {
		return nil, errors.New("invalid recommendation cache ttl")
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Starry Night API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			AllowOrigins: splitOrigins(getEnv("CORS_ALLOW_ORIGINS", "*")),
		},
		Redis: RedisConfig{
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", ""),
		},
		Tracking: TrackingConfig{
			CollectorURL:  getEnv("TRACKING_COLLECTOR_URL", "http://localhost:8080/api/tracking"),
			BatchSize:     getEnvInt("TRACKING_BATCH_SIZE", 10),
			BatchInterval: batchInterval,
			MaxQueueSize:  getEnvInt("TRACKING_MAX_QUEUE_SIZE", 50),
			RetryCap:      getEnvInt("TRACKING_RETRY_CAP", 100),
			CacheTTL:      cacheTTL,
		},
	}

	if cfg.Tracking.MaxQueueSize <= 0 {
		return nil, errors.New("tracking max queue size must be positive")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return n
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}

	return out
}

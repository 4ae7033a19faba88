package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// OpenWeatherMap upstream.
	OpenWeatherAPIKey  string
	OpenWeatherURL     string
	OpenWeatherTimeout time.Duration

	// MongoDB observation store.
	MongoURI      string
	MongoDatabase string
	MongoTimeout  time.Duration

	// gRPC transport.
	GRPCAddr                 string
	GRPCAPIKey               string
	GRPCWorkers              int
	GRPCMaxConcurrentStreams int

	// Observation events. Publishing is disabled when no broker is set.
	KafkaBrokers []string
	KafkaTopic   string
	KafkaEnabled bool

	// Scheduled ingestion. Disabled when no city is set.
	IngestCities   []string
	IngestInterval time.Duration
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	openWeatherTimeout, err := parseDuration("OPENWEATHER_TIMEOUT", "8s")
	if err != nil {
		return nil, err
	}
	mongoTimeout, err := parseDuration("MONGO_TIMEOUT", "5s")
	if err != nil {
		return nil, err
	}
	ingestInterval, err := parseDuration("INGEST_INTERVAL", "5m")
	if err != nil {
		return nil, err
	}
	workers, err := parsePositiveInt("GRPC_WORKERS", 16)
	if err != nil {
		return nil, err
	}
	maxStreams, err := parsePositiveInt("GRPC_MAX_CONCURRENT_STREAMS", 64)
	if err != nil {
		return nil, err
	}

	var brokers []string
	if v := strings.TrimSpace(os.Getenv("KAFKA_BROKERS")); v != "" {
		brokers = sharedcfg.ParseBrokers(v)
	}

	cfg := &Config{
		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		OpenWeatherAPIKey:  os.Getenv("OPENWEATHER_API_KEY"),
		OpenWeatherURL:     sharedcfg.EnvOrDefault("OPENWEATHER_URL", "https://api.openweathermap.org/data/2.5/weather"),
		OpenWeatherTimeout: openWeatherTimeout,

		MongoURI:      os.Getenv("MONGO_URI"),
		MongoDatabase: sharedcfg.EnvOrDefault("MONGO_APP_DB", "weatherdb"),
		MongoTimeout:  mongoTimeout,

		GRPCAddr:                 sharedcfg.EnvOrDefault("GRPC_ADDR", ":50051"),
		GRPCAPIKey:               os.Getenv("GRPC_API_KEY"),
		GRPCWorkers:              workers,
		GRPCMaxConcurrentStreams: maxStreams,

		KafkaBrokers: brokers,
		KafkaTopic:   sharedcfg.EnvOrDefault("KAFKA_TOPIC", "weather-observations"),
		KafkaEnabled: len(brokers) > 0,

		IngestCities:   splitList(os.Getenv("INGEST_CITIES")),
		IngestInterval: ingestInterval,
	}

	if cfg.OpenWeatherAPIKey == "" {
		return nil, errors.New("OPENWEATHER_API_KEY is required")
	}
	if cfg.GRPCAPIKey == "" {
		return nil, errors.New("GRPC_API_KEY is required")
	}
	if cfg.MongoURI == "" {
		return nil, errors.New("MONGO_URI is required")
	}
	if cfg.KafkaEnabled && cfg.KafkaTopic == "" {
		return nil, errors.New("KAFKA_TOPIC is required when KAFKA_BROKERS is set")
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return nil, fmt.Errorf("invalid LOG_FORMAT %q: want json or text", cfg.LogFormat)
	}

	return cfg, nil
}

func parseDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(sharedcfg.EnvOrDefault(key, def))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

func parsePositiveInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s: must be a positive integer", key)
	}
	return n, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

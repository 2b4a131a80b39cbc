package config

import (
	"os"
	"strconv"
)

// Config holds server configuration.
type Config struct {
	Port             string
	LogLevel         string
	Environment      string
	RateLimitRPS     int
	RateLimitBurst   int
	TelemetryEnabled bool
	OTLPEndpoint     string
}

// Load loads configuration from environment variables.
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "INFO"
	}

	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "development"
	}

	otlpEndpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if otlpEndpoint == "" {
		otlpEndpoint = "localhost:4317"
	}

	return &Config{
		Port:             port,
		LogLevel:         logLevel,
		Environment:      environment,
		RateLimitRPS:     intEnv("RATE_LIMIT_RPS", 50),
		RateLimitBurst:   intEnv("RATE_LIMIT_BURST", 100),
		TelemetryEnabled: os.Getenv("TELEMETRY_ENABLED") == "true",
		OTLPEndpoint:     otlpEndpoint,
	}
}

// intEnv reads an integer environment variable, falling back to def when
// unset or unparseable.
func intEnv(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

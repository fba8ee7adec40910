// Package config provides hierarchical configuration loading for SwarnaMitra.
// Precedence: defaults < YAML file < environment variables.
package config

import "time"

// Config holds all runtime configuration for the SwarnaMitra backend.
type Config struct {
	Server  Server  `yaml:"server"`
	OpenAI  OpenAI  `yaml:"openai"`
	Metals  Metals  `yaml:"metals"`
	Runner  Runner  `yaml:"runner"`
	Logging Logging `yaml:"logging"`
	Breaker Breaker `yaml:"breaker"`
	Cache   Cache   `yaml:"cache"`
	Otel    Otel    `yaml:"otel"`
}

// Server holds HTTP server configuration.
type Server struct {
	Port       string `yaml:"port"`
	CORSOrigin string `yaml:"cors_origin"`
}

// OpenAI holds the remote assistant execution service configuration.
type OpenAI struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
}

// Metals holds the spot-price API configuration. An empty APIKey degrades
// the gold price tool, not the server.
type Metals struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
}

// Runner bounds the run polling loop.
type Runner struct {
	PollInterval     time.Duration `yaml:"poll_interval"`
	MaxPolls         int           `yaml:"max_polls"`
	MaxActionCycles  int           `yaml:"max_action_cycles"`
	RunDeadline      time.Duration `yaml:"run_deadline"`
	MaxParallelTools int           `yaml:"max_parallel_tools"`
}

// Logging holds structured logging configuration.
type Logging struct {
	Level   string `yaml:"level"`
	Service string `yaml:"service"`
}

// Breaker holds circuit breaker configuration for outbound HTTP clients.
type Breaker struct {
	MaxFailures int           `yaml:"max_failures"`
	Timeout     time.Duration `yaml:"timeout"`
}

// Cache holds the in-process quote cache configuration.
type Cache struct {
	MaxSizeMB int64         `yaml:"max_size_mb"`
	QuoteTTL  time.Duration `yaml:"quote_ttl"`
}

// Otel holds OpenTelemetry exporter configuration.
type Otel struct {
	Enabled  bool   `yaml:"enabled"`
	Endpoint string `yaml:"endpoint"`
}

// Defaults returns a Config with sensible default values for local development.
func Defaults() Config {
	return Config{
		Server: Server{
			Port:       "8080",
			CORSOrigin: "http://localhost:3000",
		},
		OpenAI: OpenAI{
			BaseURL: "https://api.openai.com",
			Model:   "gpt-4o-mini",
		},
		Metals: Metals{
			BaseURL: "https://api.metalpriceapi.com",
		},
		Runner: Runner{
			PollInterval:     time.Second,
			MaxPolls:         60,
			MaxActionCycles:  8,
			RunDeadline:      2 * time.Minute,
			MaxParallelTools: 4,
		},
		Logging: Logging{
			Level:   "info",
			Service: "swarnamitra",
		},
		Breaker: Breaker{
			MaxFailures: 5,
			Timeout:     30 * time.Second,
		},
		Cache: Cache{
			MaxSizeMB: 16,
			QuoteTTL:  5 * time.Minute,
		},
		Otel: Otel{
			Enabled:  false,
			Endpoint: "localhost:4317",
		},
	}
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the path checked for YAML configuration.
const DefaultConfigFile = "swarnamitra.yaml"

// Load returns a Config using the hierarchy: defaults < YAML < ENV.
// YAML file is optional; missing file is not an error.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigFile)
}

// LoadFrom returns a Config loaded from the given YAML path using the
// hierarchy: defaults < YAML < ENV. The YAML file is optional.
func LoadFrom(yamlPath string) (*Config, error) {
	cfg := Defaults()

	if err := loadYAML(&cfg, yamlPath); err != nil {
		return nil, fmt.Errorf("config yaml: %w", err)
	}

	loadEnv(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validate: %w", err)
	}

	return &cfg, nil
}

// loadYAML reads the YAML file and unmarshals it over cfg.
// Returns nil if the file does not exist.
func loadYAML(cfg *Config, path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is validated by caller
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	return nil
}

// loadEnv overlays environment variables onto cfg.
// Only non-empty env values override the current config.
func loadEnv(cfg *Config) {
	setString(&cfg.Server.Port, "SWARNAMITRA_PORT")
	setString(&cfg.Server.CORSOrigin, "SWARNAMITRA_CORS_ORIGIN")
	setString(&cfg.OpenAI.BaseURL, "SWARNAMITRA_OPENAI_BASE_URL")
	setString(&cfg.OpenAI.APIKey, "OPENAI_API_KEY")
	setString(&cfg.OpenAI.Model, "SWARNAMITRA_OPENAI_MODEL")
	setString(&cfg.Metals.BaseURL, "SWARNAMITRA_METALS_BASE_URL")
	setString(&cfg.Metals.APIKey, "METALS_API_KEY")
	setDuration(&cfg.Runner.PollInterval, "SWARNAMITRA_POLL_INTERVAL")
	setInt(&cfg.Runner.MaxPolls, "SWARNAMITRA_MAX_POLLS")
	setInt(&cfg.Runner.MaxActionCycles, "SWARNAMITRA_MAX_ACTION_CYCLES")
	setDuration(&cfg.Runner.RunDeadline, "SWARNAMITRA_RUN_DEADLINE")
	setInt(&cfg.Runner.MaxParallelTools, "SWARNAMITRA_MAX_PARALLEL_TOOLS")
	setString(&cfg.Logging.Level, "SWARNAMITRA_LOG_LEVEL")
	setString(&cfg.Logging.Service, "SWARNAMITRA_LOG_SERVICE")
	setInt(&cfg.Breaker.MaxFailures, "SWARNAMITRA_BREAKER_MAX_FAILURES")
	setDuration(&cfg.Breaker.Timeout, "SWARNAMITRA_BREAKER_TIMEOUT")
	setInt64(&cfg.Cache.MaxSizeMB, "SWARNAMITRA_CACHE_SIZE_MB")
	setDuration(&cfg.Cache.QuoteTTL, "SWARNAMITRA_CACHE_QUOTE_TTL")
	setBool(&cfg.Otel.Enabled, "SWARNAMITRA_OTEL_ENABLED")
	setString(&cfg.Otel.Endpoint, "SWARNAMITRA_OTEL_ENDPOINT")
}

// validate checks that required fields are set.
func validate(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server.port is required")
	}
	if cfg.OpenAI.BaseURL == "" {
		return errors.New("openai.base_url is required")
	}
	if cfg.OpenAI.APIKey == "" {
		return errors.New("openai.api_key is required (set OPENAI_API_KEY)")
	}
	if cfg.OpenAI.Model == "" {
		return errors.New("openai.model is required")
	}
	if cfg.Runner.PollInterval <= 0 {
		return errors.New("runner.poll_interval must be positive")
	}
	if cfg.Runner.MaxPolls < 1 {
		return errors.New("runner.max_polls must be >= 1")
	}
	if cfg.Runner.MaxActionCycles < 1 {
		return errors.New("runner.max_action_cycles must be >= 1")
	}
	if cfg.Runner.RunDeadline <= 0 {
		return errors.New("runner.run_deadline must be positive")
	}
	if cfg.Breaker.MaxFailures < 1 {
		return errors.New("breaker.max_failures must be >= 1")
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setInt64(dst *int64, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func setDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}

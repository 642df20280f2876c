// Package application orchestrates the client engine: configuration,
// the process-wide store, session flow, the home dashboard and the
// admin dashboard. It depends on domain logic and ports only; the
// backend is reached exclusively through the service interfaces.
package application

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the complete client configuration, decoded from YAML with
// optional environment overrides. Use DefaultConfig for a working
// baseline and LoadConfig to layer a file and the environment on top.
type Config struct {
	// Backend configures how the HTTP client reaches the rating
	// platform backend.
	Backend BackendConfig `yaml:"backend" validate:"required"`

	// Retry configures the retry middleware for idempotent requests.
	Retry RetryConfig `yaml:"retry"`

	// RateLimit configures the token bucket pacing outgoing requests.
	RateLimit RateLimitConfig `yaml:"rate_limit"`

	// CircuitBreaker configures fast failure when the backend is down.
	CircuitBreaker CircuitBreakerConfig `yaml:"circuit_breaker"`

	// Logging configures the structured logger.
	Logging LoggingConfig `yaml:"logging"`
}

// BackendConfig locates the backend API and bounds individual calls.
type BackendConfig struct {
	// BaseURL is the backend API root, e.g. "http://localhost:5000/api".
	BaseURL string `yaml:"base_url" validate:"required,url"`

	// TimeoutSeconds bounds each individual request.
	TimeoutSeconds int `yaml:"timeout_seconds" validate:"omitempty,min=1,max=300"`
}

// Timeout returns the per-request timeout as a duration.
func (b BackendConfig) Timeout() time.Duration {
	return time.Duration(b.TimeoutSeconds) * time.Second
}

// RetryConfig specifies the recovery strategy for transient backend
// failures. Only idempotent requests are ever replayed.
type RetryConfig struct {
	// MaxAttempts is the number of retries after the initial attempt,
	// where 0 disables retrying entirely.
	MaxAttempts int `yaml:"max_attempts" validate:"min=0,max=10"`

	// InitialWait is the base delay in milliseconds before the first
	// retry, the foundation for exponential backoff.
	InitialWait int `yaml:"initial_wait_ms" validate:"omitempty,min=0,max=60000"`

	// MaxWait caps the delay in milliseconds between attempts.
	MaxWait int `yaml:"max_wait_ms" validate:"omitempty,min=0,max=300000"`
}

// RateLimitConfig paces outgoing backend requests.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained request rate.
	RequestsPerSecond float64 `yaml:"requests_per_second" validate:"omitempty,min=0,max=1000"`

	// Burst allows temporary spikes above the sustained rate.
	Burst int `yaml:"burst" validate:"omitempty,min=0,max=1000"`
}

// CircuitBreakerConfig opens the backend circuit after consecutive
// transient failures so an unreachable backend fails fast instead of
// stacking timeouts.
type CircuitBreakerConfig struct {
	// MaxFailures is the consecutive failure count that opens the
	// circuit, where 0 disables the breaker.
	MaxFailures int `yaml:"max_failures" validate:"min=0,max=100"`

	// CooldownSeconds is how long the circuit stays open before a
	// probe request is allowed through.
	CooldownSeconds int `yaml:"cooldown_seconds" validate:"omitempty,min=1,max=3600"`
}

// LoggingConfig configures the structured logger.
type LoggingConfig struct {
	// Level is the minimum level emitted.
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
}

// DefaultConfig returns a configuration suitable for local development
// against a backend on the conventional port.
func DefaultConfig() *Config {
	return &Config{
		Backend: BackendConfig{
			BaseURL:        "http://localhost:5000/api",
			TimeoutSeconds: 15,
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 200,
			MaxWait:     5000,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 10,
			Burst:             20,
		},
		CircuitBreaker: CircuitBreakerConfig{
			MaxFailures:     5,
			CooldownSeconds: 30,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

var validate = validator.New()

// LoadConfig builds the effective configuration: defaults, then the
// YAML file at path when it exists, then environment overrides. A .env
// file in the working directory is loaded first so both sources look
// the same to the override step.
func LoadConfig(path string) (*Config, error) {
	// Missing .env is the common case, not an error.
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// applyEnvOverrides layers UONGOZI_* environment variables over the
// file-derived configuration.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("UONGOZI_BACKEND_URL"); v != "" {
		cfg.Backend.BaseURL = v
	}
	if v := os.Getenv("UONGOZI_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Backend.TimeoutSeconds = n
		}
	}
	if v := os.Getenv("UONGOZI_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

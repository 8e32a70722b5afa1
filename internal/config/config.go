package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"ghprofile/internal/validation"
)

// Configuration errors.
var (
	ErrConfigInvalid    = errors.New("invalid configuration")
	ErrInvalidLogLevel  = errors.New("invalid log level: must be debug, info, warn, or error")
	ErrInvalidLogFormat = errors.New("invalid log format: must be json or text")
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Upstream profile API
	GitHubAPIURL     string
	GitHubAPIVersion string
	HTTPTimeout      time.Duration
	UserAgent        string

	// Session
	SessionSecret string        // Used for encrypting cookies (min 32 chars)
	SessionIdle   time.Duration // Idle time after which a session's lookup state is dropped
	RedisURL      string        // Optional session storage, e.g. "redis://localhost:6379/0"

	// Lookup behaviour
	SequencedLookups   bool // Drop results of superseded lookups instead of last-resolved-wins
	RateLimitPerMinute int  // Per-IP request budget for the web surface

	// Logging
	LogLevel  string // debug | info | warn | error
	LogFormat string // json | text

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "Profile Lookup"
	SiteTagline string // env: SITE_TAGLINE, default: "Look up a GitHub user"

	// Messages holds user-facing text; overridable from the YAML file.
	Messages Messages
}

// Load reads configuration from environment variables with sensible defaults,
// then applies the optional YAML overlay.
func Load() (*Config, error) {
	cfg := &Config{
		Env:                getEnv("ENV", "development"),
		ServerAddr:         getEnv("SERVER_ADDR", ":3000"),
		BaseURL:            getEnv("BASE_URL", "http://localhost:3000"),
		GitHubAPIURL:       getEnv("GITHUB_API_URL", "https://api.github.com"),
		GitHubAPIVersion:   getEnv("GITHUB_API_VERSION", "2022-11-28"),
		UserAgent:          getEnv("USER_AGENT", "ghprofile/1.0"),
		SessionSecret:      getEnv("SESSION_SECRET", "change-me-in-production-min-32-chars"),
		RedisURL:           getEnv("REDIS_URL", ""),
		SequencedLookups:   getEnv("SEQUENCED_LOOKUPS", "") != "",
		LogLevel:           strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:          strings.ToLower(getEnv("LOG_FORMAT", "text")),
		SiteTitle:          getEnv("SITE_TITLE", "Profile Lookup"),
		SiteTagline:        getEnv("SITE_TAGLINE", "Look up a GitHub user"),
		Messages:           DefaultMessages(),
		RateLimitPerMinute: 60,
	}

	var errs []error

	timeout, err := time.ParseDuration(getEnv("HTTP_TIMEOUT", "10s"))
	if err != nil {
		errs = append(errs, fmt.Errorf("HTTP_TIMEOUT: %w", err))
	}
	cfg.HTTPTimeout = timeout

	idle, err := time.ParseDuration(getEnv("SESSION_IDLE", "30m"))
	if err != nil {
		errs = append(errs, fmt.Errorf("SESSION_IDLE: %w", err))
	}
	cfg.SessionIdle = idle

	if v := os.Getenv("RATE_LIMIT_PER_MINUTE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("RATE_LIMIT_PER_MINUTE: %w", err))
		}
		cfg.RateLimitPerMinute = n
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrConfigInvalid, errors.Join(errs...))
	}

	overlay, err := LoadYAMLConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}
	overlay.Apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs []error

	if ok, msg := validation.ValidateURL(c.GitHubAPIURL); !ok {
		errs = append(errs, fmt.Errorf("github api url %q: %s", c.GitHubAPIURL, msg))
	}
	if c.GitHubAPIVersion == "" {
		errs = append(errs, errors.New("github api version is required"))
	}
	if c.HTTPTimeout <= 0 {
		errs = append(errs, errors.New("http timeout must be positive"))
	}
	if c.SessionIdle <= 0 {
		errs = append(errs, errors.New("session idle must be positive"))
	}
	if len(c.SessionSecret) < 32 {
		errs = append(errs, errors.New("session secret must be at least 32 characters"))
	}
	if c.RateLimitPerMinute <= 0 {
		errs = append(errs, errors.New("rate limit per minute must be positive"))
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.LogLevel] {
		errs = append(errs, ErrInvalidLogLevel)
	}
	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.LogFormat] {
		errs = append(errs, ErrInvalidLogFormat)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrConfigInvalid, errors.Join(errs...))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// Package config resolves where the suite points and how it paces itself.
// Values come from a properties or YAML file, then .env, then the process
// environment, later sources winning.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/magiconair/properties"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL   = "https://randomuser.me/api"
	DefaultTimeoutMS = 5000
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

// Properties file keys
const (
	keyBaseURL   = "api.base.url"
	keyTimeout   = "api.timeout"
	keyRateLimit = "api.rate.limit"
	keyLogLevel  = "log.level"
	keyLogFormat = "log.format"
)

// Config holds the settings for a suite run.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	RateLimit float64 // requests per second; 0 disables pacing
	LogLevel  string
	LogFormat string // console, json
}

// yamlConfig mirrors the YAML layout.
type yamlConfig struct {
	API struct {
		BaseURL   string   `yaml:"base_url"`
		TimeoutMS *int     `yaml:"timeout"`
		RateLimit *float64 `yaml:"rate_limit"`
	} `yaml:"api"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		BaseURL:   DefaultBaseURL,
		Timeout:   DefaultTimeoutMS * time.Millisecond,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// Load reads path (may be empty or missing), applies .env and environment
// overrides and validates the result.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("could not load .env file")
	}

	cfg := Default()

	if path != "" {
		if err := cfg.applyFile(path); err != nil {
			return Config{}, err
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Warn().Str("path", path).Msg("config file not found, using defaults")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return c.applyYAML(data)
	default:
		return c.applyProperties(data)
	}
}

func (c *Config) applyProperties(data []byte) error {
	p, err := properties.Load(data, properties.UTF8)
	if err != nil {
		return fmt.Errorf("failed to parse properties: %w", err)
	}

	if v, ok := p.Get(keyBaseURL); ok && v != "" {
		c.BaseURL = v
	}
	if v, ok := p.Get(keyTimeout); ok && v != "" {
		ms, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", keyTimeout, v, err)
		}
		c.Timeout = time.Duration(ms) * time.Millisecond
	}
	if v, ok := p.Get(keyRateLimit); ok && v != "" {
		rps, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", keyRateLimit, v, err)
		}
		c.RateLimit = rps
	}
	if v, ok := p.Get(keyLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := p.Get(keyLogFormat); ok && v != "" {
		c.LogFormat = v
	}

	return nil
}

func (c *Config) applyYAML(data []byte) error {
	var y yamlConfig
	if err := yaml.Unmarshal(data, &y); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	if y.API.BaseURL != "" {
		c.BaseURL = y.API.BaseURL
	}
	if y.API.TimeoutMS != nil {
		c.Timeout = time.Duration(*y.API.TimeoutMS) * time.Millisecond
	}
	if y.API.RateLimit != nil {
		c.RateLimit = *y.API.RateLimit
	}
	if y.Log.Level != "" {
		c.LogLevel = y.Log.Level
	}
	if y.Log.Format != "" {
		c.LogFormat = y.Log.Format
	}

	return nil
}

func (c *Config) applyEnv() {
	c.BaseURL = getEnv("RANDOMUSER_BASE_URL", c.BaseURL)
	c.Timeout = time.Duration(getEnvAsInt("RANDOMUSER_TIMEOUT_MS", int(c.Timeout.Milliseconds()))) * time.Millisecond
	c.RateLimit = getEnvAsFloat("RANDOMUSER_RATE_LIMIT", c.RateLimit)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.LogFormat = getEnv("LOG_FORMAT", c.LogFormat)
}

// Validate reports every problem at once.
func (c Config) Validate() error {
	var errs []string

	if u, err := url.Parse(c.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Sprintf("%s must be an absolute URL, got %q", keyBaseURL, c.BaseURL))
	}

	if c.Timeout <= 0 {
		errs = append(errs, fmt.Sprintf("%s must be positive, got %s", keyTimeout, c.Timeout))
	}

	if c.RateLimit < 0 {
		errs = append(errs, fmt.Sprintf("%s cannot be negative", keyRateLimit))
	}

	if c.LogFormat != "console" && c.LogFormat != "json" {
		errs = append(errs, fmt.Sprintf("%s must be console or json, got %q", keyLogFormat, c.LogFormat))
	}

	if len(errs) > 0 {
		return errors.New("configuration errors:\n  - " + strings.Join(errs, "\n  - "))
	}

	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

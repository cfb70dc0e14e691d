package config

import (
	"fmt"
	"strings"
	"time"

	"recommender/internal/common/fsutil"
	"recommender/internal/validation"
)

// Duration decodes from strings like "30s" or "5m" in YAML, JSON and TOML.
type Duration struct{ time.Duration }

func (d *Duration) UnmarshalText(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "0" {
		d.Duration = 0
		return nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", s, err)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) { return []byte(d.Duration.String()), nil }

// CORSConfig controls the optional CORS middleware.
type CORSConfig struct {
	Enabled        bool     `json:"enabled" yaml:"enabled" toml:"enabled"`
	AllowedOrigins []string `json:"allowed_origins" yaml:"allowed_origins" toml:"allowed_origins"`
}

// Config holds runtime parameters for the service.
type Config struct {
	Addr               string     `json:"addr" yaml:"addr" toml:"addr" validate:"required"`
	Region             string     `json:"region" yaml:"region" toml:"region" validate:"required"`
	ModelID            string     `json:"model_id" yaml:"model_id" toml:"model_id" validate:"required"`
	MaxTokenCount      int        `json:"max_token_count" yaml:"max_token_count" toml:"max_token_count" validate:"gt=0"`
	Temperature        float64    `json:"temperature" yaml:"temperature" toml:"temperature" validate:"gte=0,lte=1"`
	TopP               float64    `json:"top_p" yaml:"top_p" toml:"top_p" validate:"gt=0,lte=1"`
	StopSequences      []string   `json:"stop_sequences" yaml:"stop_sequences" toml:"stop_sequences"`
	InferenceTimeout   Duration   `json:"inference_timeout" yaml:"inference_timeout" toml:"inference_timeout"`
	SessionTTL         Duration   `json:"session_ttl" yaml:"session_ttl" toml:"session_ttl"`
	OptionsFile        string     `json:"options_file" yaml:"options_file" toml:"options_file"`
	LogLevel           string     `json:"log_level" yaml:"log_level" toml:"log_level" validate:"omitempty,oneof=trace debug info warn error off"`
	LogFormat          string     `json:"log_format" yaml:"log_format" toml:"log_format" validate:"omitempty,oneof=console json"`
	MaxBodyBytes       int64      `json:"max_body_bytes" yaml:"max_body_bytes" toml:"max_body_bytes" validate:"gte=0"`
	RateLimitPerMinute int        `json:"rate_limit_per_minute" yaml:"rate_limit_per_minute" toml:"rate_limit_per_minute" validate:"gte=0"`
	CORS               CORSConfig `json:"cors" yaml:"cors" toml:"cors"`
}

// Default returns the configuration used when no file or override is given.
func Default() Config {
	return Config{
		Addr:          ":8080",
		Region:        "us-east-1",
		ModelID:       "amazon.titan-text-lite-v1",
		MaxTokenCount: 300,
		Temperature:   0,
		TopP:          0.9,
		StopSequences: []string{},
		SessionTTL:    Duration{30 * time.Minute},
		LogLevel:      "info",
		LogFormat:     "console",
		MaxBodyBytes:  1 << 20,
	}
}

// Load reads a configuration file on top of Default.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	if err := fsutil.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from environment variables. REGION is honored for
// compatibility with the hosted-service client default; the rest are prefixed.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv("REGION"); v != "" {
		c.Region = v
	}
	if v := getenv("RECOMMENDER_ADDR"); v != "" {
		c.Addr = v
	}
	if v := getenv("RECOMMENDER_MODEL_ID"); v != "" {
		c.ModelID = v
	}
	if v := getenv("RECOMMENDER_LOG_LEVEL"); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	if v := getenv("RECOMMENDER_OPTIONS_FILE"); v != "" {
		c.OptionsFile = v
	}
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if err := validation.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

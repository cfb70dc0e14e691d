package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"recommender/internal/admin"
	"recommender/internal/awsclient"
	"recommender/internal/config"
	"recommender/internal/llm"
	"recommender/internal/logging"
)

// app carries resolved configuration and the client factories shared by commands.
type app struct {
	getenv func(string) string
	cfg    config.Config
	log    zerolog.Logger

	// flag values; applied over file and environment when set
	configPath  string
	region      string
	modelID     string
	logLevel    string
	logFormat   string
	addr        string
	optionsFile string
	corsOrigins string
	rateLimit   int

	// Factories for the hosted-service clients. Tests replace them.
	runtimeAPI func(ctx context.Context, region string) (llm.RuntimeAPI, error)
	adminAPI   func(ctx context.Context, region string) (admin.API, error)
}

func newApp(getenv func(string) string) *app {
	return &app{
		getenv: getenv,
		log:    zerolog.Nop(),
		runtimeAPI: func(ctx context.Context, region string) (llm.RuntimeAPI, error) {
			c, err := awsclient.New(ctx, region)
			if err != nil {
				return nil, err
			}
			return c.Runtime, nil
		},
		adminAPI: func(ctx context.Context, region string) (admin.API, error) {
			c, err := awsclient.New(ctx, region)
			if err != nil {
				return nil, err
			}
			return c.Control, nil
		},
	}
}

// changed reports whether a flag was set on the command line.
type changed func(name string) bool

// resolve builds the effective configuration: defaults, then the config file,
// then environment variables, then flags.
func (a *app) resolve(flagSet changed) error {
	cfg := config.Default()
	if a.configPath != "" {
		c, err := config.Load(a.configPath)
		if err != nil {
			return fmt.Errorf("load config %s: %w", a.configPath, err)
		}
		cfg = c
	}
	cfg.ApplyEnv(a.getenv)
	if flagSet("region") {
		cfg.Region = a.region
	}
	if flagSet("model-id") {
		cfg.ModelID = a.modelID
	}
	if flagSet("log-level") {
		cfg.LogLevel = strings.ToLower(a.logLevel)
	}
	if flagSet("log-format") {
		cfg.LogFormat = a.logFormat
	}
	if flagSet("addr") {
		cfg.Addr = a.addr
	}
	if flagSet("options-file") {
		cfg.OptionsFile = a.optionsFile
	}
	if flagSet("cors-origins") {
		cfg.CORS.AllowedOrigins = splitCSV(a.corsOrigins)
		cfg.CORS.Enabled = len(cfg.CORS.AllowedOrigins) > 0
	}
	if flagSet("rate-limit") {
		cfg.RateLimitPerMinute = a.rateLimit
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: os.Stderr})
	return nil
}

// titanClient builds the inference client from the resolved configuration.
func (a *app) titanClient(ctx context.Context) (*llm.Titan, error) {
	api, err := a.runtimeAPI(ctx, a.cfg.Region)
	if err != nil {
		return nil, fmt.Errorf("bedrock runtime client: %w", err)
	}
	return llm.NewTitan(api, llm.Config{
		ModelID:       a.cfg.ModelID,
		MaxTokenCount: a.cfg.MaxTokenCount,
		StopSequences: a.cfg.StopSequences,
		Temperature:   a.cfg.Temperature,
		TopP:          a.cfg.TopP,
		Timeout:       a.cfg.InferenceTimeout.Duration,
	}), nil
}

// adminClient builds the control-plane pass-through client.
func (a *app) adminClient(ctx context.Context) (*admin.Client, error) {
	api, err := a.adminAPI(ctx, a.cfg.Region)
	if err != nil {
		return nil, fmt.Errorf("bedrock client: %w", err)
	}
	return admin.New(api, a.log), nil
}

// splitCSV splits a comma-separated list, trimming blanks.
func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

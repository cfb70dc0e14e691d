package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"recommender/internal/catalog"
	"recommender/internal/httpapi"
	"recommender/internal/llm"
	"recommender/internal/manager"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Run the HTTP server",
		Example: "  recommender serve --addr :8080 --region us-west-2",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, a)
		},
	}
	f := cmd.Flags()
	f.StringVar(&a.addr, "addr", "", "HTTP listen address (defaults RECOMMENDER_ADDR or :8080)")
	f.StringVar(&a.optionsFile, "options-file", "", "YAML/JSON/TOML file replacing the type, genre and mood lists")
	f.StringVar(&a.corsOrigins, "cors-origins", "", "Comma-separated origins allowed to call /api (enables CORS)")
	f.IntVar(&a.rateLimit, "rate-limit", 0, "Submissions per client IP per minute (0 disables)")
	return cmd
}

// newService wires the manager and, when the hosted clients can be built, the
// model and admin clients. Without clients the wizard still renders and
// submissions fail softly.
func newService(ctx context.Context, a *app) (*manager.Manager, httpapi.Admin, error) {
	cat := catalog.Default()
	if a.cfg.OptionsFile != "" {
		c, err := catalog.LoadFile(a.cfg.OptionsFile)
		if err != nil {
			return nil, nil, err
		}
		cat = c
	}

	var gen llm.Generator
	if t, err := a.titanClient(ctx); err != nil {
		a.log.Warn().Err(err).Msg("model client unavailable, submissions will fail")
	} else {
		gen = t
	}
	var adm httpapi.Admin
	if c, err := a.adminClient(ctx); err != nil {
		a.log.Warn().Err(err).Msg("admin client unavailable")
	} else {
		adm = c
	}

	mgr := manager.NewWithConfig(manager.ManagerConfig{
		Generator:  gen,
		Catalog:    cat,
		ModelID:    a.cfg.ModelID,
		Region:     a.cfg.Region,
		SessionTTL: a.cfg.SessionTTL.Duration,
		Logger:     &a.log,
	})
	mgr.SetPublisher(manager.NewLogPublisher(mgr))
	return mgr, adm, nil
}

func runServe(ctx context.Context, a *app) error {
	mgr, adm, err := newService(ctx, a)
	if err != nil {
		return err
	}

	httpapi.SetLogger(a.log)
	httpapi.SetRequestLogLevel(a.cfg.LogLevel)
	httpapi.SetBaseContext(ctx)
	httpapi.SetMaxBodyBytes(a.cfg.MaxBodyBytes)
	httpapi.SetCORSOptions(a.cfg.CORS.Enabled, a.cfg.CORS.AllowedOrigins)
	httpapi.SetRateLimit(a.cfg.RateLimitPerMinute)
	httpapi.SetSessionTTL(a.cfg.SessionTTL.Duration)

	go mgr.Run(ctx, 0)

	srv := &http.Server{
		Addr:              a.cfg.Addr,
		Handler:           httpapi.NewMux(mgr, adm),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		a.log.Info().Str("addr", a.cfg.Addr).Str("region", a.cfg.Region).Str("model", a.cfg.ModelID).Msg("recommender listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	// Graceful shutdown (Ctrl+C / SIGTERM)
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		a.log.Error().Err(err).Msg("graceful shutdown error")
		return err
	}
	a.log.Info().Msg("server stopped")
	return nil
}

package httpapi

import (
	"context"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/service/bedrock"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"recommender/internal/catalog"
	"recommender/internal/manager"
	"recommender/internal/wizard"
	"recommender/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	Ensure(id string) manager.Snapshot
	View(id string) manager.Snapshot
	Advance(id, value string) (manager.Snapshot, error)
	Back(id string) (manager.Snapshot, error)
	Submit(ctx context.Context, id, value string) (manager.Snapshot, error)
	Reset(id string) manager.Snapshot
	Recommend(ctx context.Context, p wizard.Preferences) (manager.Result, error)
	Options() catalog.Catalog
	Status() types.StatusResponse
	Ready() bool
}

// Admin is the model-management surface mounted under /admin.
type Admin interface {
	CreateModelCustomizationJob(ctx context.Context, params *bedrock.CreateModelCustomizationJobInput) (*bedrock.CreateModelCustomizationJobOutput, error)
	GetModelCustomizationJob(ctx context.Context, params *bedrock.GetModelCustomizationJobInput) (*bedrock.GetModelCustomizationJobOutput, error)
	ListFoundationModels(ctx context.Context, params *bedrock.ListFoundationModelsInput) (*bedrock.ListFoundationModelsOutput, error)
}

// NewMux builds the router. adm may be nil, in which case /admin routes answer 503.
func NewMux(svc Service, adm Admin) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(MetricsMiddleware)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			next.ServeHTTP(w, r)
		})
	})

	limit := submitLimiter()

	h := &handlers{svc: svc, adm: adm}

	r.Get("/", h.page)
	r.Route("/wizard", func(r chi.Router) {
		r.Post("/next", h.next)
		r.Post("/back", h.back)
		r.With(limit).Post("/submit", h.submit)
		r.Post("/reset", h.reset)
	})

	r.Group(func(r chi.Router) {
		if corsEnabled {
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins: corsAllowedOrigins,
				AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
				AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id", "X-Log-Level"},
				MaxAge:         300,
			}))
		}
		r.Get("/api/wizard", h.wizardState)
		r.Get("/api/options", h.options)
		r.With(limit).Post("/api/recommendations", h.recommend)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(h.requireAdmin)
		r.Get("/foundation-models", h.listFoundationModels)
		r.Get("/customization-jobs/{id}", h.getCustomizationJob)
		r.Post("/customization-jobs", h.createCustomizationJob)
	})

	r.Get("/status", h.status)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("model client not configured"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)

	return r
}

// submitLimiter rate limits submissions per client IP. A no-op when disabled.
func submitLimiter() func(http.Handler) http.Handler {
	if rateLimitRequests <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.Limit(rateLimitRequests, rateLimitWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			IncrementSubmitRejection("rate_limited")
			writeJSONError(w, http.StatusTooManyRequests, "too many submissions, try again later")
		}),
	)
}

type handlers struct {
	svc Service
	adm Admin
}

// status godoc
//
//	@Summary	Service status
//	@Tags		ops
//	@Produce	json
//	@Success	200	{object}	types.StatusResponse
//	@Router		/status [get]
func (h *handlers) status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Status())
}

package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"loan-predictor/internal/api/handler"
	mw "loan-predictor/internal/api/middleware"
	"loan-predictor/internal/config"
	"loan-predictor/internal/domain/decision"
	"loan-predictor/internal/presentation"

	_ "loan-predictor/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/traceid"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// Dependencies groups what the HTTP layer needs from the rest of the app.
type Dependencies struct {
	Decisions    decision.DecisionService
	Charts       *presentation.ChartRenderer
	Pages        *presentation.Pages
	ModelVersion string
}

// SetupRouter wires middleware and routes. ctx bounds background work owned by
// the router, such as the rate limiter sweeper.
func SetupRouter(ctx context.Context, deps Dependencies, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	router := chi.NewRouter()

	setupMiddleware(ctx, router, cfg, logger)
	setupMetricsEndpoint(router, cfg, logger)
	setupPredictionRoutes(router, deps, logger)
	router.Get("/health", handler.NewHealthHandler(deps.ModelVersion).Health)
	setupSwaggerEndpoint(router, logger)

	return router
}

func setupMiddleware(ctx context.Context, router *chi.Mux, cfg *config.Config, logger *slog.Logger) {
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(traceid.Middleware)
	router.Use(mw.StructuredLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(middleware.Timeout(60 * time.Second))
	router.Use(mw.NewRateLimiter(ctx, cfg.Server.RateLimit, logger).Middleware)
	router.Use(mw.MetricsMiddleware())
}

func setupMetricsEndpoint(router *chi.Mux, cfg *config.Config, logger *slog.Logger) {
	metricsPath := cfg.Metrics.Path
	if metricsPath == "" {
		metricsPath = "/metrics"
	}
	logger.Info("Setting up Prometheus metrics endpoint", "path", metricsPath)
	router.Handle(metricsPath, promhttp.Handler())
}

func setupSwaggerEndpoint(router *chi.Mux, logger *slog.Logger) {
	logger.Info("Setting up Swagger UI endpoint", "path", "/swagger/")
	router.Get("/swagger/*", httpSwagger.WrapHandler)
	router.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/index.html", http.StatusMovedPermanently)
	})
}

func setupPredictionRoutes(router *chi.Mux, deps Dependencies, logger *slog.Logger) {
	h := handler.NewPredictionHandler(deps.Decisions, deps.Charts, deps.Pages, logger)

	router.Get("/", h.ShowForm)
	router.Post("/predict", h.SubmitForm)

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/predictions", h.Predict)
		r.Get("/charts/financial-overview.png", h.FinancialChart)
	})
}

package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"

	"github.com/guttosm/weatherpulse/config"
	"github.com/guttosm/weatherpulse/internal/api"
	"github.com/guttosm/weatherpulse/internal/middleware"
	"github.com/guttosm/weatherpulse/internal/observability"
	"github.com/guttosm/weatherpulse/internal/service"
	"github.com/guttosm/weatherpulse/internal/storage"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL using the configured opener.
//   - Builds the observations repository, metrics and report service.
//   - Configures the Gin router with report routes, /metrics and rate limiting.
//   - Registers health and readiness probes.
//   - Provides a cleanup function that closes the database handle.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	repo := storage.NewObservationsRepository(db)
	metrics := observability.NewMetrics()
	clock := clockwork.NewRealClock()

	svc := service.NewReportService(repo, metrics, clock)
	handler := api.NewHandler(svc)
	limiter := middleware.NewRateLimiter(middleware.DefaultRateLimit, middleware.DefaultRateWindow, clock)

	router := api.NewRouter(handler, limiter, metrics.Handler())

	api.NewHealthHandler(db.PingContext).Register(router)

	cleanup := func() {
		_ = db.Close()
	}

	return router, cleanup, nil
}

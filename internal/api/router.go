package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/weatherpulse/internal/middleware"
)

const requestTimeout = 10 * time.Second

// NewRouter creates a Gin engine with routes configured.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, RequestLogger, Recovery, ErrorHandler, rate limiting).
//   - Bounds every request context to 10 seconds.
//   - Mounts Swagger docs (/swagger/*any) and, when metrics is non-nil, /metrics.
//   - Configures API v1 routes (/api/v1/reports).
//
// Health and readiness endpoints are registered by app.InitializeApp.
func NewRouter(handler *Handler, limiter *middleware.RateLimiter, metrics http.Handler) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
	)
	if limiter != nil {
		router.Use(limiter.Middleware())
	}

	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if metrics != nil {
		router.GET("/metrics", gin.WrapH(metrics))
	}

	v1 := router.Group("/api/v1")
	{
		reports := v1.Group("/reports")
		reports.GET("/summary", handler.GetSummary)
		reports.GET("/daily", handler.GetDaily)
		reports.POST("/render", handler.RenderCSV)
	}

	return router
}

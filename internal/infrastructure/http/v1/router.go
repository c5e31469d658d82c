// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bakhaar/internal/domain/activity"
	"bakhaar/internal/domain/auth"
	"bakhaar/internal/domain/inventory"
	"bakhaar/internal/domain/item"
	"bakhaar/internal/domain/reports"
	"bakhaar/internal/infrastructure/http/v1/handlers"
	"bakhaar/internal/infrastructure/http/v1/middleware"
	"bakhaar/internal/infrastructure/storage/postgres"
	"bakhaar/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	// Pool is the database connection (for health checks)
	Pool *postgres.Pool

	// Logger for request logging
	Logger *logger.Logger

	// JWTValidator for token validation
	JWTValidator middleware.JWTValidator

	// IdempotencyStore guards mutating activity requests against duplicate
	// submission (optional; duplicates are not replayed when nil)
	IdempotencyStore middleware.IdempotencyStore

	// Domain services
	AuthService      *auth.Service
	ItemService      *item.Service
	ActivityService  *activity.Service
	InventoryService *inventory.Service
	ReportsService   *reports.Service
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.Metrics())
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth required)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	base := handlers.NewBaseHandler()

	// API v1
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes: login is public, the rest requires a token
		authHandler := handlers.NewAuthHandler(base, cfg.AuthService)
		publicAuth := apiV1.Group("/auth")
		protectedAuth := apiV1.Group("/auth")
		protectedAuth.Use(middleware.Auth(cfg.JWTValidator))
		authHandler.RegisterRoutes(publicAuth, protectedAuth)

		// Everything else requires a token. Role checks live in the
		// domain services, which read the caller from context.
		protected := apiV1.Group("")
		protected.Use(middleware.Auth(cfg.JWTValidator))

		handlers.NewItemHandler(base, cfg.ItemService).RegisterRoutes(protected.Group("/items"))

		// A duplicate submit during a slow response would append a second
		// movement record, so POSTs here honor X-Idempotency-Key.
		activities := protected.Group("/activities")
		if cfg.IdempotencyStore != nil {
			activities.Use(middleware.Idempotency(cfg.IdempotencyStore))
		}
		handlers.NewActivityHandler(base, cfg.ActivityService).RegisterRoutes(activities)

		handlers.NewStockHandler(base, cfg.InventoryService).RegisterRoutes(protected)
		handlers.NewReportsHandler(base, cfg.ReportsService).RegisterRoutes(protected.Group("/reports"))

		handlers.NewUsersHandler(base, cfg.AuthService).RegisterRoutes(protected.Group("/users"))
	}

	return router
}

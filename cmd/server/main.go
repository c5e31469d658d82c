// Package main is the entry point for the Bakhaar warehouse API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib"

	"bakhaar/internal/domain/activity"
	"bakhaar/internal/domain/auth"
	"bakhaar/internal/domain/inventory"
	"bakhaar/internal/domain/item"
	"bakhaar/internal/domain/reports"
	v1 "bakhaar/internal/infrastructure/http/v1"
	"bakhaar/internal/infrastructure/storage/postgres"
	"bakhaar/pkg/logger"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting bakhaar server")

	dsn := mustEnv("DATABASE_URL")

	// --- Migrations ---
	if getEnv("RUN_MIGRATIONS", "true") == "true" {
		if err := runMigrations(dsn); err != nil {
			log.Fatalw("failed to run migrations", "error", err)
		}
		log.Info("migrations applied")
	}

	// --- Database connection ---
	poolCfg := postgres.DefaultPoolConfig(dsn)
	if maxConns := getEnvInt("DB_MAX_CONNS", 0); maxConns > 0 {
		poolCfg.MaxConns = int32(maxConns)
	}

	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	txManager := postgres.NewTxManager(pool)

	idempotencyTTL := time.Duration(getEnvInt("IDEMPOTENCY_TTL_HOURS", 24)) * time.Hour
	idempotencyStore, err := postgres.NewIdempotencyStore(txManager, idempotencyTTL)
	if err != nil {
		log.Fatalw("failed to create idempotency store", "error", err)
	}

	// --- Repositories ---
	itemRepo := postgres.NewItemRepo(txManager)
	activityRepo := postgres.NewActivityRepo(txManager)
	userRepo := postgres.NewUserRepo(txManager)

	// --- JWT Service ---
	jwtSecret := getEnv("JWT_SECRET", "your-secret-key-change-in-production")
	jwtService := auth.NewJWTService(auth.DefaultJWTConfig(jwtSecret))

	// --- Domain services ---
	authService := auth.NewService(userRepo, jwtService)
	itemService := item.NewService(itemRepo)
	inventoryService := inventory.NewService(itemRepo, activityRepo)
	activityService := activity.NewService(activityRepo, itemService, inventoryService, txManager)
	reportsService := reports.NewService(itemRepo, activityRepo, userRepo)

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Pool:             pool,
		Logger:           log,
		JWTValidator:     jwtService,
		IdempotencyStore: idempotencyStore,
		AuthService:      authService,
		ItemService:      itemService,
		ActivityService:  activityService,
		InventoryService: inventoryService,
		ReportsService:   reportsService,
	})

	// --- HTTP Server ---
	port := getEnv("APP_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// Expired idempotency keys are garbage-collected in the background.
	cleanupCtx, stopCleanup := context.WithCancel(ctx)
	defer stopCleanup()
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-cleanupCtx.Done():
				return
			case <-ticker.C:
				if removed, err := idempotencyStore.CleanupExpired(cleanupCtx); err != nil {
					log.Warnw("idempotency cleanup failed", "error", err)
				} else if removed > 0 {
					log.Infow("idempotency keys expired", "removed", removed)
				}
			}
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}

func runMigrations(dsn string) error {
	sqlDB, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer func() { _ = sqlDB.Close() }()
	return goose.Up(sqlDB, getEnv("MIGRATIONS_DIR", "migrations"))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		fmt.Printf("required environment variable %s not set\n", key)
		os.Exit(1)
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}

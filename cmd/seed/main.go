// Package main provides a CLI tool for seeding the database with initial data.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"bakhaar/internal/core/id"
	"bakhaar/internal/domain/auth"
	"bakhaar/internal/infrastructure/storage/postgres"
	"bakhaar/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	poolCfg := postgres.DefaultPoolConfig(dbURL)
	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	if err := seedUsers(ctx, pool.Pool, log); err != nil {
		log.Fatalw("failed to seed users", "error", err)
	}

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := seedDemoData(ctx, pool.Pool, log); err != nil {
			log.Fatalw("failed to seed demo data", "error", err)
		}
	}

	log.Info("seeding completed successfully")
}

type userSeed struct {
	username string
	password string
	name     string
	role     string
}

func seedUsers(ctx context.Context, db postgres.Querier, log *logger.Logger) error {
	seeds := []userSeed{
		{"maxamed", "maxamed123", "Maxamed Cali", auth.RoleWasiir},
		{"abdinur", "abdinur123", "Abdinur Xasan", auth.RoleAgaasime},
		{"salah", "salah123", "Salah Axmed", auth.RoleStorekeeper},
		{"admin", "admin123", "System Admin", auth.RoleWasiir},
	}

	for _, s := range seeds {
		var existingID id.ID
		err := db.QueryRow(ctx,
			`SELECT id FROM wh_users WHERE username = $1`,
			s.username,
		).Scan(&existingID)
		if err == nil {
			log.Infow("user already exists", "username", s.username, "user_id", existingID)
			continue
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("check user %s exists: %w", s.username, err)
		}

		passwordHash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", s.username, err)
		}

		userID := id.New()
		_, err = db.Exec(ctx, `
			INSERT INTO wh_users (id, username, password_hash, name, role, status)
			VALUES ($1, $2, $3, $4, $5, 'Active')
		`, userID, s.username, string(passwordHash), s.name, s.role)
		if err != nil {
			return fmt.Errorf("insert user %s: %w", s.username, err)
		}

		log.Infow("user created", "username", s.username, "role", s.role, "user_id", userID)
	}

	return nil
}

func seedDemoData(ctx context.Context, db postgres.Querier, log *logger.Logger) error {
	log.Info("seeding demo data...")

	type itemSeed struct {
		name     string
		category string
	}
	items := []itemSeed{
		{"Laptop", "Electronics"},
		{"Buug", "Books"},
		{"Kursi", "General"},
	}

	for _, s := range items {
		_, err := db.Exec(ctx, `
			INSERT INTO items (id, name, category)
			VALUES ($1, $2, $3)
			ON CONFLICT (name, category) DO NOTHING
		`, id.New(), s.name, s.category)
		if err != nil {
			return fmt.Errorf("insert item %s: %w", s.name, err)
		}
	}

	type activitySeed struct {
		date      string
		direction string
		quantity  int64
		itemName  string
		category  string
		recipient string
		username  string
		status    string
	}
	acts := []activitySeed{
		{"01/06/2025", "Geliyay", 10, "Laptop", "Electronics", "Warehouse", "Abdinur Xasan", "Approved"},
		{"02/06/2025", "Bixiyay", 2, "Laptop", "Electronics", "IT Department", "Salah Axmed", "Approved"},
		{"03/06/2025", "Geliyay", 50, "Buug", "Books", "Warehouse", "Maxamed Cali", "Approved"},
		{"04/06/2025", "Bixiyay", 5, "Buug", "Books", "School", "Salah Axmed", "Pending"},
	}

	for _, s := range acts {
		_, err := db.Exec(ctx, `
			INSERT INTO activities (id, date, direction, quantity, item_name, item_category, recipient, username, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, id.New(), s.date, s.direction, s.quantity, s.itemName, s.category, s.recipient, s.username, s.status)
		if err != nil {
			return fmt.Errorf("insert activity for %s: %w", s.itemName, err)
		}
	}

	log.Info("demo data seeded")
	return nil
}

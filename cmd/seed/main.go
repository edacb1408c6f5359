// Command seed loads the bundled merchant reputation data into the registry.
//
// Usage:
//
//	DATABASE_URL=postgres://... go run ./cmd/seed
//	DATABASE_URL=postgres://... go run ./cmd/seed -shops 100
//
// Seeding is idempotent: handles already present in the registry are
// skipped, so it is safe to re-run against a live database.
package main

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/smartshield/smartshield/internal/logging"
	"github.com/smartshield/smartshield/internal/merchant"
)

func main() {
	shops := flag.Int("shops", 40, "number of generated local shop records")
	flag.Parse()

	logger := logging.New("info", "text")

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Error("DATABASE_URL environment variable is required")
		os.Exit(1)
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	store := merchant.NewPostgresStore(db)
	if err := store.Migrate(ctx); err != nil {
		logger.Error("failed to migrate", "error", err)
		os.Exit(1)
	}

	var records []*merchant.Merchant
	records = append(records, merchant.TrustedMerchants()...)
	records = append(records, merchant.KnownScams()...)
	records = append(records, merchant.LocalShops(*shops)...)

	result, err := merchant.Seed(ctx, store, records)
	if err != nil {
		logger.Error("seeding failed", "error", err)
		os.Exit(1)
	}

	logger.Info("seeding complete",
		"inserted", result.Inserted,
		"skipped", result.Skipped,
	)
}

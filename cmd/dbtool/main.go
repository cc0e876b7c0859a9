// dbtool migrates, optionally resets, and optionally seeds the
// dashboard database.
//
// Usage:
//
//	DATABASE_URL=... go run ./cmd/dbtool                  # migrate only
//	DATABASE_URL=... go run ./cmd/dbtool -seed            # migrate + seed
//	DATABASE_URL=... go run ./cmd/dbtool -reset -confirm=RESET -seed
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"invoice-dashboard-backend/internal/config"
	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/services/seed"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	reset := flag.Bool("reset", false, "Drop all dashboard tables before migrating (destructive)")
	confirm := flag.String("confirm", "", "Type RESET to proceed when -reset is set")
	runSeed := flag.Bool("seed", false, "Seed the database after migrating")
	flag.Parse()

	if *reset && *confirm != "RESET" {
		fmt.Fprintln(os.Stderr, "set -confirm=RESET to proceed")
		os.Exit(1)
	}

	log := logrus.New()

	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, relying on system env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		log.WithError(err).Fatal("database init failed")
	}

	if *reset {
		// Invoices reference customers, so they go first.
		if err := db.Migrator().DropTable(
			&models.Invoice{},
			&models.Revenue{},
			&models.Customer{},
			&models.User{},
		); err != nil {
			log.WithError(err).Fatal("reset failed")
		}
		log.Info("tables dropped")
	}

	if err := models.MigrateTables(db); err != nil {
		log.WithError(err).Fatal("migration failed")
	}
	log.Info("migration complete")

	if *runSeed {
		result, err := seed.New(db, log).Run(context.Background())
		if err != nil {
			log.WithError(err).Fatal("seed failed")
		}
		fmt.Printf("seeded: users=%d customers=%d revenue=%d invoices=%d\n",
			result.Users, result.Customers, result.Revenue, result.Invoices)
	}
}

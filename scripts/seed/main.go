package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/biztime/biztime/internal/app"
	"github.com/biztime/biztime/internal/platform/db"
)

func main() {
	reset := flag.Bool("reset", false, "delete existing companies and invoices before seeding")
	flag.Parse()

	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	dsn := cfg.DatabaseURL()

	fmt.Println("→ Applying migrations...")
	if err := db.Migrate(dsn); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	ctx := context.Background()
	pool, err := db.New(ctx, dsn, db.PoolConfig{MaxConns: 2})
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	err = db.WithTx(ctx, pool, func(tx pgx.Tx) error {
		if *reset {
			fmt.Println("→ Clearing existing data...")
			if _, err := tx.Exec(ctx, `TRUNCATE invoices, companies RESTART IDENTITY CASCADE`); err != nil {
				return fmt.Errorf("truncate: %w", err)
			}
		}
		fmt.Println("→ Seeding companies...")
		if err := seedCompanies(ctx, tx); err != nil {
			return fmt.Errorf("seed companies: %w", err)
		}
		fmt.Println("→ Seeding invoices...")
		if err := seedInvoices(ctx, tx); err != nil {
			return fmt.Errorf("seed invoices: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Fatalf("seed: %v", err)
	}

	fmt.Println("✓ Seed complete at", time.Now().Format(time.RFC3339))
}

// =============================================================================
// COMPANIES
// =============================================================================

func seedCompanies(ctx context.Context, tx pgx.Tx) error {
	companies := []struct {
		code        string
		name        string
		description string
	}{
		{"apple", "Apple Computer", "Maker of OSX."},
		{"ibm", "IBM", "Big blue."},
	}
	for _, c := range companies {
		_, err := tx.Exec(ctx, `
			INSERT INTO companies (code, name, description)
			VALUES ($1, $2, $3)
			ON CONFLICT (code) DO NOTHING`, c.code, c.name, c.description)
		if err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// INVOICES
// =============================================================================

func seedInvoices(ctx context.Context, tx pgx.Tx) error {
	var existing int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM invoices`).Scan(&existing); err != nil {
		return err
	}
	if existing > 0 {
		fmt.Println("  invoices already present, skipping")
		return nil
	}

	paidOn := time.Date(2018, time.January, 1, 0, 0, 0, 0, time.UTC)
	invoices := []struct {
		compCode string
		amt      float64
		paid     bool
		paidDate *time.Time
	}{
		{"apple", 100, false, nil},
		{"apple", 200, false, nil},
		{"apple", 300, true, &paidOn},
		{"ibm", 400, false, nil},
	}

	batch := &pgx.Batch{}
	for _, inv := range invoices {
		batch.Queue(`
			INSERT INTO invoices (comp_code, amt, paid, paid_date)
			VALUES ($1, $2, $3, $4)`, inv.compCode, inv.amt, inv.paid, inv.paidDate)
	}
	return tx.SendBatch(ctx, batch).Close()
}

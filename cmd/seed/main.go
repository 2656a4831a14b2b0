// Package main provides a CLI tool for bootstrapping the schema and
// seeding the catalog with demo data.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"uniboks/internal/core/id"
	"uniboks/internal/core/types"
	"uniboks/internal/domain/book"
	"uniboks/internal/domain/user"
	"uniboks/internal/infrastructure/storage/postgres"
	"uniboks/internal/infrastructure/storage/postgres/store_repo"
	"uniboks/pkg/logger"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id          uuid PRIMARY KEY,
		email       text NOT NULL UNIQUE,
		username    text NOT NULL,
		profile_url text,
		level       text,
		department  text,
		phone       text,
		flat_no     text,
		street      text,
		city        text,
		state       text,
		postal_code text,
		created_at  timestamptz NOT NULL DEFAULT now(),
		updated_at  timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS books (
		id         uuid PRIMARY KEY,
		code       text NOT NULL UNIQUE,
		title      text NOT NULL,
		author     text,
		department text NOT NULL,
		level      text,
		category   text,
		price      numeric(10,2) NOT NULL,
		available  integer NOT NULL DEFAULT 0,
		rating     double precision NOT NULL DEFAULT 0,
		views      integer NOT NULL DEFAULT 0,
		cover_url  text,
		created_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS wishlists (
		user_id    uuid NOT NULL REFERENCES users(id),
		book_id    uuid NOT NULL REFERENCES books(id),
		created_at timestamptz NOT NULL DEFAULT now(),
		PRIMARY KEY (user_id, book_id)
	)`,
	`CREATE TABLE IF NOT EXISTS purchases (
		id             uuid PRIMARY KEY,
		user_id        uuid NOT NULL REFERENCES users(id),
		invoice_number text NOT NULL,
		book_code      text NOT NULL,
		quantity       integer NOT NULL,
		unit_price     numeric(10,2) NOT NULL,
		total_price    numeric(10,2) NOT NULL,
		payment_method text NOT NULL,
		date_purchased timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_purchases_user ON purchases (user_id, date_purchased DESC)`,
	`CREATE TABLE IF NOT EXISTS invoice_counters (
		counter_key  text PRIMARY KEY,
		last_counter bigint NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS analytics_events (
		id                  uuid PRIMARY KEY,
		user_id             text NOT NULL,
		event               text NOT NULL,
		metadata            jsonb,
		metadata_compressed bytea,
		compression_algo    text NOT NULL DEFAULT 'none',
		created_at          timestamptz NOT NULL DEFAULT now()
	)`,
}

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

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(dbURL))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			log.Fatalw("failed to apply schema", "error", err)
		}
	}
	log.Info("schema applied")

	txManager := postgres.NewTxManager(pool)
	books := store_repo.NewBookRepo(txManager)
	users := store_repo.NewUserRepo(txManager)

	if err := seedBooks(ctx, books, log); err != nil {
		log.Fatalw("failed to seed books", "error", err)
	}

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := seedDemoUser(ctx, users, log); err != nil {
			log.Fatalw("failed to seed demo user", "error", err)
		}
	}

	log.Info("seeding completed successfully")
}

type seedBook struct {
	code       string
	title      string
	author     string
	department string
	level      string
	category   string
	price      string
	available  int
	rating     float64
}

var catalog = []seedBook{
	{"STA211", "Probability Theory I", "I. Adeleke", "Statistics", "200", "core", "200.00", 40, 4.5},
	{"STA231", "Statistical Inference I", "E. Nduka", "Statistics", "200", "core", "150.00", 35, 4.2},
	{"COS201", "Computer Programming I", "O. Abass", "it", "200", "core", "250.00", 50, 4.7},
	{"ENG301", "Engineering Mathematics III", "K. Stroud", "Engineering", "300", "core", "1800.00", 25, 4.8},
	{"ART105", "Introduction to African Art", "C. Okeke", "art", "100", "elective", "950.00", 15, 4.0},
	{"GLY202", "Structural Geology", "R. Fossen", "geology", "200", "core", "2400.00", 10, 4.4},
	{"PHY101", "General Physics I", "M. Nelkon", "Physics and Astronomy", "100", "core", "1200.00", 60, 4.1},
	{"CHM221", "Organic Chemistry", "B. Osuagwu", "Pure and Industrial Chemistry", "200", "core", "1650.00", 30, 4.3},
	{"MCB301", "General Microbiology", "U. Eze", "Micro Biology", "300", "core", "2100.00", 20, 4.6},
}

func seedBooks(ctx context.Context, repo *store_repo.BookRepo, log *logger.Logger) error {
	created := 0
	for _, sb := range catalog {
		if _, err := repo.GetByCode(ctx, sb.code); err == nil {
			continue
		}

		author := sb.author
		level := sb.level
		category := sb.category
		b := &book.Book{
			ID:         id.New(),
			Code:       sb.code,
			Title:      sb.title,
			Author:     &author,
			Department: sb.department,
			Level:      &level,
			Category:   &category,
			Price:      types.MustMoney(sb.price),
			Available:  sb.available,
			Rating:     sb.rating,
			CreatedAt:  time.Now().UTC(),
		}
		if err := repo.Create(ctx, b); err != nil {
			return err
		}
		created++
	}
	log.Infow("catalog seeded", "created", created, "total", len(catalog))
	return nil
}

func seedDemoUser(ctx context.Context, repo *store_repo.UserRepo, log *logger.Logger) error {
	email := "demo@uniboks.io"
	if _, err := repo.GetByEmail(ctx, email); err == nil {
		log.Infow("demo user already exists", "email", email)
		return nil
	}

	dept := "Statistics"
	level := "200"
	u := user.NewUser(email, "Demo Student")
	u.Department = &dept
	u.Level = &level
	if err := repo.Create(ctx, u); err != nil {
		return err
	}

	log.Infow("demo user created", "email", email, "user_id", u.ID)
	return nil
}

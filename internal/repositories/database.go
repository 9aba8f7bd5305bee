package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/XSAM/otelsql"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/config"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/utils"
	_ "github.com/lib/pq"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

type Repository struct {
	DB *sql.DB
}

// New opens the traced connection pool and verifies the database is reachable.
func New(cfg *config.Config) (*Repository, error) {

	db, err := otelsql.Open("postgres", cfg.Database.GetDSN(),
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
		otelsql.WithSpanOptions(otelsql.SpanOptions{OmitConnResetSession: true}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.ConnectTimeout+time.Second)
	defer cancel()

	// Test the connection to make sure DB is reachable
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Repository{DB: db}, nil
}

func NewWithDB(db *sql.DB) *Repository {
	return &Repository{DB: db}
}

// Now runs the start-up connectivity query and returns the server clock.
func (p *Repository) Now(ctx context.Context) (time.Time, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var now time.Time
	if err := p.DB.QueryRowContext(dbCtx, `SELECT NOW()`).Scan(&now); err != nil {
		return time.Time{}, logQueryError(ctx, `SELECT NOW()`, err)
	}

	return now, nil
}

func (p *Repository) Close() error {
	return p.DB.Close()
}

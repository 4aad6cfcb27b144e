package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	appconfig "estimate_wizard/internal/config"

	_ "github.com/lib/pq"
)

// NewPostgres opens a pooled lib/pq connection and verifies it with a ping.
func NewPostgres(ctx context.Context, cfg appconfig.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Printf("[infra][postgres] connected host=%s db=%s", cfg.Host, cfg.DBName)
	return db, nil
}

package db

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/solo-mizan/goru-club/internal/config"
)

// Connect builds the Postgres connection pool. Connection failures are
// logged but never fatal: the pool dials lazily, so the server starts
// degraded and store-backed routes fail per request until the store is
// reachable. Returns nil only when the connection string cannot be
// parsed at all.
func Connect(cfg *config.Config) *pgxpool.Pool {
	poolCfg, err := pgxpool.ParseConfig(cfg.Database.URL)
	if err != nil {
		log.Printf("Warning: invalid database URL: %v", err)
		return nil
	}
	poolCfg.ConnConfig.ConnectTimeout = cfg.Database.ConnectTimeout
	poolCfg.MaxConnIdleTime = cfg.Database.IdleTimeout

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		log.Printf("Warning: could not create connection pool: %v", err)
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.ConnectTimeout)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		log.Printf("Warning: database unreachable, continuing in degraded mode: %v", err)
		return pool
	}

	log.Println("Connected to database")
	return pool
}

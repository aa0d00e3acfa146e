// Package database provides PostgreSQL connection management using pgx.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema is applied at startup. Registrations carry a composite
// primary key so a user holds at most one row per event.
const schema = `
CREATE TABLE IF NOT EXISTS events (
	event_id   BIGSERIAL PRIMARY KEY,
	title      TEXT NOT NULL,
	event_date DATE,
	location   TEXT NOT NULL DEFAULT '',
	capacity   INT  NOT NULL DEFAULT 0,
	fee        NUMERIC(10,2)
);

CREATE TABLE IF NOT EXISTS users (
	user_id  BIGSERIAL PRIMARY KEY,
	username TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL,
	name     TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS registrations (
	user_id           BIGINT NOT NULL REFERENCES users (user_id),
	event_id          BIGINT NOT NULL REFERENCES events (event_id),
	registration_date TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (user_id, event_id)
);
`

// NewPool creates and validates a pgxpool connection pool.
// It retries up to 5 times to accommodate containers starting up.
func NewPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}

	// Sensible pool defaults for a small service.
	poolCfg.MaxConns = 20
	poolCfg.MinConns = 2
	poolCfg.MaxConnLifetime = 30 * time.Minute
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	var pool *pgxpool.Pool
	for attempt := 1; attempt <= 5; attempt++ {
		pool, err = pgxpool.NewWithConfig(ctx, poolCfg)
		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				break
			}
			pool.Close()
		}
		fmt.Printf("db connect attempt %d/5 failed: %v – retrying in 2s\n", attempt, err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	return pool, nil
}

// InitSchema creates the events, users and registrations tables if
// they do not exist yet.
func InitSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

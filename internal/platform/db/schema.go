package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Dates are stored as ISO-8601 calendar strings end to end; the API sorts and
// compares them lexically, which is valid for this format.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		name TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL,
		expires_at TIMESTAMPTZ NOT NULL,
		ip TEXT,
		ua TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		sku TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		unit_price BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS dealers (
		code TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		region TEXT NOT NULL,
		city TEXT NOT NULL,
		contact TEXT NOT NULL,
		ytd_sales BIGINT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS inventory (
		sku TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		stock INTEGER NOT NULL,
		reorder_level INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id TEXT PRIMARY KEY,
		order_date TEXT NOT NULL,
		dealer TEXT NOT NULL,
		product TEXT NOT NULL,
		qty INTEGER NOT NULL,
		amount BIGINT NOT NULL,
		status TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS production (
		id BIGSERIAL PRIMARY KEY,
		model TEXT NOT NULL,
		planned INTEGER NOT NULL,
		produced INTEGER NOT NULL,
		target_date TEXT NOT NULL,
		status TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS kpi (
		name TEXT PRIMARY KEY,
		value BIGINT NOT NULL
	)`,
}

// EnsureSchema creates the MIS tables when they do not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("platform/db: ensure schema: %w", err)
		}
	}
	return nil
}

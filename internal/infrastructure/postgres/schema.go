package postgres

import (
	"context"
	"fmt"
)

// Migrate crea las tablas si no existen. position conserva el orden de inserción de cada colección.
func Migrate(ctx context.Context, q Querier) error {
	for _, stmt := range schema {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrar esquema: %w", err)
		}
	}
	return nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id              TEXT PRIMARY KEY,
		username        TEXT NOT NULL,
		role            TEXT NOT NULL CHECK (role IN ('Admin', 'User')),
		credential_hash TEXT NOT NULL,
		position        BIGINT NOT NULL,
		created_at      TIMESTAMPTZ,
		updated_at      TIMESTAMPTZ
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_users_username ON users (lower(username))`,
	`CREATE TABLE IF NOT EXISTS categories (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		position   BIGINT NOT NULL,
		created_at TIMESTAMPTZ,
		updated_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS items (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		category_id TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		position    BIGINT NOT NULL,
		created_at  TIMESTAMPTZ,
		updated_at  TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS stock_movements (
		id         TEXT PRIMARY KEY,
		item_id    TEXT NOT NULL,
		type       TEXT NOT NULL CHECK (type IN ('IN', 'OUT')),
		quantity   BIGINT NOT NULL CHECK (quantity > 0),
		date       TIMESTAMPTZ NOT NULL,
		notes      TEXT NOT NULL DEFAULT '',
		supplier   TEXT NOT NULL DEFAULT '',
		reason     TEXT NOT NULL DEFAULT '',
		created_by TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ,
		position   BIGINT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_stock_movements_item ON stock_movements (item_id)`,
}

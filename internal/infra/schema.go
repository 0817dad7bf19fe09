package infra

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
        id UUID PRIMARY KEY,
        email TEXT NOT NULL UNIQUE,
        name TEXT NOT NULL,
        user_type TEXT NOT NULL CHECK (user_type IN ('influencer', 'customer')),
        password_hash BYTEA NOT NULL,
        created_at TIMESTAMPTZ NOT NULL
    )`,
	`CREATE TABLE IF NOT EXISTS avatars (
        influencer_id TEXT PRIMARY KEY,
        avatar_id TEXT NOT NULL UNIQUE,
        asset_path TEXT NOT NULL,
        voice_id TEXT NOT NULL,
        created_at TIMESTAMPTZ NOT NULL
    )`,
}

// Migrate creates the dev backend tables when they do not exist.
func Migrate(ctx context.Context, db *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

type migration struct {
	version string
	sql     string
}

// Mismo esquema que el backend hospedado (tablas `profiles` y `users`).
var migrations = []migration{
	{
		version: "000_create_profiles",
		sql: `
			CREATE TABLE IF NOT EXISTS profiles (
				id         TEXT PRIMARY KEY,
				full_name  TEXT,
				avatar_url TEXT,
				updated_at TIMESTAMPTZ
			)`,
	},
	{
		version: "001_create_users",
		sql: `
			CREATE TABLE IF NOT EXISTS users (
				id                   TEXT PRIMARY KEY,
				email                TEXT NOT NULL DEFAULT '',
				age                  INTEGER,
				height               DOUBLE PRECISION,
				weight               DOUBLE PRECISION,
				sex                  TEXT,
				activity_level       TEXT,
				goal                 TEXT,
				target_weight        DOUBLE PRECISION,
				daily_calorie_target INTEGER,
				daily_protein_target INTEGER,
				daily_carbs_target   INTEGER,
				daily_fat_target     INTEGER,
				onboarding_completed BOOLEAN NOT NULL DEFAULT FALSE,
				created_at           TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`,
	},
}

// Migrate aplica las migraciones pendientes en orden; es idempotente.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	for _, m := range migrations {
		var exists bool
		if err := db.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE version = $1)`, m.version,
		).Scan(&exists); err != nil {
			return fmt.Errorf("check migration %s: %w", m.version, err)
		}
		if exists {
			continue
		}

		if _, err := db.ExecContext(ctx, m.sql); err != nil {
			return fmt.Errorf("apply migration %s: %w", m.version, err)
		}
		if _, err := db.ExecContext(ctx,
			`INSERT INTO schema_migrations (version) VALUES ($1)`, m.version,
		); err != nil {
			return fmt.Errorf("record migration %s: %w", m.version, err)
		}
	}
	return nil
}

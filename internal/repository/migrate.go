package repository

import (
	"context"
	"time"
)

// Migrate 在启动时建表，表已经存在时不做任何修改
func (r *Repository) Migrate() error {
	statements := []string{
		`
			CREATE TABLE IF NOT EXISTS users (
				id BIGSERIAL PRIMARY KEY,
				username TEXT UNIQUE NOT NULL,
				password_hash TEXT NOT NULL,
				full_name TEXT NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
				version INTEGER NOT NULL DEFAULT 1
			)
		`,
		`
			CREATE TABLE IF NOT EXISTS employees (
				id BIGSERIAL PRIMARY KEY,
				name TEXT NOT NULL,
				sex TEXT NOT NULL,
				role TEXT NOT NULL,
				required_days INTEGER NOT NULL,
				fixed_days JSONB NOT NULL DEFAULT '[]',
				is_nsp BOOLEAN NOT NULL DEFAULT FALSE,
				created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
				version INTEGER NOT NULL DEFAULT 1
			)
		`,
		`
			CREATE TABLE IF NOT EXISTS monthly_schedules (
				id BIGSERIAL PRIMARY KEY,
				year INTEGER NOT NULL,
				month INTEGER NOT NULL,
				roster JSONB NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
				version INTEGER NOT NULL DEFAULT 1,
				UNIQUE (year, month)
			)
		`,
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	for _, statement := range statements {
		if _, err := r.dbpool.ExecContext(ctx, statement); err != nil {
			return err
		}
	}

	return nil
}

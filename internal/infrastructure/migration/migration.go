package migration

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v4/pgxpool"
)

// RunMigrations executes all necessary database migrations on startup.
// Without a pool there is nothing to migrate.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	if pool == nil {
		slog.Info("No exports database configured, skipping migrations")
		return nil
	}
	slog.Info("Starting database migrations")

	for _, m := range Migrations() {
		if err := m.Up(ctx, pool); err != nil {
			slog.Error("Migration failed", "name", m.Name, "error", err)
			return err
		}
		slog.Info("Migration completed", "name", m.Name)
	}

	slog.Info("All migrations completed successfully")
	return nil
}

// Migration represents a database migration
type Migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

// Migrations lists the migrations in the order they run.
func Migrations() []Migration {
	return []Migration{
		{Name: "create_export_jobs", Up: createExportJobs},
		{Name: "index_export_jobs_session", Up: indexExportJobsSession},
	}
}

func createExportJobs(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		CREATE TABLE IF NOT EXISTS export_jobs (
			id UUID PRIMARY KEY,
			session_id UUID NOT NULL,
			file_name TEXT NOT NULL,
			theme TEXT NOT NULL DEFAULT '',
			exporter TEXT NOT NULL,
			pages INTEGER NOT NULL DEFAULT 0,
			bytes INTEGER NOT NULL DEFAULT 0,
			attempts INTEGER NOT NULL DEFAULT 0,
			status TEXT NOT NULL,
			error TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);
	`
	_, err := pool.Exec(ctx, query)
	return err
}

// indexExportJobsSession adds the lookup index for a session's exports
func indexExportJobsSession(ctx context.Context, pool *pgxpool.Pool) error {
	query := `CREATE INDEX IF NOT EXISTS export_jobs_session_idx ON export_jobs (session_id, created_at DESC);`

	if _, err := pool.Exec(ctx, query); err != nil {
		// the index only speeds up lookups
		slog.Warn("Error creating export_jobs index", "error", err)
		return nil
	}
	return nil
}

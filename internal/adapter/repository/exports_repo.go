package repository

import (
	"context"
	"fmt"

	"resume-builder/internal/domain"

	"github.com/jackc/pgx/v4/pgxpool"
)

// ExportsRepo stores export job records in Postgres. A repo without a pool
// accepts and drops every record.
type ExportsRepo struct {
	pool *pgxpool.Pool
}

func NewExportsRepo(pool *pgxpool.Pool) *ExportsRepo {
	return &ExportsRepo{pool: pool}
}

func (r *ExportsRepo) Save(ctx context.Context, j domain.ExportJob) error {
	if r == nil || r.pool == nil {
		return nil
	}
	_, err := r.pool.Exec(ctx, `INSERT INTO export_jobs (id, session_id, file_name, theme, exporter, pages, bytes, attempts, status, error, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		ON CONFLICT (id) DO UPDATE SET theme = EXCLUDED.theme, pages = EXCLUDED.pages, bytes = EXCLUDED.bytes, attempts = EXCLUDED.attempts, status = EXCLUDED.status, error = EXCLUDED.error, updated_at = EXCLUDED.updated_at`,
		j.ID, j.SessionID, j.FileName, j.Theme, j.Exporter, j.Pages, j.Bytes, j.Attempts, j.Status, j.Error, j.CreatedAt, j.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save export job %s: %w", j.ID, err)
	}
	return nil
}

// Recent returns the latest export jobs of a session, newest first.
func (r *ExportsRepo) Recent(ctx context.Context, sessionID string, limit int) ([]domain.ExportJob, error) {
	if r == nil || r.pool == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.pool.Query(ctx, `SELECT id, session_id, file_name, theme, exporter, pages, bytes, attempts, status, error, created_at, updated_at
		FROM export_jobs WHERE session_id = $1 ORDER BY created_at DESC LIMIT $2`, sessionID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ExportJob
	for rows.Next() {
		var j domain.ExportJob
		if err := rows.Scan(&j.ID, &j.SessionID, &j.FileName, &j.Theme, &j.Exporter, &j.Pages, &j.Bytes, &j.Attempts, &j.Status, &j.Error, &j.CreatedAt, &j.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

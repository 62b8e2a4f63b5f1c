package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/aqibjaved/showcase/internal/db"
)

// SQLiteImportRunRepo implements ImportRunRepo.
type SQLiteImportRunRepo struct {
	db db.DBTX
}

// NewSQLiteImportRunRepo creates a new SQLiteImportRunRepo.
func NewSQLiteImportRunRepo(dbtx db.DBTX) *SQLiteImportRunRepo {
	return &SQLiteImportRunRepo{db: dbtx}
}

func (r *SQLiteImportRunRepo) Create(ctx context.Context, run *ImportRun) error {
	query := `INSERT INTO import_runs (id, source, records, replaced, created_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		run.ID,
		run.Source,
		run.Records,
		boolToInt(run.Replaced),
		run.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting import run: %w", err)
	}
	return nil
}

func (r *SQLiteImportRunRepo) ListRecent(ctx context.Context, limit int) ([]*ImportRun, error) {
	query := `SELECT id, source, records, replaced, created_at
		FROM import_runs ORDER BY created_at DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing import runs: %w", err)
	}
	defer rows.Close()

	var runs []*ImportRun
	for rows.Next() {
		var run ImportRun
		var replaced int
		var createdAtStr string
		if err := rows.Scan(&run.ID, &run.Source, &run.Records, &replaced, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning import run: %w", err)
		}
		run.Replaced = replaced != 0
		run.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing import run created_at: %w", err)
		}
		runs = append(runs, &run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating import runs: %w", err)
	}
	return runs, nil
}

package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aqibjaved/showcase/internal/db"
	"github.com/aqibjaved/showcase/internal/domain"
)

// ErrRecordNotFound is returned when no record exists for a requested id.
var ErrRecordNotFound = fmt.Errorf("record not found")

// SQLiteRecordRepo implements RecordRepo over a DBTX, so the same
// implementation serves both direct reads and transactional imports.
type SQLiteRecordRepo struct {
	db db.DBTX
}

// NewSQLiteRecordRepo creates a new SQLiteRecordRepo.
func NewSQLiteRecordRepo(dbtx db.DBTX) *SQLiteRecordRepo {
	return &SQLiteRecordRepo{db: dbtx}
}

const recordColumns = `id, week, name, description, tags, stack, status, deploy_url, github_url`

func (r *SQLiteRecordRepo) Create(ctx context.Context, rec *domain.ProjectRecord, position int) error {
	tags, err := marshalStrings(rec.Tags)
	if err != nil {
		return err
	}
	stack, err := marshalStrings(rec.Stack)
	if err != nil {
		return err
	}

	now := nowUTC()
	query := `INSERT INTO records (id, position, week, name, description, tags, stack, status, deploy_url, github_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		rec.ID,
		position,
		rec.Week,
		rec.Name,
		rec.Description,
		tags,
		stack,
		string(rec.Status),
		rec.DeployURL,
		rec.GithubURL,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("inserting record %d: %w", rec.ID, err)
	}
	return nil
}

func (r *SQLiteRecordRepo) GetByID(ctx context.Context, id int) (*domain.ProjectRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM records WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	rec, err := scanRecord(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("scanning record: %w", err)
	}
	return rec, nil
}

func (r *SQLiteRecordRepo) List(ctx context.Context) ([]*domain.ProjectRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM records ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	defer rows.Close()

	var records []*domain.ProjectRecord
	for rows.Next() {
		rec, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning record row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating records: %w", err)
	}
	return records, nil
}

func (r *SQLiteRecordRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM records`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting records: %w", err)
	}
	return n, nil
}

func (r *SQLiteRecordRepo) MaxPosition(ctx context.Context) (int, error) {
	var max int
	if err := r.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(position), 0) FROM records`).Scan(&max); err != nil {
		return 0, fmt.Errorf("reading max position: %w", err)
	}
	return max, nil
}

func (r *SQLiteRecordRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM records`); err != nil {
		return fmt.Errorf("deleting records: %w", err)
	}
	return nil
}

// scanRecord scans one record from either *sql.Row or *sql.Rows via the
// shared Scan signature.
func scanRecord(scan func(dest ...any) error) (*domain.ProjectRecord, error) {
	var rec domain.ProjectRecord
	var tagsRaw, stackRaw, statusStr string

	err := scan(
		&rec.ID, &rec.Week, &rec.Name, &rec.Description,
		&tagsRaw, &stackRaw, &statusStr,
		&rec.DeployURL, &rec.GithubURL,
	)
	if err != nil {
		return nil, err
	}

	rec.Status = domain.Status(statusStr)

	if rec.Tags, err = unmarshalStrings(tagsRaw); err != nil {
		return nil, fmt.Errorf("record %d tags: %w", rec.ID, err)
	}
	if rec.Stack, err = unmarshalStrings(stackRaw); err != nil {
		return nil, fmt.Errorf("record %d stack: %w", rec.ID, err)
	}

	return &rec, nil
}

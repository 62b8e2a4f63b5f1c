package repository

import (
	"context"
	"time"

	"github.com/aqibjaved/showcase/internal/domain"
)

// ImportRun records one catalog import for provenance.
type ImportRun struct {
	ID        string
	Source    string
	Records   int
	Replaced  bool
	CreatedAt time.Time
}

// RecordRepo stores catalog records. List returns records in catalog order
// (ascending position).
type RecordRepo interface {
	Create(ctx context.Context, r *domain.ProjectRecord, position int) error
	GetByID(ctx context.Context, id int) (*domain.ProjectRecord, error)
	List(ctx context.Context) ([]*domain.ProjectRecord, error)
	Count(ctx context.Context) (int, error)
	MaxPosition(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type ImportRunRepo interface {
	Create(ctx context.Context, run *ImportRun) error
	ListRecent(ctx context.Context, limit int) ([]*ImportRun, error)
}

package service

import (
	"context"

	"github.com/aqibjaved/showcase/internal/catalog"
	"github.com/aqibjaved/showcase/internal/domain"
	"github.com/aqibjaved/showcase/internal/repository"
)

// CatalogService reads the catalog. List falls back to the embedded seed
// catalog when the store holds no records, so the dashboard always has
// something to show.
type CatalogService interface {
	List(ctx context.Context) ([]*domain.ProjectRecord, error)
	GetByID(ctx context.Context, id int) (*domain.ProjectRecord, error)
	Stats(ctx context.Context) (catalog.Stats, error)
	Add(ctx context.Context, rec *domain.ProjectRecord) error
}

// ImportResult summarizes a completed catalog import.
type ImportResult struct {
	RunID    string
	Records  int
	Replaced bool
}

type ImportService interface {
	ImportFile(ctx context.Context, path string, replace bool) (*ImportResult, error)
	History(ctx context.Context, limit int) ([]*repository.ImportRun, error)
}

package service

import (
	"context"
	"fmt"

	"github.com/aqibjaved/showcase/internal/catalog"
	"github.com/aqibjaved/showcase/internal/domain"
	"github.com/aqibjaved/showcase/internal/repository"
	"go.uber.org/zap"
)

type catalogService struct {
	records repository.RecordRepo
	logger  *zap.Logger
}

// NewCatalogService creates a CatalogService over the given record store.
// logger may be nil, in which case a no-op logger is used.
func NewCatalogService(records repository.RecordRepo, logger *zap.Logger) CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &catalogService{records: records, logger: logger}
}

func (s *catalogService) List(ctx context.Context) ([]*domain.ProjectRecord, error) {
	records, err := s.records.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	if len(records) > 0 {
		return records, nil
	}

	// Empty store: serve the embedded seed catalog without writing it, so
	// the first import decides what the store actually contains.
	seed, err := catalog.Seed()
	if err != nil {
		return nil, err
	}
	s.logger.Info("store empty, serving seed catalog", zap.Int("records", len(seed)))
	return seed, nil
}

func (s *catalogService) GetByID(ctx context.Context, id int) (*domain.ProjectRecord, error) {
	rec, err := s.records.GetByID(ctx, id)
	if err == nil {
		return rec, nil
	}
	if err != repository.ErrRecordNotFound {
		return nil, err
	}

	// The store may be empty and the caller looking at seed records.
	n, countErr := s.records.Count(ctx)
	if countErr != nil {
		return nil, countErr
	}
	if n > 0 {
		return nil, err
	}
	seed, seedErr := catalog.Seed()
	if seedErr != nil {
		return nil, seedErr
	}
	for _, r := range seed {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, err
}

func (s *catalogService) Stats(ctx context.Context) (catalog.Stats, error) {
	records, err := s.List(ctx)
	if err != nil {
		return catalog.Stats{}, err
	}
	return catalog.Aggregate(records), nil
}

func (s *catalogService) Add(ctx context.Context, rec *domain.ProjectRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	pos, err := s.records.MaxPosition(ctx)
	if err != nil {
		return err
	}
	if err := s.records.Create(ctx, rec, pos+1); err != nil {
		return err
	}
	s.logger.Info("record added",
		zap.Int("id", rec.ID),
		zap.Int("week", rec.Week),
		zap.String("name", rec.Name))
	return nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aqibjaved/showcase/internal/db"
	"github.com/aqibjaved/showcase/internal/importer"
	"github.com/aqibjaved/showcase/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type importService struct {
	uow    db.UnitOfWork
	logger *zap.Logger

	// history reads run outside a transaction.
	runs repository.ImportRunRepo
}

// NewImportService creates an ImportService. Writes run inside the unit of
// work so a --replace import can never leave the store half-emptied.
func NewImportService(uow db.UnitOfWork, runs repository.ImportRunRepo, logger *zap.Logger) ImportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &importService{uow: uow, runs: runs, logger: logger}
}

func (s *importService) ImportFile(ctx context.Context, path string, replace bool) (*ImportResult, error) {
	file, err := importer.LoadCatalogFile(path)
	if err != nil {
		return nil, err
	}
	if errs := importer.ValidateCatalogFile(file); len(errs) > 0 {
		return nil, fmt.Errorf("catalog file invalid: %w", errors.Join(errs...))
	}

	records := importer.ConvertRecords(file)
	run := &repository.ImportRun{
		ID:        uuid.New().String(),
		Source:    path,
		Records:   len(records),
		Replaced:  replace,
		CreatedAt: time.Now().UTC(),
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		recordRepo := repository.NewSQLiteRecordRepo(tx)
		runRepo := repository.NewSQLiteImportRunRepo(tx)

		pos := 0
		if replace {
			if err := recordRepo.DeleteAll(ctx); err != nil {
				return err
			}
		} else {
			max, err := recordRepo.MaxPosition(ctx)
			if err != nil {
				return err
			}
			pos = max
		}

		for _, rec := range records {
			pos++
			if err := recordRepo.Create(ctx, rec, pos); err != nil {
				return err
			}
		}

		return runRepo.Create(ctx, run)
	})
	if err != nil {
		return nil, fmt.Errorf("importing %s: %w", path, err)
	}

	s.logger.Info("catalog imported",
		zap.String("run_id", run.ID),
		zap.String("source", path),
		zap.Int("records", len(records)),
		zap.Bool("replaced", replace))

	return &ImportResult{RunID: run.ID, Records: len(records), Replaced: replace}, nil
}

func (s *importService) History(ctx context.Context, limit int) ([]*repository.ImportRun, error) {
	return s.runs.ListRecent(ctx, limit)
}

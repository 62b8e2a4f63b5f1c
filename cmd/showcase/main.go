package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aqibjaved/showcase/internal/browser"
	"github.com/aqibjaved/showcase/internal/cli"
	"github.com/aqibjaved/showcase/internal/config"
	"github.com/aqibjaved/showcase/internal/db"
	"github.com/aqibjaved/showcase/internal/logging"
	"github.com/aqibjaved/showcase/internal/repository"
	"github.com/aqibjaved/showcase/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.Build(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer logger.Sync()

	if err := os.MkdirAll(filepath.Dir(cfg.DB.Path), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	database, err := db.OpenDB(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	recordRepo := repository.NewSQLiteRecordRepo(database)
	runRepo := repository.NewSQLiteImportRunRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Catalog: service.NewCatalogService(recordRepo, logger),
		Import:  service.NewImportService(uow, runRepo, logger),
		Opener:  browser.SystemOpener{},
		Config:  &cfg,
		Logger:  logger,
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}

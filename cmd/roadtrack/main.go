package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/roadtrack/internal/catalog"
	"github.com/alexanderramin/roadtrack/internal/cli"
	"github.com/alexanderramin/roadtrack/internal/cli/formatter"
	"github.com/alexanderramin/roadtrack/internal/config"
	"github.com/alexanderramin/roadtrack/internal/db"
	"github.com/alexanderramin/roadtrack/internal/repository"
	"github.com/alexanderramin/roadtrack/internal/service"
	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.App{}

	cleanup := func() {}
	defer func() { cleanup() }()

	app.Setup = func(opts cli.GlobalOptions) error {
		cfg, err := config.Load(opts.ConfigPath)
		if err != nil {
			return err
		}
		if opts.DBPath != "" {
			cfg.DBPath = opts.DBPath
		}
		if opts.Ephemeral {
			cfg.DBPath = ":memory:"
		}
		if opts.NoColor || cfg.NoColor || !stdoutIsTerminal() {
			formatter.DisableColor()
		}

		cleanup, err = wire(app, cfg)
		return err
	}

	return cli.NewRootCmd(app).Execute()
}

// wire opens the database and installs the services on app. The returned
// func closes the database and flushes metrics; it must run once the command
// has finished.
func wire(app *cli.App, cfg config.Config) (func(), error) {
	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return func() {}, fmt.Errorf("opening database: %w", err)
	}

	observer, flush, err := newObserver(cfg)
	if err != nil {
		database.Close()
		return func() {}, err
	}

	// Wire repositories and services
	roadmapRepo := repository.NewSQLiteRoadmapRepo(database)
	snapshotRepo := repository.NewSQLiteSnapshotRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	app.Roadmaps = service.NewRoadmapService(roadmapRepo, newCatalogSource(cfg), uow, observer)
	app.Trends = service.NewTrendService(snapshotRepo, observer)

	return func() {
		if err := flush(); err != nil {
			fmt.Fprintf(os.Stderr, "writing metrics: %v\n", err)
		}
		database.Close()
	}, nil
}

func stdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func newCatalogSource(cfg config.Config) catalog.Source {
	switch {
	case cfg.CatalogURL != "":
		return catalog.NewHTTPSource(cfg.CatalogURL, cfg.HTTPTimeout())
	case cfg.CatalogDir != "":
		return catalog.NewDirSource(cfg.CatalogDir)
	default:
		return catalog.NewEmbeddedSource()
	}
}

// newObserver combines the configured use-case observers. When a metrics
// file is set, flush writes the run's metrics there in text exposition
// format, replacing the previous run's file atomically.
func newObserver(cfg config.Config) (service.UseCaseObserver, func() error, error) {
	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}
	if cfg.MetricsFile == "" {
		return service.MultiObserver(observers...), func() error { return nil }, nil
	}

	reg := prometheus.NewRegistry()
	metrics, err := service.NewPrometheusObserver(reg)
	if err != nil {
		return nil, nil, fmt.Errorf("registering metrics: %w", err)
	}
	observers = append(observers, metrics)

	flush := func() error {
		return prometheus.WriteToTextfile(cfg.MetricsFile, reg)
	}
	return service.MultiObserver(observers...), flush, nil
}

package app

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/diamondstats/gameday/internal/config"
	"github.com/diamondstats/gameday/internal/gameday"
	"github.com/diamondstats/gameday/internal/infrastructure/jobqueue"
	"github.com/diamondstats/gameday/internal/infrastructure/repository/postgres"
	"github.com/diamondstats/gameday/internal/platform/logging"
	"github.com/diamondstats/gameday/internal/platform/resilience"
	"github.com/diamondstats/gameday/internal/usecase"
)

// App wires the importer's dependencies together.
type App struct {
	Config   config.Config
	Logger   *logging.Logger
	DB       *sqlx.DB
	Importer *usecase.ImportService
}

// New builds the fully wired importer. The returned cleanup func closes the
// database handle and must run before process exit.
func New(cfg config.Config, logger *logging.Logger) (*App, func(), error) {
	if logger == nil {
		logger = logging.Default()
	}

	db, err := otelsqlx.Connect("postgres", cfg.DBURL,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	client := gameday.NewClient(gameday.ClientConfig{
		BaseURL: cfg.GamedayBaseURL,
		Timeout: cfg.GamedayTimeout,
		Logger:  logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.GamedayCircuitEnabled,
			FailureThreshold: cfg.GamedayCircuitFailureCount,
			OpenTimeout:      cfg.GamedayCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.GamedayCircuitHalfOpenMaxReq,
		},
	})

	var queue usecase.JobQueue
	if cfg.QStashEnabled {
		queue = jobqueue.NewQStashPublisher(jobqueue.QStashPublisherConfig{
			BaseURL:       cfg.QStashBaseURL,
			Token:         cfg.QStashToken,
			TargetBaseURL: cfg.QStashTargetBaseURL,
			Retries:       cfg.QStashRetries,
			Timeout:       cfg.QStashTimeout,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.QStashCircuitEnabled,
				FailureThreshold: cfg.QStashCircuitFailureCount,
				OpenTimeout:      cfg.QStashCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.QStashCircuitHalfOpenMaxReq,
			},
		}, logger)
	}

	mode, err := usecase.ParseImportMode(cfg.ImportMode)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	importer := usecase.NewImportService(
		postgres.NewTeamRepository(db),
		postgres.NewGameRepository(db),
		postgres.NewAtbatRepository(db),
		postgres.NewPitchRepository(db),
		client,
		queue,
		usecase.ImportServiceConfig{
			Mode:       mode,
			MaxWorkers: cfg.ImportMaxWorkers,
			JobPath:    cfg.ImportJobPath,
		},
		logger,
	)

	cleanup := func() {
		if err := db.Close(); err != nil {
			logger.Warn("close database", "error", err)
		}
	}

	return &App{
		Config:   cfg,
		Logger:   logger,
		DB:       db,
		Importer: importer,
	}, cleanup, nil
}

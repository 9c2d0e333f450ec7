package worker

import (
	"context"
	"fmt"
	"presell/internal/config"
	"presell/internal/presell"
	"presell/pkg/logger"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
)

// Options configure the background workers.
type Options struct {
	// MaxWorkers bounds the number of captures running at once.
	MaxWorkers int
	// Budget and PersistTimeout size the capture job timeout.
	Budget         time.Duration
	PersistTimeout time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers:     cfg.Worker.MaxWorkers,
		Budget:         cfg.Capture.Budget,
		PersistTimeout: cfg.Capture.PersistTimeout,
	}
}

// Workers registers every worker of the service.
func Workers(service presell.Service, options Options) *river.Workers {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewCaptureWorker(service, options.Budget, options.PersistTimeout))

	return workers
}

// Start creates a River client on dbPool and starts working jobs.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	service presell.Service,
	options Options) (*river.Client[pgx.Tx], error) {
	maxWorkers := options.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers: Workers(service, options),
		Logger:  logger.Slog(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}

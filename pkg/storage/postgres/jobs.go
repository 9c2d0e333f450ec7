package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"presell/pkg/logger"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertype"
	"go.uber.org/zap"
)

// newQueue creates an insert-only River client bound to db. It never works
// jobs, so it needs neither queues nor workers.
func newQueue(db *sql.DB) (*river.Client[*sql.Tx], error) {
	queue, err := river.NewClient(riverdatabasesql.New(db), &river.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	return queue, nil
}

// jobQueue returns the cached insert client, creating an unbound one for
// handles that were not built by New.
func (p *PgSQL) jobQueue() (*river.Client[*sql.Tx], error) {
	if p.queue != nil {
		return p.queue, nil
	}

	db, _ := p.DB.(*sql.DB)

	return newQueue(db)
}

// AddJob enqueues a River job and reports whether a new row was inserted.
// Inside a transaction the job only becomes visible to workers once the
// transaction commits, which keeps a capture job and the row it works on
// consistent. A job skipped by its uniqueness options returns false.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	queue, err := p.jobQueue()
	if err != nil {
		return false, err
	}

	var res *rivertype.JobInsertResult
	if tx, ok := p.DB.(*sql.Tx); ok {
		res, err = queue.InsertTx(ctx, tx, args, opts)
	} else {
		res, err = queue.Insert(ctx, args, opts)
	}
	if err != nil {
		return false, fmt.Errorf("could not insert %s job: %w", args.Kind(), err)
	}

	if res.UniqueSkippedAsDuplicate {
		logger.Debug(ctx, "job already queued",
			zap.String("kind", args.Kind()),
			zap.Int64("jobId", res.Job.ID))

		return false, nil
	}

	return true, nil
}

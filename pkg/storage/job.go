package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs. Capture jobs are added in the same
// transaction that creates or resets the presell they work on.
type JobStorage interface {
	// AddJob enqueues args and reports whether a new job was created. It is
	// false when the job's uniqueness options matched a job already queued.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}

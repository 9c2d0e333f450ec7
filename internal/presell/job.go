package presell

import (
	"presell/pkg/domain"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// CaptureJobArgs contains the arguments of a capture job submitted to River.
// One job exists per capture invocation.
type CaptureJobArgs struct {
	PresellID domain.PresellID    `json:"presellId" river:"unique"`
	Token     domain.CaptureToken `json:"token"     river:"unique"`
	// TraceContext is the W3C trace context of the enqueuing request.
	TraceContext map[string]string `json:"traceContext,omitempty"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the capture worker.
func (args CaptureJobArgs) Kind() string { return "presell_capture" }

// InsertOpts returns the River options used when the job is enqueued. An
// invocation is never queued twice while a previous job for it is alive.
func (args CaptureJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}

// Subject returns the capture subject the job works on.
func (args CaptureJobArgs) Subject() domain.CaptureSubject {
	return domain.CaptureSubject{PresellID: args.PresellID, Token: args.Token}
}

package worker

import (
	"context"
	"errors"
	"fmt"
	"presell/internal/presell"
	"presell/pkg/logger"
	"presell/pkg/serrors"
	"presell/pkg/telemetry"
	"time"

	"github.com/riverqueue/river"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// timeoutSlack is added on top of the capture and persistence budgets when
// deriving the job timeout.
const timeoutSlack = 5 * time.Second

// CaptureWorker is a River worker running one capture invocation per job.
//
// Error handling: a missing presell or a superseded invocation cancels the job,
// upstream rate limiting snoozes it, and a result that could not be persisted
// at all is retried by River like any other error.
//
// A River retry reruns the same invocation: it keeps the capture token of the
// first attempt and runs the backend again. Only a recapture issues a new
// token. Retries stop as soon as a result for the token has been persisted,
// since the service skips completed invocations.
type CaptureWorker struct {
	river.WorkerDefaults[presell.CaptureJobArgs]

	service presell.Service
	timeout time.Duration
	tracer  trace.Tracer
}

// NewCaptureWorker constructs a CaptureWorker. Jobs are given enough time for
// the capture budget and both persistence attempts.
func NewCaptureWorker(service presell.Service, budget, persistTimeout time.Duration) *CaptureWorker {
	return &CaptureWorker{
		service: service,
		timeout: budget + 2*persistTimeout + timeoutSlack,
		tracer:  otel.Tracer("presell/internal/worker"),
	}
}

// Timeout overrides River's default job timeout.
func (w *CaptureWorker) Timeout(*river.Job[presell.CaptureJobArgs]) time.Duration {
	return w.timeout
}

// Work executes a single capture job and maps errors to River actions.
func (w *CaptureWorker) Work(ctx context.Context, job *river.Job[presell.CaptureJobArgs]) error {
	ctx = telemetry.Extract(ctx, job.Args.TraceContext)
	ctx, span := w.tracer.Start(ctx, "worker.CaptureJob", trace.WithAttributes(
		attribute.Int64("job.id", job.ID),
		attribute.Int("job.attempt", job.Attempt),
		attribute.String("presell.id", job.Args.PresellID.String()),
	))
	defer span.End()

	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.Int("attempt", job.Attempt),
		zap.Stringer("presellID", job.Args.PresellID),
		zap.Stringer("captureToken", job.Args.Token))
	if job.Attempt > 1 {
		logger.Info(ctx, "retrying capture invocation with the same token")
	}

	report, err := w.service.Capture(ctx, job.Args.PresellID, job.Args.Token)
	if err != nil {
		if errors.Is(err, serrors.ErrConflict) || errors.Is(err, serrors.ErrNotFound) {
			logger.Info(ctx, "capture job is obsolete", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error in capturing presell", zap.Error(err))

		if errors.Is(err, serrors.ErrRateLimited) {
			return river.JobSnooze(time.Minute) //nolint: wrapcheck
		}

		return fmt.Errorf("could not capture presell: %w", err)
	}

	if report.Warning != nil {
		return fmt.Errorf("could not persist capture: %w", report.Warning)
	}

	logger.Info(ctx, "presell captured",
		zap.String("state", string(report.State)),
		zap.Bool("degraded", report.Degraded))

	return nil
}

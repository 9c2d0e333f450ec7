package capture

import (
	"context"
	"errors"
	"fmt"
	"presell/internal/config"
	"presell/pkg/domain"
	"presell/pkg/logger"
	"presell/pkg/metrics"
	"presell/pkg/serrors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const instrumentationName = "presell/internal/capture"

// Options configure the capture orchestrator.
type Options struct {
	// DefaultBudget is used when a caller passes a non-positive budget.
	DefaultBudget time.Duration
	// PersistTimeout bounds each persistence attempt. Persistence is detached
	// from the caller's cancellation so it always runs.
	PersistTimeout time.Duration
	// TracerProvider creates the capture spans. Nil uses the global provider.
	TracerProvider trace.TracerProvider
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		DefaultBudget:  cfg.Capture.Budget,
		PersistTimeout: cfg.Capture.PersistTimeout,
	}
}

// Report describes how an invocation ended.
type Report struct {
	// Outcome is the outcome that was handed to the persister last.
	Outcome domain.CaptureOutcome
	// State is the terminal state that was persisted.
	State domain.CaptureState
	// Degraded is set when the first persistence attempt failed and the
	// all-null fallback was stored instead.
	Degraded bool
	// Warning is set when neither persistence attempt succeeded. It is never
	// fatal for the caller.
	Warning error
}

type settled struct {
	outcome domain.CaptureOutcome
	err     error
}

// Orchestrator races capture backends against a timer and persists the result.
// It holds no per-invocation state and is safe for concurrent use.
type Orchestrator struct {
	options   Options
	persister Persister

	tracer          trace.Tracer
	duration        metric.Float64Histogram
	outcomes        metric.Int64Counter
	persistFailures metric.Int64Counter
	persistDuration metric.Float64Histogram
}

// New creates an Orchestrator that stores results through persister. Metrics
// are reported through the global otel meter provider.
func New(persister Persister, options Options) (*Orchestrator, error) {
	if options.DefaultBudget <= 0 {
		options.DefaultBudget = 30 * time.Second
	}
	if options.PersistTimeout <= 0 {
		options.PersistTimeout = 5 * time.Second
	}

	if options.TracerProvider == nil {
		options.TracerProvider = otel.GetTracerProvider()
	}

	meter := otel.Meter(instrumentationName)
	duration, err := meter.Float64Histogram("presell.capture.duration",
		metric.WithDescription("Wall-clock time of capture invocations including persistence"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.CaptureBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create capture duration histogram: %w", err)
	}
	outcomes, err := meter.Int64Counter("presell.capture.outcomes",
		metric.WithDescription("Capture invocations by terminal state"))
	if err != nil {
		return nil, fmt.Errorf("could not create capture outcomes counter: %w", err)
	}
	persistFailures, err := meter.Int64Counter("presell.capture.persist_failures",
		metric.WithDescription("Failed attempts to persist a capture outcome"))
	if err != nil {
		return nil, fmt.Errorf("could not create persist failures counter: %w", err)
	}
	persistDuration, err := meter.Float64Histogram("presell.capture.persist_duration",
		metric.WithDescription("Time spent in a single attempt to persist a capture outcome"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create persist duration histogram: %w", err)
	}

	return &Orchestrator{
		options:         options,
		persister:       persister,
		tracer:          options.TracerProvider.Tracer(instrumentationName),
		duration:        duration,
		outcomes:        outcomes,
		persistFailures: persistFailures,
		persistDuration: persistDuration,
	}, nil
}

// CaptureWithBudget runs backend for url and waits at most budget for it to
// settle. It always returns and always persists exactly one result, retried
// once with an all-null outcome if the first write fails. Backend errors,
// panics, timeouts and caller cancellation all degrade to an all-null outcome.
func (o *Orchestrator) CaptureWithBudget(ctx context.Context,
	url string,
	subject domain.CaptureSubject,
	backend Backend,
	budget time.Duration) Report {
	if budget <= 0 {
		budget = o.options.DefaultBudget
	}
	started := time.Now()

	ctx = logger.WithFields(ctx,
		zap.Stringer("presellID", subject.PresellID),
		zap.Stringer("captureToken", subject.Token))
	ctx, span := o.tracer.Start(ctx, "capture.CaptureWithBudget", trace.WithAttributes(
		attribute.String("presell.id", subject.PresellID.String()),
		attribute.Int64("capture.budget_ms", budget.Milliseconds()),
	))
	defer span.End()

	result := o.race(ctx, url, subject, backend, budget)
	report := o.persist(ctx, subject, result)
	o.record(ctx, span, started, report)

	return report
}

// Abandon persists a failed all-null result without running any backend. It
// is used when a queued capture can no longer be attempted.
func (o *Orchestrator) Abandon(ctx context.Context, subject domain.CaptureSubject, reason error) Report {
	started := time.Now()

	ctx = logger.WithFields(ctx,
		zap.Stringer("presellID", subject.PresellID),
		zap.Stringer("captureToken", subject.Token))
	ctx, span := o.tracer.Start(ctx, "capture.Abandon", trace.WithAttributes(
		attribute.String("presell.id", subject.PresellID.String()),
	))
	defer span.End()

	logger.Warn(ctx, "capture abandoned", zap.Error(reason))
	report := o.persist(ctx, subject, domain.CaptureResult{State: domain.CaptureStateFailed})
	o.record(ctx, span, started, report)

	return report
}

func (o *Orchestrator) race(ctx context.Context,
	url string,
	subject domain.CaptureSubject,
	backend Backend,
	budget time.Duration) domain.CaptureResult {
	captureCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// buffered so an abandoned backend never blocks on send
	done := make(chan settled, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- settled{err: fmt.Errorf("capture backend panicked: %v", r)}
			}
		}()

		outcome, err := backend.Capture(captureCtx, url, subject)
		done <- settled{outcome: outcome, err: err}
	}()

	timer := time.NewTimer(budget)
	defer timer.Stop()

	select {
	case s := <-done:
		if s.err != nil {
			logger.Warn(ctx, "capture failed", zap.Error(s.err))

			return domain.CaptureResult{State: domain.CaptureStateFailed}
		}

		return domain.CaptureResult{State: s.outcome.State(), Outcome: s.outcome}
	case <-timer.C:
		logger.Warn(ctx, "capture budget elapsed", zap.Duration("budget", budget))

		return domain.CaptureResult{State: domain.CaptureStateTimedOut}
	case <-ctx.Done():
		logger.Warn(ctx, "capture cancelled by caller", zap.Error(ctx.Err()))

		return domain.CaptureResult{State: domain.CaptureStateFailed}
	}
}

func (o *Orchestrator) persist(ctx context.Context,
	subject domain.CaptureSubject,
	result domain.CaptureResult) Report {
	err := o.save(ctx, subject, result)
	if err == nil {
		return Report{Outcome: result.Outcome, State: result.State}
	}

	o.persistFailures.Add(ctx, 1)
	logger.Error(ctx, "could not persist capture outcome, retrying with empty outcome", zap.Error(err))

	fallback := domain.CaptureResult{State: result.State}
	if !result.Outcome.Empty() {
		fallback.State = domain.CaptureStateFailed
	}
	report := Report{Outcome: fallback.Outcome, State: fallback.State}

	retryErr := o.save(ctx, subject, fallback)
	if retryErr == nil {
		report.Degraded = true

		return report
	}

	o.persistFailures.Add(ctx, 1)
	logger.Error(ctx, "could not persist empty capture outcome", zap.Error(retryErr))
	report.Warning = serrors.Wrap(serrors.ErrUnavailable, errors.Join(err, retryErr), "capture outcome was not persisted")

	return report
}

func (o *Orchestrator) save(ctx context.Context, subject domain.CaptureSubject, result domain.CaptureResult) (err error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), o.options.PersistTimeout)
	defer cancel()

	started := time.Now()
	defer func() {
		o.persistDuration.Record(ctx, time.Since(started).Seconds())
	}()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("persister panicked: %v", r)
		}
	}()

	return o.persister.PersistCapture(ctx, subject, result)
}

func (o *Orchestrator) record(ctx context.Context, span trace.Span, started time.Time, report Report) {
	state := attribute.String("state", string(report.State))
	o.duration.Record(ctx, time.Since(started).Seconds(), metric.WithAttributes(state))
	o.outcomes.Add(ctx, 1, metric.WithAttributes(state))

	span.SetAttributes(
		attribute.String("capture.state", string(report.State)),
		attribute.Bool("capture.degraded", report.Degraded),
	)
	if report.Warning != nil {
		span.RecordError(report.Warning)
		span.SetStatus(codes.Error, "capture outcome was not persisted")
	}
}

package presell

import (
	"context"
	"fmt"
	"presell/internal/capture"
	"presell/internal/config"
	"presell/pkg/domain"
	"presell/pkg/logger"
	"presell/pkg/notify"
	"presell/pkg/serrors"
	"presell/pkg/storage"
	"presell/pkg/telemetry"
	"presell/pkg/urlguard"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// DefaultPageSize is used when a caller asks for a page without a limit.
const DefaultPageSize = 20

// Options configure presell capture behavior. These settings are typically
// derived from application configuration.
type Options struct {
	// MaxAttempts is the maximum number of attempts of a capture job.
	MaxAttempts int
	// Budget is the wall-clock budget of one capture invocation.
	Budget time.Duration
	// PollDeadline is how long after a capture request polling clients are told
	// to stop waiting, whatever the persisted status.
	PollDeadline time.Duration
	// Capture configures the orchestrator.
	Capture capture.Options
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts:  cfg.Capture.MaxAttempts,
		Budget:       cfg.Capture.Budget,
		PollDeadline: cfg.Capture.PollDeadline,
		Capture:      capture.NewOptions(cfg),
	}
}

// URLValidator decides whether a destination URL may be captured.
type URLValidator interface {
	Validate(raw string) urlguard.Result
}

// service is the concrete implementation of the Service interface.
type service struct {
	options      Options
	storage      storage.Storage
	validator    URLValidator
	backend      capture.Backend
	notifier     notify.Notifier
	orchestrator *capture.Orchestrator
	tracer       trace.Tracer
}

// New creates a Service. Captures run on backend and the service itself
// persists their results.
func New(storage storage.Storage,
	validator URLValidator,
	backend capture.Backend,
	notifier notify.Notifier,
	options Options) (Service, error) {
	if notifier == nil {
		notifier = notify.Noop{}
	}

	s := &service{
		options:   options,
		storage:   storage,
		validator: validator,
		backend:   backend,
		notifier:  notifier,
	}
	orchestrator, err := capture.New(s, options.Capture)
	if err != nil {
		return nil, fmt.Errorf("could not create capture orchestrator: %w", err)
	}
	s.orchestrator = orchestrator

	tp := options.Capture.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	s.tracer = tp.Tracer("presell/internal/presell")

	return s, nil
}

// Create validates rawURL and stores a pending presell for it, enqueueing its
// first capture in the same transaction.
func (s *service) Create(ctx context.Context, userID domain.UserID, rawURL string) (*domain.Presell, error) {
	res := s.validator.Validate(rawURL)
	if !res.Valid {
		return nil, res.Err()
	}

	var presell *domain.Presell
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		stored, err := tx.StorePresell(ctx, domain.Presell{
			UserID:       userID,
			URL:          res.SanitizedURL,
			Status:       domain.PresellStatusPending,
			CaptureToken: domain.NewCaptureToken(),
		})
		if err != nil {
			return fmt.Errorf("could not store presell: %w", err)
		}
		presell = stored

		return s.enqueue(ctx, tx, stored.Subject())
	}); err != nil {
		return nil, fmt.Errorf("could not create presell: %w", err)
	}

	return presell, nil
}

// enqueue queues the capture job. The job carries the trace context of the
// enqueue span so the capture and its event continue the same trace.
func (s *service) enqueue(ctx context.Context, tx storage.AllStorage, subject domain.CaptureSubject) error {
	ctx, span := s.tracer.Start(ctx, "presell.EnqueueCapture", trace.WithAttributes(
		attribute.String("presell.id", subject.PresellID.String()),
	))
	defer span.End()

	if _, err := tx.AddJob(ctx, CaptureJobArgs{
		PresellID:    subject.PresellID,
		Token:        subject.Token,
		TraceContext: telemetry.Inject(ctx),
		maxAttempts:  s.options.MaxAttempts,
	}, nil); err != nil {
		span.RecordError(err)

		return fmt.Errorf("could not add job: %w", err)
	}

	return nil
}

// Get fetches a single presell owned by userID.
func (s *service) Get(ctx context.Context, userID domain.UserID, ID domain.PresellID) (*domain.Presell, error) {
	res, err := s.storage.PresellByID(ctx, userID, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get presell: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "presell not found")
	}

	return res, nil
}

// UserPresells returns a page of presells of a user, newest first. The cursor
// is an RFC3339 timestamp returned by a previous call.
func (s *service) UserPresells(ctx context.Context,
	userID domain.UserID,
	cursor string,
	limit uint) ([]domain.Presell, string, error) {
	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339Nano, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}
	if limit == 0 {
		limit = DefaultPageSize
	}

	page, err := s.storage.UserPresells(ctx, userID, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get user presells: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339Nano)
	}

	return page.Presells, next, nil
}

// Delete soft deletes a presell. A capture still running for it will find no
// row to persist into and is discarded.
func (s *service) Delete(ctx context.Context, userID domain.UserID, ID domain.PresellID) error {
	res, err := s.storage.DeletePresell(ctx, userID, ID)
	if err != nil {
		return fmt.Errorf("could not delete presell: %w", err)
	}
	if res == nil {
		return serrors.With(serrors.ErrNotFound, "presell not found")
	}

	return nil
}

// Recapture starts a new capture invocation for a presell. The previous
// invocation, if still running, can no longer persist.
func (s *service) Recapture(ctx context.Context, userID domain.UserID, ID domain.PresellID) (*domain.Presell, error) {
	var presell *domain.Presell
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.ResetCapture(ctx, userID, ID, domain.NewCaptureToken())
		if err != nil {
			return fmt.Errorf("could not reset capture: %w", err)
		}
		if res == nil {
			return serrors.With(serrors.ErrNotFound, "presell not found")
		}
		presell = res

		return s.enqueue(ctx, tx, res.Subject())
	}); err != nil {
		return nil, fmt.Errorf("could not recapture presell: %w", err)
	}

	return presell, nil
}

// Screenshots returns the polling view of a presell. Clients are told to stop
// polling once the capture completed, or once PollDeadline passed since it was
// requested, in which case the capture is reported as timed out.
func (s *service) Screenshots(ctx context.Context, userID domain.UserID, ID domain.PresellID) (*Screenshots, error) {
	p, err := s.Get(ctx, userID, ID)
	if err != nil {
		return nil, err
	}

	out := &Screenshots{
		Status:       p.Status,
		State:        p.CaptureState,
		Ready:        p.Status == domain.PresellStatusCompleted,
		HasArtifacts: !p.Screenshots.Empty(),
		Desktop:      p.Screenshots.Desktop,
		Mobile:       p.Screenshots.Mobile,
	}
	if !out.Ready && s.options.PollDeadline > 0 && time.Since(p.CaptureRequestedAt) > s.options.PollDeadline {
		out.Ready = true
		out.State = domain.CaptureStateTimedOut
	}

	return out, nil
}

// Capture runs the invocation identified by token. It fails with ErrNotFound
// when the presell is gone and with ErrConflict when the invocation was
// superseded. An invocation that already persisted its result is not run again.
func (s *service) Capture(ctx context.Context,
	ID domain.PresellID,
	token domain.CaptureToken) (capture.Report, error) {
	p, err := s.storage.PresellForCapture(ctx, ID)
	if err != nil {
		return capture.Report{}, fmt.Errorf("could not get presell: %w", err)
	}
	if p == nil {
		return capture.Report{}, serrors.With(serrors.ErrNotFound, "presell not found")
	}
	if p.CaptureToken != token {
		return capture.Report{}, serrors.With(serrors.ErrConflict, "capture was superseded")
	}
	if p.Status == domain.PresellStatusCompleted {
		logger.Info(ctx, "capture already persisted")

		return capture.Report{Outcome: p.Screenshots, State: p.CaptureState}, nil
	}

	// the allow-list may have changed since the presell was created
	res := s.validator.Validate(p.URL)
	if !res.Valid {
		return s.orchestrator.Abandon(ctx, p.Subject(), res.Err()), nil
	}

	return s.orchestrator.CaptureWithBudget(ctx, res.SanitizedURL, p.Subject(), s.backend, s.options.Budget), nil
}

// PersistCapture saves result if subject is still the current invocation and
// announces it. Results of superseded invocations are dropped silently.
func (s *service) PersistCapture(ctx context.Context,
	subject domain.CaptureSubject,
	result domain.CaptureResult) error {
	applied, err := s.storage.SaveCapture(ctx, subject.PresellID, subject.Token, result)
	if err != nil {
		return fmt.Errorf("could not save capture: %w", err)
	}
	if !applied {
		logger.Info(ctx, "stale capture result discarded", zap.String("state", string(result.State)))

		return nil
	}

	if err := s.notifier.CaptureCompleted(ctx, notify.Event{
		PresellID:    subject.PresellID,
		CaptureToken: subject.Token,
		State:        result.State,
		Screenshots:  result.Outcome,
		CapturedAt:   time.Now().UTC(),
	}); err != nil {
		logger.Warn(ctx, "could not publish capture event", zap.Error(err))
	}

	return nil
}

// Package capture runs a screenshot backend under a hard wall-clock budget
// and hands exactly one outcome per invocation to a persister, so callers
// polling for the result always reach a terminal state.
//
//go:generate mockgen -package mockcapture -source=capture.go -destination=mock/mockcapture.go *
package capture

import (
	"context"
	"presell/pkg/domain"
)

// Backend renders url into desktop and mobile artifacts. Implementations should
// stop work when ctx is cancelled, but the orchestrator does not depend on it.
type Backend interface {
	Capture(ctx context.Context, url string, subject domain.CaptureSubject) (domain.CaptureOutcome, error)
}

// BackendFunc adapts an ordinary function to the Backend interface.
type BackendFunc func(ctx context.Context, url string, subject domain.CaptureSubject) (domain.CaptureOutcome, error)

// Capture calls f(ctx, url, subject).
func (f BackendFunc) Capture(ctx context.Context,
	url string,
	subject domain.CaptureSubject) (domain.CaptureOutcome, error) {
	return f(ctx, url, subject)
}

// Persister stores the result of a capture invocation. Writing the same
// all-null result twice must be equivalent to writing it once.
type Persister interface {
	PersistCapture(ctx context.Context, subject domain.CaptureSubject, result domain.CaptureResult) error
}

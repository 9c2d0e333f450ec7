// Package presell implements the presell use cases: creating presells from
// validated destination URLs, serving their screenshots to polling clients and
// running the background capture for each of them.
package presell

import (
	"context"
	"presell/internal/capture"
	"presell/pkg/domain"
)

// Screenshots is what polling clients read while a capture is running.
type Screenshots struct {
	// Status is the capture lifecycle status of the presell.
	Status domain.PresellStatus `json:"status"`
	// State is the terminal state of the capture; empty while pending.
	State domain.CaptureState `json:"state,omitempty"`
	// Ready tells the client to stop polling.
	Ready bool `json:"ready"`
	// HasArtifacts is true when at least one screenshot exists.
	HasArtifacts bool    `json:"hasArtifacts"`
	Desktop      *string `json:"desktop"`
	Mobile       *string `json:"mobile"`
}

//go:generate mockgen -package mockpresell -source=interface.go -destination=mock/mockpresell.go *
type Service interface {
	Create(ctx context.Context, userID domain.UserID, rawURL string) (*domain.Presell, error)
	Get(ctx context.Context, userID domain.UserID, ID domain.PresellID) (*domain.Presell, error)
	UserPresells(ctx context.Context,
		userID domain.UserID,
		cursor string,
		limit uint) ([]domain.Presell, string, error)
	Delete(ctx context.Context, userID domain.UserID, ID domain.PresellID) error
	Recapture(ctx context.Context, userID domain.UserID, ID domain.PresellID) (*domain.Presell, error)
	Screenshots(ctx context.Context, userID domain.UserID, ID domain.PresellID) (*Screenshots, error)

	// Capture runs the capture invocation identified by token. It is called by
	// the background worker.
	Capture(ctx context.Context, ID domain.PresellID, token domain.CaptureToken) (capture.Report, error)
	// PersistCapture stores the result of an invocation if it is still current.
	PersistCapture(ctx context.Context, subject domain.CaptureSubject, result domain.CaptureResult) error
}

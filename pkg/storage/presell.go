package storage

import (
	"context"
	"presell/pkg/domain"
	"time"
)

// UserPresells groups a page of presells returned for a user together with an
// optional NextCursor used for pagination.
type UserPresells struct {
	// Presells contains the current page of presell records.
	Presells []domain.Presell
	// NextCursor points to the timestamp to be used as the cursor for fetching
	// the next page. It is nil when there is no next page.
	NextCursor *time.Time
}

// PresellStorage defines CRUD and capture bookkeeping operations for presells.
// Soft-deleted rows are invisible to every read and update.
type PresellStorage interface {
	// StorePresell inserts a presell and returns the stored row including
	// generated fields.
	StorePresell(ctx context.Context, presell domain.Presell) (*domain.Presell, error)
	// PresellByID fetches a presell owned by the given user. Returns nil when
	// not found.
	PresellByID(ctx context.Context, userID domain.UserID, ID domain.PresellID) (*domain.Presell, error)
	// PresellForCapture fetches a presell regardless of its owner. It is used by
	// background capture jobs. Returns nil when not found.
	PresellForCapture(ctx context.Context, ID domain.PresellID) (*domain.Presell, error)
	// UserPresells returns a page of presells for a user created before the
	// optional cursor time, newest first.
	UserPresells(ctx context.Context, userID domain.UserID, cursor time.Time, limit uint) (UserPresells, error)
	// DeletePresell soft deletes a presell and returns it, or nil if it was not
	// found.
	DeletePresell(ctx context.Context, userID domain.UserID, ID domain.PresellID) (*domain.Presell, error)
	// ResetCapture rotates the capture token of a presell, moves it back to
	// pending and clears the previous outcome. Returns nil when not found.
	ResetCapture(ctx context.Context,
		userID domain.UserID,
		ID domain.PresellID,
		token domain.CaptureToken) (*domain.Presell, error)
	// SaveCapture persists the outcome of the capture invocation identified by
	// token and marks the presell completed. It reports false without error when
	// the token is no longer current or the presell is gone. Writing the same
	// result twice leaves the row unchanged.
	SaveCapture(ctx context.Context,
		ID domain.PresellID,
		token domain.CaptureToken,
		result domain.CaptureResult) (bool, error)
}

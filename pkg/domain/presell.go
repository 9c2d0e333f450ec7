package domain

import (
	"time"

	"github.com/google/uuid"
)

// PresellID uniquely identifies a presell page.
// It wraps uuid.UUID to provide type safety at the domain layer.
type PresellID uuid.UUID

func (id PresellID) String() string { return uuid.UUID(id).String() }

func (id PresellID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *PresellID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// PresellStatus represents the capture lifecycle of a presell.
type PresellStatus string

const (
	// PresellStatusPending indicates a capture was requested and no outcome has been persisted yet.
	PresellStatusPending PresellStatus = "PENDING"
	// PresellStatusCompleted indicates the latest capture persisted an outcome (possibly with no artifacts).
	PresellStatusCompleted PresellStatus = "COMPLETED"
)

// Presell is a producer's landing page whose destination URL has passed
// validation and whose screenshots are captured asynchronously.
type Presell struct {
	// ID is the unique identifier of the presell.
	ID PresellID `json:"id"`
	// UserID is the owner of the presell.
	UserID UserID `json:"userId"`

	// URL is the sanitized destination URL.
	URL string `json:"url"`
	// Status is the capture lifecycle status.
	Status PresellStatus `json:"status"`
	// CaptureState is the terminal state of the latest capture; empty while pending.
	CaptureState CaptureState `json:"captureState,omitempty"`
	// Screenshots holds the artifact references of the latest capture.
	Screenshots CaptureOutcome `json:"screenshots"`

	// CaptureToken identifies the capture invocation currently allowed to persist.
	CaptureToken CaptureToken `json:"-"`
	// CaptureRequestedAt is when the latest capture was requested.
	CaptureRequestedAt time.Time `json:"captureRequestedAt"`
	// CapturedAt is when the latest capture outcome was persisted.
	CapturedAt time.Time `json:"capturedAt,omitzero"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
	DeletedAt time.Time `json:"-"`
}

// Subject returns the capture subject of the presell's current invocation.
func (p Presell) Subject() CaptureSubject {
	return CaptureSubject{PresellID: p.ID, Token: p.CaptureToken}
}

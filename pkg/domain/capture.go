package domain

import "github.com/google/uuid"

// CaptureToken identifies one capture invocation for a presell. A new token is
// issued every time a capture is requested, and only the holder of the current
// token may persist an outcome.
type CaptureToken uuid.UUID

// NewCaptureToken returns a fresh random token.
func NewCaptureToken() CaptureToken { return CaptureToken(uuid.New()) }

func (t CaptureToken) String() string { return uuid.UUID(t).String() }

func (t CaptureToken) MarshalText() ([]byte, error) { return uuid.UUID(t).MarshalText() }

func (t *CaptureToken) UnmarshalText(b []byte) error { return (*uuid.UUID)(t).UnmarshalText(b) }

// CaptureState is the terminal state of a single capture invocation.
// An empty state means the capture is still pending.
type CaptureState string

const (
	// CaptureStateSucceeded means both desktop and mobile artifacts were produced.
	CaptureStateSucceeded CaptureState = "SUCCEEDED"
	// CaptureStatePartial means exactly one of the artifacts was produced.
	CaptureStatePartial CaptureState = "PARTIAL"
	// CaptureStateTimedOut means the budget elapsed before the backend settled.
	CaptureStateTimedOut CaptureState = "TIMED_OUT"
	// CaptureStateFailed means the backend failed or produced nothing.
	CaptureStateFailed CaptureState = "FAILED"
)

// CaptureOutcome holds references to the captured artifacts. Both fields are
// independently nullable so partial success is representable.
type CaptureOutcome struct {
	Desktop *string `json:"desktop"`
	Mobile  *string `json:"mobile"`
}

// Empty reports whether neither artifact is present.
func (o CaptureOutcome) Empty() bool { return o.Desktop == nil && o.Mobile == nil }

// Complete reports whether both artifacts are present.
func (o CaptureOutcome) Complete() bool { return o.Desktop != nil && o.Mobile != nil }

// State derives the terminal state for an outcome produced by a backend that
// settled without error.
func (o CaptureOutcome) State() CaptureState {
	switch {
	case o.Complete():
		return CaptureStateSucceeded
	case o.Empty():
		return CaptureStateFailed
	default:
		return CaptureStatePartial
	}
}

// CaptureResult is what gets persisted at the end of a capture invocation.
type CaptureResult struct {
	State   CaptureState   `json:"state"`
	Outcome CaptureOutcome `json:"outcome"`
}

// CaptureSubject names the presell and invocation a capture belongs to.
type CaptureSubject struct {
	PresellID PresellID
	Token     CaptureToken
}

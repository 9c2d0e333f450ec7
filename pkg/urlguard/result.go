package urlguard

import (
	"fmt"
	"presell/pkg/serrors"
)

// Rejection reasons reported by Validate. Errors returned by Result.Err match
// both serrors.ErrBadRequest and one of these kinds.
var (
	ErrEmptyInput           = serrors.NewKind("EMPTY_INPUT")
	ErrTooLong              = serrors.NewKind("TOO_LONG")
	ErrMalformed            = serrors.NewKind("MALFORMED")
	ErrProtocolNotAllowed   = serrors.NewKind("PROTOCOL_NOT_ALLOWED")
	ErrMaliciousPattern     = serrors.NewKind("MALICIOUS_PATTERN")
	ErrDirectIPNotAllowed   = serrors.NewKind("DIRECT_IP_NOT_ALLOWED")
	ErrDomainNotAllowlisted = serrors.NewKind("DOMAIN_NOT_ALLOWLISTED")
)

// Result is the outcome of validating one input. Valid is true iff
// SanitizedURL is set and Reason is nil.
type Result struct {
	Valid        bool         `json:"valid"`
	SanitizedURL string       `json:"sanitizedUrl,omitempty"`
	Reason       serrors.Kind `json:"-"`
	Message      string       `json:"error,omitempty"`
}

// Err returns nil for a valid result, otherwise a bad request error carrying
// the rejection reason and a human-readable message.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}

	return serrors.Wrap(serrors.ErrBadRequest, r.Reason, "%s", r.Message)
}

func accept(sanitized string) Result {
	return Result{Valid: true, SanitizedURL: sanitized}
}

func reject(reason serrors.Kind, msgFmt string, args ...any) Result {
	return Result{Reason: reason, Message: fmt.Sprintf(msgFmt, args...)}
}

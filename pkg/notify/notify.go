// Package notify announces finished captures to interested systems.
//
//go:generate mockgen -package mocknotify -source=notify.go -destination=mock/mocknotify.go *
package notify

import (
	"context"
	"presell/pkg/domain"
	"time"
)

// EventCaptureCompleted is the type attribute of capture completion events.
const EventCaptureCompleted = "presell.captured"

// Event describes a capture outcome that was persisted.
type Event struct {
	PresellID    domain.PresellID      `json:"presellId"`
	CaptureToken domain.CaptureToken   `json:"captureToken"`
	State        domain.CaptureState   `json:"state"`
	Screenshots  domain.CaptureOutcome `json:"screenshots"`
	CapturedAt   time.Time             `json:"capturedAt"`
}

// Notifier publishes capture events. Delivery is best effort.
type Notifier interface {
	CaptureCompleted(ctx context.Context, event Event) error
}

// Noop discards every event.
type Noop struct{}

func (Noop) CaptureCompleted(context.Context, Event) error { return nil }

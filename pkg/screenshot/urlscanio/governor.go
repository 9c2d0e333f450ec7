package urlscanio

import (
	"context"
	"fmt"
	"presell/pkg/logger"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Governor enforces the urlscan.io submission budget across concurrent
// captures, based on the rate-limit headers the API returns.
//
// A submission may start while the remaining budget minus the submissions in
// flight is positive. Remaining is treated as Limit once ResetAt has passed.
// Waiters wake up when either the window resets or an in-flight submission
// finishes.
//
// Before the first response arrives the budget is a synthetic window with a
// single slot and a far-future reset, so exactly one trial request goes out to
// learn the real headers.
//
// Reported statuses are merged conservatively: a new ResetAt is always adopted,
// otherwise Remaining only ever decreases.
type Governor struct {
	// mu protects inFlight and last.
	mu       sync.Mutex
	inFlight int
	last     *RateLimitStatus
	// finished wakes one waiter in Reserve. Sends are dropped when nobody waits.
	finished chan struct{}
}

// NewGovernor returns a Governor with no budget observed yet.
func NewGovernor() *Governor {
	return &Governor{finished: make(chan struct{})}
}

// Reserve takes one unit from the budget, blocking until one is available or
// ctx is done.
func (g *Governor) Reserve(ctx context.Context) error {
	for {
		g.mu.Lock()

		if g.last == nil {
			g.last = &RateLimitStatus{
				Limit:     1,
				Remaining: 1,
				ResetAt:   time.Now().Add(365 * 24 * time.Hour),
			}
		}

		remaining := g.last.Remaining
		if time.Now().UTC().After(g.last.ResetAt) {
			remaining = g.last.Limit
		}

		if remaining-g.inFlight > 0 {
			logger.Debug(ctx, "reserved rate limit slot",
				zap.Int("remaining", remaining),
				zap.Int("limit", g.last.Limit),
				zap.Time("resetAt", g.last.ResetAt),
				zap.Int("inFlight", g.inFlight))
			g.inFlight++
			g.mu.Unlock()

			return nil
		}

		resetAt := g.last.ResetAt
		inFlight := g.inFlight
		g.mu.Unlock()

		logger.Debug(ctx, "waiting for rate limit slot",
			zap.Int("remaining", remaining),
			zap.Time("resetAt", resetAt),
			zap.Int("inFlight", inFlight))

		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for rate limit: %w", ctx.Err())
		case <-g.finished:
			continue
		case <-time.After(time.Until(resetAt)):
			continue
		}
	}
}

// Release returns the slot taken by Reserve and merges the status reported by
// the finished request. A zero ResetAt leaves the known status untouched.
func (g *Governor) Release(ctx context.Context, status RateLimitStatus) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.inFlight > 0 {
		g.inFlight--
	}

	select {
	case g.finished <- struct{}{}:
	default:
	}

	if status.ResetAt.IsZero() {
		return
	}

	if g.last == nil || !g.last.ResetAt.Equal(status.ResetAt) || status.Remaining < g.last.Remaining {
		g.last = &status
		logger.Debug(ctx, "received rate limit status",
			zap.Int("limit", status.Limit),
			zap.Int("remaining", status.Remaining),
			zap.Time("resetAt", status.ResetAt),
			zap.Int("inFlight", g.inFlight))
	}
}

// ResetAt returns when the current rate-limit window ends.
func (g *Governor) ResetAt() time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.last == nil {
		return time.Time{}
	}

	return g.last.ResetAt
}

package urlscanio_test

import (
	"context"
	"presell/pkg/screenshot/urlscanio"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// submit reserves a slot, runs fn as the request and releases with its status.
func submit(ctx context.Context, g *urlscanio.Governor, fn func() urlscanio.RateLimitStatus) error {
	if err := g.Reserve(ctx); err != nil {
		return err
	}
	g.Release(ctx, fn())

	return nil
}

func status(limit, remaining int, resetIn time.Duration) urlscanio.RateLimitStatus {
	return urlscanio.RateLimitStatus{Limit: limit, Remaining: remaining, ResetAt: time.Now().Add(resetIn)}
}

func TestGovernor_BlocksSecondUntilFirstFinishes(t *testing.T) {
	g := urlscanio.NewGovernor()

	firstStarted := make(chan struct{})
	allowFirstToFinish := make(chan struct{})
	secondStarted := make(chan struct{})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	// the trial request is the only one allowed before headers are known
	go func() {
		_ = submit(ctx, g, func() urlscanio.RateLimitStatus {
			close(firstStarted)
			<-allowFirstToFinish

			return status(1, 1, time.Minute)
		})
	}()
	<-firstStarted

	go func() {
		_ = submit(ctx, g, func() urlscanio.RateLimitStatus {
			close(secondStarted)

			return status(1, 1, time.Minute)
		})
	}()

	select {
	case <-secondStarted:
		t.Fatal("second submission started before first finished")
	case <-time.After(100 * time.Millisecond):
	}

	close(allowFirstToFinish)

	select {
	case <-secondStarted:
	case <-time.After(2 * time.Second):
		t.Fatal("second submission did not start after first finished")
	}
}

func TestGovernor_AllowsUpToRemainingConcurrent_ThenBlocksExtra(t *testing.T) {
	g := urlscanio.NewGovernor()

	require.NoError(t, submit(context.Background(), g, func() urlscanio.RateLimitStatus {
		return status(2, 2, time.Minute)
	}))

	bStarted := make(chan struct{})
	cStarted := make(chan struct{})
	dStarted := make(chan struct{})
	finishB := make(chan struct{})
	finishC := make(chan struct{})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	go func() {
		_ = submit(ctx, g, func() urlscanio.RateLimitStatus {
			close(bStarted)
			<-finishB

			return status(2, 2, time.Minute)
		})
	}()
	go func() {
		_ = submit(ctx, g, func() urlscanio.RateLimitStatus {
			close(cStarted)
			<-finishC

			return status(2, 0, time.Minute)
		})
	}()

	for _, ch := range []chan struct{}{bStarted, cStarted} {
		select {
		case <-ch:
		case <-time.After(time.Second):
			t.Fatal("in-budget submission did not start in time")
		}
	}

	go func() {
		_ = submit(ctx, g, func() urlscanio.RateLimitStatus {
			close(dStarted)

			return status(2, 1, time.Minute)
		})
	}()

	select {
	case <-dStarted:
		t.Fatal("d started before any in-flight finished")
	case <-time.After(150 * time.Millisecond):
	}

	close(finishB)

	select {
	case <-dStarted:
	case <-time.After(2 * time.Second):
		t.Fatal("d did not start after one request finished")
	}

	close(finishC)
}

func TestGovernor_WaitsForReset_WhenRemainingZero(t *testing.T) {
	g := urlscanio.NewGovernor()

	resetDelay := 300 * time.Millisecond
	require.NoError(t, submit(context.Background(), g, func() urlscanio.RateLimitStatus {
		return status(5, 0, resetDelay)
	}))

	start := time.Now()
	require.NoError(t, g.Reserve(context.Background()))
	require.GreaterOrEqual(t, time.Since(start), resetDelay-75*time.Millisecond)
	g.Release(context.Background(), status(5, 4, time.Minute))
}

func TestGovernor_Reserve_ContextCanceled(t *testing.T) {
	g := urlscanio.NewGovernor()

	require.NoError(t, submit(context.Background(), g, func() urlscanio.RateLimitStatus {
		return status(5, 0, time.Hour)
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, g.Reserve(ctx), context.DeadlineExceeded)
}

func TestGovernor_Release_MergesConservatively(t *testing.T) {
	g := urlscanio.NewGovernor()
	require.True(t, g.ResetAt().IsZero())

	window := time.Now().Add(time.Minute)
	require.NoError(t, g.Reserve(context.Background()))
	g.Release(context.Background(), urlscanio.RateLimitStatus{Limit: 10, Remaining: 3, ResetAt: window})
	require.True(t, g.ResetAt().Equal(window))

	// a higher remaining for the same window is ignored, so only 3 slots exist
	g.Release(context.Background(), urlscanio.RateLimitStatus{Limit: 10, Remaining: 9, ResetAt: window})
	for range 3 {
		require.NoError(t, g.Reserve(context.Background()))
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	require.Error(t, g.Reserve(ctx))

	// a status without a window keeps the known one
	g.Release(context.Background(), urlscanio.RateLimitStatus{})
	require.True(t, g.ResetAt().Equal(window))
}

package screenshot_test

import (
	"context"
	"errors"
	"presell/pkg/domain"
	"presell/pkg/screenshot"
	"presell/pkg/serrors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var viewports = []screenshot.Viewport{ //nolint: gochecknoglobals
	{Name: screenshot.Desktop, Width: 1366, Height: 768},
	{Name: screenshot.Mobile, Width: 390, Height: 844, Mobile: true},
}

func TestCollect(t *testing.T) {
	t.Run("both viewports", func(t *testing.T) {
		outcome, err := screenshot.Collect(context.Background(), viewports,
			func(_ context.Context, vp screenshot.Viewport) (string, error) {
				return vp.Name + ".jpg", nil
			})
		require.NoError(t, err)
		require.Equal(t, "desktop.jpg", *outcome.Desktop)
		require.Equal(t, "mobile.jpg", *outcome.Mobile)
	})

	t.Run("one viewport fails", func(t *testing.T) {
		outcome, err := screenshot.Collect(context.Background(), viewports,
			func(_ context.Context, vp screenshot.Viewport) (string, error) {
				if vp.Mobile {
					return "", errors.New("navigation timeout")
				}

				return "d.jpg", nil
			})
		require.NoError(t, err)
		require.Equal(t, "d.jpg", *outcome.Desktop)
		require.Nil(t, outcome.Mobile)
		require.Equal(t, domain.CaptureStatePartial, outcome.State())
	})

	t.Run("all fail", func(t *testing.T) {
		outcome, err := screenshot.Collect(context.Background(), viewports,
			func(_ context.Context, vp screenshot.Viewport) (string, error) {
				return "", errors.New(vp.Name + " broke")
			})
		require.Error(t, err)
		require.Contains(t, err.Error(), "desktop broke")
		require.Contains(t, err.Error(), "mobile broke")
		require.True(t, outcome.Empty())
	})

	t.Run("viewports run concurrently", func(t *testing.T) {
		var running atomic.Int32
		var peak atomic.Int32
		_, err := screenshot.Collect(context.Background(), viewports,
			func(_ context.Context, vp screenshot.Viewport) (string, error) {
				n := running.Add(1)
				for {
					p := peak.Load()
					if n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}
				time.Sleep(50 * time.Millisecond)
				running.Add(-1)

				return vp.Name, nil
			})
		require.NoError(t, err)
		require.EqualValues(t, 2, peak.Load())
	})
}

func TestDisabled(t *testing.T) {
	outcome, err := screenshot.Disabled{}.Capture(context.Background(), "https://pay.hotmart.com/",
		domain.CaptureSubject{PresellID: domain.PresellID(uuid.New()), Token: domain.NewCaptureToken()})
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.True(t, outcome.Empty())
}

// Package screenshot contains the capture backends that render presell
// destinations into desktop and mobile screenshots, and the pieces they share.
package screenshot

import (
	"context"
	"errors"
	"fmt"
	"presell/pkg/domain"
	"presell/pkg/serrors"
	"sync"
)

// Viewport names.
const (
	Desktop = "desktop"
	Mobile  = "mobile"
)

// Viewport describes the emulated device a screenshot is taken with.
type Viewport struct {
	// Name is either Desktop or Mobile.
	Name   string
	Width  int64
	Height int64
	// Scale is the device scale factor. Zero means 1.
	Scale float64
	// Mobile enables mobile emulation (touch, meta viewport).
	Mobile bool
	// UserAgent overrides the browser user agent when set.
	UserAgent string
}

// ShootFunc captures one viewport and returns the artifact reference.
type ShootFunc func(ctx context.Context, viewport Viewport) (string, error)

// Collect runs shoot for every viewport concurrently. Each viewport fails on
// its own, so a partial outcome is returned with a nil error as long as one
// viewport succeeded. When all viewports fail the joined errors are returned.
func Collect(ctx context.Context, viewports []Viewport, shoot ShootFunc) (domain.CaptureOutcome, error) {
	type shot struct {
		ref string
		err error
	}

	shots := make([]shot, len(viewports))
	var wg sync.WaitGroup
	for i, vp := range viewports {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ref, err := shoot(ctx, vp)
			shots[i] = shot{ref: ref, err: err}
		}()
	}
	wg.Wait()

	var (
		outcome domain.CaptureOutcome
		errs    []error
	)
	for i, s := range shots {
		if s.err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", viewports[i].Name, s.err))

			continue
		}

		ref := s.ref
		switch viewports[i].Name {
		case Desktop:
			outcome.Desktop = &ref
		case Mobile:
			outcome.Mobile = &ref
		}
	}

	if outcome.Empty() && len(errs) > 0 {
		return domain.CaptureOutcome{}, errors.Join(errs...)
	}

	return outcome, nil
}

// Disabled is a backend that never produces screenshots. Captures using it end
// in the FAILED state with no artifacts.
type Disabled struct{}

func (Disabled) Capture(context.Context, string, domain.CaptureSubject) (domain.CaptureOutcome, error) {
	return domain.CaptureOutcome{}, serrors.With(serrors.ErrUnavailable, "screenshot backend is disabled")
}

package urlscanio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"presell/pkg/artifact"
	"presell/pkg/domain"
	"presell/pkg/logger"
	"presell/pkg/screenshot"
	"presell/pkg/serrors"
	"time"

	"go.uber.org/zap"
)

// URLChecker re-validates the location a scanned page ended up on.
type URLChecker interface {
	Sanitize(raw string) (string, error)
}

// Options configure the urlscan.io backend.
type Options struct {
	// PollInterval is the delay between result lookups.
	PollInterval time.Duration
	// Viewports are submitted as separate scans. Only Name and UserAgent are
	// honored, urlscan.io picks the window size itself.
	Viewports []screenshot.Viewport
}

// Backend implements capture.Backend on top of urlscan.io.
type Backend struct {
	client   *Client
	governor *Governor
	store    artifact.Store
	checker  URLChecker
	options  Options
}

// NewBackend creates a Backend. Captures share governor so concurrent
// submissions stay inside the API budget.
func NewBackend(client *Client,
	governor *Governor,
	store artifact.Store,
	checker URLChecker,
	options Options) (*Backend, error) {
	if client == nil || governor == nil {
		return nil, errors.New("client and governor are required")
	}
	if store == nil {
		return nil, errors.New("artifact store is required")
	}
	if checker == nil {
		return nil, errors.New("url checker is required")
	}
	if len(options.Viewports) == 0 {
		return nil, errors.New("at least one viewport is required")
	}
	if options.PollInterval <= 0 {
		options.PollInterval = 2 * time.Second
	}

	return &Backend{
		client:   client,
		governor: governor,
		store:    store,
		checker:  checker,
		options:  options,
	}, nil
}

// Capture submits rawURL once per viewport and waits for the screenshots.
func (b *Backend) Capture(ctx context.Context,
	rawURL string,
	subject domain.CaptureSubject) (domain.CaptureOutcome, error) {
	return screenshot.Collect(ctx, b.options.Viewports, func(ctx context.Context, vp screenshot.Viewport) (string, error) {
		return b.shoot(ctx, rawURL, subject, vp)
	})
}

func (b *Backend) shoot(ctx context.Context,
	rawURL string,
	subject domain.CaptureSubject,
	vp screenshot.Viewport) (string, error) {
	ctx = logger.WithFields(ctx, zap.String("viewport", vp.Name))

	if err := b.governor.Reserve(ctx); err != nil {
		return "", err
	}
	res, rl, err := b.client.SubmitURL(ctx, rawURL, vp.UserAgent)
	b.governor.Release(ctx, rl)
	if err != nil {
		return "", fmt.Errorf("could not submit url: %w", err)
	}

	ctx = logger.WithFields(ctx, zap.String("scanID", res.ID))
	logger.Debug(ctx, "scan submitted")

	result, err := b.poll(ctx, res.ID)
	if err != nil {
		return "", err
	}
	if result.PageURL != "" && result.PageURL != rawURL {
		if _, err := b.checker.Sanitize(result.PageURL); err != nil {
			return "", fmt.Errorf("page redirected to a disallowed location: %w", err)
		}
	}
	if result.ScreenshotURL == "" {
		return "", errors.New("scan finished without a screenshot")
	}

	img, err := b.client.Screenshot(ctx, result.ScreenshotURL)
	if err != nil {
		return "", fmt.Errorf("could not download screenshot: %w", err)
	}

	ref, err := b.store.Put(ctx, artifact.Key(subject, vp.Name+".png"), "image/png", bytes.NewReader(img))
	if err != nil {
		return "", fmt.Errorf("could not store screenshot: %w", err)
	}

	return ref, nil
}

// poll looks the result up until the scan finishes or ctx is done.
func (b *Backend) poll(ctx context.Context, scanID string) (*ScanResult, error) {
	ticker := time.NewTicker(b.options.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("scan %s did not finish: %w", scanID, ctx.Err())
		case <-ticker.C:
		}

		result, err := b.client.Result(ctx, scanID)
		if errors.Is(err, serrors.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("could not get scan result: %w", err)
		}

		return result, nil
	}
}

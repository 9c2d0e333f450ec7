// Package headless captures screenshots with a shared headless Chrome driven
// through chromedp.
package headless

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"presell/pkg/artifact"
	"presell/pkg/domain"
	"presell/pkg/logger"
	"presell/pkg/screenshot"
	"strings"
	"sync"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// URLChecker re-validates the location a page ended up on after redirects.
type URLChecker interface {
	Sanitize(raw string) (string, error)
}

// Options configure the headless backend.
type Options struct {
	// MaxParallel bounds the number of open tabs. Zero means unbounded.
	MaxParallel int
	// DomainQPS limits page loads per destination host. Zero disables it.
	DomainQPS float64
	// SettleDelay is waited after the body is ready, so late rendering lands.
	SettleDelay time.Duration
	// Quality is the JPEG quality of the screenshots.
	Quality int
	// ExecPath optionally points to the Chrome binary.
	ExecPath string
	// Viewports are captured for every URL.
	Viewports []screenshot.Viewport
	// AllocatorOptions are appended to the default exec allocator flags.
	AllocatorOptions []chromedp.ExecAllocatorOption
}

// Backend implements capture.Backend with headless Chrome. It is safe for
// concurrent use.
type Backend struct {
	options Options
	store   artifact.Store
	checker URLChecker

	limiter        chan struct{}
	domainLimiters sync.Map

	allocator   context.Context
	allocCancel context.CancelFunc

	mu            sync.Mutex
	browser       context.Context
	browserCancel context.CancelFunc
}

// New creates a Backend sharing one browser process across captures. The
// browser is started lazily on the first capture.
func New(store artifact.Store, checker URLChecker, options Options) (*Backend, error) {
	if store == nil {
		return nil, errors.New("artifact store is required")
	}
	if checker == nil {
		return nil, errors.New("url checker is required")
	}
	if options.MaxParallel < 0 {
		return nil, errors.New("max parallel must be >= 0")
	}
	if len(options.Viewports) == 0 {
		return nil, errors.New("at least one viewport is required")
	}
	if options.Quality <= 0 || options.Quality > 100 {
		options.Quality = 80
	}

	var limiter chan struct{}
	if options.MaxParallel > 0 {
		limiter = make(chan struct{}, options.MaxParallel)
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", "new"),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("hide-scrollbars", true),
		chromedp.Flag("mute-audio", true),
		chromedp.Flag("enable-automation", false),
	)
	if options.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(options.ExecPath))
	}
	opts = append(opts, options.AllocatorOptions...)
	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)

	return &Backend{
		options:     options,
		store:       store,
		checker:     checker,
		limiter:     limiter,
		allocator:   allocCtx,
		allocCancel: allocCancel,
	}, nil
}

// Close shuts the browser down.
func (b *Backend) Close() {
	b.mu.Lock()
	if b.browserCancel != nil {
		b.browserCancel()
	}
	b.mu.Unlock()
	b.allocCancel()
}

// browserContext returns the context of the shared browser, starting it when
// it is not running.
func (b *Backend) browserContext(ctx context.Context) (context.Context, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.browser != nil && b.browser.Err() == nil {
		return b.browser, nil
	}
	if b.allocator.Err() != nil {
		return nil, errors.New("backend is closed")
	}

	log := logger.Get(ctx).Sugar()
	browser, cancel := chromedp.NewContext(b.allocator, chromedp.WithErrorf(log.Errorf))
	if err := chromedp.Run(browser); err != nil {
		cancel()

		return nil, fmt.Errorf("could not start browser: %w", err)
	}
	b.browser, b.browserCancel = browser, cancel

	return browser, nil
}

// Capture renders rawURL in every configured viewport and uploads the
// screenshots. Viewports fail independently.
func (b *Backend) Capture(ctx context.Context,
	rawURL string,
	subject domain.CaptureSubject) (domain.CaptureOutcome, error) {
	if err := b.waitForHost(ctx, rawURL); err != nil {
		return domain.CaptureOutcome{}, err
	}

	return screenshot.Collect(ctx, b.options.Viewports, func(ctx context.Context, vp screenshot.Viewport) (string, error) {
		return b.shoot(ctx, rawURL, subject, vp)
	})
}

func (b *Backend) shoot(ctx context.Context,
	rawURL string,
	subject domain.CaptureSubject,
	vp screenshot.Viewport) (string, error) {
	if err := b.acquire(ctx); err != nil {
		return "", err
	}
	defer b.release()

	browser, err := b.browserContext(ctx)
	if err != nil {
		return "", err
	}
	tabCtx, cancel := chromedp.NewContext(browser)
	defer cancel()
	// tabs live under the browser, tie them to the caller explicitly
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	var finalURL string
	if err := chromedp.Run(tabCtx,
		emulate(vp),
		chromedp.Navigate(rawURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Location(&finalURL),
	); err != nil {
		return "", fmt.Errorf("could not load page: %w", err)
	}
	if err := b.checkLocation(rawURL, finalURL); err != nil {
		return "", err
	}

	var buf []byte
	if err := chromedp.Run(tabCtx,
		chromedp.Sleep(b.options.SettleDelay),
		chromedp.FullScreenshot(&buf, b.options.Quality),
	); err != nil {
		return "", fmt.Errorf("could not take screenshot: %w", err)
	}

	ref, err := b.store.Put(ctx, artifact.Key(subject, vp.Name+".jpg"), "image/jpeg", bytes.NewReader(buf))
	if err != nil {
		return "", fmt.Errorf("could not store screenshot: %w", err)
	}
	logger.Debug(ctx, "screenshot stored", zap.String("viewport", vp.Name), zap.String("ref", ref))

	return ref, nil
}

// checkLocation rejects pages that redirected to a destination the validator
// would not have accepted in the first place.
func (b *Backend) checkLocation(requested, final string) error {
	if final == "" || final == requested {
		return nil
	}
	if _, err := b.checker.Sanitize(final); err != nil {
		return fmt.Errorf("page redirected to a disallowed location: %w", err)
	}

	return nil
}

func emulate(vp screenshot.Viewport) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		scale := vp.Scale
		if scale <= 0 {
			scale = 1
		}
		if err := emulation.SetDeviceMetricsOverride(vp.Width, vp.Height, scale, vp.Mobile).Do(ctx); err != nil {
			return fmt.Errorf("could not set device metrics: %w", err)
		}
		if vp.Mobile {
			if err := emulation.SetTouchEmulationEnabled(true).Do(ctx); err != nil {
				return fmt.Errorf("could not enable touch emulation: %w", err)
			}
		}
		if vp.UserAgent != "" {
			if err := emulation.SetUserAgentOverride(vp.UserAgent).Do(ctx); err != nil {
				return fmt.Errorf("could not set user agent: %w", err)
			}
		}

		return nil
	})
}

func (b *Backend) waitForHost(ctx context.Context, rawURL string) error {
	if b.options.DomainQPS <= 0 {
		return nil
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("could not parse url: %w", err)
	}
	host := strings.ToLower(u.Hostname())

	val, _ := b.domainLimiters.LoadOrStore(host, rate.NewLimiter(rate.Limit(b.options.DomainQPS), 1))
	limiter, ok := val.(*rate.Limiter)
	if !ok {
		return nil
	}
	if err := limiter.Wait(ctx); err != nil {
		return fmt.Errorf("host rate limit wait: %w", err)
	}

	return nil
}

func (b *Backend) acquire(ctx context.Context) error {
	if b.limiter == nil {
		return nil
	}
	select {
	case b.limiter <- struct{}{}:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("tab slot wait canceled: %w", ctx.Err())
	}
}

func (b *Backend) release() {
	if b.limiter == nil {
		return
	}
	select {
	case <-b.limiter:
	default:
	}
}

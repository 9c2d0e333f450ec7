package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"presell/internal/allowlist"
	"presell/internal/api"
	"presell/internal/api/handler/v1handler"
	"presell/internal/capture"
	"presell/internal/config"
	"presell/internal/presell"
	"presell/internal/worker"
	"presell/pkg/artifact"
	"presell/pkg/artifact/gcs"
	"presell/pkg/artifact/local"
	"presell/pkg/logger"
	"presell/pkg/notify"
	notifypubsub "presell/pkg/notify/pubsub"
	"presell/pkg/screenshot"
	"presell/pkg/screenshot/headless"
	"presell/pkg/screenshot/urlscanio"
	"presell/pkg/telemetry"
	"presell/pkg/urlguard"
	"syscall"
	"time"

	"cloud.google.com/go/pubsub"
	gcstorage "cloud.google.com/go/storage"
	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"
	"github.com/spf13/cobra"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"riverqueue.com/riverui"
)

// Screenshot backends selectable in config.
const (
	backendChromedp  = "chromedp"
	backendURLScanIO = "urlscanio"
	backendNone      = "none"
)

// viewports returns the desktop and mobile viewports configured for captures.
func viewports(cfg *config.Config) []screenshot.Viewport {
	return []screenshot.Viewport{
		{
			Name:   screenshot.Desktop,
			Width:  cfg.Screenshot.DesktopWidth,
			Height: cfg.Screenshot.DesktopHeight,
		},
		{
			Name:      screenshot.Mobile,
			Width:     cfg.Screenshot.MobileWidth,
			Height:    cfg.Screenshot.MobileHeight,
			Scale:     2,
			Mobile:    true,
			UserAgent: cfg.Screenshot.MobileUserAgent,
		},
	}
}

func setupArtifacts(ctx context.Context, cfg *config.Config) (artifact.Store, func()) {
	switch cfg.Artifacts.Driver {
	case "gcs":
		client, err := gcstorage.NewClient(ctx)
		if err != nil {
			logger.Fatal(ctx, "could not create gcs client", zap.Error(err))
		}
		store, err := gcs.New(client, gcs.Options{
			Bucket:        cfg.Artifacts.Bucket,
			PublicBaseURL: cfg.Artifacts.PublicBaseURL,
		})
		if err != nil {
			logger.Fatal(ctx, "could not create gcs artifact store", zap.Error(err))
		}

		return store, func() {
			if err := client.Close(); err != nil {
				logger.Warn(ctx, "could not close gcs client", zap.Error(err))
			}
		}
	case "local", "":
		store, err := local.New(local.Options{
			BaseDir:       cfg.Artifacts.LocalDir,
			PublicBaseURL: cfg.Artifacts.PublicBaseURL,
		})
		if err != nil {
			logger.Fatal(ctx, "could not create local artifact store", zap.Error(err))
		}

		return store, func() {}
	default:
		logger.Fatal(ctx, "unknown artifacts driver", zap.String("driver", cfg.Artifacts.Driver))

		return nil, nil
	}
}

func setupBackend(ctx context.Context,
	cfg *config.Config,
	store artifact.Store,
	validator *urlguard.Validator) (capture.Backend, func()) {
	switch cfg.Screenshot.Backend {
	case backendChromedp:
		backend, err := headless.New(store, validator, headless.Options{
			MaxParallel: cfg.Screenshot.MaxParallel,
			DomainQPS:   cfg.Screenshot.DomainQPS,
			SettleDelay: cfg.Screenshot.SettleDelay,
			Quality:     cfg.Screenshot.Quality,
			ExecPath:    cfg.Screenshot.ExecPath,
			Viewports:   viewports(cfg),
		})
		if err != nil {
			logger.Fatal(ctx, "could not create chromedp backend", zap.Error(err))
		}

		return backend, backend.Close
	case backendURLScanIO:
		client := urlscanio.New(&http.Client{Timeout: 30 * time.Second}, cfg.Screenshot.URLScanIO.Token)
		backend, err := urlscanio.NewBackend(client, urlscanio.NewGovernor(), store, validator, urlscanio.Options{
			PollInterval: cfg.Screenshot.URLScanIO.PollInterval,
			Viewports:    viewports(cfg),
		})
		if err != nil {
			logger.Fatal(ctx, "could not create urlscan.io backend", zap.Error(err))
		}

		return backend, func() {}
	case backendNone:
		logger.Warn(ctx, "screenshot backend is disabled, captures will fail")

		return screenshot.Disabled{}, func() {}
	default:
		logger.Fatal(ctx, "unknown screenshot backend", zap.String("backend", cfg.Screenshot.Backend))

		return nil, nil
	}
}

func setupNotifier(ctx context.Context, cfg *config.Config) (notify.Notifier, func()) {
	if !cfg.PubSub.Enabled {
		return notify.Noop{}, func() {}
	}

	client, err := pubsub.NewClient(ctx, cfg.PubSub.ProjectID)
	if err != nil {
		logger.Fatal(ctx, "could not create pubsub client", zap.Error(err))
	}
	notifier := notifypubsub.New(client.Topic(cfg.PubSub.Topic))

	return notifier, func() {
		notifier.Stop()
		if err := client.Close(); err != nil {
			logger.Warn(ctx, "could not close pubsub client", zap.Error(err))
		}
	}
}

// setupRiverUI returns the job dashboard handler, or nil when it cannot be started.
func setupRiverUI(ctx context.Context, riverClient *river.Client[pgx.Tx]) http.Handler {
	handler, err := riverui.NewHandler(&riverui.HandlerOpts{
		Endpoints: riverui.NewEndpoints(riverClient, nil),
		Logger:    logger.Slog(ctx),
		Prefix:    api.RiverUIPrefix,
	})
	if err != nil {
		logger.Error(ctx, "could not create river ui handler", zap.Error(err))

		return nil
	}
	if err := handler.Start(ctx); err != nil {
		logger.Error(ctx, "could not start river ui handler", zap.Error(err))

		return nil
	}

	return handler
}

// setupTracing installs the global tracer provider and propagator. The returned
// func flushes pending spans.
func setupTracing(ctx context.Context, cfg *config.Config) func(ctx context.Context) {
	var exporters []sdktrace.SpanExporter
	if cfg.Tracing.LogSpans {
		exporters = append(exporters, telemetry.NewLogExporter(ctx))
	}

	tp, err := telemetry.Setup(ctx, telemetry.Options{
		ServiceName: "presell",
		SampleRatio: cfg.Tracing.SampleRatio,
		Exporters:   exporters,
	})
	if err != nil {
		logger.Fatal(ctx, "could not set up tracing", zap.Error(err))
	}

	return func(ctx context.Context) {
		if err := tp.Shutdown(ctx); err != nil {
			logger.Warn(ctx, "could not flush spans", zap.Error(err))
		}
	}
}

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background capture workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			stopTracing := setupTracing(ctx, cfg)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			allowList, err := urlguard.NewAllowList(cfg.Validator.AllowedDomains...)
			if err != nil {
				logger.Fatal(ctx, "invalid allowed domains", zap.Error(err))
			}
			allowListManager := allowlist.New(allowList, strg)
			if err := allowListManager.Load(ctx); err != nil {
				logger.Fatal(ctx, "could not load trusted domains", zap.Error(err))
			}
			go allowlist.Watch(ctx, allowListManager, cfg.Validator.RefreshInterval)

			validator := urlguard.New(allowList, urlguard.Options{MaxLength: cfg.Validator.MaxLength})

			store, closeStore := setupArtifacts(ctx, cfg)
			defer closeStore()

			backend, closeBackend := setupBackend(ctx, cfg, store, validator)
			defer closeBackend()

			notifier, closeNotifier := setupNotifier(ctx, cfg)
			defer closeNotifier()

			service, err := presell.New(strg, validator, backend, notifier, presell.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create presell service", zap.Error(err))
			}

			// workers are stopped gracefully below instead of through ctx
			riverClient, err := worker.Start(context.WithoutCancel(ctx), strg.Pool, service, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				V1: v1handler.Deps{
					Presells:  service,
					Validator: validator,
				},
				AllowList: allowListManager,
				RiverUI:   setupRiverUI(ctx, riverClient),
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop workers gracefully", zap.Error(err))
			}

			stopTracing(shutdownCtx)
		},
	}

	return cmd
}

package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	grpcapi "telemetry-monitor/internal/api/grpc"
	httpapi "telemetry-monitor/internal/api/http"
	"telemetry-monitor/internal/application/feed"
	"telemetry-monitor/internal/application/ingest"
	"telemetry-monitor/internal/config"
	"telemetry-monitor/internal/domain"
	"telemetry-monitor/internal/infrastructure/window"
	"telemetry-monitor/internal/logging"
	"telemetry-monitor/internal/metrics"
	"telemetry-monitor/internal/transport/tcpline"
)

// App assembles the ingestion pipeline, transports and presentation surfaces.
type App struct {
	cfg      *config.Config
	logger   *logging.Logger
	shutdown *ShutdownManager
	windows  *window.Set
	pipeline *ingest.Pipeline
	feed     *feed.Feed
}

// New creates the application from its constructed parts.
func New(cfg *config.Config, logger *logging.Logger, shutdown *ShutdownManager, windows *window.Set, pipeline *ingest.Pipeline, presentation *feed.Feed) *App {
	return &App{
		cfg:      cfg,
		logger:   logger,
		shutdown: shutdown,
		windows:  windows,
		pipeline: pipeline,
		feed:     presentation,
	}
}

// Run starts every component and blocks until a shutdown signal arrives or a
// component fails. Transport failure is reported as the returned error;
// decode failures never surface here.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info("starting telemetry monitor",
		"windowSize", a.cfg.WindowSize,
		"tickInterval", a.cfg.TickInterval.String(),
		"sourceAddr", a.cfg.SourceAddr,
		"httpPort", a.cfg.HTTPPort,
		"grpcPort", a.cfg.GRPCPort,
	)

	runCtx, cancel := a.shutdown.WithContext(ctx)
	defer cancel()
	defer a.shutdown.Close()

	frames := make(chan domain.Frame, a.cfg.FrameBuffer)
	errCh := make(chan error, 4)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := a.pipeline.Run(runCtx, frames); err != nil {
			errCh <- fmt.Errorf("pipeline: %w", err)
		}
	}()

	if a.cfg.SourceAddr != "" {
		source := tcpline.New(a.cfg.SourceAddr, a.logger)
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer source.Close()
			if err := source.Run(runCtx, frames); err != nil {
				errCh <- fmt.Errorf("frame source: %w", err)
			}
		}()
	}

	// The feed loop keeps the window fill gauge current between renderer reads.
	wg.Add(1)
	go func() {
		defer wg.Done()
		a.feed.Run(runCtx, publishWindowFill)
	}()

	grpcServer, err := grpcapi.NewServer(a.logger, grpcapi.NewHandler(frames, a.logger), grpcapi.Options{
		Address: fmt.Sprintf(":%d", a.cfg.GRPCPort),
	})
	if err != nil {
		cancel()
		a.pipeline.Stop()
		wg.Wait()
		return fmt.Errorf("grpc ingress: %w", err)
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := grpcServer.Serve(runCtx); err != nil {
			errCh <- fmt.Errorf("grpc ingress: %w", err)
		}
	}()

	httpServer := a.newHTTPServer()
	go func() {
		<-runCtx.Done()
		shutdownCtx, shutdownCancel := a.shutdown.CleanupContext()
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			a.logger.Warn("HTTP server shutdown error", logging.AttachError(err)...)
		}
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	a.logger.Info("telemetry monitor started", "httpAddr", httpServer.Addr)

	var runErr error
	select {
	case <-runCtx.Done():
	case runErr = <-errCh:
		cancel()
	}

	a.pipeline.Stop()
	wg.Wait()

	if runErr == nil {
		select {
		case runErr = <-errCh:
		default:
		}
	}

	a.logger.Info("telemetry monitor stopped", "totalReceived", a.windows.TotalReceived())
	return runErr
}

func (a *App) newHTTPServer() *http.Server {
	apiServer := httpapi.NewServer(a.feed, a.pipeline)

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	mux.Handle("/", apiServer)

	return &http.Server{
		Addr:              fmt.Sprintf(":%d", a.cfg.HTTPPort),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// publishWindowFill records the current per-channel fill level. All windows
// share one counter, so the first channel is representative.
func publishWindowFill(snap map[domain.Channel]domain.Series) {
	for _, series := range snap {
		metrics.WindowFill.Set(float64(len(series.Y)))
		return
	}
}

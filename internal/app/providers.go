package app

import (
	"time"

	"telemetry-monitor/internal/application/feed"
	"telemetry-monitor/internal/application/ingest"
	"telemetry-monitor/internal/config"
	"telemetry-monitor/internal/infrastructure/window"
	"telemetry-monitor/internal/logging"
)

func provideConfig() (*config.Config, error) { return config.Load() }

func provideLogger(cfg *config.Config) (*logging.Logger, error) {
	return logging.New(cfg.LogLevel)
}

func provideShutdownManager(l *logging.Logger) *ShutdownManager {
	const shutdownTimeout = 30 * time.Second
	return NewShutdownManager(shutdownTimeout, l)
}

func provideWindowSet(cfg *config.Config) (*window.Set, error) {
	return window.NewSet(cfg.WindowSize)
}

func providePipeline(set *window.Set, logger *logging.Logger) *ingest.Pipeline {
	return ingest.New(set, logger)
}

func provideFeed(set *window.Set, cfg *config.Config) *feed.Feed {
	return feed.New(set, cfg.TickInterval)
}

package feed

import (
	"context"
	"time"

	"telemetry-monitor/internal/domain"
	"telemetry-monitor/internal/metrics"
)

// DefaultInterval is the presentation cadence used when none is configured.
const DefaultInterval = 100 * time.Millisecond

// Feed is the renderer-facing read side of the window set. It never mutates
// state and never blocks the producer beyond the snapshot read lock.
type Feed struct {
	source   domain.SnapshotSource
	interval time.Duration
}

// New creates a feed over source ticking at the given interval. Non-positive
// intervals fall back to DefaultInterval.
func New(source domain.SnapshotSource, interval time.Duration) *Feed {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Feed{source: source, interval: interval}
}

// Tick returns a consistent snapshot of every channel. Before any data has
// arrived every series is empty, which is not an error.
func (f *Feed) Tick() map[domain.Channel]domain.Series {
	snap := f.source.SnapshotAll()
	metrics.SnapshotsTotal.Inc()
	return snap
}

// Run invokes consume with a fresh snapshot on every tick until the context
// is cancelled. The consumer runs on the feed goroutine and should be fast.
func (f *Feed) Run(ctx context.Context, consume func(map[domain.Channel]domain.Series)) {
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			consume(f.Tick())
		}
	}
}

var _ domain.SeriesProvider = (*Feed)(nil)

package domain

import "context"

// FrameSource delivers raw frames from a transport into the provided channel.
// Run blocks until the context is cancelled or the transport fails; the
// returned error reports transport failure, never decode problems.
type FrameSource interface {
	Run(ctx context.Context, out chan<- Frame) error
	Close() error
}

// RecordSink accepts decoded records produced by the ingestion pipeline.
type RecordSink interface {
	AppendRecord(rec SampleRecord)
}

// SnapshotSource provides a consistent point-in-time read of every channel.
type SnapshotSource interface {
	SnapshotAll() map[Channel]Series
}

// SeriesProvider is the behaviour exposed to presentation transports.
type SeriesProvider interface {
	Tick() map[Channel]Series
}

// IngestStats summarises pipeline progress for operator surfaces.
type IngestStats struct {
	State   string
	Decoded uint64
	Failed  uint64
}

// StatsProvider exposes pipeline counters to presentation transports.
type StatsProvider interface {
	Stats() IngestStats
}

package ingest_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"telemetry-monitor/internal/application/ingest"
	"telemetry-monitor/internal/domain"
)

type recordingSink struct {
	mu      sync.Mutex
	records []domain.SampleRecord
}

func (r *recordingSink) AppendRecord(rec domain.SampleRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, rec)
}

func (r *recordingSink) snapshot() []domain.SampleRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.SampleRecord, len(r.records))
	copy(out, r.records)
	return out
}

func frameOf(s string) domain.Frame {
	return domain.Frame{Payload: []byte(s), ReceivedAt: time.Now().UTC()}
}

func TestPipelineSurvivesMalformedFrames(t *testing.T) {
	t.Parallel()

	sink := &recordingSink{}
	pipeline := ingest.New(sink, nil)

	frames := make(chan domain.Frame, 3)
	frames <- frameOf("1,2,3,4")
	frames <- frameOf("bad")
	frames <- frameOf("5,6,7,8")
	close(frames)

	if err := pipeline.Run(context.Background(), frames); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records := sink.snapshot()
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Setpoint != 1 || records[1].Setpoint != 5 {
		t.Fatalf("records out of order: %#v", records)
	}

	stats := pipeline.Stats()
	if stats.Decoded != 2 || stats.Failed != 1 {
		t.Fatalf("expected decoded=2 failed=1, got %#v", stats)
	}
	if stats.State != "stopped" {
		t.Fatalf("expected stopped state, got %s", stats.State)
	}
}

func TestPipelineStopExitsPromptly(t *testing.T) {
	t.Parallel()

	sink := &recordingSink{}
	pipeline := ingest.New(sink, nil)

	frames := make(chan domain.Frame)
	done := make(chan struct{})
	go func() {
		pipeline.Run(context.Background(), frames)
		close(done)
	}()

	frames <- frameOf("1,2,3,4")
	pipeline.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("pipeline did not stop in time")
	}

	if got := pipeline.State(); got != ingest.StateStopped {
		t.Fatalf("expected stopped, got %s", got)
	}
	if records := sink.snapshot(); len(records) != 1 {
		t.Fatalf("expected buffered record to survive stop, got %d", len(records))
	}
}

func TestPipelineIgnoresBufferedFramesAfterStop(t *testing.T) {
	t.Parallel()

	sink := &recordingSink{}
	pipeline := ingest.New(sink, nil)

	frames := make(chan domain.Frame, 8)
	for i := 0; i < 5; i++ {
		frames <- frameOf("1,2,3,4")
	}

	pipeline.Stop()
	if err := pipeline.Run(context.Background(), frames); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if records := sink.snapshot(); len(records) != 0 {
		t.Fatalf("expected no records after stop, got %d", len(records))
	}
	if stats := pipeline.Stats(); stats.Decoded != 0 {
		t.Fatalf("expected no decoded frames after stop, got %d", stats.Decoded)
	}
}

func TestPipelineStopsOnContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	pipeline := ingest.New(&recordingSink{}, nil)

	frames := make(chan domain.Frame)
	done := make(chan struct{})
	go func() {
		pipeline.Run(ctx, frames)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("pipeline did not stop on cancellation")
	}
}

func TestPipelineRejectsSecondRun(t *testing.T) {
	t.Parallel()

	pipeline := ingest.New(&recordingSink{}, nil)

	frames := make(chan domain.Frame)
	close(frames)
	if err := pipeline.Run(context.Background(), frames); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := pipeline.Run(context.Background(), frames)
	if !errors.Is(err, domain.ErrAlreadyStarted) {
		t.Fatalf("expected ErrAlreadyStarted, got %v", err)
	}
}

func TestPipelineStateBeforeRun(t *testing.T) {
	t.Parallel()

	pipeline := ingest.New(&recordingSink{}, nil)
	if got := pipeline.State(); got != ingest.StateIdle {
		t.Fatalf("expected idle, got %s", got)
	}
	if stats := pipeline.Stats(); stats.Decoded != 0 || stats.Failed != 0 {
		t.Fatalf("expected zero counters, got %#v", stats)
	}
}

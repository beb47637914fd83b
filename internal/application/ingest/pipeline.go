package ingest

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"telemetry-monitor/internal/application/decode"
	"telemetry-monitor/internal/domain"
	"telemetry-monitor/internal/logging"
	"telemetry-monitor/internal/metrics"
)

// State tracks the pipeline lifecycle.
type State int32

const (
	StateIdle State = iota
	StateRunning
	StateStopping
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopping:
		return "stopping"
	case StateStopped:
		return "stopped"
	}
	return "unknown"
}

// Pipeline consumes raw frames from the transport handoff channel, decodes
// them and appends the results to the record sink. Decode failures are
// counted and logged; they never terminate the run.
type Pipeline struct {
	sink   domain.RecordSink
	logger *logging.Logger

	state    atomic.Int32
	stopCh   chan struct{}
	stopOnce sync.Once

	decoded atomic.Uint64
	failed  atomic.Uint64
}

// New creates an idle pipeline writing into sink. A nil logger disables logging.
func New(sink domain.RecordSink, logger *logging.Logger) *Pipeline {
	return &Pipeline{
		sink:   sink,
		logger: logger.WithComponent("ingest"),
		stopCh: make(chan struct{}),
	}
}

// Run consumes frames until the context is cancelled, Stop is called, or the
// frames channel is closed. The stop condition is checked before each frame
// is taken, so no new frame is accepted after a stop even when the handoff
// channel still holds buffered frames; an in-flight decode always completes.
// Run returns
// domain.ErrAlreadyStarted when invoked more than once.
func (p *Pipeline) Run(ctx context.Context, frames <-chan domain.Frame) error {
	if !p.state.CompareAndSwap(int32(StateIdle), int32(StateRunning)) {
		return domain.ErrAlreadyStarted
	}
	defer p.state.Store(int32(StateStopped))

	for {
		// Stop and cancellation win over buffered frames still in flight.
		select {
		case <-ctx.Done():
			p.state.Store(int32(StateStopping))
			p.logger.Info("ingestion stopping", "cause", "context", "decoded", p.decoded.Load(), "failed", p.failed.Load())
			return nil
		case <-p.stopCh:
			p.state.Store(int32(StateStopping))
			p.logger.Info("ingestion stopping", "cause", "stop", "decoded", p.decoded.Load(), "failed", p.failed.Load())
			return nil
		default:
		}

		select {
		case <-ctx.Done():
			p.state.Store(int32(StateStopping))
			p.logger.Info("ingestion stopping", "cause", "context", "decoded", p.decoded.Load(), "failed", p.failed.Load())
			return nil
		case <-p.stopCh:
			p.state.Store(int32(StateStopping))
			p.logger.Info("ingestion stopping", "cause", "stop", "decoded", p.decoded.Load(), "failed", p.failed.Load())
			return nil
		case frame, ok := <-frames:
			if !ok {
				p.state.Store(int32(StateStopping))
				p.logger.Info("ingestion stopping", "cause", "source closed")
				return nil
			}
			p.process(frame)
		}
	}
}

func (p *Pipeline) process(frame domain.Frame) {
	rec, err := decode.Decode(frame.Payload)
	if err != nil {
		p.failed.Add(1)
		metrics.DecodeFailuresTotal.WithLabelValues(failureReason(err)).Inc()
		p.logger.Warn("dropping frame", logging.AttachError(err, "receivedAt", frame.ReceivedAt)...)
		return
	}

	p.sink.AppendRecord(rec)
	total := p.decoded.Add(1)
	metrics.RecordsDecodedTotal.Inc()
	metrics.LastSequence.Set(float64(total - 1))
}

// Stop signals the run loop to exit after the current frame. Safe to call
// multiple times and before Run.
func (p *Pipeline) Stop() {
	p.stopOnce.Do(func() {
		close(p.stopCh)
	})
}

// State returns the current lifecycle state.
func (p *Pipeline) State() State {
	return State(p.state.Load())
}

// Stats reports pipeline progress counters.
func (p *Pipeline) Stats() domain.IngestStats {
	return domain.IngestStats{
		State:   p.State().String(),
		Decoded: p.decoded.Load(),
		Failed:  p.failed.Load(),
	}
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrMalformedFrame):
		return "malformed_frame"
	case errors.Is(err, domain.ErrInvalidNumber):
		return "invalid_number"
	}
	return "unknown"
}

var _ domain.StatsProvider = (*Pipeline)(nil)

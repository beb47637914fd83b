// Package tcpline reads newline-delimited telemetry frames from the TCP
// endpoint exposed by the radio device bridge. One line is one frame; the
// bridge owns the physical link lifecycle.
package tcpline

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"telemetry-monitor/internal/domain"
	"telemetry-monitor/internal/logging"
	"telemetry-monitor/internal/metrics"
)

// Source is a FrameSource over a single TCP connection. No reconnection is
// attempted; a lost connection surfaces as a returned error.
type Source struct {
	addr   string
	logger *logging.Logger

	mu   sync.Mutex
	conn net.Conn
}

// New creates a source for the given bridge address (host:port).
func New(addr string, logger *logging.Logger) *Source {
	return &Source{addr: addr, logger: logger.WithComponent("tcpline")}
}

// Run dials the bridge and forwards one frame per received line until the
// context is cancelled or the connection fails. The returned error reports
// transport failure only; cancellation returns nil.
func (s *Source) Run(ctx context.Context, out chan<- domain.Frame) error {
	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", s.addr)
	if err != nil {
		return fmt.Errorf("dial %s: %w", s.addr, err)
	}

	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()
	defer conn.Close()

	// Unblock the read when the context ends.
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	s.logger.Info("connected to device bridge", "addr", s.addr)

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		line := scanner.Bytes()
		payload := make([]byte, len(line))
		copy(payload, line)

		frame := domain.Frame{Payload: payload, ReceivedAt: time.Now().UTC()}
		select {
		case <-ctx.Done():
			return nil
		case out <- frame:
			metrics.FramesReceivedTotal.Inc()
		}
	}

	if ctx.Err() != nil {
		return nil
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", s.addr, err)
	}
	return fmt.Errorf("connection to %s closed by peer", s.addr)
}

// Close terminates the underlying connection, if one is open.
func (s *Source) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

var _ domain.FrameSource = (*Source)(nil)

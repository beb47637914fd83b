package window

import (
	"sync"

	"telemetry-monitor/internal/domain"
)

// Set owns one Window per channel and guards all of them with a single lock,
// so a record append is observed by snapshots as one unit across channels.
type Set struct {
	mu      sync.RWMutex
	windows map[domain.Channel]*Window
}

// NewSet creates a set of empty windows, one per fixed channel, all sharing
// the given capacity.
func NewSet(capacity int) (*Set, error) {
	windows := make(map[domain.Channel]*Window, len(domain.Channels()))
	for _, ch := range domain.Channels() {
		w, err := New(capacity)
		if err != nil {
			return nil, err
		}
		windows[ch] = w
	}
	return &Set{windows: windows}, nil
}

// AppendRecord appends each field of rec to its channel window atomically.
func (s *Set) AppendRecord(rec domain.SampleRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for ch, w := range s.windows {
		w.Append(rec.Value(ch))
	}
}

// SnapshotAll returns a consistent snapshot of every channel. All returned
// series share the same capture-time sequence counter.
func (s *Set) SnapshotAll() map[domain.Channel]domain.Series {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[domain.Channel]domain.Series, len(s.windows))
	for ch, w := range s.windows {
		out[ch] = w.Snapshot()
	}
	return out
}

// Snapshot returns the snapshot of a single channel.
func (s *Set) Snapshot(ch domain.Channel) (domain.Series, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, ok := s.windows[ch]
	if !ok {
		return domain.Series{}, false
	}
	return w.Snapshot(), true
}

// TotalReceived returns the shared global sequence counter.
func (s *Set) TotalReceived() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, w := range s.windows {
		return w.Total()
	}
	return 0
}

var _ domain.RecordSink = (*Set)(nil)
var _ domain.SnapshotSource = (*Set)(nil)

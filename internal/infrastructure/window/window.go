package window

import (
	"fmt"

	"telemetry-monitor/internal/domain"
)

// Window is a fixed-capacity ring holding the most recent values of one
// channel, together with the global sequence counter of samples ever
// appended. It is not safe for concurrent use on its own; Set guards it.
type Window struct {
	capacity int
	values   []float64
	head     int   // next write position
	count    int   // stored values, <= capacity
	total    int64 // samples ever appended, never reset
}

// New creates a window with the given capacity. Capacity must be positive.
func New(capacity int) (*Window, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("window capacity must be positive, got %d", capacity)
	}
	return &Window{
		capacity: capacity,
		values:   make([]float64, capacity),
	}, nil
}

// Append stores v, evicting the oldest stored value once the ring is full.
func (w *Window) Append(v float64) {
	w.values[w.head] = v
	w.head = (w.head + 1) % w.capacity
	if w.count < w.capacity {
		w.count++
	}
	w.total++
}

// Snapshot returns the stored values in arrival order paired with their
// global sequence indices. The last index is always total-1.
func (w *Window) Snapshot() domain.Series {
	xs := make([]int64, w.count)
	ys := make([]float64, w.count)

	oldest := w.head - w.count
	if oldest < 0 {
		oldest += w.capacity
	}
	start := w.total - int64(w.count)
	for i := 0; i < w.count; i++ {
		xs[i] = start + int64(i)
		ys[i] = w.values[(oldest+i)%w.capacity]
	}

	return domain.Series{X: xs, Y: ys}
}

// Total returns the number of samples ever appended.
func (w *Window) Total() int64 {
	return w.total
}

// Len returns the number of currently stored samples.
func (w *Window) Len() int {
	return w.count
}

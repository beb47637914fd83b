package window_test

import (
	"testing"

	"telemetry-monitor/internal/infrastructure/window"
)

func TestNewRejectsNonPositiveCapacity(t *testing.T) {
	t.Parallel()

	for _, capacity := range []int{0, -1} {
		if _, err := window.New(capacity); err == nil {
			t.Fatalf("expected error for capacity %d", capacity)
		}
	}
}

func TestEmptySnapshot(t *testing.T) {
	t.Parallel()

	w, err := window.New(4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap := w.Snapshot()
	if len(snap.X) != 0 || len(snap.Y) != 0 {
		t.Fatalf("expected empty snapshot, got %#v", snap)
	}
}

func TestSnapshotBeforeEviction(t *testing.T) {
	t.Parallel()

	w, err := window.New(5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, v := range []float64{10, 20, 30} {
		w.Append(v)
	}

	snap := w.Snapshot()
	if len(snap.X) != 3 || len(snap.Y) != 3 {
		t.Fatalf("expected 3 points, got %d/%d", len(snap.X), len(snap.Y))
	}
	for i, want := range []float64{10, 20, 30} {
		if snap.Y[i] != want {
			t.Fatalf("y[%d]: expected %v, got %v", i, want, snap.Y[i])
		}
		if snap.X[i] != int64(i) {
			t.Fatalf("x[%d]: expected %d, got %d", i, i, snap.X[i])
		}
	}
}

func TestCapacityInvariant(t *testing.T) {
	t.Parallel()

	const capacity = 10
	const appended = 37

	w, err := window.New(capacity)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < appended; i++ {
		w.Append(float64(i))
	}

	snap := w.Snapshot()
	if len(snap.Y) != capacity {
		t.Fatalf("expected %d stored points, got %d", capacity, len(snap.Y))
	}

	// The window holds exactly the last `capacity` appended values in order.
	for i := 0; i < capacity; i++ {
		want := float64(appended - capacity + i)
		if snap.Y[i] != want {
			t.Fatalf("y[%d]: expected %v, got %v", i, want, snap.Y[i])
		}
	}
}

func TestIndexAlignmentInvariant(t *testing.T) {
	t.Parallel()

	w, err := window.New(8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 21; i++ {
		w.Append(float64(i))

		snap := w.Snapshot()
		for j := 0; j+1 < len(snap.X); j++ {
			if snap.X[j+1] != snap.X[j]+1 {
				t.Fatalf("x not strictly increasing by one at %d: %v", j, snap.X)
			}
		}
		if last := snap.X[len(snap.X)-1]; last != w.Total()-1 {
			t.Fatalf("expected last index %d, got %d", w.Total()-1, last)
		}
	}
}

func TestTinyWindowEviction(t *testing.T) {
	t.Parallel()

	w, err := window.New(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w.Append(1)
	w.Append(2)
	w.Append(3)

	snap := w.Snapshot()
	if len(snap.X) != 2 {
		t.Fatalf("expected 2 points, got %d", len(snap.X))
	}
	if snap.X[0] != 1 || snap.X[1] != 2 {
		t.Fatalf("unexpected xs: %v", snap.X)
	}
	if snap.Y[0] != 2 || snap.Y[1] != 3 {
		t.Fatalf("unexpected ys: %v", snap.Y)
	}
}

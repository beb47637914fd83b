package window_test

import (
	"sync"
	"testing"

	"telemetry-monitor/internal/domain"
	"telemetry-monitor/internal/infrastructure/window"
)

func TestSetAppendRecordFansOutPerChannel(t *testing.T) {
	t.Parallel()

	set, err := window.NewSet(4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	set.AppendRecord(domain.SampleRecord{Setpoint: 1, Command: 2, Measurement1: 3, Measurement2: 4})

	snap := set.SnapshotAll()
	if len(snap) != 4 {
		t.Fatalf("expected 4 channels, got %d", len(snap))
	}

	want := map[domain.Channel]float64{
		domain.ChannelSetpoint:     1,
		domain.ChannelCommand:      2,
		domain.ChannelMeasurement1: 3,
		domain.ChannelMeasurement2: 4,
	}
	for ch, v := range want {
		series := snap[ch]
		if len(series.Y) != 1 || series.Y[0] != v {
			t.Fatalf("channel %s: expected [%v], got %v", ch, v, series.Y)
		}
		if series.X[0] != 0 {
			t.Fatalf("channel %s: expected index 0, got %d", ch, series.X[0])
		}
	}
}

func TestSetCrossChannelAtomicity(t *testing.T) {
	t.Parallel()

	set, err := window.NewSet(16)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	const appends = 25
	for i := 0; i < appends; i++ {
		set.AppendRecord(domain.SampleRecord{Setpoint: float64(i)})
	}

	if total := set.TotalReceived(); total != appends {
		t.Fatalf("expected totalReceived %d, got %d", appends, total)
	}

	snap := set.SnapshotAll()
	for ch, series := range snap {
		if last := series.X[len(series.X)-1]; last != appends-1 {
			t.Fatalf("channel %s: expected last index %d, got %d", ch, appends-1, last)
		}
	}
}

func TestSetSnapshotSingleChannel(t *testing.T) {
	t.Parallel()

	set, err := window.NewSet(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	set.AppendRecord(domain.SampleRecord{Command: 7})

	series, ok := set.Snapshot(domain.ChannelCommand)
	if !ok {
		t.Fatal("expected channel to exist")
	}
	if len(series.Y) != 1 || series.Y[0] != 7 {
		t.Fatalf("unexpected series: %#v", series)
	}

	if _, ok := set.Snapshot(domain.Channel("bogus")); ok {
		t.Fatal("expected unknown channel to be reported missing")
	}
}

func TestSetRejectsNonPositiveCapacity(t *testing.T) {
	t.Parallel()

	if _, err := window.NewSet(0); err == nil {
		t.Fatal("expected error for zero capacity")
	}
}

// Snapshots taken while a writer is appending must always be internally
// consistent: equal lengths and x strictly increasing by one.
func TestSetConcurrentSnapshotConsistency(t *testing.T) {
	t.Parallel()

	set, err := window.NewSet(8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			set.AppendRecord(domain.SampleRecord{Setpoint: float64(i), Command: float64(i), Measurement1: float64(i), Measurement2: float64(i)})
		}
		close(done)
	}()

	for {
		snap := set.SnapshotAll()
		var lastIndex int64 = -1
		for ch, series := range snap {
			if len(series.X) != len(series.Y) {
				t.Fatalf("channel %s: mismatched lengths %d/%d", ch, len(series.X), len(series.Y))
			}
			for j := 0; j+1 < len(series.X); j++ {
				if series.X[j+1] != series.X[j]+1 {
					t.Fatalf("channel %s: x not contiguous: %v", ch, series.X)
				}
			}
			if len(series.X) > 0 {
				end := series.X[len(series.X)-1]
				if lastIndex >= 0 && end != lastIndex {
					t.Fatalf("channels disagree on capture point: %d vs %d", end, lastIndex)
				}
				lastIndex = end
			}
		}

		select {
		case <-done:
			wg.Wait()
			return
		default:
		}
	}
}

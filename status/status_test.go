package status

import (
	"sync"
	"testing"
)

func TestCountersConcurrent(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Inc(Steps)
			}
		}()
	}
	wg.Wait()
	if got := r.Count(Steps); got != 800 {
		t.Errorf("Expected 800 steps, got %d", got)
	}
	if r.Counters.Get(Steps) != r.Counters.Get(Steps) {
		t.Error("Expected a stable pointer per key")
	}
}

func TestFloatMax(t *testing.T) {
	var f Float
	f.Max(2.5)
	f.Max(1)
	if f.Get() != 2.5 {
		t.Errorf("Expected 2.5, got %v", f.Get())
	}
	f.Set(-1)
	if f.Get() != -1 {
		t.Errorf("Expected -1 after Set, got %v", f.Get())
	}
}

func TestSummaryOrder(t *testing.T) {
	r := NewRegistry()
	r.Inc(Steps)
	r.Inc(Bumps)
	r.Inc(Bumps)
	r.Gauges.Get(MaxDrift).Set(0.5)

	want := "bumps=2 steps=1 max_drift=0.5"
	if got := r.Summary(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
	if r.Counters.Len() != 2 || r.Gauges.Len() != 1 {
		t.Errorf("Expected 2 counters and 1 gauge, got %d and %d", r.Counters.Len(), r.Gauges.Len())
	}
}

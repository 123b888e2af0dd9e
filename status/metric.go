package status

import (
	"math"
	"sort"
	"sync"
	"sync/atomic"
)

// Float is an atomic float64 stored as bits; the zero value reads 0
type Float struct {
	bits atomic.Uint64
}

func (f *Float) Set(v float64) { f.bits.Store(math.Float64bits(v)) }
func (f *Float) Get() float64  { return math.Float64frombits(f.bits.Load()) }

// Max raises the stored value to v if v is larger
func (f *Float) Max(v float64) {
	for {
		old := f.bits.Load()
		if math.Float64frombits(old) >= v {
			return
		}
		if f.bits.CompareAndSwap(old, math.Float64bits(v)) {
			return
		}
	}
}

// Metrics is a named set of T. Lookup takes a lock; callers keep the
// returned pointer and update it without one.
type Metrics[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

func newMetrics[T any]() *Metrics[T] {
	return &Metrics[T]{items: make(map[string]*T)}
}

// Get returns the metric for key, creating it on first use
func (m *Metrics[T]) Get(key string) *T {
	m.mu.RLock()
	ptr, ok := m.items[key]
	m.mu.RUnlock()
	if ok {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ptr, ok := m.items[key]; ok {
		return ptr
	}
	ptr = new(T)
	m.items[key] = ptr
	return ptr
}

// Each visits metrics in key order
func (m *Metrics[T]) Each(fn func(key string, ptr *T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fn(k, m.items[k])
	}
}

func (m *Metrics[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

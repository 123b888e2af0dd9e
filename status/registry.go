// Package status holds session counters written by the game loop and read
// back for the exit summary.
package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Counter and gauge names recorded by the game loop
const (
	Commands = "commands"
	Steps    = "steps"
	Bumps    = "bumps"
	Pickups  = "pickups"
	Frames   = "frames"
	MaxDrift = "max_drift"
)

// Registry groups integer counters and float gauges
type Registry struct {
	Counters *Metrics[atomic.Int64]
	Gauges   *Metrics[Float]
}

func NewRegistry() *Registry {
	return &Registry{
		Counters: newMetrics[atomic.Int64](),
		Gauges:   newMetrics[Float](),
	}
}

// Inc adds one to a counter
func (r *Registry) Inc(name string) {
	r.Counters.Get(name).Add(1)
}

// Count reads a counter
func (r *Registry) Count(name string) int64 {
	return r.Counters.Get(name).Load()
}

// Summary renders every metric as "name=value" pairs in key order
func (r *Registry) Summary() string {
	var parts []string
	r.Counters.Each(func(k string, v *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", k, v.Load()))
	})
	r.Gauges.Each(func(k string, v *Float) {
		parts = append(parts, fmt.Sprintf("%s=%.3g", k, v.Get()))
	})
	return strings.Join(parts, " ")
}

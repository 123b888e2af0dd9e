package collision

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/cubeworld/cube"
	"github.com/lixenwraith/cubeworld/frame"
)

// Engine answers collision queries for one grid and anchor. Each query is
// independent of earlier ones: the probe set is a pure function of the
// grid's walls and the smart-wall option, and is rebuilt whenever the grid's
// wall revision or the option changes.
type Engine struct {
	grid   *cube.Grid
	anchor mgl64.Vec3
	opts   Options
	probes []Probe
	rev    uint64
	valid  bool
}

// NewEngine creates an engine for a fixed grid and anchor
func NewEngine(g *cube.Grid, anchor mgl64.Vec3, opts Options) *Engine {
	return &Engine{grid: g, anchor: anchor, opts: opts}
}

// Anchor is the fixed observer point queries measure against
func (e *Engine) Anchor() mgl64.Vec3 { return e.anchor }

// Options returns the current threshold and smart-wall setting
func (e *Engine) Options() Options { return e.opts }

// SmartWalls reports whether connecting-edge probes are active
func (e *Engine) SmartWalls() bool { return e.opts.SmartWalls }

// SetSmartWalls switches between pillar-only and pillar+wing probes
func (e *Engine) SetSmartWalls(on bool) {
	if e.opts.SmartWalls == on {
		return
	}
	e.opts.SmartWalls = on
	e.valid = false
}

// Probes returns the probe set for the grid's current walls
func (e *Engine) Probes() []Probe {
	if rev := e.grid.WallRevision(); !e.valid || rev != e.rev {
		e.probes = Probes(e.grid, e.opts.SmartWalls)
		e.rev = rev
		e.valid = true
	}
	return e.probes
}

// WouldCollide reports whether candidate places a wall probe within the
// contact threshold of the anchor
func (e *Engine) WouldCollide(candidate frame.Frame) bool {
	_, hit := e.FirstContact(candidate)
	return hit
}

// FirstContact returns the first offending probe under candidate
func (e *Engine) FirstContact(candidate frame.Frame) (Probe, bool) {
	return firstContact(candidate, e.Probes(), e.anchor, e.opts.Threshold)
}

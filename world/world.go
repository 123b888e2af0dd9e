// Package world owns the live game state: one grid, one committed frame, the
// collectibles, and the collision engine that guards every move. Commands
// from the input layer are applied synchronously by Handle.
package world

import (
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/cubeworld/collision"
	"github.com/lixenwraith/cubeworld/cube"
	"github.com/lixenwraith/cubeworld/frame"
	"github.com/lixenwraith/cubeworld/input"
	"github.com/lixenwraith/cubeworld/item"
	"github.com/lixenwraith/cubeworld/mesh"
	"github.com/lixenwraith/cubeworld/movement"
)

// Options are the tunables the world needs once the grid exists
type Options struct {
	AnchorHeight      float64
	EyeHeight         float64
	LookStep          float64
	InteractThreshold float64
	Movement          movement.Config
	Collision         collision.Options
}

// Outcome reports what one command did
type Outcome struct {
	Command   input.Command
	Move      movement.Result // Set for walking commands
	Collected []item.Item
	Completed bool // The last active item was collected by this command
	Quit      bool
}

// Blocked reports a walking command rolled back by a wall
func (o Outcome) Blocked() bool {
	return o.Command.IsMove() && o.Move.State == movement.RolledBack
}

// Moved reports a committed walking step
func (o Outcome) Moved() bool {
	return o.Command.IsMove() && o.Move.State == movement.Committed
}

// World is the process-wide game state
type World struct {
	grid   *cube.Grid
	anchor mgl64.Vec3
	eye    mgl64.Vec3
	opts   Options
	model  *mesh.Mesh
	source string

	engine *collision.Engine
	ctrl   *movement.Controller
	items  *item.Set
}

// New wraps a populated grid. Item cells become collectibles carrying model.
func New(g *cube.Grid, model *mesh.Mesh, opts Options) (*World, error) {
	if err := cube.VerifyAdjacency(g.N()); err != nil {
		return nil, fmt.Errorf("adjacency table: %w", err)
	}
	if model == nil {
		model = &mesh.Mesh{}
	}

	r := g.Radius()
	w := &World{
		grid:   g,
		anchor: mgl64.Vec3{0, -r + opts.AnchorHeight, 0},
		eye:    mgl64.Vec3{0, -r + opts.EyeHeight, 0},
		opts:   opts,
		model:  model,
		items:  item.FromGrid(g, model),
	}
	w.engine = collision.NewEngine(g, w.anchor, opts.Collision)
	w.ctrl = movement.NewController(w.engine, opts.Movement)

	if w.engine.WouldCollide(frame.Identity()) {
		log.Printf("world: observer starts inside a wall")
	}
	return w, nil
}

func (w *World) Grid() *cube.Grid                 { return w.grid }
func (w *World) Anchor() mgl64.Vec3               { return w.anchor }
func (w *World) Eye() mgl64.Vec3                  { return w.eye }
func (w *World) Frame() frame.Frame               { return w.ctrl.Frame() }
func (w *World) View() movement.ViewAngles        { return w.ctrl.View() }
func (w *World) Items() *item.Set                 { return w.items }
func (w *World) Engine() *collision.Engine        { return w.engine }
func (w *World) Controller() *movement.Controller { return w.ctrl }

// Source describes where the faces came from
func (w *World) Source() string { return w.source }

// Here returns the cell under the observer
func (w *World) Here() (cube.Cell, bool) {
	pole := mgl64.Vec3{0, -w.grid.Radius(), 0}
	f, row, col, ok := w.grid.CellOf(w.ctrl.Frame().InverseTransformPoint(pole))
	return cube.Cell{Face: f, Row: row, Col: col}, ok
}

var moveCommands = map[input.Command]movement.Direction{
	input.CommandForward:     movement.Forward,
	input.CommandBack:        movement.Back,
	input.CommandStrafeLeft:  movement.StrafeLeft,
	input.CommandStrafeRight: movement.StrafeRight,
}

// Handle applies one command
func (w *World) Handle(cmd input.Command) Outcome {
	out := Outcome{Command: cmd}
	step := w.opts.LookStep

	switch cmd {
	case input.CommandForward, input.CommandBack, input.CommandStrafeLeft, input.CommandStrafeRight:
		out.Move = w.ctrl.Move(moveCommands[cmd])
		if out.Move.State == movement.RolledBack {
			log.Printf("world: %s blocked", out.Move.Direction)
		}

	case input.CommandLookLeft:
		w.ctrl.Look(-step, 0)
	case input.CommandLookRight:
		w.ctrl.Look(step, 0)
	case input.CommandLookUp:
		w.ctrl.Look(0, step)
	case input.CommandLookDown:
		w.ctrl.Look(0, -step)

	case input.CommandInteract:
		out.Collected = w.collect()
		out.Completed = len(out.Collected) > 0 && w.items.Remaining() == 0

	case input.CommandToggleSmartWalls:
		w.engine.SetSmartWalls(!w.engine.SmartWalls())
		log.Printf("world: smart walls %v", w.engine.SmartWalls())

	case input.CommandRenormalize:
		before := w.ctrl.Frame().OrthonormalityError()
		w.ctrl.Renormalize()
		log.Printf("world: renormalized, drift %.3g -> %.3g", before, w.ctrl.Frame().OrthonormalityError())

	case input.CommandReset:
		w.ctrl.Reset()

	case input.CommandQuit:
		out.Quit = true
	}
	return out
}

// collect picks up every item in reach and clears its cell
func (w *World) collect() []item.Item {
	got := w.items.TryCollect(w.grid, w.ctrl.Frame(), w.anchor, w.opts.InteractThreshold)
	for _, it := range got {
		c := it.Cell
		if err := w.grid.Set(c.Face, c.Row, c.Col, cube.Empty); err != nil {
			log.Printf("world: clearing item cell: %v", err)
		}
		log.Printf("world: collected item at %s[%d][%d], score %d", c.Face, c.Row, c.Col, w.items.Score())
	}
	return got
}

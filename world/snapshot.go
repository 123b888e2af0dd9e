package world

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/cubeworld/cube"
	"github.com/lixenwraith/cubeworld/frame"
	"github.com/lixenwraith/cubeworld/item"
	"github.com/lixenwraith/cubeworld/mesh"
	"github.com/lixenwraith/cubeworld/movement"
)

// Snapshot is the read-only view handed to the renderer once per frame
type Snapshot struct {
	Grid   *cube.Grid
	Frame  frame.Frame
	View   movement.ViewAngles
	Anchor mgl64.Vec3
	Eye    mgl64.Vec3
	Items  []item.Item
	Model  *mesh.Mesh

	Score     int
	Total     int
	Last      movement.Result
	Commits   int
	Drift     float64 // Frame orthonormality error
	Smart     bool
	Here      cube.Cell
	HereKnown bool
	Source    string
}

// Snapshot captures the state for drawing
func (w *World) Snapshot() Snapshot {
	here, ok := w.Here()
	f := w.ctrl.Frame()
	return Snapshot{
		Grid:      w.grid,
		Frame:     f,
		View:      w.ctrl.View(),
		Anchor:    w.anchor,
		Eye:       w.eye,
		Items:     w.items.Items(),
		Model:     w.model,
		Score:     w.items.Score(),
		Total:     w.items.Total(),
		Last:      w.ctrl.Last(),
		Commits:   w.ctrl.Commits(),
		Drift:     f.OrthonormalityError(),
		Smart:     w.engine.SmartWalls(),
		Here:      here,
		HereKnown: ok,
		Source:    w.source,
	}
}

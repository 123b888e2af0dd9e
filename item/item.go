// Package item tracks collectibles placed on the sphere surface.
//
// Items are created once from the grid and only ever deactivated. A pickup
// check transforms each active item through the current world frame and
// collects every one within reach of the anchor.
package item

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/cubeworld/cube"
	"github.com/lixenwraith/cubeworld/frame"
	"github.com/lixenwraith/cubeworld/mesh"
)

// Item is one collectible
type Item struct {
	Cell   cube.Cell
	Active bool
	Model  *mesh.Mesh // Shared decorative geometry, may be empty
}

// Set owns the collectibles and the score
type Set struct {
	items []Item
	score int
}

// NewSet wraps items as given
func NewSet(items []Item) *Set {
	return &Set{items: items}
}

// FromGrid creates one active item per Item cell, in grid storage order
func FromGrid(g *cube.Grid, model *mesh.Mesh) *Set {
	cells := g.Cells(cube.Item)
	items := make([]Item, len(cells))
	for i, c := range cells {
		items[i] = Item{Cell: c, Active: true, Model: model}
	}
	return NewSet(items)
}

// Items returns a snapshot of all items
func (s *Set) Items() []Item {
	return append([]Item(nil), s.items...)
}

func (s *Set) Score() int { return s.score }
func (s *Set) Total() int { return len(s.items) }

// Remaining counts active items
func (s *Set) Remaining() int {
	n := 0
	for _, it := range s.items {
		if it.Active {
			n++
		}
	}
	return n
}

// Position returns the world-local position of an item: the centre of its
// cell on the outer surface
func Position(g *cube.Grid, it Item) mgl64.Vec3 {
	return g.CellPoint(it.Cell.Face, it.Cell.Row, it.Cell.Col, g.Radius())
}

// TryCollect deactivates every active item whose transformed position lies
// within threshold of the anchor and returns the items collected by this call
func (s *Set) TryCollect(g *cube.Grid, f frame.Frame, anchor mgl64.Vec3, threshold float64) []Item {
	var got []Item
	limit := threshold * threshold
	for i := range s.items {
		it := &s.items[i]
		if !it.Active {
			continue
		}
		d := f.TransformPoint(Position(g, *it)).Sub(anchor)
		if d.Dot(d) >= limit {
			continue
		}
		it.Active = false
		s.score++
		got = append(got, *it)
	}
	return got
}

// Nearest returns the active item closest to the anchor under f
func (s *Set) Nearest(g *cube.Grid, f frame.Frame, anchor mgl64.Vec3) (Item, float64, bool) {
	var best Item
	bestDist := -1.0
	for _, it := range s.items {
		if !it.Active {
			continue
		}
		d := f.TransformPoint(Position(g, it)).Sub(anchor).Len()
		if bestDist < 0 || d < bestDist {
			best, bestDist = it, d
		}
	}
	return best, bestDist, bestDist >= 0
}

// Package collision tests whether a candidate world orientation would place a
// wall inside the observer.
//
// Every wall cell contributes a probe at its centre, sunk to half the wall
// depth. With smart walls enabled a wall cell also contributes a probe at the
// midpoint of each edge it shares with another wall cell, because the fused
// strip between the two pillars occupies space neither centre covers.
// Queries hold no state between calls.
package collision

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/cubeworld/cube"
	"github.com/lixenwraith/cubeworld/frame"
)

// Options controls a collision query
type Options struct {
	Threshold  float64 // Contact distance between a probe and the anchor
	SmartWalls bool    // Probe connecting edges between adjacent walls
}

// Probe is one world-local point tested against the anchor
type Probe struct {
	Cell  cube.Cell
	Edge  cube.Edge // Meaningful only when Wing is set
	Wing  bool      // Connecting-edge probe rather than a pillar centre
	Point mgl64.Vec3
}

// ProbeRadius is the radius at which wall probes sit: halfway down the wall
func ProbeRadius(g *cube.Grid) float64 {
	return g.Radius() - g.Depth()/2
}

// Probes returns the world-local probe points for every wall cell
// Wing probes on a seam are emitted by both cells; the duplicate is harmless.
func Probes(g *cube.Grid, smart bool) []Probe {
	r := ProbeRadius(g)
	var probes []Probe

	for _, c := range g.Walls() {
		probes = append(probes, Probe{
			Cell:  c,
			Point: g.CellPoint(c.Face, c.Row, c.Col, r),
		})
		if !smart {
			continue
		}
		for _, e := range cube.Edges {
			nf, nr, nc := g.Step(c.Face, c.Row, c.Col, e)
			if g.Neighbor(nf, nr, nc) != cube.Wall {
				continue
			}
			probes = append(probes, Probe{
				Cell:  c,
				Edge:  e,
				Wing:  true,
				Point: g.EdgeMidpoint(c.Face, c.Row, c.Col, e, r),
			})
		}
	}
	return probes
}

// FirstContact returns the first probe that lies within opts.Threshold of the
// anchor once transformed by candidate
func FirstContact(candidate frame.Frame, g *cube.Grid, anchor mgl64.Vec3, opts Options) (Probe, bool) {
	return firstContact(candidate, Probes(g, opts.SmartWalls), anchor, opts.Threshold)
}

// WouldCollide reports whether any wall probe lies within opts.Threshold of the
// anchor under candidate
func WouldCollide(candidate frame.Frame, g *cube.Grid, anchor mgl64.Vec3, opts Options) bool {
	_, hit := FirstContact(candidate, g, anchor, opts)
	return hit
}

func firstContact(candidate frame.Frame, probes []Probe, anchor mgl64.Vec3, threshold float64) (Probe, bool) {
	limit := threshold * threshold
	for _, p := range probes {
		d := candidate.TransformPoint(p.Point).Sub(anchor)
		if d.Dot(d) < limit {
			return p, true
		}
	}
	return Probe{}, false
}

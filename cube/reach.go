package cube

import (
	"github.com/zyedidia/generic/mapset"
)

// Cell addresses one grid cell
type Cell struct {
	Face     Face
	Row, Col int
}

// Reachable returns every passable cell connected to start through
// edge-adjacent passable cells, crossing face seams
// A wall or invalid start yields an empty set
func Reachable(g *Grid, start Cell) mapset.Set[Cell] {
	visited := mapset.New[Cell]()
	if !start.Face.Valid() || !g.inRange(start.Row, start.Col) {
		return visited
	}
	if !g.Neighbor(start.Face, start.Row, start.Col).Passable() {
		return visited
	}

	visited.Put(start)
	queue := []Cell{start}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for _, e := range Edges {
			f, r, c := g.Step(curr.Face, curr.Row, curr.Col, e)
			next := Cell{f, r, c}
			if visited.Has(next) || !g.Neighbor(f, r, c).Passable() {
				continue
			}
			visited.Put(next)
			queue = append(queue, next)
		}
	}
	return visited
}

// Farthest returns the passable cell with the greatest step distance from
// start on a single face, ignoring seams. ok is false when start is blocked.
func Farthest(g *Grid, start Cell) (Cell, bool) {
	if !start.Face.Valid() || !g.inRange(start.Row, start.Col) ||
		!g.Neighbor(start.Face, start.Row, start.Col).Passable() {
		return Cell{}, false
	}

	visited := mapset.New[Cell]()
	visited.Put(start)
	frontier := []Cell{start}
	last := start
	for len(frontier) > 0 {
		var next []Cell
		for _, curr := range frontier {
			for _, e := range Edges {
				dr, dc := e.Step()
				r, c := curr.Row+dr, curr.Col+dc
				if !g.inRange(r, c) {
					continue
				}
				cell := Cell{curr.Face, r, c}
				if visited.Has(cell) || !g.cells[curr.Face][r*g.n+c].Passable() {
					continue
				}
				visited.Put(cell)
				next = append(next, cell)
			}
		}
		if len(next) > 0 {
			last = next[len(next)-1]
		}
		frontier = next
	}
	return last, true
}

package cube

import (
	"fmt"
)

// Grid stores occupancy for six N×N face grids of a cube-sphere of radius R
// whose walls extend inward by Depth
type Grid struct {
	n      int
	radius float64
	depth  float64
	cells  [FaceCount][]CellState
	walls  uint64 // Bumped whenever a cell becomes or stops being a Wall
}

// NewGrid creates an all-empty grid
func NewGrid(n int, radius, depth float64) (*Grid, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidResolution, n)
	}
	if radius <= 0 || depth < 0 || depth >= radius {
		return nil, fmt.Errorf("%w: radius %.3f depth %.3f", ErrInvalidGeometry, radius, depth)
	}

	g := &Grid{n: n, radius: radius, depth: depth}
	for f := range g.cells {
		g.cells[f] = make([]CellState, n*n)
	}
	return g, nil
}

// N is the number of cells along a face edge
func (g *Grid) N() int { return g.n }

// Radius is the outer sphere radius, where floors lie
func (g *Grid) Radius() float64 { return g.radius }

// Depth is how far walls reach inward from the surface
func (g *Grid) Depth() float64 { return g.depth }

// InnerRadius is the radius of wall tops
func (g *Grid) InnerRadius() float64 { return g.radius - g.depth }

// WallRevision changes whenever the set of wall cells changes
func (g *Grid) WallRevision() uint64 { return g.walls }

func (g *Grid) write(f Face, i int, s CellState) {
	if (g.cells[f][i] == Wall) != (s == Wall) {
		g.walls++
	}
	g.cells[f][i] = s
}

func (g *Grid) inRange(row, col int) bool {
	return row >= 0 && row < g.n && col >= 0 && col < g.n
}

// CellAt returns the state of a cell
// Out-of-range row/col resolve through the seam table like Neighbor
func (g *Grid) CellAt(f Face, row, col int) (CellState, error) {
	if !f.Valid() {
		return Empty, fmt.Errorf("%w: %d", ErrInvalidFace, f)
	}
	if !g.inRange(row, col) {
		f, row, col = g.Resolve(f, row, col)
	}
	return g.cells[f][row*g.n+col], nil
}

// Set writes a cell state
func (g *Grid) Set(f Face, row, col int, s CellState) error {
	if !f.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidFace, f)
	}
	if !g.inRange(row, col) {
		return fmt.Errorf("cell %s[%d][%d] out of range for N=%d", f, row, col, g.n)
	}
	g.write(f, row*g.n+col, s)
	return nil
}

// Fill sets every cell of a face
func (g *Grid) Fill(f Face, s CellState) {
	if !f.Valid() {
		return
	}
	for i := range g.cells[f] {
		g.write(f, i, s)
	}
}

// Resolve maps possibly out-of-range indices to a concrete cell
// Indices off the grid by one step cross to the adjacent face. When both row
// and col are off the grid (a cube corner, where three faces meet) the indices
// are clamped onto the same face instead of computing true corner adjacency.
func (g *Grid) Resolve(f Face, row, col int) (Face, int, int) {
	rowOut := row < 0 || row >= g.n
	colOut := col < 0 || col >= g.n

	switch {
	case !rowOut && !colOut:
		return f, row, col
	case rowOut && colOut:
		return f, clamp(row, g.n), clamp(col, g.n)
	case rowOut:
		e := South
		if row < 0 {
			e = North
		}
		return cross(g.n, f, e, col)
	default:
		e := East
		if col < 0 {
			e = West
		}
		return cross(g.n, f, e, row)
	}
}

// Neighbor returns the state at possibly out-of-range indices, resolving
// seams between faces. An invalid face reads as Wall.
func (g *Grid) Neighbor(f Face, row, col int) CellState {
	if !f.Valid() {
		return Wall
	}
	f, row, col = g.Resolve(f, row, col)
	return g.cells[f][row*g.n+col]
}

// Step returns the cell reached by moving one cell across edge e
func (g *Grid) Step(f Face, row, col int, e Edge) (Face, int, int) {
	dr, dc := e.Step()
	return g.Resolve(f, row+dr, col+dc)
}

// Each visits every cell in storage order
func (g *Grid) Each(fn func(f Face, row, col int, s CellState)) {
	for _, f := range Faces {
		for row := 0; row < g.n; row++ {
			for col := 0; col < g.n; col++ {
				fn(f, row, col, g.cells[f][row*g.n+col])
			}
		}
	}
}

// Count returns the number of cells in state s
func (g *Grid) Count(s CellState) int {
	count := 0
	for _, face := range g.cells {
		for _, c := range face {
			if c == s {
				count++
			}
		}
	}
	return count
}

// Clone returns a deep copy
func (g *Grid) Clone() *Grid {
	c := &Grid{n: g.n, radius: g.radius, depth: g.depth, walls: g.walls}
	for f := range g.cells {
		c.cells[f] = append([]CellState(nil), g.cells[f]...)
	}
	return c
}

// Cells returns the addresses of every cell in state s, in storage order
func (g *Grid) Cells(s CellState) []Cell {
	var out []Cell
	g.Each(func(f Face, row, col int, cs CellState) {
		if cs == s {
			out = append(out, Cell{f, row, col})
		}
	})
	return out
}

// Walls is shorthand for Cells(Wall)
func (g *Grid) Walls() []Cell { return g.Cells(Wall) }

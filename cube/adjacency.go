package cube

import "fmt"

// Link describes where a step across one face edge lands
// Entry is the edge of the target face the step comes in through
// Reversed flips the coordinate running along the shared edge
type Link struct {
	Face     Face
	Entry    Edge
	Reversed bool
}

// adjacency is the single source of truth for face seams, indexed [face][edge]
// Derived from the face embeddings in mapper.go; every entry is paired with a
// reciprocal entry on the target face that carries the same Reversed flag
var adjacency = [FaceCount][EdgeCount]Link{
	Front: {
		North: {Bottom, South, false},
		South: {Top, North, false},
		West:  {Left, East, false},
		East:  {Right, West, false},
	},
	Back: {
		North: {Bottom, North, true},
		South: {Top, South, true},
		West:  {Right, East, false},
		East:  {Left, West, false},
	},
	Left: {
		North: {Bottom, West, false},
		South: {Top, West, true},
		West:  {Back, East, false},
		East:  {Front, West, false},
	},
	Right: {
		North: {Bottom, East, true},
		South: {Top, East, false},
		West:  {Front, East, false},
		East:  {Back, West, false},
	},
	Top: {
		North: {Front, South, false},
		South: {Back, South, true},
		West:  {Left, South, true},
		East:  {Right, South, false},
	},
	Bottom: {
		North: {Back, North, true},
		South: {Front, North, false},
		West:  {Left, North, false},
		East:  {Right, North, true},
	},
}

// Adjacent returns the seam entry for a face edge
func Adjacent(f Face, e Edge) Link {
	return adjacency[f][e]
}

// along extracts the coordinate that runs parallel to an edge
func along(e Edge, row, col int) int {
	if e == North || e == South {
		return col
	}
	return row
}

// cross steps off face f through edge e at along-edge index t and returns the
// boundary cell of the adjacent face that the step lands on
func cross(n int, f Face, e Edge, t int) (Face, int, int) {
	link := adjacency[f][e]
	t = clamp(t, n)
	if link.Reversed {
		t = n - 1 - t
	}

	switch link.Entry {
	case North:
		return link.Face, 0, t
	case South:
		return link.Face, n - 1, t
	case West:
		return link.Face, t, 0
	default:
		return link.Face, t, n - 1
	}
}

// boundary returns the cell of face f adjacent to edge e at along index t
func boundary(n int, e Edge, t int) (row, col int) {
	switch e {
	case North:
		return 0, t
	case South:
		return n - 1, t
	case West:
		return t, 0
	default:
		return t, n - 1
	}
}

// VerifyAdjacency checks that every seam is reciprocal for resolution n:
// crossing an edge and stepping back across the entry edge returns to the
// starting boundary cell
func VerifyAdjacency(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidResolution, n)
	}

	for _, f := range Faces {
		for _, e := range Edges {
			link := adjacency[f][e]
			back := adjacency[link.Face][link.Entry]
			if back.Face != f || back.Entry != e || back.Reversed != link.Reversed {
				return fmt.Errorf("%w: %s.%s -> %s.%s not reciprocated (got %s.%s)",
					ErrAdjacency, f, e, link.Face, link.Entry, back.Face, back.Entry)
			}

			for t := 0; t < n; t++ {
				tf, tr, tc := cross(n, f, e, t)
				rf, rr, rc := cross(n, tf, link.Entry, along(link.Entry, tr, tc))
				wr, wc := boundary(n, e, t)
				if rf != f || rr != wr || rc != wc {
					return fmt.Errorf("%w: %s.%s[%d] round trip landed on %s[%d][%d], want %s[%d][%d]",
						ErrAdjacency, f, e, t, rf, rr, rc, f, wr, wc)
				}
			}
		}
	}
	return nil
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

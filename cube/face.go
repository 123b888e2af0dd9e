package cube

import "fmt"

// Face identifies one of the six grid sheets of the cube-sphere
type Face uint8

const (
	Front Face = iota
	Back
	Left
	Right
	Top
	Bottom
	FaceCount
)

var faceNames = [FaceCount]string{"front", "back", "left", "right", "top", "bottom"}

// Faces lists all faces in storage order
var Faces = [FaceCount]Face{Front, Back, Left, Right, Top, Bottom}

// Valid reports whether f is one of the six faces
func (f Face) Valid() bool { return f < FaceCount }

func (f Face) String() string {
	if !f.Valid() {
		return fmt.Sprintf("face(%d)", uint8(f))
	}
	return faceNames[f]
}

// ParseFace resolves a lowercase face name
func ParseFace(name string) (Face, error) {
	for i, n := range faceNames {
		if n == name {
			return Face(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidFace, name)
}

// Edge is one side of a face grid
// North is row -1, South is row N, West is col -1, East is col N
type Edge uint8

const (
	North Edge = iota
	South
	West
	East
	EdgeCount
)

var edgeNames = [EdgeCount]string{"north", "south", "west", "east"}

func (e Edge) String() string {
	if e >= EdgeCount {
		return fmt.Sprintf("edge(%d)", uint8(e))
	}
	return edgeNames[e]
}

// Step returns the row/col delta of moving across the edge
func (e Edge) Step() (dr, dc int) {
	switch e {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case West:
		return 0, -1
	case East:
		return 0, 1
	}
	return 0, 0
}

// Edges lists all edges in table order
var Edges = [EdgeCount]Edge{North, South, West, East}

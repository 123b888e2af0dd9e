package cube

import "errors"

// CellState is the occupancy of one grid cell
type CellState uint8

const (
	Empty CellState = iota
	Wall
	Item
)

func (s CellState) String() string {
	switch s {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	case Item:
		return "item"
	}
	return "unknown"
}

// Passable reports whether the observer may occupy a cell of this state
func (s CellState) Passable() bool { return s != Wall }

// Sentinel errors
var (
	ErrInvalidFace       = errors.New("invalid face")
	ErrInvalidResolution = errors.New("invalid grid resolution")
	ErrInvalidGeometry   = errors.New("invalid sphere geometry")
	ErrAdjacency         = errors.New("adjacency table inconsistent")
)

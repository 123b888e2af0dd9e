// Package level reads and writes per-face map files.
//
// A face file is comma separated, one grid row per line. The stored meaning
// is inverted relative to the literal digit: 0 is a wall, 1 is open floor,
// 9 holds an item. Anything else, including tokens that fail to parse as a
// number, reads as 0 and so becomes a wall. Each face may be rotated by a
// multiple of 90 degrees on load so map files can be authored in a single
// orientation.
package level

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lixenwraith/cubeworld/cube"
)

// ErrRotation reports a rotation that is not a multiple of 90 degrees
var ErrRotation = errors.New("rotation must be a multiple of 90")

// File literal values
const (
	ValueWall  = 0
	ValueEmpty = 1
	ValueItem  = 9
)

// FaceFile names the map file for one face and its load rotation
type FaceFile struct {
	Face     cube.Face
	File     string
	Rotation int // Degrees, any multiple of 90 including negatives
}

// DefaultFiles returns the conventional file names and rotations
func DefaultFiles() []FaceFile {
	return []FaceFile{
		{cube.Front, "map_front.csv", 180},
		{cube.Back, "map_back.csv", 0},
		{cube.Right, "map_right.csv", 90},
		{cube.Left, "map_left.csv", -90},
		{cube.Top, "map_top.csv", 0},
		{cube.Bottom, "map_bottom.csv", 0},
	}
}

// NormalizeRotation maps a rotation into {0, 90, 180, 270}
func NormalizeRotation(deg int) (int, error) {
	if deg%90 != 0 {
		return 0, fmt.Errorf("%w: %d", ErrRotation, deg)
	}
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	return deg, nil
}

// rotate maps a file position to a grid position
func rotate(n, rot, row, col int) (int, int) {
	switch rot {
	case 90:
		return col, n - 1 - row
	case 180:
		return n - 1 - row, n - 1 - col
	case 270:
		return n - 1 - col, row
	}
	return row, col
}

// Decode converts a literal file value to a cell state
func Decode(v int) cube.CellState {
	switch v {
	case ValueWall:
		return cube.Wall
	case ValueItem:
		return cube.Item
	}
	return cube.Empty
}

// Encode converts a cell state to its literal file value
func Encode(s cube.CellState) int {
	switch s {
	case cube.Wall:
		return ValueWall
	case cube.Item:
		return ValueItem
	}
	return ValueEmpty
}

// ParseFace reads one face from r into g. Rows and columns beyond N are
// ignored; cells the file does not cover keep their current state. The face
// is only written once the whole file has parsed, so on error it is left
// unchanged.
func ParseFace(r io.Reader, g *cube.Grid, face cube.Face, rotation int) error {
	rot, err := NormalizeRotation(rotation)
	if err != nil {
		return err
	}
	if !face.Valid() {
		return fmt.Errorf("%w: %d", cube.ErrInvalidFace, face)
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true
	// Stray quotes become bad tokens, which read as 0
	cr.LazyQuotes = true

	n := g.N()
	staged := make([]cube.CellState, n*n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			staged[row*n+col], _ = g.CellAt(face, row, col)
		}
	}

	for row := 0; row < n; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("%s row %d: %w", face, row, err)
		}
		for col, tok := range rec {
			if col >= n {
				break
			}
			v, err := strconv.Atoi(strings.TrimSpace(tok))
			if err != nil {
				v = 0
			}
			tr, tc := rotate(n, rot, row, col)
			staged[tr*n+tc] = Decode(v)
		}
	}

	for i, s := range staged {
		if err := g.Set(face, i/n, i%n, s); err != nil {
			return err
		}
	}
	return nil
}

// LoadFace reads one face from a file
func LoadFace(path string, g *cube.Grid, face cube.Face, rotation int) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return ParseFace(f, g, face, rotation)
}

// Load reads every listed face from dir into g. Missing or unreadable files
// are logged and skipped, leaving that face as it was. It returns the number
// of faces loaded.
func Load(dir string, files []FaceFile, g *cube.Grid) int {
	loaded := 0
	for _, ff := range files {
		if ff.File == "" {
			continue
		}
		path := ff.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		if err := LoadFace(path, g, ff.Face, ff.Rotation); err != nil {
			log.Printf("level: face %s not loaded: %v", ff.Face, err)
			continue
		}
		loaded++
	}
	return loaded
}

// WriteFace writes one face of g so that ParseFace with the same rotation
// reproduces it
func WriteFace(w io.Writer, g *cube.Grid, face cube.Face, rotation int) error {
	rot, err := NormalizeRotation(rotation)
	if err != nil {
		return err
	}
	if !face.Valid() {
		return fmt.Errorf("%w: %d", cube.ErrInvalidFace, face)
	}

	cw := csv.NewWriter(w)
	n := g.N()
	rec := make([]string, n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			tr, tc := rotate(n, rot, row, col)
			s, err := g.CellAt(face, tr, tc)
			if err != nil {
				return err
			}
			rec[col] = strconv.Itoa(Encode(s))
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Save writes every listed face into dir, creating it if needed
func Save(dir string, files []FaceFile, g *cube.Grid) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for _, ff := range files {
		if err := saveFace(filepath.Join(dir, ff.File), g, ff); err != nil {
			return err
		}
	}
	return nil
}

func saveFace(path string, g *cube.Grid, ff FaceFile) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteFace(f, g, ff.Face, ff.Rotation); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

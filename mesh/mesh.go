// Package mesh loads the decorative triangle models attached to items.
//
// The file format is whitespace separated:
//
//	VERTEX = 3
//	0 0 0
//	1 0 0
//	0 1 0
//	FACE = 1
//	0 1 2
//
// Face indices may be 0-based or 1-based; the base is detected per file.
package mesh

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/cubeworld/parameter"
)

// ErrMalformed reports a file that does not follow the model format
var ErrMalformed = errors.New("malformed model")

// Mesh is an indexed triangle list with 0-based indices
type Mesh struct {
	Vertices  []mgl64.Vec3
	Triangles [][3]int
}

// Empty reports whether the mesh has nothing to draw
func (m *Mesh) Empty() bool {
	return m == nil || len(m.Triangles) == 0
}

// Bounds returns the axis-aligned bounding box; zero vectors when empty
func (m *Mesh) Bounds() (lo, hi mgl64.Vec3) {
	if m == nil || len(m.Vertices) == 0 {
		return
	}
	lo, hi = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		for i := 0; i < 3; i++ {
			lo[i] = math.Min(lo[i], v[i])
			hi[i] = math.Max(hi[i], v[i])
		}
	}
	return lo, hi
}

// FitScale returns the factor that scales the largest extent to size
func (m *Mesh) FitScale(size float64) float64 {
	lo, hi := m.Bounds()
	ext := hi.Sub(lo)
	longest := math.Max(ext[0], math.Max(ext[1], ext[2]))
	if longest == 0 {
		return 1
	}
	return size / longest
}

// Load reads a model file. A missing or unreadable file returns an empty
// mesh together with the error.
func Load(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return &Mesh{}, err
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return &Mesh{}, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// LoadOrEmpty loads a model, logging a warning and returning an empty mesh
// on any failure
func LoadOrEmpty(path string) *Mesh {
	if path == "" {
		return &Mesh{}
	}
	m, err := Load(path)
	if err != nil {
		log.Printf("mesh: using empty model: %v", err)
	}
	return m
}

// Parse decodes a model from r
func Parse(r io.Reader) (*Mesh, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	p := &parser{sc: sc}

	nv, err := p.header("VERTEX", parameter.MaxModelVertices)
	if err != nil {
		return nil, err
	}
	m := &Mesh{}
	for i := 0; i < nv; i++ {
		var v mgl64.Vec3
		for k := 0; k < 3; k++ {
			if v[k], err = p.number(); err != nil {
				return nil, fmt.Errorf("vertex %d: %w", i, err)
			}
		}
		m.Vertices = append(m.Vertices, v)
	}

	nf, err := p.header("FACE", parameter.MaxModelFaces)
	if err != nil {
		return nil, err
	}
	for i := 0; i < nf; i++ {
		var t [3]int
		for k := 0; k < 3; k++ {
			if t[k], err = p.index(); err != nil {
				return nil, fmt.Errorf("face %d: %w", i, err)
			}
		}
		m.Triangles = append(m.Triangles, t)
	}

	if err := m.rebase(); err != nil {
		return nil, err
	}
	return m, nil
}

// rebase converts 1-based indices to 0-based and range checks them
// A file is 1-based when no index is 0 and some index equals the vertex count.
func (m *Mesh) rebase() error {
	n := len(m.Vertices)
	sawZero, sawN := false, false
	for _, t := range m.Triangles {
		for _, idx := range t {
			sawZero = sawZero || idx == 0
			sawN = sawN || idx == n
		}
	}

	shift := 0
	if !sawZero && sawN {
		shift = 1
	}
	for i := range m.Triangles {
		for k := range m.Triangles[i] {
			idx := m.Triangles[i][k] - shift
			if idx < 0 || idx >= n {
				return fmt.Errorf("%w: face %d index %d out of range for %d vertices",
					ErrMalformed, i, m.Triangles[i][k], n)
			}
			m.Triangles[i][k] = idx
		}
	}
	return nil
}

type parser struct {
	sc *bufio.Scanner
}

func (p *parser) next() (string, error) {
	if !p.sc.Scan() {
		if err := p.sc.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("%w: unexpected end of file", ErrMalformed)
	}
	return p.sc.Text(), nil
}

// header reads "KEY = n", also accepting "KEY=n", "KEY= n" and "KEY n";
// n must not exceed limit
func (p *parser) header(key string, limit int) (int, error) {
	tok, err := p.next()
	if err != nil {
		return 0, err
	}
	if !strings.HasPrefix(strings.ToUpper(tok), key) {
		return 0, fmt.Errorf("%w: expected %s, got %q", ErrMalformed, key, tok)
	}

	rest := strings.TrimPrefix(tok[len(key):], "=")
	if rest == "" {
		if rest, err = p.next(); err != nil {
			return 0, err
		}
		if rest == "=" {
			if rest, err = p.next(); err != nil {
				return 0, err
			}
		} else {
			rest = strings.TrimPrefix(rest, "=")
		}
	}

	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: bad %s count %q", ErrMalformed, key, rest)
	}
	if n > limit {
		return 0, fmt.Errorf("%w: %s count %d exceeds %d", ErrMalformed, key, n, limit)
	}
	return n, nil
}

func (p *parser) number() (float64, error) {
	tok, err := p.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad number %q", ErrMalformed, tok)
	}
	return v, nil
}

func (p *parser) index() (int, error) {
	tok, err := p.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: bad index %q", ErrMalformed, tok)
	}
	return v, nil
}

package maze

import (
	"log"

	"github.com/lixenwraith/cubeworld/cube"
)

// CubeConfig controls whole-sphere generation
type CubeConfig struct {
	Braiding float64
	Seed     int64 // 0 = time based
	Items    bool  // Place one item per face at its farthest passage
}

// GenerateCube fills every face of g with an independent maze whose border
// ring is open, so corridors meet across seams. The cells around the Bottom
// centre, where the observer stands, are cleared. It returns the item cells
// placed.
func GenerateCube(g *cube.Grid, cfg CubeConfig) []cube.Cell {
	n := g.N()
	seed := seedOf(cfg.Seed)
	var items []cube.Cell
	var starts [cube.FaceCount]cube.Cell

	for i, f := range cube.Faces {
		if n < 3 {
			g.Fill(f, cube.Empty)
			continue
		}
		res := Generate(Config{
			Size:       n,
			Braiding:   cfg.Braiding,
			OpenBorder: true,
			Seed:       seed + int64(i),
		})
		starts[f] = cube.Cell{Face: f, Row: res.Start.Y, Col: res.Start.X}
		for y, row := range res.Layout {
			for x, wall := range row {
				s := cube.Empty
				if wall {
					s = cube.Wall
				}
				setCell(g, cube.Cell{Face: f, Row: y, Col: x}, s)
			}
		}
	}

	clearSpawn(g)

	if !cfg.Items || n < 3 {
		return nil
	}
	for _, f := range cube.Faces {
		far, ok := cube.Farthest(g, starts[f])
		if !ok || far == starts[f] {
			continue
		}
		setCell(g, far, cube.Item)
		items = append(items, far)
	}

	if len(items) > 0 {
		reach := cube.Reachable(g, SpawnCell(g))
		for _, it := range items {
			if !reach.Has(it) {
				log.Printf("maze: item at %s[%d][%d] is not reachable from spawn", it.Face, it.Row, it.Col)
			}
		}
	}
	return items
}

// SpawnCell is the Bottom cell nearest the south pole
func SpawnCell(g *cube.Grid) cube.Cell {
	c := g.N() / 2
	return cube.Cell{Face: cube.Bottom, Row: c, Col: c}
}

// clearSpawn opens the cells touching the south pole. For even N the pole
// sits on the corner shared by four cells.
func clearSpawn(g *cube.Grid) {
	n := g.N()
	lo, hi := n/2, n/2
	if n%2 == 0 {
		lo = n/2 - 1
	}
	for r := lo; r <= hi; r++ {
		for c := lo; c <= hi; c++ {
			setCell(g, cube.Cell{Face: cube.Bottom, Row: r, Col: c}, cube.Empty)
		}
	}
}

func setCell(g *cube.Grid, c cube.Cell, s cube.CellState) {
	if err := g.Set(c.Face, c.Row, c.Col, s); err != nil {
		log.Printf("maze: setting %s[%d][%d]: %v", c.Face, c.Row, c.Col, err)
	}
}

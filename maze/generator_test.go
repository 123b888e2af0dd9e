package maze

import (
	"testing"

	"github.com/lixenwraith/cubeworld/cube"
)

func countPassages(l Layout) int {
	n := 0
	for _, row := range l {
		for _, v := range row {
			if v == Passage {
				n++
			}
		}
	}
	return n
}

// countLinks counts orthogonally adjacent passage pairs
func countLinks(l Layout) int {
	n := 0
	for y := range l {
		for x := range l[y] {
			if l[y][x] != Passage {
				continue
			}
			if l.passage(x+1, y) {
				n++
			}
			if l.passage(x, y+1) {
				n++
			}
		}
	}
	return n
}

func TestGenerateClosedBorder(t *testing.T) {
	res := Generate(Config{Size: 11, Seed: 7})
	l := res.Layout

	if len(l) != 11 || len(l[0]) != 11 {
		t.Fatalf("Expected 11x11 layout, got %dx%d", len(l[0]), len(l))
	}
	for i := 0; i < 11; i++ {
		if !l[0][i] || !l[10][i] || !l[i][0] || !l[i][10] {
			t.Fatalf("Expected closed border, found passage on ring at index %d", i)
		}
	}
	if res.Path == nil {
		t.Fatal("Expected a route from start to end")
	}
	if res.Path[0] != res.Start || res.Path[len(res.Path)-1] != res.End {
		t.Errorf("Expected path from %v to %v, got %v..%v", res.Start, res.End, res.Path[0], res.Path[len(res.Path)-1])
	}
	for i := 1; i < len(res.Path); i++ {
		a, b := res.Path[i-1], res.Path[i]
		if abs(a.X-b.X)+abs(a.Y-b.Y) != 1 {
			t.Errorf("Expected adjacent path steps, got %v -> %v", a, b)
		}
	}
}

func TestPerfectMazeIsTree(t *testing.T) {
	res := Generate(Config{Size: 15, Seed: 3})
	p, e := countPassages(res.Layout), countLinks(res.Layout)
	if e != p-1 {
		t.Errorf("Expected %d links for %d passages, got %d", p-1, p, e)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(Config{Size: 13, Braiding: 0.5, Seed: 99})
	b := Generate(Config{Size: 13, Braiding: 0.5, Seed: 99})
	for y := range a.Layout {
		for x := range a.Layout[y] {
			if a.Layout[y][x] != b.Layout[y][x] {
				t.Fatalf("Expected identical layouts for equal seeds, differ at (%d,%d)", x, y)
			}
		}
	}
}

func TestBraidingRemovesDeadEndsWithoutPlazas(t *testing.T) {
	perfect := Generate(Config{Size: 21, Seed: 11})
	braided := Generate(Config{Size: 21, Braiding: 1, Seed: 11})

	if got, was := len(braided.Layout.DeadEnds()), len(perfect.Layout.DeadEnds()); got > was {
		t.Errorf("Expected braiding not to add dead ends, got %d from %d", got, was)
	}
	if braided.Layout.Walls() > perfect.Layout.Walls() {
		t.Error("Expected braiding only to remove walls")
	}

	l := braided.Layout
	for y := 0; y+1 < len(l); y++ {
		for x := 0; x+1 < len(l[y]); x++ {
			if l.passage(x, y) && l.passage(x+1, y) && l.passage(x, y+1) && l.passage(x+1, y+1) {
				t.Errorf("Expected no 2x2 plaza, found one at (%d,%d)", x, y)
			}
		}
	}
}

func TestGenerateOpenBorderEvenSize(t *testing.T) {
	res := Generate(Config{Size: 10, OpenBorder: true, Seed: 5})
	l := res.Layout
	if len(l) != 10 {
		t.Fatalf("Expected 10 rows, got %d", len(l))
	}
	for i := 0; i < 10; i++ {
		if l[0][i] || l[9][i] || l[i][0] || l[i][9] {
			t.Fatalf("Expected open ring, found wall on ring at index %d", i)
		}
	}
	if l[res.Start.Y][res.Start.X] != Passage {
		t.Error("Expected start to be open")
	}
	if res.Path == nil {
		t.Error("Expected a route to the border")
	}
}

func TestSolveBlocked(t *testing.T) {
	l := newLayout(5, Wall)
	l[1][1] = Passage
	l[3][3] = Passage
	if path := l.Solve(Point{1, 1}, Point{3, 3}); path != nil {
		t.Errorf("Expected nil path, got %v", path)
	}
	if path := l.Solve(Point{0, 0}, Point{1, 1}); path != nil {
		t.Errorf("Expected nil path from a wall, got %v", path)
	}
}

func TestGenerateCubeConnectsFaces(t *testing.T) {
	for _, n := range []int{10, 11} {
		g, err := cube.NewGrid(n, 40, 3)
		if err != nil {
			t.Fatal(err)
		}
		items := GenerateCube(g, CubeConfig{Braiding: 0.2, Seed: 21, Items: true})

		if len(items) != int(cube.FaceCount) {
			t.Errorf("n=%d: expected one item per face, got %d", n, len(items))
		}
		for _, it := range items {
			if s, _ := g.CellAt(it.Face, it.Row, it.Col); s != cube.Item {
				t.Errorf("n=%d: expected Item at %v, got %s", n, it, s)
			}
		}
		if g.Count(cube.Wall) == 0 {
			t.Errorf("n=%d: expected walls", n)
		}

		spawn := SpawnCell(g)
		if s, _ := g.CellAt(spawn.Face, spawn.Row, spawn.Col); s != cube.Empty {
			t.Errorf("n=%d: expected open spawn, got %s", n, s)
		}

		reach := cube.Reachable(g, spawn)
		open := g.Count(cube.Empty) + g.Count(cube.Item)
		if reach.Size() != open {
			t.Errorf("n=%d: expected all %d open cells reachable, got %d", n, open, reach.Size())
		}
	}
}

func TestGenerateCubeDeterministicWithoutItems(t *testing.T) {
	a, _ := cube.NewGrid(9, 40, 3)
	b, _ := cube.NewGrid(9, 40, 3)
	if items := GenerateCube(a, CubeConfig{Seed: 4}); items != nil {
		t.Errorf("Expected no items, got %v", items)
	}
	GenerateCube(b, CubeConfig{Seed: 4})

	wa, wb := a.Walls(), b.Walls()
	if len(wa) != len(wb) {
		t.Fatalf("Expected equal wall counts, got %d and %d", len(wa), len(wb))
	}
	for i := range wa {
		if wa[i] != wb[i] {
			t.Fatalf("Expected identical walls, differ at %d: %v vs %v", i, wa[i], wb[i])
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

package maze

import (
	"math/rand"
	"time"

	"github.com/zyedidia/generic/mapset"
)

// Layout cell values
const (
	Wall    = true
	Passage = false
)

// Point is a layout position, X along columns and Y along rows
type Point struct {
	X, Y int
}

// Layout is a row-major wall map
type Layout [][]bool

// Config controls a single square face layout
type Config struct {
	// Size is the face resolution. Even sizes carve an odd maze one smaller
	// and pad the last row and column with passage.
	Size int

	// Braiding: 0.0 (perfect maze, a tree) to 1.0 (no dead ends).
	// Plaza and pillar constraints take precedence.
	Braiding float64

	// OpenBorder clears the outer ring so corridors continue across seams
	OpenBorder bool

	Seed int64 // 0 = time based
}

// Result is a generated layout with its default route
type Result struct {
	Layout     Layout
	Start, End Point
	Path       []Point
}

var (
	jumps = []Point{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}
	steps = []Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
)

// Generate carves a layout with a recursive backtracker, optionally opens the
// border ring, braids dead ends and solves start to end
func Generate(cfg Config) Result {
	size := cfg.Size
	if size < 3 {
		size = 3
	}
	carve := ensureOdd(size)

	rng := rand.New(rand.NewSource(seedOf(cfg.Seed)))

	l := newLayout(size, Wall)
	inner := newLayout(carve, Wall)

	start := Point{1, 1}
	end := Point{carve - 2, carve - 2}
	if cfg.OpenBorder {
		// Start at the centre, finish on the east border
		start = Point{(carve / 2) | 1, (carve / 2) | 1}
		end = Point{size - 1, (carve / 2) | 1}
	}

	backtrack(inner, start, rng)

	// Border is cleared before braiding so edge rooms count their exits
	// through the open ring
	if cfg.OpenBorder {
		inner.fillBorder(Passage)
	}
	if cfg.Braiding > 0 {
		braid(inner, cfg.Braiding, rng)
	}

	for y := range inner {
		copy(l[y], inner[y])
	}
	if size != carve {
		pad := Wall
		if cfg.OpenBorder {
			pad = Passage
		}
		for i := 0; i < size; i++ {
			l[size-1][i] = pad
			l[i][size-1] = pad
		}
	}

	l.open(start)
	l.open(end)

	return Result{
		Layout: l,
		Start:  start,
		End:    end,
		Path:   l.Solve(start, end),
	}
}

func seedOf(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

func newLayout(size int, fill bool) Layout {
	l := make(Layout, size)
	for y := range l {
		l[y] = make([]bool, size)
		for x := range l[y] {
			l[y][x] = fill
		}
	}
	return l
}

func (l Layout) rows() int { return len(l) }
func (l Layout) cols() int { return len(l[0]) }

func (l Layout) inside(x, y int) bool {
	return x >= 0 && x < l.cols() && y >= 0 && y < l.rows()
}

// passage reads out-of-bounds as wall
func (l Layout) passage(x, y int) bool {
	return l.inside(x, y) && l[y][x] == Passage
}

func (l Layout) fillBorder(v bool) {
	rows, cols := l.rows(), l.cols()
	for x := 0; x < cols; x++ {
		l[0][x] = v
		l[rows-1][x] = v
	}
	for y := 0; y < rows; y++ {
		l[y][0] = v
		l[y][cols-1] = v
	}
}

// Walls counts wall cells
func (l Layout) Walls() int {
	n := 0
	for _, row := range l {
		for _, v := range row {
			if v == Wall {
				n++
			}
		}
	}
	return n
}

// backtrack grows a uniform spanning tree over odd rooms, leaving a one cell
// wall border
func backtrack(l Layout, start Point, rng *rand.Rand) {
	rows, cols := l.rows(), l.cols()
	if start.X <= 0 || start.X >= cols-1 || start.Y <= 0 || start.Y >= rows-1 {
		start = Point{1, 1}
	}

	stack := []Point{start}
	l[start.Y][start.X] = Passage

	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		var options []Point
		for _, d := range jumps {
			nx, ny := curr.X+d.X, curr.Y+d.Y
			if nx > 0 && nx < cols-1 && ny > 0 && ny < rows-1 && l[ny][nx] == Wall {
				options = append(options, d)
			}
		}

		if len(options) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		d := options[rng.Intn(len(options))]
		l[curr.Y+d.Y/2][curr.X+d.X/2] = Passage
		next := Point{curr.X + d.X, curr.Y + d.Y}
		l[next.Y][next.X] = Passage
		stack = append(stack, next)
	}
}

// braid knocks through one wall of each dead end room with the given
// probability, refusing walls whose removal would open a 2x2 plaza or leave
// a free-standing pillar
func braid(l Layout, probability float64, rng *rand.Rand) {
	for _, room := range l.DeadEnds() {
		if rng.Float64() >= probability {
			continue
		}
		var options []Point
		for _, d := range jumps {
			nx, ny := room.X+d.X, room.Y+d.Y
			wx, wy := room.X+d.X/2, room.Y+d.Y/2
			if l.passage(nx, ny) && l[wy][wx] == Wall && l.safeToOpen(wx, wy) {
				options = append(options, Point{wx, wy})
			}
		}
		if len(options) > 0 {
			w := options[rng.Intn(len(options))]
			l[w.Y][w.X] = Passage
		}
	}
}

// DeadEnds returns the odd rooms with exactly one open side
func (l Layout) DeadEnds() []Point {
	var out []Point
	for y := 1; y < l.rows()-1; y += 2 {
		for x := 1; x < l.cols()-1; x += 2 {
			if l[y][x] == Wall {
				continue
			}
			exits := 0
			for _, d := range steps {
				if l.passage(x+d.X, y+d.Y) {
					exits++
				}
			}
			if exits == 1 {
				out = append(out, Point{x, y})
			}
		}
	}
	return out
}

func (l Layout) safeToOpen(x, y int) bool {
	// Plazas: any 2x2 block containing (x, y) that is otherwise open
	for _, q := range [][3]Point{
		{{-1, -1}, {0, -1}, {-1, 0}},
		{{0, -1}, {1, -1}, {1, 0}},
		{{-1, 0}, {-1, 1}, {0, 1}},
		{{1, 0}, {0, 1}, {1, 1}},
	} {
		if l.passage(x+q[0].X, y+q[0].Y) && l.passage(x+q[1].X, y+q[1].Y) && l.passage(x+q[2].X, y+q[2].Y) {
			return false
		}
	}

	// Pillars: a neighbouring wall left with no other wall beside it
	for _, d := range steps {
		nx, ny := x+d.X, y+d.Y
		if !l.inside(nx, ny) || l[ny][nx] != Wall {
			continue
		}
		links := 0
		for _, d2 := range steps {
			mx, my := nx+d2.X, ny+d2.Y
			if mx == x && my == y {
				continue
			}
			if l.inside(mx, my) && l[my][mx] == Wall {
				links++
			}
		}
		if links == 0 {
			return false
		}
	}
	return true
}

// open forces p to passage and, if that leaves it sealed, opens one
// interior neighbour
func (l Layout) open(p Point) {
	if !l.inside(p.X, p.Y) {
		return
	}
	l[p.Y][p.X] = Passage
	for _, d := range steps {
		if l.passage(p.X+d.X, p.Y+d.Y) {
			return
		}
	}
	for _, d := range steps {
		nx, ny := p.X+d.X, p.Y+d.Y
		if nx > 0 && nx < l.cols()-1 && ny > 0 && ny < l.rows()-1 {
			l[ny][nx] = Passage
			return
		}
	}
}

// Solve returns the shortest passage route from start to end inclusive, or
// nil when none exists
func (l Layout) Solve(start, end Point) []Point {
	if !l.passage(start.X, start.Y) || !l.passage(end.X, end.Y) {
		return nil
	}

	visited := mapset.New[Point]()
	visited.Put(start)
	from := make(map[Point]Point)
	queue := []Point{start}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		if curr == end {
			var path []Point
			for p := end; p != start; p = from[p] {
				path = append(path, p)
			}
			path = append(path, start)
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}
		for _, d := range steps {
			next := Point{curr.X + d.X, curr.Y + d.Y}
			if !l.passage(next.X, next.Y) || visited.Has(next) {
				continue
			}
			visited.Put(next)
			from[next] = curr
			queue = append(queue, next)
		}
	}
	return nil
}

func ensureOdd(n int) int {
	if n < 3 {
		return 3
	}
	if n%2 == 0 {
		return n - 1
	}
	return n
}

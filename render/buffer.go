package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// Cell is one terminal cell in the frame being composed
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Buffer composes a frame off-screen with a per-cell depth test, then
// flushes it to the screen in one pass
type Buffer struct {
	cells  []Cell
	depth  []float64
	width  int
	height int
	blank  Cell
}

// NewBuffer creates a buffer filled with blank
func NewBuffer(width, height int, blank Cell) *Buffer {
	b := &Buffer{blank: blank}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.depth = make([]float64, size)
	} else {
		b.cells = b.cells[:size]
		b.depth = b.depth[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to blank at infinite depth using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = b.blank
	b.depth[0] = math.Inf(1)
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.depth); filled *= 2 {
		copy(b.depth[filled:], b.depth[:filled])
	}
}

func (b *Buffer) Bounds() (int, int) { return b.width, b.height }

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes a cell unconditionally, in front of anything plotted
func (b *Buffer) Set(x, y int, r rune, style tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx] = Cell{Rune: r, Style: style}
	b.depth[idx] = 0
}

// Plot writes a cell only if it is nearer than what the cell holds
func (b *Buffer) Plot(x, y int, depth float64, r rune, style tcell.Style) bool {
	if !b.inBounds(x, y) {
		return false
	}
	idx := y*b.width + x
	if depth >= b.depth[idx] {
		return false
	}
	b.cells[idx] = Cell{Rune: r, Style: style}
	b.depth[idx] = depth
	return true
}

// Get returns the cell at x, y; out of range yields blank
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return b.blank
	}
	return b.cells[y*b.width+x]
}

// Text writes s from x, clipped to the buffer, and returns the column after it
func (b *Buffer) Text(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		b.Set(x, y, r, style)
		x++
	}
	return x
}

// Flush writes every cell to screen. The caller shows the screen.
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			screen.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
}

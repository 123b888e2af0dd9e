package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cubeworld/constant"
	"github.com/lixenwraith/cubeworld/cube"
	"github.com/lixenwraith/cubeworld/parameter"
	"github.com/lixenwraith/cubeworld/world"
)

// minimapSize is the footprint of the face map including its title row
func minimapSize(n int) (w, h int) {
	return n * parameter.MinimapCellWidth, n + 1
}

// drawMinimap draws the face under the observer in the top right corner.
// It is skipped when the buffer cannot hold it beside the view.
func drawMinimap(b *Buffer, s world.Snapshot, maxHeight int) {
	if !s.HereKnown {
		return
	}
	n := s.Grid.N()
	mw, mh := minimapSize(n)
	width, _ := b.Bounds()
	if mw > width/2 || mh > maxHeight {
		return
	}
	x0 := width - mw

	bg := tcell.StyleDefault.Background(constant.ColorMinimapBg)
	title := strings.ToUpper(s.Here.Face.String())
	for x := x0; x < width; x++ {
		b.Set(x, 0, ' ', bg.Foreground(constant.ColorHUD))
	}
	b.Text(x0, 0, title, bg.Foreground(constant.ColorHUD))

	face := s.Here.Face
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			st, _ := s.Grid.CellAt(face, row, col)
			r, style := minimapGlyph(st, bg)
			if row == s.Here.Row && col == s.Here.Col {
				r, style = constant.GlyphObserver, bg.Foreground(constant.ColorObserver)
			}
			for k := 0; k < parameter.MinimapCellWidth; k++ {
				b.Set(x0+col*parameter.MinimapCellWidth+k, 1+row, r, style)
			}
		}
	}
}

func minimapGlyph(st cube.CellState, bg tcell.Style) (rune, tcell.Style) {
	switch st {
	case cube.Wall:
		return constant.GlyphWallTop, bg.Foreground(constant.ColorWallSide)
	case cube.Item:
		return constant.GlyphItem, bg.Foreground(constant.ColorItem)
	default:
		return ' ', bg
	}
}

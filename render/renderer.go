// Package render draws the world into a tcell screen: a first-person view of
// the rotated sphere, an outside view with the view frustum, a map of the
// face under the observer, and a status line.
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cubeworld/constant"
	"github.com/lixenwraith/cubeworld/world"
)

// Renderer owns the frame buffer between draws
type Renderer struct {
	buf          *Buffer
	ShowMinimap  bool
	ShowOverview bool
}

// NewRenderer creates a renderer with both panels shown
func NewRenderer() *Renderer {
	blank := Cell{Rune: ' ', Style: tcell.StyleDefault.Background(constant.ColorSky)}
	return &Renderer{buf: NewBuffer(0, 0, blank), ShowMinimap: true, ShowOverview: true}
}

// Buffer exposes the last composed frame
func (r *Renderer) Buffer() *Buffer { return r.buf }

// Draw composes one frame and writes it to screen. The caller calls Show.
func (r *Renderer) Draw(screen tcell.Screen, s world.Snapshot) {
	width, height := screen.Size()
	if w, h := r.buf.Bounds(); w != width || h != height {
		r.buf.Resize(width, height)
	} else {
		r.buf.Clear()
	}
	if width == 0 || height == 0 {
		return
	}

	viewHeight := height - 1
	drawScene(r.buf, s, viewHeight)
	if r.ShowOverview {
		drawOverview(r.buf, s, viewHeight)
	}
	if r.ShowMinimap {
		drawMinimap(r.buf, s, viewHeight)
	}
	drawHUD(r.buf, s, height-1)

	r.buf.Flush(screen)
}

package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cubeworld/constant"
	"github.com/lixenwraith/cubeworld/movement"
	"github.com/lixenwraith/cubeworld/world"
)

// statusLine formats the HUD text
func statusLine(s world.Snapshot) string {
	here := "?"
	if s.HereKnown {
		here = fmt.Sprintf("%s[%d][%d]", s.Here.Face, s.Here.Row, s.Here.Col)
	}
	smart := "off"
	if s.Smart {
		smart = "on"
	}
	last := "-"
	if s.Last.State != movement.Idle {
		last = fmt.Sprintf("%s:%s", s.Last.Direction, s.Last.State)
	}
	return fmt.Sprintf(" items %d/%d | %s | yaw %+.2f pitch %+.2f | %s | smart %s | drift %.1e | %s ",
		s.Score, s.Total, here, s.View.Yaw, s.View.Pitch, last, smart, s.Drift, s.Source)
}

// drawHUD fills row y with the status line; a blocked move shows in the
// alert color
func drawHUD(b *Buffer, s world.Snapshot, y int) {
	width, _ := b.Bounds()
	fg := constant.ColorHUD
	if s.Last.State == movement.RolledBack {
		fg = constant.ColorHUDAlert
	}
	style := tcell.StyleDefault.Foreground(fg).Background(constant.ColorMinimapBg)
	for x := 0; x < width; x++ {
		b.Set(x, y, ' ', style)
	}
	b.Text(0, y, statusLine(s), style)
}

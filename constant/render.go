package constant

import "github.com/gdamore/tcell/v2"

// View glyphs
const (
	GlyphWallTop  = '█'
	GlyphWallSide = '▓'
	GlyphFloor    = '·'
	GlyphItem     = '◆'
	GlyphObserver = '@'

	GlyphOverviewRim  = '.'
	GlyphOverviewWall = '#'
	GlyphOverviewItem = '*'
	GlyphFrustum      = '+'
)

// View colors
var (
	ColorSky       = tcell.NewRGBColor(16, 16, 24)
	ColorFloor     = tcell.NewRGBColor(70, 70, 70)
	ColorWallTop   = tcell.NewRGBColor(0, 255, 255)
	ColorWallSide  = tcell.NewRGBColor(0, 128, 128)
	ColorItem      = tcell.NewRGBColor(255, 204, 0)
	ColorObserver  = tcell.NewRGBColor(255, 80, 80)
	ColorHUD       = tcell.NewRGBColor(220, 220, 220)
	ColorHUDAlert  = tcell.NewRGBColor(255, 90, 90)
	ColorMinimapBg = tcell.NewRGBColor(30, 30, 30)
	ColorFrustum   = tcell.NewRGBColor(255, 255, 0)
)

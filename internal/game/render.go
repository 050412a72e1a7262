package game

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/robber-runaway/internal/core"
)

// Glyph is the terminal representation of a sprite.
type Glyph struct {
	Rune  rune
	Color core.Color
}

// DefaultGlyphs returns the built-in sprite table.
func DefaultGlyphs() map[Sprite]Glyph {
	return map[Sprite]Glyph{
		SpritePlayer:   {Rune: '$', Color: core.ColorBrightYellow},
		SpriteChaser:   {Rune: '@', Color: core.ColorBrightBlue},
		SpriteItem:     {Rune: '*', Color: core.ColorBrightGreen},
		SpriteObstacle: {Rune: '#', Color: core.ColorGray},
	}
}

var unknownGlyph = Glyph{Rune: '?', Color: core.ColorMagenta}

// Renderer draws a world into a screen buffer.
type Renderer struct {
	TileWidth int              // Screen columns per grid cell
	Glyphs    map[Sprite]Glyph // Sprite table, unknown sprites draw as '?'
}

// NewRenderer creates a renderer with the default sprite table.
func NewRenderer(tileWidth int) Renderer {
	return Renderer{TileWidth: max(1, tileWidth), Glyphs: DefaultGlyphs()}
}

// Rows returns the screen rows needed to draw w, HUD included.
func (r Renderer) Rows(w *World) int {
	return w.Height() + 1
}

// Cols returns the screen columns needed to draw the map of w.
func (r Renderer) Cols(w *World) int {
	return w.Width() * max(1, r.TileWidth)
}

// layer orders drawing so moving actors stay visible on top.
func layer(k Kind) int {
	switch k {
	case KindObstacle:
		return 0
	case KindItem:
		return 1
	case KindPlayer:
		return 2
	default:
		return 3
	}
}

// Render draws every live actor at its grid position times the tile size,
// then the HUD on the row below the map.
func (r Renderer) Render(w *World, dst *core.Screen) {
	dst.Clear()

	tileW := max(1, r.TileWidth)
	actors := w.Actors()
	sort.SliceStable(actors, func(i, j int) bool {
		return layer(actors[i].Kind()) < layer(actors[j].Kind())
	})

	for _, a := range actors {
		g, ok := r.Glyphs[a.Sprite()]
		if !ok {
			g = unknownGlyph
		}
		pos := a.Pos()
		col := core.FloorDiv(pos.X*tileW, SubCell)
		row := core.FloorDiv(pos.Y, SubCell)
		dst.SetWithColor(col, row, g.Rune, g.Color)
	}

	r.renderHUD(w, dst)
}

// renderHUD draws the status line. It never overlaps the map.
func (r Renderer) renderHUD(w *World, dst *core.Screen) {
	y := w.Height()
	hud := fmt.Sprintf(" Loot: %d/%d  Tick: %d", w.Collected(), w.Goal(), w.Ticks())
	dst.DrawTextWithColor(0, y, hud, core.ColorWhite)

	switch w.Status() {
	case StatusWon:
		dst.DrawTextWithColor(len(hud)+2, y, "You got away with it!", core.ColorBrightGreen)
	case StatusLost:
		dst.DrawTextWithColor(len(hud)+2, y, "Busted!", core.ColorBrightRed)
	}
}

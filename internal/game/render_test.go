package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/robber-runaway/internal/core"
)

func TestRenderPlacesGlyphs(t *testing.T) {
	p := NewPlayer(1, 0)
	w := newTestWorld(t, 6, 4, 3, NewObstacle(0, 0), p, NewChaser(4, 1), NewItem(2, 2))
	screen := core.NewScreen(12, 4)
	r := NewRenderer(2)

	r.Render(w, screen)

	tests := []struct {
		name string
		x, y int
		rune rune
	}{
		{"obstacle", 0, 0, '#'},
		{"player", 2, 0, '$'},
		{"chaser", 8, 1, '@'},
		{"item", 4, 2, '*'},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := screen.GetCell(tc.x, tc.y).Rune; got != tc.rune {
				t.Errorf("GetCell(%d, %d) = %q, expected %q", tc.x, tc.y, got, tc.rune)
			}
		})
	}

	if c := screen.GetCell(2, 0).Color; c != core.ColorBrightYellow {
		t.Errorf("player color = %v, expected bright yellow", c)
	}
}

func TestRenderHalfCellChaser(t *testing.T) {
	p := NewPlayer(0, 0)
	c := NewChaser(3, 0)
	w := newTestWorld(t, 5, 3, 1, p, c, NewItem(4, 1))
	screen := core.NewScreen(10, 3)
	r := NewRenderer(2)

	w.Tick(core.NewInputFrame())
	r.Render(w, screen)

	// Chaser at 2.5 cells draws at column 2.5 * tile width
	if got := screen.GetCell(5, 0).Rune; got != '@' {
		t.Errorf("GetCell(5, 0) = %q, expected '@'\n%s", got, screen.String())
	}
}

func TestRenderLayers(t *testing.T) {
	p := NewPlayer(1, 1)
	w := newTestWorld(t, 4, 4, 1, NewChaser(1, 1), p, NewItem(3, 3))
	screen := core.NewScreen(4, 4)
	r := NewRenderer(1)

	r.Render(w, screen)

	if got := screen.GetCell(1, 1).Rune; got != '@' {
		t.Errorf("GetCell(1, 1) = %q, expected chaser on top of player", got)
	}
}

func TestRenderUnknownSprite(t *testing.T) {
	p := NewPlayer(0, 0)
	w := newTestWorld(t, 3, 3, 1, p, NewItem(1, 0))
	screen := core.NewScreen(3, 3)
	r := NewRenderer(1)
	delete(r.Glyphs, SpriteItem)

	r.Render(w, screen)

	if got := screen.GetCell(1, 0).Rune; got != '?' {
		t.Errorf("GetCell(1, 0) = %q, expected '?' for a missing glyph", got)
	}
}

func TestRenderHUD(t *testing.T) {
	tests := []struct {
		name    string
		actions []core.Action
		want    string
	}{
		{"running", nil, "Loot: 0/1"},
		{"won", []core.Action{core.ActionRight}, "You got away with it!"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayer(0, 0)
			w := newTestWorld(t, 20, 3, 1, p, NewItem(1, 0))
			screen := core.NewScreen(60, 4)

			w.Tick(input(tc.actions...))
			NewRenderer(2).Render(w, screen)

			if row := screen.Row(3); !strings.Contains(row, tc.want) {
				t.Errorf("HUD row = %q, expected it to contain %q", row, tc.want)
			}
		})
	}
}

func TestRenderHUDAfterCapture(t *testing.T) {
	p := NewPlayer(0, 0)
	w := newTestWorld(t, 20, 3, 2, p, NewItem(1, 0), NewChaser(3, 0), NewItem(5, 1))
	screen := core.NewScreen(60, 4)

	// Collect one item, then wait for the chaser
	w.Tick(input(core.ActionRight))
	for i := 0; i < 10 && !w.Status().Terminal(); i++ {
		w.Tick(core.NewInputFrame())
	}
	if w.Status() != StatusLost {
		t.Fatalf("status = %v, expected lost", w.Status())
	}

	NewRenderer(2).Render(w, screen)
	row := screen.Row(3)
	if !strings.Contains(row, "Loot: 1/2") || !strings.Contains(row, "Busted!") {
		t.Errorf("HUD row = %q, expected loot 1/2 and the loss message", row)
	}
}

func TestRenderHUDBelowMap(t *testing.T) {
	p := NewPlayer(1, 1)
	c := NewChaser(4, 2)
	w := newTestWorld(t, 5, 3, 1, p, c, NewItem(0, 0))
	r := NewRenderer(2)
	screen := core.NewScreen(r.Cols(w)+30, r.Rows(w))

	// Walk onto the bottom map row
	w.Tick(input(core.ActionDown))
	r.Render(w, screen)

	if p.Cell() != (core.Point{X: 1, Y: 2}) {
		t.Fatalf("player at %v, expected (1, 2)", p.Cell())
	}
	if got := screen.GetCell(2, 2).Rune; got != '$' {
		t.Errorf("player on the bottom row is hidden, row 2 = %q", screen.Row(2))
	}
	if got := screen.GetCell(7, 2).Rune; got != '@' {
		t.Errorf("chaser on the bottom row is hidden, row 2 = %q", screen.Row(2))
	}
	if row := screen.Row(3); !strings.Contains(row, "Loot: 0/1") {
		t.Errorf("HUD row = %q, expected it below the map", row)
	}
}

func TestRendererSize(t *testing.T) {
	w := NewWorld(7, 5, 1)
	r := NewRenderer(3)

	if r.Cols(w) != 21 || r.Rows(w) != 6 {
		t.Errorf("size = %dx%d, expected 21x6", r.Cols(w), r.Rows(w))
	}
}

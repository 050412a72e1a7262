package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/robber-runaway/internal/config"
	"github.com/vovakirdan/robber-runaway/internal/core"
	"github.com/vovakirdan/robber-runaway/internal/game"
)

// newTestModel builds a 5x3 world: player at (0,0), an item at (1,0) and a
// chaser far to the right.
func newTestModel(t *testing.T, goal int, logger *log.Logger) (Model, *game.World) {
	t.Helper()
	w := game.NewWorld(5, 3, goal)
	if err := w.SetPlayer(game.NewPlayer(0, 0)); err != nil {
		t.Fatal(err)
	}
	for _, a := range []game.Actor{game.NewItem(1, 0), game.NewItem(0, 1), game.NewChaser(4, 1)} {
		if err := w.Add(a); err != nil {
			t.Fatal(err)
		}
	}

	m := NewModel(w, Options{
		Config: core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickInterval: 50 * time.Millisecond},
		Logger: logger,
	})
	return m, w
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelInitSchedulesTick(t *testing.T) {
	m, _ := newTestModel(t, 2, nil)
	if m.Init() == nil {
		t.Error("Init should schedule the first tick")
	}
}

func TestModelQuitKey(t *testing.T) {
	m, w := newTestModel(t, 2, nil)

	m, cmd := update(t, m, runeKey('q'))

	if !isQuit(cmd) {
		t.Error("quit key should stop the program")
	}
	if !m.Result().Quit {
		t.Error("Result().Quit should be true")
	}
	if w.Ticks() != 0 {
		t.Errorf("quit should not tick the world, got %d ticks", w.Ticks())
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}

	// A tick arriving after quit is ignored
	update(t, m, TickMsg(time.Now()))
	if w.Ticks() != 0 {
		t.Errorf("tick after quit advanced the world to %d", w.Ticks())
	}
}

func TestModelKeysApplyOnNextTick(t *testing.T) {
	m, w := newTestModel(t, 2, nil)

	m, cmd := update(t, m, runeKey('d'))
	if cmd != nil {
		t.Error("movement keys should not return a command")
	}
	if w.Ticks() != 0 {
		t.Fatal("keys should not tick the world")
	}

	m, cmd = update(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("running game should schedule the next tick")
	}
	p, _ := w.Player()
	if p.Cell() != (core.Point{X: 1, Y: 0}) || p.Collected() != 1 {
		t.Fatalf("player at %v with %d items, expected (1, 0) with 1", p.Cell(), p.Collected())
	}
	if !w.Input().Has(core.ActionRight) {
		t.Error("clearing the pending frame should not clear the world's input")
	}

	// The frame is cleared after each tick
	update(t, m, TickMsg(time.Now()))
	if p.Cell() != (core.Point{X: 1, Y: 0}) {
		t.Errorf("player moved without input to %v", p.Cell())
	}
}

func TestModelStopsOnWin(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	m, w := newTestModel(t, 1, logger)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, cmd := update(t, m, TickMsg(time.Now()))

	if !isQuit(cmd) {
		t.Error("won game should stop the program")
	}
	res := m.Result()
	if res.Status != game.StatusWon || res.Quit || res.Collected != 1 {
		t.Errorf("Result() = %+v, expected a win with 1 item", res)
	}
	if w.Status() != game.StatusWon {
		t.Errorf("world status = %v, expected won", w.Status())
	}

	out := buf.String()
	for _, want := range []string{"item collected", "game over", "won", "final state", "Collected: 1/1"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestModelStopsOnCapture(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	m, w := newTestModel(t, 2, logger)

	var cmd tea.Cmd
	for i := 0; i < 20 && !w.Status().Terminal(); i++ {
		m, cmd = update(t, m, TickMsg(time.Now()))
	}

	if w.Status() != game.StatusLost {
		t.Fatalf("status = %v, expected lost", w.Status())
	}
	if !isQuit(cmd) {
		t.Error("lost game should stop the program")
	}
	if !strings.Contains(buf.String(), "player captured") {
		t.Errorf("log output missing capture:\n%s", buf.String())
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t, 2, nil)

	view := m.View()
	for _, want := range []string{"$", "*", "@", "Loot: 0/2", "left move left"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 2})
	if view := m.View(); !strings.Contains(view, "small") {
		t.Errorf("View() on a tiny terminal = %q, expected a size warning", view)
	}
}

func TestNewRendererFromConfig(t *testing.T) {
	cfg := config.Default().Render
	cfg.TileWidth = 3
	cfg.Glyphs = map[string]config.GlyphConfig{
		"chaser": {Rune: "C", Color: "red"},
		"item":   {Rune: "o"},
	}

	r := NewRenderer(cfg)

	if r.TileWidth != 3 {
		t.Errorf("TileWidth = %d, expected 3", r.TileWidth)
	}
	if g := r.Glyphs[game.SpriteChaser]; g.Rune != 'C' || g.Color != core.ColorRed {
		t.Errorf("chaser glyph = %+v, expected red C", g)
	}
	if g := r.Glyphs[game.SpriteItem]; g.Rune != 'o' || g.Color != core.ColorBrightGreen {
		t.Errorf("item glyph = %+v, expected o with the default color", g)
	}
	if g := r.Glyphs[game.SpritePlayer]; g.Rune != '$' {
		t.Errorf("player glyph = %+v, expected the default", g)
	}
}

func TestModelViewNeedsHUDRow(t *testing.T) {
	m, _ := newTestModel(t, 2, nil)

	// The 5x3 map fits, the HUD row below it does not
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 3})
	if view := m.View(); !strings.Contains(view, "small") {
		t.Errorf("View() = %q, expected a size warning", view)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 4})
	view := m.View()
	if !strings.Contains(view, "Loot: 0/2") {
		t.Errorf("View() = %q, expected the HUD", view)
	}
	if strings.Contains(view, "move left") {
		t.Errorf("View() = %q, key help should be dropped without room", view)
	}
}

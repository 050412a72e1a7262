package game

import "github.com/vovakirdan/robber-runaway/internal/core"

// Player is the robber controlled by the user.
type Player struct {
	body
	collected int
}

// NewPlayer creates a player at grid cell (x, y).
func NewPlayer(x, y int) *Player {
	return &Player{body: body{pos: CellPos(x, y), sprite: SpritePlayer}}
}

func (*Player) Kind() Kind { return KindPlayer }

// Collected returns the number of items picked up so far.
func (p *Player) Collected() int {
	return p.collected
}

// Cell returns the player's grid cell. Players are always cell-aligned.
func (p *Player) Cell() core.Point {
	c, _ := p.pos.Cell()
	return c
}

// playerMoves are applied in order, each checked against the cell reached so far.
var playerMoves = []struct {
	action core.Action
	delta  core.Point
}{
	{core.ActionLeft, core.Point{X: -1}},
	{core.ActionRight, core.Point{X: 1}},
	{core.ActionUp, core.Point{Y: -1}},
	{core.ActionDown, core.Point{Y: 1}},
}

// Update moves the player one cell per pressed direction. Each axis is
// resolved on its own, so diagonal input moves diagonally, and a blocked
// move only cancels its own axis. Landing on an item collects it.
func (p *Player) Update(w *World) {
	in := w.Input()
	cell := p.Cell()

	for _, m := range playerMoves {
		if !in.Has(m.action) {
			continue
		}
		if next := cell.Add(m.delta); !w.IsBlocked(next.X, next.Y) {
			cell = next
		}
	}

	for _, a := range w.ActorsAt(cell.X, cell.Y) {
		if a.Kind().Collectible() {
			p.collected++
			w.collect(a)
		}
	}

	// Moving onto a chaser is allowed; the chaser detects the capture.
	w.place(p, CellPos(cell.X, cell.Y))
}

// HasWon reports whether the player has collected the world's goal count.
func (p *Player) HasWon(w *World) bool {
	return p.collected == w.Goal()
}

package game

import "github.com/vovakirdan/robber-runaway/internal/core"

// Chaser pursues the player half a cell per tick.
type Chaser struct {
	body
}

// NewChaser creates a chaser at grid cell (x, y).
func NewChaser(x, y int) *Chaser {
	return &Chaser{body{pos: CellPos(x, y), sprite: SpriteChaser}}
}

func (*Chaser) Kind() Kind { return KindChaser }

// Update closes the horizontal gap first and the vertical gap only once the
// columns match. When neither gap remains the player is caught.
//
// A step that would overlap a blocked cell is skipped in favor of the
// vertical step, if there is one; otherwise the chaser waits.
func (c *Chaser) Update(w *World) {
	p, ok := w.Player()
	if !ok {
		return
	}

	target := p.Pos()
	dx := core.Sign(target.X - c.pos.X)
	dy := core.Sign(target.Y - c.pos.Y)

	if dx == 0 && dy == 0 {
		w.Capture()
		return
	}

	candidates := make([]Pos, 0, 2)
	if dx != 0 {
		candidates = append(candidates, Pos{X: c.pos.X + dx, Y: c.pos.Y})
	}
	if dy != 0 {
		candidates = append(candidates, Pos{X: c.pos.X, Y: c.pos.Y + dy})
	}

	for _, next := range candidates {
		if w.canEnter(next) {
			w.place(c, next)
			return
		}
	}
}

package game

import (
	"fmt"
	"strings"
)

// Snapshot captures the game state for determinism testing and logging.
type Snapshot struct {
	Tick      uint64
	Status    Status
	HasPlayer bool
	PlayerX   int
	PlayerY   int
	Collected int
	Goal      int
	ItemsLeft int
	Chasers   []Pos
}

// Snapshot returns the current world snapshot.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Tick:      w.tick,
		Status:    w.status,
		Goal:      w.goal,
		Collected: w.Collected(),
	}

	if p, ok := w.Player(); ok {
		c := p.Cell()
		s.HasPlayer = true
		s.PlayerX, s.PlayerY = c.X, c.Y
	}

	for _, a := range w.actors {
		switch a.Kind() {
		case KindItem:
			s.ItemsLeft++
		case KindChaser:
			s.Chasers = append(s.Chasers, a.Pos())
		}
	}

	return s
}

// DebugState returns a string representation of the world state.
func (w *World) DebugState() string {
	s := w.Snapshot()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Tick: %d, Status: %s\n", s.Tick, s.Status))
	if s.HasPlayer {
		b.WriteString(fmt.Sprintf("Player: (%d, %d), Collected: %d/%d\n", s.PlayerX, s.PlayerY, s.Collected, s.Goal))
	} else {
		b.WriteString("Player: caught\n")
	}
	for i, c := range s.Chasers {
		b.WriteString(fmt.Sprintf("Chaser %d: (%.1f, %.1f)\n", i, float64(c.X)/SubCell, float64(c.Y)/SubCell))
	}
	b.WriteString(fmt.Sprintf("Items left: %d\n", s.ItemsLeft))
	return b.String()
}

package game

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/robber-runaway/internal/maze"
)

// Default item settings.
const (
	DefaultGoal  = 10
	DefaultItems = 10
)

// ErrNoRoom is returned when the map has fewer free cells than items to place.
var ErrNoRoom = errors.New("game: not enough free cells for items")

// Options control world setup.
type Options struct {
	Goal  int   // Items needed to win
	Items int   // Items placed at random
	Seed  int64 // Seed for item placement
}

// DefaultOptions returns the standard ten-item game.
func DefaultOptions() Options {
	return Options{Goal: DefaultGoal, Items: DefaultItems}
}

// New builds a world from a map layout: obstacles first, then the player,
// then chasers, then randomly placed items. That insertion order is also
// the per-tick update order.
func New(layout *maze.Layout, opts Options) (*World, error) {
	if opts.Goal < 1 {
		return nil, fmt.Errorf("game: goal must be positive, got %d", opts.Goal)
	}
	if opts.Items < opts.Goal {
		return nil, fmt.Errorf("game: %d items cannot reach goal %d", opts.Items, opts.Goal)
	}

	w := NewWorld(layout.Width, layout.Height, opts.Goal)

	for _, o := range layout.Obstacles {
		if err := w.Add(NewObstacle(o.X, o.Y)); err != nil {
			return nil, err
		}
	}

	if err := w.SetPlayer(NewPlayer(layout.Player.X, layout.Player.Y)); err != nil {
		return nil, err
	}

	for _, c := range layout.Chasers {
		if err := w.Add(NewChaser(c.X, c.Y)); err != nil {
			return nil, err
		}
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	if err := placeItems(w, rng, opts.Items); err != nil {
		return nil, err
	}

	return w, nil
}

// placeItems drops count items on random empty cells. The bottom map row
// never receives items.
func placeItems(w *World, rng *rand.Rand, count int) error {
	stageW, stageH := w.Width(), w.Height()-1

	free := 0
	for y := 0; y < stageH; y++ {
		for x := 0; x < stageW; x++ {
			if _, occupied := w.ActorAt(x, y); !occupied {
				free++
			}
		}
	}
	if free < count {
		return fmt.Errorf("%w: need %d, have %d", ErrNoRoom, count, free)
	}

	for placed := 0; placed < count; {
		x := rng.Intn(stageW)
		y := rng.Intn(stageH)
		if _, occupied := w.ActorAt(x, y); occupied {
			continue
		}
		if err := w.Add(NewItem(x, y)); err != nil {
			return err
		}
		placed++
	}

	return nil
}

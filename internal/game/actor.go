// Package game implements the Robber Runaway simulation: actors on a sparse
// grid, advanced one fixed tick at a time until the player either collects
// enough loot or gets caught.
package game

import "github.com/vovakirdan/robber-runaway/internal/core"

// SubCell is the number of position units per grid cell. Chasers move one
// unit (half a cell) per tick; everything else moves in whole cells.
const SubCell = 2

// Pos is an actor position in sub-cell units.
type Pos struct {
	X, Y int
}

// CellPos returns the position of the top-left corner of grid cell (x, y).
func CellPos(x, y int) Pos {
	return Pos{X: x * SubCell, Y: y * SubCell}
}

// Cell returns the grid cell for an aligned position. For a position between
// cells it returns the cell above/left of it and false.
func (p Pos) Cell() (core.Point, bool) {
	c := core.Point{X: core.FloorDiv(p.X, SubCell), Y: core.FloorDiv(p.Y, SubCell)}
	return c, p.X%SubCell == 0 && p.Y%SubCell == 0
}

// Covers returns every grid cell the position overlaps: one for an aligned
// position, two or four when between cells.
func (p Pos) Covers() []core.Point {
	x0, x1 := core.FloorDiv(p.X, SubCell), core.CeilDiv(p.X, SubCell)
	y0, y1 := core.FloorDiv(p.Y, SubCell), core.CeilDiv(p.Y, SubCell)

	cells := make([]core.Point, 0, 4)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			cells = append(cells, core.Point{X: x, Y: y})
		}
	}
	return cells
}

// Kind tags an actor variant.
type Kind int

const (
	KindPlayer Kind = iota
	KindChaser
	KindItem
	KindObstacle
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindChaser:
		return "chaser"
	case KindItem:
		return "item"
	case KindObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// BlocksMovement reports whether actors of this kind make their cell impassable.
func (k Kind) BlocksMovement() bool {
	return k == KindObstacle
}

// Collectible reports whether the player picks up actors of this kind.
func (k Kind) Collectible() bool {
	return k == KindItem
}

// Sprite is an actor's visual identity, resolved by the renderer.
type Sprite string

// Default sprites, one per kind.
const (
	SpritePlayer   Sprite = "player"
	SpriteChaser   Sprite = "chaser"
	SpriteItem     Sprite = "item"
	SpriteObstacle Sprite = "obstacle"
)

// Actor is an entity on the grid with per-tick behavior.
// Only types in this package implement it.
type Actor interface {
	Kind() Kind
	Pos() Pos
	Sprite() Sprite

	// Update is called once per tick while the actor is live.
	Update(w *World)

	setPos(p Pos)
}

// body holds the state shared by every actor.
type body struct {
	pos    Pos
	sprite Sprite
}

func (b *body) Pos() Pos {
	return b.pos
}

func (b *body) Sprite() Sprite {
	return b.sprite
}

func (b *body) setPos(p Pos) {
	b.pos = p
}

// Item is a collectible. It never moves.
type Item struct {
	body
}

// NewItem creates an item at grid cell (x, y).
func NewItem(x, y int) *Item {
	return &Item{body{pos: CellPos(x, y), sprite: SpriteItem}}
}

func (*Item) Kind() Kind { return KindItem }

// Update does nothing: items never move.
func (*Item) Update(*World) {}

// Obstacle blocks entry into its cell. It never moves.
type Obstacle struct {
	body
}

// NewObstacle creates an obstacle at grid cell (x, y).
func NewObstacle(x, y int) *Obstacle {
	return &Obstacle{body{pos: CellPos(x, y), sprite: SpriteObstacle}}
}

func (*Obstacle) Kind() Kind { return KindObstacle }

// Update does nothing: obstacles never move.
func (*Obstacle) Update(*World) {}

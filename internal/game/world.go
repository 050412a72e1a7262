package game

import (
	"errors"
	"slices"

	"github.com/vovakirdan/robber-runaway/internal/core"
)

// Status is the state of a run.
type Status int

const (
	StatusRunning Status = iota
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further ticks are processed.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventCollect EventKind = iota // Player picked up an item
	EventCapture                  // A chaser caught the player
)

func (k EventKind) String() string {
	switch k {
	case EventCollect:
		return "collect"
	case EventCapture:
		return "capture"
	default:
		return "unknown"
	}
}

// Event is a notable occurrence during a tick, reported to the driver.
type Event struct {
	Kind EventKind
	At   core.Point
}

// StepResult is returned by World.Tick.
type StepResult struct {
	Tick      uint64
	Status    Status
	Collected int
	Events    []Event
}

var (
	ErrDuplicateActor = errors.New("game: actor already in world")
	ErrStarted        = errors.New("game: cannot add actors after the first tick")
	ErrPlayerSet      = errors.New("game: player already set")
)

// playerSlot holds the world's player. It is filled once at setup and
// emptied at most once, on capture.
type playerSlot struct {
	player *Player
	caught *Player // Set when the slot is cleared
}

func (s *playerSlot) get() (*Player, bool) {
	return s.player, s.player != nil
}

func (s *playerSlot) set(p *Player) error {
	if s.player != nil || s.caught != nil {
		return ErrPlayerSet
	}
	s.player = p
	return nil
}

func (s *playerSlot) clear() (*Player, bool) {
	p := s.player
	s.player = nil
	if p == nil {
		return nil, false
	}
	s.caught = p
	return p, true
}

// World owns every live actor and drives the simulation.
// It is not safe for concurrent use.
type World struct {
	width  int
	height int
	goal   int

	actors  []Actor       // Live actors in insertion order
	seq     map[Actor]int // Insertion sequence, also the live set
	nextSeq int
	cells   map[Pos][]Actor // Occupancy index, each list in insertion order

	player playerSlot
	input  core.InputFrame
	status Status
	tick   uint64
	events []Event
}

// NewWorld creates an empty world with the given grid size and goal count.
func NewWorld(width, height, goal int) *World {
	return &World{
		width:  width,
		height: height,
		goal:   goal,
		seq:    make(map[Actor]int),
		cells:  make(map[Pos][]Actor),
		input:  core.NewInputFrame(),
	}
}

// Width returns the grid width in cells.
func (w *World) Width() int { return w.width }

// Height returns the grid height in cells.
func (w *World) Height() int { return w.height }

// Goal returns the number of items needed to win.
func (w *World) Goal() int { return w.goal }

// Status returns the current run status.
func (w *World) Status() Status { return w.status }

// Ticks returns the number of ticks processed.
func (w *World) Ticks() uint64 { return w.tick }

// Input returns the input frame of the current tick.
func (w *World) Input() core.InputFrame { return w.input }

// Player returns the player, or false once it has been caught.
func (w *World) Player() (*Player, bool) {
	return w.player.get()
}

// Collected returns the player's item count, including after capture.
func (w *World) Collected() int {
	switch {
	case w.player.player != nil:
		return w.player.player.Collected()
	case w.player.caught != nil:
		return w.player.caught.Collected()
	default:
		return 0
	}
}

// Actors returns the live actors in insertion order.
func (w *World) Actors() []Actor {
	return slices.Clone(w.actors)
}

// Add puts an actor into the world. Actors can only be added before the
// first tick.
func (w *World) Add(a Actor) error {
	if w.tick > 0 {
		return ErrStarted
	}
	if _, ok := w.seq[a]; ok {
		return ErrDuplicateActor
	}

	w.seq[a] = w.nextSeq
	w.nextSeq++
	w.actors = append(w.actors, a)
	w.index(a)
	return nil
}

// SetPlayer adds p to the world and makes it the player.
func (w *World) SetPlayer(p *Player) error {
	if err := w.player.set(p); err != nil {
		return err
	}
	if _, ok := w.seq[p]; ok {
		return nil
	}
	if err := w.Add(p); err != nil {
		w.player = playerSlot{}
		return err
	}
	return nil
}

// Remove takes an actor out of the world. Removing an actor that is not
// live is a no-op.
func (w *World) Remove(a Actor) {
	if _, ok := w.seq[a]; !ok {
		return
	}

	w.unindex(a)
	delete(w.seq, a)
	if i := slices.Index(w.actors, a); i >= 0 {
		w.actors = slices.Delete(w.actors, i, i+1)
	}
}

// Capture ends the run as a loss: the player slot is cleared and the player
// leaves the world. Later calls are no-ops.
func (w *World) Capture() {
	p, ok := w.player.clear()
	if !ok {
		return
	}
	w.events = append(w.events, Event{Kind: EventCapture, At: p.Cell()})
	w.Remove(p)
}

// ActorAt returns the first live actor, in insertion order, whose position
// is exactly grid cell (x, y).
func (w *World) ActorAt(x, y int) (Actor, bool) {
	list := w.cells[CellPos(x, y)]
	if len(list) == 0 {
		return nil, false
	}
	return list[0], true
}

// ActorsAt returns every live actor at grid cell (x, y) in insertion order.
func (w *World) ActorsAt(x, y int) []Actor {
	return slices.Clone(w.cells[CellPos(x, y)])
}

// InBounds reports whether grid cell (x, y) lies on the map.
func (w *World) InBounds(x, y int) bool {
	return core.NewRect(0, 0, w.width, w.height).Contains(x, y)
}

// IsBlocked reports whether grid cell (x, y) cannot be entered: it is off
// the map or holds an actor that blocks movement.
func (w *World) IsBlocked(x, y int) bool {
	if !w.InBounds(x, y) {
		return true
	}
	for _, a := range w.cells[CellPos(x, y)] {
		if a.Kind().BlocksMovement() {
			return true
		}
	}
	return false
}

// Tick advances the simulation by one step. Every live actor is updated
// once, in insertion order, and sees the changes made by the actors before
// it. Once the run is won or lost, Tick does nothing.
func (w *World) Tick(in core.InputFrame) StepResult {
	if w.status.Terminal() {
		return w.result()
	}

	w.input = in
	w.tick++
	w.events = w.events[:0]

	for _, a := range slices.Clone(w.actors) {
		// Skip actors removed earlier in this tick.
		if _, ok := w.seq[a]; !ok {
			continue
		}
		a.Update(w)
	}

	p, ok := w.Player()
	switch {
	case !ok:
		w.status = StatusLost
	case p.HasWon(w):
		w.status = StatusWon
	}

	return w.result()
}

func (w *World) result() StepResult {
	return StepResult{
		Tick:      w.tick,
		Status:    w.status,
		Collected: w.Collected(),
		Events:    slices.Clone(w.events),
	}
}

// collect removes a collected item and records the event.
func (w *World) collect(item Actor) {
	if _, ok := w.seq[item]; !ok {
		return
	}
	c, _ := item.Pos().Cell()
	w.events = append(w.events, Event{Kind: EventCollect, At: c})
	w.Remove(item)
}

// canEnter reports whether every cell overlapped by pos is free to enter.
func (w *World) canEnter(pos Pos) bool {
	for _, c := range pos.Covers() {
		if w.IsBlocked(c.X, c.Y) {
			return false
		}
	}
	return true
}

// place moves a live actor and keeps the occupancy index in sync.
func (w *World) place(a Actor, to Pos) {
	if _, ok := w.seq[a]; !ok {
		return
	}
	if a.Pos() == to {
		return
	}
	w.unindex(a)
	a.setPos(to)
	w.index(a)
}

func (w *World) index(a Actor) {
	pos := a.Pos()
	list := w.cells[pos]
	s := w.seq[a]
	i, _ := slices.BinarySearchFunc(list, s, func(e Actor, target int) int {
		return w.seq[e] - target
	})
	w.cells[pos] = slices.Insert(list, i, a)
}

func (w *World) unindex(a Actor) {
	pos := a.Pos()
	list := w.cells[pos]
	if i := slices.Index(list, a); i >= 0 {
		list = slices.Delete(list, i, i+1)
	}
	if len(list) == 0 {
		delete(w.cells, pos)
		return
	}
	w.cells[pos] = list
}

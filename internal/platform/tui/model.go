package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/robber-runaway/internal/core"
	"github.com/vovakirdan/robber-runaway/internal/game"
)

// Options configure a run.
type Options struct {
	Config   core.RuntimeConfig
	Keys     KeyMap // Zero value uses DefaultKeyMap
	Renderer game.Renderer
	Logger   *log.Logger // nil discards log output
}

// Result reports how a run ended.
type Result struct {
	Status    game.Status
	Quit      bool // User closed the game before a win or loss
	Ticks     uint64
	Collected int
}

// Model is the Bubble Tea model driving one game world.
type Model struct {
	world    *game.World
	screen   *core.Screen
	keys     KeyMap
	renderer game.Renderer
	logger   *log.Logger
	interval time.Duration
	frame    core.InputFrame
	quitting bool
}

// NewModel creates a Bubble Tea model for the given world.
func NewModel(world *game.World, opts Options) Model {
	cfg := opts.Config
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = core.DefaultConfig().TickInterval
	}
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		d := core.DefaultConfig()
		cfg.ScreenW, cfg.ScreenH = d.ScreenW, d.ScreenH
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := opts.Keys
	if len(keys.Quit.Keys()) == 0 {
		keys = DefaultKeyMap()
	}

	r := opts.Renderer
	if r.Glyphs == nil {
		r = game.NewRenderer(r.TileWidth)
	}

	return Model{
		world:    world,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:     keys,
		renderer: r,
		logger:   logger,
		interval: cfg.TickInterval,
		frame:    core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey accumulates movement into the pending frame. Quit stops the
// program at once, whatever the game state.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.frame) {
		m.quitting = true
		m.logger.Info("quit", "tick", m.world.Ticks(), "collected", m.world.Collected())
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the world with the input gathered since the last tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.world.Status().Terminal() {
		return m, nil
	}

	// The world keeps the frame it was given; clearing ours must not touch it.
	res := m.world.Tick(m.frame.Clone())
	m.frame.Clear()

	for _, e := range res.Events {
		switch e.Kind {
		case game.EventCollect:
			m.logger.Debug("item collected", "tick", res.Tick, "x", e.At.X, "y", e.At.Y, "collected", res.Collected)
		case game.EventCapture:
			m.logger.Debug("player captured", "tick", res.Tick, "x", e.At.X, "y", e.At.Y)
		}
	}

	if res.Status.Terminal() {
		m.logger.Info("game over", "status", res.Status, "tick", res.Tick, "collected", res.Collected, "goal", m.world.Goal())
		m.logFinalState()
		return m, tea.Quit
	}

	return m, tickCmd(m.interval)
}

// logFinalState writes the end-of-run world and board at debug level.
func (m Model) logFinalState() {
	if m.logger.GetLevel() > log.DebugLevel {
		return
	}
	board := core.NewScreen(m.renderer.Cols(m.world), m.renderer.Rows(m.world))
	m.renderer.Render(m.world, board)
	m.logger.Debug("final state", "world", m.world.DebugState(), "board", board.String())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	needW := m.renderer.Cols(m.world)
	needH := m.renderer.Rows(m.world)
	if m.screen.Width() < needW || m.screen.Height() < needH {
		m.screen.Clear()
		m.screen.DrawTextCentered(m.screen.Height()/2, "Terminal too small", core.ColorBrightRed)
		return RenderScreen(m.screen)
	}

	m.renderer.Render(m.world, m.screen)

	// Key help below the HUD, when there is room
	if m.screen.Height() > needH {
		m.screen.DrawText(1, needH, m.keys.Help())
	}
	return RenderScreen(m.screen)
}

// Result returns the outcome as seen by this model.
func (m Model) Result() Result {
	return Result{
		Status:    m.world.Status(),
		Quit:      m.quitting,
		Ticks:     m.world.Ticks(),
		Collected: m.world.Collected(),
	}
}

// Run plays world in the terminal until it is won, lost or the user quits.
func Run(world *game.World, opts Options) (Result, error) {
	p := tea.NewProgram(
		NewModel(world, opts),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return Result{}, err
	}

	if m, ok := final.(Model); ok {
		return m.Result(), nil
	}
	return Result{Status: world.Status()}, nil
}

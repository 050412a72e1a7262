package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/robber-runaway/internal/config"
	"github.com/vovakirdan/robber-runaway/internal/core"
)

// KeyMap translates Bubble Tea key messages to game actions.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the bindings from the default configuration.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.Default().Keys)
}

// NewKeyMap builds bindings from configured key names.
func NewKeyMap(cfg config.KeysConfig) KeyMap {
	return KeyMap{
		Left:  binding(cfg.Left, "move left"),
		Right: binding(cfg.Right, "move right"),
		Up:    binding(cfg.Up, "move up"),
		Down:  binding(cfg.Down, "move down"),
		Quit:  binding(cfg.Quit, "quit"),
	}
}

func binding(keys []string, desc string) key.Binding {
	help := ""
	if len(keys) > 0 {
		help = keys[0]
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(help, desc),
	)
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km KeyMap) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	// Quit wins over movement when a key is bound to both
	if key.Matches(msg, km.Quit) {
		return core.ActionQuit, true
	}

	switch {
	case key.Matches(msg, km.Left):
		return core.ActionLeft, false
	case key.Matches(msg, km.Right):
		return core.ActionRight, false
	case key.Matches(msg, km.Up):
		return core.ActionUp, false
	case key.Matches(msg, km.Down):
		return core.ActionDown, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}

// Help returns a one-line summary of the bindings.
func (km KeyMap) Help() string {
	var parts []string
	for _, b := range []key.Binding{km.Left, km.Right, km.Up, km.Down, km.Quit} {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, "  ")
}

package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/jungle-quest/internal/core"
)

// DefaultHoldWindow is how long a movement key counts as held after its last
// press. Terminals report repeats but not releases, and typical key repeat
// intervals are shorter than this.
const DefaultHoldWindow = 180 * time.Millisecond

// GameKeyMap defines the key bindings used while playing.
type GameKeyMap struct {
	Left     key.Binding
	Right    key.Binding
	Jump     key.Binding
	Scan     key.Binding
	TimeJump key.Binding
	Entangle key.Binding
	Pause    key.Binding
	Restart  key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Scan, k.TimeJump, k.Entangle, k.Pause, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump},
		{k.Scan, k.TimeJump, k.Entangle},
		{k.Pause, k.Restart, k.Back, k.Quit},
	}
}

// DefaultGameKeyMap returns the default in-game bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys("up", "w", " "),
			key.WithHelp("↑/w/space", "jump"),
		),
		Scan: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "scan"),
		),
		TimeJump: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "time jump"),
		),
		Entangle: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "entangle"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions and builds
// one InputFrame per tick.
//
// Left, Right and Jump stay in the frame for the hold window after their last
// press. Every other action appears in exactly one frame per press.
type KeyMapper struct {
	keys    GameKeyMap
	hold    time.Duration
	clock   core.Clock
	held    map[core.Action]time.Time
	pressed []core.Action
}

// NewKeyMapper creates a key mapper with default bindings. A nil clock uses
// the system clock.
func NewKeyMapper(clock core.Clock) *KeyMapper {
	if clock == nil {
		clock = core.SystemClock{}
	}
	return &KeyMapper{
		keys:  DefaultGameKeyMap(),
		hold:  DefaultHoldWindow,
		clock: clock,
		held:  make(map[core.Action]time.Time),
	}
}

// Keys returns the bindings, for help views.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.Left):
		return core.ActionLeft, false
	case key.Matches(msg, km.keys.Right):
		return core.ActionRight, false
	case key.Matches(msg, km.keys.Jump):
		return core.ActionJump, false
	case key.Matches(msg, km.keys.Scan):
		return core.ActionAbility1, false
	case key.Matches(msg, km.keys.TimeJump):
		return core.ActionAbility2, false
	case key.Matches(msg, km.keys.Entangle):
		return core.ActionAbility3, false
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause, false
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, km.keys.Back):
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// Press records a key press for the next frame.
// Returns the mapped action and whether it was a quit request.
func (km *KeyMapper) Press(msg tea.KeyMsg) (core.Action, bool) {
	action, isQuit := km.MapKey(msg)
	switch action {
	case core.ActionNone, core.ActionQuit, core.ActionBack:
	case core.ActionLeft:
		delete(km.held, core.ActionRight)
		km.held[action] = km.clock.Now()
	case core.ActionRight:
		delete(km.held, core.ActionLeft)
		km.held[action] = km.clock.Now()
	case core.ActionJump:
		km.held[action] = km.clock.Now()
	default:
		km.pressed = append(km.pressed, action)
	}
	return action, isQuit
}

// Frame returns the input for the current tick and consumes one-shot presses.
func (km *KeyMapper) Frame() core.InputFrame {
	now := km.clock.Now()
	frame := core.NewInputFrame(km.pressed...)
	km.pressed = km.pressed[:0]

	for a, at := range km.held {
		if now.Sub(at) < km.hold {
			frame.Set(a)
		} else {
			delete(km.held, a)
		}
	}
	return frame
}

// Reset forgets all held and pending keys.
func (km *KeyMapper) Reset() {
	clear(km.held)
	km.pressed = km.pressed[:0]
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MenuKeyMap defines the key bindings for menus.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Select}, {k.Back, k.Quit}}
}

// DefaultMenuKeyMap returns the default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKeyToMenuAction translates a key to a menu action.
func (k MenuKeyMap) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch {
	case key.Matches(msg, k.Quit):
		return MenuActionQuit
	case key.Matches(msg, k.Up):
		return MenuActionUp
	case key.Matches(msg, k.Down):
		return MenuActionDown
	case key.Matches(msg, k.Select):
		return MenuActionSelect
	case key.Matches(msg, k.Back):
		return MenuActionBack
	}
	return MenuActionNone
}

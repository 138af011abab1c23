package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/jungle-quest/internal/core"
	"github.com/vovakirdan/jungle-quest/internal/jungle"
)

// GameModel drives a jungle.Game from Bubble Tea ticks and key presses.
type GameModel struct {
	game       *jungle.Game
	screen     *core.Screen
	keys       *KeyMapper
	help       help.Model
	tickRate   int
	quitting   bool
	backToMenu bool
}

// NewGameModel wraps game. The game must already be on a playing screen.
func NewGameModel(game *jungle.Game, keys *KeyMapper, cfg core.RuntimeConfig) GameModel {
	keys.Reset()
	h := help.New()
	h.Width = cfg.ScreenW
	return GameModel{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-1)),
		keys:     keys,
		help:     h,
		tickRate: cfg.TickRate,
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(1, msg.Height-1))
		m.help.Width = msg.Width
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.Press(msg)
	if isQuit {
		m.quitting = true
		return m, nil
	}

	// Back leaves the session only when paused or when the run is over
	if action == core.ActionBack {
		st := m.game.State()
		if st.Paused || st.Screen.Terminal() {
			m.game.ReturnToMenu()
			m.backToMenu = true
		}
	}
	return m, nil
}

// handleTick runs one simulation step with the current input frame.
// Held movement keys do not carry over into a freshly built level.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}
	if res := m.game.Step(m.keys.Frame()); res.LevelChanged {
		m.keys.Reset()
	}
	return m, tickCmd(m.tickRate)
}

// View renders the game and a help line.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.ShortHelpView(m.bindings()))
}

// bindings lists the keys that matter on the current screen.
func (m GameModel) bindings() []key.Binding {
	k := m.keys.Keys()
	st := m.game.State()
	switch {
	case st.Screen.Terminal():
		return []key.Binding{k.Restart, k.Back, k.Quit}
	case st.Paused:
		return []key.Binding{k.Pause, k.Back, k.Quit}
	}
	return k.ShortHelp()
}

// Game returns the wrapped session.
func (m GameModel) Game() *jungle.Game {
	return m.game
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

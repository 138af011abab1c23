package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/jungle-quest/internal/config"
	"github.com/vovakirdan/jungle-quest/internal/core"
	"github.com/vovakirdan/jungle-quest/internal/jungle"
	"github.com/vovakirdan/jungle-quest/internal/storage"
)

// StartMode selects the first screen of the app.
type StartMode int

const (
	StartMenu     StartMode = iota // main menu
	StartNew                       // new game on level 1
	StartContinue                  // resume the saved slot
	StartLevel                     // new game on Options.Level
)

// Options configures an app session.
type Options struct {
	Config  config.JungleConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store   // may be nil
	Cues    jungle.CuePlayer // may be nil
	Logger  *log.Logger      // may be nil
	Clock   core.Clock       // may be nil
	Slot    string
	Start   StartMode
	Level   int
}

type view int

const (
	viewMenu view = iota
	viewLevels
	viewGame
	viewScores
)

// AppModel is the top-level model: menu -> level select / scores -> game -> menu.
// Local play and SSH sessions both run it.
type AppModel struct {
	opts     Options
	runtime  core.RuntimeConfig
	game     *jungle.Game
	keys     *KeyMapper
	view     view
	menu     MenuModel
	levels   LevelSelectModel
	scores   ScoreboardModel
	play     GameModel
	quitting bool
}

// NewAppModel creates the app and its game session.
func NewAppModel(opts Options) AppModel {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Slot == "" {
		opts.Slot = jungle.DefaultSlot
	}
	if opts.Runtime.ScreenW <= 0 || opts.Runtime.ScreenH <= 0 {
		def := core.DefaultConfig()
		opts.Runtime.ScreenW, opts.Runtime.ScreenH = def.ScreenW, def.ScreenH
	}

	gameOpts := []jungle.Option{
		jungle.WithLogger(opts.Logger),
		jungle.WithSlot(opts.Slot),
	}
	if opts.Clock != nil {
		gameOpts = append(gameOpts, jungle.WithClock(opts.Clock))
	}
	if opts.Cues != nil {
		gameOpts = append(gameOpts, jungle.WithCuePlayer(opts.Cues))
	}
	if opts.Store != nil {
		gameOpts = append(gameOpts, jungle.WithStore(opts.Store), jungle.WithScores(opts.Store))
	}

	m := AppModel{
		opts:    opts,
		runtime: opts.Runtime,
		game:    jungle.New(opts.Config, gameOpts...),
		keys:    NewKeyMapper(opts.Clock),
	}

	switch opts.Start {
	case StartNew:
		m.game.NewGame()
		m.enterGame()
	case StartContinue:
		m.game.Continue()
		m.enterGame()
	case StartLevel:
		m.game.SelectLevel(opts.Level)
		m.enterGame()
	default:
		m.enterMenu()
	}
	return m
}

// progressStore avoids handing a typed nil to the menu.
func (m AppModel) progressStore() jungle.ProgressStore {
	if m.opts.Store == nil {
		return nil
	}
	return m.opts.Store
}

func (m AppModel) scoreSource() ScoreSource {
	if m.opts.Store == nil {
		return nil
	}
	return m.opts.Store
}

func (m *AppModel) enterMenu() {
	m.view = viewMenu
	m.menu = NewMenuModel(m.progressStore(), m.opts.Slot, m.runtime.ScreenW, m.runtime.ScreenH)
}

func (m *AppModel) enterGame() tea.Cmd {
	m.view = viewGame
	m.play = NewGameModel(m.game, m.keys, m.runtime)
	return m.play.Init()
}

// Init starts ticking when the app opens directly into a game.
func (m AppModel) Init() tea.Cmd {
	if m.view == viewGame {
		return m.play.Init()
	}
	return nil
}

// Update routes messages to the active screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.runtime.ScreenW = wsm.Width
		m.runtime.ScreenH = wsm.Height
	}

	switch m.view {
	case viewLevels:
		return m.updateLevels(msg)
	case viewScores:
		return m.updateScores(msg)
	case viewGame:
		return m.updateGame(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch m.menu.Selected() {
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit
	case ChoiceContinue:
		m.game.Continue()
		cmd = m.enterGame()
	case ChoiceNewGame:
		m.game.NewGame()
		cmd = m.enterGame()
	case ChoiceSelectLevel:
		m.view = viewLevels
		m.levels = NewLevelSelectModel(m.opts.Config.Progression.Levels, m.runtime.ScreenW, m.runtime.ScreenH)
	case ChoiceScores:
		m.view = viewScores
		m.scores = NewScoreboardModel(m.scoreSource(), m.runtime.ScreenW, m.runtime.ScreenH)
	}
	return m, cmd
}

func (m AppModel) updateLevels(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.levels.Update(msg)
	m.levels = next.(LevelSelectModel)

	if n := m.levels.Selected(); n > 0 {
		m.game.SelectLevel(n)
		cmd = m.enterGame()
		return m, cmd
	}
	if m.levels.WantsBack() {
		m.enterMenu()
	}
	return m, cmd
}

func (m AppModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	m.scores = next.(ScoreboardModel)

	if m.scores.IsGoingBack() {
		m.enterMenu()
	}
	return m, cmd
}

func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.play.Update(msg)
	m.play = next.(GameModel)

	if m.play.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.play.BackToMenu() {
		m.enterMenu()
		return m, nil
	}
	return m, cmd
}

// View renders the active screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewLevels:
		return m.levels.View()
	case viewScores:
		return m.scores.View()
	case viewGame:
		return m.play.View()
	default:
		return m.menu.View()
	}
}

// Game returns the session driven by the app.
func (m AppModel) Game() *jungle.Game {
	return m.game
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewAppModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/jungle-quest/internal/jungle"
)

// MenuChoice is an entry of the main menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoiceContinue
	ChoiceNewGame
	ChoiceSelectLevel
	ChoiceScores
	ChoiceQuit
)

// String returns the menu label.
func (c MenuChoice) String() string {
	switch c {
	case ChoiceContinue:
		return "Continue"
	case ChoiceNewGame:
		return "New Game"
	case ChoiceSelectLevel:
		return "Select Level"
	case ChoiceScores:
		return "High Scores"
	case ChoiceQuit:
		return "Quit"
	default:
		return ""
	}
}

var menuChoices = []MenuChoice{
	ChoiceContinue,
	ChoiceNewGame,
	ChoiceSelectLevel,
	ChoiceScores,
	ChoiceQuit,
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))
	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	cursor   int
	width    int
	height   int
	slot     string
	saved    *jungle.Progress // nil when the slot has no save
	keys     MenuKeyMap
	help     help.Model
	selected MenuChoice
}

// NewMenuModel creates a new menu model. store may be nil.
func NewMenuModel(store jungle.ProgressStore, slot string, width, height int) MenuModel {
	m := MenuModel{
		width:  width,
		height: height,
		slot:   slot,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
	if store != nil {
		if p, err := store.LoadProgress(slot); err == nil {
			m.saved = &p
		}
	}
	if m.saved == nil {
		m.cursor = 1 // New Game
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.selected = ChoiceQuit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuChoices)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		m.selected = menuChoices[m.cursor]
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("J U N G L E   Q U E S T"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(subtitleStyle.Render("1994 · 2026 · 2048"), m.width))
	b.WriteString("\n\n")

	for i, c := range menuChoices {
		label := c.String()
		if c == ChoiceContinue && m.saved != nil {
			label = fmt.Sprintf("%s (level %d, score %d)", label, m.saved.Level, m.saved.Score)
		}

		line := "  " + label
		if i == m.cursor {
			line = cursorStyle.Render("> " + label)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(subtitleStyle.Render("slot: "+m.slot), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen entry, or ChoiceNone while the user is choosing.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}

// HasSave reports whether the slot holds saved progress.
func (m MenuModel) HasSave() bool {
	return m.saved != nil
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

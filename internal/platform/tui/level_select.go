package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/jungle-quest/internal/jungle"
)

// LevelSelectModel lets the user pick a starting level.
type LevelSelectModel struct {
	levels   []jungle.LevelInfo
	cursor   int
	width    int
	height   int
	keys     MenuKeyMap
	help     help.Model
	selected int // 0 while choosing
	back     bool
}

// NewLevelSelectModel lists the first count levels.
func NewLevelSelectModel(count, width, height int) LevelSelectModel {
	levels := jungle.Levels()
	if count > 0 && count < len(levels) {
		levels = levels[:count]
	}
	return LevelSelectModel{
		levels: levels,
		width:  width,
		height: height,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the model.
func (m LevelSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keys.MapKeyToMenuAction(msg) {
		case MenuActionUp:
			if m.cursor > 0 {
				m.cursor--
			}
		case MenuActionDown:
			if m.cursor < len(m.levels)-1 {
				m.cursor++
			}
		case MenuActionSelect:
			if len(m.levels) > 0 {
				m.selected = m.levels[m.cursor].Number
			}
		case MenuActionBack, MenuActionQuit:
			m.back = true
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

// View renders the level list.
func (m LevelSelectModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("SELECT LEVEL"), m.width))
	b.WriteString("\n\n")

	for i, l := range m.levels {
		line := fmt.Sprintf("%d. %-15s %s", l.Number, l.Name, l.Goal)
		if i == m.cursor {
			line = cursorStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen level number, or 0 while still choosing.
func (m LevelSelectModel) Selected() int {
	return m.selected
}

// WantsBack returns true if user pressed back.
func (m LevelSelectModel) WantsBack() bool {
	return m.back
}

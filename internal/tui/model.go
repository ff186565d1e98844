// Package tui implements the calculator keypad as a Bubble Tea program.
package tui

import (
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zephyrtronium/calc/internal/config"
	"github.com/zephyrtronium/calc/keypad"
)

// Model is the Bubble Tea model of the keypad.
type Model struct {
	session *keypad.Session
	layout  [][]keypad.Key

	// row and col locate the focused button.
	row, col int
	// flashing is the button highlighted by the last press, if any.
	flashing keypad.Key
	// flashID identifies the newest flash so that older timers are ignored.
	flashID int
	flash   time.Duration

	keys   keyMap
	help   help.Model
	styles Styles
	width  int
}

// flashMsg ends the highlight of a pressed button.
type flashMsg struct {
	id int
}

// New creates a keypad model operating s.
func New(cfg config.Config, s *keypad.Session) Model {
	return Model{
		session: s,
		layout:  keypad.Layout(),
		flash:   time.Duration(cfg.Flash),
		keys:    defaultKeyMap(),
		help:    help.New(),
		styles:  NewStyles(cfg.Theme),
	}
}

// Session returns the session the model operates.
func (m Model) Session() *keypad.Session {
	return m.session
}

// Focused returns the key of the focused button.
func (m Model) Focused() keypad.Key {
	return m.layout[m.row][m.col]
}

// Flashing returns the key of the highlighted button, or the empty Key.
func (m Model) Flashing() keypad.Key {
	return m.flashing
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case flashMsg:
		if msg.id == m.flashID {
			m.flashing = ""
		}
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.row = (m.row + len(m.layout) - 1) % len(m.layout)
	case key.Matches(msg, m.keys.Down):
		m.row = (m.row + 1) % len(m.layout)
	case key.Matches(msg, m.keys.Left):
		m.col = (m.col + len(m.layout[m.row]) - 1) % len(m.layout[m.row])
	case key.Matches(msg, m.keys.Right):
		m.col = (m.col + 1) % len(m.layout[m.row])
	case key.Matches(msg, m.keys.Press):
		return m.press(m.Focused())
	case key.Matches(msg, m.keys.Shift):
		return m.press(keypad.Shift)
	case key.Matches(msg, m.keys.Del):
		return m.press(keypad.Del)
	case key.Matches(msg, m.keys.Clear):
		return m.press(keypad.Clear)
	case msg.Type == tea.KeyRunes:
		if k, ok := typed(string(msg.Runes)); ok {
			return m.press(k)
		}
	}
	return m, nil
}

// press submits k to the session and highlights its button.
func (m Model) press(k keypad.Key) (tea.Model, tea.Cmd) {
	display := m.session.Submit(k)
	log.Printf("key %s: display %q expression %q", k, Plain(display), m.session.Expression())
	if err := m.session.Err(); err != nil && k == keypad.Equals {
		log.Printf("evaluation failed: %v", err)
	}
	if m.flash <= 0 {
		return m, nil
	}
	m.flashing = k
	m.flashID++
	id := m.flashID
	return m, tea.Tick(m.flash, func(time.Time) tea.Msg {
		return flashMsg{id: id}
	})
}

// View implements tea.Model.
func (m Model) View() string {
	var rows []string
	for i, row := range m.layout {
		var buttons []string
		for j, k := range row {
			style := m.styles.Button
			switch {
			case m.flashing != "" && (k == m.flashing || keypad.Remap(k, true) == m.flashing):
				style = m.styles.Flash
			case i == m.row && j == m.col:
				style = m.styles.Focused
			}
			label := m.session.Label(k)
			if k == keypad.Shift && m.session.Shifted() {
				label = m.styles.Shift.Render(label)
			}
			buttons = append(buttons, style.Render(label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
	}
	pad := lipgloss.JoinVertical(lipgloss.Left, rows...)
	display := m.styles.Display.
		Width(lipgloss.Width(pad)).
		Render(Superscript(m.session.Display()))

	var b strings.Builder
	b.WriteString(display)
	b.WriteByte('\n')
	b.WriteString(pad)
	b.WriteByte('\n')
	b.WriteString(m.styles.Help.Render(m.help.View(m.keys)))
	return b.String()
}

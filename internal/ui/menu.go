package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// menuState is the navigation overlay. It starts closed.
type menuState struct {
	open   bool
	cursor int
}

func (s *menuState) openAt(cursor int) {
	s.open = true
	s.cursor = cursor
}

func (s *menuState) close() {
	s.open = false
}

// handleMenuKey moves the menu cursor; enter jumps to the entry and closes
// the menu, esc or the menu key closes it in place.
func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Menu):
		m.menu.close()
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.menu.cursor > 0 {
			m.menu.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.menu.cursor < len(m.views)-1 {
			m.menu.cursor++
		}
	case key.Matches(msg, m.keys.Confirm):
		if m.menu.cursor < len(m.views) {
			m.current = m.menu.cursor
		}
		m.menu.close()
	}
	return m, nil
}

// renderMenu renders the navigation overlay.
func (m Model) renderMenu() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Go to"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 24)))
	b.WriteString("\n")

	if len(m.views) == 0 {
		b.WriteString(styles.MutedText.Render("No panels enabled"))
	}
	for i, v := range m.views {
		line := "  " + v.Title()
		if i == m.current {
			line += " •"
		}
		if i == m.menu.cursor {
			b.WriteString(styles.Selected.Width(24).Render("› " + strings.TrimPrefix(line, "  ")))
		} else {
			b.WriteString(styles.Text.Render(line))
		}
		if i < len(m.views)-1 {
			b.WriteString("\n")
		}
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Render(b.String())

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the logo and the view tabs.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{bg.Render("pulse", styles.Logo)}
	current, _ := m.CurrentView()
	for _, v := range m.views {
		if v == current {
			parts = append(parts, bg.Render("["+v.Title()+"]", styles.AccentText.Bold(true)))
		} else {
			parts = append(parts, bg.Render(v.Title(), styles.MutedText))
		}
	}
	if m.status != "" {
		parts = append(parts, bg.Render(m.status, styles.WarningText))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Padding(0, 1).
		Width(m.width).
		Render(bg.Join(parts, "  "))
}

// renderCommandBar renders the key hints for the focused view.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	view, _ := m.CurrentView()
	switch view {
	case ViewContacts:
		if m.contacts.searching {
			commands = []cmd{{"enter", "Apply"}, {"esc", "Clear"}}
		} else {
			commands = []cmd{{"/", "Search"}, {"1-5", "Sort"}, {"[ ]", "Page"}}
		}
	case ViewTasks:
		if m.tasks.adding {
			commands = []cmd{{"enter", "Add"}, {"esc", "Cancel"}}
		} else {
			commands = []cmd{{"a", "Add"}, {"space", "Done"}, {"x", "Delete"}, {"j/k", "Navigate"}}
		}
	case ViewPipeline:
		grab := "Pick up"
		if _, holding := m.pipeline.board.Holding(); holding {
			grab = "Drop"
		}
		commands = []cmd{{"space", grab}, {"←/→", "Move"}, {"j/k", "Navigate"}}
	}
	commands = append(commands, cmd{"tab", "Next"}, cmd{"m", "Menu"}, cmd{"?", "More"})

	colon := bg.Sep(":")
	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, bg.Spaces(2)))
}

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/pulse/internal/crm"
	"github.com/five82/pulse/internal/feed"
)

const emptyTasksMessage = "No tasks yet. Add your first task."

// tasksPane owns the to-do list, its cursor and the add form.
type tasksPane struct {
	tasks  *feed.Tasks
	cursor int
	input  textinput.Model
	adding bool
}

func newTasksPane(tasks *feed.Tasks) *tasksPane {
	input := textinput.New()
	input.Prompt = "+ "
	input.Placeholder = "New task"
	input.CharLimit = 120
	return &tasksPane{tasks: tasks, input: input}
}

func (p *tasksPane) selected() (crm.Task, bool) {
	items := p.tasks.Items()
	if p.cursor < 0 || p.cursor >= len(items) {
		return crm.Task{}, false
	}
	return items[p.cursor], true
}

func (p *tasksPane) clampCursor() {
	p.cursor = max(min(p.cursor, p.tasks.Len()-1), 0)
}

// taskRow is one rendered line of the list.
type taskRow struct {
	ID       string
	Check    string
	Title    string
	Done     bool
	Selected bool
}

// taskRows projects the list into display rows.
func taskRows(tasks []crm.Task, cursor int) []taskRow {
	rows := make([]taskRow, 0, len(tasks))
	for i, t := range tasks {
		check := "[ ]"
		if t.Done {
			check = "[x]"
		}
		rows = append(rows, taskRow{
			ID:       t.ID,
			Check:    check,
			Title:    t.Title,
			Done:     t.Done,
			Selected: i == cursor,
		})
	}
	return rows
}

// handleTasksKey handles keys while the list has focus.
func (m *Model) handleTasksKey(msg tea.KeyMsg) tea.Cmd {
	p := m.tasks
	switch {
	case key.Matches(msg, m.keys.AddTask):
		p.adding = true
		p.input.SetValue("")
		return p.input.Focus()
	case key.Matches(msg, m.keys.Up):
		p.cursor--
		p.clampCursor()
	case key.Matches(msg, m.keys.Down):
		p.cursor++
		p.clampCursor()
	case key.Matches(msg, m.keys.ToggleTask):
		if t, ok := p.selected(); ok {
			p.tasks.Toggle(t.ID)
			m.logger.Debug("task toggled", zap.String("id", t.ID), zap.Bool("done", !t.Done))
		}
	case key.Matches(msg, m.keys.DeleteTask):
		if t, ok := p.selected(); ok {
			p.tasks.Remove(t.ID)
			p.clampCursor()
			m.logger.Info("task removed", zap.String("id", t.ID))
		}
	}
	return nil
}

// handleTaskFormKey feeds the add form. A blank title keeps the form open.
func (m *Model) handleTaskFormKey(msg tea.KeyMsg) tea.Cmd {
	p := m.tasks
	switch {
	case key.Matches(msg, m.keys.Escape):
		p.adding = false
		p.input.Blur()
		p.input.SetValue("")
		return nil
	case key.Matches(msg, m.keys.Confirm):
		task, err := p.tasks.Add(p.input.Value())
		if err != nil {
			m.logger.Debug("task rejected", zap.Error(err))
			return nil
		}
		p.adding = false
		p.input.Blur()
		p.input.SetValue("")
		p.cursor = 0
		m.logger.Info("task added", zap.String("id", task.ID))
		return nil
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

// renderTasks renders the add form and the list.
func (m Model) renderTasks(width, height int) string {
	p := m.tasks
	styles := m.theme.Styles()

	var lines []string
	if p.adding {
		lines = append(lines, p.input.View(), "")
	}

	items := p.tasks.Items()
	if len(items) == 0 {
		lines = append(lines, styles.MutedText.Render(emptyTasksMessage))
	}
	rows := taskRows(items, p.cursor)
	start, end := scrollWindow(p.cursor, len(rows), height-2-len(lines))
	for _, row := range rows[start:end] {
		title := truncate(row.Title, width-8)
		var line string
		switch {
		case row.Selected && !p.adding:
			line = styles.Selected.Width(width - 4).Render(row.Check + " " + title)
		case row.Done:
			line = styles.FaintText.Render(row.Check) + " " + styles.FaintText.Strikethrough(true).Render(title)
		default:
			line = styles.AccentText.Render(row.Check) + " " + styles.Text.Render(title)
		}
		lines = append(lines, line)
	}

	open := p.tasks.Open()
	title := fmt.Sprintf("Tasks · %d open %s", open, plural(open, "item", "items"))
	return m.renderTitledBox(title, strings.Join(lines, "\n"), width, height, true)
}

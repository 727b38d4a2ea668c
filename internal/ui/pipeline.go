package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/five82/pulse/internal/crm"
	"github.com/five82/pulse/internal/pipeline"
)

const (
	minPipelineColumnWidth = 20
	pipelineCardHeight     = 3 // title, detail, gap
)

// pipelinePane wraps the deal board.
type pipelinePane struct {
	board *pipeline.Board
}

func newPipelinePane(deals []crm.Deal) *pipelinePane {
	return &pipelinePane{board: pipeline.NewBoard(deals)}
}

// handlePipelineKey picks up, carries and drops cards.
func (m *Model) handlePipelineKey(msg tea.KeyMsg) tea.Cmd {
	b := m.pipeline.board
	switch {
	case key.Matches(msg, m.keys.Grab):
		if _, holding := b.Holding(); holding {
			if card, ok := b.Drop(); ok {
				m.logger.Info("deal moved", zap.String("deal", card.ID), zap.String("stage", string(card.Stage)))
			}
			return nil
		}
		b.Pick()
	case key.Matches(msg, m.keys.Escape):
		b.Cancel()
	case key.Matches(msg, m.keys.Left):
		b.Left()
	case key.Matches(msg, m.keys.Right):
		b.Right()
	case key.Matches(msg, m.keys.Up):
		b.Up()
	case key.Matches(msg, m.keys.Down):
		b.Down()
	}
	return nil
}

// cardLine is one rendered card.
type cardLine struct {
	Title    string
	Detail   string
	Selected bool
	Held     bool
}

// pipelineColumns projects the board into per-column card lines.
func pipelineColumns(b *pipeline.Board) [][]cardLine {
	curCol, curRow := b.Cursor()
	held, _ := b.Holding()
	cols := b.Columns()
	out := make([][]cardLine, len(cols))
	for ci, col := range cols {
		for ri, d := range col.Cards {
			out[ci] = append(out[ci], cardLine{
				Title:    d.Title,
				Detail:   d.Company + " · $" + humanize.Comma(d.Value),
				Selected: ci == curCol && ri == curRow,
				Held:     d.ID == held,
			})
		}
	}
	return out
}

// renderPipeline renders the stage columns, scrolling horizontally to keep
// the focused column visible when the terminal is too narrow for all six and
// vertically to keep the selected card visible in a tall column.
func (m Model) renderPipeline(width, height int) string {
	b := m.pipeline.board
	cols := b.Columns()
	lines := pipelineColumns(b)

	visible := len(cols)
	if width < LayoutWideWidth {
		visible = max(min(len(cols), width/minPipelineColumnWidth), 1)
	}
	curCol, curRow := b.Cursor()
	cardsVisible := max((height-2)/pipelineCardHeight, 1)
	first := min(max(curCol-visible/2, 0), max(len(cols)-visible, 0))
	colWidth := width / visible

	styles := m.theme.Styles()
	var rendered []string
	for ci := first; ci < min(first+visible, len(cols)); ci++ {
		col := cols[ci]
		inner := colWidth - 4
		var body []string
		start, end := 0, min(len(lines[ci]), cardsVisible)
		if ci == curCol {
			start, end = scrollWindow(curRow, len(lines[ci]), cardsVisible)
		}
		for _, card := range lines[ci][start:end] {
			title := truncate(card.Title, inner)
			detail := truncate(card.Detail, inner)
			switch {
			case card.Held:
				body = append(body,
					styles.Selected.Width(inner).Render("⇄ "+truncate(card.Title, inner-2)),
					styles.Selected.Width(inner).Render(detail))
			case card.Selected:
				body = append(body,
					styles.AccentText.Bold(true).Render("› "+truncate(card.Title, inner-2)),
					styles.MutedText.Render("  "+truncate(card.Detail, inner-2)))
			default:
				body = append(body, styles.Text.Render(title), styles.FaintText.Render(detail))
			}
			body = append(body, "")
		}
		if len(col.Cards) == 0 {
			body = append(body, styles.FaintText.Render("Empty"))
		}
		title := fmt.Sprintf("%s %d · $%s", col.Stage, len(col.Cards), humanize.Comma(col.Total()))
		box := m.renderTitledBox(title, strings.Join(body, "\n"), colWidth, height, ci == curCol)
		rendered = append(rendered, box)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/pulse/internal/crm"
	"github.com/five82/pulse/internal/feed"
)

// activityPane owns the live feed and its insertion timer. Only the timer
// started by the most recent init is live.
type activityPane struct {
	feed     *feed.Activity
	interval time.Duration
	gen      int
}

func newActivityPane(f *feed.Activity, interval time.Duration) *activityPane {
	return &activityPane{feed: f, interval: interval}
}

// init starts the insertion timer, superseding any earlier one.
func (p *activityPane) init() tea.Cmd {
	if p == nil {
		return nil
	}
	p.gen++
	if p.interval <= 0 {
		return nil
	}
	return activityTickCmd(p.interval, p.gen)
}

// handleTick inserts one entry and schedules the next tick. Ticks from a
// superseded timer are dropped.
func (p *activityPane) handleTick(msg activityTickMsg) tea.Cmd {
	if p == nil || msg.gen != p.gen {
		return nil
	}
	p.feed.Tick()
	return activityTickCmd(p.interval, p.gen)
}

// dispose stops the timer.
func (p *activityPane) dispose() {
	if p == nil {
		return
	}
	p.gen++
}

// activityRow is one rendered feed line.
type activityRow struct {
	Initials string
	Actor    string
	Action   string
	Time     string
}

// activityRows projects the visible entries into display rows.
func activityRows(entries []crm.ActivityEntry) []activityRow {
	rows := make([]activityRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, activityRow{
			Initials: e.Initials(),
			Actor:    e.Actor,
			Action:   e.Action,
			Time:     e.TimeLabel,
		})
	}
	return rows
}

// renderActivity renders the visible slice of the feed.
func (m Model) renderActivity(width, height int) string {
	styles := m.theme.Styles()
	rows := activityRows(m.activity.feed.Visible())

	var lines []string
	for _, r := range rows {
		avatar := styles.Selected.Bold(true).Render(padRight(r.Initials, 2))
		text := styles.Text.Bold(true).Render(r.Actor) + " " + styles.Text.Render(r.Action)
		lines = append(lines,
			avatar+" "+text,
			"   "+styles.FaintText.Render(r.Time),
		)
	}
	if len(lines) == 0 {
		lines = append(lines, styles.MutedText.Render("No activity yet"))
	}
	return m.renderTitledBox("Live activity", strings.Join(lines, "\n"), width, height, true)
}

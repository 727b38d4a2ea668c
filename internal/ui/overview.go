package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/five82/pulse/internal/chart"
	"github.com/five82/pulse/internal/config"
	"github.com/five82/pulse/internal/crm"
	"github.com/five82/pulse/internal/kpi"
)

// overviewPane owns the KPI counters and the mounted charts.
type overviewPane struct {
	counters kpi.Set
	interval time.Duration
	gen      int

	specs  []chart.Spec
	mounts *chart.Mounts
	logger *zap.Logger
}

func newOverviewPane(metrics []crm.Metric, specs []chart.Spec, cfg config.Config, logger *zap.Logger) *overviewPane {
	return &overviewPane{
		counters: kpi.NewSet(metrics, cfg.CounterSteps),
		interval: kpi.Interval(cfg.CounterDuration, cfg.CounterSteps),
		specs:    specs,
		mounts:   chart.NewMounts(),
		logger:   logger,
	}
}

// init restarts the counter animation and mounts the charts. Ticks from an
// earlier run are ignored.
func (p *overviewPane) init(th Theme) tea.Cmd {
	if p == nil {
		return nil
	}
	p.gen++
	p.counters.Reset()
	p.mountCharts(th)
	if p.interval <= 0 || p.counters.Done() {
		p.counters.Finish()
		return nil
	}
	return counterTickCmd(p.interval, p.gen)
}

// settle shows the final counter values without animating.
func (p *overviewPane) settle(th Theme) {
	if p == nil {
		return
	}
	p.gen++
	p.counters.Finish()
	p.mountCharts(th)
}

func (p *overviewPane) handleTick(msg counterTickMsg) tea.Cmd {
	if p == nil || msg.gen != p.gen {
		return nil
	}
	if p.counters.Advance() {
		return counterTickCmd(p.interval, p.gen)
	}
	return nil
}

// mountCharts (re)creates every chart with the theme's palette. Mounting
// destroys the chart previously held under the same id.
func (p *overviewPane) mountCharts(th Theme) {
	if p == nil {
		return
	}
	for _, spec := range p.specs {
		if _, err := p.mounts.Mount(spec.ID, spec, th.ChartPalette()); err != nil {
			p.logger.Warn("mount chart", zap.String("chart", spec.ID), zap.Error(err))
		}
	}
}

func (p *overviewPane) dispose() {
	if p == nil {
		return
	}
	p.gen++
	p.mounts.DestroyAll()
}

// renderOverview renders the KPI tiles above the charts.
func (m Model) renderOverview(width, height int) string {
	var sections []string
	used := 0
	if len(m.overview.counters) > 0 {
		tiles := m.renderKPITiles(width)
		sections = append(sections, tiles)
		used = lipgloss.Height(tiles)
	}
	if charts := m.renderCharts(width, height-used); charts != "" {
		sections = append(sections, charts)
	}
	return strings.Join(sections, "\n")
}

// renderKPITiles lays the counters out in one row, or two per row when
// narrow.
func (m Model) renderKPITiles(width int) string {
	counters := m.overview.counters
	perRow := len(counters)
	if width < LayoutCompactWidth {
		perRow = min(2, perRow)
	}
	tileWidth := width / perRow

	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	var rows []string
	for start := 0; start < len(counters); start += perRow {
		var tiles []string
		for _, c := range counters[start:min(start+perRow, len(counters))] {
			body := strings.Join([]string{
				styles.Text.Bold(true).Render(c.Text()),
				styles.SuccessText.Render(c.Metric.Trend),
			}, "\n")
			tiles = append(tiles, m.renderTitledBox(c.Metric.Label, body, tileWidth, kpiTileHeight, false))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}
	return strings.Join(rows, "\n")
}

// renderCharts draws the first chart full width and the rest side by side
// beneath it.
func (m Model) renderCharts(width, height int) string {
	ids := make([]string, 0, len(m.overview.specs))
	for _, spec := range m.overview.specs {
		if m.overview.mounts.Get(spec.ID) != nil {
			ids = append(ids, spec.ID)
		}
	}
	if len(ids) == 0 || height < 4 {
		return ""
	}

	if len(ids) == 1 {
		return m.renderChartBox(ids[0], width, height)
	}

	topHeight := height / 2
	bottomHeight := height - topHeight
	top := m.renderChartBox(ids[0], width, topHeight)

	rest := ids[1:]
	cellWidth := width / len(rest)
	cells := make([]string, 0, len(rest))
	for i, id := range rest {
		w := cellWidth
		if i == len(rest)-1 {
			w = width - cellWidth*(len(rest)-1)
		}
		cells = append(cells, m.renderChartBox(id, w, bottomHeight))
	}
	return top + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m Model) renderChartBox(id string, width, height int) string {
	c := m.overview.mounts.Get(id)
	if c == nil {
		return ""
	}
	body, err := c.Render(width-4, height-2)
	if err != nil {
		body = m.theme.Styles().DangerText.Render(err.Error())
	}
	body = indent(body, 1)
	return m.renderTitledBox(c.Spec().Title, body, width, height, false)
}

// indent prefixes every line with n spaces.
func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}

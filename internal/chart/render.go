package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// eighths holds the partial block glyphs used for the top edge of an area.
var eighths = []rune(" ▁▂▃▄▅▆▇█")

const (
	areaFill    = '░'
	barFill     = '█'
	maxLabelLen = 14
)

// renderLine draws the first dataset as a filled area with a solid top edge.
func (c *Chart) renderLine(width, height int) []string {
	ds := c.spec.Datasets[0]
	n := len(ds.Data)
	if n == 0 {
		return nil
	}
	peak := maxOf(ds.Data)

	axisW := 0
	if !c.spec.Options.Scales.Y.Hidden {
		axisW = max(runeLen(c.tick(peak)), runeLen(c.tick(0))) + 1
	}
	plotH := max(height-1, 1)
	colW := max((width-axisW)/n, 1)

	series := fg(seriesColor(ds, 0, c.palette.Text))
	muted := fg(c.palette.Muted)
	grid := fg(c.palette.Grid)

	lines := make([]string, 0, plotH+1)
	for row := 0; row < plotH; row++ {
		var b strings.Builder
		if axisW > 0 {
			label := ""
			switch row {
			case 0:
				label = c.tick(peak)
			case plotH - 1:
				label = c.tick(0)
			}
			b.WriteString(muted.Render(padLeft(label, axisW-1)))
			b.WriteString(grid.Render("┤"))
		}
		floor := (plotH - 1 - row) * 8
		for _, v := range ds.Data {
			level := 0
			if peak > 0 {
				level = int(math.Round(v / peak * float64(plotH*8)))
			}
			fill := level - floor
			var cell rune
			switch {
			case fill <= 0:
				cell = ' '
			case fill <= 8:
				cell = eighths[fill]
			default:
				cell = areaFill
			}
			b.WriteString(series.Render(strings.Repeat(string(cell), colW)))
		}
		lines = append(lines, b.String())
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", axisW))
	for _, label := range c.spec.Labels {
		b.WriteString(muted.Render(center(clip(label, colW), colW)))
	}
	return append(lines, b.String())
}

// renderBar draws one horizontal bar per label.
func (c *Chart) renderBar(width, height int) []string {
	ds := c.spec.Datasets[0]
	peak := maxOf(ds.Data)

	labelW := 0
	for _, label := range c.spec.Labels {
		labelW = max(labelW, runeLen(label))
	}
	labelW = min(labelW, maxLabelLen)
	valueW := 0
	for _, v := range ds.Data {
		valueW = max(valueW, runeLen(c.tick(v)))
	}
	barW := max(width-labelW-valueW-2, 1)

	muted := fg(c.palette.Muted)
	text := fg(c.palette.Text)

	lines := make([]string, 0, len(ds.Data))
	for i, v := range ds.Data {
		if i >= height {
			break
		}
		n := 0
		if peak > 0 {
			n = int(math.Round(v / peak * float64(barW)))
		}
		bar := fg(seriesColor(ds, i, c.palette.Text)).Render(strings.Repeat(string(barFill), n))
		lines = append(lines, muted.Render(padRight(clip(c.spec.Labels[i], labelW), labelW))+" "+
			bar+strings.Repeat(" ", barW-n)+" "+
			text.Render(padLeft(c.tick(v), valueW)))
	}
	return lines
}

// renderDoughnut draws the slices as one proportional band followed by a
// legend with each slice's share.
func (c *Chart) renderDoughnut(width, height int) []string {
	ds := c.spec.Datasets[0]
	total := 0.0
	for _, v := range ds.Data {
		total += v
	}

	var band strings.Builder
	if total > 0 {
		cum := 0.0
		for i, v := range ds.Data {
			start := int(math.Round(cum / total * float64(width)))
			cum += v
			end := int(math.Round(cum / total * float64(width)))
			band.WriteString(fg(seriesColor(ds, i, c.palette.Text)).Render(strings.Repeat(string(barFill), end-start)))
		}
	} else {
		band.WriteString(fg(c.palette.Grid).Render(strings.Repeat("─", width)))
	}
	lines := []string{band.String()}

	legend := c.spec.Options.Plugins.Legend
	if !legend.Display {
		return lines
	}
	lines = append(lines, "")
	text := fg(c.palette.Text)
	muted := fg(c.palette.Muted)
	for i, label := range c.spec.Labels {
		if len(lines) >= height {
			break
		}
		share := 0.0
		if total > 0 {
			share = ds.Data[i] / total * 100
		}
		lines = append(lines, fg(seriesColor(ds, i, c.palette.Text)).Render("●")+" "+
			text.Render(padRight(clip(label, maxLabelLen), maxLabelLen))+" "+
			muted.Render(fmt.Sprintf("%3.0f%%", share)))
	}
	return lines
}

// seriesColor picks the color for point i: per-point colors when the dataset
// has one per value, otherwise the first color, otherwise fallback.
func seriesColor(ds Dataset, i int, fallback string) string {
	switch {
	case len(ds.Colors) == len(ds.Data) && i < len(ds.Colors):
		return ds.Colors[i]
	case len(ds.Colors) > 0:
		return ds.Colors[0]
	default:
		return fallback
	}
}

func fg(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

func maxOf(values []float64) float64 {
	peak := 0.0
	for _, v := range values {
		peak = max(peak, v)
	}
	return peak
}

func runeLen(s string) int {
	return len([]rune(s))
}

func clip(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}

func padRight(s string, width int) string {
	if n := runeLen(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func padLeft(s string, width int) string {
	if n := runeLen(s); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}

func center(s string, width int) string {
	n := runeLen(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}

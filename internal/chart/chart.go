// Package chart renders declarative chart descriptions as terminal graphics.
//
// A Spec describes what to draw (type, labels, datasets, options). New turns a
// Spec into a Chart handle bound to a palette; the handle must be destroyed
// before another chart is created on the same mount. Mounts enforces that.
package chart

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Type selects the chart renderer.
type Type string

const (
	Line     Type = "line"
	Bar      Type = "bar"
	Doughnut Type = "doughnut"
)

// Spec is the declarative chart description.
type Spec struct {
	ID       string    `yaml:"id"`
	Title    string    `yaml:"title"`
	Type     Type      `yaml:"type"`
	Labels   []string  `yaml:"labels"`
	Datasets []Dataset `yaml:"datasets"`
	Options  Options   `yaml:"options"`
}

// Dataset is one series of values. Colors holds either a single series color
// or one color per label (doughnut slices).
type Dataset struct {
	Label  string    `yaml:"label"`
	Data   []float64 `yaml:"data"`
	Colors []string  `yaml:"colors"`
}

// Options mirrors the scales/plugins split of browser charting libraries.
type Options struct {
	Scales  Scales  `yaml:"scales"`
	Plugins Plugins `yaml:"plugins"`
}

// Scales configures the value axis.
type Scales struct {
	Y Axis `yaml:"y"`
}

// Axis configures tick rendering. TickFormat is a fmt verb string applied to
// each tick value, e.g. "$%gk".
type Axis struct {
	TickFormat string `yaml:"tick_format"`
	Hidden     bool   `yaml:"hidden"`
}

// Plugins configures chart decorations.
type Plugins struct {
	Legend Legend `yaml:"legend"`
}

// Legend controls the series legend.
type Legend struct {
	Display  bool   `yaml:"display"`
	Position string `yaml:"position"` // "bottom" or "right"
}

// Palette carries the theme colors a chart reads at creation time.
type Palette struct {
	Text  string
	Muted string
	Grid  string
}

// ErrDestroyed is returned when rendering a chart that was torn down.
var ErrDestroyed = errors.New("chart destroyed")

// Validate reports whether the spec can be rendered.
func (s Spec) Validate() error {
	switch s.Type {
	case Line, Bar, Doughnut:
	default:
		return fmt.Errorf("chart %q: unknown type %q", s.ID, s.Type)
	}
	if len(s.Datasets) == 0 {
		return fmt.Errorf("chart %q: no datasets", s.ID)
	}
	for i, ds := range s.Datasets {
		if len(ds.Data) != len(s.Labels) {
			return fmt.Errorf("chart %q: dataset %d has %d values for %d labels", s.ID, i, len(ds.Data), len(s.Labels))
		}
		for _, v := range ds.Data {
			if math.IsInf(v, 0) || math.IsNaN(v) {
				return fmt.Errorf("chart %q: dataset %d has non-finite value %g", s.ID, i, v)
			}
			if v < 0 {
				return fmt.Errorf("chart %q: dataset %d has negative value %g", s.ID, i, v)
			}
		}
	}
	return nil
}

// Chart is a live chart handle.
type Chart struct {
	spec      Spec
	palette   Palette
	destroyed bool
}

// New validates spec and returns a handle drawing with palette.
func New(spec Spec, palette Palette) (*Chart, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &Chart{spec: spec, palette: palette}, nil
}

// Spec returns the description the chart was created from.
func (c *Chart) Spec() Spec {
	return c.spec
}

// Destroy tears the chart down. It is safe to call more than once.
func (c *Chart) Destroy() {
	c.destroyed = true
}

// Destroyed reports whether Destroy has been called.
func (c *Chart) Destroyed() bool {
	return c.destroyed
}

// Render draws the chart into a width x height block of text.
func (c *Chart) Render(width, height int) (string, error) {
	if c.destroyed {
		return "", ErrDestroyed
	}
	if width <= 0 || height <= 0 {
		return "", nil
	}
	var lines []string
	switch c.spec.Type {
	case Line:
		lines = c.renderLine(width, height)
	case Bar:
		lines = c.renderBar(width, height)
	case Doughnut:
		lines = c.renderDoughnut(width, height)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n"), nil
}

func (c *Chart) tick(v float64) string {
	format := c.spec.Options.Scales.Y.TickFormat
	if format == "" {
		format = "%g"
	}
	return fmt.Sprintf(format, v)
}

// Package kpi animates the headline metric counters on the overview.
package kpi

import (
	"fmt"
	"math"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/five82/pulse/internal/crm"
)

const (
	DefaultSteps    = 50
	DefaultDuration = 1300 * time.Millisecond
)

// Counter counts from zero up to a target in equal increments.
type Counter struct {
	Metric crm.Metric

	steps int
	step  int
	value float64
}

// NewCounter returns a counter at zero. steps < 1 jumps straight to the target.
func NewCounter(m crm.Metric, steps int) *Counter {
	return &Counter{Metric: m, steps: max(steps, 1)}
}

// Interval is the delay between increments for an animation lasting d.
func Interval(d time.Duration, steps int) time.Duration {
	if steps < 1 || d <= 0 {
		return 0
	}
	return d / time.Duration(steps)
}

// Advance moves one increment toward the target and reports whether the
// counter is still running.
func (c *Counter) Advance() bool {
	if c.Done() {
		return false
	}
	c.step++
	if c.step >= c.steps {
		c.value = c.Metric.Target
	} else {
		c.value = min(c.Metric.Target*float64(c.step)/float64(c.steps), c.Metric.Target)
	}
	return !c.Done()
}

// Finish jumps to the target.
func (c *Counter) Finish() {
	c.step = c.steps
	c.value = c.Metric.Target
}

// Reset returns the counter to zero.
func (c *Counter) Reset() {
	c.step = 0
	c.value = 0
}

// Done reports whether the counter has reached its target.
func (c *Counter) Done() bool { return c.step >= c.steps }

// Value is the current, possibly fractional, count.
func (c *Counter) Value() float64 { return c.value }

// Step is the number of increments taken so far.
func (c *Counter) Step() int { return c.step }

// Text renders the current value in the metric's format.
func (c *Counter) Text() string {
	return Format(c.value, c.Metric.Format)
}

// Set drives a group of counters off a single tick.
type Set []*Counter

// NewSet builds one counter per metric.
func NewSet(metrics []crm.Metric, steps int) Set {
	set := make(Set, 0, len(metrics))
	for _, m := range metrics {
		set = append(set, NewCounter(m, steps))
	}
	return set
}

// Advance steps every unfinished counter and reports whether any is still
// running.
func (s Set) Advance() bool {
	running := false
	for _, c := range s {
		if c.Advance() {
			running = true
		}
	}
	return running
}

func (s Set) Reset() {
	for _, c := range s {
		c.Reset()
	}
}

func (s Set) Finish() {
	for _, c := range s {
		c.Finish()
	}
}

func (s Set) Done() bool {
	for _, c := range s {
		if !c.Done() {
			return false
		}
	}
	return true
}

// Format renders v as currency ($1,284,500), percent (24.8%) or a plain
// number with thousands separators.
func Format(v float64, format crm.MetricFormat) string {
	switch format {
	case crm.FormatCurrency:
		return "$" + humanize.Comma(int64(math.Round(v)))
	case crm.FormatPercent:
		return fmt.Sprintf("%.1f%%", v)
	default:
		return humanize.Comma(int64(math.Round(v)))
	}
}

package feed

import (
	"math/rand/v2"
	"slices"

	"github.com/five82/pulse/internal/crm"
)

const (
	// DefaultActivityCapacity bounds the stored activity entries.
	DefaultActivityCapacity = 12
	// DefaultActivityVisible is how many entries the feed shows.
	DefaultActivityVisible = 6
)

// Source picks a uniformly random index in [0, n).
type Source interface {
	IntN(n int) int
}

// Activity is the capacity-bounded activity feed with synthetic inserts.
type Activity struct {
	feed      *Feed[crm.ActivityEntry]
	templates []crm.ActivityEntry
	visible   int
	rng       Source
}

// ActivityOption configures Activity.
type ActivityOption func(*Activity)

// WithSource injects the random source used by Tick.
func WithSource(src Source) ActivityOption {
	return func(a *Activity) {
		a.rng = src
	}
}

// WithCapacity overrides the storage bound.
func WithCapacity(n int) ActivityOption {
	return func(a *Activity) {
		if n > 0 {
			a.feed = From(n, a.feed.items)
		}
	}
}

// WithVisible overrides how many entries Visible returns.
func WithVisible(n int) ActivityOption {
	return func(a *Activity) {
		if n > 0 {
			a.visible = n
		}
	}
}

// NewActivity returns a feed holding seed (newest first) that draws synthetic
// entries from templates.
func NewActivity(seed, templates []crm.ActivityEntry, opts ...ActivityOption) *Activity {
	a := &Activity{
		feed:      From(DefaultActivityCapacity, seed),
		templates: slices.Clone(templates),
		visible:   DefaultActivityVisible,
		rng:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Tick prepends one template chosen uniformly at random. It reports false
// when there are no templates.
func (a *Activity) Tick() (crm.ActivityEntry, bool) {
	if len(a.templates) == 0 {
		return crm.ActivityEntry{}, false
	}
	next := a.templates[a.rng.IntN(len(a.templates))]
	a.feed.Prepend(next)
	return next, true
}

// Visible returns the entries the feed displays.
func (a *Activity) Visible() []crm.ActivityEntry {
	return a.feed.Head(a.visible)
}

// Items returns every stored entry, newest first.
func (a *Activity) Items() []crm.ActivityEntry {
	return a.feed.Items()
}

// Len is the number of stored entries.
func (a *Activity) Len() int {
	return a.feed.Len()
}

// Capacity is the storage bound.
func (a *Activity) Capacity() int {
	return a.feed.Capacity()
}

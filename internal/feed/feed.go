// Package feed implements the bounded, newest-first logs behind the task list
// and the activity feed.
package feed

import "slices"

// Feed is a newest-first log. A positive capacity bounds its size: after a
// Prepend overflows, the oldest entries are evicted from the tail.
type Feed[T any] struct {
	items    []T
	capacity int
}

// New returns an empty feed. capacity <= 0 means unbounded.
func New[T any](capacity int) *Feed[T] {
	return &Feed[T]{capacity: max(capacity, 0)}
}

// From returns a feed holding seed in the given order, trimmed to capacity.
func From[T any](capacity int, seed []T) *Feed[T] {
	f := New[T](capacity)
	f.items = slices.Clone(seed)
	f.trim()
	return f
}

// Capacity is the size bound, zero when unbounded.
func (f *Feed[T]) Capacity() int {
	return f.capacity
}

// Len is the number of entries held.
func (f *Feed[T]) Len() int {
	return len(f.items)
}

// Prepend inserts entry at the head and returns whatever was evicted from
// the tail, oldest last.
func (f *Feed[T]) Prepend(entry T) []T {
	f.items = slices.Insert(f.items, 0, entry)
	return f.trim()
}

// Items returns a copy of every entry, newest first.
func (f *Feed[T]) Items() []T {
	return slices.Clone(f.items)
}

// Head returns a copy of the first n entries.
func (f *Feed[T]) Head(n int) []T {
	n = min(max(n, 0), len(f.items))
	return slices.Clone(f.items[:n])
}

// RemoveFirst deletes the first entry matching match. It reports whether
// anything was removed.
func (f *Feed[T]) RemoveFirst(match func(T) bool) bool {
	i := slices.IndexFunc(f.items, match)
	if i < 0 {
		return false
	}
	f.items = slices.Delete(f.items, i, i+1)
	return true
}

// Update applies fn to the first entry matching match, in place.
func (f *Feed[T]) Update(match func(T) bool, fn func(*T)) bool {
	i := slices.IndexFunc(f.items, match)
	if i < 0 {
		return false
	}
	fn(&f.items[i])
	return true
}

func (f *Feed[T]) trim() []T {
	if f.capacity == 0 || len(f.items) <= f.capacity {
		return nil
	}
	evicted := slices.Clone(f.items[f.capacity:])
	clear(f.items[f.capacity:])
	f.items = f.items[:f.capacity]
	return evicted
}

package listview

import "slices"

// View owns a backing collection and its view state.
type View[T any] struct {
	schema *Schema[T]
	items  []T
	state  State
}

// NewView returns a view over a copy of items. A zero page size becomes 1.
func NewView[T any](schema *Schema[T], items []T, st State) *View[T] {
	v := &View[T]{schema: schema, items: slices.Clone(items), state: st}
	v.state.PageSize = max(v.state.PageSize, 1)
	v.clamp()
	return v
}

// State returns the current, already clamped, view state.
func (v *View[T]) State() State {
	return v.state
}

// Page derives the visible page.
func (v *View[T]) Page() Page[T] {
	return v.schema.Apply(v.items, v.state)
}

// Len is the size of the backing collection.
func (v *View[T]) Len() int {
	return len(v.items)
}

// SetQuery replaces the search query and returns to the first page.
func (v *View[T]) SetQuery(query string) {
	if query == v.state.Query {
		return
	}
	v.state.Query = query
	v.state.Page = 1
	v.clamp()
}

// SortBy selects key as the sort field. Selecting the active key again flips
// the direction; a new key starts ascending. Unknown keys are ignored. The
// current page is kept when still in range.
func (v *View[T]) SortBy(key string) {
	if !v.schema.Has(key) {
		return
	}
	if v.state.SortKey == key {
		if v.state.SortDir == Asc {
			v.state.SortDir = Desc
		} else {
			v.state.SortDir = Asc
		}
	} else {
		v.state.SortKey = key
		v.state.SortDir = Asc
	}
	v.clamp()
}

// SetPage jumps to page, clamped into range.
func (v *View[T]) SetPage(page int) {
	v.state.Page = page
	v.clamp()
}

// NextPage advances one page, stopping at the last.
func (v *View[T]) NextPage() {
	v.SetPage(v.state.Page + 1)
}

// PrevPage goes back one page, stopping at the first.
func (v *View[T]) PrevPage() {
	v.SetPage(v.state.Page - 1)
}

// Replace swaps the backing collection.
func (v *View[T]) Replace(items []T) {
	v.items = slices.Clone(items)
	v.clamp()
}

func (v *View[T]) clamp() {
	count := 0
	for _, item := range v.items {
		if v.schema.Matches(item, v.state.Query) {
			count++
		}
	}
	v.state.Page = Clamp(v.state.Page, TotalPages(count, v.state.PageSize))
}

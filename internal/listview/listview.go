package listview

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Direction is the sort direction.
type Direction int

const (
	Asc Direction = iota
	Desc
)

func (d Direction) String() string {
	if d == Desc {
		return "desc"
	}
	return "asc"
}

// Field is a typed accessor for one column of T.
type Field[T any] struct {
	Key     string
	Text    func(T) string
	Compare func(a, b T) int
}

// Number covers the numeric field types.
type Number interface {
	~int | ~int32 | ~int64 | ~float64
}

// TextField declares a field compared as case-sensitive strings.
func TextField[T any](key string, get func(T) string) Field[T] {
	return Field[T]{
		Key:  key,
		Text: get,
		Compare: func(a, b T) int {
			return strings.Compare(get(a), get(b))
		},
	}
}

// NumberField declares a field compared numerically.
func NumberField[T any, N Number](key string, get func(T) N) Field[T] {
	return Field[T]{
		Key:  key,
		Text: func(v T) string { return fmt.Sprint(get(v)) },
		Compare: func(a, b T) int {
			return cmp.Compare(get(a), get(b))
		},
	}
}

// Schema is the accessor table for T plus the fields that make up its
// searchable text.
type Schema[T any] struct {
	fields map[string]Field[T]
	search []Field[T]
}

// NewSchema builds a schema. searchKeys must name declared fields.
func NewSchema[T any](fields []Field[T], searchKeys ...string) (*Schema[T], error) {
	s := &Schema[T]{fields: make(map[string]Field[T], len(fields))}
	for _, f := range fields {
		if f.Key == "" || f.Text == nil || f.Compare == nil {
			return nil, fmt.Errorf("field %q: key, text and compare are required", f.Key)
		}
		if _, dup := s.fields[f.Key]; dup {
			return nil, fmt.Errorf("field %q declared twice", f.Key)
		}
		s.fields[f.Key] = f
	}
	for _, key := range searchKeys {
		f, ok := s.fields[key]
		if !ok {
			return nil, fmt.Errorf("search field %q is not declared", key)
		}
		s.search = append(s.search, f)
	}
	return s, nil
}

// Has reports whether key is a declared field.
func (s *Schema[T]) Has(key string) bool {
	_, ok := s.fields[key]
	return ok
}

// Text renders field key of item, or "" for an unknown key.
func (s *Schema[T]) Text(item T, key string) string {
	f, ok := s.fields[key]
	if !ok {
		return ""
	}
	return f.Text(item)
}

// Matches reports whether item's searchable text contains query,
// ignoring case.
func (s *Schema[T]) Matches(item T, query string) bool {
	if query == "" {
		return true
	}
	parts := make([]string, len(s.search))
	for i, f := range s.search {
		parts[i] = f.Text(item)
	}
	return strings.Contains(strings.ToLower(strings.Join(parts, " ")), strings.ToLower(query))
}

// Filter returns the items matching query in their original order. The
// result never aliases items.
func (s *Schema[T]) Filter(items []T, query string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if s.Matches(item, query) {
			out = append(out, item)
		}
	}
	return out
}

// Sort stably sorts items in place by key. Unknown or empty keys leave the
// order untouched.
func (s *Schema[T]) Sort(items []T, key string, dir Direction) {
	f, ok := s.fields[key]
	if !ok {
		return
	}
	slices.SortStableFunc(items, func(a, b T) int {
		c := f.Compare(a, b)
		if dir == Desc {
			return -c
		}
		return c
	})
}

// State is the per-list view state.
type State struct {
	Query    string
	SortKey  string
	SortDir  Direction
	Page     int
	PageSize int
}

// Page is the derived, render-ready slice of a list.
type Page[T any] struct {
	Items      []T
	Page       int
	TotalPages int
	Total      int // items after filtering
}

// Apply filters, sorts and paginates items according to st.
func (s *Schema[T]) Apply(items []T, st State) Page[T] {
	filtered := s.Filter(items, st.Query)
	s.Sort(filtered, st.SortKey, st.SortDir)
	return Paginate(filtered, st.Page, st.PageSize)
}

// Paginate slices out one page of items, clamping page into range.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	pageSize = max(pageSize, 1)
	total := TotalPages(len(items), pageSize)
	page = Clamp(page, total)
	start := (page - 1) * pageSize
	end := min(start+pageSize, len(items))
	return Page[T]{
		Items:      slices.Clone(items[start:end]),
		Page:       page,
		TotalPages: total,
		Total:      len(items),
	}
}

// TotalPages is ceil(count/pageSize), never less than 1.
func TotalPages(count, pageSize int) int {
	pageSize = max(pageSize, 1)
	if count <= 0 {
		return 1
	}
	return (count + pageSize - 1) / pageSize
}

// Clamp moves page into [1, totalPages].
func Clamp(page, totalPages int) int {
	totalPages = max(totalPages, 1)
	return min(max(page, 1), totalPages)
}

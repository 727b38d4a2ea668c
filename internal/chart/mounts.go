package chart

import "sort"

// Mounts keeps at most one live chart per mount id.
type Mounts struct {
	charts  map[string]*Chart
	created int
}

// NewMounts returns an empty mount table.
func NewMounts() *Mounts {
	return &Mounts{charts: make(map[string]*Chart)}
}

// Mount creates a chart for spec on mount id, destroying whatever chart
// currently occupies that mount first. On error the previous chart is left
// in place.
func (m *Mounts) Mount(id string, spec Spec, palette Palette) (*Chart, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if old := m.charts[id]; old != nil {
		old.Destroy()
		delete(m.charts, id)
	}
	c := &Chart{spec: spec, palette: palette}
	m.charts[id] = c
	m.created++
	return c, nil
}

// Get returns the live chart on mount id, or nil.
func (m *Mounts) Get(id string) *Chart {
	return m.charts[id]
}

// IDs returns the occupied mount ids in sorted order.
func (m *Mounts) IDs() []string {
	ids := make([]string, 0, len(m.charts))
	for id := range m.charts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Live counts charts that have not been destroyed.
func (m *Mounts) Live() int {
	n := 0
	for _, c := range m.charts {
		if !c.Destroyed() {
			n++
		}
	}
	return n
}

// Created counts every chart ever mounted.
func (m *Mounts) Created() int {
	return m.created
}

// DestroyAll tears down every mounted chart and empties the table.
func (m *Mounts) DestroyAll() {
	for id, c := range m.charts {
		c.Destroy()
		delete(m.charts, id)
	}
}

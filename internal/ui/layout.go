package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which panes stack vertically.
	LayoutCompactWidth = 100

	// LayoutWideWidth is the width from which every pipeline column is shown
	// at once.
	LayoutWideWidth = 120
)

// Fixed chrome heights.
const (
	headerHeight = 2 // header line + command bar

	kpiTileHeight = 4
)

// scrollWindow returns the [start, end) slice of total rows that fits in
// visible rows while keeping cursor on screen, centred where possible.
func scrollWindow(cursor, total, visible int) (start, end int) {
	if visible <= 0 || total <= 0 {
		return 0, 0
	}
	if total <= visible {
		return 0, total
	}
	cursor = max(min(cursor, total-1), 0)
	start = min(max(cursor-visible/2, 0), total-visible)
	return start, start + visible
}

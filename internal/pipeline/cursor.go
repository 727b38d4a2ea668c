package pipeline

import "github.com/five82/pulse/internal/crm"

// Cursor is the focused column and row.
func (b *Board) Cursor() (col, row int) {
	return b.col, b.row
}

// Selected returns the focused card.
func (b *Board) Selected() (crm.Deal, bool) {
	if b.col >= len(b.columns) {
		return crm.Deal{}, false
	}
	cards := b.columns[b.col].Cards
	if b.row < 0 || b.row >= len(cards) {
		return crm.Deal{}, false
	}
	return cards[b.row], true
}

// Holding returns the id of the card being dragged, if any.
func (b *Board) Holding() (string, bool) {
	return b.held, b.held != ""
}

// Pick starts dragging the focused card. It reports false on an empty column.
func (b *Board) Pick() bool {
	card, ok := b.Selected()
	if !ok {
		return false
	}
	b.held = card.ID
	b.originCol, b.originRow = b.col, b.row
	return true
}

// Drop releases the held card where it is.
func (b *Board) Drop() (crm.Deal, bool) {
	if b.held == "" {
		return crm.Deal{}, false
	}
	card, ok := b.Selected()
	b.held = ""
	return card, ok
}

// Cancel puts a held card back at the column and row it was picked from.
func (b *Board) Cancel() {
	if b.held == "" {
		return
	}
	id := b.held
	b.held = ""
	b.place(id, b.originCol, b.originRow)
	b.focus(id)
}

// Left and Right move focus across columns. While a card is held they carry
// it along, appending it to the neighbouring column.
func (b *Board) Left() bool  { return b.shift(-1) }
func (b *Board) Right() bool { return b.shift(1) }

// Up and Down move focus within a column. They do nothing while dragging.
func (b *Board) Up() bool   { return b.vertical(-1) }
func (b *Board) Down() bool { return b.vertical(1) }

func (b *Board) shift(delta int) bool {
	next := b.col + delta
	if next < 0 || next >= len(b.columns) {
		return false
	}
	if b.held != "" {
		b.Move(b.held, b.columns[next].Stage)
		b.focus(b.held)
		return true
	}
	b.col = next
	b.row = min(b.row, max(len(b.columns[next].Cards)-1, 0))
	return true
}

func (b *Board) vertical(delta int) bool {
	if b.held != "" || b.col >= len(b.columns) {
		return false
	}
	next := b.row + delta
	if next < 0 || next >= len(b.columns[b.col].Cards) {
		return false
	}
	b.row = next
	return true
}

func (b *Board) focus(cardID string) {
	if col, row, ok := b.Find(cardID); ok {
		b.col, b.row = col, row
	}
}

// Package pipeline holds the deal board: one column per stage, cards moved
// between columns with a keyboard pick-up and drop.
package pipeline

import (
	"slices"

	"github.com/five82/pulse/internal/crm"
)

// Column is one stage of the board.
type Column struct {
	Stage crm.Stage
	Cards []crm.Deal
}

// Total sums the deal values in the column.
func (c Column) Total() int64 {
	var total int64
	for _, d := range c.Cards {
		total += d.Value
	}
	return total
}

// Board is the pipeline board plus its cursor and drag state.
type Board struct {
	columns []Column
	col     int
	row     int
	held    string

	// Where the held card was picked up, for Cancel.
	originCol int
	originRow int
}

// NewBoard lays deals out in stage order, keeping seed order within a column.
// Deals with an unknown stage are dropped.
func NewBoard(deals []crm.Deal) *Board {
	b := &Board{}
	for _, stage := range crm.Stages() {
		b.columns = append(b.columns, Column{Stage: stage})
	}
	for _, d := range deals {
		if i := b.columnIndex(d.Stage); i >= 0 {
			b.columns[i].Cards = append(b.columns[i].Cards, d)
		}
	}
	return b
}

// Columns returns a copy of the board.
func (b *Board) Columns() []Column {
	out := make([]Column, len(b.columns))
	for i, c := range b.columns {
		out[i] = Column{Stage: c.Stage, Cards: slices.Clone(c.Cards)}
	}
	return out
}

// Find returns the column and row of a card.
func (b *Board) Find(cardID string) (col, row int, ok bool) {
	for ci, c := range b.columns {
		for ri, d := range c.Cards {
			if d.ID == cardID {
				return ci, ri, true
			}
		}
	}
	return 0, 0, false
}

// Move reparents a card to the end of the stage's column. Unknown cards or
// stages leave the board untouched.
func (b *Board) Move(cardID string, stage crm.Stage) bool {
	to := b.columnIndex(stage)
	from, row, ok := b.Find(cardID)
	if to < 0 || !ok {
		return false
	}
	card := b.columns[from].Cards[row]
	b.columns[from].Cards = slices.Delete(b.columns[from].Cards, row, row+1)
	card.Stage = stage
	b.columns[to].Cards = append(b.columns[to].Cards, card)
	return true
}

// place reinserts a card at row of column col, clamping the row.
func (b *Board) place(cardID string, col, row int) {
	from, at, ok := b.Find(cardID)
	if !ok || col < 0 || col >= len(b.columns) {
		return
	}
	card := b.columns[from].Cards[at]
	b.columns[from].Cards = slices.Delete(b.columns[from].Cards, at, at+1)
	card.Stage = b.columns[col].Stage
	row = max(min(row, len(b.columns[col].Cards)), 0)
	b.columns[col].Cards = slices.Insert(b.columns[col].Cards, row, card)
}

func (b *Board) columnIndex(stage crm.Stage) int {
	return slices.IndexFunc(b.columns, func(c Column) bool { return c.Stage == stage })
}

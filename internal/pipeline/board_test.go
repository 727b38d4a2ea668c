package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/pulse/internal/crm"
)

func sampleDeals() []crm.Deal {
	return []crm.Deal{
		{ID: "a", Title: "A", Value: 10, Stage: crm.StageProspect},
		{ID: "b", Title: "B", Value: 20, Stage: crm.StageProspect},
		{ID: "c", Title: "C", Value: 30, Stage: crm.StageQualified},
		{ID: "z", Title: "Z", Value: 99, Stage: crm.Stage("Lost")},
	}
}

func ids(c Column) []string {
	var out []string
	for _, d := range c.Cards {
		out = append(out, d.ID)
	}
	return out
}

func TestNewBoard_GroupsByStage(t *testing.T) {
	b := NewBoard(sampleDeals())
	cols := b.Columns()
	require.Len(t, cols, len(crm.Stages()))
	assert.Equal(t, crm.StageProspect, cols[0].Stage)
	assert.Equal(t, []string{"a", "b"}, ids(cols[0]))
	assert.Equal(t, []string{"c"}, ids(cols[1]))
	assert.Equal(t, int64(30), cols[0].Total())
	_, _, ok := b.Find("z")
	assert.False(t, ok, "unknown stage is dropped")
}

func TestMove_AppendsToTarget(t *testing.T) {
	b := NewBoard(sampleDeals())
	require.True(t, b.Move("a", crm.StageQualified))
	cols := b.Columns()
	assert.Equal(t, []string{"b"}, ids(cols[0]))
	assert.Equal(t, []string{"c", "a"}, ids(cols[1]))
	assert.Equal(t, crm.StageQualified, cols[1].Cards[1].Stage)
}

func TestMove_UnknownIsNoOp(t *testing.T) {
	b := NewBoard(sampleDeals())
	before := b.Columns()
	assert.False(t, b.Move("missing", crm.StageClosed))
	assert.False(t, b.Move("a", crm.Stage("Lost")))
	assert.Equal(t, before, b.Columns())
}

func TestColumnsReturnsCopy(t *testing.T) {
	b := NewBoard(sampleDeals())
	cols := b.Columns()
	cols[0].Cards[0].Title = "changed"
	assert.Equal(t, "A", b.Columns()[0].Cards[0].Title)
}

package ui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/five82/pulse/internal/crm"
)

func pipelineModel(t *testing.T) Model {
	t.Helper()
	opts := testOptions(t)
	opts.StartView = ViewPipeline
	return newTestModel(t, opts)
}

func TestPipeline_DragCardAcrossStages(t *testing.T) {
	m := pipelineModel(t)

	m, _ = press(m, "space")
	id, holding := m.pipeline.board.Holding()
	if !holding || id != "deal-atlas" {
		t.Fatalf("Holding = %q, %v; want deal-atlas", id, holding)
	}
	if !strings.Contains(m.View(), "space:Drop") {
		t.Fatalf("command bar should offer Drop while holding")
	}

	m, _ = press(m, "right", "right", "space")
	if _, holding := m.pipeline.board.Holding(); holding {
		t.Fatalf("space did not drop the card")
	}
	col, _, ok := m.pipeline.board.Find("deal-atlas")
	if !ok || m.pipeline.board.Columns()[col].Stage != crm.StageDiscovery {
		t.Fatalf("deal-atlas not in Discovery")
	}
	cols := m.pipeline.board.Columns()
	if len(cols[0].Cards) != 1 || len(cols[2].Cards) != 2 {
		t.Fatalf("column sizes = %d/%d, want 1/2", len(cols[0].Cards), len(cols[2].Cards))
	}
	if last := cols[2].Cards[len(cols[2].Cards)-1]; last.ID != "deal-atlas" {
		t.Fatalf("dropped card should be appended, last = %q", last.ID)
	}
}

func TestPipeline_EscCancelsDrag(t *testing.T) {
	m := pipelineModel(t)
	m, _ = press(m, "space", "right", "esc")
	col, _, _ := m.pipeline.board.Find("deal-atlas")
	if m.pipeline.board.Columns()[col].Stage != crm.StageProspect {
		t.Fatalf("esc should return the card to Prospect")
	}
}

func TestPipelineColumns_MarksSelection(t *testing.T) {
	m := pipelineModel(t)
	m, _ = press(m, "down")
	cols := pipelineColumns(m.pipeline.board)
	if !cols[0][1].Selected || cols[0][0].Selected {
		t.Fatalf("selection not on the second Prospect card")
	}
	if cols[0][1].Detail != "Summit Logistics · $54,000" {
		t.Fatalf("Detail = %q", cols[0][1].Detail)
	}

	m, _ = press(m, "space")
	cols = pipelineColumns(m.pipeline.board)
	if !cols[0][1].Held {
		t.Fatalf("held card not marked")
	}
}

func TestPipeline_NarrowTerminalKeepsFocusVisible(t *testing.T) {
	m := pipelineModel(t)
	updated, _ := m.Update(teaWindow(60, 30))
	m = updated.(Model)
	m, _ = press(m, "right", "right", "right", "right", "right")
	view := m.View()
	if !strings.Contains(view, "Closed") {
		t.Fatalf("focused Closed column scrolled out of view")
	}
	if strings.Contains(view, "Prospect") {
		t.Fatalf("Prospect column should be scrolled out at 60 columns")
	}
}

func TestPipeline_TallColumnScrollsToSelection(t *testing.T) {
	opts := testOptions(t)
	opts.StartView = ViewPipeline
	for i := 1; i <= 10; i++ {
		opts.Seed.Deals = append(opts.Seed.Deals, crm.Deal{
			ID:      fmt.Sprintf("deal-extra-%d", i),
			Title:   fmt.Sprintf("Deal %02d", i),
			Company: "Acme",
			Value:   1000,
			Stage:   crm.StageProspect,
		})
	}
	m := newTestModel(t, opts)
	updated, _ := m.Update(teaWindow(120, 20))
	m = updated.(Model)

	for range 11 {
		m, _ = press(m, "down")
	}
	if _, row := m.pipeline.board.Cursor(); row != 11 {
		t.Fatalf("cursor row = %d, want 11", row)
	}
	view := m.View()
	if !strings.Contains(view, "Deal 10") {
		t.Fatalf("selected card not visible:\n%s", view)
	}
	if strings.Contains(view, "Deal 01") {
		t.Fatalf("top of the column should have scrolled away")
	}
}

func TestPipeline_WideTerminalShowsEveryStage(t *testing.T) {
	m := pipelineModel(t)
	view := m.View()
	for _, stage := range crm.Stages() {
		if !strings.Contains(view, string(stage)) {
			t.Fatalf("stage %s missing at width %d", stage, LayoutWideWidth)
		}
	}
}

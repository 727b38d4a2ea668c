package ui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/five82/pulse/internal/crm"
)

func tasksModel(t *testing.T, seed []crm.Task) Model {
	t.Helper()
	opts := testOptions(t)
	opts.Seed.Tasks = seed
	opts.StartView = ViewTasks
	return newTestModel(t, opts)
}

func TestTaskRows(t *testing.T) {
	tasks := []crm.Task{{ID: "a", Title: "Call"}, {ID: "b", Title: "Email", Done: true}}
	want := []taskRow{
		{ID: "a", Check: "[ ]", Title: "Call"},
		{ID: "b", Check: "[x]", Title: "Email", Done: true, Selected: true},
	}
	if diff := cmp.Diff(want, taskRows(tasks, 1)); diff != "" {
		t.Fatalf("taskRows mismatch (-want +got):\n%s", diff)
	}
}

func TestTasks_EmptyMessage(t *testing.T) {
	m := tasksModel(t, nil)
	if !strings.Contains(m.View(), emptyTasksMessage) {
		t.Fatalf("empty list message missing")
	}
}

func TestTasks_Lifecycle(t *testing.T) {
	m := tasksModel(t, nil)

	m, _ = press(m, "a")
	if !m.tasks.adding {
		t.Fatalf("a did not open the form")
	}
	m = typeText(m, "Call Northwind")
	m, _ = press(m, "enter")
	if m.tasks.adding {
		t.Fatalf("form still open after adding")
	}

	items := m.tasks.tasks.Items()
	if len(items) != 1 || items[0].Title != "Call Northwind" || items[0].ID != "task-1" || items[0].Done {
		t.Fatalf("items = %+v, want one open task", items)
	}

	m, _ = press(m, "space")
	if !m.tasks.tasks.Items()[0].Done {
		t.Fatalf("space did not mark the task done")
	}
	m, _ = press(m, "space")
	if m.tasks.tasks.Items()[0].Done {
		t.Fatalf("second space did not reopen the task")
	}

	m, _ = press(m, "x")
	if m.tasks.tasks.Len() != 0 {
		t.Fatalf("x did not delete the task")
	}
	if !strings.Contains(m.View(), emptyTasksMessage) {
		t.Fatalf("empty message missing after delete")
	}

	// Delete on an empty list is a no-op.
	m, _ = press(m, "d", "space")
	if m.tasks.tasks.Len() != 0 {
		t.Fatalf("Len = %d, want 0", m.tasks.tasks.Len())
	}
}

func TestTasks_BlankTitleKeepsFormOpen(t *testing.T) {
	m := tasksModel(t, nil)
	m, _ = press(m, "a")
	m = typeText(m, "   ")
	m, _ = press(m, "enter")
	if !m.tasks.adding {
		t.Fatalf("form closed on a blank title")
	}
	if m.tasks.tasks.Len() != 0 {
		t.Fatalf("blank task was added")
	}
	m, _ = press(m, "esc")
	if m.tasks.adding {
		t.Fatalf("esc did not close the form")
	}
}

func TestTasks_NewTaskIsPrepended(t *testing.T) {
	m := tasksModel(t, []crm.Task{{ID: "seed-1", Title: "Existing"}})
	m, _ = press(m, "j", "a")
	m = typeText(m, "Newest")
	m, _ = press(m, "enter")

	items := m.tasks.tasks.Items()
	if items[0].Title != "Newest" || items[1].Title != "Existing" {
		t.Fatalf("items = %+v, want new task first", items)
	}
	if m.tasks.cursor != 0 {
		t.Fatalf("cursor = %d, want 0 on the new task", m.tasks.cursor)
	}
}

func TestTasks_CursorClampsAfterDelete(t *testing.T) {
	m := tasksModel(t, []crm.Task{{ID: "1", Title: "a"}, {ID: "2", Title: "b"}})
	m, _ = press(m, "j", "j", "j")
	if m.tasks.cursor != 1 {
		t.Fatalf("cursor = %d, want 1", m.tasks.cursor)
	}
	m, _ = press(m, "x")
	if m.tasks.cursor != 0 {
		t.Fatalf("cursor = %d, want 0 after deleting the last row", m.tasks.cursor)
	}
	if got := m.tasks.tasks.Items()[0].ID; got != "1" {
		t.Fatalf("remaining task = %q, want 1", got)
	}
}

func TestTasks_ScrollKeepsSelectionVisible(t *testing.T) {
	var seed []crm.Task
	for i := range 33 {
		seed = append(seed, crm.Task{Title: fmt.Sprintf("Follow-up call %02d", i)})
	}
	m := tasksModel(t, seed)
	updated, _ := m.Update(teaWindow(100, 20))
	m = updated.(Model)

	for range 32 {
		m, _ = press(m, "down")
	}
	selected, ok := m.tasks.selected()
	if !ok || selected.Title != "Follow-up call 32" {
		t.Fatalf("selected = %q, %v; want the last task", selected.Title, ok)
	}
	view := m.View()
	if !strings.Contains(view, "Follow-up call 32") {
		t.Fatalf("selected task scrolled out of view:\n%s", view)
	}
	if strings.Contains(view, "Follow-up call 00") {
		t.Fatalf("first task should have scrolled off the top")
	}

	m, _ = press(m, "up", "up", "up", "up", "up", "up", "up", "up", "up", "up")
	if !strings.Contains(m.View(), "Follow-up call 22") {
		t.Fatalf("selection lost after scrolling back up")
	}
}

package feed

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/five82/pulse/internal/crm"
)

// ErrEmptyTitle rejects tasks whose title is blank after trimming.
var ErrEmptyTitle = errors.New("task title is empty")

// Tasks is the unbounded to-do list. New tasks go on top.
type Tasks struct {
	feed  *Feed[crm.Task]
	newID func() string
}

// TaskOption configures Tasks.
type TaskOption func(*Tasks)

// WithIDGenerator replaces the UUID generator used for new task ids.
func WithIDGenerator(fn func() string) TaskOption {
	return func(t *Tasks) {
		t.newID = fn
	}
}

// NewTasks returns a task list holding seed in order. Seed tasks without an
// id are given one.
func NewTasks(seed []crm.Task, opts ...TaskOption) *Tasks {
	t := &Tasks{newID: uuid.NewString}
	for _, opt := range opts {
		opt(t)
	}
	t.feed = From(0, seed)
	for i := range t.feed.items {
		task := &t.feed.items[i]
		task.Title = strings.TrimSpace(task.Title)
		if task.ID == "" {
			task.ID = t.newID()
		}
	}
	return t
}

// Add prepends a new open task and returns it.
func (t *Tasks) Add(title string) (crm.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return crm.Task{}, ErrEmptyTitle
	}
	task := crm.Task{ID: t.newID(), Title: title}
	t.feed.Prepend(task)
	return task, nil
}

// Toggle flips the done flag of task id. Unknown ids are ignored.
func (t *Tasks) Toggle(id string) bool {
	return t.feed.Update(byID(id), func(task *crm.Task) {
		task.Done = !task.Done
	})
}

// Remove deletes task id. Unknown ids are ignored.
func (t *Tasks) Remove(id string) bool {
	return t.feed.RemoveFirst(byID(id))
}

// Get returns task id.
func (t *Tasks) Get(id string) (crm.Task, bool) {
	for _, task := range t.feed.items {
		if task.ID == id {
			return task, true
		}
	}
	return crm.Task{}, false
}

// Items returns every task, newest first.
func (t *Tasks) Items() []crm.Task {
	return t.feed.Items()
}

// Len is the number of tasks.
func (t *Tasks) Len() int {
	return t.feed.Len()
}

// Open counts tasks not yet done.
func (t *Tasks) Open() int {
	n := 0
	for _, task := range t.feed.items {
		if !task.Done {
			n++
		}
	}
	return n
}

func byID(id string) func(crm.Task) bool {
	return func(task crm.Task) bool {
		return task.ID == id
	}
}

package feed

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/pulse/internal/crm"
)

func sequentialIDs() TaskOption {
	n := 0
	return WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("task-%d", n)
	})
}

func TestTasks_Lifecycle(t *testing.T) {
	tasks := NewTasks(nil, sequentialIDs())

	task, err := tasks.Add("X")
	require.NoError(t, err)
	assert.Equal(t, "task-1", task.ID)
	assert.False(t, task.Done)

	assert.True(t, tasks.Toggle(task.ID))
	got, ok := tasks.Get(task.ID)
	require.True(t, ok)
	assert.True(t, got.Done)

	assert.True(t, tasks.Toggle(task.ID))
	got, _ = tasks.Get(task.ID)
	assert.False(t, got.Done, "toggle flips back")

	assert.True(t, tasks.Remove(task.ID))
	_, ok = tasks.Get(task.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, tasks.Len())
}

func TestTasks_UnknownIDsAreNoOps(t *testing.T) {
	tasks := NewTasks([]crm.Task{{Title: "a"}, {Title: "b"}}, sequentialIDs())
	before := tasks.Items()

	assert.False(t, tasks.Remove("nope"))
	assert.False(t, tasks.Toggle("nope"))
	assert.Equal(t, 2, tasks.Len())
	assert.Equal(t, before, tasks.Items())
}

func TestTasks_AddPrependsAndTrims(t *testing.T) {
	tasks := NewTasks([]crm.Task{{Title: "seed"}}, sequentialIDs())

	task, err := tasks.Add("  Call Northwind  ")
	require.NoError(t, err)
	assert.Equal(t, "Call Northwind", task.Title)
	assert.Equal(t, "Call Northwind", tasks.Items()[0].Title)
	assert.Equal(t, "seed", tasks.Items()[1].Title)
}

func TestTasks_RejectsBlankTitle(t *testing.T) {
	tasks := NewTasks(nil)
	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := tasks.Add(title)
		assert.ErrorIs(t, err, ErrEmptyTitle)
	}
	assert.Equal(t, 0, tasks.Len())
}

func TestTasks_SeedKeepsOrderAndAssignsIDs(t *testing.T) {
	seed := []crm.Task{{Title: "first"}, {ID: "fixed", Title: "second", Done: true}}
	tasks := NewTasks(seed, sequentialIDs())
	items := tasks.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "task-1", items[0].ID)
	assert.Equal(t, "fixed", items[1].ID)
	assert.Equal(t, 1, tasks.Open())
	assert.Empty(t, seed[0].ID, "seed slice is not modified")
}

func TestTasks_DefaultIDsAreUUIDs(t *testing.T) {
	tasks := NewTasks(nil)
	a, err := tasks.Add("a")
	require.NoError(t, err)
	b, err := tasks.Add("b")
	require.NoError(t, err)

	_, err = uuid.Parse(a.ID)
	assert.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

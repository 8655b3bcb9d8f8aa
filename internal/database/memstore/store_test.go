package memstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tally/internal/models"
)

func TestNewLabelStore_Seeded(t *testing.T) {
	s := NewLabelStore(models.Label{ID: 4, Name: "seeded"}, models.Label{ID: 2, Name: "other"})

	l, err := s.CreateLabel(context.Background(), "fresh")
	require.NoError(t, err)
	assert.Equal(t, 5, l.ID)

	_, err = s.CreateLabel(context.Background(), "seeded")
	assert.ErrorIs(t, err, models.ErrDuplicate)
}

func TestLabelStore_DuplicateReportsLowestID(t *testing.T) {
	s := NewLabelStore(models.Label{ID: 9, Name: "dup"}, models.Label{ID: 3, Name: "dup"})

	_, err := s.CreateLabel(context.Background(), "dup")

	var dup *models.DuplicateError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, 3, dup.ID)
}

func TestLabelStore_LookupLabel(t *testing.T) {
	s := NewLabelStore(models.Label{ID: 1, Name: "home"})

	l, ok := s.LookupLabel(1)
	assert.True(t, ok)
	assert.Equal(t, "home", l.Name)

	_, ok = s.LookupLabel(2)
	assert.False(t, ok)
}

func TestTaskStore_ReturnedTaskIsACopy(t *testing.T) {
	s := New()
	ctx := context.Background()
	task, err := s.CreateTask(ctx, models.CreateTask{Title: "original"})
	require.NoError(t, err)

	task.Title = "mutated"

	got, err := s.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", got.Title)
}

func TestTaskStore_CanceledContext(t *testing.T) {
	s := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.CreateTask(ctx, models.CreateTask{Title: "x"})
	assert.ErrorIs(t, err, models.ErrUnexpected)
	_, err = s.GetAllLabels(ctx)
	assert.ErrorIs(t, err, models.ErrUnexpected)
}

func TestTaskStore_IDsAreNotReused(t *testing.T) {
	s := New()
	ctx := context.Background()
	first, err := s.CreateTask(ctx, models.CreateTask{Title: "a"})
	require.NoError(t, err)
	require.NoError(t, s.DeleteTask(ctx, first.ID))

	second, err := s.CreateTask(ctx, models.CreateTask{Title: "b"})
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}

func TestLabelStore_ListSortsByID(t *testing.T) {
	s := NewLabelStore(
		models.Label{ID: 30, Name: "c"},
		models.Label{ID: 1, Name: "a"},
		models.Label{ID: 12, Name: "b"},
	)

	labels, err := s.GetAllLabels(context.Background())
	require.NoError(t, err)

	ids := make([]int, 0, len(labels))
	for _, l := range labels {
		ids = append(ids, l.ID)
	}
	assert.Equal(t, []int{1, 12, 30}, ids)
}

func TestTaskStore_ListNewestFirst(t *testing.T) {
	s := NewTaskStore(NewLabelStore())
	ctx := context.Background()
	for _, title := range []string{"one", "two", "three"} {
		_, err := s.CreateTask(ctx, models.CreateTask{Title: title})
		require.NoError(t, err)
	}

	tasks, err := s.GetAllTasks(ctx)
	require.NoError(t, err)

	titles := make([]string, 0, len(tasks))
	for _, task := range tasks {
		titles = append(titles, task.Title)
	}
	assert.Equal(t, []string{"three", "two", "one"}, titles)
}

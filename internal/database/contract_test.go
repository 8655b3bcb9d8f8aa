package database_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tally/internal/database"
	"github.com/thenoetrevino/tally/internal/database/memstore"
	"github.com/thenoetrevino/tally/internal/models"
)

// backends returns a fresh store factory for every implementation
func backends() map[string]func(t *testing.T) database.DataStore {
	return map[string]func(t *testing.T) database.DataStore{
		"sqlite": func(t *testing.T) database.DataStore {
			db, err := database.InitDB(context.Background(), database.MemoryPath)
			require.NoError(t, err)
			repo := database.NewRepository(db)
			t.Cleanup(func() { _ = repo.Close() })
			return repo
		},
		"memory": func(t *testing.T) database.DataStore {
			return memstore.New()
		},
	}
}

func ptr[T any](v T) *T { return &v }

func mustLabel(t *testing.T, s database.DataStore, name string) *models.Label {
	t.Helper()
	l, err := s.CreateLabel(context.Background(), name)
	require.NoError(t, err)
	return l
}

func TestRepositoryContract(t *testing.T) {
	for name, open := range backends() {
		t.Run(name, func(t *testing.T) {
			t.Run("create task without labels", func(t *testing.T) {
				s := open(t)
				task, err := s.CreateTask(context.Background(), models.CreateTask{Title: "buy milk"})
				require.NoError(t, err)

				assert.Positive(t, task.ID)
				assert.Equal(t, "buy milk", task.Title)
				assert.False(t, task.Completed)
				assert.NotNil(t, task.Labels)
				assert.Empty(t, task.Labels)
			})

			t.Run("create task keeps submission order of labels", func(t *testing.T) {
				s := open(t)
				a := mustLabel(t, s, "a")
				b := mustLabel(t, s, "b")
				c := mustLabel(t, s, "c")

				task, err := s.CreateTask(context.Background(), models.CreateTask{
					Title:  "ordered",
					Labels: []int{c.ID, a.ID, b.ID},
				})
				require.NoError(t, err)
				assert.Equal(t, []int{c.ID, a.ID, b.ID}, task.LabelIDs())
				assert.Equal(t, "c", task.Labels[0].Name)

				got, err := s.GetTask(context.Background(), task.ID)
				require.NoError(t, err)
				assert.Equal(t, task, got)
			})

			t.Run("unknown and repeated label ids are dropped", func(t *testing.T) {
				s := open(t)
				a := mustLabel(t, s, "a")

				task, err := s.CreateTask(context.Background(), models.CreateTask{
					Title:  "filtered",
					Labels: []int{a.ID, 999, a.ID},
				})
				require.NoError(t, err)
				assert.Equal(t, []int{a.ID}, task.LabelIDs())
			})

			t.Run("get missing task", func(t *testing.T) {
				s := open(t)
				_, err := s.GetTask(context.Background(), 42)

				require.ErrorIs(t, err, models.ErrNotFound)
				var nf *models.NotFoundError
				require.True(t, errors.As(err, &nf))
				assert.Equal(t, 42, nf.ID)
			})

			t.Run("list tasks newest first", func(t *testing.T) {
				s := open(t)
				ctx := context.Background()
				l := mustLabel(t, s, "x")

				first, err := s.CreateTask(ctx, models.CreateTask{Title: "first", Labels: []int{l.ID}})
				require.NoError(t, err)
				second, err := s.CreateTask(ctx, models.CreateTask{Title: "second"})
				require.NoError(t, err)

				tasks, err := s.GetAllTasks(ctx)
				require.NoError(t, err)
				require.Len(t, tasks, 2)
				assert.Equal(t, second.ID, tasks[0].ID)
				assert.Equal(t, first.ID, tasks[1].ID)
				assert.Equal(t, []int{l.ID}, tasks[1].LabelIDs())
				assert.Empty(t, tasks[0].Labels)
			})

			t.Run("list empty", func(t *testing.T) {
				s := open(t)
				tasks, err := s.GetAllTasks(context.Background())
				require.NoError(t, err)
				assert.NotNil(t, tasks)
				assert.Empty(t, tasks)
			})

			t.Run("update title only keeps labels", func(t *testing.T) {
				s := open(t)
				ctx := context.Background()
				l := mustLabel(t, s, "x")
				task, err := s.CreateTask(ctx, models.CreateTask{Title: "old", Labels: []int{l.ID}})
				require.NoError(t, err)

				got, err := s.UpdateTask(ctx, task.ID, models.UpdateTask{Title: ptr("new")})
				require.NoError(t, err)
				assert.Equal(t, "new", got.Title)
				assert.False(t, got.Completed)
				assert.Equal(t, []int{l.ID}, got.LabelIDs())
			})

			t.Run("update completed only", func(t *testing.T) {
				s := open(t)
				ctx := context.Background()
				task, err := s.CreateTask(ctx, models.CreateTask{Title: "t"})
				require.NoError(t, err)

				got, err := s.UpdateTask(ctx, task.ID, models.UpdateTask{Completed: ptr(true)})
				require.NoError(t, err)
				assert.True(t, got.Completed)
				assert.Equal(t, "t", got.Title)
			})

			t.Run("update replaces labels", func(t *testing.T) {
				s := open(t)
				ctx := context.Background()
				a := mustLabel(t, s, "a")
				b := mustLabel(t, s, "b")
				task, err := s.CreateTask(ctx, models.CreateTask{Title: "t", Labels: []int{a.ID}})
				require.NoError(t, err)

				got, err := s.UpdateTask(ctx, task.ID, models.UpdateTask{Labels: &[]int{b.ID, a.ID}})
				require.NoError(t, err)
				assert.Equal(t, []int{b.ID, a.ID}, got.LabelIDs())

				got, err = s.UpdateTask(ctx, task.ID, models.UpdateTask{Labels: &[]int{}})
				require.NoError(t, err)
				assert.Empty(t, got.Labels)
			})

			t.Run("empty update is a no-op", func(t *testing.T) {
				s := open(t)
				ctx := context.Background()
				l := mustLabel(t, s, "x")
				task, err := s.CreateTask(ctx, models.CreateTask{Title: "same", Labels: []int{l.ID}})
				require.NoError(t, err)

				got, err := s.UpdateTask(ctx, task.ID, models.UpdateTask{})
				require.NoError(t, err)
				assert.Equal(t, task, got)
			})

			t.Run("update missing task", func(t *testing.T) {
				s := open(t)
				_, err := s.UpdateTask(context.Background(), 7, models.UpdateTask{Title: ptr("x")})
				assert.ErrorIs(t, err, models.ErrNotFound)
			})

			t.Run("delete task", func(t *testing.T) {
				s := open(t)
				ctx := context.Background()
				task, err := s.CreateTask(ctx, models.CreateTask{Title: "bye"})
				require.NoError(t, err)

				require.NoError(t, s.DeleteTask(ctx, task.ID))
				_, err = s.GetTask(ctx, task.ID)
				assert.ErrorIs(t, err, models.ErrNotFound)
				assert.ErrorIs(t, s.DeleteTask(ctx, task.ID), models.ErrNotFound)
			})

			t.Run("create label", func(t *testing.T) {
				s := open(t)
				l, err := s.CreateLabel(context.Background(), "home")
				require.NoError(t, err)
				assert.Positive(t, l.ID)
				assert.Equal(t, "home", l.Name)
			})

			t.Run("duplicate label name", func(t *testing.T) {
				s := open(t)
				first := mustLabel(t, s, "home")
				_, err := s.CreateLabel(context.Background(), "home")

				require.ErrorIs(t, err, models.ErrDuplicate)
				var dup *models.DuplicateError
				require.True(t, errors.As(err, &dup))
				assert.Equal(t, first.ID, dup.ID)

				labels, err := s.GetAllLabels(context.Background())
				require.NoError(t, err)
				assert.Len(t, labels, 1)
			})

			t.Run("label names are case sensitive", func(t *testing.T) {
				s := open(t)
				mustLabel(t, s, "home")
				_, err := s.CreateLabel(context.Background(), "Home")
				assert.NoError(t, err)
			})

			t.Run("list labels ascending", func(t *testing.T) {
				s := open(t)
				a := mustLabel(t, s, "zeta")
				b := mustLabel(t, s, "alpha")

				labels, err := s.GetAllLabels(context.Background())
				require.NoError(t, err)
				require.Len(t, labels, 2)
				assert.Equal(t, a.ID, labels[0].ID)
				assert.Equal(t, b.ID, labels[1].ID)
			})

			t.Run("list labels empty", func(t *testing.T) {
				s := open(t)
				labels, err := s.GetAllLabels(context.Background())
				require.NoError(t, err)
				assert.NotNil(t, labels)
				assert.Empty(t, labels)
			})

			t.Run("delete label", func(t *testing.T) {
				s := open(t)
				ctx := context.Background()
				a := mustLabel(t, s, "a")
				b := mustLabel(t, s, "b")
				task, err := s.CreateTask(ctx, models.CreateTask{Title: "t", Labels: []int{a.ID, b.ID}})
				require.NoError(t, err)

				require.NoError(t, s.DeleteLabel(ctx, a.ID))

				got, err := s.GetTask(ctx, task.ID)
				require.NoError(t, err)
				assert.Equal(t, []int{b.ID}, got.LabelIDs())
				assert.ErrorIs(t, s.DeleteLabel(ctx, a.ID), models.ErrNotFound)

				// the name is free again
				_, err = s.CreateLabel(ctx, "a")
				assert.NoError(t, err)
			})

			t.Run("delete missing label", func(t *testing.T) {
				s := open(t)
				err := s.DeleteLabel(context.Background(), 3)
				require.ErrorIs(t, err, models.ErrNotFound)
				var nf *models.NotFoundError
				require.True(t, errors.As(err, &nf))
				assert.Equal(t, 3, nf.ID)
			})

			t.Run("concurrent creates", func(t *testing.T) {
				s := open(t)
				ctx := context.Background()

				var wg sync.WaitGroup
				for range 20 {
					wg.Add(1)
					go func() {
						defer wg.Done()
						_, err := s.CreateTask(ctx, models.CreateTask{Title: "parallel"})
						assert.NoError(t, err)
					}()
				}
				wg.Wait()

				tasks, err := s.GetAllTasks(ctx)
				require.NoError(t, err)
				assert.Len(t, tasks, 20)
				seen := make(map[int]bool)
				for _, task := range tasks {
					assert.False(t, seen[task.ID], "duplicate id %d", task.ID)
					seen[task.ID] = true
				}
			})
		})
	}
}

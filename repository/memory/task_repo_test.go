package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/backend/domain"
	"github.com/taskdeck/backend/repository"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestTaskRepository_CreateGetList(t *testing.T) {
	repo := NewTaskRepository()
	ctx := context.Background()

	t1, err := repo.Create(ctx, &domain.Task{ID: "a", Title: "pick up eggs", Status: domain.StatusTodo})
	require.NoError(t, err)
	assert.Equal(t, "a", t1.ID)
	assert.False(t, t1.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, t1, got)

	_, err = repo.Create(ctx, &domain.Task{ID: "b", Title: "water plants", Status: domain.StatusTodo})
	require.NoError(t, err)

	list, err := repo.List(ctx, repository.TaskFilter{})
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, "a", list[0].ID, "insertion order preserved")
	assert.Equal(t, "b", list[1].ID)
}

func TestTaskRepository_CreateDuplicateID(t *testing.T) {
	repo := NewTaskRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.Task{ID: "a", Title: "first"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &domain.Task{ID: "a", Title: "second"})
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeConflict))
}

func TestTaskRepository_UpdateMergesPartially(t *testing.T) {
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.Local)
	updated := time.Date(2026, 3, 2, 10, 30, 0, 0, time.Local)

	repo := NewTaskRepository().WithClock(fixedClock(created))
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.Task{
		ID:          "a",
		Title:       "write report",
		Description: "quarterly numbers",
		Priority:    domain.PriorityHigh,
		Status:      domain.StatusTodo,
		TimeSpent:   1.5,
	})
	require.NoError(t, err)

	repo.WithClock(fixedClock(updated))

	desc := "quarterly numbers, revised"
	got, err := repo.Update(ctx, "a", domain.TaskPatch{Description: &desc})
	require.NoError(t, err)

	assert.Equal(t, "write report", got.Title, "unspecified fields unchanged")
	assert.Equal(t, desc, got.Description)
	assert.Equal(t, domain.PriorityHigh, got.Priority)
	assert.Equal(t, 1.5, got.TimeSpent)
	assert.Equal(t, updated, got.UpdatedAt)
	assert.Equal(t, created, got.CreatedAt)
}

func TestTaskRepository_UpdateMissingID(t *testing.T) {
	repo := NewTaskRepository()

	title := "nope"
	_, err := repo.Update(context.Background(), "ghost", domain.TaskPatch{Title: &title})
	assert.True(t, errors.Is(err, domain.ErrTaskNotFound))
}

func TestTaskRepository_Delete(t *testing.T) {
	repo := NewTaskRepository()
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		_, err := repo.Create(ctx, &domain.Task{ID: id, Title: id})
		require.NoError(t, err)
	}

	require.NoError(t, repo.Delete(ctx, "b"))

	list, err := repo.List(ctx, repository.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "c", list[1].ID)

	assert.True(t, errors.Is(repo.Delete(ctx, "b"), domain.ErrTaskNotFound))
}

func TestTaskRepository_SetStatusRefreshesUpdatedAt(t *testing.T) {
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.Local)
	moved := time.Date(2026, 3, 3, 14, 0, 0, 0, time.Local)

	repo := NewTaskRepository().WithClock(fixedClock(created))
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.Task{ID: "a", Title: "drag me", Status: domain.StatusTodo})
	require.NoError(t, err)

	repo.WithClock(fixedClock(moved))

	got, err := repo.SetStatus(ctx, "a", domain.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, got.Status)
	assert.Equal(t, moved, got.UpdatedAt)

	_, err = repo.SetStatus(ctx, "ghost", domain.StatusCompleted)
	assert.True(t, errors.Is(err, domain.ErrTaskNotFound))
}

func TestTaskRepository_ListFilters(t *testing.T) {
	repo := NewTaskRepository()
	ctx := context.Background()

	seed := []domain.Task{
		{ID: "a", Title: "a", ProjectID: "p1", Status: domain.StatusTodo, Priority: domain.PriorityLow},
		{ID: "b", Title: "b", ProjectID: "p2", Status: domain.StatusCompleted, Priority: domain.PriorityHigh},
		{ID: "c", Title: "c", ProjectID: "p1", Status: domain.StatusInProgress, Priority: domain.PriorityHigh},
	}
	for i := range seed {
		_, err := repo.Create(ctx, &seed[i])
		require.NoError(t, err)
	}

	tests := []struct {
		name   string
		filter repository.TaskFilter
		want   []string
	}{
		{"all sentinel", repository.TaskFilter{ProjectID: repository.AllProjects}, []string{"a", "b", "c"}},
		{"by project", repository.TaskFilter{ProjectID: "p1"}, []string{"a", "c"}},
		{"by status", repository.TaskFilter{Status: domain.StatusCompleted}, []string{"b"}},
		{"by priority", repository.TaskFilter{Priority: domain.PriorityHigh}, []string{"b", "c"}},
		{"dangling project", repository.TaskFilter{ProjectID: "missing"}, []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			list, err := repo.List(ctx, tc.filter)
			require.NoError(t, err)
			ids := make([]string, 0, len(list))
			for _, task := range list {
				ids = append(ids, task.ID)
			}
			assert.Equal(t, tc.want, ids)
		})
	}
}

func TestTaskRepository_SnapshotsAreCopies(t *testing.T) {
	repo := NewTaskRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.Task{ID: "a", Title: "original", Tags: []string{"one"}})
	require.NoError(t, err)

	snapshot, err := repo.List(ctx, repository.TaskFilter{})
	require.NoError(t, err)
	snapshot[0].Title = "mutated"
	snapshot[0].Tags[0] = "changed"

	got, err := repo.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "original", got.Title)
	assert.Equal(t, []string{"one"}, got.Tags)
}

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

func TestProjectRepository_CRUD(t *testing.T) {
	repo := NewProjectRepository()
	ctx := context.Background()

	p, err := repo.Create(ctx, &domain.Project{ID: "p1", Name: "Personal", Color: "#3b82f6"})
	require.NoError(t, err)
	assert.False(t, p.CreatedAt.IsZero())

	name := "Personal Tasks"
	updated, err := repo.Update(ctx, "p1", domain.ProjectPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
	assert.Equal(t, "#3b82f6", updated.Color, "unspecified fields unchanged")

	require.NoError(t, repo.Delete(ctx, "p1"))
	_, err = repo.GetByID(ctx, "p1")
	assert.True(t, errors.Is(err, domain.ErrProjectNotFound))
}

func TestProjectRepository_MissingIDFailsLoudly(t *testing.T) {
	repo := NewProjectRepository()
	ctx := context.Background()

	name := "nope"
	_, err := repo.Update(ctx, "ghost", domain.ProjectPatch{Name: &name})
	assert.True(t, errors.Is(err, domain.ErrProjectNotFound))
	assert.True(t, errors.Is(repo.Delete(ctx, "ghost"), domain.ErrProjectNotFound))
}

func TestProjectRepository_DeleteDoesNotCascade(t *testing.T) {
	projects := NewProjectRepository()
	tasks := NewTaskRepository()
	ctx := context.Background()

	_, err := projects.Create(ctx, &domain.Project{ID: "p1", Name: "Doomed"})
	require.NoError(t, err)
	_, err = tasks.Create(ctx, &domain.Task{ID: "t1", Title: "survivor", ProjectID: "p1"})
	require.NoError(t, err)

	require.NoError(t, projects.Delete(ctx, "p1"))

	// The task stays, with a dangling project reference that no longer
	// matches any project filter.
	got, err := tasks.GetByID(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "p1", got.ProjectID)

	list, err := tasks.List(ctx, repository.TaskFilter{ProjectID: "p1"})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestProjectRepository_UpdateRefreshesUpdatedAt(t *testing.T) {
	created := time.Date(2026, 4, 1, 8, 0, 0, 0, time.Local)
	patched := time.Date(2026, 4, 2, 8, 0, 0, 0, time.Local)

	repo := NewProjectRepository().WithClock(fixedClock(created))
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.Project{ID: "p1", Name: "Ops"})
	require.NoError(t, err)

	repo.WithClock(fixedClock(patched))

	archived := true
	got, err := repo.Update(ctx, "p1", domain.ProjectPatch{IsArchived: &archived})
	require.NoError(t, err)
	assert.True(t, got.IsArchived)
	assert.Equal(t, patched, got.UpdatedAt)
	assert.Equal(t, created, got.CreatedAt)
}

package repository

import (
	"context"

	"github.com/taskdeck/backend/domain"
)

// AllProjects is the sentinel project filter matching every task.
const AllProjects = "all"

// TaskFilter narrows List results. Zero values match everything.
type TaskFilter struct {
	ProjectID string
	Status    domain.Status
	Priority  domain.Priority
}

type TaskRepository interface {
	List(ctx context.Context, filter TaskFilter) ([]domain.Task, error)
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Update(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id string, status domain.Status) (*domain.Task, error)
}

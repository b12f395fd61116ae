package task

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/taskdeck/backend/domain"
	"github.com/taskdeck/backend/repository"
)

type UseCase struct {
	tasks  repository.TaskRepository
	logger *zap.Logger
}

func New(tasks repository.TaskRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:  tasks,
		logger: logger,
	}
}

func (uc *UseCase) ListTasks(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	return uc.tasks.List(ctx, filter)
}

func (uc *UseCase) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	return uc.tasks.GetByID(ctx, id)
}

// CreateTask validates the task, assigns an id and defaults, and appends it
// to the store.
func (uc *UseCase) CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if task == nil || strings.TrimSpace(task.Title) == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "task title must not be empty")
	}
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	if task.Status == "" {
		task.Status = domain.StatusTodo
	}
	if !task.Status.Valid() {
		return nil, domain.NewError(domain.ErrCodeInvalid, "unknown task status")
	}
	if task.Priority == "" {
		task.Priority = domain.PriorityMedium
	}
	if !task.Priority.Valid() {
		return nil, domain.NewError(domain.ErrCodeInvalid, "unknown task priority")
	}
	if task.TimeSpent < 0 {
		task.TimeSpent = 0
	}
	if task.Tags != nil {
		tags := task.Tags
		task.Tags = nil
		for _, tag := range tags {
			task.AddTag(tag)
		}
	}

	created, err := uc.tasks.Create(ctx, task)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("task created",
		zap.String("task_id", created.ID),
		zap.String("project_id", created.ProjectID))
	return created, nil
}

// UpdateTask merges the patch into the stored task. An empty patched title
// is rejected before it reaches the store.
func (uc *UseCase) UpdateTask(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error) {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "task title must not be empty")
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, domain.NewError(domain.ErrCodeInvalid, "unknown task status")
	}
	if patch.Priority != nil && !patch.Priority.Valid() {
		return nil, domain.NewError(domain.ErrCodeInvalid, "unknown task priority")
	}
	return uc.tasks.Update(ctx, id, patch)
}

func (uc *UseCase) DeleteTask(ctx context.Context, id string) error {
	if err := uc.tasks.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("task deleted", zap.String("task_id", id))
	return nil
}

// MoveTask is the drag-and-drop transition to a target status column.
func (uc *UseCase) MoveTask(ctx context.Context, id string, status domain.Status) (*domain.Task, error) {
	if !status.Valid() {
		return nil, domain.NewError(domain.ErrCodeInvalid, "unknown task status")
	}
	moved, err := uc.tasks.SetStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("task moved",
		zap.String("task_id", id),
		zap.String("status", string(status)))
	return moved, nil
}

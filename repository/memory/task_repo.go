// Package memory implements the repository interfaces with ordered in-memory
// collections. The application is the only writer; the mutex keeps snapshots
// consistent under the concurrent HTTP surface.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/taskdeck/backend/domain"
	"github.com/taskdeck/backend/repository"
)

type TaskRepository struct {
	mu    sync.RWMutex
	tasks []domain.Task
	index map[string]int
	now   func() time.Time
}

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{
		index: make(map[string]int),
		now:   time.Now,
	}
}

// WithClock overrides the repository clock. Intended for tests.
func (r *TaskRepository) WithClock(now func() time.Time) *TaskRepository {
	if now != nil {
		r.now = now
	}
	return r
}

// List returns tasks matching the filter in insertion order. The returned
// slice is a copy; callers never observe later mutations.
func (r *TaskRepository) List(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		if !matchProject(t, filter.ProjectID) {
			continue
		}
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if filter.Priority != "" && t.Priority != filter.Priority {
			continue
		}
		out = append(out, cloneTask(t))
	}
	return out, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	t := cloneTask(r.tasks[i])
	return &t, nil
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	_ = ctx
	if task == nil {
		return nil, domain.ErrInvalidPayload
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[task.ID]; exists {
		return nil, domain.NewError(domain.ErrCodeConflict, "task id already exists")
	}

	t := cloneTask(*task)
	t.Touch(r.now())
	r.index[t.ID] = len(r.tasks)
	r.tasks = append(r.tasks, t)

	created := cloneTask(t)
	return &created, nil
}

func (r *TaskRepository) Update(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error) {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	patch.Apply(&r.tasks[i], r.now())

	updated := cloneTask(r.tasks[i])
	return &updated, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return domain.ErrTaskNotFound
	}
	r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
	delete(r.index, id)
	for j := i; j < len(r.tasks); j++ {
		r.index[r.tasks[j].ID] = j
	}
	return nil
}

// SetStatus is the drag-and-drop transition: it moves the task to the target
// status and refreshes UpdatedAt.
func (r *TaskRepository) SetStatus(ctx context.Context, id string, status domain.Status) (*domain.Task, error) {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	r.tasks[i].Status = status
	r.tasks[i].Touch(r.now())

	updated := cloneTask(r.tasks[i])
	return &updated, nil
}

func matchProject(t domain.Task, projectID string) bool {
	if projectID == "" || projectID == repository.AllProjects {
		return true
	}
	return t.ProjectID == projectID
}

func cloneTask(t domain.Task) domain.Task {
	if t.DueDate != nil {
		due := *t.DueDate
		t.DueDate = &due
	}
	if t.Tags != nil {
		t.Tags = append([]string(nil), t.Tags...)
	}
	return t
}

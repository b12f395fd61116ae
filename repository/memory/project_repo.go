package memory

import (
	"context"
	"sync"
	"time"

	"github.com/taskdeck/backend/domain"
)

type ProjectRepository struct {
	mu       sync.RWMutex
	projects []domain.Project
	index    map[string]int
	now      func() time.Time
}

func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{
		index: make(map[string]int),
		now:   time.Now,
	}
}

// WithClock overrides the repository clock. Intended for tests.
func (r *ProjectRepository) WithClock(now func() time.Time) *ProjectRepository {
	if now != nil {
		r.now = now
	}
	return r
}

// List returns all projects in insertion order.
func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Project, 0, len(r.projects))
	for _, p := range r.projects {
		out = append(out, cloneProject(p))
	}
	return out, nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	p := cloneProject(r.projects[i])
	return &p, nil
}

func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	_ = ctx
	if project == nil {
		return nil, domain.ErrInvalidPayload
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[project.ID]; exists {
		return nil, domain.NewError(domain.ErrCodeConflict, "project id already exists")
	}

	p := cloneProject(*project)
	p.Touch(r.now())
	r.index[p.ID] = len(r.projects)
	r.projects = append(r.projects, p)

	created := cloneProject(p)
	return &created, nil
}

func (r *ProjectRepository) Update(ctx context.Context, id string, patch domain.ProjectPatch) (*domain.Project, error) {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	patch.Apply(&r.projects[i], r.now())

	updated := cloneProject(r.projects[i])
	return &updated, nil
}

// Delete removes the project only. Tasks referencing it keep their dangling
// project id and simply stop matching project filters.
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return domain.ErrProjectNotFound
	}
	r.projects = append(r.projects[:i], r.projects[i+1:]...)
	delete(r.index, id)
	for j := i; j < len(r.projects); j++ {
		r.index[r.projects[j].ID] = j
	}
	return nil
}

func cloneProject(p domain.Project) domain.Project {
	if p.Members != nil {
		p.Members = append([]string(nil), p.Members...)
	}
	return p
}

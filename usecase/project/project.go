package project

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/taskdeck/backend/domain"
	"github.com/taskdeck/backend/repository"
)

type UseCase struct {
	projects repository.ProjectRepository
	logger   *zap.Logger
}

func New(projects repository.ProjectRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		projects: projects,
		logger:   logger,
	}
}

func (uc *UseCase) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return uc.projects.List(ctx)
}

func (uc *UseCase) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	return uc.projects.GetByID(ctx, id)
}

// CreateProject validates the project, assigns an id and a palette color
// when none was chosen, and appends it to the store.
func (uc *UseCase) CreateProject(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	if project == nil || strings.TrimSpace(project.Name) == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "project name must not be empty")
	}
	if project.ID == "" {
		project.ID = uuid.NewString()
	}
	if project.Color == "" {
		project.Color = domain.DefaultProjectColor()
	}
	if !domain.ValidProjectColor(project.Color) {
		return nil, domain.NewError(domain.ErrCodeInvalid, "color is not in the project palette")
	}
	if project.Members != nil {
		members := project.Members
		project.Members = nil
		for _, id := range members {
			project.AddMember(id)
		}
	}

	created, err := uc.projects.Create(ctx, project)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("project created", zap.String("project_id", created.ID))
	return created, nil
}

func (uc *UseCase) UpdateProject(ctx context.Context, id string, patch domain.ProjectPatch) (*domain.Project, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "project name must not be empty")
	}
	if patch.Color != nil && !domain.ValidProjectColor(*patch.Color) {
		return nil, domain.NewError(domain.ErrCodeInvalid, "color is not in the project palette")
	}
	return uc.projects.Update(ctx, id, patch)
}

// DeleteProject removes the project. Its tasks are kept; they keep a
// dangling project reference and drop out of project-filtered views.
func (uc *UseCase) DeleteProject(ctx context.Context, id string) error {
	if err := uc.projects.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("project deleted", zap.String("project_id", id))
	return nil
}

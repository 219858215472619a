package service

import (
	"context"
	"fmt"
	"time"

	"todo/internal/domain"
	"todo/internal/model"
)

// ProjectPatch names the project fields to change; nil leaves a field as is.
type ProjectPatch struct {
	Name        *string
	Description *string
}

type ProjectService struct {
	projects ProjectStore
	limits   domain.Limits
	now      func() time.Time
}

func NewProjectService(projects ProjectStore, limits domain.Limits, opts ...Option) *ProjectService {
	o := buildOptions(opts)
	return &ProjectService{
		projects: projects,
		limits:   limits,
		now:      o.now,
	}
}

// Create validates and stores a new project. It fails with
// ErrMaxProjectsReached once the store holds MaxProjects projects and with
// ErrDuplicateProjectName when the name is taken.
func (s *ProjectService) Create(ctx context.Context, name, description string) (*domain.Project, error) {
	now := s.now().UTC()
	project, err := domain.NewProject(name, description, now)
	if err != nil {
		return nil, err
	}

	count, err := s.projects.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count projects: %w", err)
	}
	if s.limits.MaxProjects > 0 && count >= int64(s.limits.MaxProjects) {
		return nil, fmt.Errorf("%w: limit is %d", domain.ErrMaxProjectsReached, s.limits.MaxProjects)
	}

	row := &model.Project{
		Name:        project.Name(),
		Description: project.Description(),
		CreatedAt:   project.CreatedAt(),
		UpdatedAt:   project.UpdatedAt(),
	}
	if err := s.projects.Create(ctx, row); err != nil {
		return nil, err
	}
	return toProject(row), nil
}

func (s *ProjectService) Get(ctx context.Context, name string) (*domain.Project, error) {
	row, err := s.projects.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return toProject(row), nil
}

func (s *ProjectService) List(ctx context.Context) ([]*domain.Project, error) {
	rows, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	projects := make([]*domain.Project, len(rows))
	for i := range rows {
		projects[i] = toProject(&rows[i])
	}
	return projects, nil
}

// Update renames and/or re-describes the project called name.
func (s *ProjectService) Update(ctx context.Context, name string, patch ProjectPatch) (*domain.Project, error) {
	if patch.Name != nil {
		if err := domain.ValidateProjectName(*patch.Name); err != nil {
			return nil, err
		}
	}
	if patch.Description != nil {
		if err := domain.ValidateProjectDescription(*patch.Description); err != nil {
			return nil, err
		}
	}

	row, err := s.projects.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	project := toProject(row)
	if patch.Name != nil {
		if err := project.Rename(*patch.Name, now); err != nil {
			return nil, err
		}
	}
	if patch.Description != nil {
		if err := project.Describe(*patch.Description, now); err != nil {
			return nil, err
		}
	}

	row.Name = project.Name()
	row.Description = project.Description()
	row.UpdatedAt = now
	if err := s.projects.Update(ctx, row); err != nil {
		return nil, err
	}
	return toProject(row), nil
}

// Delete removes the project called name together with all of its tasks.
func (s *ProjectService) Delete(ctx context.Context, name string) error {
	row, err := s.projects.GetByName(ctx, name)
	if err != nil {
		return err
	}
	return s.projects.Delete(ctx, row.ID)
}

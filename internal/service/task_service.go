package service

import (
	"context"
	"fmt"
	"time"

	"todo/internal/domain"
	"todo/internal/model"
)

type TaskService struct {
	projects ProjectStore
	tasks    TaskStore
	limits   domain.Limits
	now      func() time.Time
	newID    func() string
}

func NewTaskService(projects ProjectStore, tasks TaskStore, limits domain.Limits, opts ...Option) *TaskService {
	o := buildOptions(opts)
	return &TaskService{
		projects: projects,
		tasks:    tasks,
		limits:   limits,
		now:      o.now,
		newID:    o.newID,
	}
}

// Create adds a task to the project called projectName.
func (s *TaskService) Create(ctx context.Context, projectName string, fields domain.TaskFields) (*domain.Task, error) {
	now := s.now()
	if err := fields.Validate(now); err != nil {
		return nil, err
	}

	project, err := s.projects.GetByName(ctx, projectName)
	if err != nil {
		return nil, err
	}

	count, err := s.tasks.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count tasks: %w", err)
	}
	if s.limits.MaxTasks > 0 && count >= int64(s.limits.MaxTasks) {
		return nil, fmt.Errorf("%w: limit is %d", domain.ErrMaxTasksReached, s.limits.MaxTasks)
	}

	task, err := domain.NewTask(s.newID(), project.ID, fields, now)
	if err != nil {
		return nil, err
	}
	row, err := toTaskRow(task)
	if err != nil {
		return nil, err
	}
	row.CreatedAt = now.UTC()
	row.UpdatedAt = now.UTC()
	if err := s.tasks.Create(ctx, row); err != nil {
		return nil, err
	}
	return toTask(row), nil
}

// Get returns the task id if it belongs to projectName.
func (s *TaskService) Get(ctx context.Context, projectName, id string) (*domain.Task, error) {
	project, err := s.projects.GetByName(ctx, projectName)
	if err != nil {
		return nil, err
	}
	row, err := s.lookup(ctx, project, id)
	if err != nil {
		return nil, err
	}
	return toTask(row), nil
}

func (s *TaskService) List(ctx context.Context, projectName string) ([]*domain.Task, error) {
	project, err := s.projects.GetByName(ctx, projectName)
	if err != nil {
		return nil, err
	}
	rows, err := s.tasks.ListByProject(ctx, project.ID)
	if err != nil {
		return nil, err
	}
	tasks := make([]*domain.Task, len(rows))
	for i := range rows {
		tasks[i] = toTask(&rows[i])
	}
	return tasks, nil
}

// Update replaces title, description, status and deadline of a task in one
// call. The identifier and ownership are preserved.
func (s *TaskService) Update(ctx context.Context, projectName, id string, fields domain.TaskFields) (*domain.Task, error) {
	now := s.now()
	if err := fields.Validate(now); err != nil {
		return nil, err
	}

	project, err := s.projects.GetByName(ctx, projectName)
	if err != nil {
		return nil, err
	}
	row, err := s.lookup(ctx, project, id)
	if err != nil {
		return nil, err
	}

	task := toTask(row)
	if err := task.Replace(fields, now); err != nil {
		return nil, err
	}
	return s.save(ctx, task)
}

// UpdateStatus changes only the status; the other fields are written back
// unchanged, including a deadline that has since passed.
func (s *TaskService) UpdateStatus(ctx context.Context, projectName, id, status string) (*domain.Task, error) {
	if err := domain.ValidateTaskStatus(status); err != nil {
		return nil, err
	}

	project, err := s.projects.GetByName(ctx, projectName)
	if err != nil {
		return nil, err
	}
	row, err := s.lookup(ctx, project, id)
	if err != nil {
		return nil, err
	}

	task := toTask(row)
	if err := task.SetStatus(status, s.now()); err != nil {
		return nil, err
	}
	return s.save(ctx, task)
}

func (s *TaskService) Delete(ctx context.Context, projectName, id string) error {
	project, err := s.projects.GetByName(ctx, projectName)
	if err != nil {
		return err
	}
	row, err := s.lookup(ctx, project, id)
	if err != nil {
		return err
	}
	return s.tasks.Delete(ctx, row.ID.String())
}

// lookup finds a task scoped to project. A task owned by another project is
// reported as not found.
func (s *TaskService) lookup(ctx context.Context, project *model.Project, id string) (*model.Task, error) {
	row, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row.ProjectID != project.ID {
		return nil, fmt.Errorf("%w: %q in project %q", domain.ErrTaskNotFound, id, project.Name)
	}
	return row, nil
}

func (s *TaskService) save(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	row, err := toTaskRow(task)
	if err != nil {
		return nil, err
	}
	row.UpdatedAt = row.UpdatedAt.UTC()
	if err := s.tasks.Update(ctx, row); err != nil {
		return nil, err
	}
	return toTask(row), nil
}

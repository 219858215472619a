// Package memory is an in-process persistence gateway: projects keyed by
// name, tasks kept in insertion order per project. It backs the CLI's
// throwaway mode and the service tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"todo/internal/domain"
	"todo/internal/model"
)

// Store holds all state; its repositories share one lock so a project
// delete and its task cascade are applied atomically.
type Store struct {
	mu       sync.RWMutex
	projects map[string]*model.Project
	tasks    map[uuid.UUID]*model.Task
	order    map[uint][]uuid.UUID
	nextID   uint
}

func New() *Store {
	return &Store{
		projects: make(map[string]*model.Project),
		tasks:    make(map[uuid.UUID]*model.Task),
		order:    make(map[uint][]uuid.UUID),
	}
}

// Projects returns the project repository view of the store.
func (s *Store) Projects() *ProjectRepository {
	return &ProjectRepository{s: s}
}

// Tasks returns the task repository view of the store.
func (s *Store) Tasks() *TaskRepository {
	return &TaskRepository{s: s}
}

func (s *Store) projectByID(id uint) *model.Project {
	for _, p := range s.projects {
		if p.ID == id {
			return p
		}
	}
	return nil
}

type ProjectRepository struct {
	s *Store
}

func (r *ProjectRepository) Create(_ context.Context, project *model.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.projects[project.Name]; ok {
		return fmt.Errorf("%w: %q", domain.ErrDuplicateProjectName, project.Name)
	}
	r.s.nextID++
	project.ID = r.s.nextID
	stored := *project
	stored.Tasks = nil
	r.s.projects[project.Name] = &stored
	return nil
}

func (r *ProjectRepository) GetByName(_ context.Context, name string) (*model.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.projects[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrProjectNotFound, name)
	}
	out := *p
	return &out, nil
}

func (r *ProjectRepository) List(_ context.Context) ([]model.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]model.Project, 0, len(r.s.projects))
	for _, p := range r.s.projects {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ProjectRepository) Update(_ context.Context, project *model.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current := r.s.projectByID(project.ID)
	if current == nil {
		return domain.ErrProjectNotFound
	}
	if project.Name != current.Name {
		if _, taken := r.s.projects[project.Name]; taken {
			return fmt.Errorf("%w: %q", domain.ErrDuplicateProjectName, project.Name)
		}
		delete(r.s.projects, current.Name)
	}
	current.Name = project.Name
	current.Description = project.Description
	current.UpdatedAt = project.UpdatedAt
	r.s.projects[current.Name] = current
	return nil
}

// Delete removes the project and cascades into its tasks.
func (r *ProjectRepository) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p := r.s.projectByID(id)
	if p == nil {
		return domain.ErrProjectNotFound
	}
	for _, taskID := range r.s.order[id] {
		delete(r.s.tasks, taskID)
	}
	delete(r.s.order, id)
	delete(r.s.projects, p.Name)
	return nil
}

func (r *ProjectRepository) Count(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.projects)), nil
}

type TaskRepository struct {
	s *Store
}

// Create stores a task under its project. An identifier that is already in
// use is rejected rather than overwritten.
func (r *TaskRepository) Create(_ context.Context, task *model.Task) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.projectByID(task.ProjectID) == nil {
		return domain.ErrProjectNotFound
	}
	if _, taken := r.s.tasks[task.ID]; taken {
		return fmt.Errorf("%w: %s", domain.ErrTaskIDCollision, task.ID)
	}
	r.s.tasks[task.ID] = copyTask(task)
	r.s.order[task.ProjectID] = append(r.s.order[task.ProjectID], task.ID)
	return nil
}

func (r *TaskRepository) GetByID(_ context.Context, id string) (*model.Task, error) {
	taskID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrTaskNotFound, id)
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	t, ok := r.s.tasks[taskID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrTaskNotFound, id)
	}
	return copyTask(t), nil
}

func (r *TaskRepository) ListByProject(_ context.Context, projectID uint) ([]model.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	ids := r.s.order[projectID]
	out := make([]model.Task, 0, len(ids))
	for _, id := range ids {
		out = append(out, *copyTask(r.s.tasks[id]))
	}
	return out, nil
}

func (r *TaskRepository) Update(_ context.Context, task *model.Task) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.tasks[task.ID]
	if !ok {
		return domain.ErrTaskNotFound
	}
	current.Title = task.Title
	current.Description = task.Description
	current.Status = task.Status
	current.Deadline = copyTime(task.Deadline)
	current.UpdatedAt = task.UpdatedAt
	return nil
}

func (r *TaskRepository) Delete(_ context.Context, id string) error {
	taskID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("%w: %q", domain.ErrTaskNotFound, id)
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t, ok := r.s.tasks[taskID]
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrTaskNotFound, id)
	}
	delete(r.s.tasks, taskID)
	ids := r.s.order[t.ProjectID]
	for i, other := range ids {
		if other == taskID {
			r.s.order[t.ProjectID] = append(ids[:i:i], ids[i+1:]...)
			break
		}
	}
	return nil
}

func (r *TaskRepository) Count(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.tasks)), nil
}

// CloseOverdue marks every overdue task done under a single lock.
func (r *TaskRepository) CloseOverdue(_ context.Context, now time.Time) ([]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var overdue []*model.Task
	for _, t := range r.s.tasks {
		if domain.IsOverdue(domain.Status(t.Status), t.Deadline, now) {
			overdue = append(overdue, t)
		}
	}
	sort.Slice(overdue, func(i, j int) bool {
		return overdue[i].Deadline.Before(*overdue[j].Deadline)
	})

	closed := make([]string, 0, len(overdue))
	for _, t := range overdue {
		t.Status = string(domain.StatusDone)
		t.UpdatedAt = now
		closed = append(closed, t.ID.String())
	}
	return closed, nil
}

func copyTask(t *model.Task) *model.Task {
	out := *t
	out.Deadline = copyTime(t.Deadline)
	return &out
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

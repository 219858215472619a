package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"todo/internal/domain"
	"todo/internal/model"
	"todo/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func todo(title string) domain.TaskFields {
	return domain.TaskFields{Title: title, Status: "todo"}
}

func TestTaskService_CreateAndGet(t *testing.T) {
	f := newFixture(domain.DefaultLimits())
	ctx := context.Background()
	_, err := f.projects.Create(ctx, "Launch", "")
	require.NoError(t, err)

	fields := domain.TaskFields{
		Title:       "Write spec",
		Description: "the first draft",
		Status:      "doing",
		Deadline:    domain.DeadlineText("2026-10-15T12:00:00+02:00"),
	}
	created, err := f.tasks.Create(ctx, "Launch", fields)
	require.NoError(t, err)

	_, err = uuid.Parse(created.ID())
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusDoing, created.Status())
	assert.Equal(t, time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC), *created.Deadline())

	got, err := f.tasks.Get(ctx, "Launch", created.ID())
	require.NoError(t, err)
	assert.Equal(t, created.ID(), got.ID())
	assert.Equal(t, "Write spec", got.Title())
	assert.Equal(t, "the first draft", got.Description())
}

func TestTaskService_CreateInMissingProject(t *testing.T) {
	f := newFixture(domain.DefaultLimits())

	_, err := f.tasks.Create(context.Background(), "Nope", todo("Write spec"))
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestTaskService_ValidationBeforeLookup(t *testing.T) {
	projects := new(MockProjectStore)
	tasks := new(MockTaskStore)
	svc := service.NewTaskService(projects, tasks, domain.DefaultLimits())
	ctx := context.Background()

	_, err := svc.Create(ctx, "Launch", domain.TaskFields{Title: "", Status: "todo"})
	assert.ErrorIs(t, err, domain.ErrInvalidTaskTitleSize)

	_, err = svc.Create(ctx, "Launch", domain.TaskFields{Title: "x", Status: "todo", Deadline: domain.DeadlineText("not a date")})
	assert.ErrorIs(t, err, domain.ErrInvalidTaskDeadline)

	_, err = svc.Update(ctx, "Launch", "id", domain.TaskFields{Title: "x", Description: words(151), Status: "todo"})
	assert.ErrorIs(t, err, domain.ErrInvalidTaskDescriptionSize)

	_, err = svc.UpdateStatus(ctx, "Launch", "id", "closed")
	assert.ErrorIs(t, err, domain.ErrInvalidTaskStatus)

	projects.AssertExpectations(t)
	tasks.AssertExpectations(t)
	projects.AssertNotCalled(t, "GetByName", mock.Anything, mock.Anything)
}

func TestTaskService_ProjectNotFoundBeforeTaskLookup(t *testing.T) {
	projects := new(MockProjectStore)
	tasks := new(MockTaskStore)
	projects.On("GetByName", mock.Anything, "Ghost").Return(nil, domain.ErrProjectNotFound)
	svc := service.NewTaskService(projects, tasks, domain.DefaultLimits())
	ctx := context.Background()

	_, err := svc.Get(ctx, "Ghost", "whatever")
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
	_, err = svc.UpdateStatus(ctx, "Ghost", "whatever", "done")
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
	err = svc.Delete(ctx, "Ghost", "whatever")
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)

	tasks.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	projects.AssertExpectations(t)
}

func TestTaskService_CrossProjectLookupIsNotFound(t *testing.T) {
	f := newFixture(domain.DefaultLimits())
	ctx := context.Background()
	_, err := f.projects.Create(ctx, "Launch", "")
	require.NoError(t, err)
	_, err = f.projects.Create(ctx, "Landing", "")
	require.NoError(t, err)

	task, err := f.tasks.Create(ctx, "Launch", todo("Write spec"))
	require.NoError(t, err)

	_, err = f.tasks.Get(ctx, "Landing", task.ID())
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	_, err = f.tasks.UpdateStatus(ctx, "Landing", task.ID(), "done")
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	err = f.tasks.Delete(ctx, "Landing", task.ID())
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	// untouched under its own project
	got, err := f.tasks.Get(ctx, "Launch", task.ID())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusTodo, got.Status())
}

func TestTaskService_MalformedIDIsNotFound(t *testing.T) {
	f := newFixture(domain.DefaultLimits())
	ctx := context.Background()
	_, err := f.projects.Create(ctx, "Launch", "")
	require.NoError(t, err)

	_, err = f.tasks.Get(ctx, "Launch", "deadbeef")
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestTaskService_Update(t *testing.T) {
	f := newFixture(domain.DefaultLimits())
	ctx := context.Background()
	_, err := f.projects.Create(ctx, "Launch", "")
	require.NoError(t, err)

	task, err := f.tasks.Create(ctx, "Launch", domain.TaskFields{
		Title:       "Write spec",
		Description: "draft",
		Status:      "todo",
		Deadline:    domain.DeadlineAt(f.clock.Now().Add(time.Hour)),
	})
	require.NoError(t, err)

	f.clock.Advance(time.Minute)
	updated, err := f.tasks.Update(ctx, "Launch", task.ID(), domain.TaskFields{Title: "Review spec", Status: "doing"})
	require.NoError(t, err)
	assert.Equal(t, task.ID(), updated.ID())
	assert.Equal(t, "Review spec", updated.Title())
	assert.Equal(t, "", updated.Description())
	assert.Equal(t, domain.StatusDoing, updated.Status())
	assert.Nil(t, updated.Deadline())

	got, err := f.tasks.Get(ctx, "Launch", task.ID())
	require.NoError(t, err)
	assert.Equal(t, "Review spec", got.Title())
	assert.Nil(t, got.Deadline())
	assert.Equal(t, f.clock.Now(), got.UpdatedAt())
}

func TestTaskService_UpdateStatusKeepsPastDeadline(t *testing.T) {
	f := newFixture(domain.DefaultLimits())
	ctx := context.Background()
	_, err := f.projects.Create(ctx, "Launch", "")
	require.NoError(t, err)

	deadline := f.clock.Now().Add(time.Hour)
	task, err := f.tasks.Create(ctx, "Launch", domain.TaskFields{
		Title:       "Write spec",
		Description: "draft",
		Status:      "todo",
		Deadline:    domain.DeadlineAt(deadline),
	})
	require.NoError(t, err)

	f.clock.Advance(2 * time.Hour)
	updated, err := f.tasks.UpdateStatus(ctx, "Launch", task.ID(), "doing")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDoing, updated.Status())
	assert.Equal(t, "draft", updated.Description())
	assert.Equal(t, deadline, *updated.Deadline())
}

func TestTaskService_DeleteProjectCascades(t *testing.T) {
	f := newFixture(domain.DefaultLimits())
	ctx := context.Background()
	_, err := f.projects.Create(ctx, "Launch", "")
	require.NoError(t, err)

	var ids []string
	for _, title := range []string{"one", "two", "three"} {
		task, err := f.tasks.Create(ctx, "Launch", todo(title))
		require.NoError(t, err)
		ids = append(ids, task.ID())
	}

	require.NoError(t, f.projects.Delete(ctx, "Launch"))

	// a new project with the same name must not see the old tasks
	_, err = f.projects.Create(ctx, "Launch", "")
	require.NoError(t, err)
	for _, id := range ids {
		_, err := f.tasks.Get(ctx, "Launch", id)
		assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	}
	count, err := f.store.Tasks().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestTaskService_DeleteTask(t *testing.T) {
	f := newFixture(domain.DefaultLimits())
	ctx := context.Background()
	_, err := f.projects.Create(ctx, "Launch", "")
	require.NoError(t, err)

	keep, err := f.tasks.Create(ctx, "Launch", todo("keep"))
	require.NoError(t, err)
	drop, err := f.tasks.Create(ctx, "Launch", todo("drop"))
	require.NoError(t, err)

	require.NoError(t, f.tasks.Delete(ctx, "Launch", drop.ID()))
	assert.ErrorIs(t, f.tasks.Delete(ctx, "Launch", drop.ID()), domain.ErrTaskNotFound)

	tasks, err := f.tasks.List(ctx, "Launch")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, keep.ID(), tasks[0].ID())
}

func TestTaskService_MaxTasks(t *testing.T) {
	f := newFixture(domain.Limits{MaxProjects: 10, MaxTasks: 2})
	ctx := context.Background()
	_, err := f.projects.Create(ctx, "Launch", "")
	require.NoError(t, err)

	first, err := f.tasks.Create(ctx, "Launch", todo("one"))
	require.NoError(t, err)
	_, err = f.tasks.Create(ctx, "Launch", todo("two"))
	require.NoError(t, err)

	_, err = f.tasks.Create(ctx, "Launch", todo("three"))
	assert.ErrorIs(t, err, domain.ErrMaxTasksReached)

	require.NoError(t, f.tasks.Delete(ctx, "Launch", first.ID()))
	_, err = f.tasks.Create(ctx, "Launch", todo("three"))
	assert.NoError(t, err)
}

func TestTaskService_IDCollisionIsRejected(t *testing.T) {
	store := newFixture(domain.DefaultLimits())
	ctx := context.Background()
	fixed := uuid.NewString()
	svc := service.NewTaskService(store.store.Projects(), store.store.Tasks(), domain.DefaultLimits(),
		service.WithIDGenerator(func() string { return fixed }))

	_, err := store.projects.Create(ctx, "Launch", "")
	require.NoError(t, err)

	original, err := svc.Create(ctx, "Launch", todo("original"))
	require.NoError(t, err)

	_, err = svc.Create(ctx, "Launch", todo("duplicate"))
	assert.ErrorIs(t, err, domain.ErrTaskIDCollision)

	got, err := svc.Get(ctx, "Launch", original.ID())
	require.NoError(t, err)
	assert.Equal(t, "original", got.Title())
}

func TestTaskService_UpdateStoreFailure(t *testing.T) {
	projects := new(MockProjectStore)
	tasks := new(MockTaskStore)
	id := uuid.New()
	projects.On("GetByName", mock.Anything, "Launch").Return(&model.Project{ID: 1, Name: "Launch"}, nil)
	tasks.On("GetByID", mock.Anything, id.String()).Return(&model.Task{ID: id, ProjectID: 1, Title: "x", Status: "todo"}, nil)
	tasks.On("Update", mock.Anything, mock.AnythingOfType("*model.Task")).Return(assert.AnError)
	svc := service.NewTaskService(projects, tasks, domain.DefaultLimits())

	_, err := svc.UpdateStatus(context.Background(), "Launch", id.String(), "done")
	assert.ErrorIs(t, err, assert.AnError)
	projects.AssertExpectations(t)
	tasks.AssertExpectations(t)
}

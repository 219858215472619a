package handler

import (
	"context"
	"net/http"
	"time"

	"todo/internal/domain"

	"github.com/gin-gonic/gin"
)

type TaskService interface {
	Create(ctx context.Context, projectName string, fields domain.TaskFields) (*domain.Task, error)
	Get(ctx context.Context, projectName, id string) (*domain.Task, error)
	List(ctx context.Context, projectName string) ([]*domain.Task, error)
	Update(ctx context.Context, projectName, id string, fields domain.TaskFields) (*domain.Task, error)
	UpdateStatus(ctx context.Context, projectName, id, status string) (*domain.Task, error)
	Delete(ctx context.Context, projectName, id string) error
}

type TaskHandler struct {
	tasks TaskService
	now   func() time.Time
}

// NewTaskHandler returns a handler for task routes. now is used to report
// whether a task is overdue; nil means time.Now.
func NewTaskHandler(tasks TaskService, now func() time.Time) *TaskHandler {
	if now == nil {
		now = time.Now
	}
	return &TaskHandler{tasks: tasks, now: now}
}

// TaskRequest carries the fields of a new task.
// An omitted status means todo; an omitted or null deadline means none.
type TaskRequest struct {
	Title       string               `json:"title" example:"Write release notes"`
	Description string               `json:"description"`
	Status      string               `json:"status,omitempty" enums:"todo,doing,done" example:"todo"`
	Deadline    domain.DeadlineInput `json:"deadline" swaggertype:"string" example:"2026-10-20T17:00:00Z"`
}

func (r TaskRequest) fields() domain.TaskFields {
	status := r.Status
	if status == "" {
		status = string(domain.StatusTodo)
	}
	return domain.TaskFields{
		Title:       r.Title,
		Description: r.Description,
		Status:      status,
		Deadline:    r.Deadline,
	}
}

// OptionalDeadline tells an omitted deadline apart from an explicit one,
// null included.
type OptionalDeadline struct {
	Present bool
	Value   domain.DeadlineInput
}

func (d *OptionalDeadline) UnmarshalJSON(data []byte) error {
	d.Present = true
	return d.Value.UnmarshalJSON(data)
}

// TaskUpdateRequest edits a task. Omitted fields keep their current value;
// a null deadline removes it.
type TaskUpdateRequest struct {
	Title       *string          `json:"title" example:"Write release notes"`
	Description *string          `json:"description"`
	Status      *string          `json:"status" enums:"todo,doing,done" example:"doing"`
	Deadline    OptionalDeadline `json:"deadline" swaggertype:"string" example:"2026-10-20T17:00:00Z"`
}

// validate checks the supplied fields only, before any lookup.
func (r TaskUpdateRequest) validate(now time.Time) error {
	if r.Title != nil {
		if err := domain.ValidateTaskTitle(*r.Title); err != nil {
			return err
		}
	}
	if r.Description != nil {
		if err := domain.ValidateTaskDescription(*r.Description); err != nil {
			return err
		}
	}
	if r.Status != nil {
		if err := domain.ValidateTaskStatus(*r.Status); err != nil {
			return err
		}
	}
	if r.Deadline.Present {
		if _, err := domain.ValidateTaskDeadline(r.Deadline.Value, now); err != nil {
			return err
		}
	}
	return nil
}

// merge fills the omitted fields from current. A kept deadline is not
// re-checked, so a task past its deadline can still be edited.
func (r TaskUpdateRequest) merge(current *domain.Task) domain.TaskFields {
	fields := domain.TaskFields{
		Title:       current.Title(),
		Description: current.Description(),
		Status:      current.Status().String(),
		Deadline:    domain.KeepDeadline(current.Deadline()),
	}
	if r.Title != nil {
		fields.Title = *r.Title
	}
	if r.Description != nil {
		fields.Description = *r.Description
	}
	if r.Status != nil {
		fields.Status = *r.Status
	}
	if r.Deadline.Present {
		fields.Deadline = r.Deadline.Value
	}
	return fields
}

type TaskStatusRequest struct {
	Status string `json:"status" binding:"required" enums:"todo,doing,done"`
}

type TaskResponse struct {
	ID          string  `json:"id"`
	Project     string  `json:"project"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Deadline    *string `json:"deadline"`
	Overdue     bool    `json:"overdue"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

func (h *TaskHandler) toResponse(project string, t *domain.Task) TaskResponse {
	resp := TaskResponse{
		ID:          t.ID(),
		Project:     project,
		Title:       t.Title(),
		Description: t.Description(),
		Status:      t.Status().String(),
		Overdue:     t.Overdue(h.now()),
		CreatedAt:   t.CreatedAt().UTC().Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt().UTC().Format(time.RFC3339),
	}
	if d := t.Deadline(); d != nil {
		s := d.UTC().Format(time.RFC3339)
		resp.Deadline = &s
	}
	return resp
}

// Create godoc
// @Summary      Add a task to a project
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Param        name  path      string       true  "Project name"
// @Param        task  body      TaskRequest  true  "Task"
// @Success      201   {object}  TaskResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /projects/{name}/tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	project := c.Param("name")
	task, err := h.tasks.Create(c.Request.Context(), project, req.fields())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.toResponse(project, task))
}

// GetAll godoc
// @Summary      List the tasks of a project
// @Tags         Tasks
// @Produce      json
// @Param        name  path      string  true  "Project name"
// @Success      200   {array}   TaskResponse
// @Failure      404   {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /projects/{name}/tasks [get]
func (h *TaskHandler) GetAll(c *gin.Context) {
	project := c.Param("name")
	tasks, err := h.tasks.List(c.Request.Context(), project)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		resp = append(resp, h.toResponse(project, t))
	}
	c.JSON(http.StatusOK, resp)
}

// GetByID godoc
// @Summary      Get a task
// @Tags         Tasks
// @Produce      json
// @Param        name  path      string  true  "Project name"
// @Param        id    path      string  true  "Task ID"
// @Success      200   {object}  TaskResponse
// @Failure      404   {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /projects/{name}/tasks/{id} [get]
func (h *TaskHandler) GetByID(c *gin.Context) {
	project := c.Param("name")
	task, err := h.tasks.Get(c.Request.Context(), project, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toResponse(project, task))
}

// Update godoc
// @Summary      Update the fields of a task
// @Description  Fields left out keep their current value. A null deadline removes it.
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Param        name  path      string             true  "Project name"
// @Param        id    path      string             true  "Task ID"
// @Param        task  body      TaskUpdateRequest  true  "Task"
// @Success      200   {object}  TaskResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /projects/{name}/tasks/{id} [put]
func (h *TaskHandler) Update(c *gin.Context) {
	var req TaskUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := req.validate(h.now()); err != nil {
		respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	project, id := c.Param("name"), c.Param("id")
	current, err := h.tasks.Get(ctx, project, id)
	if err != nil {
		respondError(c, err)
		return
	}

	task, err := h.tasks.Update(ctx, project, id, req.merge(current))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toResponse(project, task))
}

// UpdateStatus godoc
// @Summary      Change only the status of a task
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Param        name    path      string             true  "Project name"
// @Param        id      path      string             true  "Task ID"
// @Param        status  body      TaskStatusRequest  true  "New status"
// @Success      200     {object}  TaskResponse
// @Failure      400     {object}  ErrorResponse
// @Failure      404     {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /projects/{name}/tasks/{id}/status [patch]
func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	var req TaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	project := c.Param("name")
	task, err := h.tasks.UpdateStatus(c.Request.Context(), project, c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toResponse(project, task))
}

// Delete godoc
// @Summary      Delete a task
// @Tags         Tasks
// @Param        name  path  string  true  "Project name"
// @Param        id    path  string  true  "Task ID"
// @Success      204
// @Failure      404   {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /projects/{name}/tasks/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	if err := h.tasks.Delete(c.Request.Context(), c.Param("name"), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

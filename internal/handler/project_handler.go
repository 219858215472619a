package handler

import (
	"context"
	"net/http"
	"time"

	"todo/internal/domain"
	"todo/internal/service"

	"github.com/gin-gonic/gin"
)

type ProjectService interface {
	Create(ctx context.Context, name, description string) (*domain.Project, error)
	Get(ctx context.Context, name string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, name string, patch service.ProjectPatch) (*domain.Project, error)
	Delete(ctx context.Context, name string) error
}

type ProjectHandler struct {
	projects ProjectService
}

func NewProjectHandler(projects ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// ProjectRequest is the body of a project create call.
type ProjectRequest struct {
	Name        string `json:"name" example:"Launch"`
	Description string `json:"description" example:"Everything needed for the v1 release"`
}

// ProjectUpdateRequest renames and/or re-describes a project. Omitted
// fields are left unchanged.
type ProjectUpdateRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

type ProjectResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func toProjectResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		CreatedAt:   p.CreatedAt().UTC().Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt().UTC().Format(time.RFC3339),
	}
}

// Create godoc
// @Summary      Create a project
// @Tags         Projects
// @Accept       json
// @Produce      json
// @Param        project  body      ProjectRequest  true  "Project"
// @Success      201      {object}  ProjectResponse
// @Failure      400      {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	project, err := h.projects.Create(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toProjectResponse(project))
}

// GetAll godoc
// @Summary      List projects
// @Tags         Projects
// @Produce      json
// @Success      200  {array}   ProjectResponse
// @Security     BearerAuth
// @Router       /projects [get]
func (h *ProjectHandler) GetAll(c *gin.Context) {
	projects, err := h.projects.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		resp = append(resp, toProjectResponse(p))
	}
	c.JSON(http.StatusOK, resp)
}

// GetByName godoc
// @Summary      Get a project
// @Tags         Projects
// @Produce      json
// @Param        name  path      string  true  "Project name"
// @Success      200   {object}  ProjectResponse
// @Failure      404   {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /projects/{name} [get]
func (h *ProjectHandler) GetByName(c *gin.Context) {
	project, err := h.projects.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProjectResponse(project))
}

// Update godoc
// @Summary      Rename or re-describe a project
// @Tags         Projects
// @Accept       json
// @Produce      json
// @Param        name     path      string                true  "Project name"
// @Param        project  body      ProjectUpdateRequest  true  "Fields to change"
// @Success      200      {object}  ProjectResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /projects/{name} [put]
func (h *ProjectHandler) Update(c *gin.Context) {
	var req ProjectUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if req.Name == nil && req.Description == nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Nothing to update"})
		return
	}

	patch := service.ProjectPatch{Name: req.Name, Description: req.Description}
	project, err := h.projects.Update(c.Request.Context(), c.Param("name"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProjectResponse(project))
}

// Delete godoc
// @Summary      Delete a project and all of its tasks
// @Tags         Projects
// @Param        name  path  string  true  "Project name"
// @Success      204
// @Failure      404   {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /projects/{name} [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.projects.Delete(c.Request.Context(), c.Param("name")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

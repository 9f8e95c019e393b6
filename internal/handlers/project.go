package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/Abdullah0f/projectEase/internal/errors"
	"github.com/Abdullah0f/projectEase/internal/middleware"
	"github.com/Abdullah0f/projectEase/internal/models"
	"github.com/Abdullah0f/projectEase/internal/services"
	"github.com/Abdullah0f/projectEase/internal/utils"
)

// ProjectHandler coordinates project CRUD handlers.
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// ListProjects lists the team's projects.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	team, ok := middleware.CurrentTeam(c)
	if !ok {
		apierrors.InternalError(c, "")
		return
	}
	params := utils.GetPaginationParams(c)

	projects, total, err := h.projectService.ListProjects(team.ID, params)
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"projects": projects,
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// CreateProject creates a project under the team.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	team, ok := middleware.CurrentTeam(c)
	if !ok {
		apierrors.InternalError(c, "")
		return
	}
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Unauthenticated(c, "")
		return
	}

	type CreateProjectRequest struct {
		Name        string               `json:"name" binding:"required,min=3,max=50"`
		Description string               `json:"description" binding:"required,min=3,max=1024"`
		Status      models.ProjectStatus `json:"status"`
	}

	var req CreateProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.projectService.CreateProject(team, user, services.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidProjectStatus) {
			apierrors.BadRequest(c, err.Error())
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// GetProject returns the project resolved from the path.
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, ok := middleware.CurrentProject(c)
	if !ok {
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, project)
}

// UpdateProject updates mutable project fields. The owning team never
// changes.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	project, ok := middleware.CurrentProject(c)
	if !ok {
		apierrors.InternalError(c, "")
		return
	}

	type UpdateProjectRequest struct {
		Name        *string               `json:"name" binding:"omitempty,min=3,max=50"`
		Description *string               `json:"description" binding:"omitempty,min=3,max=1024"`
		Status      *models.ProjectStatus `json:"status"`
	}

	var req UpdateProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	updated, err := h.projectService.UpdateProject(project, services.UpdateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidProjectStatus) {
			apierrors.BadRequest(c, err.Error())
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteProject soft deletes the project.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	project, ok := middleware.CurrentProject(c)
	if !ok {
		apierrors.InternalError(c, "")
		return
	}

	if err := h.projectService.DeleteProject(project); err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

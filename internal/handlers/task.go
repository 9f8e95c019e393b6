package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apierrors "github.com/Abdullah0f/projectEase/internal/errors"
	"github.com/Abdullah0f/projectEase/internal/middleware"
	"github.com/Abdullah0f/projectEase/internal/models"
	"github.com/Abdullah0f/projectEase/internal/services"
	"github.com/Abdullah0f/projectEase/internal/utils"
)

// TaskHandler coordinates task CRUD and admin-set handlers.
type TaskHandler struct {
	taskService *services.TaskService
	authService *services.AuthService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService, authService *services.AuthService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		authService: authService,
	}
}

// ListTasks lists the project's tasks.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	project, ok := middleware.CurrentProject(c)
	if !ok {
		apierrors.InternalError(c, "")
		return
	}
	params := utils.GetPaginationParams(c)

	tasks, total, err := h.taskService.ListTasks(project.ID, params)
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": tasks,
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// CreateTask creates a task under the project, with the caller as its
// first admin.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	project, ok := middleware.CurrentProject(c)
	if !ok {
		apierrors.InternalError(c, "")
		return
	}
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Unauthenticated(c, "")
		return
	}

	type CreateTaskRequest struct {
		Name        string            `json:"name" binding:"required,min=3,max=50"`
		Description string            `json:"description" binding:"required,min=3,max=1024"`
		Status      models.TaskStatus `json:"status"`
		Priority    *int              `json:"priority"`
		DueDate     *time.Time        `json:"due_date"`
	}

	var req CreateTaskRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.taskService.CreateTask(project, user, services.CreateTaskInput{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidTaskStatus),
			errors.Is(err, services.ErrInvalidTaskPriority):
			apierrors.BadRequest(c, err.Error())
		default:
			serverError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, task)
}

// GetTask returns the task resolved from the path.
func (h *TaskHandler) GetTask(c *gin.Context) {
	task, ok := middleware.CurrentTask(c)
	if !ok {
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, task)
}

// UpdateTask updates mutable task fields. The owning project never
// changes; the guard chain has already confirmed admin rights.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	task, ok := middleware.CurrentTask(c)
	if !ok {
		apierrors.InternalError(c, "")
		return
	}

	type UpdateTaskRequest struct {
		Name        *string            `json:"name" binding:"omitempty,min=3,max=50"`
		Description *string            `json:"description" binding:"omitempty,min=3,max=1024"`
		Status      *models.TaskStatus `json:"status"`
		Priority    *int               `json:"priority"`
		DueDate     *time.Time         `json:"due_date"`
	}

	var req UpdateTaskRequest
	if !bindJSON(c, &req) {
		return
	}

	updated, err := h.taskService.UpdateTask(task, services.UpdateTaskInput{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidTaskStatus),
			errors.Is(err, services.ErrInvalidTaskPriority):
			apierrors.BadRequest(c, err.Error())
		default:
			serverError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteTask soft deletes the task.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	task, ok := middleware.CurrentTask(c)
	if !ok {
		apierrors.InternalError(c, "")
		return
	}

	if err := h.taskService.DeleteTask(task); err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// AddAdmin grants another user admin rights over the task.
func (h *TaskHandler) AddAdmin(c *gin.Context) {
	task, ok := middleware.CurrentTask(c)
	if !ok {
		apierrors.InternalError(c, "")
		return
	}
	team, ok := middleware.CurrentTeam(c)
	if !ok {
		apierrors.InternalError(c, "")
		return
	}

	type AddAdminRequest struct {
		UserID uint64 `json:"user_id" binding:"required"`
	}

	var req AddAdminRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.authService.GetActiveUser(req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			apierrors.NotFound(c, err.Error())
		case errors.Is(err, services.ErrUserDeleted):
			apierrors.AlreadyDeleted(c, err.Error())
		default:
			serverError(c, err)
		}
		return
	}

	if !team.IsMember(user.ID) {
		apierrors.BadRequest(c, "this user is not a member of this team")
		return
	}

	if err := h.taskService.AddAdmin(task, user); err != nil {
		if errors.Is(err, services.ErrAlreadyTaskAdmin) {
			apierrors.BadRequest(c, err.Error())
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// RemoveAdmin revokes a user's admin rights over the task.
func (h *TaskHandler) RemoveAdmin(c *gin.Context) {
	task, ok := middleware.CurrentTask(c)
	if !ok {
		apierrors.InternalError(c, "")
		return
	}
	target, ok := middleware.ParamUser(c)
	if !ok {
		apierrors.InternalError(c, "")
		return
	}

	if err := h.taskService.RemoveAdmin(task, target.ID); err != nil {
		if errors.Is(err, services.ErrNotTaskAdmin) {
			apierrors.BadRequest(c, err.Error())
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/Abdullah0f/projectEase/internal/errors"
	"github.com/Abdullah0f/projectEase/internal/middleware"
	"github.com/Abdullah0f/projectEase/internal/services"
	"github.com/Abdullah0f/projectEase/internal/utils"
)

// CommentHandler serves comments under both project and task paths. The
// guard chain decides which parent is in play.
type CommentHandler struct {
	commentService *services.CommentService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(commentService *services.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// ListComments lists the comments of the resolved parent.
func (h *CommentHandler) ListComments(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	if task, ok := middleware.CurrentTask(c); ok {
		comments, total, err := h.commentService.ListTaskComments(task.ID, params)
		if err != nil {
			serverError(c, err)
			return
		}
		respondComments(c, comments, params, total)
		return
	}

	project, ok := middleware.CurrentProject(c)
	if !ok {
		apierrors.InternalError(c, "")
		return
	}
	comments, total, err := h.commentService.ListProjectComments(project.ID, params)
	if err != nil {
		serverError(c, err)
		return
	}
	respondComments(c, comments, params, total)
}

func respondComments(c *gin.Context, comments interface{}, params utils.PaginationParams, total int64) {
	c.JSON(http.StatusOK, gin.H{
		"comments": comments,
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// CreateComment attaches a comment to the resolved parent.
func (h *CommentHandler) CreateComment(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Unauthenticated(c, "")
		return
	}

	type CreateCommentRequest struct {
		Text string `json:"text" binding:"required,min=1,max=1024"`
	}

	var req CreateCommentRequest
	if !bindJSON(c, &req) {
		return
	}

	if task, ok := middleware.CurrentTask(c); ok {
		comment, err := h.commentService.CreateTaskComment(task, user, req.Text)
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, comment)
		return
	}

	project, ok := middleware.CurrentProject(c)
	if !ok {
		apierrors.InternalError(c, "")
		return
	}
	comment, err := h.commentService.CreateProjectComment(project, user, req.Text)
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

// GetComment returns the comment resolved from the path.
func (h *CommentHandler) GetComment(c *gin.Context) {
	comment, ok := middleware.CurrentComment(c)
	if !ok {
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, comment)
}

// UpdateComment replaces the comment text.
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	comment, ok := middleware.CurrentComment(c)
	if !ok {
		apierrors.InternalError(c, "")
		return
	}

	type UpdateCommentRequest struct {
		Text string `json:"text" binding:"required,min=1,max=1024"`
	}

	var req UpdateCommentRequest
	if !bindJSON(c, &req) {
		return
	}

	updated, err := h.commentService.UpdateComment(comment, req.Text)
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteComment soft deletes the comment.
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	comment, ok := middleware.CurrentComment(c)
	if !ok {
		apierrors.InternalError(c, "")
		return
	}

	if err := h.commentService.DeleteComment(comment); err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, comment)
}

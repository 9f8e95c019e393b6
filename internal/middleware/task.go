package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Abdullah0f/projectEase/internal/constants"
	"github.com/Abdullah0f/projectEase/internal/database"
	apierrors "github.com/Abdullah0f/projectEase/internal/errors"
	"github.com/Abdullah0f/projectEase/internal/models"
)

// ResolveTask loads the task named by :taskId with its admin set and
// checks it belongs to the project resolved earlier in the chain.
func ResolveTask() gin.HandlerFunc {
	return func(c *gin.Context) {
		taskID, ok := parseIDParam(c, "taskId")
		if !ok {
			return
		}
		project, ok := CurrentProject(c)
		if !ok {
			apierrors.InternalError(c, "")
			c.Abort()
			return
		}

		var task models.Task
		if err := database.GetDB().Preload("Admins").First(&task, taskID).Error; err != nil {
			if isNotFound(err) {
				apierrors.NotFound(c, "The task with the given ID was not found.")
			} else {
				apierrors.InternalError(c, "")
			}
			c.Abort()
			return
		}
		if task.IsDeleted {
			apierrors.AlreadyDeleted(c, "This task is already deleted.")
			c.Abort()
			return
		}
		if task.ProjectID != project.ID {
			apierrors.WrongParent(c, "This task does not belong to this project.")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyTask, &task)
		c.Next()
	}
}

// RequireTaskAdmin rejects actors outside the task's admin set. Team
// membership alone is not enough to mutate a task.
func RequireTaskAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			apierrors.Unauthenticated(c, "")
			c.Abort()
			return
		}
		task, ok := CurrentTask(c)
		if !ok {
			apierrors.InternalError(c, "")
			c.Abort()
			return
		}

		if !task.IsAdmin(user.ID) {
			apierrors.Forbidden(c, "You are NOT authorized to edit this task.")
			c.Abort()
			return
		}
		c.Next()
	}
}

package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Abdullah0f/projectEase/internal/constants"
	"github.com/Abdullah0f/projectEase/internal/database"
	apierrors "github.com/Abdullah0f/projectEase/internal/errors"
	"github.com/Abdullah0f/projectEase/internal/models"
)

// ResolveComment loads the comment named by :commentId and checks it
// hangs off the parent resolved earlier in the chain. Under a task path
// the parent is the task; under a project path it is the project.
func ResolveComment() gin.HandlerFunc {
	return func(c *gin.Context) {
		commentID, ok := parseIDParam(c, "commentId")
		if !ok {
			return
		}

		var comment models.Comment
		if err := database.GetDB().First(&comment, commentID).Error; err != nil {
			if isNotFound(err) {
				apierrors.NotFound(c, "The comment with the given ID was not found.")
			} else {
				apierrors.InternalError(c, "")
			}
			c.Abort()
			return
		}
		if comment.IsDeleted {
			apierrors.AlreadyDeleted(c, "This comment is already deleted.")
			c.Abort()
			return
		}

		if task, ok := CurrentTask(c); ok {
			if !comment.BelongsToTask(task.ID) {
				apierrors.WrongParent(c, "This comment does not belong to this task.")
				c.Abort()
				return
			}
		} else if project, ok := CurrentProject(c); ok {
			if !comment.BelongsToProject(project.ID) {
				apierrors.WrongParent(c, "This comment does not belong to this project.")
				c.Abort()
				return
			}
		} else {
			apierrors.InternalError(c, "")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyComment, &comment)
		c.Next()
	}
}

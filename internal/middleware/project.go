package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Abdullah0f/projectEase/internal/constants"
	"github.com/Abdullah0f/projectEase/internal/database"
	apierrors "github.com/Abdullah0f/projectEase/internal/errors"
	"github.com/Abdullah0f/projectEase/internal/models"
)

// ResolveProject loads the project named by :projectId and checks it
// belongs to the team resolved earlier in the chain.
func ResolveProject() gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, ok := parseIDParam(c, "projectId")
		if !ok {
			return
		}
		team, ok := CurrentTeam(c)
		if !ok {
			apierrors.InternalError(c, "")
			c.Abort()
			return
		}

		var project models.Project
		if err := database.GetDB().First(&project, projectID).Error; err != nil {
			if isNotFound(err) {
				apierrors.NotFound(c, "The project with the given ID was not found.")
			} else {
				apierrors.InternalError(c, "")
			}
			c.Abort()
			return
		}
		if project.IsDeleted {
			apierrors.AlreadyDeleted(c, "This project is already deleted.")
			c.Abort()
			return
		}
		if project.TeamID != team.ID {
			apierrors.WrongParent(c, "This project does not belong to this team.")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyProject, &project)
		c.Next()
	}
}

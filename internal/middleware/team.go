package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Abdullah0f/projectEase/internal/constants"
	"github.com/Abdullah0f/projectEase/internal/database"
	apierrors "github.com/Abdullah0f/projectEase/internal/errors"
	"github.com/Abdullah0f/projectEase/internal/models"
)

// ResolveTeam loads the team named by :teamId with its member set and
// stores it in the context. Soft-deleted teams surface as a distinct
// "already deleted" failure rather than not-found.
func ResolveTeam() gin.HandlerFunc {
	return func(c *gin.Context) {
		teamID, ok := parseIDParam(c, "teamId")
		if !ok {
			return
		}

		var team models.Team
		if err := database.GetDB().Preload("Members").First(&team, teamID).Error; err != nil {
			if isNotFound(err) {
				apierrors.NotFound(c, "The team with the given ID was not found.")
			} else {
				apierrors.InternalError(c, "")
			}
			c.Abort()
			return
		}
		if team.IsDeleted {
			apierrors.AlreadyDeleted(c, "This team is already deleted.")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyTeam, &team)
		c.Next()
	}
}

// RequireTeamMember rejects actors outside the resolved team.
func RequireTeamMember() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			apierrors.Unauthenticated(c, "")
			c.Abort()
			return
		}
		team, ok := CurrentTeam(c)
		if !ok {
			apierrors.InternalError(c, "")
			c.Abort()
			return
		}

		if !team.IsMember(user.ID) {
			apierrors.Forbidden(c, "You are NOT authorized to access this team.")
			c.Abort()
			return
		}
		c.Next()
	}
}

package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Abdullah0f/projectEase/internal/constants"
	"github.com/Abdullah0f/projectEase/internal/database"
	apierrors "github.com/Abdullah0f/projectEase/internal/errors"
	"github.com/Abdullah0f/projectEase/internal/models"
)

// ResolveInvite loads the invite named by :inviteId and checks it
// belongs to the team resolved earlier in the chain. Terminal invites
// are surfaced so a repeated transition gets a clear rejection instead
// of a not-found.
func ResolveInvite() gin.HandlerFunc {
	return func(c *gin.Context) {
		inviteID, ok := parseIDParam(c, "inviteId")
		if !ok {
			return
		}
		team, ok := CurrentTeam(c)
		if !ok {
			apierrors.InternalError(c, "")
			c.Abort()
			return
		}

		var invite models.Invite
		if err := database.GetDB().First(&invite, inviteID).Error; err != nil {
			if isNotFound(err) {
				apierrors.NotFound(c, "The invite with the given ID was not found.")
			} else {
				apierrors.InternalError(c, "")
			}
			c.Abort()
			return
		}
		if invite.TeamID != team.ID {
			apierrors.WrongParent(c, "This invite does not belong to this team.")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyInvite, &invite)
		c.Next()
	}
}

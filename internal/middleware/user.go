package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Abdullah0f/projectEase/internal/constants"
	"github.com/Abdullah0f/projectEase/internal/database"
	apierrors "github.com/Abdullah0f/projectEase/internal/errors"
	"github.com/Abdullah0f/projectEase/internal/models"
)

// ResolveUser loads the user named by :userId and stores it in the
// context, distinct from the authenticated actor.
func ResolveUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseIDParam(c, "userId")
		if !ok {
			return
		}

		var user models.User
		if err := database.GetDB().First(&user, userID).Error; err != nil {
			if isNotFound(err) {
				apierrors.NotFound(c, "The user with the given ID was not found.")
			} else {
				apierrors.InternalError(c, "")
			}
			c.Abort()
			return
		}
		if user.IsDeleted {
			apierrors.AlreadyDeleted(c, "This user is already deleted.")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyParamUser, &user)
		c.Next()
	}
}

// RequireSelf restricts the route to the user named in the path.
func RequireSelf() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := CurrentUser(c)
		if !ok {
			apierrors.Unauthenticated(c, "")
			c.Abort()
			return
		}
		target, ok := ParamUser(c)
		if !ok {
			apierrors.InternalError(c, "")
			c.Abort()
			return
		}

		if actor.ID != target.ID {
			apierrors.Forbidden(c, "You can only manage your own account.")
			c.Abort()
			return
		}
		c.Next()
	}
}

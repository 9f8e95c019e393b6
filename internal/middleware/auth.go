package middleware

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Abdullah0f/projectEase/internal/auth"
	"github.com/Abdullah0f/projectEase/internal/constants"
	"github.com/Abdullah0f/projectEase/internal/database"
	apierrors "github.com/Abdullah0f/projectEase/internal/errors"
	"github.com/Abdullah0f/projectEase/internal/models"
)

// RequireAuth resolves the actor from the x-auth-token header. A missing
// header, a bad token and a vanished subject user are three different
// failures, all of them 401.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(constants.AuthTokenHeader)
		if token == "" {
			apierrors.Unauthenticated(c, "")
			c.Abort()
			return
		}

		userID, err := auth.Verify(token)
		if err != nil {
			apierrors.InvalidCredential(c, "")
			c.Abort()
			return
		}

		var user models.User
		if err := database.GetDB().First(&user, userID).Error; err != nil || user.IsDeleted {
			apierrors.InvalidCredential(c, "User with this token was not found.")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUser, &user)
		c.Next()
	}
}

// parseIDParam parses a numeric path identifier, failing fast before
// any store lookup.
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		apierrors.MalformedID(c, "Invalid "+name+".")
		c.Abort()
		return 0, false
	}
	return id, true
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

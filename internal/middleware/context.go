package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Abdullah0f/projectEase/internal/constants"
	"github.com/Abdullah0f/projectEase/internal/models"
)

// Typed accessors for the entities the guard chain resolves. Each stage
// stores its entity under a named key; handlers read them back through
// these instead of poking at the raw context.

// CurrentUser returns the authenticated actor.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get(constants.ContextKeyUser)
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}

// CurrentTeam returns the team resolved from the path.
func CurrentTeam(c *gin.Context) (*models.Team, bool) {
	v, exists := c.Get(constants.ContextKeyTeam)
	if !exists {
		return nil, false
	}
	team, ok := v.(*models.Team)
	return team, ok
}

// CurrentProject returns the project resolved from the path.
func CurrentProject(c *gin.Context) (*models.Project, bool) {
	v, exists := c.Get(constants.ContextKeyProject)
	if !exists {
		return nil, false
	}
	project, ok := v.(*models.Project)
	return project, ok
}

// CurrentTask returns the task resolved from the path.
func CurrentTask(c *gin.Context) (*models.Task, bool) {
	v, exists := c.Get(constants.ContextKeyTask)
	if !exists {
		return nil, false
	}
	task, ok := v.(*models.Task)
	return task, ok
}

// CurrentComment returns the comment resolved from the path.
func CurrentComment(c *gin.Context) (*models.Comment, bool) {
	v, exists := c.Get(constants.ContextKeyComment)
	if !exists {
		return nil, false
	}
	comment, ok := v.(*models.Comment)
	return comment, ok
}

// CurrentInvite returns the invite resolved from the path.
func CurrentInvite(c *gin.Context) (*models.Invite, bool) {
	v, exists := c.Get(constants.ContextKeyInvite)
	if !exists {
		return nil, false
	}
	invite, ok := v.(*models.Invite)
	return invite, ok
}

// ParamUser returns the user resolved from a :userId path segment, as
// distinct from the authenticated actor.
func ParamUser(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get(constants.ContextKeyParamUser)
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}

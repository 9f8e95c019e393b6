package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abdullah0f/projectEase/internal/dto"
	apierrors "github.com/Abdullah0f/projectEase/internal/errors"
	"github.com/Abdullah0f/projectEase/internal/middleware"
	"github.com/Abdullah0f/projectEase/internal/services"
)

// MemberHandler coordinates team membership handlers.
type MemberHandler struct {
	teamService *services.TeamService
	authService *services.AuthService
}

// NewMemberHandler creates a new MemberHandler.
func NewMemberHandler(teamService *services.TeamService, authService *services.AuthService) *MemberHandler {
	return &MemberHandler{
		teamService: teamService,
		authService: authService,
	}
}

// ListMembers lists the members of the team.
func (h *MemberHandler) ListMembers(c *gin.Context) {
	team, ok := middleware.CurrentTeam(c)
	if !ok {
		apierrors.InternalError(c, "")
		return
	}

	members, err := h.teamService.ListMembers(team.ID)
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"members": dto.ToTeamMemberDTOs(members),
	})
}

// AddMember adds a registered user to the team.
func (h *MemberHandler) AddMember(c *gin.Context) {
	team, ok := middleware.CurrentTeam(c)
	if !ok {
		apierrors.InternalError(c, "")
		return
	}

	type AddMemberRequest struct {
		UserID uint64 `json:"user_id" binding:"required"`
	}

	var req AddMemberRequest
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

	if err := h.teamService.AddMember(team, user); err != nil {
		if errors.Is(err, services.ErrAlreadyTeamMember) {
			apierrors.BusinessRule(c, apierrors.ErrCodeAlreadyMember, err.Error())
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTeamDTO(*team))
}

// RemoveMember removes a user from the team. The last member cannot be
// removed; delete the team instead.
func (h *MemberHandler) RemoveMember(c *gin.Context) {
	team, ok := middleware.CurrentTeam(c)
	if !ok {
		apierrors.InternalError(c, "")
		return
	}
	target, ok := middleware.ParamUser(c)
	if !ok {
		apierrors.InternalError(c, "")
		return
	}

	if err := h.teamService.RemoveMember(team, target.ID); err != nil {
		switch {
		case errors.Is(err, services.ErrNotTeamMember):
			apierrors.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrLastMemberRemoval):
			apierrors.BusinessRule(c, apierrors.ErrCodeLastMemberRemoval, err.Error())
		default:
			serverError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTeamDTO(*team))
}

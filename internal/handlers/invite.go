package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/Abdullah0f/projectEase/internal/errors"
	"github.com/Abdullah0f/projectEase/internal/middleware"
	"github.com/Abdullah0f/projectEase/internal/models"
	"github.com/Abdullah0f/projectEase/internal/services"
	"github.com/Abdullah0f/projectEase/internal/utils"
)

// InviteHandler coordinates invite lifecycle handlers.
type InviteHandler struct {
	inviteService *services.InviteService
}

// NewInviteHandler creates a new InviteHandler.
func NewInviteHandler(inviteService *services.InviteService) *InviteHandler {
	return &InviteHandler{
		inviteService: inviteService,
	}
}

// ListInvites lists outstanding invites of the team.
func (h *InviteHandler) ListInvites(c *gin.Context) {
	team, ok := middleware.CurrentTeam(c)
	if !ok {
		apierrors.InternalError(c, "")
		return
	}
	params := utils.GetPaginationParams(c)

	invites, total, err := h.inviteService.ListInvites(team.ID, params)
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"invites": invites,
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// CreateInvite invites an email into the team.
func (h *InviteHandler) CreateInvite(c *gin.Context) {
	team, ok := middleware.CurrentTeam(c)
	if !ok {
		apierrors.InternalError(c, "")
		return
	}
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Unauthenticated(c, "")
		return
	}

	type CreateInviteRequest struct {
		Email string `json:"email" binding:"required,email,min=5,max=255"`
	}

	var req CreateInviteRequest
	if !bindJSON(c, &req) {
		return
	}

	invite, err := h.inviteService.CreateInvite(team, user, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownRecipient):
			apierrors.BusinessRule(c, apierrors.ErrCodeUnknownRecipient, err.Error())
		case errors.Is(err, services.ErrRecipientIsMember):
			apierrors.BusinessRule(c, apierrors.ErrCodeAlreadyMember, err.Error())
		case errors.Is(err, services.ErrAlreadyInvited):
			apierrors.BusinessRule(c, apierrors.ErrCodeAlreadyInvited, err.Error())
		default:
			serverError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, invite)
}

// GetInvite returns the invite resolved from the path.
func (h *InviteHandler) GetInvite(c *gin.Context) {
	invite, ok := middleware.CurrentInvite(c)
	if !ok {
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, invite)
}

// TransitionInvite applies Accepted, Declined or Cancelled.
func (h *InviteHandler) TransitionInvite(c *gin.Context) {
	invite, ok := middleware.CurrentInvite(c)
	if !ok {
		apierrors.InternalError(c, "")
		return
	}
	team, ok := middleware.CurrentTeam(c)
	if !ok {
		apierrors.InternalError(c, "")
		return
	}
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Unauthenticated(c, "")
		return
	}

	type TransitionRequest struct {
		Status models.InviteStatus `json:"status" binding:"required"`
	}

	var req TransitionRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.inviteService.Transition(invite, team, user, req.Status); err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownInviteStatus):
			apierrors.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrNotInviteRecipient),
			errors.Is(err, services.ErrNotTeamMember):
			apierrors.Forbidden(c, err.Error())
		case errors.Is(err, services.ErrInvalidTransition):
			apierrors.BusinessRule(c, apierrors.ErrCodeInvalidTransition, err.Error())
		default:
			serverError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, invite)
}

// DeleteInvite cancels the invite.
func (h *InviteHandler) DeleteInvite(c *gin.Context) {
	invite, ok := middleware.CurrentInvite(c)
	if !ok {
		apierrors.InternalError(c, "")
		return
	}

	if err := h.inviteService.Cancel(invite); err != nil {
		if errors.Is(err, services.ErrInvalidTransition) {
			apierrors.BusinessRule(c, apierrors.ErrCodeInvalidTransition, err.Error())
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, invite)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abdullah0f/projectEase/internal/dto"
	apierrors "github.com/Abdullah0f/projectEase/internal/errors"
	"github.com/Abdullah0f/projectEase/internal/middleware"
	"github.com/Abdullah0f/projectEase/internal/services"
	"github.com/Abdullah0f/projectEase/internal/utils"
)

// TeamHandler coordinates team CRUD handlers.
type TeamHandler struct {
	teamService *services.TeamService
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(teamService *services.TeamService) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// ListTeams returns the caller's teams.
func (h *TeamHandler) ListTeams(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Unauthenticated(c, "")
		return
	}
	params := utils.GetPaginationParams(c)

	teams, total, err := h.teamService.ListTeamsForUser(user.ID, params)
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"teams": dto.ToTeamDTOs(teams),
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// CreateTeam creates a team with the caller as owner and sole member.
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Unauthenticated(c, "")
		return
	}

	type CreateTeamRequest struct {
		Name        string `json:"name" binding:"required,min=3,max=50"`
		Description string `json:"description" binding:"required,min=3,max=1024"`
	}

	var req CreateTeamRequest
	if !bindJSON(c, &req) {
		return
	}

	team, err := h.teamService.CreateTeam(services.CreateTeamInput{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     user.ID,
	})
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTeamDTO(*team))
}

// GetTeam returns the team resolved from the path.
func (h *TeamHandler) GetTeam(c *gin.Context) {
	team, ok := middleware.CurrentTeam(c)
	if !ok {
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, dto.ToTeamDTO(*team))
}

// UpdateTeam updates team name and description.
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	team, ok := middleware.CurrentTeam(c)
	if !ok {
		apierrors.InternalError(c, "")
		return
	}

	type UpdateTeamRequest struct {
		Name        *string `json:"name" binding:"omitempty,min=3,max=50"`
		Description *string `json:"description" binding:"omitempty,min=3,max=1024"`
	}

	var req UpdateTeamRequest
	if !bindJSON(c, &req) {
		return
	}

	updated, err := h.teamService.UpdateTeam(team, services.UpdateTeamInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTeamDTO(*updated))
}

// DeleteTeam soft deletes the team.
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	team, ok := middleware.CurrentTeam(c)
	if !ok {
		apierrors.InternalError(c, "")
		return
	}

	if err := h.teamService.DeleteTeam(team); err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTeamDTO(*team))
}

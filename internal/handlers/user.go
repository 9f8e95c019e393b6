package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Abdullah0f/projectEase/internal/auth"
	"github.com/Abdullah0f/projectEase/internal/constants"
	"github.com/Abdullah0f/projectEase/internal/dto"
	apierrors "github.com/Abdullah0f/projectEase/internal/errors"
	"github.com/Abdullah0f/projectEase/internal/middleware"
	"github.com/Abdullah0f/projectEase/internal/services"
	"github.com/Abdullah0f/projectEase/internal/utils"
)

// UserHandler coordinates user registration and profile handlers.
type UserHandler struct {
	authService *services.AuthService
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(authService *services.AuthService, userService *services.UserService) *UserHandler {
	return &UserHandler{
		authService: authService,
		userService: userService,
	}
}

// Register creates a new user and returns a token in the x-auth-token
// response header.
func (h *UserHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		Username string     `json:"username" binding:"required,min=3,max=50"`
		Email    string     `json:"email" binding:"required,email,min=5,max=255"`
		Name     string     `json:"name" binding:"omitempty,min=3,max=50"`
		Password string     `json:"password" binding:"required,min=5,max=255"`
		DOB      *time.Time `json:"dob"`
	}

	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.authService.Register(services.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		DOB:      req.DOB,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameTaken),
			errors.Is(err, services.ErrEmailTaken):
			apierrors.BadRequest(c, err.Error())
		default:
			serverError(c, err)
		}
		return
	}

	token, err := auth.Sign(user.ID, user.Username)
	if err != nil {
		serverError(c, err)
		return
	}

	c.Header(constants.AuthTokenHeader, token)
	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// ListUsers returns non-deleted users.
func (h *UserHandler) ListUsers(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	users, total, err := h.userService.ListUsers(params)
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users": dto.ToUserDTOs(users),
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// GetUser returns the user resolved from the path.
func (h *UserHandler) GetUser(c *gin.Context) {
	user, ok := middleware.ParamUser(c)
	if !ok {
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// UpdateUser updates the caller's own profile.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	user, ok := middleware.ParamUser(c)
	if !ok {
		apierrors.InternalError(c, "")
		return
	}

	type UpdateUserRequest struct {
		Username *string    `json:"username" binding:"omitempty,min=3,max=50"`
		Email    *string    `json:"email" binding:"omitempty,email,min=5,max=255"`
		Name     *string    `json:"name" binding:"omitempty,min=3,max=50"`
		DOB      *time.Time `json:"dob"`
	}

	var req UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	updated, err := h.userService.UpdateUser(user, services.UpdateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Name:     req.Name,
		DOB:      req.DOB,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameTaken),
			errors.Is(err, services.ErrEmailTaken):
			apierrors.BadRequest(c, err.Error())
		default:
			serverError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*updated))
}

// DeleteUser soft deletes the caller's own account and re-homes their
// teams.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	user, ok := middleware.ParamUser(c)
	if !ok {
		apierrors.InternalError(c, "")
		return
	}

	if err := h.userService.DeleteUser(user); err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

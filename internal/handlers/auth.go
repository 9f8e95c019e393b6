package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abdullah0f/projectEase/internal/auth"
	"github.com/Abdullah0f/projectEase/internal/constants"
	"github.com/Abdullah0f/projectEase/internal/dto"
	apierrors "github.com/Abdullah0f/projectEase/internal/errors"
	"github.com/Abdullah0f/projectEase/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login authenticates a user and returns a token in the x-auth-token
// response header.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Username string `json:"username" binding:"omitempty,min=3,max=50"`
		Email    string `json:"email" binding:"omitempty,email,min=5,max=255"`
		Password string `json:"password" binding:"required,min=5,max=255"`
	}

	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Username == "" && req.Email == "" {
		apierrors.BadRequest(c, "username or email is required")
		return
	}

	user, err := h.authService.Login(services.LoginInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			apierrors.InvalidCredential(c, err.Error())
			return
		}
		serverError(c, err)
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

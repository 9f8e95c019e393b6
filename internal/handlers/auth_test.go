package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Abdullah0f/projectEase/internal/auth"
	"github.com/Abdullah0f/projectEase/internal/constants"
	"github.com/Abdullah0f/projectEase/internal/database"
	"github.com/Abdullah0f/projectEase/internal/dto"
	apierrors "github.com/Abdullah0f/projectEase/internal/errors"
	"github.com/Abdullah0f/projectEase/internal/models"
	"github.com/Abdullah0f/projectEase/internal/repository"
	"github.com/Abdullah0f/projectEase/internal/services"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	auth.InitSecret("handler-test-secret")
	os.Exit(m.Run())
}

type authTestEnv struct {
	db          *gorm.DB
	router      *gin.Engine
	authService *services.AuthService
}

func setupAuthTestEnv(t *testing.T) authTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}))
	database.SetDB(db)

	userRepo := repository.NewUserRepository(db)
	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo)

	authHandler := NewAuthHandler(authService)
	userHandler := NewUserHandler(authService, userService)

	r := gin.New()
	r.POST("/api/auth", authHandler.Login)
	r.POST("/api/users", userHandler.Register)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return authTestEnv{
		db:          db,
		router:      r,
		authService: authService,
	}
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterValidation(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := postJSON(t, env.router, "/api/users", map[string]string{
		"username": "ab",
		"email":    "not-an-email",
		"password": "pw",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var apiErr apierrors.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	require.Equal(t, apierrors.ErrCodeValidation, apiErr.Code)
	require.NotEmpty(t, apiErr.Details)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	env := setupAuthTestEnv(t)

	payload := map[string]string{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "supersecret",
	}
	w := postJSON(t, env.router, "/api/users", payload)
	require.Equal(t, http.StatusOK, w.Code)

	payload["email"] = "alice2@example.com"
	w = postJSON(t, env.router, "/api/users", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginWithUsername(t *testing.T) {
	env := setupAuthTestEnv(t)

	_, err := env.authService.Register(services.RegisterInput{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	w := postJSON(t, env.router, "/api/auth", map[string]string{
		"username": "bob",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, w.Header().Get(constants.AuthTokenHeader))

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "bob", response.Username)
}

func TestLoginRequiresUsernameOrEmail(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := postJSON(t, env.router, "/api/auth", map[string]string{
		"password": "supersecret",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

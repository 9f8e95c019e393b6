package router

import (
	"bytes"
	"encoding/json"
	"fmt"
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
	"github.com/Abdullah0f/projectEase/internal/handlers"
	"github.com/Abdullah0f/projectEase/internal/models"
	"github.com/Abdullah0f/projectEase/internal/repository"
	"github.com/Abdullah0f/projectEase/internal/services"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	auth.InitSecret("router-test-secret")
	os.Exit(m.Run())
}

type apiTestEnv struct {
	db          *gorm.DB
	router      *gin.Engine
	authService *services.AuthService
	teamService *services.TeamService
}

func setupAPITestEnv(t *testing.T) *apiTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	database.SetDB(db)
	require.NoError(t, database.Migrate())

	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	inviteRepo := repository.NewInviteRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo)
	teamService := services.NewTeamService(teamRepo, userRepo)
	inviteService := services.NewInviteService(inviteRepo, userRepo)
	projectService := services.NewProjectService(projectRepo)
	taskService := services.NewTaskService(taskRepo)
	commentService := services.NewCommentService(commentRepo)

	r := New(Handlers{
		Auth:    handlers.NewAuthHandler(authService),
		User:    handlers.NewUserHandler(authService, userService),
		Team:    handlers.NewTeamHandler(teamService),
		Member:  handlers.NewMemberHandler(teamService, authService),
		Invite:  handlers.NewInviteHandler(inviteService),
		Project: handlers.NewProjectHandler(projectService),
		Task:    handlers.NewTaskHandler(taskService, authService),
		Comment: handlers.NewCommentHandler(commentService),
	})

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return &apiTestEnv{
		db:          db,
		router:      r,
		authService: authService,
		teamService: teamService,
	}
}

// registerUser creates a user straight through the service layer and
// returns it alongside a valid token.
func (e *apiTestEnv) registerUser(t *testing.T, username, email string) (*models.User, string) {
	t.Helper()

	user, err := e.authService.Register(services.RegisterInput{
		Username: username,
		Email:    email,
		Password: "supersecret",
	})
	require.NoError(t, err)

	token, err := auth.Sign(user.ID, user.Username)
	require.NoError(t, err)
	return user, token
}

func (e *apiTestEnv) createTeam(t *testing.T, owner *models.User) *models.Team {
	t.Helper()

	team, err := e.teamService.CreateTeam(services.CreateTeamInput{
		Name:        "Test Team",
		Description: "A team for exercising the API",
		OwnerID:     owner.ID,
	})
	require.NoError(t, err)
	return team
}

func (e *apiTestEnv) do(t *testing.T, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(constants.AuthTokenHeader, token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) apierrors.APIError {
	t.Helper()

	var apiErr apierrors.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	return apiErr
}

func TestRegisterAndLogin(t *testing.T) {
	env := setupAPITestEnv(t)

	w := env.do(t, http.MethodPost, "/api/users", "", gin.H{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, w.Header().Get(constants.AuthTokenHeader))

	var created dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Equal(t, "alice", created.Username)

	w = env.do(t, http.MethodPost, "/api/auth", "", gin.H{
		"email":    "alice@example.com",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, w.Header().Get(constants.AuthTokenHeader))

	w = env.do(t, http.MethodPost, "/api/auth", "", gin.H{
		"email":    "alice@example.com",
		"password": "wrong-password",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, apierrors.ErrCodeInvalidCredential, decodeError(t, w).Code)
}

func TestAuthGuard(t *testing.T) {
	env := setupAPITestEnv(t)

	w := env.do(t, http.MethodGet, "/api/teams", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, apierrors.ErrCodeUnauthenticated, decodeError(t, w).Code)

	w = env.do(t, http.MethodGet, "/api/teams", "not-a-token", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, apierrors.ErrCodeInvalidCredential, decodeError(t, w).Code)
}

func TestCreateTeamOwnerIsSoleMember(t *testing.T) {
	env := setupAPITestEnv(t)
	owner, token := env.registerUser(t, "owner", "owner@example.com")

	w := env.do(t, http.MethodPost, "/api/teams", token, gin.H{
		"name":        "Platform",
		"description": "Platform engineering",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var team dto.TeamDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &team))
	require.Equal(t, owner.ID, team.OwnerID)
	require.Equal(t, []uint64{owner.ID}, team.Members)
}

func TestTeamGuardChain(t *testing.T) {
	env := setupAPITestEnv(t)
	owner, ownerToken := env.registerUser(t, "owner", "owner@example.com")
	_, strangerToken := env.registerUser(t, "stranger", "stranger@example.com")
	team := env.createTeam(t, owner)

	// Malformed id fails before any lookup.
	w := env.do(t, http.MethodGet, "/api/teams/abc", ownerToken, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, apierrors.ErrCodeMalformedID, decodeError(t, w).Code)

	w = env.do(t, http.MethodGet, "/api/teams/9999", ownerToken, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, apierrors.ErrCodeNotFound, decodeError(t, w).Code)

	// Reads are open to any authenticated user, writes are not.
	w = env.do(t, http.MethodGet, fmt.Sprintf("/api/teams/%d", team.ID), strangerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPut, fmt.Sprintf("/api/teams/%d", team.ID), strangerToken, gin.H{
		"name": "Hijacked",
	})
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Equal(t, apierrors.ErrCodeForbidden, decodeError(t, w).Code)

	// A deleted team is reported as such, not as missing.
	w = env.do(t, http.MethodDelete, fmt.Sprintf("/api/teams/%d", team.ID), ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, fmt.Sprintf("/api/teams/%d", team.ID), ownerToken, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, apierrors.ErrCodeAlreadyDeleted, decodeError(t, w).Code)
}

func TestInviteAcceptJoinsRecipient(t *testing.T) {
	env := setupAPITestEnv(t)
	owner, ownerToken := env.registerUser(t, "owner", "owner@example.com")
	recipient, recipientToken := env.registerUser(t, "bob", "bob@example.com")
	team := env.createTeam(t, owner)

	w := env.do(t, http.MethodPost, fmt.Sprintf("/api/teams/%d/invites", team.ID), ownerToken, gin.H{
		"email": "bob@example.com",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var invite models.Invite
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &invite))
	require.Equal(t, models.InviteStatusPending, invite.Status)

	// The recipient is not a member yet but may still accept.
	w = env.do(t, http.MethodPost, fmt.Sprintf("/api/teams/%d/invites/%d", team.ID, invite.ID), recipientToken, gin.H{
		"status": models.InviteStatusAccepted,
	})
	require.Equal(t, http.StatusOK, w.Code)

	members, err := env.teamService.ListMembers(team.ID)
	require.NoError(t, err)
	require.Len(t, members, 2)

	var member models.TeamMember
	require.NoError(t, env.db.Where("team_id = ? AND user_id = ?", team.ID, recipient.ID).First(&member).Error)

	// Terminal invites admit no further transitions.
	w = env.do(t, http.MethodPost, fmt.Sprintf("/api/teams/%d/invites/%d", team.ID, invite.ID), recipientToken, gin.H{
		"status": models.InviteStatusAccepted,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, apierrors.ErrCodeInvalidTransition, decodeError(t, w).Code)
}

func TestInviteAcceptAfterDirectMemberAdd(t *testing.T) {
	env := setupAPITestEnv(t)
	owner, ownerToken := env.registerUser(t, "owner", "owner@example.com")
	bob, bobToken := env.registerUser(t, "bob", "bob@example.com")
	team := env.createTeam(t, owner)

	w := env.do(t, http.MethodPost, fmt.Sprintf("/api/teams/%d/invites", team.ID), ownerToken, gin.H{
		"email": "bob@example.com",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var invite models.Invite
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &invite))

	// Bob joins through the members route while the invite is pending.
	w = env.do(t, http.MethodPost, fmt.Sprintf("/api/teams/%d/members", team.ID), ownerToken, gin.H{
		"user_id": bob.ID,
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Accepting still works and retires the invite without touching the
	// existing membership.
	w = env.do(t, http.MethodPost, fmt.Sprintf("/api/teams/%d/invites/%d", team.ID, invite.ID), bobToken, gin.H{
		"status": models.InviteStatusAccepted,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var reloaded models.Invite
	require.NoError(t, env.db.First(&reloaded, invite.ID).Error)
	require.Equal(t, models.InviteStatusAccepted, reloaded.Status)
	require.True(t, reloaded.IsDeleted)

	members, err := env.teamService.ListMembers(team.ID)
	require.NoError(t, err)
	require.Len(t, members, 2)

	w = env.do(t, http.MethodPost, fmt.Sprintf("/api/teams/%d/invites/%d", team.ID, invite.ID), bobToken, gin.H{
		"status": models.InviteStatusAccepted,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, apierrors.ErrCodeInvalidTransition, decodeError(t, w).Code)
}

func TestInvitePreconditions(t *testing.T) {
	env := setupAPITestEnv(t)
	owner, ownerToken := env.registerUser(t, "owner", "owner@example.com")
	_, _ = env.registerUser(t, "bob", "bob@example.com")
	team := env.createTeam(t, owner)

	invitesPath := fmt.Sprintf("/api/teams/%d/invites", team.ID)

	w := env.do(t, http.MethodPost, invitesPath, ownerToken, gin.H{
		"email": "nobody@example.com",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, apierrors.ErrCodeUnknownRecipient, decodeError(t, w).Code)

	w = env.do(t, http.MethodPost, invitesPath, ownerToken, gin.H{
		"email": "owner@example.com",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, apierrors.ErrCodeAlreadyMember, decodeError(t, w).Code)

	w = env.do(t, http.MethodPost, invitesPath, ownerToken, gin.H{
		"email": "bob@example.com",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPost, invitesPath, ownerToken, gin.H{
		"email": "bob@example.com",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, apierrors.ErrCodeAlreadyInvited, decodeError(t, w).Code)
}

func TestInviteTransitionPermissions(t *testing.T) {
	env := setupAPITestEnv(t)
	owner, ownerToken := env.registerUser(t, "owner", "owner@example.com")
	_, recipientToken := env.registerUser(t, "bob", "bob@example.com")
	_, strangerToken := env.registerUser(t, "mallory", "mallory@example.com")
	team := env.createTeam(t, owner)

	w := env.do(t, http.MethodPost, fmt.Sprintf("/api/teams/%d/invites", team.ID), ownerToken, gin.H{
		"email": "bob@example.com",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var invite models.Invite
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &invite))

	transitionPath := fmt.Sprintf("/api/teams/%d/invites/%d", team.ID, invite.ID)

	// Only the invited user may accept or decline.
	w = env.do(t, http.MethodPost, transitionPath, strangerToken, gin.H{
		"status": models.InviteStatusAccepted,
	})
	require.Equal(t, http.StatusForbidden, w.Code)

	// Only members may cancel.
	w = env.do(t, http.MethodPost, transitionPath, strangerToken, gin.H{
		"status": models.InviteStatusCancelled,
	})
	require.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodPost, transitionPath, recipientToken, gin.H{
		"status": "Bogus",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, apierrors.ErrCodeValidation, decodeError(t, w).Code)

	w = env.do(t, http.MethodPost, transitionPath, recipientToken, gin.H{
		"status": models.InviteStatusDeclined,
	})
	require.Equal(t, http.StatusOK, w.Code)

	members, err := env.teamService.ListMembers(team.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
}

func TestMemberRoutes(t *testing.T) {
	env := setupAPITestEnv(t)
	owner, ownerToken := env.registerUser(t, "owner", "owner@example.com")
	bob, _ := env.registerUser(t, "bob", "bob@example.com")
	team := env.createTeam(t, owner)

	membersPath := fmt.Sprintf("/api/teams/%d/members", team.ID)

	// Removing the only member is refused; delete the team instead.
	w := env.do(t, http.MethodDelete, fmt.Sprintf("%s/%d", membersPath, owner.ID), ownerToken, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, apierrors.ErrCodeLastMemberRemoval, decodeError(t, w).Code)

	w = env.do(t, http.MethodPost, membersPath, ownerToken, gin.H{"user_id": bob.ID})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPost, membersPath, ownerToken, gin.H{"user_id": bob.ID})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, apierrors.ErrCodeAlreadyMember, decodeError(t, w).Code)

	// Removing the owner promotes the remaining member.
	w = env.do(t, http.MethodDelete, fmt.Sprintf("%s/%d", membersPath, owner.ID), ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var reloaded models.Team
	require.NoError(t, env.db.First(&reloaded, team.ID).Error)
	require.Equal(t, bob.ID, reloaded.OwnerID)

	members, err := env.teamService.ListMembers(team.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	require.Equal(t, bob.ID, members[0].UserID)
}

func TestProjectRequiresMembership(t *testing.T) {
	env := setupAPITestEnv(t)
	owner, ownerToken := env.registerUser(t, "owner", "owner@example.com")
	_, strangerToken := env.registerUser(t, "stranger", "stranger@example.com")
	team := env.createTeam(t, owner)

	projectsPath := fmt.Sprintf("/api/teams/%d/projects", team.ID)

	w := env.do(t, http.MethodPost, projectsPath, strangerToken, gin.H{
		"name":        "Skunkworks",
		"description": "Not for outsiders",
	})
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Equal(t, apierrors.ErrCodeForbidden, decodeError(t, w).Code)

	w = env.do(t, http.MethodPost, projectsPath, ownerToken, gin.H{
		"name":        "Skunkworks",
		"description": "Approved work",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var project models.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &project))
	require.Equal(t, models.ProjectStatusNotStarted, project.Status)
	require.Equal(t, team.ID, project.TeamID)

	// Listing an empty collection is 200 with an empty list, never 404.
	w = env.do(t, http.MethodGet, projectsPath+"?page=5", ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listing struct {
		Projects []models.Project `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	require.Empty(t, listing.Projects)
}

func TestTaskWrongParent(t *testing.T) {
	env := setupAPITestEnv(t)
	owner, token := env.registerUser(t, "owner", "owner@example.com")
	team := env.createTeam(t, owner)

	var projectA, projectB models.Project
	for i, target := range []*models.Project{&projectA, &projectB} {
		w := env.do(t, http.MethodPost, fmt.Sprintf("/api/teams/%d/projects", team.ID), token, gin.H{
			"name":        fmt.Sprintf("Project %d", i),
			"description": "One of two sibling projects",
		})
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), target))
	}

	w := env.do(t, http.MethodPost, fmt.Sprintf("/api/teams/%d/projects/%d/tasks", team.ID, projectA.ID), token, gin.H{
		"name":        "Ship it",
		"description": "First task of project A",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var task models.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))
	require.Equal(t, models.TaskStatusTodo, task.Status)

	// The creator becomes the first admin.
	require.True(t, task.IsAdmin(owner.ID))

	// The same task under the sibling project is a path mismatch.
	w = env.do(t, http.MethodGet, fmt.Sprintf("/api/teams/%d/projects/%d/tasks/%d", team.ID, projectB.ID, task.ID), token, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, apierrors.ErrCodeWrongParent, decodeError(t, w).Code)

	w = env.do(t, http.MethodGet, fmt.Sprintf("/api/teams/%d/projects/%d/tasks/%d", team.ID, projectA.ID, task.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestTaskAdminGuard(t *testing.T) {
	env := setupAPITestEnv(t)
	owner, ownerToken := env.registerUser(t, "owner", "owner@example.com")
	bob, bobToken := env.registerUser(t, "bob", "bob@example.com")
	team := env.createTeam(t, owner)

	require.NoError(t, env.teamService.AddMember(team, bob))

	w := env.do(t, http.MethodPost, fmt.Sprintf("/api/teams/%d/projects", team.ID), ownerToken, gin.H{
		"name":        "Core",
		"description": "Core project",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var project models.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &project))

	w = env.do(t, http.MethodPost, fmt.Sprintf("/api/teams/%d/projects/%d/tasks", team.ID, project.ID), ownerToken, gin.H{
		"name":        "Guarded task",
		"description": "Only admins may write",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var task models.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))

	taskPath := fmt.Sprintf("/api/teams/%d/projects/%d/tasks/%d", team.ID, project.ID, task.ID)

	// A member who is not a task admin may read but not write.
	w = env.do(t, http.MethodGet, taskPath, bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPut, taskPath, bobToken, gin.H{"name": "Renamed"})
	require.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodPost, taskPath+"/admins", ownerToken, gin.H{"user_id": bob.ID})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPut, taskPath, bobToken, gin.H{"name": "Renamed"})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodDelete, fmt.Sprintf("%s/admins/%d", taskPath, bob.ID), ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPut, taskPath, bobToken, gin.H{"name": "Renamed again"})
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestComments(t *testing.T) {
	env := setupAPITestEnv(t)
	owner, token := env.registerUser(t, "owner", "owner@example.com")
	team := env.createTeam(t, owner)

	w := env.do(t, http.MethodPost, fmt.Sprintf("/api/teams/%d/projects", team.ID), token, gin.H{
		"name":        "Commented",
		"description": "Project with comments",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var project models.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &project))

	w = env.do(t, http.MethodPost, fmt.Sprintf("/api/teams/%d/projects/%d/tasks", team.ID, project.ID), token, gin.H{
		"name":        "Commented task",
		"description": "Task with comments",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var task models.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))

	projectComments := fmt.Sprintf("/api/teams/%d/projects/%d/comments", team.ID, project.ID)
	taskComments := fmt.Sprintf("/api/teams/%d/projects/%d/tasks/%d/comments", team.ID, project.ID, task.ID)

	// Empty text is rejected by validation; a single character is the
	// shortest accepted comment.
	w = env.do(t, http.MethodPost, projectComments, token, gin.H{"text": ""})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, apierrors.ErrCodeValidation, decodeError(t, w).Code)

	w = env.do(t, http.MethodPost, projectComments, token, gin.H{"text": "x"})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPost, projectComments, token, gin.H{"text": "On the project"})
	require.Equal(t, http.StatusOK, w.Code)
	var projectComment models.Comment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &projectComment))
	require.NotNil(t, projectComment.ProjectID)
	require.Nil(t, projectComment.TaskID)

	w = env.do(t, http.MethodPost, taskComments, token, gin.H{"text": "On the task"})
	require.Equal(t, http.StatusOK, w.Code)
	var taskComment models.Comment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &taskComment))
	require.NotNil(t, taskComment.TaskID)
	require.Nil(t, taskComment.ProjectID)

	// A project comment fetched under a task path is a parent mismatch.
	w = env.do(t, http.MethodGet, fmt.Sprintf("%s/%d", taskComments, projectComment.ID), token, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, apierrors.ErrCodeWrongParent, decodeError(t, w).Code)

	w = env.do(t, http.MethodGet, fmt.Sprintf("%s/%d", projectComments, projectComment.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteUserReassignsTeams(t *testing.T) {
	env := setupAPITestEnv(t)
	owner, ownerToken := env.registerUser(t, "owner", "owner@example.com")
	bob, bobToken := env.registerUser(t, "bob", "bob@example.com")
	team := env.createTeam(t, owner)
	require.NoError(t, env.teamService.AddMember(team, bob))

	// Only the account holder may delete it.
	w := env.do(t, http.MethodDelete, fmt.Sprintf("/api/users/%d", owner.ID), bobToken, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodDelete, fmt.Sprintf("/api/users/%d", owner.ID), ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var reloaded models.Team
	require.NoError(t, env.db.First(&reloaded, team.ID).Error)
	require.False(t, reloaded.IsDeleted)
	require.Equal(t, bob.ID, reloaded.OwnerID)

	// A deleted account no longer authenticates.
	w = env.do(t, http.MethodGet, "/api/teams", ownerToken, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodPost, "/api/auth", "", gin.H{
		"email":    "owner@example.com",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

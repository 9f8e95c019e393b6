package constants

// Context keys for values the guard chain resolves per request.
const (
	ContextKeyUser      = "current_user"
	ContextKeyTeam      = "team"
	ContextKeyProject   = "project"
	ContextKeyTask      = "task"
	ContextKeyComment   = "comment"
	ContextKeyInvite    = "invite"
	ContextKeyParamUser = "param_user"
)

// AuthTokenHeader carries the bearer credential on requests and is set
// on login/registration responses.
const AuthTokenHeader = "x-auth-token"

// Pagination bounds.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

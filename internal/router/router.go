package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abdullah0f/projectEase/internal/handlers"
	"github.com/Abdullah0f/projectEase/internal/middleware"
)

// Handlers bundles everything the router wires up.
type Handlers struct {
	Auth    *handlers.AuthHandler
	User    *handlers.UserHandler
	Team    *handlers.TeamHandler
	Member  *handlers.MemberHandler
	Invite  *handlers.InviteHandler
	Project *handlers.ProjectHandler
	Task    *handlers.TaskHandler
	Comment *handlers.CommentHandler
}

// New builds the gin engine with the full route table and guard chain.
func New(h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "ProjectEase API is running",
		})
	})

	api := r.Group("/api")
	{
		api.POST("/auth", h.Auth.Login)

		users := api.Group("/users")
		{
			users.POST("", h.User.Register)
			users.GET("", h.User.ListUsers)
			users.GET("/:userId", middleware.ResolveUser(), h.User.GetUser)
			users.PUT("/:userId", middleware.RequireAuth(), middleware.ResolveUser(), middleware.RequireSelf(), h.User.UpdateUser)
			users.DELETE("/:userId", middleware.RequireAuth(), middleware.ResolveUser(), middleware.RequireSelf(), h.User.DeleteUser)
		}

		teams := api.Group("/teams")
		teams.Use(middleware.RequireAuth())
		{
			teams.GET("", h.Team.ListTeams)
			teams.POST("", h.Team.CreateTeam)

			team := teams.Group("/:teamId")
			team.Use(middleware.ResolveTeam())
			{
				team.GET("", h.Team.GetTeam)
				team.PUT("", middleware.RequireTeamMember(), h.Team.UpdateTeam)
				team.DELETE("", middleware.RequireTeamMember(), h.Team.DeleteTeam)

				members := team.Group("/members")
				{
					members.GET("", h.Member.ListMembers)
					members.POST("", middleware.RequireTeamMember(), h.Member.AddMember)
					members.DELETE("/:userId", middleware.RequireTeamMember(), middleware.ResolveUser(), h.Member.RemoveMember)
				}

				invites := team.Group("/invites")
				{
					invites.GET("", middleware.RequireTeamMember(), h.Invite.ListInvites)
					invites.POST("", middleware.RequireTeamMember(), h.Invite.CreateInvite)
					invites.GET("/:inviteId", middleware.RequireTeamMember(), middleware.ResolveInvite(), h.Invite.GetInvite)
					// The recipient is not a member yet, so transitions
					// skip the membership guard; the service decides per
					// status who may act.
					invites.POST("/:inviteId", middleware.ResolveInvite(), h.Invite.TransitionInvite)
					invites.DELETE("/:inviteId", middleware.RequireTeamMember(), middleware.ResolveInvite(), h.Invite.DeleteInvite)
				}

				projects := team.Group("/projects")
				projects.Use(middleware.RequireTeamMember())
				{
					projects.GET("", h.Project.ListProjects)
					projects.POST("", h.Project.CreateProject)

					project := projects.Group("/:projectId")
					project.Use(middleware.ResolveProject())
					{
						project.GET("", h.Project.GetProject)
						project.PUT("", h.Project.UpdateProject)
						project.DELETE("", h.Project.DeleteProject)

						projectComments := project.Group("/comments")
						{
							projectComments.GET("", h.Comment.ListComments)
							projectComments.POST("", h.Comment.CreateComment)
							projectComments.GET("/:commentId", middleware.ResolveComment(), h.Comment.GetComment)
							projectComments.PUT("/:commentId", middleware.ResolveComment(), h.Comment.UpdateComment)
							projectComments.DELETE("/:commentId", middleware.ResolveComment(), h.Comment.DeleteComment)
						}

						tasks := project.Group("/tasks")
						{
							tasks.GET("", h.Task.ListTasks)
							tasks.POST("", h.Task.CreateTask)

							task := tasks.Group("/:taskId")
							task.Use(middleware.ResolveTask())
							{
								task.GET("", h.Task.GetTask)
								task.PUT("", middleware.RequireTaskAdmin(), h.Task.UpdateTask)
								task.DELETE("", middleware.RequireTaskAdmin(), h.Task.DeleteTask)

								task.POST("/admins", middleware.RequireTaskAdmin(), h.Task.AddAdmin)
								task.DELETE("/admins/:userId", middleware.RequireTaskAdmin(), middleware.ResolveUser(), h.Task.RemoveAdmin)

								taskComments := task.Group("/comments")
								{
									taskComments.GET("", h.Comment.ListComments)
									taskComments.POST("", h.Comment.CreateComment)
									taskComments.GET("/:commentId", middleware.ResolveComment(), h.Comment.GetComment)
									taskComments.PUT("/:commentId", middleware.ResolveComment(), h.Comment.UpdateComment)
									taskComments.DELETE("/:commentId", middleware.ResolveComment(), h.Comment.DeleteComment)
								}
							}
						}
					}
				}
			}
		}
	}

	return r
}

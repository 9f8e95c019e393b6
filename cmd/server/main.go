package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Abdullah0f/projectEase/internal/auth"
	"github.com/Abdullah0f/projectEase/internal/config"
	"github.com/Abdullah0f/projectEase/internal/database"
	"github.com/Abdullah0f/projectEase/internal/handlers"
	"github.com/Abdullah0f/projectEase/internal/logger"
	"github.com/Abdullah0f/projectEase/internal/repository"
	"github.com/Abdullah0f/projectEase/internal/router"
	"github.com/Abdullah0f/projectEase/internal/services"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	log, err := logger.Init(cfg.GinMode)
	if err != nil {
		os.Exit(1)
	}
	defer log.Sync()

	auth.InitSecret(cfg.JWTSecret)

	if err := database.Connect(cfg); err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	if err := database.Migrate(); err != nil {
		log.Fatal("database migration failed", zap.Error(err))
	}

	db := database.GetDB()

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

	engine := router.New(router.Handlers{
		Auth:    handlers.NewAuthHandler(authService),
		User:    handlers.NewUserHandler(authService, userService),
		Team:    handlers.NewTeamHandler(teamService),
		Member:  handlers.NewMemberHandler(teamService, authService),
		Invite:  handlers.NewInviteHandler(inviteService),
		Project: handlers.NewProjectHandler(projectService),
		Task:    handlers.NewTaskHandler(taskService, authService),
		Comment: handlers.NewCommentHandler(commentService),
	})

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: engine,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("server listening", zap.String("addr", cfg.ListenAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	stop()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}
	log.Info("server stopped")
}

package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Abdullah0f/projectEase/internal/models"
	"github.com/Abdullah0f/projectEase/internal/repository"
	"github.com/Abdullah0f/projectEase/internal/utils"
)

var (
	ErrInvalidTaskStatus   = errors.New("invalid task status")
	ErrInvalidTaskPriority = errors.New("priority must be 0, 1 or 2")
	ErrAlreadyTaskAdmin    = errors.New("user is already an admin of this task")
	ErrNotTaskAdmin        = errors.New("user is not an admin of this task")
)

// TaskService provides business logic for task operations.
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
	}
}

// ListTasks returns the non-deleted tasks of a project.
func (s *TaskService) ListTasks(projectID uint64, params utils.PaginationParams) ([]models.Task, int64, error) {
	tasks, total, err := s.taskRepo.ListByProject(projectID, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, total, nil
}

// CreateTaskInput represents parameters to create a new task.
type CreateTaskInput struct {
	Name        string
	Description string
	Status      models.TaskStatus
	Priority    *int
	DueDate     *time.Time
}

// CreateTask creates a task under the project. The creator becomes the
// first admin. The project reference is fixed at creation.
func (s *TaskService) CreateTask(project *models.Project, createdBy *models.User, input CreateTaskInput) (*models.Task, error) {
	status := input.Status
	if status == "" {
		status = models.TaskStatusTodo
	}
	if !models.ValidTaskStatus(status) {
		return nil, ErrInvalidTaskStatus
	}

	priority := models.TaskPriorityLow
	if input.Priority != nil {
		priority = *input.Priority
	}
	if priority < models.TaskPriorityLow || priority > models.TaskPriorityHigh {
		return nil, ErrInvalidTaskPriority
	}

	task := &models.Task{
		Name:        input.Name,
		Description: input.Description,
		ProjectID:   project.ID,
		CreatedByID: createdBy.ID,
		Status:      status,
		Priority:    priority,
		DueDate:     input.DueDate,
	}
	admin := &models.TaskAdmin{
		UserID: createdBy.ID,
	}
	if err := s.taskRepo.Create(task, admin); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	task.Admins = []models.TaskAdmin{*admin}
	return task, nil
}

// UpdateTaskInput lists every mutable task field. The owning project is
// immutable and deliberately absent.
type UpdateTaskInput struct {
	Name        *string
	Description *string
	Status      *models.TaskStatus
	Priority    *int
	DueDate     *time.Time
}

// UpdateTask merges the update into the task and persists it. Admin
// rights are checked by the guard chain before this runs.
func (s *TaskService) UpdateTask(task *models.Task, input UpdateTaskInput) (*models.Task, error) {
	if input.Name != nil {
		task.Name = *input.Name
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Status != nil {
		if !models.ValidTaskStatus(*input.Status) {
			return nil, ErrInvalidTaskStatus
		}
		task.Status = *input.Status
	}
	if input.Priority != nil {
		if *input.Priority < models.TaskPriorityLow || *input.Priority > models.TaskPriorityHigh {
			return nil, ErrInvalidTaskPriority
		}
		task.Priority = *input.Priority
	}
	if input.DueDate != nil {
		task.DueDate = input.DueDate
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

// DeleteTask soft deletes the task, forcing the Cancelled status.
func (s *TaskService) DeleteTask(task *models.Task) error {
	task.Delete()
	if err := s.taskRepo.Update(task); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// AddAdmin grants a team member elevated rights over the task.
func (s *TaskService) AddAdmin(task *models.Task, user *models.User) error {
	if task.IsAdmin(user.ID) {
		return ErrAlreadyTaskAdmin
	}
	admin := &models.TaskAdmin{
		TaskID: task.ID,
		UserID: user.ID,
	}
	if err := s.taskRepo.AddAdmin(admin); err != nil {
		return fmt.Errorf("failed to add admin: %w", err)
	}
	task.Admins = append(task.Admins, *admin)
	return nil
}

// RemoveAdmin revokes a user's elevated rights over the task.
func (s *TaskService) RemoveAdmin(task *models.Task, userID uint64) error {
	if !task.IsAdmin(userID) {
		return ErrNotTaskAdmin
	}
	if err := s.taskRepo.RemoveAdmin(task.ID, userID); err != nil {
		return fmt.Errorf("failed to remove admin: %w", err)
	}
	for i, a := range task.Admins {
		if a.UserID == userID {
			task.Admins = append(task.Admins[:i], task.Admins[i+1:]...)
			break
		}
	}
	return nil
}

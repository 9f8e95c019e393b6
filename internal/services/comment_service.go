package services

import (
	"fmt"

	"github.com/Abdullah0f/projectEase/internal/models"
	"github.com/Abdullah0f/projectEase/internal/repository"
	"github.com/Abdullah0f/projectEase/internal/utils"
)

// CommentService provides business logic for comments under projects
// and tasks.
type CommentService struct {
	commentRepo repository.CommentRepository
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
	}
}

// ListProjectComments returns the non-deleted comments of a project.
func (s *CommentService) ListProjectComments(projectID uint64, params utils.PaginationParams) ([]models.Comment, int64, error) {
	comments, total, err := s.commentRepo.ListByProject(projectID, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, total, nil
}

// ListTaskComments returns the non-deleted comments of a task.
func (s *CommentService) ListTaskComments(taskID uint64, params utils.PaginationParams) ([]models.Comment, int64, error) {
	comments, total, err := s.commentRepo.ListByTask(taskID, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, total, nil
}

// CreateProjectComment attaches a comment to a project.
func (s *CommentService) CreateProjectComment(project *models.Project, createdBy *models.User, text string) (*models.Comment, error) {
	comment := &models.Comment{
		Text:        text,
		CreatedByID: createdBy.ID,
		ProjectID:   &project.ID,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return comment, nil
}

// CreateTaskComment attaches a comment to a task.
func (s *CommentService) CreateTaskComment(task *models.Task, createdBy *models.User, text string) (*models.Comment, error) {
	comment := &models.Comment{
		Text:        text,
		CreatedByID: createdBy.ID,
		TaskID:      &task.ID,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return comment, nil
}

// UpdateComment replaces the comment text.
func (s *CommentService) UpdateComment(comment *models.Comment, text string) (*models.Comment, error) {
	comment.Text = text
	if err := s.commentRepo.Update(comment); err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	return comment, nil
}

// DeleteComment soft deletes the comment.
func (s *CommentService) DeleteComment(comment *models.Comment) error {
	comment.Delete()
	if err := s.commentRepo.Update(comment); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}

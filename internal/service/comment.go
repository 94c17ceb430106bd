package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"qa-tracker-backend/internal/database/models"
	apperrors "qa-tracker-backend/internal/errors"
	"qa-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentService handles the append-only conversation on bugs
type CommentService struct {
	repo      repository.CommentRepositoryInterface
	bugs      repository.BugRepositoryInterface
	access    *AccessService
	validator *validator.Validate
}

// NewCommentService creates a new comment service
func NewCommentService(repo repository.CommentRepositoryInterface, bugs repository.BugRepositoryInterface, access *AccessService, validator *validator.Validate) *CommentService {
	return &CommentService{
		repo:      repo,
		bugs:      bugs,
		access:    access,
		validator: validator,
	}
}

// AddCommentRequest represents a new comment
type AddCommentRequest struct {
	Comment string `json:"comment" validate:"required,min=1,max=10000"`
}

// CommentResponse represents a bug comment
type CommentResponse struct {
	ID         uuid.UUID `json:"id"`
	BugID      uuid.UUID `json:"bug_id"`
	Comment    string    `json:"comment"`
	CreatedBy  uuid.UUID `json:"created_by"`
	AuthorName string    `json:"author_name,omitempty"`
	CreatedAt  string    `json:"created_at"`
}

// Add appends a comment to a bug. Members only.
func (s *CommentService) Add(actorID, bugID uuid.UUID, req *AddCommentRequest) (*CommentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	text := strings.TrimSpace(req.Comment)
	if text == "" {
		return nil, apperrors.NewValidationError("comment", "must not be blank")
	}

	if err := s.requireBugAccess(actorID, bugID); err != nil {
		return nil, err
	}

	comment := &models.BugComment{
		BugID:     bugID,
		Comment:   text,
		CreatedBy: actorID,
	}
	if err := s.repo.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}

	response := toCommentResponse(comment)
	return &response, nil
}

// List retrieves the comments of a bug, oldest first. Members only.
func (s *CommentService) List(actorID, bugID uuid.UUID) ([]CommentResponse, error) {
	if err := s.requireBugAccess(actorID, bugID); err != nil {
		return nil, err
	}

	comments, err := s.repo.ListByBug(bugID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return toCommentResponses(comments), nil
}

func (s *CommentService) requireBugAccess(actorID, bugID uuid.UUID) error {
	bug, err := s.bugs.GetByID(bugID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBugNotFound
		}
		return fmt.Errorf("failed to get bug: %w", err)
	}
	_, err = s.access.RequireMember(bug.ProjectID, actorID)
	return err
}

func toCommentResponses(comments []models.BugComment) []CommentResponse {
	responses := make([]CommentResponse, len(comments))
	for i := range comments {
		responses[i] = toCommentResponse(&comments[i])
	}
	return responses
}

func toCommentResponse(c *models.BugComment) CommentResponse {
	response := CommentResponse{
		ID:        c.ID,
		BugID:     c.BugID,
		Comment:   c.Comment,
		CreatedBy: c.CreatedBy,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
	if c.Author != nil {
		response.AuthorName = c.Author.FullName
	}
	return response
}

package repository

import (
	"qa-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentRepository handles database operations for bug comments
type CommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create appends a comment to a bug
func (r *CommentRepository) Create(comment *models.BugComment) error {
	return r.db.Omit("Bug", "Author").Create(comment).Error
}

// ListByBug retrieves the comments of a bug in the order they were written
func (r *CommentRepository) ListByBug(bugID uuid.UUID) ([]models.BugComment, error) {
	var comments []models.BugComment
	err := r.db.Preload("Author").
		Where("bug_id = ?", bugID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

package repository

import (
	"qa-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberRepository handles database operations for project members
type MemberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// Create adds a user to a project
func (r *MemberRepository) Create(member *models.ProjectMember) error {
	return r.db.Create(member).Error
}

// GetByID retrieves a membership by ID
func (r *MemberRepository) GetByID(id uuid.UUID) (*models.ProjectMember, error) {
	var member models.ProjectMember
	err := r.db.Preload("User").First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByProjectAndUser retrieves the membership row of a user in a project
func (r *MemberRepository) GetByProjectAndUser(projectID, userID uuid.UUID) (*models.ProjectMember, error) {
	var member models.ProjectMember
	err := r.db.First(&member, "project_id = ? AND user_id = ?", projectID, userID).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// ListByProject retrieves all members of a project with their user profiles
func (r *MemberRepository) ListByProject(projectID uuid.UUID) ([]models.ProjectMember, error) {
	var members []models.ProjectMember
	err := r.db.Preload("User").
		Where("project_id = ?", projectID).
		Order("joined_at ASC").
		Find(&members).Error
	return members, err
}

// Delete removes a membership
func (r *MemberRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ProjectMember{}, "id = ?", id).Error
}

// CountByUser returns how many projects a user belongs to
func (r *MemberRepository) CountByUser(userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.ProjectMember{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// HasRole reports whether the user holds the role in at least one project
func (r *MemberRepository) HasRole(userID uuid.UUID, role models.Role) (bool, error) {
	var count int64
	err := r.db.Model(&models.ProjectMember{}).
		Where("user_id = ? AND role = ?", userID, role).
		Count(&count).Error
	return count > 0, err
}

// ProjectIDsForUser returns the projects a user belongs to, oldest membership first
func (r *MemberRepository) ProjectIDsForUser(userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.ProjectMember{}).
		Where("user_id = ?", userID).
		Order("joined_at ASC").
		Pluck("project_id", &ids).Error
	return ids, err
}

package repository

import (
	"time"

	"qa-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProjectMembershipRow is a project as seen by one of its members
type ProjectMembershipRow struct {
	ID          uuid.UUID            `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Status      models.ProjectStatus `json:"status"`
	CreatedBy   uuid.UUID            `json:"created_by"`
	CreatedAt   time.Time            `json:"created_at"`
	MemberRole  models.Role          `json:"member_role"`
	CreatorName string               `json:"creator_name"`
}

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// CreateWithOwner creates a project and its first member in one transaction
func (r *ProjectRepository) CreateWithOwner(project *models.Project, owner *models.ProjectMember) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(project).Error; err != nil {
			return err
		}
		owner.ProjectID = project.ID
		return tx.Omit(clause.Associations).Create(owner).Error
	})
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetWithMembers retrieves a project with its creator and members
func (r *ProjectRepository) GetWithMembers(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.
		Preload("Creator").
		Preload("Members", func(db *gorm.DB) *gorm.DB { return db.Order("project_members.joined_at ASC") }).
		Preload("Members.User").
		First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// ListForUser retrieves the projects a user belongs to, newest first
func (r *ProjectRepository) ListForUser(userID uuid.UUID) ([]ProjectMembershipRow, error) {
	var rows []ProjectMembershipRow
	err := r.db.Table("projects").
		Select("projects.id, projects.name, projects.description, projects.status, projects.created_by, projects.created_at, "+
			"project_members.role AS member_role, COALESCE(users.full_name, '') AS creator_name").
		Joins("JOIN project_members ON project_members.project_id = projects.id").
		Joins("LEFT JOIN users ON users.id = projects.created_by").
		Where("project_members.user_id = ?", userID).
		Order("projects.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetAll retrieves every project ordered by name
func (r *ProjectRepository) GetAll() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Order("name ASC").Find(&projects).Error
	return projects, err
}

// Update updates a project
func (r *ProjectRepository) Update(project *models.Project) error {
	return r.db.Omit(clause.Associations).Save(project).Error
}

// Delete deletes a project; members, test cases and bugs cascade
func (r *ProjectRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Project{}, "id = ?", id).Error
}

// CountTestCases returns the number of test cases in a project
func (r *ProjectRepository) CountTestCases(projectID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.TestCase{}).Where("project_id = ?", projectID).Count(&count).Error
	return count, err
}

// CountBugs returns the number of bugs in a project
func (r *ProjectRepository) CountBugs(projectID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Bug{}).Where("project_id = ?", projectID).Count(&count).Error
	return count, err
}

// lockProject takes a row lock on the project for the rest of the transaction.
// Per-project numbering relies on it.
func lockProject(tx *gorm.DB, projectID uuid.UUID) error {
	var project models.Project
	return tx.Clauses(clause.Locking{Strength: "UPDATE"}).Select("id").First(&project, "id = ?", projectID).Error
}

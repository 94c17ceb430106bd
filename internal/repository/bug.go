package repository

import (
	"qa-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BugRepository handles database operations for bugs
type BugRepository struct {
	db *gorm.DB
}

// NewBugRepository creates a new bug repository
func NewBugRepository(db *gorm.DB) *BugRepository {
	return &BugRepository{db: db}
}

// CreateNumbered assigns the next bug number of the project and creates the bug
func (r *BugRepository) CreateNumbered(bug *models.Bug) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := lockProject(tx, bug.ProjectID); err != nil {
			return err
		}

		var next int
		err := tx.Model(&models.Bug{}).
			Select("COALESCE(MAX(bug_number), 0) + 1").
			Where("project_id = ?", bug.ProjectID).
			Scan(&next).Error
		if err != nil {
			return err
		}

		bug.BugNumber = next
		return tx.Omit(clause.Associations).Create(bug).Error
	})
}

// GetByID retrieves a bug by ID
func (r *BugRepository) GetByID(id uuid.UUID) (*models.Bug, error) {
	var bug models.Bug
	err := r.db.First(&bug, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &bug, nil
}

// GetWithRelations retrieves a bug with reporter, assignee and linked test case
func (r *BugRepository) GetWithRelations(id uuid.UUID) (*models.Bug, error) {
	var bug models.Bug
	err := r.db.
		Preload("Reporter").
		Preload("Assignee").
		Preload("TestCase").
		First(&bug, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &bug, nil
}

// List retrieves the bugs of a project with reporter, assignee and test case,
// newest first, optionally filtered by status
func (r *BugRepository) List(projectID uuid.UUID, status *models.BugStatus) ([]models.Bug, error) {
	var bugs []models.Bug
	query := r.db.Preload("Reporter").Preload("Assignee").Preload("TestCase").Where("project_id = ?", projectID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	err := query.Order("created_at DESC").Find(&bugs).Error
	return bugs, err
}

// UpdateLocked re-reads the bug under a row lock, applies mutate and saves
// the result together with the history entries it returned.
func (r *BugRepository) UpdateLocked(id uuid.UUID, mutate BugMutation) (*models.Bug, error) {
	var bug models.Bug
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&bug, "id = ?", id).Error; err != nil {
			return err
		}

		entries, err := mutate(&bug)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}

		if err := tx.Omit(clause.Associations).Save(&bug).Error; err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(&entries).Error
	})
	if err != nil {
		return nil, err
	}
	return &bug, nil
}

// Delete deletes a bug; comments and history cascade
func (r *BugRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Bug{}, "id = ?", id).Error
}

// ListHistory retrieves the most recent history entries of a bug
func (r *BugRepository) ListHistory(bugID uuid.UUID, limit int) ([]models.BugHistory, error) {
	var entries []models.BugHistory
	err := r.db.Preload("Changer").
		Where("bug_id = ?", bugID).
		Order("changed_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

// CountReportedBy returns how many bugs a user has reported
func (r *BugRepository) CountReportedBy(userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Bug{}).Where("reported_by = ?", userID).Count(&count).Error
	return count, err
}

// CountOpenAssignedTo returns how many unresolved bugs are assigned to a user
func (r *BugRepository) CountOpenAssignedTo(userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Bug{}).
		Where("assigned_to = ? AND status IN ?", userID, []models.BugStatus{
			models.BugStatusOpen, models.BugStatusInProgress, models.BugStatusReopened,
		}).
		Count(&count).Error
	return count, err
}

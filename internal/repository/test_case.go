package repository

import (
	"qa-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TestCaseRepository handles database operations for test cases
type TestCaseRepository struct {
	db *gorm.DB
}

// NewTestCaseRepository creates a new test case repository
func NewTestCaseRepository(db *gorm.DB) *TestCaseRepository {
	return &TestCaseRepository{db: db}
}

// CreateNumbered assigns the next case number of the project and creates the test case.
// The project row stays locked until commit so concurrent creates never share a number.
func (r *TestCaseRepository) CreateNumbered(testCase *models.TestCase) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := lockProject(tx, testCase.ProjectID); err != nil {
			return err
		}

		var next int
		err := tx.Model(&models.TestCase{}).
			Select("COALESCE(MAX(case_number), 0) + 1").
			Where("project_id = ?", testCase.ProjectID).
			Scan(&next).Error
		if err != nil {
			return err
		}

		testCase.CaseNumber = next
		if testCase.StepsRevision == 0 {
			testCase.StepsRevision = 1
		}
		return tx.Omit(clause.Associations).Create(testCase).Error
	})
}

// GetByID retrieves a test case by ID
func (r *TestCaseRepository) GetByID(id uuid.UUID) (*models.TestCase, error) {
	var testCase models.TestCase
	err := r.db.First(&testCase, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &testCase, nil
}

// GetWithRelations retrieves a test case with its creator and project
func (r *TestCaseRepository) GetWithRelations(id uuid.UUID) (*models.TestCase, error) {
	var testCase models.TestCase
	err := r.db.Preload("Creator").Preload("Project").First(&testCase, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &testCase, nil
}

// List retrieves the test cases of a project, newest first, optionally filtered by status
func (r *TestCaseRepository) List(projectID uuid.UUID, status *models.TestCaseStatus) ([]models.TestCase, error) {
	var testCases []models.TestCase
	query := r.db.Preload("Creator").Where("project_id = ?", projectID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	err := query.Order("created_at DESC").Find(&testCases).Error
	return testCases, err
}

// UpdateLocked re-reads the test case under a row lock, applies mutate and saves
// the result together with the history entries it returned.
func (r *TestCaseRepository) UpdateLocked(id uuid.UUID, mutate TestCaseMutation) (*models.TestCase, error) {
	var testCase models.TestCase
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&testCase, "id = ?", id).Error; err != nil {
			return err
		}

		entries, err := mutate(&testCase)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}

		if err := tx.Omit(clause.Associations).Save(&testCase).Error; err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(&entries).Error
	})
	if err != nil {
		return nil, err
	}
	return &testCase, nil
}

// RecordExecution stores an execution built against the row-locked test case.
// Status changes the builder makes to the test case are saved in the same transaction.
func (r *TestCaseRepository) RecordExecution(testCaseID uuid.UUID, build ExecutionBuilder) (*models.TestExecution, error) {
	var execution *models.TestExecution
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var testCase models.TestCase
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&testCase, "id = ?", testCaseID).Error; err != nil {
			return err
		}

		built, entries, err := build(&testCase)
		if err != nil {
			return err
		}
		built.TestCaseID = testCase.ID
		if err := tx.Omit(clause.Associations).Create(built).Error; err != nil {
			return err
		}

		if len(entries) > 0 {
			if err := tx.Omit(clause.Associations).Save(&testCase).Error; err != nil {
				return err
			}
			if err := tx.Omit(clause.Associations).Create(&entries).Error; err != nil {
				return err
			}
		}

		execution = built
		return nil
	})
	if err != nil {
		return nil, err
	}
	return execution, nil
}

// Delete deletes a test case; its executions and history cascade
func (r *TestCaseRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.TestCase{}, "id = ?", id).Error
}

// ListHistory retrieves the most recent history entries of a test case
func (r *TestCaseRepository) ListHistory(testCaseID uuid.UUID, limit int) ([]models.TestCaseHistory, error) {
	var entries []models.TestCaseHistory
	err := r.db.Preload("Changer").
		Where("test_case_id = ?", testCaseID).
		Order("changed_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

package repository

import (
	"qa-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExecutionRepository handles read operations for test executions.
// Executions are written through TestCaseRepository.RecordExecution.
type ExecutionRepository struct {
	db *gorm.DB
}

// NewExecutionRepository creates a new execution repository
func NewExecutionRepository(db *gorm.DB) *ExecutionRepository {
	return &ExecutionRepository{db: db}
}

// ListByTestCase retrieves the most recent executions of a test case
func (r *ExecutionRepository) ListByTestCase(testCaseID uuid.UUID, limit int) ([]models.TestExecution, error) {
	var executions []models.TestExecution
	err := r.db.Preload("Executor").
		Where("test_case_id = ?", testCaseID).
		Order("execution_date DESC").
		Limit(limit).
		Find(&executions).Error
	return executions, err
}

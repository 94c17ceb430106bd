package repository

import (
	"time"

	"qa-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BugReportRow carries the bug columns reports aggregate over
type BugReportRow struct {
	ProjectID  uuid.UUID
	Status     models.BugStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
	ResolvedAt *time.Time
}

// TestCaseReportRow carries the test case columns reports aggregate over
type TestCaseReportRow struct {
	ProjectID uuid.UUID
	Status    models.TestCaseStatus
}

// ExecutionReportRow carries the execution columns reports aggregate over
type ExecutionReportRow struct {
	ProjectID uuid.UUID
	Status    models.ExecutionStatus
}

// ReportRepository runs the narrow read queries behind reports and dashboards
type ReportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func scopeProjects(column string, projectIDs []uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if projectIDs == nil {
			return db
		}
		if len(projectIDs) == 0 {
			return db.Where("1 = 0")
		}
		return db.Where(column+" IN ?", projectIDs)
	}
}

// Projects retrieves the projects in scope ordered by name
func (r *ReportRepository) Projects(projectIDs []uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Scopes(scopeProjects("id", projectIDs)).Order("name ASC").Find(&projects).Error
	return projects, err
}

// BugRows retrieves one row per bug in scope
func (r *ReportRepository) BugRows(projectIDs []uuid.UUID) ([]BugReportRow, error) {
	var rows []BugReportRow
	err := r.db.Model(&models.Bug{}).
		Select("project_id, status, created_at, updated_at, resolved_at").
		Scopes(scopeProjects("project_id", projectIDs)).
		Scan(&rows).Error
	return rows, err
}

// TestCaseRows retrieves one row per test case in scope
func (r *ReportRepository) TestCaseRows(projectIDs []uuid.UUID) ([]TestCaseReportRow, error) {
	var rows []TestCaseReportRow
	err := r.db.Model(&models.TestCase{}).
		Select("project_id, status").
		Scopes(scopeProjects("project_id", projectIDs)).
		Scan(&rows).Error
	return rows, err
}

// ExecutionRows retrieves one row per execution in scope, tagged with its project
func (r *ReportRepository) ExecutionRows(projectIDs []uuid.UUID) ([]ExecutionReportRow, error) {
	var rows []ExecutionReportRow
	err := r.db.Table("test_executions").
		Select("test_cases.project_id AS project_id, test_executions.status AS status").
		Joins("JOIN test_cases ON test_cases.id = test_executions.test_case_id").
		Scopes(scopeProjects("test_cases.project_id", projectIDs)).
		Scan(&rows).Error
	return rows, err
}

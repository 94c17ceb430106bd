package repository

import (
	"qa-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TestCaseMutation edits a row-locked test case in place and returns the history
// entries describing the edit. No entries means nothing is written.
type TestCaseMutation func(testCase *models.TestCase) ([]models.TestCaseHistory, error)

// ExecutionBuilder builds an execution for a row-locked test case. Returned history
// entries describe changes it made to the test case, which are then saved with it.
type ExecutionBuilder func(testCase *models.TestCase) (*models.TestExecution, []models.TestCaseHistory, error)

// BugMutation edits a row-locked bug in place and returns the history entries
// describing the edit. No entries means nothing is written.
type BugMutation func(bug *models.Bug) ([]models.BugHistory, error)

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByExternalID(provider models.AuthProvider, externalID string) (*models.User, error)
	GetByVerificationToken(token string) (*models.User, error)
	GetAll(limit, offset int) ([]models.User, int64, error)
	Update(user *models.User) error
}

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	CreateWithOwner(project *models.Project, owner *models.ProjectMember) error
	GetByID(id uuid.UUID) (*models.Project, error)
	GetWithMembers(id uuid.UUID) (*models.Project, error)
	ListForUser(userID uuid.UUID) ([]ProjectMembershipRow, error)
	GetAll() ([]models.Project, error)
	Update(project *models.Project) error
	Delete(id uuid.UUID) error
	CountTestCases(projectID uuid.UUID) (int64, error)
	CountBugs(projectID uuid.UUID) (int64, error)
}

// MemberRepositoryInterface defines the interface for project member repository operations
type MemberRepositoryInterface interface {
	Create(member *models.ProjectMember) error
	GetByID(id uuid.UUID) (*models.ProjectMember, error)
	GetByProjectAndUser(projectID, userID uuid.UUID) (*models.ProjectMember, error)
	ListByProject(projectID uuid.UUID) ([]models.ProjectMember, error)
	Delete(id uuid.UUID) error
	CountByUser(userID uuid.UUID) (int64, error)
	HasRole(userID uuid.UUID, role models.Role) (bool, error)
	ProjectIDsForUser(userID uuid.UUID) ([]uuid.UUID, error)
}

// TestCaseRepositoryInterface defines the interface for test case repository operations
type TestCaseRepositoryInterface interface {
	CreateNumbered(testCase *models.TestCase) error
	GetByID(id uuid.UUID) (*models.TestCase, error)
	GetWithRelations(id uuid.UUID) (*models.TestCase, error)
	List(projectID uuid.UUID, status *models.TestCaseStatus) ([]models.TestCase, error)
	UpdateLocked(id uuid.UUID, mutate TestCaseMutation) (*models.TestCase, error)
	RecordExecution(testCaseID uuid.UUID, build ExecutionBuilder) (*models.TestExecution, error)
	Delete(id uuid.UUID) error
	ListHistory(testCaseID uuid.UUID, limit int) ([]models.TestCaseHistory, error)
}

// ExecutionRepositoryInterface defines the interface for test execution repository operations
type ExecutionRepositoryInterface interface {
	ListByTestCase(testCaseID uuid.UUID, limit int) ([]models.TestExecution, error)
}

// BugRepositoryInterface defines the interface for bug repository operations
type BugRepositoryInterface interface {
	CreateNumbered(bug *models.Bug) error
	GetByID(id uuid.UUID) (*models.Bug, error)
	GetWithRelations(id uuid.UUID) (*models.Bug, error)
	List(projectID uuid.UUID, status *models.BugStatus) ([]models.Bug, error)
	UpdateLocked(id uuid.UUID, mutate BugMutation) (*models.Bug, error)
	Delete(id uuid.UUID) error
	ListHistory(bugID uuid.UUID, limit int) ([]models.BugHistory, error)
	CountReportedBy(userID uuid.UUID) (int64, error)
	CountOpenAssignedTo(userID uuid.UUID) (int64, error)
}

// CommentRepositoryInterface defines the interface for bug comment repository operations
type CommentRepositoryInterface interface {
	Create(comment *models.BugComment) error
	ListByBug(bugID uuid.UUID) ([]models.BugComment, error)
}

// ReportRepositoryInterface defines the interface for reporting queries.
// A nil projectIDs slice means every project.
type ReportRepositoryInterface interface {
	Projects(projectIDs []uuid.UUID) ([]models.Project, error)
	BugRows(projectIDs []uuid.UUID) ([]BugReportRow, error)
	TestCaseRows(projectIDs []uuid.UUID) ([]TestCaseReportRow, error)
	ExecutionRows(projectIDs []uuid.UUID) ([]ExecutionReportRow, error)
}

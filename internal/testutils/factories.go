package testutils

import (
	"fmt"
	"sync/atomic"

	"qa-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

var factorySeq atomic.Int64

func nextSeq() int64 {
	return factorySeq.Add(1)
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// Create creates a verified, active tester with a unique email
func (f *UserFactory) Create() *models.User {
	n := nextSeq()
	return &models.User{
		BaseModel:     models.BaseModel{ID: uuid.New()},
		Email:         fmt.Sprintf("tester%d@example.com", n),
		FullName:      fmt.Sprintf("Tester %d", n),
		Role:          models.RoleTester,
		IsActive:      true,
		EmailVerified: true,
		AuthProvider:  models.AuthProviderLocal,
	}
}

// WithRole creates a user holding the given global role
func (f *UserFactory) WithRole(role models.Role) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// WithEmail creates a user with a custom email
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// Create creates an active project owned by creatorID
func (f *ProjectFactory) Create(creatorID uuid.UUID) *models.Project {
	return &models.Project{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		Name:        fmt.Sprintf("Project %d", nextSeq()),
		Description: "Regression suite",
		Status:      models.ProjectStatusActive,
		CreatedBy:   creatorID,
	}
}

// MemberFactory provides methods to create test ProjectMember data
type MemberFactory struct{}

// Create creates a membership of userID in projectID
func (f *MemberFactory) Create(projectID, userID uuid.UUID, role models.Role) *models.ProjectMember {
	return &models.ProjectMember{
		ID:        uuid.New(),
		ProjectID: projectID,
		UserID:    userID,
		Role:      role,
	}
}

// TestCaseFactory provides methods to create test TestCase data
type TestCaseFactory struct{}

// Create creates an active two-step test case
func (f *TestCaseFactory) Create(projectID, creatorID uuid.UUID) *models.TestCase {
	return &models.TestCase{
		BaseModel: models.BaseModel{ID: uuid.New()},
		ProjectID: projectID,
		Title:     fmt.Sprintf("Login works %d", nextSeq()),
		Steps: datatypes.JSONSlice[models.TestStep]{
			{Action: "Open the login page", Expected: "Form is shown"},
			{Action: "Submit valid credentials", Expected: "Dashboard is shown"},
		},
		StepsRevision:  1,
		ExpectedResult: "User is signed in",
		Status:         models.TestCaseStatusActive,
		Priority:       models.PriorityMedium,
		CreatedBy:      creatorID,
	}
}

// BugFactory provides methods to create test Bug data
type BugFactory struct{}

// Create creates an open minor bug
func (f *BugFactory) Create(projectID, reporterID uuid.UUID) *models.Bug {
	return &models.Bug{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		ProjectID:   projectID,
		Title:       fmt.Sprintf("Button misaligned %d", nextSeq()),
		Description: "The submit button overlaps the footer",
		Priority:    models.PriorityMedium,
		Severity:    models.SeverityMinor,
		Status:      models.BugStatusOpen,
		ReportedBy:  reporterID,
	}
}

// FactorySet groups all factories for convenience
type FactorySet struct {
	User     *UserFactory
	Project  *ProjectFactory
	Member   *MemberFactory
	TestCase *TestCaseFactory
	Bug      *BugFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:     &UserFactory{},
		Project:  &ProjectFactory{},
		Member:   &MemberFactory{},
		TestCase: &TestCaseFactory{},
		Bug:      &BugFactory{},
	}
}

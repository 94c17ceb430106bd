package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TestStep is one ordered instruction of a test case
type TestStep struct {
	Action   string `json:"action"`
	Expected string `json:"expected"`
}

// TestCase is a reusable script of steps with an expected outcome.
// StepsRevision increases every time the step list changes so that executions
// can tell which list their step flags refer to.
type TestCase struct {
	BaseModel
	ProjectID      uuid.UUID                     `json:"project_id" gorm:"type:uuid;not null;uniqueIndex:idx_test_cases_project_number"`
	CaseNumber     int                           `json:"case_number" gorm:"not null;uniqueIndex:idx_test_cases_project_number"`
	Title          string                        `json:"title" gorm:"not null;size:255"`
	Description    string                        `json:"description" gorm:"type:text"`
	Preconditions  string                        `json:"preconditions" gorm:"type:text"`
	Steps          datatypes.JSONSlice[TestStep] `json:"steps" gorm:"type:jsonb;not null"`
	StepsRevision  int                           `json:"steps_revision" gorm:"not null;default:1"`
	ExpectedResult string                        `json:"expected_result" gorm:"type:text"`
	Status         TestCaseStatus                `json:"status" gorm:"type:varchar(20);not null;default:'draft';index"`
	Priority       Priority                      `json:"priority" gorm:"type:varchar(20);not null;default:'medium'"`
	StoryID        *int                          `json:"story_id"`
	Month          string                        `json:"month" gorm:"size:20"`
	Sprint         string                        `json:"sprint" gorm:"size:50"`
	CreatedBy      uuid.UUID                     `json:"created_by" gorm:"type:uuid;not null"`

	// Relationships
	Project *Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Creator *User    `json:"creator,omitempty" gorm:"foreignKey:CreatedBy;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for TestCase
func (TestCase) TableName() string {
	return "test_cases"
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Bug is a defect report, optionally linked to the test case that revealed it
type Bug struct {
	BaseModel
	ProjectID        uuid.UUID  `json:"project_id" gorm:"type:uuid;not null;uniqueIndex:idx_bugs_project_number"`
	BugNumber        int        `json:"bug_number" gorm:"not null;uniqueIndex:idx_bugs_project_number"`
	TestCaseID       *uuid.UUID `json:"test_case_id,omitempty" gorm:"type:uuid;index"`
	Title            string     `json:"title" gorm:"not null;size:255"`
	Description      string     `json:"description" gorm:"type:text;not null"`
	StepsToReproduce string     `json:"steps_to_reproduce" gorm:"type:text"`
	ExpectedBehavior string     `json:"expected_behavior" gorm:"type:text"`
	ActualBehavior   string     `json:"actual_behavior" gorm:"type:text"`
	Priority         Priority   `json:"priority" gorm:"type:varchar(20);not null;default:'medium'"`
	Severity         Severity   `json:"severity" gorm:"type:varchar(20);not null;default:'minor'"`
	Status           BugStatus  `json:"status" gorm:"type:varchar(20);not null;default:'open';index"`
	ReportedBy       uuid.UUID  `json:"reported_by" gorm:"type:uuid;not null;index"`
	AssignedTo       *uuid.UUID `json:"assigned_to,omitempty" gorm:"type:uuid;index"`
	ResolvedAt       *time.Time `json:"resolved_at,omitempty"`

	// Relationships
	Project  *Project  `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	TestCase *TestCase `json:"test_case,omitempty" gorm:"foreignKey:TestCaseID;constraint:OnDelete:SET NULL"`
	Reporter *User     `json:"reporter,omitempty" gorm:"foreignKey:ReportedBy;constraint:OnDelete:RESTRICT"`
	Assignee *User     `json:"assignee,omitempty" gorm:"foreignKey:AssignedTo;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Bug
func (Bug) TableName() string {
	return "bugs"
}

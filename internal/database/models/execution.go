package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StepStatus is the completion flag of the step at the same index of the test case
type StepStatus struct {
	Completed bool `json:"completed"`
}

// TestExecution is one immutable attempt at running a test case
type TestExecution struct {
	ID            uuid.UUID                       `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TestCaseID    uuid.UUID                       `json:"test_case_id" gorm:"type:uuid;not null;index"`
	ExecutedBy    uuid.UUID                       `json:"executed_by" gorm:"type:uuid;not null"`
	Status        ExecutionStatus                 `json:"status" gorm:"type:varchar(20);not null;default:'not_executed'"`
	ActualResult  string                          `json:"actual_result" gorm:"type:text"`
	Notes         string                          `json:"notes" gorm:"type:text"`
	StepsStatus   datatypes.JSONSlice[StepStatus] `json:"steps_status" gorm:"type:jsonb;not null"`
	StepsRevision int                             `json:"steps_revision" gorm:"not null;default:1"`
	ExecutionDate time.Time                       `json:"execution_date" gorm:"not null;index"`

	// Relationships
	TestCase *TestCase `json:"test_case,omitempty" gorm:"foreignKey:TestCaseID;constraint:OnDelete:CASCADE"`
	Executor *User     `json:"executor,omitempty" gorm:"foreignKey:ExecutedBy;constraint:OnDelete:RESTRICT"`
}

// BeforeCreate sets the UUID and execution date if not already set
func (e *TestExecution) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.ExecutionDate.IsZero() {
		e.ExecutionDate = time.Now()
	}
	return nil
}

// TableName returns the table name for TestExecution
func (TestExecution) TableName() string {
	return "test_executions"
}

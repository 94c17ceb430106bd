package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TestCaseHistory is one audited field change of a test case
type TestCaseHistory struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TestCaseID uuid.UUID `json:"test_case_id" gorm:"type:uuid;not null;index"`
	FieldName  string    `json:"field_name" gorm:"not null;size:100"`
	OldValue   string    `json:"old_value" gorm:"type:text"`
	NewValue   string    `json:"new_value" gorm:"type:text"`
	ChangedBy  uuid.UUID `json:"changed_by" gorm:"type:uuid;not null"`
	ChangedAt  time.Time `json:"changed_at" gorm:"not null;index"`

	// Relationships
	TestCase *TestCase `json:"-" gorm:"foreignKey:TestCaseID;constraint:OnDelete:CASCADE"`
	Changer  *User     `json:"changer,omitempty" gorm:"foreignKey:ChangedBy;constraint:OnDelete:RESTRICT"`
}

// BeforeCreate sets the UUID and timestamp if not already set
func (h *TestCaseHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	if h.ChangedAt.IsZero() {
		h.ChangedAt = time.Now()
	}
	return nil
}

// TableName returns the table name for TestCaseHistory
func (TestCaseHistory) TableName() string {
	return "test_case_history"
}

// BugHistory is one audited field change of a bug
type BugHistory struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	BugID     uuid.UUID `json:"bug_id" gorm:"type:uuid;not null;index"`
	FieldName string    `json:"field_name" gorm:"not null;size:100"`
	OldValue  string    `json:"old_value" gorm:"type:text"`
	NewValue  string    `json:"new_value" gorm:"type:text"`
	ChangedBy uuid.UUID `json:"changed_by" gorm:"type:uuid;not null"`
	ChangedAt time.Time `json:"changed_at" gorm:"not null;index"`

	// Relationships
	Bug     *Bug  `json:"-" gorm:"foreignKey:BugID;constraint:OnDelete:CASCADE"`
	Changer *User `json:"changer,omitempty" gorm:"foreignKey:ChangedBy;constraint:OnDelete:RESTRICT"`
}

// BeforeCreate sets the UUID and timestamp if not already set
func (h *BugHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	if h.ChangedAt.IsZero() {
		h.ChangedAt = time.Now()
	}
	return nil
}

// TableName returns the table name for BugHistory
func (BugHistory) TableName() string {
	return "bug_history"
}

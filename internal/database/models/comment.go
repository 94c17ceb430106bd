package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BugComment is an append-only note on a bug
type BugComment struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	BugID     uuid.UUID `json:"bug_id" gorm:"type:uuid;not null;index"`
	Comment   string    `json:"comment" gorm:"type:text;not null"`
	CreatedBy uuid.UUID `json:"created_by" gorm:"type:uuid;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`

	// Relationships
	Bug    *Bug  `json:"-" gorm:"foreignKey:BugID;constraint:OnDelete:CASCADE"`
	Author *User `json:"author,omitempty" gorm:"foreignKey:CreatedBy;constraint:OnDelete:RESTRICT"`
}

// BeforeCreate sets the UUID if not already set
func (c *BugComment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for BugComment
func (BugComment) TableName() string {
	return "bug_comments"
}

package models

import "github.com/google/uuid"

// Project is the tenant that scopes test cases, bugs and members
type Project struct {
	BaseModel
	Name        string        `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description string        `json:"description" gorm:"type:text"`
	Status      ProjectStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'"`
	CreatedBy   uuid.UUID     `json:"created_by" gorm:"type:uuid;not null;index"`

	// Relationships
	Creator *User           `json:"creator,omitempty" gorm:"foreignKey:CreatedBy;constraint:OnDelete:RESTRICT"`
	Members []ProjectMember `json:"members,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}

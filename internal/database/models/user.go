package models

// User is an account that can sign in and be added to projects.
// Users are deactivated, never deleted.
type User struct {
	BaseModel
	Email             string       `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	FullName          string       `json:"full_name" gorm:"not null;size:200" validate:"required,max=200"`
	Role              Role         `json:"role" gorm:"type:varchar(20);not null;default:'tester'"`
	IsActive          bool         `json:"is_active" gorm:"not null;default:true"`
	EmailVerified     bool         `json:"email_verified" gorm:"not null;default:false"`
	PasswordHash      *string      `json:"-" gorm:"size:100"`
	AuthProvider      AuthProvider `json:"auth_provider" gorm:"type:varchar(20);not null;default:'local'"`
	ExternalID        string       `json:"-" gorm:"size:100;index"`
	VerificationToken *string      `json:"-" gorm:"size:100;uniqueIndex"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

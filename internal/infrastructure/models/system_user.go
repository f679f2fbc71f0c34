package models

import (
	"time"
)

// SystemUser is the storage model for the system_users table.
// Email uniqueness is enforced only among live rows so a soft delete
// frees the email for reuse.
type SystemUser struct {
	ID        string  `gorm:"type:varchar(36);primaryKey"`
	FirstName string  `gorm:"type:varchar(150)"`
	LastName  string  `gorm:"type:varchar(150)"`
	Email     string  `gorm:"type:varchar(50);uniqueIndex:idx_system_users_live_email,where:is_deleted = false"`
	Password  string  `gorm:"type:varchar(150)"`
	PhoneNum  string  `gorm:"type:varchar(15)"`
	Gender    string  `gorm:"type:varchar(10)"`
	Image     *string `gorm:"type:varchar(255)"`
	IsDeleted bool    `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the table name
func (SystemUser) TableName() string {
	return "system_users"
}

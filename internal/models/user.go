package models

import "time"

// User is the account record. Role and ProfileCompleted only ever move
// forward: the role is chosen once and a completed profile stays completed.
type User struct {
	BaseModel
	Email            string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash     string     `gorm:"not null" json:"-"`
	Role             UserRole   `gorm:"type:varchar(20);default:''" json:"role"`
	ProfileCompleted bool       `gorm:"default:false" json:"profileCompleted"`
	ResetToken       string     `json:"-"`
	ResetTokenExp    *time.Time `json:"-"`

	// Relations
	EmployeeProfile *EmployeeProfile `gorm:"foreignKey:UserID" json:"-"`
	EmployerProfile *EmployerProfile `gorm:"foreignKey:UserID" json:"-"`
}

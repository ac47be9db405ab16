package models

import "gorm.io/datatypes"

// Job is a posting owned by one employer account.
type Job struct {
	BaseModel
	EmployerID   string                      `gorm:"type:uuid;not null;index" json:"employerId"`
	Title        string                      `gorm:"not null" json:"title"`
	Company      string                      `gorm:"not null" json:"company"`
	Location     string                      `gorm:"not null" json:"location"`
	Type         JobType                     `gorm:"type:varchar(20);not null" json:"type"`
	Salary       string                      `gorm:"not null" json:"salary"`
	Description  string                      `gorm:"not null" json:"description"`
	Requirements string                      `json:"requirements"`
	Skills       datatypes.JSONSlice[string] `json:"skills"`
	Experience   string                      `json:"experience"`
	Status       JobStatus                   `gorm:"type:varchar(20);default:'active'" json:"status"`

	Employer *User `gorm:"foreignKey:EmployerID" json:"-"`
}

package models

import "gorm.io/datatypes"

// EmployeeProfile is the role-specific profile of a job seeker, 1:1 with the
// account. Resubmission replaces it wholesale.
type EmployeeProfile struct {
	BaseModel
	UserID        string                      `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	FullName      string                      `gorm:"not null" json:"fullName"`
	Email         string                      `gorm:"not null" json:"email"`
	PhoneNumber   string                      `gorm:"not null" json:"phoneNumber"`
	Skills        datatypes.JSONSlice[string] `json:"skills"`
	Qualification string                      `gorm:"not null" json:"qualification"`
	Experience    string                      `json:"experience"`
}

package models

// EmployerProfile is the role-specific profile of a job poster, 1:1 with the
// account. OfficialEmail mirrors the account email at upsert time.
type EmployerProfile struct {
	BaseModel
	UserID           string `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	CompanyName      string `gorm:"not null" json:"companyName"`
	EmployerName     string `gorm:"not null" json:"employerName"`
	OfficialEmail    string `gorm:"not null" json:"officialEmail"`
	PhoneNumber      string `gorm:"not null" json:"phoneNumber"`
	CompanyAddress   string `gorm:"not null" json:"companyAddress"`
	BusinessType     string `gorm:"not null" json:"businessType"`
	HRContactDetails string `json:"hrContactDetails"`
	CompanyLogo      string `json:"companyLogo"`
}

package dto

type EmployeeProfileRequest struct {
	UserID        string   `json:"userId" validate:"required"`
	FullName      string   `json:"fullName" validate:"required"`
	PhoneNumber   string   `json:"phoneNumber" validate:"required"`
	Qualification string   `json:"qualification" validate:"required"`
	Skills        []string `json:"skills"`
	Experience    string   `json:"experience"`
}

type EmployerProfileRequest struct {
	UserID           string `json:"userId" validate:"required"`
	CompanyName      string `json:"companyName" validate:"required"`
	EmployerName     string `json:"employerName" validate:"required"`
	PhoneNumber      string `json:"phoneNumber" validate:"required"`
	CompanyAddress   string `json:"companyAddress" validate:"required"`
	BusinessType     string `json:"businessType" validate:"required"`
	HRContactDetails string `json:"hrContactDetails"`
	CompanyLogo      string `json:"companyLogo"`
}

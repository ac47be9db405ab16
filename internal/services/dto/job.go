package dto

type CreateJobRequest struct {
	EmployerID   string   `json:"employerId" validate:"required"`
	Title        string   `json:"title" validate:"required"`
	Company      string   `json:"company" validate:"required"`
	Location     string   `json:"location" validate:"required"`
	Type         string   `json:"type" validate:"required"`
	Salary       string   `json:"salary" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Requirements string   `json:"requirements"`
	Skills       []string `json:"skills"`
	Experience   string   `json:"experience"`
}

// UpdateJobRequest carries a partial update; nil fields stay untouched.
// EmployerID, when supplied, identifies the caller for the ownership check.
type UpdateJobRequest struct {
	EmployerID   *string   `json:"employerId"`
	Title        *string   `json:"title"`
	Company      *string   `json:"company"`
	Location     *string   `json:"location"`
	Type         *string   `json:"type"`
	Salary       *string   `json:"salary"`
	Description  *string   `json:"description"`
	Requirements *string   `json:"requirements"`
	Skills       *[]string `json:"skills"`
	Experience   *string   `json:"experience"`
	Status       *string   `json:"status"`
}

// JobFilterQuery binds the /jobs listing query string.
type JobFilterQuery struct {
	Search   string `form:"search"`
	Location string `form:"location"`
	Type     string `form:"type"`
	Status   string `form:"status"`
}

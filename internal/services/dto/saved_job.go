package dto

type SaveJobRequest struct {
	UserID string `json:"userId" validate:"required"`
	JobID  string `json:"jobId" validate:"required"`
}

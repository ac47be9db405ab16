package dto

type ApplyRequest struct {
	JobID       string `json:"jobId" validate:"required"`
	ApplicantID string `json:"applicantId" validate:"required"`
	CoverLetter string `json:"coverLetter"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

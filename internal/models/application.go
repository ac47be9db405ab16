package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Application links one job and one applicant. The (job, applicant) pair is
// unique at the storage layer so a duplicate-check race cannot admit two
// rows. AppliedAt is set at creation and never updated.
type Application struct {
	ID          string            `gorm:"type:uuid;primaryKey" json:"id"`
	JobID       string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_applicant" json:"jobId"`
	ApplicantID string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_applicant" json:"applicantId"`
	CoverLetter string            `json:"coverLetter"`
	Status      ApplicationStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	AppliedAt   time.Time         `gorm:"autoCreateTime" json:"appliedAt"`

	Job       *Job  `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"job,omitempty"`
	Applicant *User `gorm:"foreignKey:ApplicantID;constraint:OnDelete:CASCADE" json:"applicant,omitempty"`
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

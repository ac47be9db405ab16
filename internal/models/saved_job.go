package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SavedJob is a bookmark relation between an account and a job, unique per
// pair at the storage layer.
type SavedJob struct {
	ID      string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID  string    `gorm:"type:uuid;not null;uniqueIndex:idx_saved_jobs_user_job" json:"userId"`
	JobID   string    `gorm:"type:uuid;not null;uniqueIndex:idx_saved_jobs_user_job" json:"jobId"`
	SavedAt time.Time `gorm:"autoCreateTime" json:"savedAt"`

	Job *Job `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"job,omitempty"`
}

func (s *SavedJob) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

package repositories

import (
	"errors"

	"joblink_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrSavedJobNotFound = errors.New("saved job not found")
	ErrAlreadySaved     = errors.New("job already saved by this user")
)

type SavedJobRepository interface {
	Create(savedJob *models.SavedJob) error
	FindByUser(userID string) ([]models.SavedJob, error)
	Delete(id string) error
}

type SavedJobRepositoryImpl struct {
	db *gorm.DB
}

func NewSavedJobRepository(db *gorm.DB) SavedJobRepository {
	return &SavedJobRepositoryImpl{db: db}
}

func (r *SavedJobRepositoryImpl) Create(savedJob *models.SavedJob) error {
	if err := r.db.Create(savedJob).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadySaved
		}
		return err
	}
	return nil
}

func (r *SavedJobRepositoryImpl) FindByUser(userID string) ([]models.SavedJob, error) {
	var savedJobs []models.SavedJob
	err := r.db.Preload("Job").
		Where("user_id = ?", userID).
		Order("saved_at DESC").
		Find(&savedJobs).Error
	return savedJobs, err
}

func (r *SavedJobRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.SavedJob{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSavedJobNotFound
	}
	return nil
}

package repositories

import (
	"errors"

	"joblink_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrApplicationExists   = errors.New("application already exists for this job and applicant")
)

type ApplicationRepository interface {
	Create(application *models.Application) error
	FindByID(id string) (*models.Application, error)
	FindByApplicant(applicantID string) ([]models.Application, error)
	FindByJob(jobID string) ([]models.Application, error)
	UpdateStatus(id string, status models.ApplicationStatus) (*models.Application, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

// Create inserts the application. The composite unique index on
// (job_id, applicant_id) is what actually rejects the duplicate, so two
// concurrent applies can never both land.
func (r *ApplicationRepositoryImpl) Create(application *models.Application) error {
	if err := r.db.Create(application).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrApplicationExists
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.Application, error) {
	var application models.Application
	err := r.db.First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) FindByApplicant(applicantID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Preload("Job").
		Where("applicant_id = ?", applicantID).
		Order("applied_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) FindByJob(jobID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Preload("Applicant").
		Where("job_id = ?", jobID).
		Order("applied_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) UpdateStatus(id string, status models.ApplicationStatus) (*models.Application, error) {
	result := r.db.Model(&models.Application{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrApplicationNotFound
	}
	return r.FindByID(id)
}

package repositories

import (
	"errors"

	"joblink_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

// JobFilter narrows the public job listing. Zero values mean "no filter"
// except Status, which the service defaults to active.
type JobFilter struct {
	Search   string
	Location string
	Type     string
	Status   string
}

type JobRepository interface {
	Create(job *models.Job) error
	FindByID(id string) (*models.Job, error)
	FindWithFilter(filter JobFilter) ([]models.Job, error)
	FindByEmployer(employerID string) ([]models.Job, error)
	UpdateFields(id string, fields map[string]interface{}) (*models.Job, error)
	Delete(id string) error
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(id string) (*models.Job, error) {
	var job models.Job
	err := r.db.First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

// FindWithFilter runs the public listing query: case-insensitive substring
// search over title/company/description, substring location match, exact type
// and status, newest first. LOWER(...) LIKE keeps the query portable across
// the postgres and mysql drivers.
func (r *JobRepositoryImpl) FindWithFilter(filter JobFilter) ([]models.Job, error) {
	query := r.db.Model(&models.Job{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"LOWER(title) LIKE LOWER(?) OR LOWER(company) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)",
			pattern, pattern, pattern,
		)
	}
	if filter.Location != "" {
		query = query.Where("LOWER(location) LIKE LOWER(?)", "%"+filter.Location+"%")
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}

	var jobs []models.Job
	err := query.Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) FindByEmployer(employerID string) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Where("employer_id = ?", employerID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

// UpdateFields applies a partial update and returns the fresh row.
func (r *JobRepositoryImpl) UpdateFields(id string, fields map[string]interface{}) (*models.Job, error) {
	result := r.db.Model(&models.Job{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrJobNotFound
	}
	return r.FindByID(id)
}

// Delete removes the job. Applications and saved-job bookmarks referencing it
// go with it via the storage-level ON DELETE CASCADE constraints.
func (r *JobRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Job{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

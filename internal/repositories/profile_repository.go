package repositories

import (
	"errors"

	"joblink_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	UpsertEmployee(profile *models.EmployeeProfile) error
	UpsertEmployer(profile *models.EmployerProfile) error
	FindEmployeeByUserID(userID string) (*models.EmployeeProfile, error)
	FindEmployerByUserID(userID string) (*models.EmployerProfile, error)
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

// UpsertEmployee replaces the profile row wholesale, keyed on user_id. The
// unique index makes concurrent first submissions collapse into one row.
func (r *ProfileRepositoryImpl) UpsertEmployee(profile *models.EmployeeProfile) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"full_name", "email", "phone_number", "skills", "qualification", "experience", "updated_at",
		}),
	}).Create(profile).Error
	if err != nil {
		return err
	}
	// Re-read so the caller gets the persisted row (the original id on
	// resubmission, not the discarded candidate one).
	return r.db.First(profile, "user_id = ?", profile.UserID).Error
}

// UpsertEmployer mirrors UpsertEmployee for the employer profile.
func (r *ProfileRepositoryImpl) UpsertEmployer(profile *models.EmployerProfile) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"company_name", "employer_name", "official_email", "phone_number",
			"company_address", "business_type", "hr_contact_details", "company_logo", "updated_at",
		}),
	}).Create(profile).Error
	if err != nil {
		return err
	}
	return r.db.First(profile, "user_id = ?", profile.UserID).Error
}

func (r *ProfileRepositoryImpl) FindEmployeeByUserID(userID string) (*models.EmployeeProfile, error) {
	var profile models.EmployeeProfile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindEmployerByUserID(userID string) (*models.EmployerProfile, error) {
	var profile models.EmployerProfile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

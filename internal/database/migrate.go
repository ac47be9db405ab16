package database

import (
	"joblink_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every model. Order matters:
// profiles, jobs, applications and saved jobs all reference users.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.EmployeeProfile{},
		&models.EmployerProfile{},
		&models.Job{},
		&models.Application{},
		&models.SavedJob{},
	)
}

package services

import (
	"joblink_backend/internal/email"
)

// ServiceContainer holds every service of the application.
type ServiceContainer struct {
	AuthService        AuthService
	ProfileService     ProfileService
	JobService         JobService
	ApplicationService ApplicationService
	SavedJobService    SavedJobService
	EmailProvider      email.Provider
}

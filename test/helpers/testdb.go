package helpers

import (
	"fmt"
	"testing"
	"time"

	"joblink_backend/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UniqueEmail generates an address that cannot collide across tests.
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, time.Now().UnixNano())
}

// CreateUser inserts an account with a bcrypt hash of password.
func CreateUser(t *testing.T, db *gorm.DB, email, password string, role models.UserRole) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user %s: %v", email, err)
	}
	return user
}

// CreateEmployer inserts an employer account ready to post jobs.
func CreateEmployer(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	return CreateUser(t, db, UniqueEmail("employer"), "password123", models.UserRoleEmployer)
}

// CreateEmployee inserts a job-seeker account ready to apply.
func CreateEmployee(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	return CreateUser(t, db, UniqueEmail("employee"), "password123", models.UserRoleEmployee)
}

// CreateJob inserts an active job owned by employerID.
func CreateJob(t *testing.T, db *gorm.DB, employerID, title string) *models.Job {
	t.Helper()

	job := &models.Job{
		EmployerID:  employerID,
		Title:       title,
		Company:     "Test Company",
		Location:    "Almaty",
		Type:        models.JobTypeFullTime,
		Salary:      "400000 KZT",
		Description: "Test job description",
		Status:      models.JobStatusActive,
	}
	if err := db.Create(job).Error; err != nil {
		t.Fatalf("failed to create test job %s: %v", title, err)
	}
	return job
}

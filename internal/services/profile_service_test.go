package services

import (
	"testing"

	"joblink_backend/internal/models"
	"joblink_backend/internal/services/dto"
	"joblink_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileFixture() (ProfileService, *fakeUserRepo, *fakeProfileRepo) {
	userRepo := newFakeUserRepo()
	profileRepo := newFakeProfileRepo()
	svc := NewProfileService(profileRepo, userRepo)
	return svc, userRepo, profileRepo
}

func TestCompleteEmployeeProfile(t *testing.T) {
	svc, userRepo, _ := newProfileFixture()
	seeded := userRepo.add(&models.User{Email: "alice@example.com", Role: models.UserRoleEmployee})

	profile, err := svc.CompleteEmployeeProfile(&dto.EmployeeProfileRequest{
		UserID:        seeded.ID,
		FullName:      "Alice Smith",
		PhoneNumber:   "+77001234567",
		Qualification: "BSc Computer Science",
		Skills:        []string{"Go", "SQL"},
		Experience:    "3 years",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", profile.FullName)
	assert.Equal(t, "alice@example.com", profile.Email, "contact email comes from the account")
	assert.True(t, userRepo.users[seeded.ID].ProfileCompleted)
}

func TestCompleteEmployeeProfileIsIdempotent(t *testing.T) {
	svc, userRepo, profileRepo := newProfileFixture()
	seeded := userRepo.add(&models.User{Email: "alice@example.com", Role: models.UserRoleEmployee})

	req := &dto.EmployeeProfileRequest{
		UserID:        seeded.ID,
		FullName:      "Alice Smith",
		PhoneNumber:   "+77001234567",
		Qualification: "BSc",
	}
	first, err := svc.CompleteEmployeeProfile(req)
	require.NoError(t, err)

	req.FullName = "Alice S. Smith"
	second, err := svc.CompleteEmployeeProfile(req)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "resubmission overwrites the same row")
	assert.Equal(t, "Alice S. Smith", profileRepo.employees[seeded.ID].FullName)
	assert.True(t, userRepo.users[seeded.ID].ProfileCompleted)
}

func TestCompleteEmployeeProfileRejectsEmployer(t *testing.T) {
	svc, userRepo, _ := newProfileFixture()
	seeded := userRepo.add(&models.User{Email: "boss@example.com", Role: models.UserRoleEmployer})

	_, err := svc.CompleteEmployeeProfile(&dto.EmployeeProfileRequest{
		UserID:        seeded.ID,
		FullName:      "Boss",
		PhoneNumber:   "+77001234567",
		Qualification: "MBA",
	})
	assert.ErrorIs(t, err, apperrors.ErrRoleProfileMismatch)
}

func TestCompleteEmployeeProfileBeforeRoleSelection(t *testing.T) {
	svc, userRepo, _ := newProfileFixture()
	seeded := userRepo.add(&models.User{Email: "alice@example.com"})

	_, err := svc.CompleteEmployeeProfile(&dto.EmployeeProfileRequest{
		UserID:        seeded.ID,
		FullName:      "Alice",
		PhoneNumber:   "+77001234567",
		Qualification: "BSc",
	})
	assert.ErrorIs(t, err, apperrors.ErrRoleProfileMismatch)
	assert.False(t, userRepo.users[seeded.ID].ProfileCompleted)
}

func TestCompleteEmployeeProfileUnknownUser(t *testing.T) {
	svc, _, _ := newProfileFixture()

	_, err := svc.CompleteEmployeeProfile(&dto.EmployeeProfileRequest{
		UserID:        "missing",
		FullName:      "Nobody",
		PhoneNumber:   "+77000000000",
		Qualification: "None",
	})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestCompleteEmployerProfile(t *testing.T) {
	svc, userRepo, _ := newProfileFixture()
	seeded := userRepo.add(&models.User{Email: "boss@example.com", Role: models.UserRoleEmployer})

	profile, err := svc.CompleteEmployerProfile(&dto.EmployerProfileRequest{
		UserID:         seeded.ID,
		CompanyName:    "Acme Inc.",
		EmployerName:   "Boss",
		PhoneNumber:    "+77001234567",
		CompanyAddress: "1 Main St",
		BusinessType:   "IT",
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Inc.", profile.CompanyName)
	assert.Equal(t, "boss@example.com", profile.OfficialEmail)
	assert.True(t, userRepo.users[seeded.ID].ProfileCompleted)
}

func TestCompleteEmployerProfileRejectsEmployee(t *testing.T) {
	svc, userRepo, _ := newProfileFixture()
	seeded := userRepo.add(&models.User{Email: "alice@example.com", Role: models.UserRoleEmployee})

	_, err := svc.CompleteEmployerProfile(&dto.EmployerProfileRequest{
		UserID:         seeded.ID,
		CompanyName:    "Acme Inc.",
		EmployerName:   "Alice",
		PhoneNumber:    "+77001234567",
		CompanyAddress: "1 Main St",
		BusinessType:   "IT",
	})
	assert.ErrorIs(t, err, apperrors.ErrRoleProfileMismatch)
}

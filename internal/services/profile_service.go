package services

import (
	"joblink_backend/internal/models"
	"joblink_backend/internal/repositories"
	"joblink_backend/internal/services/dto"
	"joblink_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type ProfileService interface {
	CompleteEmployeeProfile(req *dto.EmployeeProfileRequest) (*models.EmployeeProfile, error)
	CompleteEmployerProfile(req *dto.EmployerProfileRequest) (*models.EmployerProfile, error)
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
	userRepo    repositories.UserRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository, userRepo repositories.UserRepository) ProfileService {
	return &ProfileServiceImpl{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

// CompleteEmployeeProfile performs the RoleChosen -> ProfileComplete
// transition for a job seeker. Resubmission overwrites the profile wholesale
// and leaves profileCompleted true.
func (s *ProfileServiceImpl) CompleteEmployeeProfile(req *dto.EmployeeProfileRequest) (*models.EmployeeProfile, error) {
	user, err := s.lookupUser(req.UserID, models.UserRoleEmployee)
	if err != nil {
		return nil, err
	}

	skills := req.Skills
	if skills == nil {
		skills = []string{}
	}

	profile := &models.EmployeeProfile{
		UserID:        user.ID,
		FullName:      req.FullName,
		Email:         user.Email,
		PhoneNumber:   req.PhoneNumber,
		Skills:        datatypes.JSONSlice[string](skills),
		Qualification: req.Qualification,
		Experience:    req.Experience,
	}

	if err := s.profileRepo.UpsertEmployee(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if err := s.userRepo.MarkProfileCompleted(user.ID); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return profile, nil
}

// CompleteEmployerProfile is the employer-side counterpart.
func (s *ProfileServiceImpl) CompleteEmployerProfile(req *dto.EmployerProfileRequest) (*models.EmployerProfile, error) {
	user, err := s.lookupUser(req.UserID, models.UserRoleEmployer)
	if err != nil {
		return nil, err
	}

	profile := &models.EmployerProfile{
		UserID:           user.ID,
		CompanyName:      req.CompanyName,
		EmployerName:     req.EmployerName,
		OfficialEmail:    user.Email,
		PhoneNumber:      req.PhoneNumber,
		CompanyAddress:   req.CompanyAddress,
		BusinessType:     req.BusinessType,
		HRContactDetails: req.HRContactDetails,
		CompanyLogo:      req.CompanyLogo,
	}

	if err := s.profileRepo.UpsertEmployer(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if err := s.userRepo.MarkProfileCompleted(user.ID); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return profile, nil
}

// lookupUser resolves the account and checks the submitted profile matches
// the role the account has chosen.
func (s *ProfileServiceImpl) lookupUser(userID string, want models.UserRole) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if user.Role != want {
		return nil, apperrors.ErrRoleProfileMismatch
	}
	return user, nil
}

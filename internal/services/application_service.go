package services

import (
	"joblink_backend/internal/models"
	"joblink_backend/internal/repositories"
	"joblink_backend/internal/services/dto"
	"joblink_backend/pkg/apperrors"
)

type ApplicationService interface {
	Apply(req *dto.ApplyRequest) (*models.Application, error)
	ListByApplicant(applicantID string) ([]models.Application, error)
	ListByJob(jobID string) ([]models.Application, error)
	UpdateStatus(id string, req *dto.UpdateApplicationStatusRequest) (*models.Application, error)
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
}

func NewApplicationService(applicationRepo repositories.ApplicationRepository, jobRepo repositories.JobRepository) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
	}
}

// Apply creates a pending application. One application per (job, applicant)
// pair; the composite unique index settles concurrent duplicates.
func (s *ApplicationServiceImpl) Apply(req *dto.ApplyRequest) (*models.Application, error) {
	if _, err := s.jobRepo.FindByID(req.JobID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	application := &models.Application{
		JobID:       req.JobID,
		ApplicantID: req.ApplicantID,
		CoverLetter: req.CoverLetter,
		Status:      models.ApplicationStatusPending,
	}

	if err := s.applicationRepo.Create(application); err != nil {
		if apperrors.Is(err, repositories.ErrApplicationExists) {
			return nil, apperrors.ErrDuplicateApplication
		}
		return nil, apperrors.InternalError(err)
	}
	return application, nil
}

func (s *ApplicationServiceImpl) ListByApplicant(applicantID string) ([]models.Application, error) {
	applications, err := s.applicationRepo.FindByApplicant(applicantID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return applications, nil
}

func (s *ApplicationServiceImpl) ListByJob(jobID string) ([]models.Application, error) {
	applications, err := s.applicationRepo.FindByJob(jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return applications, nil
}

// UpdateStatus moves an application through the review pipeline. Only the
// transitions in the models table are accepted; accepted and rejected are
// terminal. Re-asserting the current status is a no-op success.
func (s *ApplicationServiceImpl) UpdateStatus(id string, req *dto.UpdateApplicationStatusRequest) (*models.Application, error) {
	next := models.ApplicationStatus(req.Status)
	if !next.IsValid() {
		return nil, apperrors.ErrInvalidApplicationStatus
	}

	application, err := s.applicationRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if application.Status == next {
		return application, nil
	}
	if !application.Status.CanTransitionTo(next) {
		return nil, apperrors.ErrInvalidTransition
	}

	updated, err := s.applicationRepo.UpdateStatus(id, next)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return updated, nil
}

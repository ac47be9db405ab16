package services

import (
	"joblink_backend/internal/models"
	"joblink_backend/internal/repositories"
	"joblink_backend/internal/services/dto"
	"joblink_backend/pkg/apperrors"
)

type SavedJobService interface {
	Save(req *dto.SaveJobRequest) (*models.SavedJob, error)
	List(userID string) ([]models.SavedJob, error)
	Unsave(id string) error
}

type SavedJobServiceImpl struct {
	savedJobRepo repositories.SavedJobRepository
	jobRepo      repositories.JobRepository
}

func NewSavedJobService(savedJobRepo repositories.SavedJobRepository, jobRepo repositories.JobRepository) SavedJobService {
	return &SavedJobServiceImpl{
		savedJobRepo: savedJobRepo,
		jobRepo:      jobRepo,
	}
}

func (s *SavedJobServiceImpl) Save(req *dto.SaveJobRequest) (*models.SavedJob, error) {
	if _, err := s.jobRepo.FindByID(req.JobID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	saved := &models.SavedJob{
		UserID: req.UserID,
		JobID:  req.JobID,
	}
	if err := s.savedJobRepo.Create(saved); err != nil {
		if apperrors.Is(err, repositories.ErrAlreadySaved) {
			return nil, apperrors.ErrJobAlreadySaved
		}
		return nil, apperrors.InternalError(err)
	}
	return saved, nil
}

func (s *SavedJobServiceImpl) List(userID string) ([]models.SavedJob, error) {
	saved, err := s.savedJobRepo.FindByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return saved, nil
}

func (s *SavedJobServiceImpl) Unsave(id string) error {
	if err := s.savedJobRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrSavedJobNotFound) {
			return apperrors.ErrSavedJobNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

package services

import (
	"joblink_backend/internal/models"
	"joblink_backend/internal/repositories"
	"joblink_backend/internal/services/dto"
	"joblink_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type JobService interface {
	CreateJob(req *dto.CreateJobRequest) (*models.Job, error)
	ListJobs(query *dto.JobFilterQuery) ([]models.Job, error)
	GetJob(id string) (*models.Job, error)
	ListEmployerJobs(employerID string) ([]models.Job, error)
	UpdateJob(id string, req *dto.UpdateJobRequest) (*models.Job, error)
	DeleteJob(id, actorID string) error
}

type JobServiceImpl struct {
	jobRepo  repositories.JobRepository
	userRepo repositories.UserRepository
}

func NewJobService(jobRepo repositories.JobRepository, userRepo repositories.UserRepository) JobService {
	return &JobServiceImpl{
		jobRepo:  jobRepo,
		userRepo: userRepo,
	}
}

// CreateJob posts a job. Only accounts that have chosen the employer role may
// post; an unknown account is indistinguishable from a non-employer here.
func (s *JobServiceImpl) CreateJob(req *dto.CreateJobRequest) (*models.Job, error) {
	employer, err := s.userRepo.FindByID(req.EmployerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotAnEmployer
		}
		return nil, apperrors.InternalError(err)
	}
	if employer.Role != models.UserRoleEmployer {
		return nil, apperrors.ErrNotAnEmployer
	}

	jobType := models.JobType(req.Type)
	if !jobType.IsValid() {
		return nil, apperrors.ErrInvalidJobType
	}

	skills := req.Skills
	if skills == nil {
		skills = []string{}
	}

	job := &models.Job{
		EmployerID:   employer.ID,
		Title:        req.Title,
		Company:      req.Company,
		Location:     req.Location,
		Type:         jobType,
		Salary:       req.Salary,
		Description:  req.Description,
		Requirements: req.Requirements,
		Skills:       datatypes.JSONSlice[string](skills),
		Experience:   req.Experience,
		Status:       models.JobStatusActive,
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

// ListJobs runs the public listing. Status defaults to active so closed jobs
// drop out of the default view the moment they are toggled.
func (s *JobServiceImpl) ListJobs(query *dto.JobFilterQuery) ([]models.Job, error) {
	filter := repositories.JobFilter{
		Search:   query.Search,
		Location: query.Location,
		Type:     query.Type,
		Status:   query.Status,
	}
	if filter.Status == "" {
		filter.Status = string(models.JobStatusActive)
	}

	jobs, err := s.jobRepo.FindWithFilter(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

func (s *JobServiceImpl) GetJob(id string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) ListEmployerJobs(employerID string) ([]models.Job, error) {
	jobs, err := s.jobRepo.FindByEmployer(employerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

// UpdateJob applies a partial update. When the request carries the caller's
// employer id it must match the job's owner; the id field itself is never
// written.
func (s *JobServiceImpl) UpdateJob(id string, req *dto.UpdateJobRequest) (*models.Job, error) {
	job, err := s.GetJob(id)
	if err != nil {
		return nil, err
	}
	if req.EmployerID != nil && *req.EmployerID != job.EmployerID {
		return nil, apperrors.ErrNotJobOwner
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Company != nil {
		fields["company"] = *req.Company
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.Type != nil {
		if !models.JobType(*req.Type).IsValid() {
			return nil, apperrors.ErrInvalidJobType
		}
		fields["type"] = *req.Type
	}
	if req.Salary != nil {
		fields["salary"] = *req.Salary
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Requirements != nil {
		fields["requirements"] = *req.Requirements
	}
	if req.Skills != nil {
		fields["skills"] = datatypes.JSONSlice[string](*req.Skills)
	}
	if req.Experience != nil {
		fields["experience"] = *req.Experience
	}
	if req.Status != nil {
		if !models.JobStatus(*req.Status).IsValid() {
			return nil, apperrors.ErrInvalidJobStatus
		}
		fields["status"] = *req.Status
	}

	if len(fields) == 0 {
		return job, nil
	}

	updated, err := s.jobRepo.UpdateFields(id, fields)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return updated, nil
}

// DeleteJob removes a job and, via storage-level cascade, its applications
// and bookmarks. A non-empty actorID must match the owner.
func (s *JobServiceImpl) DeleteJob(id, actorID string) error {
	job, err := s.GetJob(id)
	if err != nil {
		return err
	}
	if actorID != "" && actorID != job.EmployerID {
		return apperrors.ErrNotJobOwner
	}

	if err := s.jobRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"joblink_backend/internal/email"
	"joblink_backend/internal/models"
	"joblink_backend/internal/repositories"

	"github.com/google/uuid"
)

// In-memory repositories for service tests. They mirror the contracts of the
// gorm implementations, including the sentinel errors and the uniqueness
// rules the real schema enforces with indexes.

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (r *fakeUserRepo) add(user *models.User) *models.User {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	r.users[user.ID] = user
	return user
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	if user, ok := r.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(user *models.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	r.add(user)
	return nil
}

func (r *fakeUserRepo) UpdateRole(userID string, role models.UserRole) error {
	user, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.Role = role
	return nil
}

func (r *fakeUserRepo) MarkProfileCompleted(userID string) error {
	user, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.ProfileCompleted = true
	return nil
}

func (r *fakeUserRepo) SetResetToken(userID, token string, expiry time.Time) error {
	user, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.ResetToken = token
	user.ResetTokenExp = &expiry
	return nil
}

func (r *fakeUserRepo) FindByResetToken(token string) (*models.User, error) {
	for _, user := range r.users {
		if user.ResetToken != "" && user.ResetToken == token {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) RedeemResetToken(token, passwordHash string) error {
	for _, user := range r.users {
		if user.ResetToken == token && user.ResetTokenExp != nil && user.ResetTokenExp.After(time.Now()) {
			user.PasswordHash = passwordHash
			user.ResetToken = ""
			user.ResetTokenExp = nil
			return nil
		}
	}
	return repositories.ErrUserNotFound
}

type fakeProfileRepo struct {
	employees map[string]*models.EmployeeProfile
	employers map[string]*models.EmployerProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		employees: map[string]*models.EmployeeProfile{},
		employers: map[string]*models.EmployerProfile{},
	}
}

func (r *fakeProfileRepo) UpsertEmployee(profile *models.EmployeeProfile) error {
	if existing, ok := r.employees[profile.UserID]; ok {
		profile.ID = existing.ID
	} else if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	r.employees[profile.UserID] = profile
	return nil
}

func (r *fakeProfileRepo) UpsertEmployer(profile *models.EmployerProfile) error {
	if existing, ok := r.employers[profile.UserID]; ok {
		profile.ID = existing.ID
	} else if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	r.employers[profile.UserID] = profile
	return nil
}

func (r *fakeProfileRepo) FindEmployeeByUserID(userID string) (*models.EmployeeProfile, error) {
	if profile, ok := r.employees[userID]; ok {
		return profile, nil
	}
	return nil, repositories.ErrProfileNotFound
}

func (r *fakeProfileRepo) FindEmployerByUserID(userID string) (*models.EmployerProfile, error) {
	if profile, ok := r.employers[userID]; ok {
		return profile, nil
	}
	return nil, repositories.ErrProfileNotFound
}

type fakeJobRepo struct {
	jobs map[string]*models.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: map[string]*models.Job{}}
}

func (r *fakeJobRepo) Create(job *models.Job) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now()
	}
	r.jobs[job.ID] = job
	return nil
}

func (r *fakeJobRepo) FindByID(id string) (*models.Job, error) {
	if job, ok := r.jobs[id]; ok {
		copied := *job
		return &copied, nil
	}
	return nil, repositories.ErrJobNotFound
}

func (r *fakeJobRepo) FindWithFilter(filter repositories.JobFilter) ([]models.Job, error) {
	var out []models.Job
	for _, job := range r.jobs {
		if filter.Status != "" && string(job.Status) != filter.Status {
			continue
		}
		if filter.Type != "" && string(job.Type) != filter.Type {
			continue
		}
		if filter.Location != "" &&
			!strings.Contains(strings.ToLower(job.Location), strings.ToLower(filter.Location)) {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(job.Title), needle) &&
				!strings.Contains(strings.ToLower(job.Company), needle) &&
				!strings.Contains(strings.ToLower(job.Description), needle) {
				continue
			}
		}
		out = append(out, *job)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeJobRepo) FindByEmployer(employerID string) ([]models.Job, error) {
	var out []models.Job
	for _, job := range r.jobs {
		if job.EmployerID == employerID {
			out = append(out, *job)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeJobRepo) UpdateFields(id string, fields map[string]interface{}) (*models.Job, error) {
	job, ok := r.jobs[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	for key, value := range fields {
		switch key {
		case "title":
			job.Title = value.(string)
		case "company":
			job.Company = value.(string)
		case "location":
			job.Location = value.(string)
		case "type":
			job.Type = models.JobType(value.(string))
		case "salary":
			job.Salary = value.(string)
		case "description":
			job.Description = value.(string)
		case "requirements":
			job.Requirements = value.(string)
		case "experience":
			job.Experience = value.(string)
		case "status":
			job.Status = models.JobStatus(value.(string))
		case "skills":
			// stored as datatypes.JSONSlice[string], a []string underneath
		default:
			return nil, fmt.Errorf("unexpected update field %q", key)
		}
	}
	copied := *job
	return &copied, nil
}

func (r *fakeJobRepo) Delete(id string) error {
	if _, ok := r.jobs[id]; !ok {
		return repositories.ErrJobNotFound
	}
	delete(r.jobs, id)
	return nil
}

type fakeApplicationRepo struct {
	applications map[string]*models.Application
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{applications: map[string]*models.Application{}}
}

func (r *fakeApplicationRepo) Create(application *models.Application) error {
	for _, existing := range r.applications {
		if existing.JobID == application.JobID && existing.ApplicantID == application.ApplicantID {
			return repositories.ErrApplicationExists
		}
	}
	if application.ID == "" {
		application.ID = uuid.NewString()
	}
	application.AppliedAt = time.Now()
	r.applications[application.ID] = application
	return nil
}

func (r *fakeApplicationRepo) FindByID(id string) (*models.Application, error) {
	if application, ok := r.applications[id]; ok {
		copied := *application
		return &copied, nil
	}
	return nil, repositories.ErrApplicationNotFound
}

func (r *fakeApplicationRepo) FindByApplicant(applicantID string) ([]models.Application, error) {
	var out []models.Application
	for _, application := range r.applications {
		if application.ApplicantID == applicantID {
			out = append(out, *application)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AppliedAt.After(out[j].AppliedAt) })
	return out, nil
}

func (r *fakeApplicationRepo) FindByJob(jobID string) ([]models.Application, error) {
	var out []models.Application
	for _, application := range r.applications {
		if application.JobID == jobID {
			out = append(out, *application)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AppliedAt.After(out[j].AppliedAt) })
	return out, nil
}

func (r *fakeApplicationRepo) UpdateStatus(id string, status models.ApplicationStatus) (*models.Application, error) {
	application, ok := r.applications[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	application.Status = status
	copied := *application
	return &copied, nil
}

type fakeSavedJobRepo struct {
	saved map[string]*models.SavedJob
}

func newFakeSavedJobRepo() *fakeSavedJobRepo {
	return &fakeSavedJobRepo{saved: map[string]*models.SavedJob{}}
}

func (r *fakeSavedJobRepo) Create(savedJob *models.SavedJob) error {
	for _, existing := range r.saved {
		if existing.UserID == savedJob.UserID && existing.JobID == savedJob.JobID {
			return repositories.ErrAlreadySaved
		}
	}
	if savedJob.ID == "" {
		savedJob.ID = uuid.NewString()
	}
	savedJob.SavedAt = time.Now()
	r.saved[savedJob.ID] = savedJob
	return nil
}

func (r *fakeSavedJobRepo) FindByUser(userID string) ([]models.SavedJob, error) {
	var out []models.SavedJob
	for _, savedJob := range r.saved {
		if savedJob.UserID == userID {
			out = append(out, *savedJob)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SavedAt.After(out[j].SavedAt) })
	return out, nil
}

func (r *fakeSavedJobRepo) Delete(id string) error {
	if _, ok := r.saved[id]; !ok {
		return repositories.ErrSavedJobNotFound
	}
	delete(r.saved, id)
	return nil
}

// recordingEmailProvider captures outbound reset emails instead of sending.
type recordingEmailProvider struct {
	resetTo    []string
	resetLinks []string
	failSend   bool
}

func (p *recordingEmailProvider) Send(msg *email.Email) error { return nil }

func (p *recordingEmailProvider) SendPasswordReset(to, resetLink string) error {
	if p.failSend {
		return fmt.Errorf("smtp unreachable")
	}
	p.resetTo = append(p.resetTo, to)
	p.resetLinks = append(p.resetLinks, resetLink)
	return nil
}

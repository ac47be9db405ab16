package apperrors

import "net/http"

// Predefined errors for the account, job, application and saved-job domains.
// Messages match what the client shows verbatim, so keep them short and free
// of internal detail.

// --- Accounts & auth ---

var ErrInvalidEmailFormat = New(
	CodeValidationFailed,
	"auth",
	"Invalid email format",
	http.StatusBadRequest,
)

var ErrPasswordMismatch = New(
	CodeValidationFailed,
	"auth",
	"Passwords do not match",
	http.StatusBadRequest,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"auth",
	"Password must be at least 6 characters long",
	http.StatusBadRequest,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already registered",
	http.StatusConflict,
)

// ErrInvalidCredentials is returned both for an unknown email and for a wrong
// password. The two cases must stay indistinguishable to the caller.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrUserNotFound = New(
	CodeNotFound,
	"user",
	"User not found",
	http.StatusNotFound,
)

var ErrInvalidRole = New(
	CodeValidationFailed,
	"user",
	`Invalid role. Must be "employee" or "employer"`,
	http.StatusBadRequest,
)

// ErrRoleAlreadySet guards the single-assignment role rule: once an account
// has chosen a role there is no change-role path.
var ErrRoleAlreadySet = New(
	CodeConflict,
	"user",
	"Role has already been chosen for this account",
	http.StatusConflict,
)

// ErrRoleProfileMismatch is returned when a profile is submitted for a role
// the account has not chosen.
var ErrRoleProfileMismatch = New(
	CodeInvalidOperation,
	"profile",
	"Profile type does not match the account role",
	http.StatusBadRequest,
)

var ErrInvalidResetToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired reset token",
	http.StatusBadRequest,
)

// --- Jobs ---

var ErrJobNotFound = New(
	CodeNotFound,
	"job",
	"Job not found",
	http.StatusNotFound,
)

var ErrNotAnEmployer = New(
	CodeForbidden,
	"job",
	"Only employers can post jobs",
	http.StatusForbidden,
)

var ErrNotJobOwner = New(
	CodeForbidden,
	"job",
	"Only the employer who posted this job can modify it",
	http.StatusForbidden,
)

var ErrInvalidJobType = New(
	CodeValidationFailed,
	"job",
	"Invalid job type",
	http.StatusBadRequest,
)

var ErrInvalidJobStatus = New(
	CodeValidationFailed,
	"job",
	`Job status must be "active" or "closed"`,
	http.StatusBadRequest,
)

// --- Applications ---

var ErrApplicationNotFound = New(
	CodeNotFound,
	"application",
	"Application not found",
	http.StatusNotFound,
)

var ErrDuplicateApplication = New(
	CodeAlreadyExists,
	"application",
	"You have already applied for this job",
	http.StatusConflict,
)

var ErrInvalidApplicationStatus = New(
	CodeValidationFailed,
	"application",
	"Invalid application status",
	http.StatusBadRequest,
)

// ErrInvalidTransition rejects status changes outside the review pipeline
// (e.g. reopening a rejected application).
var ErrInvalidTransition = New(
	CodeInvalidStatus,
	"application",
	"Application status cannot move to the requested state",
	http.StatusConflict,
)

// --- Saved jobs ---

var ErrSavedJobNotFound = New(
	CodeNotFound,
	"saved_job",
	"Saved job not found",
	http.StatusNotFound,
)

var ErrJobAlreadySaved = New(
	CodeAlreadyExists,
	"saved_job",
	"Job already saved",
	http.StatusConflict,
)

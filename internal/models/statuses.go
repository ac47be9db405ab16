package models

type UserRole string
type JobStatus string
type JobType string
type ApplicationStatus string

const (
	// UserRoleNone is the state between registration and role selection.
	UserRoleNone     UserRole = ""
	UserRoleEmployee UserRole = "employee"
	UserRoleEmployer UserRole = "employer"

	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"

	JobTypeFullTime   JobType = "Full-Time"
	JobTypePartTime   JobType = "Part-Time"
	JobTypeContract   JobType = "Contract"
	JobTypeInternship JobType = "Internship"
	JobTypeFreelance  JobType = "Freelance"

	ApplicationStatusPending     ApplicationStatus = "pending"
	ApplicationStatusReviewed    ApplicationStatus = "reviewed"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
	ApplicationStatusAccepted    ApplicationStatus = "accepted"
)

// IsSelectable reports whether r is a role an account may choose.
func (r UserRole) IsSelectable() bool {
	return r == UserRoleEmployee || r == UserRoleEmployer
}

func (s JobStatus) IsValid() bool {
	return s == JobStatusActive || s == JobStatusClosed
}

func (t JobType) IsValid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship, JobTypeFreelance:
		return true
	}
	return false
}

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewed, ApplicationStatusShortlisted,
		ApplicationStatusRejected, ApplicationStatusAccepted:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition may leave s.
func (s ApplicationStatus) IsTerminal() bool {
	return s == ApplicationStatusAccepted || s == ApplicationStatusRejected
}

// applicationTransitions is the review pipeline: applications advance one step
// at a time and may be rejected from any non-terminal state. Accepted and
// rejected are terminal.
var applicationTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationStatusPending:     {ApplicationStatusReviewed, ApplicationStatusRejected},
	ApplicationStatusReviewed:    {ApplicationStatusShortlisted, ApplicationStatusRejected},
	ApplicationStatusShortlisted: {ApplicationStatusAccepted, ApplicationStatusRejected},
}

// CanTransitionTo reports whether an application in state s may move to next.
// A same-state "transition" is allowed so that repeated updates stay
// idempotent.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range applicationTransitions[s] {
		if next == allowed {
			return true
		}
	}
	return false
}

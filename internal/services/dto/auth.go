package dto

import "joblink_backend/internal/models"

type RegisterRequest struct {
	Email           string `json:"email" validate:"required,simple_email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type SetRoleRequest struct {
	UserID string `json:"userId" validate:"required"`
	Role   string `json:"role" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required"`
}

type ResetPasswordRequest struct {
	Token           string `json:"token" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// UserResponse is the account view returned by auth endpoints. Role is a
// pointer so an account that has not chosen one renders as JSON null rather
// than an empty string.
type UserResponse struct {
	ID               string           `json:"id"`
	Email            string           `json:"email"`
	Role             *models.UserRole `json:"role"`
	ProfileCompleted bool             `json:"profileCompleted"`
}

// NewUserResponse builds the response view of user.
func NewUserResponse(user *models.User) *UserResponse {
	resp := &UserResponse{
		ID:               user.ID,
		Email:            user.Email,
		ProfileCompleted: user.ProfileCompleted,
	}
	if user.Role != models.UserRoleNone {
		role := user.Role
		resp.Role = &role
	}
	return resp
}

// RegisteredUserResponse is the slimmer view returned right after
// registration, before any role exists.
type RegisteredUserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

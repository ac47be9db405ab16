package services

import (
	"fmt"
	"strings"
	"time"

	"joblink_backend/internal/auth"
	"joblink_backend/internal/config"
	"joblink_backend/internal/email"
	"joblink_backend/internal/logger"
	"joblink_backend/internal/models"
	"joblink_backend/internal/repositories"
	"joblink_backend/internal/services/dto"
	"joblink_backend/pkg/apperrors"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.RegisteredUserResponse, error)
	Login(req *dto.LoginRequest) (*dto.UserResponse, error)
	SetRole(req *dto.SetRoleRequest) (*dto.UserResponse, error)
	RequestPasswordReset(emailAddr string) error
	ResetPassword(req *dto.ResetPasswordRequest) error
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	emailProvider email.Provider
	cfg           *config.Config
}

func NewAuthService(userRepo repositories.UserRepository, emailProvider email.Provider, cfg *config.Config) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		emailProvider: emailProvider,
		cfg:           cfg,
	}
}

// NormalizeEmail is the canonical form emails are stored and looked up in.
func NormalizeEmail(e string) string {
	return strings.ToLower(strings.TrimSpace(e))
}

// Register creates an account in the initial lifecycle state: no role, no
// profile. Email format is checked by the handler's validator; uniqueness is
// enforced by the storage layer.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.RegisteredUserResponse, error) {
	if req.Password != req.ConfirmPassword {
		return nil, apperrors.ErrPasswordMismatch
	}
	if len(req.Password) < auth.MinPasswordLength {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        NormalizeEmail(req.Email),
		PasswordHash: hash,
		Role:         models.UserRoleNone,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.RegisteredUserResponse{ID: user.ID, Email: user.Email}, nil
}

// Login verifies credentials. An unknown email and a wrong password fail
// identically so the response never reveals which one it was.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByEmail(NormalizeEmail(req.Email))
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return dto.NewUserResponse(user), nil
}

// SetRole performs the Registered -> RoleChosen transition. The role is
// single-assignment: re-submitting the same role is an idempotent success,
// changing it is rejected.
func (s *AuthServiceImpl) SetRole(req *dto.SetRoleRequest) (*dto.UserResponse, error) {
	role := models.UserRole(req.Role)
	if !role.IsSelectable() {
		return nil, apperrors.ErrInvalidRole
	}

	user, err := s.userRepo.FindByID(req.UserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if user.Role != models.UserRoleNone {
		if user.Role == role {
			return dto.NewUserResponse(user), nil
		}
		return nil, apperrors.ErrRoleAlreadySet
	}

	if err := s.userRepo.UpdateRole(user.ID, role); err != nil {
		return nil, apperrors.InternalError(err)
	}
	user.Role = role

	return dto.NewUserResponse(user), nil
}

// RequestPasswordReset issues a fresh single-use token and mails the reset
// link. Issuing again simply replaces the previous token.
func (s *AuthServiceImpl) RequestPasswordReset(emailAddr string) error {
	user, err := s.userRepo.FindByEmail(NormalizeEmail(emailAddr))
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.New(apperrors.CodeNotFound, "auth", "No account found with this email", 404)
		}
		return apperrors.InternalError(err)
	}

	token, err := auth.GenerateResetToken()
	if err != nil {
		return apperrors.InternalError(err)
	}

	ttl := time.Duration(s.cfg.Reset.TokenTTLMinutes) * time.Minute
	expiry := time.Now().Add(ttl)
	if err := s.userRepo.SetResetToken(user.ID, token, expiry); err != nil {
		return apperrors.InternalError(err)
	}

	resetLink := fmt.Sprintf("%s?token=%s", s.cfg.Reset.BaseURL, token)
	if err := s.emailProvider.SendPasswordReset(user.Email, resetLink); err != nil {
		logger.Error("Failed to send password reset email", "error", err, "email", user.Email)
		return apperrors.Wrap(err, apperrors.CodeInternalError, "email",
			"Error sending reset email. Make sure email is configured.", 500)
	}

	return nil
}

// ResetPassword redeems a token. The repository clears the token in the same
// update that replaces the hash, so a token redeems at most once.
func (s *AuthServiceImpl) ResetPassword(req *dto.ResetPasswordRequest) error {
	if req.NewPassword != req.ConfirmPassword {
		return apperrors.ErrPasswordMismatch
	}
	if len(req.NewPassword) < auth.MinPasswordLength {
		return apperrors.ErrWeakPassword
	}

	user, err := s.userRepo.FindByResetToken(req.Token)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrInvalidResetToken
		}
		return apperrors.InternalError(err)
	}
	if user.ResetTokenExp == nil || !user.ResetTokenExp.After(time.Now()) {
		return apperrors.ErrInvalidResetToken
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.RedeemResetToken(req.Token, hash); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			// Redeemed or expired between the read and the update.
			return apperrors.ErrInvalidResetToken
		}
		return apperrors.InternalError(err)
	}

	return nil
}

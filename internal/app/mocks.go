package app

import (
	"joblink_backend/internal/email"
	"joblink_backend/internal/logger"
)

// MockEmailProvider stands in when SMTP is not configured. Messages are
// logged instead of delivered so password-reset flows stay testable locally.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(msg *email.Email) error {
	logger.Info("Mock email send", "to", msg.To, "subject", msg.Subject)
	return nil
}

func (m *MockEmailProvider) SendPasswordReset(to, resetLink string) error {
	logger.Info("Mock password reset email", "to", to, "resetLink", resetLink)
	return nil
}

package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPProvider sends mail over SMTP via gomail.
type SMTPProvider struct {
	config Config
}

func NewSMTPProvider(config Config) (*SMTPProvider, error) {
	if config.Host == "" || config.Port == 0 {
		return nil, fmt.Errorf("smtp host and port are required")
	}
	if config.FromEmail == "" {
		return nil, fmt.Errorf("from email is required")
	}
	return &SMTPProvider{config: config}, nil
}

func (p *SMTPProvider) Send(email *Email) error {
	if len(email.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	from := email.From
	if from == "" {
		from = p.config.FromEmail
	}

	m := gomail.NewMessage()
	if p.config.FromName != "" {
		m.SetAddressHeader("From", from, p.config.FromName)
	} else {
		m.SetHeader("From", from)
	}
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	if email.HTMLBody != "" {
		m.SetBody("text/html", email.HTMLBody)
		if email.Body != "" {
			m.AddAlternative("text/plain", email.Body)
		}
	} else {
		m.SetBody("text/plain", email.Body)
	}

	d := gomail.NewDialer(p.config.Host, p.config.Port, p.config.Username, p.config.Password)
	return d.DialAndSend(m)
}

func (p *SMTPProvider) SendPasswordReset(to, resetLink string) error {
	html, err := RenderResetPassword(ResetPasswordData{
		ResetLink:  resetLink,
		ExpiryText: "1 hour",
	})
	if err != nil {
		return fmt.Errorf("failed to render reset template: %w", err)
	}

	return p.Send(&Email{
		To:       []string{to},
		Subject:  "Password Reset Request - JobLink",
		HTMLBody: html,
	})
}

package email

// Email is a single outbound message.
type Email struct {
	From     string
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// Config is the SMTP provider configuration.
type Config struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// ResetPasswordData feeds the password-reset template.
type ResetPasswordData struct {
	ResetLink  string
	ExpiryText string
}

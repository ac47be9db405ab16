package email

// Provider sends outbound mail. Delivery guarantees are the provider's
// problem; callers treat a returned error as "not sent".
type Provider interface {
	// Send delivers a prepared message.
	Send(email *Email) error

	// SendPasswordReset delivers the reset link for the account behind to.
	SendPasswordReset(to, resetLink string) error
}

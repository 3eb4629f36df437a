package email

// Provider sends outgoing mail. Implementations: SMTPProvider for real
// delivery, MockProvider in tests and local development.
type Provider interface {
	Send(email *Email) error

	// SendPaymentReceipt notifies a user that their token purchase
	// settled.
	SendPaymentReceipt(to string, gatewayID string, amount float64, currency string, tokens int) error

	Validate() error
}

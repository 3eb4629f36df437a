package app

import "careerpilot_backend/internal/email"

// MockEmailProvider is used in tests and local development.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(msg *email.Email) error { return nil }
func (m *MockEmailProvider) SendPaymentReceipt(to string, gatewayID string, amount float64, currency string, tokens int) error {
	return nil
}
func (m *MockEmailProvider) Validate() error { return nil }

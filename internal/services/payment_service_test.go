package services_test

import (
	"testing"

	"careerpilot_backend/internal/email"
	"careerpilot_backend/internal/models"
	"careerpilot_backend/internal/repositories"
	"careerpilot_backend/internal/services"
	"careerpilot_backend/pkg/apperrors"
	"careerpilot_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// recordingEmailProvider counts receipts so tests can assert exactly-once
// delivery behavior.
type recordingEmailProvider struct {
	receipts int
}

func (p *recordingEmailProvider) Send(msg *email.Email) error { return nil }
func (p *recordingEmailProvider) SendPaymentReceipt(to string, gatewayID string, amount float64, currency string, tokens int) error {
	p.receipts++
	return nil
}
func (p *recordingEmailProvider) Validate() error { return nil }

func newPaymentService(t *testing.T) (*services.PaymentService, *gorm.DB, *recordingEmailProvider) {
	db := helpers.NewTestDB(t)
	mail := &recordingEmailProvider{}
	svc := services.NewPaymentService(
		repositories.NewPaymentRepository(db),
		repositories.NewUserRepository(db),
		mail,
	)
	return svc, db, mail
}

func TestPaymentService_SignatureRoundTrip(t *testing.T) {
	svc, _, _ := newPaymentService(t)

	sig := svc.Sign("pay_sig_001", models.PaymentStatusCompleted, 499.00)
	assert.True(t, svc.VerifySignature("pay_sig_001", models.PaymentStatusCompleted, 499.00, sig))

	// Any field change invalidates the signature.
	assert.False(t, svc.VerifySignature("pay_sig_002", models.PaymentStatusCompleted, 499.00, sig))
	assert.False(t, svc.VerifySignature("pay_sig_001", models.PaymentStatusFailed, 499.00, sig))
	assert.False(t, svc.VerifySignature("pay_sig_001", models.PaymentStatusCompleted, 500.00, sig))
}

func TestPaymentService_WebhookRejectsBadSignature(t *testing.T) {
	svc, db, mail := newPaymentService(t)

	user := helpers.CreateUser(t, db, &models.User{Tokens: 10000})
	_, err := svc.Record(user.ID, "pay_ws_001", 499, "", 500)
	require.NoError(t, err)

	_, err = svc.HandleWebhook("pay_ws_001", models.PaymentStatusCompleted, 499, "forged")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)

	// Nothing settled, no receipt.
	assert.Equal(t, 10000, helpers.Balance(t, db, user.ID))
	assert.Zero(t, mail.receipts)
}

func TestPaymentService_WebhookSettlesOnce(t *testing.T) {
	svc, db, mail := newPaymentService(t)

	user := helpers.CreateUser(t, db, &models.User{Tokens: 10000})
	_, err := svc.Record(user.ID, "pay_ws_002", 499, "", 500)
	require.NoError(t, err)

	sig := svc.Sign("pay_ws_002", models.PaymentStatusCompleted, 499)

	payment, err := svc.HandleWebhook("pay_ws_002", models.PaymentStatusCompleted, 499, sig)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, payment.Status)
	assert.Equal(t, 10500, helpers.Balance(t, db, user.ID))
	assert.Equal(t, 1, mail.receipts)

	// Re-delivery: same response, no second credit or receipt.
	payment, err = svc.HandleWebhook("pay_ws_002", models.PaymentStatusCompleted, 499, sig)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, payment.Status)
	assert.Equal(t, 10500, helpers.Balance(t, db, user.ID))
	assert.Equal(t, 1, mail.receipts)
}

func TestPaymentService_WebhookRejectsPendingStatus(t *testing.T) {
	svc, _, _ := newPaymentService(t)

	sig := svc.Sign("pay_ws_003", models.PaymentStatusPending, 100)
	_, err := svc.HandleWebhook("pay_ws_003", models.PaymentStatusPending, 100, sig)
	assert.Error(t, err)
}

func TestPaymentService_RecordRejectsDuplicates(t *testing.T) {
	svc, db, _ := newPaymentService(t)

	user := helpers.CreateUser(t, db, &models.User{})
	_, err := svc.Record(user.ID, "pay_rd_001", 100, "INR", 100)
	require.NoError(t, err)

	_, err = svc.Record(user.ID, "pay_rd_001", 100, "INR", 100)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeConflict, appErr.Code)
}

func TestPaymentService_RecordValidatesAmounts(t *testing.T) {
	svc, db, _ := newPaymentService(t)

	user := helpers.CreateUser(t, db, &models.User{})
	_, err := svc.Record(user.ID, "pay_val_001", 0, "INR", 100)
	assert.Error(t, err)
	_, err = svc.Record(user.ID, "pay_val_002", 100, "INR", 0)
	assert.Error(t, err)
}

package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"careerpilot_backend/internal/config"
	"careerpilot_backend/internal/email"
	"careerpilot_backend/internal/logger"
	"careerpilot_backend/internal/models"
	"careerpilot_backend/internal/repositories"
	"careerpilot_backend/pkg/apperrors"
)

type PaymentService struct {
	paymentRepo repositories.PaymentRepository
	userRepo    repositories.UserRepository
	emailSender email.Provider
}

func NewPaymentService(paymentRepo repositories.PaymentRepository, userRepo repositories.UserRepository, emailSender email.Provider) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
		emailSender: emailSender,
	}
}

// Record stores a PENDING payment for a gateway transaction. A second
// call with the same gateway id is rejected; webhook re-delivery for an
// order we already know about is handled in Settle.
func (s *PaymentService) Record(userID, gatewayID string, amount float64, currency string, tokensAdded int) (*models.Payment, error) {
	if amount <= 0 || tokensAdded <= 0 {
		return nil, apperrors.NewBadRequestError("Payment amount and token count must be positive")
	}
	if currency == "" {
		currency = config.GetConfig().Payment.Currency
	}

	payment := &models.Payment{
		UserID:      userID,
		GatewayID:   gatewayID,
		Amount:      amount,
		Currency:    currency,
		Status:      models.PaymentStatusPending,
		TokensAdded: tokensAdded,
	}

	if err := s.paymentRepo.Create(payment); err != nil {
		if err == repositories.ErrDuplicatePayment {
			return nil, apperrors.ErrDuplicatePayment
		}
		return nil, apperrors.InternalError(err)
	}

	logger.Info("payment recorded", "gateway_id", gatewayID, "user_id", userID, "amount", amount)
	return payment, nil
}

// HandleWebhook verifies the gateway signature and settles the payment.
// Settlement is idempotent under at-least-once delivery: a repeated
// COMPLETED notification credits nothing the second time.
func (s *PaymentService) HandleWebhook(gatewayID string, status models.PaymentStatus, amount float64, signature string) (*models.Payment, error) {
	if !status.IsFinal() {
		return nil, apperrors.ErrInvalidStatus("payment", "Webhook status must be COMPLETED or FAILED")
	}
	if !s.VerifySignature(gatewayID, status, amount, signature) {
		return nil, apperrors.ErrInvalidWebhookSignature
	}

	result, err := s.paymentRepo.Settle(gatewayID, status)
	if err != nil {
		if err == repositories.ErrPaymentNotFound {
			return nil, apperrors.ErrPaymentNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if result.AlreadySettled {
		logger.Info("webhook re-delivery ignored", "gateway_id", gatewayID, "status", result.Payment.Status)
		return result.Payment, nil
	}

	logger.Info("payment settled",
		"gateway_id", gatewayID, "status", status, "tokens_credited", result.TokensCredited)

	if result.TokensCredited {
		s.sendReceipt(result.Payment)
	}
	return result.Payment, nil
}

func (s *PaymentService) GetByGatewayID(gatewayID string) (*models.Payment, error) {
	payment, err := s.paymentRepo.FindByGatewayID(gatewayID)
	if err != nil {
		if err == repositories.ErrPaymentNotFound {
			return nil, apperrors.ErrPaymentNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return payment, nil
}

func (s *PaymentService) History(userID string, limit, offset int) ([]models.Payment, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	payments, err := s.paymentRepo.FindByUser(userID, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return payments, nil
}

// VerifySignature checks the HMAC-SHA256 the gateway computes over
// "gatewayID|status|amount" with the shared webhook secret.
func (s *PaymentService) VerifySignature(gatewayID string, status models.PaymentStatus, amount float64, signature string) bool {
	expected := s.Sign(gatewayID, status, amount)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// Sign computes the webhook signature. Exposed for the test suite, which
// plays the gateway's role.
func (s *PaymentService) Sign(gatewayID string, status models.PaymentStatus, amount float64) string {
	secret := config.GetConfig().Payment.WebhookSecret
	payload := fmt.Sprintf("%s|%s|%.2f", gatewayID, status, amount)

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

func (s *PaymentService) sendReceipt(payment *models.Payment) {
	user, err := s.userRepo.FindByID(payment.UserID)
	if err != nil {
		logger.WithError(err).Warn("receipt skipped, user lookup failed", "user_id", payment.UserID)
		return
	}

	err = s.emailSender.SendPaymentReceipt(user.Email, payment.GatewayID, payment.Amount, payment.Currency, payment.TokensAdded)
	if err != nil {
		// Receipt delivery is best effort; the settlement already
		// committed.
		logger.WithError(err).Warn("failed to send payment receipt", "gateway_id", payment.GatewayID)
	}
}

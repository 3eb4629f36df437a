package repositories

import (
	"errors"
	"time"

	"careerpilot_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrDuplicatePayment = errors.New("payment with this gateway id already recorded")
	ErrPaymentSettled   = errors.New("payment already settled")
)

// SettleResult reports what a settlement call actually did, so webhook
// re-delivery can be answered without side effects.
type SettleResult struct {
	Payment        *models.Payment
	TokensCredited bool
	AlreadySettled bool
}

type PaymentRepository interface {
	// Create records a PENDING payment. The unique gateway id is the
	// idempotency guard against duplicate webhook delivery.
	Create(payment *models.Payment) error

	FindByID(id string) (*models.Payment, error)
	FindByGatewayID(gatewayID string) (*models.Payment, error)
	FindByUser(userID string, limit, offset int) ([]models.Payment, error)

	// Settle transitions the payment identified by gatewayID from PENDING
	// to finalStatus. On COMPLETED it credits the owner's token balance and
	// appends the ledger row in the same transaction, exactly once: a
	// re-delivered COMPLETED webhook finds the row already final and
	// returns AlreadySettled without touching the balance.
	Settle(gatewayID string, finalStatus models.PaymentStatus) (*SettleResult, error)
}

type PaymentRepositoryImpl struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &PaymentRepositoryImpl{db: db}
}

func (r *PaymentRepositoryImpl) Create(payment *models.Payment) error {
	var existing models.Payment
	if err := r.db.Where("gateway_id = ?", payment.GatewayID).First(&existing).Error; err == nil {
		return ErrDuplicatePayment
	}

	if payment.Status == "" {
		payment.Status = models.PaymentStatusPending
	}
	if payment.Currency == "" {
		payment.Currency = "INR"
	}
	return r.db.Create(payment).Error
}

func (r *PaymentRepositoryImpl) FindByID(id string) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.First(&payment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepositoryImpl) FindByGatewayID(gatewayID string) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.First(&payment, "gateway_id = ?", gatewayID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepositoryImpl) FindByUser(userID string, limit, offset int) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&payments).Error
	return payments, err
}

func (r *PaymentRepositoryImpl) Settle(gatewayID string, finalStatus models.PaymentStatus) (*SettleResult, error) {
	if !finalStatus.IsFinal() {
		return nil, errors.New("settlement status must be COMPLETED or FAILED")
	}

	result := &SettleResult{}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()

		// Conditional transition away from PENDING. RowsAffected == 0
		// means either an unknown gateway id or a webhook we already
		// processed; both are resolved by re-reading the row.
		update := tx.Model(&models.Payment{}).
			Where("gateway_id = ? AND status = ?", gatewayID, models.PaymentStatusPending).
			Updates(map[string]interface{}{
				"status":     finalStatus,
				"settled_at": now,
				"updated_at": now,
			})
		if update.Error != nil {
			return update.Error
		}

		var payment models.Payment
		if err := tx.First(&payment, "gateway_id = ?", gatewayID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPaymentNotFound
			}
			return err
		}
		result.Payment = &payment

		if update.RowsAffected == 0 {
			result.AlreadySettled = true
			return nil
		}

		if finalStatus != models.PaymentStatusCompleted {
			return nil
		}

		// First COMPLETED transition: credit the purchased tokens and
		// record the ledger row atomically with the status change.
		credit := tx.Model(&models.User{}).
			Where("id = ?", payment.UserID).
			Update("tokens", gorm.Expr("tokens + ?", payment.TokensAdded))
		if credit.Error != nil {
			return credit.Error
		}
		if credit.RowsAffected == 0 {
			return ErrUserNotFound
		}

		txn := &models.TokenTransaction{
			UserID:      payment.UserID,
			Amount:      payment.TokensAdded,
			Description: "Token purchase " + payment.GatewayID,
			FeatureType: "token_purchase",
		}
		if err := tx.Create(txn).Error; err != nil {
			return err
		}

		result.TokensCredited = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

package repositories

import (
	"errors"

	"careerpilot_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrInsufficientTokens = errors.New("insufficient token balance")
	ErrInvalidAmount      = errors.New("amount must be positive")
)

type TokenRepository interface {
	// Debit subtracts amount from the user's balance and appends a negative
	// ledger row. Both happen in one transaction; the balance update is
	// conditional so two concurrent debits cannot overdraw.
	Debit(userID string, amount int, description, featureType string) (*models.TokenTransaction, error)

	// Credit adds amount to the user's balance and appends a positive
	// ledger row in one transaction.
	Credit(userID string, amount int, description, featureType string) (*models.TokenTransaction, error)

	GetBalance(userID string) (int, error)
	FindByUser(userID string, limit, offset int) ([]models.TokenTransaction, error)
	CountByUser(userID string) (int64, error)

	// LedgerSum returns the sum of all transaction amounts for a user.
	// Used to verify the reconciliation invariant: balance equals the
	// signup grant plus this sum.
	LedgerSum(userID string) (int64, error)
}

type TokenRepositoryImpl struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &TokenRepositoryImpl{db: db}
}

func (r *TokenRepositoryImpl) Debit(userID string, amount int, description, featureType string) (*models.TokenTransaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	txn := &models.TokenTransaction{
		UserID:      userID,
		Amount:      -amount,
		Description: description,
		FeatureType: featureType,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		// Conditional update: succeeds only when the balance covers the
		// debit at the moment the row is written, so a concurrent debit
		// that drained the balance first makes this one fail cleanly.
		result := tx.Model(&models.User{}).
			Where("id = ? AND tokens >= ?", userID, amount).
			Update("tokens", gorm.Expr("tokens - ?", amount))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return ErrUserNotFound
			}
			return ErrInsufficientTokens
		}

		return tx.Create(txn).Error
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

func (r *TokenRepositoryImpl) Credit(userID string, amount int, description, featureType string) (*models.TokenTransaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	txn := &models.TokenTransaction{
		UserID:      userID,
		Amount:      amount,
		Description: description,
		FeatureType: featureType,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.User{}).
			Where("id = ?", userID).
			Update("tokens", gorm.Expr("tokens + ?", amount))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}

		return tx.Create(txn).Error
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

func (r *TokenRepositoryImpl) GetBalance(userID string) (int, error) {
	var user models.User
	err := r.db.Select("tokens").First(&user, "id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}
	return user.Tokens, nil
}

func (r *TokenRepositoryImpl) FindByUser(userID string, limit, offset int) ([]models.TokenTransaction, error) {
	var txns []models.TokenTransaction
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&txns).Error
	return txns, err
}

func (r *TokenRepositoryImpl) CountByUser(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.TokenTransaction{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *TokenRepositoryImpl) LedgerSum(userID string) (int64, error) {
	var sum *int64
	err := r.db.Model(&models.TokenTransaction{}).
		Where("user_id = ?", userID).
		Select("SUM(amount)").
		Scan(&sum).Error
	if err != nil {
		return 0, err
	}
	if sum == nil {
		return 0, nil
	}
	return *sum, nil
}

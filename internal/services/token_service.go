package services

import (
	"careerpilot_backend/internal/config"
	"careerpilot_backend/internal/logger"
	"careerpilot_backend/internal/models"
	"careerpilot_backend/internal/repositories"
	"careerpilot_backend/pkg/apperrors"
)

type TokenService struct {
	tokenRepo       repositories.TokenRepository
	featureCostRepo repositories.FeatureCostRepository
}

func NewTokenService(tokenRepo repositories.TokenRepository, featureCostRepo repositories.FeatureCostRepository) *TokenService {
	return &TokenService{
		tokenRepo:       tokenRepo,
		featureCostRepo: featureCostRepo,
	}
}

// DebitForFeature charges the user the configured cost of a feature. When
// feature_costs has no row for the feature the configured default cost
// applies.
func (s *TokenService) DebitForFeature(userID, feature, description string) (*models.TokenTransaction, error) {
	cost, err := s.FeatureCost(feature)
	if err != nil {
		return nil, err
	}
	return s.Debit(userID, cost, description, feature)
}

// FeatureCost resolves the token cost of a feature, falling back to the
// configured default when the lookup table has no entry.
func (s *TokenService) FeatureCost(feature string) (int, error) {
	row, err := s.featureCostRepo.FindByName(feature)
	if err != nil {
		if err == repositories.ErrFeatureCostNotFound {
			fallback := config.GetConfig().Tokens.DefaultFeatureCost
			logger.Warn("feature cost missing, using default", "feature", feature, "cost", fallback)
			return fallback, nil
		}
		return 0, apperrors.InternalError(err)
	}
	return row.Cost, nil
}

func (s *TokenService) Debit(userID string, amount int, description, featureType string) (*models.TokenTransaction, error) {
	txn, err := s.tokenRepo.Debit(userID, amount, description, featureType)
	if err != nil {
		switch err {
		case repositories.ErrInsufficientTokens:
			return nil, apperrors.ErrInsufficientTokens
		case repositories.ErrInvalidAmount:
			return nil, apperrors.ErrInvalidTokenAmount
		case repositories.ErrUserNotFound:
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	logger.Info("tokens debited", "user_id", userID, "amount", amount, "feature", featureType)
	return txn, nil
}

func (s *TokenService) Credit(userID string, amount int, description, featureType string) (*models.TokenTransaction, error) {
	txn, err := s.tokenRepo.Credit(userID, amount, description, featureType)
	if err != nil {
		switch err {
		case repositories.ErrInvalidAmount:
			return nil, apperrors.ErrInvalidTokenAmount
		case repositories.ErrUserNotFound:
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	logger.Info("tokens credited", "user_id", userID, "amount", amount)
	return txn, nil
}

func (s *TokenService) Balance(userID string) (int, error) {
	balance, err := s.tokenRepo.GetBalance(userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return 0, apperrors.ErrUserNotFound
		}
		return 0, apperrors.InternalError(err)
	}
	return balance, nil
}

func (s *TokenService) History(userID string, limit, offset int) ([]models.TokenTransaction, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	txns, err := s.tokenRepo.FindByUser(userID, limit, offset)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	total, err := s.tokenRepo.CountByUser(userID)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return txns, total, nil
}

// Reconciled checks the soft invariant that the balance equals the signup
// grant plus the ledger sum. Drift indicates an out-of-band balance edit.
func (s *TokenService) Reconciled(userID string) (bool, error) {
	balance, err := s.Balance(userID)
	if err != nil {
		return false, err
	}
	sum, err := s.tokenRepo.LedgerSum(userID)
	if err != nil {
		return false, apperrors.InternalError(err)
	}

	grant := config.GetConfig().Tokens.SignupGrant
	ok := int64(balance) == int64(grant)+sum
	if !ok {
		logger.Warn("token ledger drift detected",
			"user_id", userID, "balance", balance, "ledger_sum", sum, "grant", grant)
	}
	return ok, nil
}

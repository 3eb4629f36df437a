package repositories_test

import (
	"testing"

	"careerpilot_backend/internal/models"
	"careerpilot_backend/internal/repositories"
	"careerpilot_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentRepository_CreateDefaults(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewPaymentRepository(db)

	user := helpers.CreateUser(t, db, &models.User{})
	payment := &models.Payment{
		UserID:      user.ID,
		GatewayID:   "pay_cd_001",
		Amount:      499.00,
		TokensAdded: 500,
	}
	require.NoError(t, repo.Create(payment))

	assert.Equal(t, models.PaymentStatusPending, payment.Status)
	assert.Equal(t, "INR", payment.Currency)
	assert.Nil(t, payment.SettledAt)
}

func TestPaymentRepository_DuplicateGatewayID(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewPaymentRepository(db)

	user := helpers.CreateUser(t, db, &models.User{})
	first := &models.Payment{UserID: user.ID, GatewayID: "pay_dup_001", Amount: 100, TokensAdded: 100}
	require.NoError(t, repo.Create(first))

	second := &models.Payment{UserID: user.ID, GatewayID: "pay_dup_001", Amount: 100, TokensAdded: 100}
	assert.ErrorIs(t, repo.Create(second), repositories.ErrDuplicatePayment)
}

func TestPaymentRepository_SettleCompletedCreditsTokens(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewPaymentRepository(db)
	tokenRepo := repositories.NewTokenRepository(db)

	user := helpers.CreateUser(t, db, &models.User{Tokens: 10000})
	payment := &models.Payment{UserID: user.ID, GatewayID: "pay_ok_001", Amount: 499, TokensAdded: 500}
	require.NoError(t, repo.Create(payment))

	result, err := repo.Settle("pay_ok_001", models.PaymentStatusCompleted)
	require.NoError(t, err)

	assert.True(t, result.TokensCredited)
	assert.False(t, result.AlreadySettled)
	assert.Equal(t, models.PaymentStatusCompleted, result.Payment.Status)
	assert.NotNil(t, result.Payment.SettledAt)
	assert.Equal(t, 10500, helpers.Balance(t, db, user.ID))

	// The credit shows up in the ledger too.
	sum, err := tokenRepo.LedgerSum(user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(500), sum)
}

func TestPaymentRepository_SettleIsIdempotent(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewPaymentRepository(db)

	user := helpers.CreateUser(t, db, &models.User{Tokens: 10000})
	payment := &models.Payment{UserID: user.ID, GatewayID: "pay_idem_001", Amount: 499, TokensAdded: 500}
	require.NoError(t, repo.Create(payment))

	first, err := repo.Settle("pay_idem_001", models.PaymentStatusCompleted)
	require.NoError(t, err)
	assert.True(t, first.TokensCredited)

	// Re-delivered webhook: no second credit, no status change.
	second, err := repo.Settle("pay_idem_001", models.PaymentStatusCompleted)
	require.NoError(t, err)
	assert.True(t, second.AlreadySettled)
	assert.False(t, second.TokensCredited)
	assert.Equal(t, 10500, helpers.Balance(t, db, user.ID))
}

func TestPaymentRepository_SettleFailedDoesNotCredit(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewPaymentRepository(db)

	user := helpers.CreateUser(t, db, &models.User{Tokens: 10000})
	payment := &models.Payment{UserID: user.ID, GatewayID: "pay_fail_001", Amount: 499, TokensAdded: 500}
	require.NoError(t, repo.Create(payment))

	result, err := repo.Settle("pay_fail_001", models.PaymentStatusFailed)
	require.NoError(t, err)

	assert.False(t, result.TokensCredited)
	assert.Equal(t, models.PaymentStatusFailed, result.Payment.Status)
	assert.Equal(t, 10000, helpers.Balance(t, db, user.ID))

	// A later COMPLETED for the same payment is refused: FAILED is final.
	late, err := repo.Settle("pay_fail_001", models.PaymentStatusCompleted)
	require.NoError(t, err)
	assert.True(t, late.AlreadySettled)
	assert.Equal(t, 10000, helpers.Balance(t, db, user.ID))
}

func TestPaymentRepository_SettleUnknownGatewayID(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewPaymentRepository(db)

	_, err := repo.Settle("pay_missing", models.PaymentStatusCompleted)
	assert.ErrorIs(t, err, repositories.ErrPaymentNotFound)
}

func TestPaymentRepository_SettleRejectsPending(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewPaymentRepository(db)

	user := helpers.CreateUser(t, db, &models.User{})
	payment := &models.Payment{UserID: user.ID, GatewayID: "pay_pending_001", Amount: 10, TokensAdded: 10}
	require.NoError(t, repo.Create(payment))

	_, err := repo.Settle("pay_pending_001", models.PaymentStatusPending)
	assert.Error(t, err)
}

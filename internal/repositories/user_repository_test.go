package repositories_test

import (
	"testing"

	"careerpilot_backend/internal/models"
	"careerpilot_backend/internal/repositories"
	"careerpilot_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewUserRepository(db)

	user := &models.User{
		ClerkUserID: "clerk_find_001",
		Email:       "find@test.com",
		Name:        "Find Me",
		Tokens:      10000,
	}
	require.NoError(t, repo.Create(user))
	assert.NotEmpty(t, user.ID, "BeforeCreate should assign a UUID")

	byID, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "find@test.com", byID.Email)

	byClerk, err := repo.FindByClerkID("clerk_find_001")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byClerk.ID)

	byEmail, err := repo.FindByEmail("find@test.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestUserRepository_FindMissing(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewUserRepository(db)

	_, err := repo.FindByClerkID("clerk_nope")
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
}

func TestUserRepository_UniqueEmail(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewUserRepository(db)

	helpers.CreateUser(t, db, &models.User{Email: "taken@test.com"})

	err := repo.Create(&models.User{
		ClerkUserID: "clerk_other",
		Email:       "taken@test.com",
		Name:        "Other",
	})
	assert.ErrorIs(t, err, repositories.ErrEmailTaken)
}

func TestUserRepository_UniqueClerkID(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewUserRepository(db)

	helpers.CreateUser(t, db, &models.User{ClerkUserID: "clerk_taken"})

	err := repo.Create(&models.User{
		ClerkUserID: "clerk_taken",
		Email:       "fresh@test.com",
		Name:        "Fresh",
	})
	assert.ErrorIs(t, err, repositories.ErrClerkUserIDTaken)
}

func TestUserRepository_UpdateIndustry(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewUserRepository(db)

	helpers.CreateInsight(t, db, "tech-software-development")
	user := helpers.CreateUser(t, db, &models.User{})

	require.NoError(t, repo.UpdateIndustry(user.ID, "tech-software-development"))

	updated, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.Industry)
	assert.Equal(t, "tech-software-development", *updated.Industry)
}

func TestUserRepository_DeleteCascades(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewUserRepository(db)

	user := helpers.CreateUser(t, db, &models.User{Tokens: 10000})
	require.NoError(t, db.Create(&models.Resume{UserID: user.ID, Content: "# Resume"}).Error)
	require.NoError(t, db.Create(&models.CoverLetter{UserID: user.ID, Content: "Dear", CompanyName: "Acme", JobTitle: "Dev"}).Error)
	require.NoError(t, db.Create(&models.TokenTransaction{UserID: user.ID, Amount: -100, Description: "Quiz attempt"}).Error)
	require.NoError(t, db.Create(&models.Payment{UserID: user.ID, GatewayID: "pay_del_001", Amount: 10, Status: models.PaymentStatusPending, Currency: "INR"}).Error)

	require.NoError(t, repo.Delete(user.ID))

	_, err := repo.FindByID(user.ID)
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)

	for _, probe := range []struct {
		name  string
		model interface{}
	}{
		{"resumes", &models.Resume{}},
		{"cover_letters", &models.CoverLetter{}},
		{"token_transactions", &models.TokenTransaction{}},
		{"payments", &models.Payment{}},
	} {
		var count int64
		require.NoError(t, db.Model(probe.model).Where("user_id = ?", user.ID).Count(&count).Error)
		assert.Zero(t, count, "expected no %s rows after delete", probe.name)
	}
}

func TestUserRepository_DeleteMissing(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewUserRepository(db)

	err := repo.Delete("00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
}

package helpers

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"careerpilot_backend/database"
	"careerpilot_backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a fresh in-memory SQLite database with the full schema
// applied. Each call gets its own database, so tests stay isolated.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open test database")

	require.NoError(t, database.Migrate(db), "failed to migrate test database")
	return db
}

// CreateUser inserts a user with sensible defaults for anything unset.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) *models.User {
	t.Helper()

	if user.ClerkUserID == "" {
		user.ClerkUserID = fmt.Sprintf("clerk_%d", time.Now().UnixNano())
	}
	if user.Email == "" {
		user.Email = fmt.Sprintf("user_%d@test.com", time.Now().UnixNano())
	}
	if user.Name == "" {
		user.Name = "Test User"
	}
	if user.Tokens == 0 {
		user.Tokens = 10000
	}

	require.NoError(t, db.Create(user).Error, "failed to create test user")
	return user
}

// CreateUserWithIndustry creates an industry insight row plus a user
// linked to it.
func CreateUserWithIndustry(t *testing.T, db *gorm.DB, industry string) *models.User {
	t.Helper()

	CreateInsight(t, db, industry)
	user := CreateUser(t, db, &models.User{Industry: &industry})
	return user
}

// CreateInsight inserts a minimal insight row for the given industry.
func CreateInsight(t *testing.T, db *gorm.DB, industry string) *models.IndustryInsight {
	t.Helper()

	salaryRanges, err := json.Marshal([]models.SalaryRange{
		{Role: "Engineer", Min: 50000, Max: 150000, Median: 95000, Location: "Remote"},
	})
	require.NoError(t, err)

	now := time.Now()
	insight := &models.IndustryInsight{
		Industry:      industry,
		SalaryRanges:  salaryRanges,
		GrowthRate:    4.2,
		DemandLevel:   models.DemandLevelHigh,
		MarketOutlook: models.MarketOutlookPositive,
		LastUpdated:   now,
		NextUpdate:    now.AddDate(0, 0, 7),
	}
	require.NoError(t, db.Create(insight).Error, "failed to create test insight")
	return insight
}

// CreateFeatureCost inserts a price-list row.
func CreateFeatureCost(t *testing.T, db *gorm.DB, feature string, cost int) *models.FeatureCost {
	t.Helper()

	fc := &models.FeatureCost{Feature: feature, Cost: cost}
	require.NoError(t, db.Create(fc).Error, "failed to create feature cost")
	return fc
}

// Balance reads the user's current token balance straight from the table.
func Balance(t *testing.T, db *gorm.DB, userID string) int {
	t.Helper()

	var tokens int
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", userID).Select("tokens").Scan(&tokens).Error)
	return tokens
}

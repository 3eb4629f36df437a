package repositories_test

import (
	"testing"
	"time"

	"careerpilot_backend/internal/models"
	"careerpilot_backend/internal/repositories"
	"careerpilot_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsightRepository_CreateUniqueIndustry(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewInsightRepository(db)

	helpers.CreateInsight(t, db, "finance-banking")

	err := repo.Create(&models.IndustryInsight{
		Industry:      "finance-banking",
		DemandLevel:   models.DemandLevelLow,
		MarketOutlook: models.MarketOutlookNeutral,
	})
	assert.ErrorIs(t, err, repositories.ErrInsightExists)
}

func TestInsightRepository_UpsertKeepsOneRowPerIndustry(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewInsightRepository(db)

	now := time.Now()
	first := &models.IndustryInsight{
		Industry:      "tech-ai",
		GrowthRate:    10,
		DemandLevel:   models.DemandLevelHigh,
		MarketOutlook: models.MarketOutlookPositive,
		LastUpdated:   now,
		NextUpdate:    now.AddDate(0, 0, 7),
	}
	require.NoError(t, repo.Upsert(first))

	second := &models.IndustryInsight{
		Industry:      "tech-ai",
		GrowthRate:    12,
		DemandLevel:   models.DemandLevelHigh,
		MarketOutlook: models.MarketOutlookNeutral,
		LastUpdated:   now,
		NextUpdate:    now.AddDate(0, 0, 7),
	}
	require.NoError(t, repo.Upsert(second))

	var count int64
	require.NoError(t, db.Model(&models.IndustryInsight{}).Where("industry = ?", "tech-ai").Count(&count).Error)
	assert.Equal(t, int64(1), count)

	stored, err := repo.FindByIndustry("tech-ai")
	require.NoError(t, err)
	assert.Equal(t, float64(12), stored.GrowthRate)
	assert.Equal(t, models.MarketOutlookNeutral, stored.MarketOutlook)
}

func TestInsightRepository_UpdateMissing(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewInsightRepository(db)

	err := repo.Update(&models.IndustryInsight{
		Industry:      "does-not-exist",
		DemandLevel:   models.DemandLevelLow,
		MarketOutlook: models.MarketOutlookNegative,
	})
	assert.ErrorIs(t, err, repositories.ErrInsightNotFound)
}

func TestInsightRepository_FindDueAndReschedule(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewInsightRepository(db)

	now := time.Now()

	stale := helpers.CreateInsight(t, db, "media-journalism")
	require.NoError(t, db.Model(stale).Update("next_update", now.Add(-time.Hour)).Error)
	helpers.CreateInsight(t, db, "health-pharma") // next_update a week out

	due, err := repo.FindDue(now, 10)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "media-journalism", due[0].Industry)

	next := now.AddDate(0, 0, 7)
	require.NoError(t, repo.Reschedule("media-journalism", now, next))

	due, err = repo.FindDue(now, 10)
	require.NoError(t, err)
	assert.Empty(t, due)
}

package repositories

import (
	"errors"
	"time"

	"careerpilot_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrInsightNotFound = errors.New("industry insight not found")
	ErrInsightExists   = errors.New("industry insight already exists")
)

type InsightRepository interface {
	Create(insight *models.IndustryInsight) error
	FindByIndustry(industry string) (*models.IndustryInsight, error)
	FindAll(limit, offset int) ([]models.IndustryInsight, error)

	// Update replaces the market data of an existing industry row.
	// Fails with ErrInsightNotFound when the industry is unknown.
	Update(insight *models.IndustryInsight) error

	// Upsert applies create-if-absent semantics keyed by industry name.
	Upsert(insight *models.IndustryInsight) error

	// FindDue returns insights whose NextUpdate has passed, for the
	// refresh worker.
	FindDue(now time.Time, limit int) ([]models.IndustryInsight, error)
	Reschedule(industry string, lastUpdated, nextUpdate time.Time) error
}

type InsightRepositoryImpl struct {
	db *gorm.DB
}

func NewInsightRepository(db *gorm.DB) InsightRepository {
	return &InsightRepositoryImpl{db: db}
}

func (r *InsightRepositoryImpl) Create(insight *models.IndustryInsight) error {
	var existing models.IndustryInsight
	if err := r.db.Where("industry = ?", insight.Industry).First(&existing).Error; err == nil {
		return ErrInsightExists
	}
	return r.db.Create(insight).Error
}

func (r *InsightRepositoryImpl) FindByIndustry(industry string) (*models.IndustryInsight, error) {
	var insight models.IndustryInsight
	err := r.db.First(&insight, "industry = ?", industry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInsightNotFound
		}
		return nil, err
	}
	return &insight, nil
}

func (r *InsightRepositoryImpl) FindAll(limit, offset int) ([]models.IndustryInsight, error) {
	var insights []models.IndustryInsight
	err := r.db.Order("industry ASC").Limit(limit).Offset(offset).Find(&insights).Error
	return insights, err
}

func (r *InsightRepositoryImpl) Update(insight *models.IndustryInsight) error {
	result := r.db.Model(&models.IndustryInsight{}).
		Where("industry = ?", insight.Industry).
		Updates(map[string]interface{}{
			"salary_ranges":      insight.SalaryRanges,
			"growth_rate":        insight.GrowthRate,
			"demand_level":       insight.DemandLevel,
			"top_skills":         insight.TopSkills,
			"market_outlook":     insight.MarketOutlook,
			"key_trends":         insight.KeyTrends,
			"recommended_skills": insight.RecommendedSkills,
			"last_updated":       insight.LastUpdated,
			"next_update":        insight.NextUpdate,
			"updated_at":         time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInsightNotFound
	}
	return nil
}

func (r *InsightRepositoryImpl) Upsert(insight *models.IndustryInsight) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.IndustryInsight
		findErr := tx.First(&existing, "industry = ?", insight.Industry).Error
		if findErr == nil {
			insight.ID = existing.ID
			return tx.Model(&existing).Updates(map[string]interface{}{
				"salary_ranges":      insight.SalaryRanges,
				"growth_rate":        insight.GrowthRate,
				"demand_level":       insight.DemandLevel,
				"top_skills":         insight.TopSkills,
				"market_outlook":     insight.MarketOutlook,
				"key_trends":         insight.KeyTrends,
				"recommended_skills": insight.RecommendedSkills,
				"last_updated":       insight.LastUpdated,
				"next_update":        insight.NextUpdate,
				"updated_at":         time.Now(),
			}).Error
		}
		if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}
		return tx.Create(insight).Error
	})
}

func (r *InsightRepositoryImpl) FindDue(now time.Time, limit int) ([]models.IndustryInsight, error) {
	var insights []models.IndustryInsight
	err := r.db.Where("next_update <= ?", now).
		Order("next_update ASC").
		Limit(limit).
		Find(&insights).Error
	return insights, err
}

func (r *InsightRepositoryImpl) Reschedule(industry string, lastUpdated, nextUpdate time.Time) error {
	result := r.db.Model(&models.IndustryInsight{}).
		Where("industry = ?", industry).
		Updates(map[string]interface{}{
			"last_updated": lastUpdated,
			"next_update":  nextUpdate,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInsightNotFound
	}
	return nil
}

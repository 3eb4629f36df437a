package services

import (
	"encoding/json"
	"time"

	"careerpilot_backend/internal/config"
	"careerpilot_backend/internal/logger"
	"careerpilot_backend/internal/models"
	"careerpilot_backend/internal/repositories"
	"careerpilot_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

// InsightData is the market payload accepted by Upsert, produced by the
// out-of-band aggregation job.
type InsightData struct {
	SalaryRanges      []models.SalaryRange
	GrowthRate        float64
	DemandLevel       models.DemandLevel
	TopSkills         []string
	MarketOutlook     models.MarketOutlook
	KeyTrends         []string
	RecommendedSkills []string
}

type InsightService struct {
	insightRepo repositories.InsightRepository
}

func NewInsightService(insightRepo repositories.InsightRepository) *InsightService {
	return &InsightService{insightRepo: insightRepo}
}

func (s *InsightService) GetByIndustry(industry string) (*models.IndustryInsight, error) {
	insight, err := s.insightRepo.FindByIndustry(industry)
	if err != nil {
		if err == repositories.ErrInsightNotFound {
			return nil, apperrors.ErrIndustryNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return insight, nil
}

func (s *InsightService) List(limit, offset int) ([]models.IndustryInsight, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	insights, err := s.insightRepo.FindAll(limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return insights, nil
}

// Upsert writes refreshed market data for an industry, creating the row
// when absent, and schedules the next refresh.
func (s *InsightService) Upsert(industry string, data InsightData) (*models.IndustryInsight, error) {
	if !data.DemandLevel.IsValid() {
		return nil, apperrors.ValidationError(map[string]string{"demandLevel": "must be HIGH, MEDIUM or LOW"})
	}
	if !data.MarketOutlook.IsValid() {
		return nil, apperrors.ValidationError(map[string]string{"marketOutlook": "must be POSITIVE, NEUTRAL or NEGATIVE"})
	}

	insight, err := s.buildInsight(industry, data)
	if err != nil {
		return nil, err
	}

	if err := s.insightRepo.Upsert(insight); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("industry insight upserted", "industry", industry, "next_update", insight.NextUpdate)
	return insight, nil
}

// Update refreshes an existing industry row only; a run against an
// unknown industry surfaces NotFound.
func (s *InsightService) Update(industry string, data InsightData) (*models.IndustryInsight, error) {
	if !data.DemandLevel.IsValid() || !data.MarketOutlook.IsValid() {
		return nil, apperrors.ValidationError(map[string]string{"enum": "invalid demand level or market outlook"})
	}

	insight, err := s.buildInsight(industry, data)
	if err != nil {
		return nil, err
	}

	if err := s.insightRepo.Update(insight); err != nil {
		if err == repositories.ErrInsightNotFound {
			return nil, apperrors.ErrIndustryNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return insight, nil
}

func (s *InsightService) buildInsight(industry string, data InsightData) (*models.IndustryInsight, error) {
	cfg := config.GetConfig()
	now := time.Now()

	insight := &models.IndustryInsight{
		Industry:      industry,
		GrowthRate:    data.GrowthRate,
		DemandLevel:   data.DemandLevel,
		MarketOutlook: data.MarketOutlook,
		LastUpdated:   now,
		NextUpdate:    now.AddDate(0, 0, cfg.Insights.UpdatePeriod),
	}

	var err error
	if insight.SalaryRanges, err = marshalJSON(data.SalaryRanges); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if insight.TopSkills, err = marshalJSON(data.TopSkills); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if insight.KeyTrends, err = marshalJSON(data.KeyTrends); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if insight.RecommendedSkills, err = marshalJSON(data.RecommendedSkills); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return insight, nil
}

func marshalJSON(v interface{}) (datatypes.JSON, error) {
	if v == nil {
		return nil, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

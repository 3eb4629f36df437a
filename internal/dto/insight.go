package dto

import (
	"time"

	"careerpilot_backend/internal/models"
)

type SalaryRangeDTO struct {
	Role     string  `json:"role" validate:"required"`
	Min      float64 `json:"min" validate:"min=0"`
	Max      float64 `json:"max" validate:"min=0"`
	Median   float64 `json:"median" validate:"min=0"`
	Location string  `json:"location"`
}

type UpsertInsightRequest struct {
	SalaryRanges      []SalaryRangeDTO `json:"salary_ranges" validate:"dive"`
	GrowthRate        float64          `json:"growth_rate"`
	DemandLevel       string           `json:"demand_level" binding:"required" validate:"required,is-demand-level"`
	TopSkills         []string         `json:"top_skills"`
	MarketOutlook     string           `json:"market_outlook" binding:"required" validate:"required,is-market-outlook"`
	KeyTrends         []string         `json:"key_trends"`
	RecommendedSkills []string         `json:"recommended_skills"`
}

type InsightResponse struct {
	Industry          string               `json:"industry"`
	SalaryRanges      []models.SalaryRange `json:"salary_ranges,omitempty"`
	GrowthRate        float64              `json:"growth_rate"`
	DemandLevel       string               `json:"demand_level"`
	TopSkills         []string             `json:"top_skills,omitempty"`
	MarketOutlook     string               `json:"market_outlook"`
	KeyTrends         []string             `json:"key_trends,omitempty"`
	RecommendedSkills []string             `json:"recommended_skills,omitempty"`
	LastUpdated       time.Time            `json:"last_updated"`
	NextUpdate        time.Time            `json:"next_update"`
}

package models

import (
	"time"

	"gorm.io/datatypes"
)

// SalaryRange is one entry of IndustryInsight.SalaryRanges.
type SalaryRange struct {
	Role     string  `json:"role"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Median   float64 `json:"median"`
	Location string  `json:"location,omitempty"`
}

// IndustryInsight is a shared market-data aggregate keyed by industry name.
// It is not owned by any single user; many users may reference one row.
// Rows are refreshed on the schedule implied by NextUpdate.
type IndustryInsight struct {
	BaseModel
	Industry          string         `gorm:"uniqueIndex;not null"`
	SalaryRanges      datatypes.JSON `gorm:"type:jsonb"` // []SalaryRange
	GrowthRate        float64
	DemandLevel       DemandLevel    `gorm:"type:varchar(20);not null"`
	TopSkills         datatypes.JSON `gorm:"type:jsonb"` // ranked skill names
	MarketOutlook     MarketOutlook  `gorm:"type:varchar(20);not null"`
	KeyTrends         datatypes.JSON `gorm:"type:jsonb"`
	RecommendedSkills datatypes.JSON `gorm:"type:jsonb"`
	LastUpdated       time.Time
	NextUpdate        time.Time `gorm:"index"`
}

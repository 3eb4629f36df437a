package models

// Feature names used for token metering. Seeded into feature_costs at
// startup; application code consults the table before debiting.
const (
	FeatureCareerQuiz       = "career_quiz"
	FeatureResumeAnalysis   = "resume_analysis"
	FeatureCoverLetter      = "cover_letter_generation"
	FeatureIndustryInsight  = "industry_insight"
)

// TokenTransaction is one append-only ledger entry. Amount is signed:
// positive rows are credits, negative rows are debits. The sum of a
// user's rows reconciles with User.Tokens minus the signup grant.
type TokenTransaction struct {
	BaseModel
	UserID      string `gorm:"type:uuid;not null;index"`
	Amount      int    `gorm:"not null"`
	Description string `gorm:"not null"`
	FeatureType string `gorm:"index"` // optional feature tag
}

// FeatureCost maps a feature name to its token cost. Standalone lookup
// table, no foreign keys.
type FeatureCost struct {
	BaseModel
	Feature     string `gorm:"uniqueIndex;not null"`
	Cost        int    `gorm:"not null"`
	Description string
}

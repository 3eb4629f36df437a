package models

import "gorm.io/datatypes"

type User struct {
	BaseModel
	ClerkUserID string  `gorm:"uniqueIndex;not null"`
	Email       string  `gorm:"uniqueIndex;not null"`
	Name        string
	ImageURL    string
	Industry    *string `gorm:"index"` // references IndustryInsight.Industry, nil until onboarding
	Bio         string
	Experience  *int
	Skills      datatypes.JSON `gorm:"type:jsonb"` // ordered list of skill strings
	Tokens      int            `gorm:"not null;default:10000"`

	// Relations
	IndustryInsight   *IndustryInsight   `gorm:"foreignKey:Industry;references:Industry"`
	Resume            *Resume            `gorm:"foreignKey:UserID"`
	Assessments       []Assessment       `gorm:"foreignKey:UserID"`
	CoverLetters      []CoverLetter      `gorm:"foreignKey:UserID"`
	TokenTransactions []TokenTransaction `gorm:"foreignKey:UserID"`
	Payments          []Payment          `gorm:"foreignKey:UserID"`
}

package models

// Resume is limited to one per user, enforced by the unique index on UserID.
type Resume struct {
	BaseModel
	UserID   string  `gorm:"type:uuid;not null;uniqueIndex"`
	Content  string  `gorm:"type:text;not null"`
	ATSScore float64
	Feedback string
}

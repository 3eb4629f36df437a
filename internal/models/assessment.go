package models

import "gorm.io/datatypes"

// Assessment is a completed quiz record. Rows are immutable after creation
// apart from the UpdatedAt refresh; they are removed only by cascading
// user deletion.
type Assessment struct {
	BaseModel
	UserID         string         `gorm:"type:uuid;not null;index"`
	QuizScore      float64        `gorm:"not null"`
	Questions      datatypes.JSON `gorm:"type:jsonb"` // ordered question records, opaque blobs
	Category       string         `gorm:"not null"`
	ImprovementTip string
}

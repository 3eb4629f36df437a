package models

type CoverLetter struct {
	BaseModel
	UserID         string `gorm:"type:uuid;not null;index"`
	Content        string `gorm:"type:text;not null"`
	JobDescription string `gorm:"type:text"`
	CompanyName    string `gorm:"not null"`
	JobTitle       string `gorm:"not null"`
}

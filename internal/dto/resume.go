package dto

import "time"

type SaveResumeRequest struct {
	Content string `json:"content" binding:"required" validate:"required,min=1"`
}

type ScoreResumeRequest struct {
	ATSScore float64 `json:"ats_score" validate:"min=0,max=100"`
	Feedback string  `json:"feedback" validate:"max=5000"`
}

type ResumeResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	ATSScore  float64   `json:"ats_score"`
	Feedback  string    `json:"feedback,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

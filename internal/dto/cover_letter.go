package dto

import "time"

type CreateCoverLetterRequest struct {
	Content        string `json:"content" binding:"required" validate:"required,min=1"`
	JobDescription string `json:"job_description" validate:"max=10000"`
	CompanyName    string `json:"company_name" binding:"required" validate:"required,max=255"`
	JobTitle       string `json:"job_title" binding:"required" validate:"required,max=255"`
}

type UpdateCoverLetterRequest struct {
	Content        string `json:"content" binding:"required" validate:"required,min=1"`
	JobDescription string `json:"job_description" validate:"max=10000"`
	CompanyName    string `json:"company_name" binding:"required" validate:"required,max=255"`
	JobTitle       string `json:"job_title" binding:"required" validate:"required,max=255"`
}

type CoverLetterResponse struct {
	ID             string    `json:"id"`
	Content        string    `json:"content"`
	JobDescription string    `json:"job_description,omitempty"`
	CompanyName    string    `json:"company_name"`
	JobTitle       string    `json:"job_title"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CoverLetterListResponse struct {
	CoverLetters []CoverLetterResponse `json:"cover_letters"`
	Total        int64                 `json:"total"`
}

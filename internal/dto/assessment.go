package dto

import (
	"encoding/json"
	"time"
)

type SaveAssessmentRequest struct {
	QuizScore      float64           `json:"quiz_score" validate:"min=0,max=100"`
	Questions      []json.RawMessage `json:"questions" binding:"required" validate:"required,min=1"`
	Category       string            `json:"category" binding:"required" validate:"required,max=100"`
	ImprovementTip string            `json:"improvement_tip" validate:"max=2000"`
}

type AssessmentResponse struct {
	ID             string            `json:"id"`
	QuizScore      float64           `json:"quiz_score"`
	Questions      []json.RawMessage `json:"questions,omitempty"`
	Category       string            `json:"category"`
	ImprovementTip string            `json:"improvement_tip,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

type AssessmentListResponse struct {
	Assessments  []AssessmentResponse `json:"assessments"`
	Total        int64                `json:"total"`
	AverageScore float64              `json:"average_score"`
}

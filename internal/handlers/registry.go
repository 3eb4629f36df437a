package handlers

import (
	"careerpilot_backend/internal/services"
	"careerpilot_backend/internal/validator"
)

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	User        *UserHandler
	Token       *TokenHandler
	Payment     *PaymentHandler
	Assessment  *AssessmentHandler
	Resume      *ResumeHandler
	CoverLetter *CoverLetterHandler
	Insight     *InsightHandler
}

func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v, sc.UserService)
	return &AppHandlers{
		User:        NewUserHandler(base, sc.UserService),
		Token:       NewTokenHandler(base, sc.TokenService),
		Payment:     NewPaymentHandler(base, sc.PaymentService),
		Assessment:  NewAssessmentHandler(base, sc.AssessmentService),
		Resume:      NewResumeHandler(base, sc.ResumeService),
		CoverLetter: NewCoverLetterHandler(base, sc.CoverLetterService),
		Insight:     NewInsightHandler(base, sc.InsightService),
	}
}

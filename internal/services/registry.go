package services

// ServiceContainer bundles all services for handler wiring.
type ServiceContainer struct {
	UserService        *UserService
	TokenService       *TokenService
	PaymentService     *PaymentService
	InsightService     *InsightService
	AssessmentService  *AssessmentService
	ResumeService      *ResumeService
	CoverLetterService *CoverLetterService
}

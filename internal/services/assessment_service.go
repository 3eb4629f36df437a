package services

import (
	"encoding/json"

	"careerpilot_backend/internal/models"
	"careerpilot_backend/internal/repositories"
	"careerpilot_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type AssessmentService struct {
	assessmentRepo repositories.AssessmentRepository
	tokenService   *TokenService
}

func NewAssessmentService(assessmentRepo repositories.AssessmentRepository, tokenService *TokenService) *AssessmentService {
	return &AssessmentService{
		assessmentRepo: assessmentRepo,
		tokenService:   tokenService,
	}
}

// Save charges the quiz feature and records the completed assessment.
// The debit happens first: an insufficient balance rejects the whole
// operation before anything is written.
func (s *AssessmentService) Save(userID string, quizScore float64, questions []json.RawMessage, category, improvementTip string) (*models.Assessment, error) {
	if _, err := s.tokenService.DebitForFeature(userID, models.FeatureCareerQuiz, "Completed career quiz"); err != nil {
		return nil, err
	}

	assessment := &models.Assessment{
		UserID:         userID,
		QuizScore:      quizScore,
		Category:       category,
		ImprovementTip: improvementTip,
	}

	if questions != nil {
		raw, err := json.Marshal(questions)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		assessment.Questions = datatypes.JSON(raw)
	}

	if err := s.assessmentRepo.Create(assessment); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return assessment, nil
}

func (s *AssessmentService) ListByUser(userID string, limit, offset int) ([]models.Assessment, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	assessments, err := s.assessmentRepo.FindByUser(userID, limit, offset)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	total, err := s.assessmentRepo.CountByUser(userID)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return assessments, total, nil
}

func (s *AssessmentService) Get(id, userID string) (*models.Assessment, error) {
	assessment, err := s.assessmentRepo.FindByID(id)
	if err != nil {
		if err == repositories.ErrAssessmentNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if assessment.UserID != userID {
		return nil, apperrors.New(apperrors.CodeForbidden, "assessment", "Assessment belongs to another user", 403)
	}
	return assessment, nil
}

func (s *AssessmentService) AverageScore(userID string) (float64, error) {
	avg, err := s.assessmentRepo.AverageScore(userID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return avg, nil
}

package services

import (
	"fmt"

	"careerpilot_backend/internal/models"
	"careerpilot_backend/internal/repositories"
	"careerpilot_backend/pkg/apperrors"
)

type CoverLetterService struct {
	letterRepo   repositories.CoverLetterRepository
	tokenService *TokenService
}

func NewCoverLetterService(letterRepo repositories.CoverLetterRepository, tokenService *TokenService) *CoverLetterService {
	return &CoverLetterService{
		letterRepo:   letterRepo,
		tokenService: tokenService,
	}
}

// Create charges the generation feature and stores the letter.
func (s *CoverLetterService) Create(userID, content, jobDescription, companyName, jobTitle string) (*models.CoverLetter, error) {
	description := fmt.Sprintf("Generated cover letter for %s at %s", jobTitle, companyName)
	if _, err := s.tokenService.DebitForFeature(userID, models.FeatureCoverLetter, description); err != nil {
		return nil, err
	}

	letter := &models.CoverLetter{
		UserID:         userID,
		Content:        content,
		JobDescription: jobDescription,
		CompanyName:    companyName,
		JobTitle:       jobTitle,
	}
	if err := s.letterRepo.Create(letter); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return letter, nil
}

func (s *CoverLetterService) Get(id, userID string) (*models.CoverLetter, error) {
	letter, err := s.letterRepo.FindByID(id)
	if err != nil {
		if err == repositories.ErrCoverLetterNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if letter.UserID != userID {
		return nil, apperrors.New(apperrors.CodeForbidden, "cover_letter", "Cover letter belongs to another user", 403)
	}
	return letter, nil
}

func (s *CoverLetterService) ListByUser(userID string, limit, offset int) ([]models.CoverLetter, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	letters, err := s.letterRepo.FindByUser(userID, limit, offset)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	total, err := s.letterRepo.CountByUser(userID)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return letters, total, nil
}

func (s *CoverLetterService) Update(id, userID, content, jobDescription, companyName, jobTitle string) (*models.CoverLetter, error) {
	letter, err := s.Get(id, userID)
	if err != nil {
		return nil, err
	}

	letter.Content = content
	letter.JobDescription = jobDescription
	letter.CompanyName = companyName
	letter.JobTitle = jobTitle

	if err := s.letterRepo.Update(letter); err != nil {
		if err == repositories.ErrCoverLetterNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return letter, nil
}

func (s *CoverLetterService) Delete(id, userID string) error {
	if err := s.letterRepo.Delete(id, userID); err != nil {
		if err == repositories.ErrCoverLetterNotFound {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

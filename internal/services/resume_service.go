package services

import (
	"fmt"
	"strings"

	"careerpilot_backend/internal/export"
	"careerpilot_backend/internal/models"
	"careerpilot_backend/internal/repositories"
	"careerpilot_backend/pkg/apperrors"
)

type ResumeService struct {
	resumeRepo   repositories.ResumeRepository
	tokenService *TokenService
}

func NewResumeService(resumeRepo repositories.ResumeRepository, tokenService *TokenService) *ResumeService {
	return &ResumeService{
		resumeRepo:   resumeRepo,
		tokenService: tokenService,
	}
}

// Create stores a brand-new resume; a user who already has one gets a
// conflict rather than a silent replace.
func (s *ResumeService) Create(userID, content string) (*models.Resume, error) {
	resume := &models.Resume{UserID: userID, Content: content}
	if err := s.resumeRepo.Create(resume); err != nil {
		if err == repositories.ErrResumeExists {
			return nil, apperrors.ErrResumeExists
		}
		return nil, apperrors.InternalError(err)
	}
	return resume, nil
}

// Save is the editor path: create or replace the user's single resume.
func (s *ResumeService) Save(userID, content string) (*models.Resume, error) {
	resume, err := s.resumeRepo.Upsert(userID, content)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return resume, nil
}

func (s *ResumeService) Get(userID string) (*models.Resume, error) {
	resume, err := s.resumeRepo.FindByUser(userID)
	if err != nil {
		if err == repositories.ErrResumeNotFound {
			return nil, apperrors.ErrResumeNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return resume, nil
}

// Score charges the ATS analysis feature and stores the resulting score
// and feedback on the user's resume.
func (s *ResumeService) Score(userID string, atsScore float64, feedback string) (*models.Resume, error) {
	if _, err := s.resumeRepo.FindByUser(userID); err != nil {
		if err == repositories.ErrResumeNotFound {
			return nil, apperrors.ErrResumeNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if _, err := s.tokenService.DebitForFeature(userID, models.FeatureResumeAnalysis, "Resume ATS analysis"); err != nil {
		return nil, err
	}

	if err := s.resumeRepo.UpdateScore(userID, atsScore, feedback); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.Get(userID)
}

// ExportRequest builds the client-side PDF renderer payload for the
// user's resume.
func (s *ResumeService) ExportRequest(userID string, user *models.User) (*export.Request, error) {
	if _, err := s.Get(userID); err != nil {
		return nil, err
	}

	filename := "resume.pdf"
	if user != nil && user.Name != "" {
		slug := strings.ToLower(strings.ReplaceAll(user.Name, " ", "-"))
		filename = fmt.Sprintf("%s-resume.pdf", slug)
	}

	req, err := export.New(export.DefaultOptions(filename)).From("resume-pdf").Save()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &req, nil
}

package services

import (
	"encoding/json"
	"time"

	"careerpilot_backend/internal/config"
	"careerpilot_backend/internal/logger"
	"careerpilot_backend/internal/models"
	"careerpilot_backend/internal/repositories"
	"careerpilot_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type UserService struct {
	userRepo    repositories.UserRepository
	insightRepo repositories.InsightRepository
}

func NewUserService(userRepo repositories.UserRepository, insightRepo repositories.InsightRepository) *UserService {
	return &UserService{
		userRepo:    userRepo,
		insightRepo: insightRepo,
	}
}

// Register creates the local account for an externally authenticated
// identity and grants the signup token balance.
func (s *UserService) Register(clerkUserID, email, name, imageURL string) (*models.User, error) {
	cfg := config.GetConfig()

	user := &models.User{
		ClerkUserID: clerkUserID,
		Email:       email,
		Name:        name,
		ImageURL:    imageURL,
		Tokens:      cfg.Tokens.SignupGrant,
	}

	if err := s.userRepo.Create(user); err != nil {
		switch err {
		case repositories.ErrEmailTaken:
			return nil, apperrors.ErrEmailAlreadyExists
		case repositories.ErrClerkUserIDTaken:
			return nil, apperrors.ErrAuthIDAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	logger.Info("user registered", "user_id", user.ID, "email", user.Email)
	return user, nil
}

func (s *UserService) GetByClerkID(clerkUserID string) (*models.User, error) {
	user, err := s.userRepo.FindByClerkID(clerkUserID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *UserService) GetByID(id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// Onboard records the user's profile and industry. When the industry has
// no insight row yet, a placeholder is created so the foreign reference
// always resolves; the refresh worker fills it in later.
func (s *UserService) Onboard(userID, industry, bio string, experience *int, skills []string) (*models.User, error) {
	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if industry != "" {
		if _, err := s.insightRepo.FindByIndustry(industry); err != nil {
			if err != repositories.ErrInsightNotFound {
				return nil, apperrors.InternalError(err)
			}
			if err := s.insightRepo.Create(placeholderInsight(industry)); err != nil {
				return nil, apperrors.InternalError(err)
			}
			logger.Info("created placeholder insight", "industry", industry)
		}
		user.Industry = &industry
	}

	user.Bio = bio
	user.Experience = experience

	if skills != nil {
		raw, err := json.Marshal(skills)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		user.Skills = datatypes.JSON(raw)
	}

	if err := s.userRepo.Update(user); err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *UserService) Delete(userID string) error {
	if err := s.userRepo.Delete(userID); err != nil {
		if err == repositories.ErrUserNotFound {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}
	logger.Info("user deleted with owned rows", "user_id", userID)
	return nil
}

// Skills decodes the JSON skill list stored on the user.
func (s *UserService) Skills(user *models.User) []string {
	if len(user.Skills) == 0 {
		return nil
	}
	var skills []string
	if err := json.Unmarshal(user.Skills, &skills); err != nil {
		return nil
	}
	return skills
}

func placeholderInsight(industry string) *models.IndustryInsight {
	now := time.Now()
	return &models.IndustryInsight{
		Industry:      industry,
		DemandLevel:   models.DemandLevelMedium,
		MarketOutlook: models.MarketOutlookNeutral,
		LastUpdated:   now,
		// Due immediately so the refresh worker picks it up on its
		// next tick.
		NextUpdate: now,
	}
}

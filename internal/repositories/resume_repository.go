package repositories

import (
	"errors"
	"time"

	"careerpilot_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrResumeNotFound = errors.New("resume not found")
	ErrResumeExists   = errors.New("user already has a resume")
)

type ResumeRepository interface {
	// Create fails with ErrResumeExists when the user already has a
	// resume. The unique index on user_id backs the same rule in the
	// store.
	Create(resume *models.Resume) error
	FindByUser(userID string) (*models.Resume, error)
	Update(resume *models.Resume) error

	// Upsert creates the user's resume or replaces its content.
	Upsert(userID, content string) (*models.Resume, error)
	UpdateScore(userID string, atsScore float64, feedback string) error
	Delete(userID string) error
}

type ResumeRepositoryImpl struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &ResumeRepositoryImpl{db: db}
}

func (r *ResumeRepositoryImpl) Create(resume *models.Resume) error {
	var existing models.Resume
	if err := r.db.Where("user_id = ?", resume.UserID).First(&existing).Error; err == nil {
		return ErrResumeExists
	}
	return r.db.Create(resume).Error
}

func (r *ResumeRepositoryImpl) FindByUser(userID string) (*models.Resume, error) {
	var resume models.Resume
	err := r.db.First(&resume, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResumeNotFound
		}
		return nil, err
	}
	return &resume, nil
}

func (r *ResumeRepositoryImpl) Update(resume *models.Resume) error {
	result := r.db.Model(resume).Updates(map[string]interface{}{
		"content":    resume.Content,
		"ats_score":  resume.ATSScore,
		"feedback":   resume.Feedback,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrResumeNotFound
	}
	return nil
}

func (r *ResumeRepositoryImpl) Upsert(userID, content string) (*models.Resume, error) {
	var resume models.Resume
	err := r.db.Transaction(func(tx *gorm.DB) error {
		findErr := tx.First(&resume, "user_id = ?", userID).Error
		if findErr == nil {
			return tx.Model(&resume).Updates(map[string]interface{}{
				"content":    content,
				"updated_at": time.Now(),
			}).Error
		}
		if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}

		resume = models.Resume{UserID: userID, Content: content}
		return tx.Create(&resume).Error
	})
	if err != nil {
		return nil, err
	}
	return &resume, nil
}

func (r *ResumeRepositoryImpl) UpdateScore(userID string, atsScore float64, feedback string) error {
	result := r.db.Model(&models.Resume{}).Where("user_id = ?", userID).Updates(map[string]interface{}{
		"ats_score":  atsScore,
		"feedback":   feedback,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrResumeNotFound
	}
	return nil
}

func (r *ResumeRepositoryImpl) Delete(userID string) error {
	result := r.db.Where("user_id = ?", userID).Delete(&models.Resume{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrResumeNotFound
	}
	return nil
}

package repositories

import (
	"errors"
	"time"

	"careerpilot_backend/internal/models"

	"gorm.io/gorm"
)

var ErrCoverLetterNotFound = errors.New("cover letter not found")

type CoverLetterRepository interface {
	Create(letter *models.CoverLetter) error
	FindByID(id string) (*models.CoverLetter, error)
	FindByUser(userID string, limit, offset int) ([]models.CoverLetter, error)
	CountByUser(userID string) (int64, error)
	Update(letter *models.CoverLetter) error
	Delete(id, userID string) error
}

type CoverLetterRepositoryImpl struct {
	db *gorm.DB
}

func NewCoverLetterRepository(db *gorm.DB) CoverLetterRepository {
	return &CoverLetterRepositoryImpl{db: db}
}

func (r *CoverLetterRepositoryImpl) Create(letter *models.CoverLetter) error {
	return r.db.Create(letter).Error
}

func (r *CoverLetterRepositoryImpl) FindByID(id string) (*models.CoverLetter, error) {
	var letter models.CoverLetter
	err := r.db.First(&letter, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCoverLetterNotFound
		}
		return nil, err
	}
	return &letter, nil
}

func (r *CoverLetterRepositoryImpl) FindByUser(userID string, limit, offset int) ([]models.CoverLetter, error) {
	var letters []models.CoverLetter
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&letters).Error
	return letters, err
}

func (r *CoverLetterRepositoryImpl) CountByUser(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.CoverLetter{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *CoverLetterRepositoryImpl) Update(letter *models.CoverLetter) error {
	result := r.db.Model(letter).Updates(map[string]interface{}{
		"content":         letter.Content,
		"job_description": letter.JobDescription,
		"company_name":    letter.CompanyName,
		"job_title":       letter.JobTitle,
		"updated_at":      time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCoverLetterNotFound
	}
	return nil
}

// Delete is scoped by owner so one user cannot remove another's letter.
func (r *CoverLetterRepositoryImpl) Delete(id, userID string) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.CoverLetter{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCoverLetterNotFound
	}
	return nil
}

package repositories

import (
	"errors"
	"time"

	"careerpilot_backend/internal/models"

	"gorm.io/gorm"
)

var ErrAssessmentNotFound = errors.New("assessment not found")

type AssessmentRepository interface {
	Create(assessment *models.Assessment) error
	FindByID(id string) (*models.Assessment, error)
	FindByUser(userID string, limit, offset int) ([]models.Assessment, error)
	CountByUser(userID string) (int64, error)

	// Touch refreshes UpdatedAt. Assessments are otherwise immutable
	// after creation.
	Touch(id string) error

	// AverageScore returns the mean quiz score across a user's
	// assessments, 0 when there are none.
	AverageScore(userID string) (float64, error)
}

type AssessmentRepositoryImpl struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &AssessmentRepositoryImpl{db: db}
}

func (r *AssessmentRepositoryImpl) Create(assessment *models.Assessment) error {
	return r.db.Create(assessment).Error
}

func (r *AssessmentRepositoryImpl) FindByID(id string) (*models.Assessment, error) {
	var assessment models.Assessment
	err := r.db.First(&assessment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssessmentNotFound
		}
		return nil, err
	}
	return &assessment, nil
}

func (r *AssessmentRepositoryImpl) FindByUser(userID string, limit, offset int) ([]models.Assessment, error) {
	var assessments []models.Assessment
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&assessments).Error
	return assessments, err
}

func (r *AssessmentRepositoryImpl) CountByUser(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Assessment{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *AssessmentRepositoryImpl) Touch(id string) error {
	result := r.db.Model(&models.Assessment{}).Where("id = ?", id).
		Update("updated_at", time.Now())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAssessmentNotFound
	}
	return nil
}

func (r *AssessmentRepositoryImpl) AverageScore(userID string) (float64, error) {
	var avg *float64
	err := r.db.Model(&models.Assessment{}).
		Where("user_id = ?", userID).
		Select("AVG(quiz_score)").
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}

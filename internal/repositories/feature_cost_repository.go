package repositories

import (
	"errors"
	"time"

	"careerpilot_backend/internal/models"

	"gorm.io/gorm"
)

var ErrFeatureCostNotFound = errors.New("feature cost not found")

type FeatureCostRepository interface {
	// FindByName misses with ErrFeatureCostNotFound; callers fall back to
	// the configured default cost.
	FindByName(feature string) (*models.FeatureCost, error)
	FindAll() ([]models.FeatureCost, error)

	// Upsert sets the cost for a feature, creating the row when absent.
	Upsert(feature string, cost int, description string) (*models.FeatureCost, error)
	Delete(feature string) error
}

type FeatureCostRepositoryImpl struct {
	db *gorm.DB
}

func NewFeatureCostRepository(db *gorm.DB) FeatureCostRepository {
	return &FeatureCostRepositoryImpl{db: db}
}

func (r *FeatureCostRepositoryImpl) FindByName(feature string) (*models.FeatureCost, error) {
	var cost models.FeatureCost
	err := r.db.First(&cost, "feature = ?", feature).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFeatureCostNotFound
		}
		return nil, err
	}
	return &cost, nil
}

func (r *FeatureCostRepositoryImpl) FindAll() ([]models.FeatureCost, error) {
	var costs []models.FeatureCost
	err := r.db.Order("feature ASC").Find(&costs).Error
	return costs, err
}

func (r *FeatureCostRepositoryImpl) Upsert(feature string, cost int, description string) (*models.FeatureCost, error) {
	var row models.FeatureCost
	err := r.db.Transaction(func(tx *gorm.DB) error {
		findErr := tx.First(&row, "feature = ?", feature).Error
		if findErr == nil {
			return tx.Model(&row).Updates(map[string]interface{}{
				"cost":        cost,
				"description": description,
				"updated_at":  time.Now(),
			}).Error
		}
		if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}

		row = models.FeatureCost{Feature: feature, Cost: cost, Description: description}
		return tx.Create(&row).Error
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *FeatureCostRepositoryImpl) Delete(feature string) error {
	result := r.db.Where("feature = ?", feature).Delete(&models.FeatureCost{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFeatureCostNotFound
	}
	return nil
}

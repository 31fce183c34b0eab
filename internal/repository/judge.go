package repository

import (
	"contest-backend/internal/database/models"

	"gorm.io/gorm"
)

// JudgeRepository handles database operations for judges
type JudgeRepository struct {
	db *gorm.DB
}

// NewJudgeRepository creates a new judge repository
func NewJudgeRepository(db *gorm.DB) *JudgeRepository {
	return &JudgeRepository{db: db}
}

// Create creates a new judge
func (r *JudgeRepository) Create(judge *models.Judge) error {
	return r.db.Create(judge).Error
}

// GetByID retrieves a judge by internal ID
func (r *JudgeRepository) GetByID(id uint) (*models.Judge, error) {
	var judge models.Judge
	err := r.db.First(&judge, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &judge, nil
}

// GetByExternalID retrieves a judge by external id
func (r *JudgeRepository) GetByExternalID(externalID string) (*models.Judge, error) {
	var judge models.Judge
	err := r.db.First(&judge, "external_id = ?", externalID).Error
	if err != nil {
		return nil, err
	}
	return &judge, nil
}

// Update updates a judge
func (r *JudgeRepository) Update(judge *models.Judge) error {
	return r.db.Save(judge).Error
}

// Delete removes a judge; their evaluations go with them via FK cascade
func (r *JudgeRepository) Delete(id uint) error {
	return r.db.Delete(&models.Judge{}, "id = ?", id).Error
}

// Count returns the number of judges
func (r *JudgeRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Judge{}).Count(&count).Error
	return count, err
}

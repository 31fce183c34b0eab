package repository

import (
	"contest-backend/internal/database/models"

	"gorm.io/gorm"
)

// EvaluationRepository handles database operations for evaluations
type EvaluationRepository struct {
	db *gorm.DB
}

// NewEvaluationRepository creates a new evaluation repository
func NewEvaluationRepository(db *gorm.DB) *EvaluationRepository {
	return &EvaluationRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *EvaluationRepository) WithTx(tx *gorm.DB) *EvaluationRepository {
	return &EvaluationRepository{db: tx}
}

// Create creates a new evaluation
func (r *EvaluationRepository) Create(evaluation *models.Evaluation) error {
	return r.db.Create(evaluation).Error
}

// Update updates an evaluation
func (r *EvaluationRepository) Update(evaluation *models.Evaluation) error {
	return r.db.Save(evaluation).Error
}

// GetByAccountAndJudge retrieves the evaluation for one (account, judge) pair
func (r *EvaluationRepository) GetByAccountAndJudge(accountID, judgeID uint) (*models.Evaluation, error) {
	var evaluation models.Evaluation
	err := r.db.First(&evaluation, "account_id = ? AND judge_id = ?", accountID, judgeID).Error
	if err != nil {
		return nil, err
	}
	return &evaluation, nil
}

// GetByAccountID retrieves all evaluations for an account
func (r *EvaluationRepository) GetByAccountID(accountID uint) ([]models.Evaluation, error) {
	var evaluations []models.Evaluation
	err := r.db.Where("account_id = ?", accountID).Order("judge_id").Find(&evaluations).Error
	return evaluations, err
}

// GetAll retrieves every evaluation system-wide
func (r *EvaluationRepository) GetAll() ([]models.Evaluation, error) {
	var evaluations []models.Evaluation
	err := r.db.Order("account_id, judge_id").Find(&evaluations).Error
	return evaluations, err
}

// Count returns the number of evaluations
func (r *EvaluationRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Evaluation{}).Count(&count).Error
	return count, err
}

// EvaluatedAccountIDs returns the distinct account ids that have at least one evaluation
func (r *EvaluationRepository) EvaluatedAccountIDs() ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Evaluation{}).Distinct("account_id").Pluck("account_id", &ids).Error
	return ids, err
}

// AverageTotal returns the arithmetic mean of evaluation totals, 0 when none exist
func (r *EvaluationRepository) AverageTotal() (float64, error) {
	var avg *float64
	err := r.db.Model(&models.Evaluation{}).Select("AVG(total_score)").Scan(&avg).Error
	if err != nil || avg == nil {
		return 0, err
	}
	return *avg, nil
}

package models

import "time"

// Evaluation holds one judge's scores for one account. The (account_id, judge_id) pair
// is unique; resubmission overwrites the existing row.
type Evaluation struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	AccountID          uint      `json:"account_id" gorm:"not null;uniqueIndex:idx_evaluations_account_judge"`
	JudgeID            uint      `json:"judge_id" gorm:"not null;uniqueIndex:idx_evaluations_account_judge"`
	InnovationScore    int       `json:"innovation_score" gorm:"not null"`
	FeasibilityScore   int       `json:"feasibility_score" gorm:"not null"`
	EffectivenessScore int       `json:"effectiveness_score" gorm:"not null"`
	TotalScore         int       `json:"total_score" gorm:"not null"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// TableName returns the table name for Evaluation
func (Evaluation) TableName() string {
	return "evaluations"
}

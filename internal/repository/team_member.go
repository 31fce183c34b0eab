package repository

import (
	"contest-backend/internal/database/models"

	"gorm.io/gorm"
)

// TeamMemberRepository handles database operations for roster entries
type TeamMemberRepository struct {
	db *gorm.DB
}

// NewTeamMemberRepository creates a new team member repository
func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *TeamMemberRepository) WithTx(tx *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: tx}
}

// GetByAccountID retrieves the roster for an account in insertion order
func (r *TeamMemberRepository) GetByAccountID(accountID uint) ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := r.db.Where("account_id = ?", accountID).Order("id").Find(&members).Error
	return members, err
}

// ReplaceForAccount deletes the existing roster and inserts the new one.
// Full-replace, not diffed; callers run this inside a transaction.
func (r *TeamMemberRepository) ReplaceForAccount(accountID uint, members []models.TeamMember) error {
	if err := r.db.Where("account_id = ?", accountID).Delete(&models.TeamMember{}).Error; err != nil {
		return err
	}
	if len(members) == 0 {
		return nil
	}
	for i := range members {
		members[i].AccountID = accountID
	}
	return r.db.Create(&members).Error
}

// DeleteForAccount removes all roster entries for an account
func (r *TeamMemberRepository) DeleteForAccount(accountID uint) error {
	return r.db.Where("account_id = ?", accountID).Delete(&models.TeamMember{}).Error
}

package repository

import (
	"contest-backend/internal/database/models"

	"gorm.io/gorm"
)

// AccountRepository handles database operations for accounts
type AccountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *AccountRepository) WithTx(tx *gorm.DB) *AccountRepository {
	return &AccountRepository{db: tx}
}

// Create creates a new account
func (r *AccountRepository) Create(account *models.Account) error {
	return r.db.Create(account).Error
}

// GetByID retrieves an account by internal ID
func (r *AccountRepository) GetByID(id uint) (*models.Account, error) {
	var account models.Account
	err := r.db.First(&account, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// GetByExternalID retrieves an account by its organizational external id
func (r *AccountRepository) GetByExternalID(externalID string) (*models.Account, error) {
	var account models.Account
	err := r.db.First(&account, "external_id = ?", externalID).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// GetWithRegistration retrieves an account with its roster and project preloaded
func (r *AccountRepository) GetWithRegistration(id uint) (*models.Account, error) {
	var account models.Account
	err := r.db.Preload("TeamMembers").Preload("Project").First(&account, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// Update updates an account
func (r *AccountRepository) Update(account *models.Account) error {
	return r.db.Save(account).Error
}

// Delete removes an account; team members and project go with it via FK cascade
func (r *AccountRepository) Delete(id uint) error {
	return r.db.Delete(&models.Account{}, "id = ?", id).Error
}

// GetAll retrieves all accounts with roster and project preloaded
func (r *AccountRepository) GetAll() ([]models.Account, error) {
	var accounts []models.Account
	err := r.db.Preload("TeamMembers").Preload("Project").Order("id").Find(&accounts).Error
	return accounts, err
}

// Count returns the number of accounts
func (r *AccountRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Account{}).Count(&count).Error
	return count, err
}

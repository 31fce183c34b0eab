package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"contest-backend/internal/database/models"
	apperrors "contest-backend/internal/errors"
	"contest-backend/internal/logger"
	"contest-backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AccountService owns account identity and password verification. The credential policy
// is login-only: an existing account's hash is never overwritten on a mismatched login.
type AccountService struct {
	repo *repository.AccountRepository
	log  *logger.Logger
}

// NewAccountService creates a new account service
func NewAccountService(repo *repository.AccountRepository) *AccountService {
	return &AccountService{
		repo: repo,
		log:  logger.New(),
	}
}

// LoginRequest represents a participant login
type LoginRequest struct {
	ExternalID string `json:"external_id"`
	Password   string `json:"password"`
}

// AccountResponse represents the response for account operations
type AccountResponse struct {
	ID         uint      `json:"id"`
	ExternalID string    `json:"external_id"`
	Name       string    `json:"name"`
	TeamName   string    `json:"team_name"`
	Department *string   `json:"department,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Login finds the account for an external id and verifies the password, creating the
// account on first login. A first-login race with the same external id is resolved by
// one rollback-and-reread retry; a second collision is a hard conflict.
func (s *AccountService) Login(req *LoginRequest) (*AccountResponse, error) {
	if strings.TrimSpace(req.Password) == "" {
		return nil, apperrors.ErrPasswordRequired
	}

	account, err := s.repo.GetByExternalID(req.ExternalID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to look up account: %w", err)
		}
		return s.createAccount(req)
	}

	if !verifyPassword(account.HashedPassword, req.Password) {
		return nil, apperrors.ErrPasswordMismatch
	}

	return toAccountResponse(account), nil
}

func (s *AccountService) createAccount(req *LoginRequest) (*AccountResponse, error) {
	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.Account{
		ExternalID:     req.ExternalID,
		HashedPassword: hash,
	}
	err = s.repo.Create(account)
	if err == nil {
		s.log.WithField("account_id", account.ID).Info("account created on first login")
		return toAccountResponse(account), nil
	}
	if !repository.IsUniqueViolation(err) {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	// Lost a first-login race: another request inserted the same external id between
	// our read and write. Re-read once and verify against the winner's hash.
	existing, rereadErr := s.repo.GetByExternalID(req.ExternalID)
	if rereadErr != nil {
		return nil, fmt.Errorf("failed to re-read account after conflict: %w", rereadErr)
	}
	if !verifyPassword(existing.HashedPassword, req.Password) {
		return nil, apperrors.ErrAccountConflict
	}
	return toAccountResponse(existing), nil
}

// List returns every account with roster and project preloaded (admin view)
func (s *AccountService) List() ([]AccountResponse, error) {
	accounts, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	responses := make([]AccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = *toAccountResponse(&accounts[i])
	}
	return responses, nil
}

// Delete removes an account and, via cascade, its roster and project (admin action)
func (s *AccountService) Delete(id uint) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAccountNotFound
		}
		return fmt.Errorf("failed to get account: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	s.log.WithField("account_id", id).Info("account deleted")
	return nil
}

func hashPassword(raw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func verifyPassword(hash, raw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw)) == nil
}

func toAccountResponse(account *models.Account) *AccountResponse {
	return &AccountResponse{
		ID:         account.ID,
		ExternalID: account.ExternalID,
		Name:       account.Name,
		TeamName:   account.TeamName,
		Department: account.Department,
		CreatedAt:  account.CreatedAt,
		UpdatedAt:  account.UpdatedAt,
	}
}

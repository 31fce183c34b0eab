package service

import (
	"errors"
	"fmt"
	"strings"

	"contest-backend/internal/auth"
	apperrors "contest-backend/internal/errors"
	"contest-backend/internal/logger"
	"contest-backend/internal/repository"

	"gorm.io/gorm"
)

// JudgeService verifies judge credentials and issues tokens. Judges are provisioned by
// the seed script; there is no self-registration path.
type JudgeService struct {
	repo *repository.JudgeRepository
	auth *auth.AuthService
	log  *logger.Logger
}

// NewJudgeService creates a new judge service
func NewJudgeService(repo *repository.JudgeRepository, authService *auth.AuthService) *JudgeService {
	return &JudgeService{
		repo: repo,
		auth: authService,
		log:  logger.New(),
	}
}

// JudgeLoginRequest represents a judge login
type JudgeLoginRequest struct {
	ExternalID string `json:"external_id"`
	Password   string `json:"password"`
}

// JudgeLoginResponse carries the issued bearer token
type JudgeLoginResponse struct {
	ID          uint   `json:"id"`
	ExternalID  string `json:"external_id"`
	Name        string `json:"name"`
	IsAdmin     bool   `json:"is_admin"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Login verifies judge credentials and issues a JWT carrying the admin claim
func (s *JudgeService) Login(req *JudgeLoginRequest) (*JudgeLoginResponse, error) {
	if strings.TrimSpace(req.Password) == "" {
		return nil, apperrors.ErrPasswordRequired
	}

	judge, err := s.repo.GetByExternalID(req.ExternalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJudgeNotFound
		}
		return nil, fmt.Errorf("failed to look up judge: %w", err)
	}

	if !verifyPassword(judge.HashedPassword, req.Password) {
		return nil, apperrors.ErrPasswordMismatch
	}

	token, expiresIn, err := s.auth.GenerateToken(judge)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.log.WithField("judge_id", judge.ID).Info("judge logged in")
	return &JudgeLoginResponse{
		ID:          judge.ID,
		ExternalID:  judge.ExternalID,
		Name:        judge.Name,
		IsAdmin:     judge.IsAdmin,
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   expiresIn,
	}, nil
}

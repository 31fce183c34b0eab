package auth

import (
	"fmt"
	"time"

	"contest-backend/internal/database/models"

	"github.com/golang-jwt/jwt/v5"
)

// JudgeClaims represents the JWT claims issued to a judge. The admin flag gates the
// statistics and account-listing reads.
type JudgeClaims struct {
	JudgeID    uint   `json:"judge_id"`
	ExternalID string `json:"external_id"`
	Name       string `json:"name"`
	IsAdmin    bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// AuthService issues and validates judge tokens
type AuthService struct {
	config *Config
}

// NewAuthService creates a new auth service
func NewAuthService(config *Config) (*AuthService, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	return &AuthService{config: config}, nil
}

// GenerateToken issues a signed JWT for a judge and returns the token together with
// its lifetime in seconds.
func (s *AuthService) GenerateToken(judge *models.Judge) (string, int64, error) {
	now := time.Now()
	expiry := time.Duration(s.config.TokenExpiryHours) * time.Hour

	claims := &JudgeClaims{
		JudgeID:    judge.ID,
		ExternalID: judge.ExternalID,
		Name:       judge.Name,
		IsAdmin:    judge.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.Issuer,
			Subject:   judge.ExternalID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", 0, fmt.Errorf("sign token: %w", err)
	}
	return signed, int64(expiry.Seconds()), nil
}

// ValidateToken parses and verifies a judge token
func (s *AuthService) ValidateToken(tokenString string) (*JudgeClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JudgeClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*JudgeClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

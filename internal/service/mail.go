package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"contest-backend/internal/config"
	apperrors "contest-backend/internal/errors"
	"contest-backend/internal/logger"

	"github.com/go-playground/validator/v10"
)

// MailService proxies outbound mail to the organizational relay. Fire-and-forget:
// relay failures surface as one generic error, the detail stays in the logs.
type MailService struct {
	relayURL string
	client   *http.Client
	validate *validator.Validate
	log      *logger.Logger
}

// NewMailService creates a new mail relay service
func NewMailService(cfg *config.Config) *MailService {
	timeout := time.Duration(cfg.MailRelayTimeoutSec) * time.Second
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &MailService{
		relayURL: cfg.MailRelayURL,
		client:   &http.Client{Timeout: timeout},
		validate: validator.New(),
		log:      logger.New(),
	}
}

// SendMailRequest represents an outbound message
type SendMailRequest struct {
	To      []string `json:"to" validate:"required,min=1"`
	Subject string   `json:"subject" validate:"required"`
	Body    string   `json:"body"`
}

// Send forwards the message to the relay
func (s *MailService) Send(ctx context.Context, req *SendMailRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return apperrors.NewValidationErrorf("invalid mail request: %v", err)
	}
	if s.relayURL == "" {
		return apperrors.ErrMailRelayNotConfigured
	}

	payload, err := json.Marshal(req)
	if err != nil {
		s.log.WithError(err).Error("failed to encode mail payload")
		return apperrors.ErrMailRelayFailed
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.relayURL, bytes.NewReader(payload))
	if err != nil {
		s.log.WithError(err).Error("failed to build relay request")
		return apperrors.ErrMailRelayFailed
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		s.log.WithError(err).Error("mail relay request failed")
		return apperrors.ErrMailRelayFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.log.WithError(fmt.Errorf("relay returned %d", resp.StatusCode)).Error("mail relay rejected message")
		return apperrors.ErrMailRelayFailed
	}

	s.log.WithField("recipients", len(req.To)).Info("mail forwarded to relay")
	return nil
}

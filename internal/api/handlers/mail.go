package handlers

import (
	"errors"
	"net/http"

	apperrors "contest-backend/internal/errors"
	"contest-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MailHandler handles HTTP requests for the outbound mail relay
type MailHandler struct {
	mailService service.MailServiceInterface
}

// NewMailHandler creates a new mail handler
func NewMailHandler(mailService service.MailServiceInterface) *MailHandler {
	return &MailHandler{
		mailService: mailService,
	}
}

// Send handles POST /api/mail
// @Summary Send mail via the relay
// @Description Forward a message to the organizational mail relay
// @Tags mail
// @Accept json
// @Produce json
// @Param message body service.SendMailRequest true "Message"
// @Success 200 {object} map[string]string "Forwarded"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 502 {object} ErrorResponse "Relay failure"
// @Router /mail [post]
func (h *MailHandler) Send(c *gin.Context) {
	var req service.SendMailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.To) == 0 || req.Subject == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to and subject are required"})
		return
	}

	if err := h.mailService.Send(c.Request.Context(), &req); err != nil {
		if errors.Is(err, apperrors.ErrMailRelayFailed) || errors.Is(err, apperrors.ErrMailRelayNotConfigured) {
			c.JSON(http.StatusBadGateway, gin.H{"error": apperrors.ErrMailRelayFailed.Error()})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "sent"})
}

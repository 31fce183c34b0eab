package handlers

import (
	"net/http"

	"contest-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RegistrationHandler handles HTTP requests for the registration transaction
type RegistrationHandler struct {
	registrationService service.RegistrationServiceInterface
}

// NewRegistrationHandler creates a new registration handler
func NewRegistrationHandler(registrationService service.RegistrationServiceInterface) *RegistrationHandler {
	return &RegistrationHandler{
		registrationService: registrationService,
	}
}

// Register handles POST /api/accounts/:id/registration
// @Summary Submit a registration
// @Description Replace the account's profile, team roster and project proposal in one transaction
// @Tags registration
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param registration body service.RegistrationRequest true "Registration payload"
// @Success 200 {object} service.RegistrationResponse "Stored registration"
// @Failure 400 {object} ErrorResponse "Validation failure"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 409 {object} ErrorResponse "Concurrent-write conflict"
// @Router /accounts/{id}/registration [post]
func (h *RegistrationHandler) Register(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid account ID"})
		return
	}

	var req service.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	registration, err := h.registrationService.Register(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, registration)
}

// GetRegistration handles GET /api/accounts/:id/registration
// @Summary Get a registration
// @Description Get the stored profile, roster and project for an account
// @Tags registration
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} service.RegistrationResponse "Stored registration"
// @Failure 400 {object} ErrorResponse "Invalid account ID"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Router /accounts/{id}/registration [get]
func (h *RegistrationHandler) GetRegistration(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid account ID"})
		return
	}

	registration, err := h.registrationService.GetRegistration(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, registration)
}

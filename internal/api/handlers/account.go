package handlers

import (
	"net/http"
	"strconv"

	"contest-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AccountHandler handles HTTP requests for account operations
type AccountHandler struct {
	accountService service.AccountServiceInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService service.AccountServiceInterface) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// Login handles POST /api/login
// @Summary Participant login
// @Description Verify credentials for an external id, creating the account on first login
// @Tags accounts
// @Accept json
// @Produce json
// @Param credentials body service.LoginRequest true "Login credentials"
// @Success 200 {object} service.AccountResponse "Authenticated account"
// @Failure 400 {object} ErrorResponse "Missing password"
// @Failure 401 {object} ErrorResponse "Password mismatch"
// @Failure 409 {object} ErrorResponse "First-login conflict"
// @Router /login [post]
func (h *AccountHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := h.accountService.Login(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

// ListAccounts handles GET /api/accounts (admin)
// @Summary List all accounts
// @Description Get every account with roster and project
// @Tags accounts
// @Produce json
// @Success 200 {array} service.AccountResponse "Accounts"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /accounts [get]
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	accounts, err := h.accountService.List()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, accounts)
}

// DeleteAccount handles DELETE /api/accounts/:id (admin)
// @Summary Delete an account
// @Description Remove an account and, via cascade, its team members and project
// @Tags accounts
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} map[string]string "Deleted"
// @Failure 400 {object} ErrorResponse "Invalid account ID"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Security BearerAuth
// @Router /accounts/{id} [delete]
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid account ID"})
		return
	}

	if err := h.accountService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}

func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

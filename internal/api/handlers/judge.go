package handlers

import (
	"net/http"

	"contest-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// JudgeHandler handles HTTP requests for judge authentication
type JudgeHandler struct {
	judgeService service.JudgeServiceInterface
}

// NewJudgeHandler creates a new judge handler
func NewJudgeHandler(judgeService service.JudgeServiceInterface) *JudgeHandler {
	return &JudgeHandler{
		judgeService: judgeService,
	}
}

// Login handles POST /api/judges/login
// @Summary Judge login
// @Description Verify judge credentials and issue a bearer token
// @Tags judges
// @Accept json
// @Produce json
// @Param credentials body service.JudgeLoginRequest true "Login credentials"
// @Success 200 {object} service.JudgeLoginResponse "Issued token"
// @Failure 401 {object} ErrorResponse "Password mismatch"
// @Failure 404 {object} ErrorResponse "Judge not found"
// @Router /judges/login [post]
func (h *JudgeHandler) Login(c *gin.Context) {
	var req service.JudgeLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.judgeService.Login(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

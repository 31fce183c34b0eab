package handlers

import (
	"net/http"

	"contest-backend/internal/auth"
	"contest-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EvaluationHandler handles HTTP requests for evaluation operations
type EvaluationHandler struct {
	evaluationService service.EvaluationServiceInterface
}

// NewEvaluationHandler creates a new evaluation handler
func NewEvaluationHandler(evaluationService service.EvaluationServiceInterface) *EvaluationHandler {
	return &EvaluationHandler{
		evaluationService: evaluationService,
	}
}

// Submit handles PUT /api/accounts/:id/evaluation
// @Summary Submit an evaluation
// @Description Record or overwrite the authenticated judge's scores for an account
// @Tags evaluations
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param scores body service.SubmitEvaluationRequest true "Sub-scores"
// @Success 200 {object} service.EvaluationResponse "Stored evaluation"
// @Failure 400 {object} ErrorResponse "Score outside its allowed steps"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Security BearerAuth
// @Router /accounts/{id}/evaluation [put]
func (h *EvaluationHandler) Submit(c *gin.Context) {
	accountID, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid account ID"})
		return
	}

	judgeID, ok := auth.JudgeIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "judge authentication required"})
		return
	}

	var req service.SubmitEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	evaluation, err := h.evaluationService.Submit(accountID, judgeID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, evaluation)
}

// GetOwn handles GET /api/accounts/:id/evaluation
// @Summary Get the caller's evaluation
// @Description Get the evaluation the authenticated judge stored for an account
// @Tags evaluations
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} service.EvaluationResponse "Stored evaluation"
// @Failure 404 {object} ErrorResponse "Evaluation not found"
// @Security BearerAuth
// @Router /accounts/{id}/evaluation [get]
func (h *EvaluationHandler) GetOwn(c *gin.Context) {
	accountID, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid account ID"})
		return
	}

	judgeID, ok := auth.JudgeIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "judge authentication required"})
		return
	}

	evaluation, err := h.evaluationService.GetForJudge(accountID, judgeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, evaluation)
}

// ListByAccount handles GET /api/accounts/:id/evaluations
// @Summary List evaluations for an account
// @Description Get every judge's evaluation for one account
// @Tags evaluations
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {array} service.EvaluationResponse "Evaluations"
// @Security BearerAuth
// @Router /accounts/{id}/evaluations [get]
func (h *EvaluationHandler) ListByAccount(c *gin.Context) {
	accountID, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid account ID"})
		return
	}

	evaluations, err := h.evaluationService.ListByAccount(accountID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, evaluations)
}

// ListAll handles GET /api/evaluations (admin)
// @Summary List all evaluations
// @Description Get every evaluation system-wide
// @Tags evaluations
// @Produce json
// @Success 200 {array} service.EvaluationResponse "Evaluations"
// @Security BearerAuth
// @Router /evaluations [get]
func (h *EvaluationHandler) ListAll(c *gin.Context) {
	evaluations, err := h.evaluationService.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, evaluations)
}

// Stats handles GET /api/stats (admin)
// @Summary Contest statistics
// @Description Get counts, mean total and the evaluated/pending split per project
// @Tags evaluations
// @Produce json
// @Success 200 {object} service.StatsResponse "Statistics"
// @Security BearerAuth
// @Router /stats [get]
func (h *EvaluationHandler) Stats(c *gin.Context) {
	stats, err := h.evaluationService.Stats()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

package service

import (
	"errors"
	"fmt"
	"math"
	"time"

	"contest-backend/internal/database/models"
	apperrors "contest-backend/internal/errors"
	"contest-backend/internal/logger"
	"contest-backend/internal/repository"

	"gorm.io/gorm"
)

// Allowed step sets per sub-score. Values outside the set are rejected with a
// field-specific message before anything is written.
var (
	innovationSteps    = []int{6, 12, 18, 24, 30}
	feasibilitySteps   = []int{6, 12, 18, 24, 30}
	effectivenessSteps = []int{8, 16, 24, 32, 40}
)

// EvaluationService records per-judge scores per account and computes derived totals
// and contest-wide statistics.
type EvaluationService struct {
	db          *gorm.DB
	evaluations *repository.EvaluationRepository
	accounts    *repository.AccountRepository
	judges      *repository.JudgeRepository
	projects    *repository.ProjectRepository
	log         *logger.Logger
}

// NewEvaluationService creates a new evaluation service
func NewEvaluationService(db *gorm.DB, evaluations *repository.EvaluationRepository, accounts *repository.AccountRepository, judges *repository.JudgeRepository, projects *repository.ProjectRepository) *EvaluationService {
	return &EvaluationService{
		db:          db,
		evaluations: evaluations,
		accounts:    accounts,
		judges:      judges,
		projects:    projects,
		log:         logger.New(),
	}
}

// SubmitEvaluationRequest represents a judge's score submission
type SubmitEvaluationRequest struct {
	InnovationScore    int `json:"innovation_score"`
	FeasibilityScore   int `json:"feasibility_score"`
	EffectivenessScore int `json:"effectiveness_score"`
}

// EvaluationResponse represents a stored evaluation
type EvaluationResponse struct {
	ID                 uint      `json:"id"`
	AccountID          uint      `json:"account_id"`
	JudgeID            uint      `json:"judge_id"`
	InnovationScore    int       `json:"innovation_score"`
	FeasibilityScore   int       `json:"feasibility_score"`
	EffectivenessScore int       `json:"effectiveness_score"`
	TotalScore         int       `json:"total_score"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ProjectProgress is the completed/pending split for one submitted project
type ProjectProgress struct {
	AccountID   uint   `json:"account_id"`
	ProjectName string `json:"project_name"`
	TeamName    string `json:"team_name"`
	Completed   bool   `json:"completed"`
}

// StatsResponse represents contest-wide evaluation statistics
type StatsResponse struct {
	ProjectCount       int64             `json:"project_count"`
	JudgeCount         int64             `json:"judge_count"`
	EvaluationCount    int64             `json:"evaluation_count"`
	AverageTotal       float64           `json:"average_total"`
	DepartmentProjects map[string]int64  `json:"department_projects"`
	Progress           []ProjectProgress `json:"progress"`
}

// Submit validates the sub-scores and upserts the evaluation for (account, judge).
// Resubmission overwrites the prior scores and recomputes the total.
func (s *EvaluationService) Submit(accountID, judgeID uint, req *SubmitEvaluationRequest) (*EvaluationResponse, error) {
	if err := validateScores(req); err != nil {
		return nil, err
	}
	total := req.InnovationScore + req.FeasibilityScore + req.EffectivenessScore

	var result *models.Evaluation
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.accounts.WithTx(tx).GetByID(accountID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrAccountNotFound
			}
			return fmt.Errorf("failed to load account: %w", err)
		}

		evaluations := s.evaluations.WithTx(tx)
		existing, err := evaluations.GetByAccountAndJudge(accountID, judgeID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to load evaluation: %w", err)
		}

		if existing != nil {
			existing.InnovationScore = req.InnovationScore
			existing.FeasibilityScore = req.FeasibilityScore
			existing.EffectivenessScore = req.EffectivenessScore
			existing.TotalScore = total
			if err := evaluations.Update(existing); err != nil {
				return fmt.Errorf("failed to update evaluation: %w", err)
			}
			result = existing
			return nil
		}

		evaluation := &models.Evaluation{
			AccountID:          accountID,
			JudgeID:            judgeID,
			InnovationScore:    req.InnovationScore,
			FeasibilityScore:   req.FeasibilityScore,
			EffectivenessScore: req.EffectivenessScore,
			TotalScore:         total,
		}
		if err := evaluations.Create(evaluation); err != nil {
			return err
		}
		result = evaluation
		return nil
	})
	if err != nil {
		if repository.IsUniqueViolation(err) {
			// Two judges' sessions racing on the same pair; the committed row wins.
			return nil, apperrors.ErrEvaluationConflict
		}
		return nil, err
	}

	s.log.WithFields(map[string]interface{}{
		"account_id": accountID,
		"judge_id":   judgeID,
		"total":      total,
	}).Info("evaluation recorded")
	return toEvaluationResponse(result), nil
}

// GetForJudge returns the evaluation one judge stored for an account
func (s *EvaluationService) GetForJudge(accountID, judgeID uint) (*EvaluationResponse, error) {
	evaluation, err := s.evaluations.GetByAccountAndJudge(accountID, judgeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEvaluationNotFound
		}
		return nil, fmt.Errorf("failed to get evaluation: %w", err)
	}
	return toEvaluationResponse(evaluation), nil
}

// ListByAccount returns all evaluations recorded for an account
func (s *EvaluationService) ListByAccount(accountID uint) ([]EvaluationResponse, error) {
	evaluations, err := s.evaluations.GetByAccountID(accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}
	return toEvaluationResponses(evaluations), nil
}

// ListAll returns every evaluation system-wide
func (s *EvaluationService) ListAll() ([]EvaluationResponse, error) {
	evaluations, err := s.evaluations.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}
	return toEvaluationResponses(evaluations), nil
}

// Stats computes contest-wide statistics: entity counts, the mean total rounded to two
// decimals, per-department project counts, and the evaluated/pending split per project.
func (s *EvaluationService) Stats() (*StatsResponse, error) {
	projectCount, err := s.projects.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count projects: %w", err)
	}
	judgeCount, err := s.judges.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count judges: %w", err)
	}
	evaluationCount, err := s.evaluations.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count evaluations: %w", err)
	}
	average, err := s.evaluations.AverageTotal()
	if err != nil {
		return nil, fmt.Errorf("failed to average totals: %w", err)
	}
	departments, err := s.projects.CountByDepartment()
	if err != nil {
		return nil, fmt.Errorf("failed to count projects by department: %w", err)
	}
	progress, err := s.projectProgress()
	if err != nil {
		return nil, err
	}

	return &StatsResponse{
		ProjectCount:       projectCount,
		JudgeCount:         judgeCount,
		EvaluationCount:    evaluationCount,
		AverageTotal:       math.Round(average*100) / 100,
		DepartmentProjects: departments,
		Progress:           progress,
	}, nil
}

func (s *EvaluationService) projectProgress() ([]ProjectProgress, error) {
	projects, err := s.projects.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	evaluatedIDs, err := s.evaluations.EvaluatedAccountIDs()
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluated accounts: %w", err)
	}
	evaluated := make(map[uint]bool, len(evaluatedIDs))
	for _, id := range evaluatedIDs {
		evaluated[id] = true
	}

	progress := make([]ProjectProgress, len(projects))
	for i, p := range projects {
		entry := ProjectProgress{
			AccountID:   p.AccountID,
			ProjectName: p.Name,
			Completed:   evaluated[p.AccountID],
		}
		if account, err := s.accounts.GetByID(p.AccountID); err == nil {
			entry.TeamName = account.TeamName
		}
		progress[i] = entry
	}
	return progress, nil
}

func validateScores(req *SubmitEvaluationRequest) error {
	if !inSteps(req.InnovationScore, innovationSteps) {
		return apperrors.NewValidationError("innovation_score", stepMessage(innovationSteps))
	}
	if !inSteps(req.FeasibilityScore, feasibilitySteps) {
		return apperrors.NewValidationError("feasibility_score", stepMessage(feasibilitySteps))
	}
	if !inSteps(req.EffectivenessScore, effectivenessSteps) {
		return apperrors.NewValidationError("effectiveness_score", stepMessage(effectivenessSteps))
	}
	return nil
}

func inSteps(value int, steps []int) bool {
	for _, s := range steps {
		if value == s {
			return true
		}
	}
	return false
}

func stepMessage(steps []int) string {
	msg := "must be one of"
	for i, s := range steps {
		if i == 0 {
			msg = fmt.Sprintf("%s %d", msg, s)
		} else {
			msg = fmt.Sprintf("%s, %d", msg, s)
		}
	}
	return msg
}

func toEvaluationResponse(e *models.Evaluation) *EvaluationResponse {
	return &EvaluationResponse{
		ID:                 e.ID,
		AccountID:          e.AccountID,
		JudgeID:            e.JudgeID,
		InnovationScore:    e.InnovationScore,
		FeasibilityScore:   e.FeasibilityScore,
		EffectivenessScore: e.EffectivenessScore,
		TotalScore:         e.TotalScore,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

func toEvaluationResponses(evaluations []models.Evaluation) []EvaluationResponse {
	responses := make([]EvaluationResponse, len(evaluations))
	for i := range evaluations {
		responses[i] = *toEvaluationResponse(&evaluations[i])
	}
	return responses
}

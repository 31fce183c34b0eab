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

	"gorm.io/gorm"
)

// RegistrationService coordinates the multi-entity registration write: account profile,
// roster replacement and project upsert run inside one transaction, all or nothing.
type RegistrationService struct {
	db       *gorm.DB
	accounts *repository.AccountRepository
	members  *repository.TeamMemberRepository
	projects *repository.ProjectRepository
	deadline *time.Time
	now      func() time.Time
	log      *logger.Logger
}

// NewRegistrationService creates a new registration service. A nil deadline means
// registration never closes.
func NewRegistrationService(db *gorm.DB, accounts *repository.AccountRepository, members *repository.TeamMemberRepository, projects *repository.ProjectRepository, deadline *time.Time) *RegistrationService {
	return &RegistrationService{
		db:       db,
		accounts: accounts,
		members:  members,
		projects: projects,
		deadline: deadline,
		now:      time.Now,
		log:      logger.New(),
	}
}

// ProjectInput carries the free-text proposal fields. A blank name means
// "withdraw the project", not "store an empty project".
type ProjectInput struct {
	Name            string `json:"name"`
	TargetUser      string `json:"target_user"`
	Problem         string `json:"problem"`
	Solution        string `json:"solution"`
	DataSources     string `json:"data_sources"`
	Scenario        string `json:"scenario"`
	ExpectedBenefit string `json:"expected_benefit"`
}

// RegistrationRequest represents a full registration submission
type RegistrationRequest struct {
	ExternalID  string            `json:"external_id"`
	Name        string            `json:"name"`
	TeamName    string            `json:"team_name"`
	Department  string            `json:"department"`
	TeamMembers []TeamMemberInput `json:"team_members"`
	Project     ProjectInput      `json:"project"`
}

// TeamMemberResponse is one stored roster entry
type TeamMemberResponse struct {
	Name       string `json:"name"`
	ExternalID string `json:"external_id"`
}

// ProjectResponse represents a stored project proposal
type ProjectResponse struct {
	Name            string `json:"name"`
	TargetUser      string `json:"target_user"`
	Problem         string `json:"problem"`
	Solution        string `json:"solution"`
	DataSources     string `json:"data_sources"`
	Scenario        string `json:"scenario"`
	ExpectedBenefit string `json:"expected_benefit"`
}

// RegistrationResponse represents the stored registration state for an account
type RegistrationResponse struct {
	Account     AccountResponse      `json:"account"`
	TeamMembers []TeamMemberResponse `json:"team_members"`
	Project     *ProjectResponse     `json:"project,omitempty"`
}

// Register runs the registration transaction for an account. Any validation failure
// aborts the whole write; a uniqueness violation at commit surfaces as the generic
// conflict error so retries are indistinguishable from a concurrent-write race.
// Concurrent submissions for the same account are last-committed-write-wins.
func (s *RegistrationService) Register(accountID uint, req *RegistrationRequest) (*RegistrationResponse, error) {
	if s.deadline != nil && s.now().After(*s.deadline) {
		return nil, apperrors.ErrRegistrationClosed
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		accounts := s.accounts.WithTx(tx)

		account, err := accounts.GetByID(accountID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrAccountNotFound
			}
			return fmt.Errorf("failed to load account: %w", err)
		}

		// A payload carrying an external id must match the stored one; a silent
		// mismatch would let one account's payload overwrite another's roster.
		if payloadID := strings.TrimSpace(req.ExternalID); payloadID != "" && payloadID != account.ExternalID {
			return apperrors.ErrExternalIDMismatch
		}

		name := strings.TrimSpace(req.Name)
		if name == "" {
			return apperrors.ErrNameRequired
		}
		teamName := strings.TrimSpace(req.TeamName)
		if teamName == "" {
			return apperrors.ErrTeamNameRequired
		}

		roster, err := ValidateRoster(account.ExternalID, req.TeamMembers)
		if err != nil {
			return err
		}

		applyAccountFields(account, name, teamName, req.Department)
		if err := accounts.Update(account); err != nil {
			return fmt.Errorf("failed to update account: %w", err)
		}

		if err := s.members.WithTx(tx).ReplaceForAccount(accountID, roster); err != nil {
			return fmt.Errorf("failed to replace team members: %w", err)
		}

		if err := s.applyProject(tx, accountID, &req.Project); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		if repository.IsUniqueViolation(err) {
			s.log.WithField("account_id", accountID).Warn("registration hit a uniqueness conflict")
			return nil, apperrors.ErrRegistrationConflict
		}
		return nil, err
	}

	s.log.WithField("account_id", accountID).Info("registration committed")
	return s.GetRegistration(accountID)
}

// GetRegistration returns the stored registration state for an account
func (s *RegistrationService) GetRegistration(accountID uint) (*RegistrationResponse, error) {
	account, err := s.accounts.GetWithRegistration(accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to load registration: %w", err)
	}

	resp := &RegistrationResponse{
		Account:     *toAccountResponse(account),
		TeamMembers: make([]TeamMemberResponse, len(account.TeamMembers)),
	}
	for i, m := range account.TeamMembers {
		resp.TeamMembers[i] = TeamMemberResponse{Name: m.Name, ExternalID: m.ExternalID}
	}
	if account.Project != nil {
		resp.Project = &ProjectResponse{
			Name:            account.Project.Name,
			TargetUser:      account.Project.TargetUser,
			Problem:         account.Project.Problem,
			Solution:        account.Project.Solution,
			DataSources:     account.Project.DataSources,
			Scenario:        account.Project.Scenario,
			ExpectedBenefit: account.Project.ExpectedBenefit,
		}
	}
	return resp, nil
}

// applyAccountFields merges the profile fields onto the account. Name and team name are
// always overwritten; department follows partial-update-by-omission: a blank value
// preserves whatever is stored. Distinct from the project's delete-on-empty policy.
func applyAccountFields(account *models.Account, name, teamName, department string) {
	account.Name = name
	account.TeamName = teamName
	if dept := strings.TrimSpace(department); dept != "" {
		account.Department = &dept
	}
}

// applyProject upserts the proposal for an account. The four branches of the
// delete-on-empty policy, spelled out:
//   - existing project, non-blank name: overwrite every field in place
//   - existing project, blank name: delete the row (withdrawal)
//   - no project, non-blank name: create
//   - no project, blank name: no-op
func (s *RegistrationService) applyProject(tx *gorm.DB, accountID uint, input *ProjectInput) error {
	projects := s.projects.WithTx(tx)
	name := strings.TrimSpace(input.Name)

	existing, err := projects.GetByAccountID(accountID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to load project: %w", err)
	}

	if existing != nil {
		if name == "" {
			if err := projects.DeleteForAccount(accountID); err != nil {
				return fmt.Errorf("failed to delete project: %w", err)
			}
			return nil
		}
		existing.Name = name
		existing.TargetUser = input.TargetUser
		existing.Problem = input.Problem
		existing.Solution = input.Solution
		existing.DataSources = input.DataSources
		existing.Scenario = input.Scenario
		existing.ExpectedBenefit = input.ExpectedBenefit
		if err := projects.Update(existing); err != nil {
			return fmt.Errorf("failed to update project: %w", err)
		}
		return nil
	}

	if name == "" {
		return nil
	}
	project := &models.Project{
		AccountID:       accountID,
		Name:            name,
		TargetUser:      input.TargetUser,
		Problem:         input.Problem,
		Solution:        input.Solution,
		DataSources:     input.DataSources,
		Scenario:        input.Scenario,
		ExpectedBenefit: input.ExpectedBenefit,
	}
	if err := projects.Create(project); err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

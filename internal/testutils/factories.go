package testutils

import (
	"contest-backend/internal/database/models"

	"golang.org/x/crypto/bcrypt"
)

// AccountFactory provides methods to create test Account data
type AccountFactory struct{}

// NewAccountFactory creates a new AccountFactory
func NewAccountFactory() *AccountFactory {
	return &AccountFactory{}
}

// Create creates a test Account with default values. The password is "password123".
func (f *AccountFactory) Create() *models.Account {
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	return &models.Account{
		ExternalID:     "u1000",
		HashedPassword: string(hash),
		Name:           "Test Participant",
		TeamName:       "Test Team",
	}
}

// WithExternalID sets a custom external id
func (f *AccountFactory) WithExternalID(externalID string) *models.Account {
	account := f.Create()
	account.ExternalID = externalID
	return account
}

// WithDepartment sets a department
func (f *AccountFactory) WithDepartment(department string) *models.Account {
	account := f.Create()
	account.Department = &department
	return account
}

// WithPassword sets a custom password (bcrypt min cost, tests only)
func (f *AccountFactory) WithPassword(password string) *models.Account {
	account := f.Create()
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	account.HashedPassword = string(hash)
	return account
}

// JudgeFactory provides methods to create test Judge data
type JudgeFactory struct{}

// NewJudgeFactory creates a new JudgeFactory
func NewJudgeFactory() *JudgeFactory {
	return &JudgeFactory{}
}

// Create creates a test Judge with default values. The password is "judgepass".
func (f *JudgeFactory) Create() *models.Judge {
	hash, _ := bcrypt.GenerateFromPassword([]byte("judgepass"), bcrypt.MinCost)
	return &models.Judge{
		ExternalID:     "judge1",
		HashedPassword: string(hash),
		Name:           "Test Judge",
	}
}

// WithExternalID sets a custom external id
func (f *JudgeFactory) WithExternalID(externalID string) *models.Judge {
	judge := f.Create()
	judge.ExternalID = externalID
	return judge
}

// Admin creates a judge with the admin flag set
func (f *JudgeFactory) Admin() *models.Judge {
	judge := f.Create()
	judge.ExternalID = "admin"
	judge.IsAdmin = true
	return judge
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project owned by the given account
func (f *ProjectFactory) Create(accountID uint) *models.Project {
	return &models.Project{
		AccountID:       accountID,
		Name:            "Test Proposal",
		TargetUser:      "internal developers",
		Problem:         "manual toil",
		Solution:        "automate it",
		DataSources:     "build logs",
		Scenario:        "nightly batch",
		ExpectedBenefit: "saved hours",
	}
}

// EvaluationFactory provides methods to create test Evaluation data
type EvaluationFactory struct{}

// NewEvaluationFactory creates a new EvaluationFactory
func NewEvaluationFactory() *EvaluationFactory {
	return &EvaluationFactory{}
}

// Create creates a test Evaluation for the given pair with mid-range scores
func (f *EvaluationFactory) Create(accountID, judgeID uint) *models.Evaluation {
	return &models.Evaluation{
		AccountID:          accountID,
		JudgeID:            judgeID,
		InnovationScore:    18,
		FeasibilityScore:   24,
		EffectivenessScore: 32,
		TotalScore:         74,
	}
}

package service

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// AccountServiceInterface defines the interface for the account service
type AccountServiceInterface interface {
	Login(req *LoginRequest) (*AccountResponse, error)
	List() ([]AccountResponse, error)
	Delete(id uint) error
}

// RegistrationServiceInterface defines the interface for the registration service
type RegistrationServiceInterface interface {
	Register(accountID uint, req *RegistrationRequest) (*RegistrationResponse, error)
	GetRegistration(accountID uint) (*RegistrationResponse, error)
}

// EvaluationServiceInterface defines the interface for the evaluation service
type EvaluationServiceInterface interface {
	Submit(accountID, judgeID uint, req *SubmitEvaluationRequest) (*EvaluationResponse, error)
	GetForJudge(accountID, judgeID uint) (*EvaluationResponse, error)
	ListByAccount(accountID uint) ([]EvaluationResponse, error)
	ListAll() ([]EvaluationResponse, error)
	Stats() (*StatsResponse, error)
}

// JudgeServiceInterface defines the interface for the judge service
type JudgeServiceInterface interface {
	Login(req *JudgeLoginRequest) (*JudgeLoginResponse, error)
}

// MailServiceInterface defines the interface for the mail relay service
type MailServiceInterface interface {
	Send(ctx context.Context, req *SendMailRequest) error
}

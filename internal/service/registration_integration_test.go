//go:build integration

package service

import (
	"testing"
	"time"

	"contest-backend/internal/database/models"
	apperrors "contest-backend/internal/errors"
	"contest-backend/internal/repository"
	"contest-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

type RegistrationServiceIntegrationSuite struct {
	*testutils.BaseTestSuite
	service *RegistrationService
	account *models.Account
}

func TestRegistrationServiceIntegrationSuite(t *testing.T) {
	base := testutils.SetupTestSuite(t)
	suite.Run(t, &RegistrationServiceIntegrationSuite{BaseTestSuite: base})
}

func (s *RegistrationServiceIntegrationSuite) SetupTest() {
	s.BaseTestSuite.SetupTest()
	s.service = NewRegistrationService(
		s.DB,
		repository.NewAccountRepository(s.DB),
		repository.NewTeamMemberRepository(s.DB),
		repository.NewProjectRepository(s.DB),
		nil,
	)
	s.account = testutils.NewAccountFactory().WithExternalID("u100")
	s.Require().NoError(s.DB.Create(s.account).Error)
}

func (s *RegistrationServiceIntegrationSuite) validRequest() *RegistrationRequest {
	return &RegistrationRequest{
		Name:     "Alice",
		TeamName: "Team One",
		TeamMembers: []TeamMemberInput{
			{Name: "Bob", ExternalID: "u101"},
			{Name: "Carol", ExternalID: "u102"},
		},
		Project: ProjectInput{
			Name:       "Assistant",
			TargetUser: "support agents",
			Problem:    "slow responses",
			Solution:   "suggest drafts",
		},
	}
}

func (s *RegistrationServiceIntegrationSuite) TestRegisterStoresEverything() {
	resp, err := s.service.Register(s.account.ID, s.validRequest())
	s.Require().NoError(err)

	s.Equal("Alice", resp.Account.Name)
	s.Equal("Team One", resp.Account.TeamName)
	s.Len(resp.TeamMembers, 2)
	s.Require().NotNil(resp.Project)
	s.Equal("Assistant", resp.Project.Name)
}

func (s *RegistrationServiceIntegrationSuite) TestRegisterIsIdempotent() {
	req := s.validRequest()
	first, err := s.service.Register(s.account.ID, req)
	s.Require().NoError(err)
	second, err := s.service.Register(s.account.ID, req)
	s.Require().NoError(err)

	s.Equal(first.TeamMembers, second.TeamMembers)
	s.Equal(first.Project, second.Project)

	// The roster is replaced, not appended.
	var memberCount int64
	s.DB.Table("team_members").Where("account_id = ?", s.account.ID).Count(&memberCount)
	s.Equal(int64(2), memberCount)
}

func (s *RegistrationServiceIntegrationSuite) TestRosterIsFullyReplaced() {
	_, err := s.service.Register(s.account.ID, s.validRequest())
	s.Require().NoError(err)

	req := s.validRequest()
	req.TeamMembers = []TeamMemberInput{{Name: "Dave", ExternalID: "u103"}}
	resp, err := s.service.Register(s.account.ID, req)
	s.Require().NoError(err)

	s.Require().Len(resp.TeamMembers, 1)
	s.Equal("u103", resp.TeamMembers[0].ExternalID)
}

func (s *RegistrationServiceIntegrationSuite) TestEmptyRosterClearsMembers() {
	_, err := s.service.Register(s.account.ID, s.validRequest())
	s.Require().NoError(err)

	req := s.validRequest()
	req.TeamMembers = nil
	resp, err := s.service.Register(s.account.ID, req)
	s.Require().NoError(err)
	s.Empty(resp.TeamMembers)
}

func (s *RegistrationServiceIntegrationSuite) TestBlankProjectNameWithdrawsProject() {
	_, err := s.service.Register(s.account.ID, s.validRequest())
	s.Require().NoError(err)

	req := s.validRequest()
	req.Project = ProjectInput{}
	resp, err := s.service.Register(s.account.ID, req)
	s.Require().NoError(err)
	s.Nil(resp.Project)

	// Withdrawing twice is a no-op, not an error.
	resp, err = s.service.Register(s.account.ID, req)
	s.Require().NoError(err)
	s.Nil(resp.Project)
}

func (s *RegistrationServiceIntegrationSuite) TestProjectOverwriteReplacesAllFields() {
	_, err := s.service.Register(s.account.ID, s.validRequest())
	s.Require().NoError(err)

	req := s.validRequest()
	req.Project = ProjectInput{Name: "Assistant v2"}
	resp, err := s.service.Register(s.account.ID, req)
	s.Require().NoError(err)

	s.Require().NotNil(resp.Project)
	s.Equal("Assistant v2", resp.Project.Name)
	// Fields omitted from the overwrite are cleared, not preserved.
	s.Empty(resp.Project.TargetUser)
	s.Empty(resp.Project.Problem)
}

func (s *RegistrationServiceIntegrationSuite) TestDepartmentPartialUpdate() {
	req := s.validRequest()
	req.Department = "engineering"
	resp, err := s.service.Register(s.account.ID, req)
	s.Require().NoError(err)
	s.Require().NotNil(resp.Account.Department)
	s.Equal("engineering", *resp.Account.Department)

	// A blank department preserves the stored value.
	req.Department = "  "
	resp, err = s.service.Register(s.account.ID, req)
	s.Require().NoError(err)
	s.Require().NotNil(resp.Account.Department)
	s.Equal("engineering", *resp.Account.Department)

	// A non-blank department overwrites it.
	req.Department = "sales"
	resp, err = s.service.Register(s.account.ID, req)
	s.Require().NoError(err)
	s.Require().NotNil(resp.Account.Department)
	s.Equal("sales", *resp.Account.Department)
}

func (s *RegistrationServiceIntegrationSuite) TestValidationFailureAbortsWholeWrite() {
	_, err := s.service.Register(s.account.ID, s.validRequest())
	s.Require().NoError(err)

	// An invalid roster must not disturb the committed state.
	req := s.validRequest()
	req.TeamName = "Changed"
	req.TeamMembers = append(req.TeamMembers,
		TeamMemberInput{Name: "D", ExternalID: "u104"},
		TeamMemberInput{Name: "E", ExternalID: "u105"},
	)
	_, err = s.service.Register(s.account.ID, req)
	s.ErrorIs(err, apperrors.ErrTooManyMembers)

	stored, err := s.service.GetRegistration(s.account.ID)
	s.Require().NoError(err)
	s.Equal("Team One", stored.Account.TeamName)
	s.Len(stored.TeamMembers, 2)
}

func (s *RegistrationServiceIntegrationSuite) TestRegisterValidationErrors() {
	tests := []struct {
		name    string
		mutate  func(*RegistrationRequest)
		wantErr error
	}{
		{"missing name", func(r *RegistrationRequest) { r.Name = "  " }, apperrors.ErrNameRequired},
		{"missing team name", func(r *RegistrationRequest) { r.TeamName = "" }, apperrors.ErrTeamNameRequired},
		{"external id mismatch", func(r *RegistrationRequest) { r.ExternalID = "u999" }, apperrors.ErrExternalIDMismatch},
		{"self as member", func(r *RegistrationRequest) {
			r.TeamMembers = []TeamMemberInput{{Name: "Me", ExternalID: "u100"}}
		}, apperrors.ErrSelfAsMember},
		{"duplicate member", func(r *RegistrationRequest) {
			r.TeamMembers = []TeamMemberInput{
				{Name: "Bob", ExternalID: "u101"},
				{Name: "Bob again", ExternalID: "u101"},
			}
		}, apperrors.ErrDuplicateMember},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			req := s.validRequest()
			tt.mutate(req)
			_, err := s.service.Register(s.account.ID, req)
			s.ErrorIs(err, tt.wantErr)
		})
	}
}

func (s *RegistrationServiceIntegrationSuite) TestMatchingExternalIDAccepted() {
	req := s.validRequest()
	req.ExternalID = " u100 "
	_, err := s.service.Register(s.account.ID, req)
	s.NoError(err)
}

func (s *RegistrationServiceIntegrationSuite) TestRegisterUnknownAccount() {
	_, err := s.service.Register(99999, s.validRequest())
	s.ErrorIs(err, apperrors.ErrAccountNotFound)
}

func (s *RegistrationServiceIntegrationSuite) TestDeadlineGate() {
	past := time.Now().Add(-time.Hour)
	s.service.deadline = &past

	_, err := s.service.Register(s.account.ID, s.validRequest())
	s.ErrorIs(err, apperrors.ErrRegistrationClosed)

	future := time.Now().Add(time.Hour)
	s.service.deadline = &future
	_, err = s.service.Register(s.account.ID, s.validRequest())
	s.NoError(err)
}

func (s *RegistrationServiceIntegrationSuite) TestGetRegistrationUnknownAccount() {
	_, err := s.service.GetRegistration(99999)
	s.ErrorIs(err, apperrors.ErrAccountNotFound)
}

//go:build integration

package service

import (
	"testing"

	apperrors "contest-backend/internal/errors"
	"contest-backend/internal/repository"
	"contest-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

type AccountServiceIntegrationSuite struct {
	*testutils.BaseTestSuite
	service *AccountService
}

func TestAccountServiceIntegrationSuite(t *testing.T) {
	base := testutils.SetupTestSuite(t)
	suite.Run(t, &AccountServiceIntegrationSuite{BaseTestSuite: base})
}

func (s *AccountServiceIntegrationSuite) SetupTest() {
	s.BaseTestSuite.SetupTest()
	s.service = NewAccountService(repository.NewAccountRepository(s.DB))
}

func (s *AccountServiceIntegrationSuite) TestFirstLoginCreatesAccount() {
	account, err := s.service.Login(&LoginRequest{ExternalID: "u9", Password: "pw1"})
	s.Require().NoError(err)
	s.NotZero(account.ID)
	s.Equal("u9", account.ExternalID)

	// Same credentials authenticate against the stored hash.
	again, err := s.service.Login(&LoginRequest{ExternalID: "u9", Password: "pw1"})
	s.Require().NoError(err)
	s.Equal(account.ID, again.ID)
}

func (s *AccountServiceIntegrationSuite) TestWrongPasswordNeverRewritesHash() {
	created, err := s.service.Login(&LoginRequest{ExternalID: "u9", Password: "pw1"})
	s.Require().NoError(err)

	_, err = s.service.Login(&LoginRequest{ExternalID: "u9", Password: "pw2"})
	s.Require().Error(err)
	s.True(apperrors.IsAuthentication(err))

	// The original credentials still work; the mismatch did not overwrite anything.
	account, err := s.service.Login(&LoginRequest{ExternalID: "u9", Password: "pw1"})
	s.Require().NoError(err)
	s.Equal(created.ID, account.ID)
}

func (s *AccountServiceIntegrationSuite) TestEmptyPasswordRejected() {
	for _, password := range []string{"", "   "} {
		_, err := s.service.Login(&LoginRequest{ExternalID: "u9", Password: password})
		s.ErrorIs(err, apperrors.ErrPasswordRequired)
	}
}

func (s *AccountServiceIntegrationSuite) TestBlankExternalIDAccepted() {
	account, err := s.service.Login(&LoginRequest{ExternalID: "", Password: "pw1"})
	s.Require().NoError(err)
	s.Empty(account.ExternalID)
	s.NotZero(account.ID)
}

func (s *AccountServiceIntegrationSuite) TestListPreloadsRegistration() {
	factory := testutils.NewAccountFactory()
	first := factory.WithExternalID("u100")
	s.Require().NoError(s.DB.Create(first).Error)
	second := factory.WithExternalID("u200")
	s.Require().NoError(s.DB.Create(second).Error)

	accounts, err := s.service.List()
	s.Require().NoError(err)
	s.Len(accounts, 2)
}

func (s *AccountServiceIntegrationSuite) TestDeleteCascades() {
	account := testutils.NewAccountFactory().WithExternalID("u100")
	s.Require().NoError(s.DB.Create(account).Error)
	project := testutils.NewProjectFactory().Create(account.ID)
	s.Require().NoError(s.DB.Create(project).Error)

	s.Require().NoError(s.service.Delete(account.ID))

	var projectCount int64
	s.DB.Table("projects").Where("account_id = ?", account.ID).Count(&projectCount)
	s.Zero(projectCount)

	s.ErrorIs(s.service.Delete(account.ID), apperrors.ErrAccountNotFound)
}

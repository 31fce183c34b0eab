package handlers

import (
	"net/http"
	"testing"

	apperrors "contest-backend/internal/errors"
	"contest-backend/internal/mocks"
	"contest-backend/internal/service"
	"contest-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupAccountTest(t *testing.T) (*testutils.HTTPTestSuite, *mocks.MockAccountServiceInterface) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockAccountServiceInterface(ctrl)
	handler := NewAccountHandler(mockService)

	suite := testutils.SetupHTTPTest()
	suite.Router.POST("/api/login", handler.Login)
	suite.Router.GET("/api/accounts", handler.ListAccounts)
	suite.Router.DELETE("/api/accounts/:id", handler.DeleteAccount)

	return suite, mockService
}

func TestAccountHandler_Login(t *testing.T) {
	suite, mockService := setupAccountTest(t)

	mockService.EXPECT().
		Login(&service.LoginRequest{ExternalID: "u100", Password: "pw1"}).
		Return(&service.AccountResponse{ID: 1, ExternalID: "u100"}, nil)

	recorder := suite.MakeRequest(http.MethodPost, "/api/login", map[string]string{
		"external_id": "u100",
		"password":    "pw1",
	})

	var resp service.AccountResponse
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &resp)
	assert.Equal(t, uint(1), resp.ID)
	assert.Equal(t, "u100", resp.ExternalID)
}

func TestAccountHandler_Login_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"missing password", apperrors.ErrPasswordRequired, http.StatusBadRequest},
		{"wrong password", apperrors.ErrPasswordMismatch, http.StatusUnauthorized},
		{"first-login race lost twice", apperrors.ErrAccountConflict, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suite, mockService := setupAccountTest(t)
			mockService.EXPECT().Login(gomock.Any()).Return(nil, tt.serviceErr)

			recorder := suite.MakeRequest(http.MethodPost, "/api/login", map[string]string{
				"external_id": "u100",
				"password":    "pw1",
			})

			testutils.AssertErrorResponse(t, recorder, tt.wantStatus, tt.serviceErr.Error())
		})
	}
}

func TestAccountHandler_Login_InvalidBody(t *testing.T) {
	suite, _ := setupAccountTest(t)

	recorder := suite.MakeRequest(http.MethodPost, "/api/login", "not an object")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestAccountHandler_ListAccounts(t *testing.T) {
	suite, mockService := setupAccountTest(t)

	mockService.EXPECT().List().Return([]service.AccountResponse{
		{ID: 1, ExternalID: "u100"},
		{ID: 2, ExternalID: "u200"},
	}, nil)

	recorder := suite.MakeRequest(http.MethodGet, "/api/accounts", nil)

	var resp []service.AccountResponse
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &resp)
	assert.Len(t, resp, 2)
}

func TestAccountHandler_DeleteAccount(t *testing.T) {
	suite, mockService := setupAccountTest(t)

	mockService.EXPECT().Delete(uint(5)).Return(nil)

	recorder := suite.MakeRequest(http.MethodDelete, "/api/accounts/5", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestAccountHandler_DeleteAccount_NotFound(t *testing.T) {
	suite, mockService := setupAccountTest(t)

	mockService.EXPECT().Delete(uint(99)).Return(apperrors.ErrAccountNotFound)

	recorder := suite.MakeRequest(http.MethodDelete, "/api/accounts/99", nil)
	testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "account not found")
}

func TestAccountHandler_DeleteAccount_InvalidID(t *testing.T) {
	suite, _ := setupAccountTest(t)

	recorder := suite.MakeRequest(http.MethodDelete, "/api/accounts/abc", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

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

func setupMailTest(t *testing.T) (*testutils.HTTPTestSuite, *mocks.MockMailServiceInterface) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockMailServiceInterface(ctrl)
	handler := NewMailHandler(mockService)

	suite := testutils.SetupHTTPTest()
	suite.Router.POST("/api/mail", handler.Send)

	return suite, mockService
}

func TestMailHandler_Send(t *testing.T) {
	suite, mockService := setupMailTest(t)

	req := &service.SendMailRequest{
		To:      []string{"team@example.com"},
		Subject: "Registration received",
		Body:    "Thanks for registering.",
	}
	mockService.EXPECT().Send(gomock.Any(), req).Return(nil)

	recorder := suite.MakeRequest(http.MethodPost, "/api/mail", req)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestMailHandler_Send_MissingFields(t *testing.T) {
	suite, _ := setupMailTest(t)

	recorder := suite.MakeRequest(http.MethodPost, "/api/mail", map[string]interface{}{
		"body": "no recipients",
	})
	testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "to and subject are required")
}

func TestMailHandler_Send_RelayFailure(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
	}{
		{"relay unreachable", apperrors.ErrMailRelayFailed},
		{"relay not configured", apperrors.ErrMailRelayNotConfigured},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suite, mockService := setupMailTest(t)
			mockService.EXPECT().Send(gomock.Any(), gomock.Any()).Return(tt.serviceErr)

			recorder := suite.MakeRequest(http.MethodPost, "/api/mail", map[string]interface{}{
				"to":      []string{"team@example.com"},
				"subject": "hello",
			})

			testutils.AssertErrorResponse(t, recorder, http.StatusBadGateway, "failed to send email")
		})
	}
}

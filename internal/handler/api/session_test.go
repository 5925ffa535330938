//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"vista-ecoupon/internal/domain/member"
	"vista-ecoupon/internal/handler/api"
	resdto "vista-ecoupon/internal/handler/dto/response"
	"vista-ecoupon/internal/usecase/commands"
	"vista-ecoupon/tests/common/httptest"
	"vista-ecoupon/tests/common/testutil"
	commandsmock "vista-ecoupon/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SessionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSessionCommands
	handler      *api.SessionHandler
}

func (s *SessionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSessionCommands(s.mockCtrl)
	s.handler = api.NewSessionHandler(s.mockCommands)

	s.router.POST("/session/validate", s.handler.Validate)
	s.router.POST("/session/guest", s.handler.StartGuest)
}

func (s *SessionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSessionHandlerSuite(t *testing.T) {
	suite.Run(t, new(SessionHandlerTestSuite))
}

func (s *SessionHandlerTestSuite) TestValidate() {
	url := "/session/validate"
	reqBody := map[string]any{"identifier": "0812345678"}

	memberResult := &commands.SessionResult{
		Token:       "header.payload.signature",
		Identifier:  "0812345678",
		Entitlement: member.EntitlementMember,
		DisplayName: "Somchai Jaidee",
	}

	s.Run("success: returns 200 OK with session token for a member", func() {
		s.mockCommands.EXPECT().Validate(gomock.Any(), "0812345678").
			Return(memberResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Content-Type": "application/json; charset=utf-8"})
		s.Equal("header.payload.signature", response.Token)
		s.Equal("0812345678", response.Identifier)
		s.Equal("MEMBER", response.Entitlement)
		s.Equal("Somchai Jaidee", response.DisplayName)
	})

	s.Run("success: unknown identifier still starts a NON_MEMBER session", func() {
		nonMember := &commands.SessionResult{
			Token:       "header.payload.signature",
			Identifier:  "0899999999",
			Entitlement: member.EntitlementNonMember,
		}
		s.mockCommands.EXPECT().Validate(gomock.Any(), "0899999999").
			Return(nonMember, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"identifier": "0899999999"}, "")

		var response resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("NON_MEMBER", response.Entitlement)
		s.Empty(response.DisplayName)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: identifier (required)", mutate: testutil.Field("identifier", nil)},
			{name: "empty identifier", mutate: testutil.Field("identifier", "")},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "identity source down",
				commandsError:  commands.ErrIdentitySourceUnavailable,
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "temporarily unavailable",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Validate(gomock.Any(), "0812345678").
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *SessionHandlerTestSuite) TestStartGuest() {
	url := "/session/guest"

	s.Run("success: returns 200 OK with guest token", func() {
		guestResult := &commands.SessionResult{
			Token:       "header.payload.signature",
			Identifier:  member.GuestIdentifier,
			Entitlement: member.EntitlementNonMember,
		}
		s.mockCommands.EXPECT().StartGuest(gomock.Any()).
			Return(guestResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(member.GuestIdentifier, response.Identifier)
		s.Equal("NON_MEMBER", response.Entitlement)
	})

	s.Run("error: 500 Internal Server Error on token failure", func() {
		s.mockCommands.EXPECT().StartGuest(gomock.Any()).
			Return(nil, errors.New("signing failed")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

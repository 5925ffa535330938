//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"vista-ecoupon/internal/domain/member"
	"vista-ecoupon/internal/handler/api"
	resdto "vista-ecoupon/internal/handler/dto/response"
	"vista-ecoupon/internal/usecase/commands"
	"vista-ecoupon/internal/usecase/shared"
	"vista-ecoupon/tests/common/httptest"
	"vista-ecoupon/tests/common/testutil"
	commandsmock "vista-ecoupon/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RedemptionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRedemptionCommands
	handler      *api.RedemptionHandler
}

func (s *RedemptionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRedemptionCommands(s.mockCtrl)
	s.handler = api.NewRedemptionHandler(s.mockCommands)

	// Mock session middleware for testing
	sessionMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("session", shared.Session{
			Identifier:  "0812345678",
			CacheKey:    "0812345678",
			Entitlement: member.EntitlementMember,
			DisplayName: "Somchai Jaidee",
		})
		c.Next()
	}

	s.router.POST("/redemptions", sessionMiddleware, s.handler.Generate)
	s.router.POST("/redemptions/:value/confirm", sessionMiddleware, s.handler.Confirm)
	s.router.DELETE("/redemptions/:value", sessionMiddleware, s.handler.Discard)
}

func (s *RedemptionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRedemptionHandlerSuite(t *testing.T) {
	suite.Run(t, new(RedemptionHandlerTestSuite))
}

func (s *RedemptionHandlerTestSuite) TestGenerate() {
	url := "/redemptions"
	couponID := uuid.NewString()
	reqBody := map[string]any{"couponId": couponID, "branchName": "Siam"}

	branch := "Siam"
	expiresAt := time.Date(2026, 2, 15, 10, 5, 0, 0, time.UTC)
	returnView := &commands.CodeView{
		Value:            "MC1502-4821",
		CouponID:         couponID,
		BranchName:       &branch,
		ExpiresAt:        expiresAt,
		RemainingSeconds: 300,
	}

	s.Run("success: returns 201 Created with the code", func() {
		s.mockCommands.EXPECT().Generate(gomock.Any(), gomock.Any(), couponID, gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.CodeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("MC1502-4821", response.Value)
		s.Equal(couponID, response.CouponID)
		s.Equal(300, response.RemainingSeconds)
		s.Require().NotNil(response.BranchName)
		s.Equal("Siam", *response.BranchName)
	})

	s.Run("error: 400 Bad Request when couponId is missing", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("couponId", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "already used this period",
				commandsError:  commands.ErrCouponAlreadyUsed,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already used",
			},
			{
				name:           "coupon still locked",
				commandsError:  commands.ErrCouponLocked,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "not yet unlocked",
			},
			{
				name:           "coupon not eligible",
				commandsError:  commands.ErrCouponNotEligible,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "not available",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("store down"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Generate(gomock.Any(), gomock.Any(), couponID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *RedemptionHandlerTestSuite) TestConfirm() {
	url := "/redemptions/MC1502-4821/confirm"

	s.Run("success: returns 200 OK with Used status", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), gomock.Any(), "MC1502-4821").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Used", body["status"])
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "code not found",
				commandsError:  commands.ErrCodeNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "not found",
			},
			{
				name:           "code owned by another session",
				commandsError:  commands.ErrCodeNotOwned,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "another session",
			},
			{
				name:           "code expired",
				commandsError:  commands.ErrCodeExpired,
				expectedStatus: http.StatusGone,
				expectedMsg:    "expired",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("unexpected"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Confirm(gomock.Any(), gomock.Any(), "MC1502-4821").
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *RedemptionHandlerTestSuite) TestDiscard() {
	url := "/redemptions/MC1502-4821"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Discard(gomock.Any(), gomock.Any(), "MC1502-4821").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 404 Not Found for an unknown code", func() {
		s.mockCommands.EXPECT().Discard(gomock.Any(), gomock.Any(), "MC1502-4821").
			Return(commands.ErrCodeNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})
}

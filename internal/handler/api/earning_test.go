//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"parkeaze/internal/domain/user"
	"parkeaze/internal/handler/api"
	resdto "parkeaze/internal/handler/dto/response"
	"parkeaze/internal/usecase/commands"
	"parkeaze/internal/usecase/queries"
	"parkeaze/tests/common/httptest"
	commandsmock "parkeaze/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EarningHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockEarningCommands
	handler      *api.EarningHandler
	ownerID      uuid.UUID
}

func (s *EarningHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockEarningCommands(s.mockCtrl)
	s.handler = api.NewEarningHandler(s.mockCommands)
	s.ownerID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.ownerID)
		c.Set("user_role", user.RoleOwner)
		c.Next()
	}

	s.router.GET("/earnings/today", authMiddleware, s.handler.Today)
}

func (s *EarningHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEarningHandlerSuite(t *testing.T) {
	suite.Run(t, new(EarningHandlerTestSuite))
}

func (s *EarningHandlerTestSuite) TestToday() {
	url := "/earnings/today"

	s.Run("success: returns 200 OK with today's summary", func() {
		view := &queries.EarningView{
			OwnerID:       s.ownerID,
			Day:           time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
			TotalBookings: 3,
			DayEarning:    600,
			AppCommission: 60,
			TotalEarning:  540,
		}

		s.mockCommands.EXPECT().CollectToday(gomock.Any(), s.ownerID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.EarningResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(3, response.TotalBookings)
		s.InDelta(600.0, response.DayEarning, 1e-9)
		s.InDelta(60.0, response.AppCommission, 1e-9)
		s.InDelta(540.0, response.TotalEarning, 1e-9)
	})

	s.Run("error: 403 Forbidden for non-owner", func() {
		s.mockCommands.EXPECT().CollectToday(gomock.Any(), s.ownerID).
			Return(nil, commands.ErrNotOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Owner role required")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 500 on unexpected failure", func() {
		s.mockCommands.EXPECT().CollectToday(gomock.Any(), s.ownerID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

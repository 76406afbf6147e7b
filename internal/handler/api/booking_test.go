//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"parkeaze/internal/domain/booking"
	"parkeaze/internal/domain/lot"
	"parkeaze/internal/domain/user"
	"parkeaze/internal/handler/api"
	reqdto "parkeaze/internal/handler/dto/request"
	resdto "parkeaze/internal/handler/dto/response"
	"parkeaze/internal/usecase/commands"
	"parkeaze/internal/usecase/queries"
	"parkeaze/tests/common/builder"
	"parkeaze/tests/common/httptest"
	"parkeaze/tests/common/testutil"
	commandsmock "parkeaze/tests/mock/commands"
	queriesmock "parkeaze/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	seekerID     uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	reqdto.RegisterValidations()
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.seekerID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.seekerID)
		c.Set("user_role", user.RoleSeeker)
		c.Next()
	}

	s.router.POST("/bookings", authMiddleware, s.handler.Create)
	s.router.GET("/bookings", authMiddleware, s.handler.List)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.Get)
	s.router.POST("/bookings/:id/cancel", authMiddleware, s.handler.Cancel)
	s.router.POST("/bookings/entry", authMiddleware, s.handler.RedeemEntry)
	s.router.POST("/bookings/exit", authMiddleware, s.handler.RedeemExit)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"

	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
	returnView := builder.NewBookingBuilder().BuildView()

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.seekerID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal("staffed", response.Flow)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseBooking{
			{name: "missing field: lot_id", mutate: testutil.Field("lot_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: vehicle_type", mutate: testutil.Field("vehicle_type", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: vehicle_number", mutate: testutil.Field("vehicle_number", nil), expectCode: http.StatusBadRequest},
			{name: "unknown vehicle type", mutate: testutil.Field("vehicle_type", "bicycle"), expectCode: http.StatusBadRequest},
			{name: "zero duration", mutate: testutil.Field("duration_hours", 0), expectCode: http.StatusBadRequest},
			{name: "negative duration", mutate: testutil.Field("duration_hours", -1.5), expectCode: http.StatusBadRequest},
			{name: "omitted duration is accepted", mutate: testutil.Field("duration_hours", nil), expectCode: http.StatusCreated},
			{name: "two-wheeler is a valid type", mutate: testutil.Field("vehicle_type", "two-wheeler"), expectCode: http.StatusCreated},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.seekerID).
						Return(returnView, nil).Times(1)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				if tc.expectCode == http.StatusCreated {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
				}
			})
		}
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
				name:           "lot not found",
				commandsError:  commands.ErrLotNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Lot not found",
			},
			{
				name:           "lot not verified",
				commandsError:  commands.ErrLotNotVerified,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "verification",
			},
			{
				name:           "lot closed",
				commandsError:  lot.ErrLotClosed,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "closed",
			},
			{
				name:           "vehicle type not allowed",
				commandsError:  lot.ErrVehicleNotAllowed,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "not allowed",
			},
			{
				name:           "rate not configured",
				commandsError:  lot.ErrRateNotConfigured,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "rate not configured",
			},
			{
				name:           "missing duration for timed lot",
				commandsError:  booking.ErrDurationRequired,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "duration",
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
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.seekerID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	s.Run("success: returns 200 OK for the booking's seeker", func() {
		returnView := builder.NewBookingBuilder().BuildView()
		returnView.ID = bookingID
		returnView.SeekerID = s.seekerID

		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bookingID, response.ID)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: 404 Not Found for missing booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(nil, errors.New("no rows")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 404 Not Found when the actor is neither seeker nor owner", func() {
		returnView := builder.NewBookingBuilder().BuildView()
		returnView.ID = bookingID

		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancel() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/cancel"

	s.Run("success: returns 200 OK with cancelled booking", func() {
		returnView := builder.NewBookingBuilder().BuildView()
		returnView.ID = bookingID
		returnView.Status = "cancelled"

		s.mockCommands.EXPECT().Cancel(gomock.Any(), bookingID, s.seekerID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("cancelled", response.Status)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "booking not found",
				commandsError:  commands.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found",
			},
			{
				name:           "actor is not part of the booking",
				commandsError:  commands.ErrNotBookingActor,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found",
			},
			{
				name:           "booking already completed",
				commandsError:  booking.ErrNotActive,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "not active",
			},
			{
				name:           "entry already recorded",
				commandsError:  booking.ErrCancelAfterEntry,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Cannot cancel after entry",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Cancel(gomock.Any(), bookingID, s.seekerID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestRedeemEntry
// ================================================================================

func (s *BookingHandlerTestSuite) TestRedeemEntry() {
	url := "/bookings/entry"
	reqBody := reqdto.RedeemCodeRequest{Code: 1234}

	s.Run("success: returns 200 OK with entry recorded", func() {
		returnView := builder.NewBookingBuilder().BuildView()

		s.mockCommands.EXPECT().RedeemEntryCode(gomock.Any(), 1234).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on out-of-range codes", func() {
		cases := []testCaseBooking{
			{name: "three digit code", mutate: testutil.Field("code", 999), expectCode: http.StatusBadRequest},
			{name: "five digit code", mutate: testutil.Field("code", 10000), expectCode: http.StatusBadRequest},
			{name: "missing code", mutate: testutil.Field("code", nil), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 404 Not Found for unknown token", func() {
		s.mockCommands.EXPECT().RedeemEntryCode(gomock.Any(), 1234).
			Return(nil, commands.ErrWrongEntryCode).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Wrong entry token")
	})

	s.Run("error: 409 Conflict when entry was already recorded", func() {
		s.mockCommands.EXPECT().RedeemEntryCode(gomock.Any(), 1234).
			Return(nil, booking.ErrEntryAlreadyRecorded).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Entry time has already been recorded")
	})
}

// ================================================================================
// TestRedeemExit
// ================================================================================

func (s *BookingHandlerTestSuite) TestRedeemExit() {
	url := "/bookings/exit"
	reqBody := reqdto.RedeemCodeRequest{Code: 5678}

	s.Run("success: returns 200 OK with settled booking", func() {
		returnView := builder.NewBookingBuilder().BuildView()
		returnView.Status = "completed"
		returnView.Bill = &queries.BillView{ParkingAmount: 100, PlatformFees: 10, TotalAmount: 110}

		s.mockCommands.EXPECT().RedeemExitCode(gomock.Any(), 5678).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("completed", response.Status)
		s.Require().NotNil(response.Bill)
		s.InDelta(110.0, response.Bill.TotalAmount, 1e-9)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "wrong exit token",
				commandsError:  commands.ErrWrongExitCode,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Wrong exit token",
			},
			{
				name:           "exit before entry",
				commandsError:  booking.ErrEntryNotRecorded,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Cannot record exit before entry",
			},
			{
				name:           "exit already recorded",
				commandsError:  booking.ErrExitAlreadyRecorded,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Exit time has already been recorded",
			},
			{
				name:           "rate not configured",
				commandsError:  lot.ErrRateNotConfigured,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "rate not configured",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().RedeemExitCode(gomock.Any(), 5678).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

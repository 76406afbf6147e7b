//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	reqdto "parkeaze/internal/handler/dto/request"
	resdto "parkeaze/internal/handler/dto/response"
	"parkeaze/tests/common/httptest"
	"parkeaze/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const (
	signupURL   = "/api/auth/signup"
	lotsURL     = "/api/lots"
	bookingsURL = "/api/bookings"
	earningsURL = "/api/earnings/today"
)

type bookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

// signup registers a user and returns the access token.
func (s *bookingSuite) signup(phone, role string) string {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, signupURL, reqdto.SignupRequest{
		UserName:    "E2E " + role,
		PhoneNumber: phone,
		Password:    "password123",
		Role:        role,
	}, "")

	var auth resdto.AuthResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &auth)
	s.Require().NotEmpty(auth.AccessToken)
	return auth.AccessToken
}

// registerLot walks an owner through the whole onboarding wizard and opens
// the lot. Returns the lot ID.
func (s *bookingSuite) registerLot(ownerToken string, staffed bool, fourWheelerRate float64) uuid.UUID {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, lotsURL, reqdto.SetupLocationRequest{
		Name:      "E2E Parking",
		Address:   "12 MG Road, Bengaluru",
		Latitude:  12.9716,
		Longitude: 77.5946,
	}, ownerToken)
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPut, lotsURL+"/pricing", reqdto.ConfigurePricingRequest{
		RateFourWheeler: &fourWheelerRate,
		Staffed:         staffed,
	}, ownerToken)
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPut, lotsURL+"/documents", reqdto.SubmitDocumentsRequest{
		AadhaarNumber: "123412341234",
	}, ownerToken)
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPut, lotsURL+"/bank-details", reqdto.SubmitBankDetailsRequest{
		BankName:      "State Bank",
		AccountNumber: "123456789012",
		IFSCCode:      "SBIN0001234",
	}, ownerToken)
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, lotsURL+"/status", reqdto.SetLotStatusRequest{
		Status: "open",
	}, ownerToken)

	var lotResp resdto.LotResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &lotResp)
	s.Require().Equal("open", lotResp.Status)
	return lotResp.ID
}

func (s *bookingSuite) createBooking(seekerToken string, lotID uuid.UUID, duration *float64) resdto.BookingResponse {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, reqdto.CreateBookingRequest{
		LotID:         lotID,
		VehicleType:   "four-wheeler",
		VehicleNumber: "KA01AB1234",
		DurationHours: duration,
	}, seekerToken)

	var booking resdto.BookingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &booking)
	return booking
}

func (s *bookingSuite) TestTimedFlow() {
	s.Run("timed booking is billed immediately and completed", func() {
		ownerToken := s.signup("+919876500001", "owner")
		seekerToken := s.signup("+919876500002", "seeker")
		lotID := s.registerLot(ownerToken, false, 100)

		duration := 3.0
		booking := s.createBooking(seekerToken, lotID, &duration)

		s.Equal("timed", booking.Flow)
		s.Equal("completed", booking.Status)
		s.Nil(booking.EntryCode)
		s.Nil(booking.ExitCode)

		s.Require().NotNil(booking.Bill)
		s.InDelta(300.0, booking.Bill.ParkingAmount, 1e-9)
		s.InDelta(30.0, booking.Bill.PlatformFees, 1e-9)
		s.InDelta(330.0, booking.Bill.TotalAmount, 1e-9)

		s.Require().NotNil(booking.StartTime)
		s.Require().NotNil(booking.EndTime)
		s.Equal(3*time.Hour, booking.EndTime.Sub(*booking.StartTime))
	})

	s.Run("booking a timed lot without duration is rejected", func() {
		ownerToken := s.signup("+919876500003", "owner")
		seekerToken := s.signup("+919876500004", "seeker")
		lotID := s.registerLot(ownerToken, false, 100)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, reqdto.CreateBookingRequest{
			LotID:         lotID,
			VehicleType:   "four-wheeler",
			VehicleNumber: "KA01AB1234",
		}, seekerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "duration")
	})

	s.Run("disallowed vehicle type leaves no booking behind", func() {
		ownerToken := s.signup("+919876500005", "owner")
		seekerToken := s.signup("+919876500006", "seeker")
		lotID := s.registerLot(ownerToken, false, 100)

		duration := 2.0
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, reqdto.CreateBookingRequest{
			LotID:         lotID,
			VehicleType:   "two-wheeler",
			VehicleNumber: "KA01AB1234",
			DurationHours: &duration,
		}, seekerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "not allowed")

		var history []resdto.BookingListItem
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL, nil, seekerToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &history)
		s.Empty(history)
	})
}

func (s *bookingSuite) TestStaffedFlow() {
	s.Run("staffed cycle settles from entry and exit tokens", func() {
		ownerToken := s.signup("+919876500011", "owner")
		seekerToken := s.signup("+919876500012", "seeker")
		lotID := s.registerLot(ownerToken, true, 50)

		booking := s.createBooking(seekerToken, lotID, nil)

		s.Equal("staffed", booking.Flow)
		s.Equal("active", booking.Status)
		s.Nil(booking.Bill)
		s.Require().NotNil(booking.EntryCode)
		s.Require().NotNil(booking.ExitCode)
		s.GreaterOrEqual(*booking.EntryCode, 1000)
		s.LessOrEqual(*booking.EntryCode, 9999)
		s.NotEqual(*booking.EntryCode, *booking.ExitCode)

		// Exit before entry must be refused.
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL+"/exit",
			reqdto.RedeemCodeRequest{Code: *booking.ExitCode}, ownerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Cannot record exit before entry")

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL+"/entry",
			reqdto.RedeemCodeRequest{Code: *booking.EntryCode}, ownerToken)
		var afterEntry resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &afterEntry)
		s.Require().NotNil(afterEntry.StartTime)
		s.Nil(afterEntry.Bill)

		// A second entry redemption is refused.
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL+"/entry",
			reqdto.RedeemCodeRequest{Code: *booking.EntryCode}, ownerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Entry time has already been recorded")

		// Backdate the entry so the settled duration is two hours.
		_, err := s.DB.Exec(s.T().Context(),
			"UPDATE bookings SET start_time = now() - interval '2 hours' WHERE id = $1", booking.ID)
		s.Require().NoError(err)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL+"/exit",
			reqdto.RedeemCodeRequest{Code: *booking.ExitCode}, ownerToken)
		var settled resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &settled)

		s.Equal("completed", settled.Status)
		s.Require().NotNil(settled.EndTime)
		s.Require().NotNil(settled.DurationHours)
		s.InDelta(2.0, *settled.DurationHours, 0.05)
		s.Require().NotNil(settled.Bill)
		s.InDelta(100.0, settled.Bill.ParkingAmount, 2)
		s.InDelta(10.0, settled.Bill.PlatformFees, 0.2)
		s.InDelta(110.0, settled.Bill.TotalAmount, 2.2)

		// The settled booking no longer holds its tokens.
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL+"/exit",
			reqdto.RedeemCodeRequest{Code: *booking.ExitCode}, ownerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Wrong exit token")
	})

	s.Run("wrong token is rejected without touching any booking", func() {
		ownerToken := s.signup("+919876500013", "owner")
		seekerToken := s.signup("+919876500014", "seeker")
		lotID := s.registerLot(ownerToken, true, 50)

		booking := s.createBooking(seekerToken, lotID, nil)

		wrong := 1000
		for wrong == *booking.EntryCode || wrong == *booking.ExitCode {
			wrong++
		}
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL+"/entry",
			reqdto.RedeemCodeRequest{Code: wrong}, ownerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Wrong entry token")
	})

	s.Run("active booking can be cancelled before entry", func() {
		ownerToken := s.signup("+919876500015", "owner")
		seekerToken := s.signup("+919876500016", "seeker")
		lotID := s.registerLot(ownerToken, true, 50)

		booking := s.createBooking(seekerToken, lotID, nil)

		url := fmt.Sprintf("%s/%s/cancel", bookingsURL, booking.ID)
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url, nil, seekerToken)
		var cancelled resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &cancelled)
		s.Equal("cancelled", cancelled.Status)

		// The cancelled booking's tokens are dead.
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL+"/entry",
			reqdto.RedeemCodeRequest{Code: *booking.EntryCode}, ownerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Wrong entry token")
	})
}

func (s *bookingSuite) TestEarnings() {
	s.Run("daily summary aggregates completed bookings and overwrites on repeat", func() {
		ownerToken := s.signup("+919876500021", "owner")
		seekerToken := s.signup("+919876500022", "seeker")
		lotID := s.registerLot(ownerToken, false, 100)

		one := 1.0
		two := 2.0
		s.createBooking(seekerToken, lotID, &one)
		s.createBooking(seekerToken, lotID, &two)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, earningsURL, nil, ownerToken)
		var earnings resdto.EarningResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &earnings)

		s.Equal(2, earnings.TotalBookings)
		s.InDelta(330.0, earnings.DayEarning, 1e-9)
		s.InDelta(30.0, earnings.AppCommission, 1e-9)
		s.InDelta(300.0, earnings.TotalEarning, 1e-9)

		// Recomputing must overwrite, not accumulate.
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, earningsURL, nil, ownerToken)
		var again resdto.EarningResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &again)
		s.Equal(earnings.TotalBookings, again.TotalBookings)
		s.InDelta(earnings.DayEarning, again.DayEarning, 1e-9)
	})

	s.Run("day with no bookings yields a zero summary", func() {
		ownerToken := s.signup("+919876500023", "owner")
		s.registerLot(ownerToken, false, 100)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, earningsURL, nil, ownerToken)
		var earnings resdto.EarningResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &earnings)

		s.Equal(0, earnings.TotalBookings)
		s.Zero(earnings.DayEarning)
		s.Zero(earnings.TotalEarning)
	})

	s.Run("seeker cannot read earnings", func() {
		seekerToken := s.signup("+919876500024", "seeker")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, earningsURL, nil, seekerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Owner role required")
	})
}

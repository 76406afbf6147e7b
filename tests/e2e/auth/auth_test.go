//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	reqdto "parkeaze/internal/handler/dto/request"
	resdto "parkeaze/internal/handler/dto/response"
	"parkeaze/tests/common/httptest"
	"parkeaze/tests/e2e"

	"github.com/stretchr/testify/suite"
)

const (
	signupURL = "/api/auth/signup"
	loginURL  = "/api/auth/login"
	meURL     = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) signup(phone, role string) resdto.AuthResponse {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, signupURL, reqdto.SignupRequest{
		UserName:    "E2E " + role,
		PhoneNumber: phone,
		Password:    "password123",
		Role:        role,
	}, "")

	var auth resdto.AuthResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &auth)
	return auth
}

func (s *authSuite) TestSignup() {
	s.Run("signup issues a token and a cookie", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, signupURL, reqdto.SignupRequest{
			UserName:    "First Seeker",
			PhoneNumber: "+919876540001",
			Password:    "password123",
			Role:        "seeker",
		}, "")

		var auth resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &auth)
		s.NotEmpty(auth.AccessToken)
		s.Equal("seeker", auth.Role)
		s.NotNil(httptest.ExtractCookie(rec, "access_token"))
	})

	s.Run("duplicate phone number is rejected", func() {
		s.signup("+919876540002", "seeker")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, signupURL, reqdto.SignupRequest{
			UserName:    "Second Seeker",
			PhoneNumber: "+919876540002",
			Password:    "password123",
			Role:        "seeker",
		}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Phone number already registered")
	})

	s.Run("invalid role is rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, signupURL, reqdto.SignupRequest{
			UserName:    "Admin Wannabe",
			PhoneNumber: "+919876540003",
			Password:    "password123",
			Role:        "admin",
		}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *authSuite) TestLogin() {
	s.Run("login with valid credentials", func() {
		s.signup("+919876540011", "owner")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, reqdto.LoginRequest{
			PhoneNumber: "+919876540011",
			Password:    "password123",
		}, "")

		var auth resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &auth)
		s.Equal("owner", auth.Role)
		s.NotEmpty(auth.AccessToken)
	})

	s.Run("wrong password is rejected", func() {
		s.signup("+919876540012", "seeker")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, reqdto.LoginRequest{
			PhoneNumber: "+919876540012",
			Password:    "wrongpassword",
		}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("unknown phone number is rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, reqdto.LoginRequest{
			PhoneNumber: "+919876549999",
			Password:    "password123",
		}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *authSuite) TestMe() {
	s.Run("authenticated user reads own profile", func() {
		auth := s.signup("+919876540021", "seeker")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, auth.AccessToken)

		var me resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &me)
		s.Equal(auth.UserID, me.ID)
		s.Equal("+919876540021", me.PhoneNumber)
	})

	s.Run("missing token is rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *authSuite) TestProfile() {
	s.Run("profile update changes the name only", func() {
		auth := s.signup("+919876540031", "seeker")

		newName := "Renamed Seeker"
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, "/api/users/profile", reqdto.UpdateProfileRequest{
			UserName: &newName,
		}, auth.AccessToken)

		var me resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &me)
		s.Equal("Renamed Seeker", me.UserName)
		s.Equal("+919876540031", me.PhoneNumber)
	})

	s.Run("password change requires the current password", func() {
		auth := s.signup("+919876540032", "seeker")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, "/api/users/password", reqdto.ChangePasswordRequest{
			CurrentPassword: "wrongpassword",
			NewPassword:     "newpassword123",
		}, auth.AccessToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Current password is incorrect")

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, "/api/users/password", reqdto.ChangePasswordRequest{
			CurrentPassword: "password123",
			NewPassword:     "newpassword123",
		}, auth.AccessToken)
		s.Equal(http.StatusNoContent, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, reqdto.LoginRequest{
			PhoneNumber: "+919876540032",
			Password:    "newpassword123",
		}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

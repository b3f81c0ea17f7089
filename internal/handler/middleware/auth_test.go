//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"salon-booking/internal/domain/user"
	"salon-booking/internal/handler/middleware"
	"salon-booking/internal/pkg/cookie"
	"salon-booking/internal/usecase"
	"salon-booking/tests/common/httptest"
	usecasemock "salon-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockCtrl  *gomock.Controller
	validator *usecasemock.MockTokenValidator
	userID    uuid.UUID
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.validator = usecasemock.NewMockTokenValidator(s.mockCtrl)
	s.userID = uuid.New()

	mw := middleware.NewAuthMiddleware(s.validator)
	echo := func(c *gin.Context) {
		session, ok := middleware.GetSession(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": session.UserID.String(), "role": session.Role.String()})
	}

	s.router.GET("/any", mw.RequireAuth(), echo)
	s.router.GET("/admin", mw.RequireAuth(), mw.RequireRole(user.RoleAdmin), echo)
	s.router.GET("/staff", mw.RequireAuth(), mw.RequireRole(user.RoleProvider, user.RoleAdmin), echo)
	s.router.GET("/misconfigured", mw.RequireRole(user.RoleAdmin), echo)
}

func (s *AuthMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) session(role user.Role) usecase.Session {
	return usecase.Session{UserID: s.userID, Role: role}
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	s.Run("bearer header", func() {
		s.validator.EXPECT().ValidateToken("good").Return(s.session(user.RoleCustomer), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/any", nil, "good")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(s.userID.String(), body["userId"])
		s.Equal("customer", body["role"])
	})

	s.Run("cookie wins over header", func() {
		s.validator.EXPECT().ValidateToken("from-cookie").Return(s.session(user.RoleCustomer), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/any", nil, "from-header",
			&http.Cookie{Name: cookie.AccessTokenCookieName, Value: "from-cookie"})
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("missing token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/any", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("rejected token", func() {
		s.validator.EXPECT().ValidateToken("expired").Return(usecase.Session{}, errors.New("token is expired")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/any", nil, "expired")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func (s *AuthMiddlewareTestSuite) TestRequireRole() {
	testCases := []struct {
		name   string
		path   string
		role   user.Role
		expect int
	}{
		{name: "admin on admin route", path: "/admin", role: user.RoleAdmin, expect: http.StatusOK},
		{name: "customer on admin route", path: "/admin", role: user.RoleCustomer, expect: http.StatusForbidden},
		{name: "provider on admin route", path: "/admin", role: user.RoleProvider, expect: http.StatusForbidden},
		{name: "provider on staff route", path: "/staff", role: user.RoleProvider, expect: http.StatusOK},
		{name: "admin on staff route", path: "/staff", role: user.RoleAdmin, expect: http.StatusOK},
		{name: "customer on staff route", path: "/staff", role: user.RoleCustomer, expect: http.StatusForbidden},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.validator.EXPECT().ValidateToken("token").Return(s.session(tc.role), nil).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, tc.path, nil, "token")
			if tc.expect == http.StatusOK {
				s.Equal(http.StatusOK, rec.Code)
			} else {
				httptest.AssertErrorResponse(s.T(), rec, tc.expect, "Insufficient permissions")
			}
		})
	}

	s.Run("without RequireAuth the route fails closed", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/misconfigured", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

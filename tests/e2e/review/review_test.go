//go:build e2e

package review_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"salon-booking/internal/domain/user"
	"salon-booking/internal/handler/dto/request"
	"salon-booking/internal/handler/dto/response"
	"salon-booking/tests/common/authtest"
	"salon-booking/tests/common/dbtest"
	"salon-booking/tests/common/httptest"
	"salon-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reviewsURL         = "/api/reviews"
	providerReviewsURL = "/api/providers/%s/reviews"
	hideReviewURL      = "/api/admin/reviews/%s/hidden"
)

type reviewSuite struct {
	e2e.SharedSuite
}

func TestReviewSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(reviewSuite))
}

type fixture struct {
	customerToken string
	providerID    uuid.UUID
	bookingID     uuid.UUID
}

// setup creates a customer with a confirmed appointment that took place yesterday.
func (s *reviewSuite) setup() fixture {
	t := s.T()
	customerID := dbtest.CreateTestUser(t, s.DB, "priya@example.com", string(user.RoleCustomer))
	owner := dbtest.CreateTestUser(t, s.DB, "owner@example.com", string(user.RoleProvider))
	providerID := dbtest.CreateApprovedProvider(t, s.DB, owner, "Glow Studio")
	serviceID := dbtest.CreateService(t, s.DB, providerID, "Haircut", 50000, 60)
	yesterday := time.Now().In(s.Config.Booking.Location()).AddDate(0, 0, -1)
	bookingID := dbtest.CreateConfirmedBooking(t, s.DB, customerID, providerID, serviceID, yesterday)

	return fixture{
		customerToken: authtest.SignIn(t, s.Router, "priya@example.com", dbtest.DefaultPassword).AccessToken,
		providerID:    providerID,
		bookingID:     bookingID,
	}
}

func (s *reviewSuite) listPublic(providerID uuid.UUID) response.ReviewListResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, fmt.Sprintf(providerReviewsURL, providerID), nil, "")
	var list response.ReviewListResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &list)
	return list
}

func (s *reviewSuite) TestCreateReview() {
	s.Run("customer reviews a past appointment", func() {
		t := s.T()
		f := s.setup()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL,
			request.CreateReviewRequest{BookingID: f.bookingID, Rating: 5, Comment: "Great cut"}, f.customerToken)
		var created response.CreatedResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		want := []response.ReviewResponse{{
			ID:           created.ID,
			CustomerName: "priya",
			ProviderID:   f.providerID,
			ProviderName: "Glow Studio",
			BookingID:    f.bookingID,
			Rating:       5,
			Comment:      "Great cut",
		}}
		got := s.listPublic(f.providerID).Items
		if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(response.ReviewResponse{}, "CreatedAt")); diff != "" {
			t.Errorf("reviews mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("one review per booking", func() {
		t := s.T()
		f := s.setup()
		req := request.CreateReviewRequest{BookingID: f.bookingID, Rating: 4, Comment: "Nice"}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, req, f.customerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, req, f.customerToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("rating out of range", func() {
		t := s.T()
		f := s.setup()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL,
			request.CreateReviewRequest{BookingID: f.bookingID, Rating: 6, Comment: "Too good"}, f.customerToken)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	s.Run("someone else's booking", func() {
		t := s.T()
		f := s.setup()
		other := authtest.SignUp(t, s.DB, s.Router, "other@example.com", user.RoleCustomer).AccessToken

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL,
			request.CreateReviewRequest{BookingID: f.bookingID, Rating: 3, Comment: "Not mine"}, other)
		require.Contains(t, []int{http.StatusForbidden, http.StatusNotFound, http.StatusUnprocessableEntity}, w.Code, w.Body.String())
	})
}

func (s *reviewSuite) TestHideReview() {
	s.Run("hidden reviews leave the public list", func() {
		t := s.T()
		f := s.setup()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL,
			request.CreateReviewRequest{BookingID: f.bookingID, Rating: 1, Comment: "Rude staff"}, f.customerToken)
		var created response.CreatedResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.Len(t, s.listPublic(f.providerID).Items, 1)

		admin := authtest.SignUp(t, s.DB, s.Router, "admin@example.com", user.RoleAdmin).AccessToken

		hidden := true
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(hideReviewURL, created.ID),
			request.HideReviewRequest{Hidden: &hidden}, admin)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		require.Empty(t, s.listPublic(f.providerID).Items)
	})

	s.Run("customers cannot moderate", func() {
		t := s.T()
		f := s.setup()
		hidden := true

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(hideReviewURL, uuid.New()),
			request.HideReviewRequest{Hidden: &hidden}, f.customerToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

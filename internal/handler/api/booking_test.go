//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"salon-booking/internal/domain/user"
	"salon-booking/internal/handler/api"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/usecase/queries"
	"salon-booking/tests/common/builder"
	"salon-booking/tests/common/httptest"
	queriesmock "salon-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockCtrl   *gomock.Controller
	queries    *queriesmock.MockBookingQueries
	customerID uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.queries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.customerID = uuid.New()

	h := api.NewBookingHandler(s.queries, time.UTC)
	mine := s.router.Group("/bookings", withSession(s.customerID, user.RoleCustomer))
	mine.GET("", h.ListMine)
	mine.GET("/:id", h.Get)
	s.router.GET("/admin/bookings", h.AdminList)
	s.router.GET("/admin/revenue", h.Revenue)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestListMine() {
	view := builder.NewBookingBuilder().WithAddOn("Beard trim", 20000, 15).BuildView()
	s.queries.EXPECT().ListForCustomer(gomock.Any(), s.customerID, gomock.Any()).
		Return(queries.Page[queries.BookingView]{Items: []queries.BookingView{*view}, Page: 1, PageSize: 5, Total: 1}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")

	var response resdto.PageResponse[resdto.BookingResponse]
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Require().Len(response.Items, 1)
	s.Equal(view.TimeSlot, response.Items[0].TimeSlot)
	s.Equal([]string{"Beard trim"}, response.Items[0].RelatedServices)
	s.Equal(view.Amount, response.Items[0].Amount)
}

func (s *BookingHandlerTestSuite) TestGet() {
	id := uuid.New()

	s.Run("success", func() {
		view := builder.NewBookingBuilder().BuildView()
		s.queries.EXPECT().GetForCustomer(gomock.Any(), s.customerID, id).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(view.Status, response.Status)
	})

	s.Run("another customer's booking", func() {
		s.queries.EXPECT().GetForCustomer(gomock.Any(), s.customerID, id).Return(nil, queries.ErrBookingAccess).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

func (s *BookingHandlerTestSuite) TestAdmin() {
	s.Run("status filter is forwarded", func() {
		s.queries.EXPECT().ListAll(gomock.Any(), "confirmed", gomock.Any()).
			Return(queries.Page[queries.BookingView]{Page: 1, PageSize: 5}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings?status=confirmed", nil, "")

		var response resdto.PageResponse[resdto.BookingResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.NotNil(response.Items)
		s.Empty(response.Items)
	})

	s.Run("unknown status", func() {
		s.queries.EXPECT().ListAll(gomock.Any(), "teleported", gomock.Any()).
			Return(queries.Page[queries.BookingView]{}, queries.ErrInvalidStatusFilter).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings?status=teleported", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("revenue per provider", func() {
		row := queries.RevenueRow{ProviderID: uuid.New(), ProviderName: "Glow Studio", Bookings: 4, Amount: 200000, Currency: "INR"}
		s.queries.EXPECT().Revenue(gomock.Any(), gomock.Any()).
			Return(queries.Page[queries.RevenueRow]{Items: []queries.RevenueRow{row}, Page: 1, PageSize: 5, Total: 1}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/revenue?from=2026-10-01&to=2026-10-31", nil, "")

		var response resdto.PageResponse[resdto.RevenueResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Items, 1)
		s.Equal(resdto.RevenueResponse{
			ProviderID: row.ProviderID, ProviderName: "Glow Studio", Bookings: 4, Amount: 200000, Currency: "INR",
		}, response.Items[0])
	})
}

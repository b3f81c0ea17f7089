//go:build unit

package api_test

import (
	"context"
	"io"
	"net/http"
	"testing"

	"salon-booking/internal/domain/payment"
	"salon-booking/internal/domain/user"
	"salon-booking/internal/handler/api"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/usecase/commands"
	"salon-booking/tests/common/httptest"
	commandsmock "salon-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPaymentCommands
	customerID   uuid.UUID
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.customerID = uuid.New()

	h := api.NewPaymentHandler(s.mockCommands)
	g := s.router.Group("/payments/:orderId", withSession(s.customerID, user.RoleCustomer))
	g.POST("/verify", h.Verify)
	g.GET("/status", h.Status)
	g.GET("/receipt", h.Receipt)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func (s *PaymentHandlerTestSuite) TestVerify() {
	bookingID := uuid.New()

	testCases := []struct {
		name   string
		result *commands.PaymentResult
	}{
		{
			name:   "paid confirms the booking",
			result: &commands.PaymentResult{OrderID: "pi_1", BookingID: bookingID, Outcome: "paid", Attempts: 2, BookingStatus: "confirmed"},
		},
		{
			name: "failed carries the reason",
			result: &commands.PaymentResult{OrderID: "pi_1", BookingID: bookingID, Outcome: "failed", Attempts: 1,
				BookingStatus: "payment_failed", FailureReason: "card declined"},
		},
		{
			name:   "processing is not an error",
			result: &commands.PaymentResult{OrderID: "pi_1", BookingID: bookingID, Outcome: "processing", Attempts: 5, BookingStatus: "awaiting_payment"},
		},
		{
			name: "paid after the slot was released",
			result: &commands.PaymentResult{OrderID: "pi_1", BookingID: bookingID, Outcome: "paid", Attempts: 1,
				BookingStatus: "cancelled", RefundRequired: true},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockCommands.EXPECT().Verify(gomock.Any(), s.customerID, "pi_1").Return(tc.result, nil).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payments/pi_1/verify", nil, "")

			var response resdto.PaymentResponse
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
			s.Equal(tc.result.Outcome, response.Outcome)
			s.Equal(tc.result.BookingStatus, response.BookingStatus)
			s.Equal(tc.result.Attempts, response.Attempts)
			s.Equal(tc.result.FailureReason, response.FailureReason)
			s.Equal(tc.result.RefundRequired, response.RefundRequired)
			s.Equal(bookingID, response.BookingID)
		})
	}

	s.Run("error: another customer's order", func() {
		s.mockCommands.EXPECT().Verify(gomock.Any(), s.customerID, "pi_other").Return(nil, commands.ErrBookingAccess).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payments/pi_other/verify", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("error: unknown order", func() {
		s.mockCommands.EXPECT().Verify(gomock.Any(), s.customerID, "pi_missing").Return(nil, commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payments/pi_missing/verify", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *PaymentHandlerTestSuite) TestStatus() {
	s.mockCommands.EXPECT().Refresh(gomock.Any(), s.customerID, "pi_1").
		Return(&commands.PaymentResult{OrderID: "pi_1", Outcome: "paid", Attempts: 1, BookingStatus: "confirmed"}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments/pi_1/status", nil, "")

	var response resdto.PaymentResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal("paid", response.Outcome)
	s.Equal(1, response.Attempts)
}

func (s *PaymentHandlerTestSuite) TestReceipt() {
	s.Run("success: plain text document", func() {
		s.mockCommands.EXPECT().Receipt(gomock.Any(), s.customerID, "pi_1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ string, w io.Writer) error {
				_, err := io.WriteString(w, "RECEIPT pi_1\n")
				return err
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments/pi_1/receipt", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.Equal("RECEIPT pi_1\n", rec.Body.String())
		httptest.AssertHeaders(s.T(), rec, map[string]string{
			"Content-Type":        "text/plain; charset=utf-8",
			"Content-Disposition": `inline; filename="receipt-pi_1.txt"`,
		})
	})

	s.Run("error: unpaid order has no receipt", func() {
		s.mockCommands.EXPECT().Receipt(gomock.Any(), s.customerID, "pi_2", gomock.Any()).
			Return(payment.ErrReceiptNotPaid).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments/pi_2/receipt", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, payment.ErrReceiptNotPaid.Error())
	})
}

package api

import (
	"bytes"
	"context"
	"net/http"

	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PaymentHandler struct {
	commands commands.PaymentCommands
}

func NewPaymentHandler(cmds commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{commands: cmds}
}

// @Summary Verify a payment
// @Description Polls the gateway a bounded number of times. outcome is paid, failed or processing; processing is not an error.
// @Tags payments
// @Security BearerAuth
// @Produce json
// @Param orderId path string true "Gateway order ID"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /payments/{orderId}/verify [post]
func (h *PaymentHandler) Verify(c *gin.Context) {
	h.check(c, h.commands.Verify)
}

// @Summary Refresh payment status
// @Description A single gateway check, used after verify reported processing
// @Tags payments
// @Security BearerAuth
// @Produce json
// @Param orderId path string true "Gateway order ID"
// @Success 200 {object} resdto.PaymentResponse
// @Router /payments/{orderId}/status [get]
func (h *PaymentHandler) Status(c *gin.Context) {
	h.check(c, h.commands.Refresh)
}

type paymentCheck func(ctx context.Context, customerID uuid.UUID, orderID string) (*commands.PaymentResult, error)

func (h *PaymentHandler) check(c *gin.Context, fn paymentCheck) {
	s, ok := session(c)
	if !ok {
		return
	}
	// the request context ends the poll when the client goes away
	result, err := fn(c.Request.Context(), s.UserID, c.Param("orderId"))
	writeOne[resdto.PaymentResponse](c, http.StatusOK, result, err)
}

// @Summary Payment receipt
// @Tags payments
// @Security BearerAuth
// @Produce plain
// @Param orderId path string true "Gateway order ID"
// @Success 200 {string} string "Receipt document"
// @Router /payments/{orderId}/receipt [get]
func (h *PaymentHandler) Receipt(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	orderID := c.Param("orderId")

	var buf bytes.Buffer
	if err := h.commands.Receipt(c.Request.Context(), s.UserID, orderID, &buf); err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="receipt-`+orderID+`.txt"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
}

package api

import (
	"net/http"
	"time"

	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	queries queries.BookingQueries
	loc     *time.Location
}

func NewBookingHandler(q queries.BookingQueries, loc *time.Location) *BookingHandler {
	return &BookingHandler{queries: q, loc: loc}
}

func (h *BookingHandler) ListMine(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	_, p, ok := bindList(c, h.loc)
	if !ok {
		return
	}
	page, err := h.queries.ListForCustomer(c.Request.Context(), s.UserID, p)
	writePage[resdto.BookingResponse](c, page, err)
}

func (h *BookingHandler) Get(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	view, err := h.queries.GetForCustomer(c.Request.Context(), s.UserID, id)
	writeOne[resdto.BookingResponse](c, http.StatusOK, view, err)
}

// @Summary All bookings
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param q query string false "Customer, provider or employee name"
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD)"
// @Param status query string false "Booking status"
// @Param page query int false "Page (1-based)"
// @Param pageSize query int false "Page size (default 5)"
// @Success 200 {object} resdto.PageResponse[resdto.BookingResponse]
// @Router /admin/bookings [get]
func (h *BookingHandler) AdminList(c *gin.Context) {
	lq, p, ok := bindList(c, h.loc)
	if !ok {
		return
	}
	page, err := h.queries.ListAll(c.Request.Context(), lq.Status, p)
	writePage[resdto.BookingResponse](c, page, err)
}

// @Summary Revenue per provider
// @Description Totals of confirmed bookings in the date range
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.PageResponse[resdto.RevenueResponse]
// @Router /admin/revenue [get]
func (h *BookingHandler) Revenue(c *gin.Context) {
	_, p, ok := bindList(c, h.loc)
	if !ok {
		return
	}
	page, err := h.queries.Revenue(c.Request.Context(), p)
	writePage[resdto.RevenueResponse](c, page, err)
}

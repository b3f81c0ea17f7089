package api

import (
	"context"
	"net/http"
	"time"

	reqdto "salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProviderQueries struct {
	Providers    queries.ProviderQueries
	Catalog      queries.CatalogQueries
	Availability queries.AvailabilityQueries
	Bookings     queries.BookingQueries
	Enquiries    queries.EnquiryQueries
}

// ProviderHandler serves the public catalog, the provider's own back office and the admin
// provider list.
type ProviderHandler struct {
	commands commands.ProviderCommands
	priority commands.PriorityCommands
	q        ProviderQueries
	loc      *time.Location
}

func NewProviderHandler(cmds commands.ProviderCommands, priority commands.PriorityCommands, q ProviderQueries, loc *time.Location) *ProviderHandler {
	return &ProviderHandler{commands: cmds, priority: priority, q: q, loc: loc}
}

// @Summary List providers
// @Description Approved providers ordered by priority
// @Tags providers
// @Produce json
// @Param q query string false "Name or address filter"
// @Param page query int false "Page (1-based)"
// @Param pageSize query int false "Page size (default 5)"
// @Success 200 {object} resdto.PageResponse[resdto.ProviderResponse]
// @Router /providers [get]
func (h *ProviderHandler) List(c *gin.Context) {
	_, p, ok := bindList(c, h.loc)
	if !ok {
		return
	}
	page, err := h.q.Providers.ListPublic(c.Request.Context(), p)
	writePage[resdto.ProviderResponse](c, page, err)
}

func (h *ProviderHandler) Detail(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.Providers.Detail(c.Request.Context(), id)
	writeOne[resdto.ProviderDetailResponse](c, http.StatusOK, view, err)
}

func (h *ProviderHandler) Services(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	_, p, ok := bindList(c, h.loc)
	if !ok {
		return
	}
	page, err := h.q.Catalog.Services(c.Request.Context(), id, p)
	writePage[resdto.ServiceResponse](c, page, err)
}

func (h *ProviderHandler) Employees(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	_, p, ok := bindList(c, h.loc)
	if !ok {
		return
	}
	page, err := h.q.Catalog.Employees(c.Request.Context(), id, p)
	writePage[resdto.EmployeeResponse](c, page, err)
}

// @Summary Time slots of a day
// @Description Every offerable slot of the date, flagged by whether a booking of the given length fits
// @Tags providers
// @Produce json
// @Param id path string true "Provider ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param employee query string false "Employee name"
// @Param duration query int true "Total duration in minutes"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 404 {object} httperr.Response
// @Router /providers/{id}/availability [get]
func (h *ProviderHandler) Availability(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var aq reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&aq); err != nil {
		badRequest(c, err)
		return
	}
	date, err := reqdto.ParseDate(aq.Date, h.loc)
	if err != nil {
		respondError(c, err)
		return
	}

	view, err := h.q.Availability.Slots(c.Request.Context(), id, aq.Employee, *date, aq.Duration)
	writeOne[resdto.AvailabilityResponse](c, http.StatusOK, view, err)
}

// provider back office

func (h *ProviderHandler) RegisterProfile(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	var req reqdto.RegisterProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	id, err := h.commands.Register(c.Request.Context(), s.UserID, req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

func (h *ProviderHandler) MyProfile(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	view, err := h.q.Providers.Mine(c.Request.Context(), s.UserID)
	writeOne[resdto.ProviderResponse](c, http.StatusOK, view, err)
}

func (h *ProviderHandler) UpdateProfile(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	var req reqdto.UpdateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.commands.UpdateProfile(c.Request.Context(), s.UserID, req.ToInput()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// myProviderID resolves the provider profile owned by the caller.
func (h *ProviderHandler) myProviderID(c *gin.Context) (uuid.UUID, bool) {
	s, ok := session(c)
	if !ok {
		return uuid.Nil, false
	}
	view, err := h.q.Providers.Mine(c.Request.Context(), s.UserID)
	if err != nil {
		respondError(c, err)
		return uuid.Nil, false
	}
	return view.ID, true
}

func (h *ProviderHandler) MyEmployees(c *gin.Context) {
	providerID, ok := h.myProviderID(c)
	if !ok {
		return
	}
	_, p, ok := bindList(c, h.loc)
	if !ok {
		return
	}
	page, err := h.q.Catalog.Employees(c.Request.Context(), providerID, p)
	writePage[resdto.EmployeeResponse](c, page, err)
}

func (h *ProviderHandler) AddEmployee(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	var req reqdto.AddEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	id, err := h.commands.AddEmployee(c.Request.Context(), s.UserID, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

func (h *ProviderHandler) RemoveEmployee(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "employeeId")
	if !ok {
		return
	}
	if err := h.commands.RemoveEmployee(c.Request.Context(), s.UserID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProviderHandler) MyServices(c *gin.Context) {
	providerID, ok := h.myProviderID(c)
	if !ok {
		return
	}
	_, p, ok := bindList(c, h.loc)
	if !ok {
		return
	}
	page, err := h.q.Catalog.Services(c.Request.Context(), providerID, p)
	writePage[resdto.ServiceResponse](c, page, err)
}

func (h *ProviderHandler) AddService(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	var req reqdto.AddServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	id, err := h.commands.AddService(c.Request.Context(), s.UserID, req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

func (h *ProviderHandler) RemoveService(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "serviceId")
	if !ok {
		return
	}
	if err := h.commands.RemoveService(c.Request.Context(), s.UserID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Provider bookings
// @Description Bookings of the caller's salon, filtered by customer name and date range
// @Tags provider
// @Security BearerAuth
// @Produce json
// @Param q query string false "Customer name filter"
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD)"
// @Param status query string false "Booking status"
// @Success 200 {object} resdto.PageResponse[resdto.BookingResponse]
// @Router /provider/bookings [get]
func (h *ProviderHandler) MyBookings(c *gin.Context) {
	providerID, ok := h.myProviderID(c)
	if !ok {
		return
	}
	lq, p, ok := bindList(c, h.loc)
	if !ok {
		return
	}
	page, err := h.q.Bookings.ListForProvider(c.Request.Context(), providerID, lq.Status, p)
	writePage[resdto.BookingResponse](c, page, err)
}

func (h *ProviderHandler) MyEnquiries(c *gin.Context) {
	providerID, ok := h.myProviderID(c)
	if !ok {
		return
	}
	lq, p, ok := bindList(c, h.loc)
	if !ok {
		return
	}
	page, err := h.q.Enquiries.ListForProvider(c.Request.Context(), providerID, lq.Status, p)
	writePage[resdto.EnquiryResponse](c, page, err)
}

// admin

func (h *ProviderHandler) AdminList(c *gin.Context) {
	lq, p, ok := bindList(c, h.loc)
	if !ok {
		return
	}
	page, err := h.q.Providers.ListAdmin(c.Request.Context(), lq.Status, p)
	writePage[resdto.ProviderResponse](c, page, err)
}

func (h *ProviderHandler) Approve(c *gin.Context) {
	h.decide(c, h.commands.Approve)
}

func (h *ProviderHandler) Reject(c *gin.Context) {
	h.decide(c, h.commands.Reject)
}

func (h *ProviderHandler) Delete(c *gin.Context) {
	h.decide(c, h.commands.Delete)
}

func (h *ProviderHandler) decide(c *gin.Context, action func(ctx context.Context, id uuid.UUID) error) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := action(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Set provider priority
// @Description Accepted at once and persisted after a short quiet period; the last value wins
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "Provider ID"
// @Param request body reqdto.PriorityRequest true "Priority"
// @Success 202 "Accepted"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/providers/{id}/priority [put]
func (h *ProviderHandler) SetPriority(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.PriorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.priority.SetPriority(c.Request.Context(), id, *req.Priority); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}

package api

import (
	"net/http"
	"time"

	reqdto "salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/usecase"
	"salon-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DraftHandler exposes the booking form. Each endpoint applies one selection and returns the
// whole draft so the client can redraw the form.
type DraftHandler struct {
	commands commands.DraftCommands
	loc      *time.Location
}

func NewDraftHandler(cmds commands.DraftCommands, loc *time.Location) *DraftHandler {
	return &DraftHandler{commands: cmds, loc: loc}
}

// @Summary Start a booking
// @Tags drafts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateDraftRequest true "Provider"
// @Success 201 {object} resdto.DraftResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /drafts [post]
func (h *DraftHandler) Create(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	var req reqdto.CreateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	view, err := h.commands.Create(c.Request.Context(), s.UserID, req.ProviderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromDraft(view))
}

func (h *DraftHandler) Get(c *gin.Context) {
	h.apply(c, func(c *gin.Context, s usecase.Session, id uuid.UUID) (*commands.DraftView, error) {
		return h.commands.Get(c.Request.Context(), s.UserID, id)
	})
}

func (h *DraftHandler) SetCustomer(c *gin.Context) {
	var req reqdto.DraftCustomerRequest
	h.applyJSON(c, &req, func(c *gin.Context, s usecase.Session, id uuid.UUID) (*commands.DraftView, error) {
		return h.commands.SetCustomer(c.Request.Context(), s.UserID, id, req.Name)
	})
}

func (h *DraftHandler) SelectService(c *gin.Context) {
	var req reqdto.DraftServiceRequest
	h.applyJSON(c, &req, func(c *gin.Context, s usecase.Session, id uuid.UUID) (*commands.DraftView, error) {
		return h.commands.SelectService(c.Request.Context(), s.UserID, id, req.ServiceID)
	})
}

// @Summary Select the booking date
// @Description Clears the chosen time slot
// @Tags drafts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body reqdto.DraftDateRequest true "Date"
// @Success 200 {object} resdto.DraftResponse
// @Failure 422 {object} httperr.Response
// @Router /drafts/{id}/date [put]
func (h *DraftHandler) SelectDate(c *gin.Context) {
	var req reqdto.DraftDateRequest
	h.applyJSON(c, &req, func(c *gin.Context, s usecase.Session, id uuid.UUID) (*commands.DraftView, error) {
		date, err := reqdto.ParseDate(req.Date, h.loc)
		if err != nil {
			return nil, err
		}
		return h.commands.SelectDate(c.Request.Context(), s.UserID, id, *date)
	})
}

func (h *DraftHandler) SelectEmployee(c *gin.Context) {
	var req reqdto.DraftEmployeeRequest
	h.applyJSON(c, &req, func(c *gin.Context, s usecase.Session, id uuid.UUID) (*commands.DraftView, error) {
		return h.commands.SelectEmployee(c.Request.Context(), s.UserID, id, req.Name)
	})
}

func (h *DraftHandler) SelectTime(c *gin.Context) {
	var req reqdto.DraftTimeRequest
	h.applyJSON(c, &req, func(c *gin.Context, s usecase.Session, id uuid.UUID) (*commands.DraftView, error) {
		return h.commands.SelectTime(c.Request.Context(), s.UserID, id, req.Slot)
	})
}

// @Summary Toggle an add-on service
// @Description Adds the service when absent and removes it otherwise. Rejected when the new total no longer fits the chosen slot.
// @Tags drafts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body reqdto.DraftServiceRequest true "Service"
// @Success 200 {object} resdto.DraftResponse
// @Failure 422 {object} httperr.Response
// @Router /drafts/{id}/addons [post]
func (h *DraftHandler) ToggleAddOn(c *gin.Context) {
	var req reqdto.DraftServiceRequest
	h.applyJSON(c, &req, func(c *gin.Context, s usecase.Session, id uuid.UUID) (*commands.DraftView, error) {
		return h.commands.ToggleAddOn(c.Request.Context(), s.UserID, id, req.ServiceID)
	})
}

func (h *DraftHandler) AcceptTerms(c *gin.Context) {
	var req reqdto.DraftTermsRequest
	h.applyJSON(c, &req, func(c *gin.Context, s usecase.Session, id uuid.UUID) (*commands.DraftView, error) {
		return h.commands.AcceptTerms(c.Request.Context(), s.UserID, id, req.Version)
	})
}

// @Summary Pay for a draft
// @Description Validates the draft, holds the slot and creates a gateway order. Calling it again retries payment.
// @Tags drafts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Draft ID"
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response "detail.field names the field to fix"
// @Failure 502 {object} httperr.Response
// @Router /drafts/{id}/checkout [post]
func (h *DraftHandler) Checkout(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	result, err := h.commands.Checkout(c.Request.Context(), s.UserID, id)
	writeOne[resdto.CheckoutResponse](c, http.StatusCreated, result, err)
}

type draftStep func(c *gin.Context, s usecase.Session, draftID uuid.UUID) (*commands.DraftView, error)

func (h *DraftHandler) apply(c *gin.Context, step draftStep) {
	s, ok := session(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	view, err := step(c, s, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDraft(view))
}

func (h *DraftHandler) applyJSON(c *gin.Context, req any, step draftStep) {
	if err := c.ShouldBindJSON(req); err != nil {
		badRequest(c, err)
		return
	}
	h.apply(c, step)
}

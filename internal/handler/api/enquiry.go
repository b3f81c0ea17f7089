package api

import (
	"net/http"
	"time"

	reqdto "salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type EnquiryHandler struct {
	cmds commands.EnquiryCommands
	q    queries.EnquiryQueries
	loc  *time.Location
}

func NewEnquiryHandler(cmds commands.EnquiryCommands, q queries.EnquiryQueries, loc *time.Location) *EnquiryHandler {
	return &EnquiryHandler{cmds: cmds, q: q, loc: loc}
}

func (h *EnquiryHandler) Open(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	var req reqdto.OpenEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	id, err := h.cmds.Open(c.Request.Context(), s.UserID, req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

func (h *EnquiryHandler) ListMine(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	_, p, ok := bindList(c, h.loc)
	if !ok {
		return
	}
	page, err := h.q.ListForCustomer(c.Request.Context(), s.UserID, p)
	writePage[resdto.EnquiryResponse](c, page, err)
}

func (h *EnquiryHandler) Answer(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.AnswerEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.cmds.Answer(c.Request.Context(), s.UserID, id, req.Reply); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Close is open to both participants.
func (h *EnquiryHandler) Close(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Close(c.Request.Context(), s.UserID, s.Role, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

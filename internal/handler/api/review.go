package api

import (
	"net/http"
	"time"

	reqdto "salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
	q    queries.ReviewQueries
	loc  *time.Location
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries, loc *time.Location) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q, loc: loc}
}

// @Summary Provider reviews
// @Description Visible reviews, newest first, with keyset pagination
// @Tags reviews
// @Produce json
// @Param id path string true "Provider ID"
// @Param after query string false "Cursor from the previous page"
// @Param limit query int false "Page size (default 20)"
// @Success 200 {object} resdto.ReviewListResponse
// @Failure 400 {object} httperr.Response
// @Router /providers/{id}/reviews [get]
func (h *ReviewHandler) ListForProvider(c *gin.Context) {
	providerID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var cq reqdto.CursorQuery
	if err := c.ShouldBindQuery(&cq); err != nil {
		badRequest(c, err)
		return
	}

	rows, next, err := h.q.ListForProvider(c.Request.Context(), providerID, cq.Cursor(), cq.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	out := resdto.ReviewListResponse{Items: make([]resdto.ReviewResponse, 0, len(rows))}
	if err := copier.Copy(&out.Items, rows); err != nil {
		respondError(c, err)
		return
	}
	if next != nil {
		out.NextCursor = next.After
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Create review
// @Description Review a provider after a confirmed appointment has taken place
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReviewRequest true "Create review request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), s.UserID, req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

func (h *ReviewHandler) Update(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.cmds.Edit(c.Request.Context(), s.UserID, id, req.ToInput()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete is open to the author and to admins.
func (h *ReviewHandler) Delete(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), s.UserID, s.Role, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ReviewHandler) AdminList(c *gin.Context) {
	_, p, ok := bindList(c, h.loc)
	if !ok {
		return
	}
	page, err := h.q.ListAdmin(c.Request.Context(), p)
	writePage[resdto.ReviewResponse](c, page, err)
}

func (h *ReviewHandler) SetHidden(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.HideReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.cmds.SetHidden(c.Request.Context(), id, *req.Hidden); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

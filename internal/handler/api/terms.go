package api

import (
	"net/http"

	reqdto "salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TermsHandler struct {
	cmds commands.TermsCommands
	q    queries.TermsQueries
}

func NewTermsHandler(cmds commands.TermsCommands, q queries.TermsQueries) *TermsHandler {
	return &TermsHandler{cmds: cmds, q: q}
}

func (h *TermsHandler) Current(c *gin.Context) {
	view, err := h.q.Current(c.Request.Context())
	writeOne[resdto.TermsResponse](c, http.StatusOK, view, err)
}

// Publish makes the version current; open drafts must accept it again.
func (h *TermsHandler) Publish(c *gin.Context) {
	var req reqdto.PublishTermsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.cmds.Publish(c.Request.Context(), req.Version, req.Body); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

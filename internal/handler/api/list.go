package api

import (
	"net/http"
	"time"

	reqdto "salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// bindList reads the shared q/from/to/page/pageSize/status parameters.
func bindList(c *gin.Context, loc *time.Location) (reqdto.ListQuery, queries.ListParams, bool) {
	var lq reqdto.ListQuery
	if err := c.ShouldBindQuery(&lq); err != nil {
		badRequest(c, err)
		return lq, queries.ListParams{}, false
	}
	p, err := lq.ToParams(loc)
	if err != nil {
		respondError(c, err)
		return lq, queries.ListParams{}, false
	}
	return lq, p, true
}

func writePage[R, V any](c *gin.Context, page queries.Page[V], err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	out, err := resdto.FromPage[R](page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func writeOne[R any](c *gin.Context, status int, view any, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	out, err := resdto.From[R](view)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, out)
}

// Package httperr holds the JSON error envelope shared by handlers and middleware.
package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const MsgInternal = "Internal server error"

type Body struct {
	Message string `json:"message"`
	Detail  any    `json:"detail,omitempty"`
}

// Response is what a failed request writes: {"error": {"message": ..., "detail": ...}}.
type Response struct {
	Status int  `json:"-"`
	Error  Body `json:"error"`
}

func New(status int, msg string) Response {
	return Response{Status: status, Error: Body{Message: msg}}
}

func Internal() Response {
	return New(http.StatusInternalServerError, MsgInternal)
}

func (r Response) WithDetail(detail any) Response {
	r.Error.Detail = detail
	return r
}

// FieldDetail names the booking form field a 422 asks the client to fix.
func FieldDetail(field string) map[string]string {
	return map[string]string{"field": field}
}

// Abort writes r and records err on the context, where the request logger picks it up.
// The cause itself is never sent to the client.
func Abort(c *gin.Context, err error, r Response) {
	if err != nil {
		_ = c.Error(&gin.Error{Err: err, Type: gin.ErrorTypePublic, Meta: r})
	}
	c.AbortWithStatusJSON(r.Status, r)
}

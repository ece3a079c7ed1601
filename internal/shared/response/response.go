// Package response writes the JSON envelope every endpoint answers with:
// {"ok": bool, "data": ..., "meta": ..., "error": {...}}.
package response

import (
	"go-mrf/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

type Envelope struct {
	Ok    bool            `json:"ok"`
	Data  any             `json:"data,omitempty"`
	Meta  *PaginationMeta `json:"meta,omitempty"`
	Error *ErrorBody      `json:"error,omitempty"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details"`
}

func Success(c *gin.Context, status int, data any, meta *PaginationMeta) {
	c.JSON(status, Envelope{Ok: true, Data: data, Meta: meta})
}

// Fail writes the envelope for an already mapped error.
func Fail(c *gin.Context, e apperror.HTTPError) {
	c.JSON(e.Status, failure(e))
}

// Abort is Fail for middleware; the remaining handlers are skipped.
func Abort(c *gin.Context, e apperror.HTTPError) {
	c.AbortWithStatusJSON(e.Status, failure(e))
}

func failure(e apperror.HTTPError) Envelope {
	return Envelope{Error: &ErrorBody{Code: e.Code, Message: e.Message, Details: e.Details}}
}

package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/huynhanx03/go-syncqueue/pkg/common/http/response"
)

// HandlerFunc is the generic function signature of a read-only endpoint
type HandlerFunc[R any] func(context.Context) (R, error)

// Wrap converts a generic handler to a Gin handler
func Wrap[R any](h HandlerFunc[R]) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := h(c.Request.Context())
		if err != nil {
			response.ErrorResponse(c, response.CodeInternalServer, err)
			return
		}

		response.SuccessResponse(c, response.CodeSuccess, res)
	}
}

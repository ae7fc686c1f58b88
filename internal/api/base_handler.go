package api

import (
	"context"

	"github.com/gin-gonic/gin"
)

type BaseHandler struct{}

// RequestCtx returns the request context. The auth middleware has already
// attached the claim set and tenant code to it, so everything downstream of a
// handler routes by this context alone.
func (h *BaseHandler) RequestCtx(ginCtx *gin.Context) context.Context {
	return ginCtx.Request.Context()
}

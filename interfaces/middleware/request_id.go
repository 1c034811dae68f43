package middleware

import (
	"time"

	"tube-catalog/infrastructure/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestID propagates the caller's request id or assigns a new one, and logs
// every request once it completes.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx.Set("requestId", requestID)
		ctx.Header(RequestIDHeader, requestID)

		start := time.Now()
		ctx.Next()

		logger.GetLogger().
			WithField("requestId", requestID).
			WithField("method", ctx.Request.Method).
			WithField("path", ctx.Request.URL.Path).
			WithField("status", ctx.Writer.Status()).
			WithField("latency", time.Since(start).String()).
			Info("Request handled")
	}
}

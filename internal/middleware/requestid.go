package middleware

import (
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader is the response header carrying the request ID.
const RequestIDHeader = "X-Request-Id"

// RequestID is a middleware that tags every request with a request ID,
// echoes it in the response headers, and writes an access log line.
// An inbound X-Request-Id is honored so callers can trace across services.
func RequestID(logger *zap.Logger) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		id := ctx.Header(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		ctx.SetHeader(RequestIDHeader, id)

		start := time.Now()

		next(ctx)

		u := ctx.URL()
		logger.Info("request handled",
			zap.String("request_id", id),
			zap.String("method", ctx.Method()),
			zap.String("path", u.Path),
			zap.Duration("duration", time.Since(start)),
		)
	}
}

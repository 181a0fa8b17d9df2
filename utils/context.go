package utils

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
)

type contextKey int

const (
	contextKeyLogger contextKey = iota
)

// LoggerFromContext returns the request-scoped logger, falling back to the
// default logger so that callers never get nil.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger, found := ctx.Value(contextKeyLogger).(*slog.Logger)
	if !found {
		return slog.Default()
	}
	return logger
}

func StoreLoggerInContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// StoreLoggerInContextMiddleware attaches the process logger to every request
// context.
func StoreLoggerInContextMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(
			StoreLoggerInContext(c.Request.Context(), logger))
		c.Next()
	}
}

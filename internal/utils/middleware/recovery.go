package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/civicteams/server/internal/utils/errors"
)

// Recovery returns a middleware that recovers from panics.
func Recovery(log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}

	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error("Panic recovered",
					zap.String("error", fmt.Sprint(rec)),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.String("client_ip", c.ClientIP()),
					zap.Stack("stack"),
				)
				abort(c, apperrors.Internal("internal server error", nil))
			}
		}()
		c.Next()
	}
}

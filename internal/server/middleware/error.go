package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/nulzo/unified-router/internal/core/domain"
	"go.uber.org/zap"
)

// ErrorHandler renders the last error attached by a handler as an RFC 9457 problem.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		problem := domain.AsProblem(err)
		if problem.Instance == "" {
			problem.Instance = c.Request.URL.Path
		}

		if problem.Log != nil {
			logger.Error("Internal error",
				zap.Error(problem.Log),
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", GetRequestID(c)),
			)
		}

		if !c.Writer.Written() {
			c.Header("Content-Type", "application/problem+json")
			c.JSON(problem.Status, problem)
		}
		c.Abort()
	}
}

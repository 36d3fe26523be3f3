package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/unified-router/internal/core/domain"
)

// Auth requires a Bearer token matching one of keys. With no keys
// configured every request passes.
func Auth(keys []string) gin.HandlerFunc {
	var accepted [][]byte
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			accepted = append(accepted, []byte(k))
		}
	}

	return func(c *gin.Context) {
		if len(accepted) == 0 {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			_ = c.Error(domain.UnauthorizedError("Missing Authorization header"))
			c.Abort()
			return
		}

		scheme, token, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
			_ = c.Error(domain.UnauthorizedError("Invalid Authorization header format"))
			c.Abort()
			return
		}

		for _, k := range accepted {
			if subtle.ConstantTimeCompare([]byte(token), k) == 1 {
				c.Next()
				return
			}
		}

		_ = c.Error(domain.UnauthorizedError("Invalid API Key"))
		c.Abort()
	}
}

package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"student-portal-system/internal/global/jwt"
	"student-portal-system/internal/global/response"
)

// Auth requires a valid Bearer token carrying the given role. Admin tokens
// pass student-gated routes; the reverse does not hold.
func Auth(minRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Fail(c, response.ErrTokenInvalid)
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			response.Fail(c, response.ErrTokenInvalid)
			c.Abort()
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		payload, valid := jwt.ParseToken(token)
		if !valid {
			response.Fail(c, response.ErrTokenInvalid)
			c.Abort()
			return
		}
		if minRole == jwt.RoleAdmin && payload.Role != jwt.RoleAdmin {
			response.Fail(c, response.ErrUnauthorized)
			c.Abort()
			return
		}
		c.Set("payload", payload)
		c.Next()
	}
}

package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"student-portal-system/internal/global/database"
	"student-portal-system/internal/global/logger"
	"student-portal-system/internal/global/response"
)

// RateLimit caps requests per client IP inside a fixed window, backed by a
// Redis counter. The route keeps working without limiting when Redis is
// absent; that decision is taken once here, not per request path.
func RateLimit(name string, limit int, window time.Duration) gin.HandlerFunc {
	if database.RDB == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	log := logger.New("RateLimit")
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s:%s", name, c.ClientIP())

		count, err := database.RDB.Incr(c.Request.Context(), key).Result()
		if err != nil {
			// A broken counter must not take the endpoint down with it.
			c.Next()
			return
		}
		if count == 1 {
			database.RDB.Expire(c.Request.Context(), key, window)
		}
		if count > int64(limit) {
			log.Warn("rate limit exceeded",
				"name", name,
				"client_ip", c.ClientIP(),
				"count", count,
			)
			response.Fail(c, response.ErrTooManyRequests)
			c.Abort()
			return
		}
		c.Next()
	}
}

package login

import (
	"time"

	"github.com/gin-gonic/gin"

	"student-portal-system/internal/global/middleware"
)

func (m *ModuleLogin) InitRouter(r *gin.RouterGroup) {
	// 10 attempts per IP per minute; a no-op without Redis.
	r.POST("/login", middleware.RateLimit("login", 10, time.Minute), Login)
}

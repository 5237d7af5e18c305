package admin

import (
	"time"

	"github.com/gin-gonic/gin"

	"student-portal-system/internal/global/jwt"
	"student-portal-system/internal/global/middleware"
)

func (m *ModuleAdmin) InitRouter(r *gin.RouterGroup) {
	adminGroup := r.Group("/admins")

	// GET carries credentials, so it is rate limited like the login route.
	adminGroup.GET("", middleware.RateLimit("admin-login", 10, time.Minute), Login)

	adminOnly := middleware.Auth(jwt.RoleAdmin)
	adminGroup.POST("", adminOnly, Create)
	adminGroup.DELETE("", adminOnly, Delete)
}

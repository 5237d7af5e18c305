package student

import (
	"github.com/gin-gonic/gin"

	"student-portal-system/internal/global/jwt"
	"student-portal-system/internal/global/middleware"
)

// InitRouter mounts the student-records endpoints. Reads stay open; every
// write path sits behind an admin token.
func (m *ModuleStudent) InitRouter(r *gin.RouterGroup) {
	studentGroup := r.Group("/students")

	studentGroup.GET("", List)

	adminOnly := middleware.Auth(jwt.RoleAdmin)
	studentGroup.POST("", adminOnly, Create)
	studentGroup.PUT("", adminOnly, Update)
	studentGroup.DELETE("", adminOnly, Delete)

	studentGroup.GET("/export", adminOnly, Export)
	studentGroup.POST("/photo", adminOnly, UploadPhoto)
	studentGroup.POST("/photo-url", adminOnly, PhotoUploadURL)
}

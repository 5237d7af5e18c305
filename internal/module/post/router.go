package post

import (
	"github.com/gin-gonic/gin"
)

func (m *ModulePost) InitRouter(r *gin.RouterGroup) {
	postGroup := r.Group("/posts")

	postGroup.GET("", List)
	postGroup.GET("/stream", Stream)
	postGroup.POST("", Create)
	postGroup.DELETE("", Delete)
}

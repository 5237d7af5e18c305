package module

import (
	"github.com/gin-gonic/gin"

	"student-portal-system/internal/module/admin"
	"student-portal-system/internal/module/login"
	"student-portal-system/internal/module/ping"
	"student-portal-system/internal/module/post"
	"student-portal-system/internal/module/student"
)

type Module interface {
	GetName() string
	Init()
	InitRouter(r *gin.RouterGroup)
}

var Modules []Module

func registerModule(m []Module) {
	Modules = append(Modules, m...)
}

func init() {
	// Register your module here
	registerModule([]Module{
		&ping.ModulePing{},
		&login.ModuleLogin{},
		&student.ModuleStudent{},
		&admin.ModuleAdmin{},
		&post.ModulePost{},
	})
}

package admin

import (
	"log/slog"

	"student-portal-system/internal/global/logger"
)

var log *slog.Logger

type ModuleAdmin struct{}

func (m *ModuleAdmin) GetName() string {
	return "Admin"
}

func (m *ModuleAdmin) Init() {
	log = logger.New("Admin")
}

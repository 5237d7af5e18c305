package login

import (
	"log/slog"

	"student-portal-system/internal/global/logger"
)

var log *slog.Logger

type ModuleLogin struct{}

func (m *ModuleLogin) GetName() string {
	return "Login"
}

func (m *ModuleLogin) Init() {
	log = logger.New("Login")
}

package post

import (
	"log/slog"

	"student-portal-system/internal/global/logger"
)

var log *slog.Logger

type ModulePost struct{}

func (m *ModulePost) GetName() string {
	return "Post"
}

func (m *ModulePost) Init() {
	log = logger.New("Post")
}

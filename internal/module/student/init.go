package student

import (
	"log/slog"

	"student-portal-system/internal/global/logger"
	"student-portal-system/internal/global/photostore"
)

var log *slog.Logger

var photos *photostore.PhotoStore

type ModuleStudent struct{}

func (m *ModuleStudent) GetName() string {
	return "Student"
}

func (m *ModuleStudent) Init() {
	log = logger.New("Student")
	photos = photostore.New()
}

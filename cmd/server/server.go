package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"student-portal-system/config"
	"student-portal-system/internal/global/database"
	"student-portal-system/internal/global/logger"
	"student-portal-system/internal/global/middleware"
	internalOtel "student-portal-system/internal/global/otel"
	"student-portal-system/internal/global/response"
	"student-portal-system/internal/global/sentry"
	"student-portal-system/internal/module"
	"student-portal-system/tools"
)

var log *slog.Logger

func Init() {
	config.Init()
	log = logger.New("Server")

	if err := sentry.Init(); err != nil {
		log.Error("sentry init failed", "error", err)
	}

	database.Init()
	database.InitRedis(log)

	if config.Get().OTel.Enable {
		log.Info("OTel Enabled")
		internalOtel.Init()
	}

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Module: %s", m.GetName()))
		m.Init()
	}
}

func Run() {
	gin.SetMode(string(config.Get().Mode))
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.NoMethod(response.MethodNotAllowed)
	r.NoRoute(response.NotFoundRoute)

	switch config.Get().Mode {
	case config.ModeRelease:
		r.Use(middleware.Logger(logger.Get()))
	case config.ModeDebug:
		r.Use(gin.Logger())
	}
	r.Use(middleware.Cors())
	r.Use(sentry.Middleware())
	r.Use(sentry.ErrorCapture())
	r.Use(middleware.Recovery())

	if config.Get().OTel.Enable {
		r.Use(middleware.Trace())
	}

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Router: %s", m.GetName()))
		m.InitRouter(r.Group("/" + config.Get().Prefix))
	}

	defer func() {
		sentry.Flush(2 * time.Second)
		if config.Get().OTel.Enable {
			if err := internalOtel.Shutdown(context.Background()); err != nil {
				log.Error("failed to shutdown TracerProvider", "error", err)
			}
		}
	}()

	err := r.Run(config.Get().Host + ":" + config.Get().Port)
	tools.PanicOnErr(err)
}

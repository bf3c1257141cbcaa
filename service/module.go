package service

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"library/config"
)

// Module provides the fx dependency injection options for the service package
var Module = fx.Options(
	fx.Invoke(setMode),
	fx.Provide(
		NewHandlers,
		NewRequestTracker,
		SetupRoutes,
		NewServer,
	),
	fx.Invoke(Register),
)

func setMode(cfg *config.Config) {
	gin.SetMode(cfg.Server.Mode)
}

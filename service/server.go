package service

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"library/config"
	"library/logger"
)

func NewServer(cfg *config.Config, routes *gin.Engine) *http.Server {
	return &http.Server{
		Addr:    cfg.Address(),
		Handler: routes,
	}
}

// Register starts the HTTP server with the fx application and drains it on stop
func Register(lifecycle fx.Lifecycle, server *http.Server, registry *logger.Registry) {
	log := registry.Requests()

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			listener, err := net.Listen("tcp", server.Addr)
			if err != nil {
				return err
			}

			log.Info().Str("addr", listener.Addr().String()).Msg("Books server listening")

			go func() {
				if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error().Err(err).Msg("Books server stopped")
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, config.ShutdownTimeout)
			defer cancel()

			return server.Shutdown(ctx)
		},
	})
}

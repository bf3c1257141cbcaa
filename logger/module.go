package logger

import (
	"context"

	"go.uber.org/fx"
)

// Module provides the fx dependency injection options for the logger package
var Module = fx.Options(
	fx.Provide(NewRegistry),
	fx.Invoke(registerClose),
)

func registerClose(lifecycle fx.Lifecycle, registry *Registry) {
	lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return registry.Close()
		},
	})
}

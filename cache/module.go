package cache

import (
	"context"

	"go.uber.org/fx"
)

// Module provides the fx dependency injection options for the cache package
var Module = fx.Options(
	fx.Provide(NewRequestCacher),
	fx.Invoke(registerClose),
)

func registerClose(lifecycle fx.Lifecycle, cacher RequestCacher) {
	lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return cacher.Close()
		},
	})
}

package components

import (
	"gearshare/internal/handler"
	"gearshare/internal/handler/api"
	"gearshare/internal/handler/middleware"
	"gearshare/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewUserHandler,
		api.NewItemHandler,
		api.NewBookingHandler,
		api.NewItemRequestHandler,
		func(cfg config.Config) *middleware.Logger {
			return middleware.NewLogger(cfg.Log)
		},
		func(cfg config.Config) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.RateLimit)
		},
	),
	fx.Invoke(handler.NewRouter),
)

package components

import (
	"booking-flow/internal/handler"
	"booking-flow/internal/handler/api"
	"booking-flow/internal/handler/middleware"
	"booking-flow/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCatalogHandler,
		api.NewSessionHandler,
		api.NewBookingHandler,
		NewRateLimiter,
	),
	fx.Invoke(handler.NewRouter),
)

func NewRateLimiter(cfg config.Config) *middleware.RateLimiter {
	return middleware.NewRateLimiter(cfg.RateLimit)
}

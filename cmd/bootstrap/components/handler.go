package components

import (
	"parkeaze/internal/handler"
	"parkeaze/internal/handler/api"
	"parkeaze/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewLotHandler,
		api.NewBookingHandler,
		api.NewEarningHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

package components

import (
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/handler"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/handler/api"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	handlerAPIModule,
	handlerMiddlewareModule,
	fx.Invoke(handler.NewRouter),
)

var handlerAPIModule = fx.Module("handler/api",
	fx.Provide(
		api.NewListingHandler,
		api.NewInventoryHandler,
		api.NewPromotionHandler,
		api.NewNotificationHandler,
		handler.NewHandlers,
	),
)

var handlerMiddlewareModule = fx.Module("handler/middleware",
	fx.Provide(
		middleware.NewAuthMiddleware,
	),
)

package components

import (
	"vista-ecoupon/internal/handler"
	"vista-ecoupon/internal/handler/api"
	"vista-ecoupon/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSessionHandler,
		api.NewPromotionHandler,
		api.NewRedemptionHandler,
		api.NewBranchHandler,
		api.NewHistoryHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

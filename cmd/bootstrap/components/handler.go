package components

import (
	"storefront/internal/handler"
	"storefront/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewProductsHandler,
		api.NewCartHandler,
		api.NewFavoritesHandler,
	),
	fx.Invoke(handler.NewRouter),
)

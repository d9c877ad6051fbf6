package components

import (
	"storefront/internal/pkg/clock"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		fx.Annotate(
			usecase.NewCartStore,
			fx.As(new(usecase.CartCommands)),
			fx.As(new(usecase.CartQueries)),
		),
		fx.Annotate(
			usecase.NewFavoritesStore,
			fx.As(new(usecase.FavoriteCommands)),
			fx.As(new(usecase.FavoriteQueries)),
		),
		usecase.NewProductQueries,
	),
)

package components

import (
	"log/slog"

	"storefront/internal/infra/catalogapi"
	"storefront/internal/pkg/config"
	"storefront/internal/usecase/shared"

	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		NewCatalogClient,
		func(c *catalogapi.Client) shared.CatalogClient { return c },
	),
)

func NewCatalogClient(cfg config.Config, logger *slog.Logger) *catalogapi.Client {
	return catalogapi.NewClient(cfg.Catalog, logger)
}

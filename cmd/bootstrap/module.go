package bootstrap

import (
	"storefront/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	BlobModule,
	MetricsModule,
	components.InfraModule,
	components.UseCaseModule,
	components.HandlerModule,
)

package bootstrap

import (
	"storefront/internal/infra/metrics"
	"storefront/internal/usecase/shared"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.NewRegistry,
		func(r *metrics.Registry) shared.Recorder { return r },
	),
)

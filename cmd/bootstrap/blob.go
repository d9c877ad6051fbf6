package bootstrap

import (
	"context"

	"storefront/internal/infra/blob"
	"storefront/internal/pkg/config"
	"storefront/internal/usecase/shared"

	"go.uber.org/fx"
)

var BlobModule = fx.Module("blob",
	fx.Provide(
		NewBlobStore,
		func(s *blob.PebbleStore) shared.BlobStore { return s },
	),
)

func NewBlobStore(lc fx.Lifecycle, cfg config.Config) (*blob.PebbleStore, error) {
	store, err := blob.NewPebbleStore(cfg.Blob.Dir)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

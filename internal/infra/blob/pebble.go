package blob

import (
	"context"
	"path/filepath"

	"github.com/cockroachdb/pebble"

	"storefront/internal/pkg/errs"
)

// PebbleStore implements the blob store on an embedded PebbleDB, giving the
// storefront durable local state without an external database.
type PebbleStore struct {
	db *pebble.DB
}

func NewPebbleStore(dir string) (*PebbleStore, error) {
	db, err := pebble.Open(filepath.Clean(dir), &pebble.Options{})
	if err != nil {
		return nil, errs.Wrap(err, "pebble open")
	}
	return &PebbleStore{db: db}, nil
}

func (s *PebbleStore) Close() error { return s.db.Close() }

func (s *PebbleStore) Load(_ context.Context, key string) ([]byte, error) {
	v, closer, err := s.db.Get([]byte(key))
	if err == pebble.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, errs.Wrap(err, "pebble get")
	}
	defer closer.Close()

	payload := append([]byte(nil), v...)
	return payload, nil
}

func (s *PebbleStore) Save(_ context.Context, key string, payload []byte) error {
	if err := s.db.Set([]byte(key), payload, pebble.Sync); err != nil {
		return errs.Wrap(err, "pebble set")
	}
	return nil
}

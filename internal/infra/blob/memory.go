package blob

import (
	"context"
	"sync"
)

// MemoryStore is the blob store for tests: same contract, no disk.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte

	// FailSaves makes every Save fail, for exercising the non-fatal
	// persistence-error path.
	FailSaves error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: map[string][]byte{}}
}

func (s *MemoryStore) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.blobs[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (s *MemoryStore) Save(_ context.Context, key string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailSaves != nil {
		return s.FailSaves
	}
	s.blobs[key] = append([]byte(nil), payload...)
	return nil
}

package store

import (
	"context"
	"sync"
)

// MemoryStore guarda as coleções em memória. Usado com STORE_DRIVER=memory e nos testes.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) ReadCollection(_ context.Context, name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	body, ok := s.data[name]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), body...), nil
}

func (s *MemoryStore) WriteCollection(_ context.Context, name string, body []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[name] = append([]byte(nil), body...)
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	body, _ := s.ReadCollection(ctx, key)
	return body, body != nil, nil
}

func (s *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	return s.WriteCollection(ctx, key, value)
}

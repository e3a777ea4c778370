package store

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/agency-os-api/pkg/log"
)

// FallbackStore combina o banco remoto com o cache local.
// Leituras usam o cache quando o remoto falha; gravações vão primeiro para o cache
// e uma falha no remoto é apenas registrada.
type FallbackStore struct {
	remote  CollectionStore
	cache   Cache
	timeout time.Duration
}

func NewFallbackStore(remote CollectionStore, cache Cache, timeout time.Duration) *FallbackStore {
	return &FallbackStore{
		remote:  remote,
		cache:   cache,
		timeout: timeout,
	}
}

func (s *FallbackStore) ReadCollection(ctx context.Context, name string) ([]byte, error) {
	logger := log.ForContext(ctx).WithField("collection", name)

	if s.remote != nil {
		body, err := s.readRemote(ctx, name)
		if err == nil {
			return body, nil
		}

		logger.WithError(err).Warn("store: banco remoto indisponível, usando cache local")
	}

	body, ok, err := s.cache.Get(ctx, CacheKey(name))
	if err != nil {
		logger.WithError(err).Error("store: erro ao ler cache local")
		return nil, nil
	}

	if !ok {
		return nil, nil
	}

	return body, nil
}

func (s *FallbackStore) WriteCollection(ctx context.Context, name string, body []byte) error {
	if err := s.cache.Set(ctx, CacheKey(name), body); err != nil {
		return fmt.Errorf("erro ao gravar cache local da coleção %s: %w", name, err)
	}

	if s.remote == nil {
		return nil
	}

	if err := s.remote.WriteCollection(ctx, name, body); err != nil {
		log.ForContext(ctx).WithError(err).WithField("collection", name).
			Warn("store: falha ao gravar no banco remoto, mantendo cópia local")
	}

	return nil
}

func (s *FallbackStore) readRemote(ctx context.Context, name string) ([]byte, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	return s.remote.ReadCollection(ctx, name)
}

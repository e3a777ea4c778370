package repository

import (
	"context"

	"github.com/vfg2006/agency-os-api/infrastructure/store"
	"github.com/vfg2006/agency-os-api/internal/domain"
)

//go:generate mockgen -source=content.go -destination=mocks/content.go -package=mocks

type ContentRepository interface {
	GetContent(ctx context.Context) (map[string]any, error)
	SaveContent(ctx context.Context, content map[string]any) error
}

type contentRepository struct {
	store store.CollectionStore
}

func NewContentRepository(s store.CollectionStore) ContentRepository {
	return &contentRepository{store: s}
}

// GetContent retorna o documento salvo ou o conteúdo padrão quando ainda não existe
func (r *contentRepository) GetContent(ctx context.Context) (map[string]any, error) {
	body, err := r.store.ReadCollection(ctx, store.CollectionSiteContent)
	if err != nil {
		return nil, err
	}

	if body == nil {
		return domain.DefaultContent(), nil
	}

	var content map[string]any
	if err := json.Unmarshal(body, &content); err != nil {
		return nil, err
	}

	if content == nil {
		return domain.DefaultContent(), nil
	}

	return content, nil
}

func (r *contentRepository) SaveContent(ctx context.Context, content map[string]any) error {
	return writeJSON(ctx, r.store, store.CollectionSiteContent, content)
}

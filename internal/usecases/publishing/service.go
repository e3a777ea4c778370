package publishing

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/vfg2006/agency-os-api/infrastructure/repository"
	"github.com/vfg2006/agency-os-api/internal/domain"
	"github.com/vfg2006/agency-os-api/pkg/docpatch"
	"github.com/vfg2006/agency-os-api/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// ErrInvalidContent indica que o documento resultante não respeita o esquema do site
var ErrInvalidContent = errors.New("conteúdo do site inválido")

type Publisher interface {
	GetContent(ctx context.Context) (map[string]any, error)
	SaveContent(ctx context.Context, content map[string]any) error
	PatchContent(ctx context.Context, path string, value any) (map[string]any, error)
	ReplaceContentItem(ctx context.Context, path, id string, fields map[string]any) (map[string]any, error)
}

type Service struct {
	contentRepo repository.ContentRepository
	mu          sync.Mutex
}

func NewService(contentRepo repository.ContentRepository) Publisher {
	return &Service{contentRepo: contentRepo}
}

func (s *Service) GetContent(ctx context.Context) (map[string]any, error) {
	return s.contentRepo.GetContent(ctx)
}

// SaveContent substitui o documento inteiro
func (s *Service) SaveContent(ctx context.Context, content map[string]any) error {
	if err := validate(content); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.contentRepo.SaveContent(ctx, content)
}

// PatchContent grava value no caminho informado ("hero.titlePart1", "services.0.title")
func (s *Service) PatchContent(ctx context.Context, path string, value any) (map[string]any, error) {
	return s.update(ctx, path, func(doc docpatch.Document) (docpatch.Document, error) {
		return docpatch.Patch(doc, path, value)
	})
}

// ReplaceContentItem mescla fields no item de id informado da lista em path
func (s *Service) ReplaceContentItem(ctx context.Context, path, id string, fields map[string]any) (map[string]any, error) {
	return s.update(ctx, path, func(doc docpatch.Document) (docpatch.Document, error) {
		return docpatch.ReplaceItemAt(doc, path, id, fields)
	})
}

func (s *Service) update(
	ctx context.Context,
	path string,
	apply func(docpatch.Document) (docpatch.Document, error),
) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.contentRepo.GetContent(ctx)
	if err != nil {
		return nil, err
	}

	next, err := apply(current)
	if err != nil {
		return nil, err
	}

	if err := validate(next); err != nil {
		return nil, err
	}

	if err := s.contentRepo.SaveContent(ctx, next); err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithField("path", path).Info("content: documento atualizado")

	return next, nil
}

func validate(content map[string]any) error {
	if content == nil {
		return fmt.Errorf("%w: documento vazio", ErrInvalidContent)
	}

	if err := domain.ValidateContent(content); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}

	return nil
}

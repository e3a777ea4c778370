package publishing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/agency-os-api/infrastructure/repository"
	"github.com/vfg2006/agency-os-api/infrastructure/repository/mocks"
	"github.com/vfg2006/agency-os-api/infrastructure/store"
	"github.com/vfg2006/agency-os-api/internal/domain"
	"github.com/vfg2006/agency-os-api/pkg/docpatch"
	"go.uber.org/mock/gomock"
)

func TestService_PatchContent(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		path     string
		value    any
		validate func(t *testing.T, doc map[string]any, err error, saved map[string]any)
	}{
		{
			name:  "Atualiza campo aninhado e persiste",
			path:  "hero.titlePart1",
			value: "YENİ BAŞLIK",
			validate: func(t *testing.T, doc map[string]any, err error, saved map[string]any) {
				require.NoError(t, err)
				assert.Equal(t, "YENİ BAŞLIK", doc["hero"].(map[string]any)["titlePart1"])
				assert.Equal(t, "YENİ BAŞLIK", saved["hero"].(map[string]any)["titlePart1"])
			},
		},
		{
			name:  "Índice numérico em lista",
			path:  "services.0.title",
			value: "SEO",
			validate: func(t *testing.T, doc map[string]any, err error, saved map[string]any) {
				require.NoError(t, err)
				services := doc["services"].([]any)
				assert.Equal(t, "SEO", services[0].(map[string]any)["title"])
			},
		},
		{
			name:  "Campo fora do esquema é rejeitado",
			path:  "hero.naoExiste",
			value: "x",
			validate: func(t *testing.T, doc map[string]any, err error, saved map[string]any) {
				assert.ErrorIs(t, err, ErrInvalidContent)
				assert.NotContains(t, saved["hero"].(map[string]any), "naoExiste")
			},
		},
		{
			name:  "Tipo incompatível é rejeitado",
			path:  "contact.showEmail",
			value: "sim",
			validate: func(t *testing.T, doc map[string]any, err error, saved map[string]any) {
				assert.ErrorIs(t, err, ErrInvalidContent)
			},
		},
		{
			name:  "Escalar no meio do caminho",
			path:  "hero.subtitle.texto",
			value: "x",
			validate: func(t *testing.T, doc map[string]any, err error, saved map[string]any) {
				assert.ErrorIs(t, err, docpatch.ErrPathConflict)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := store.NewMemoryStore()
			contentRepo := repository.NewContentRepository(s)
			service := NewService(contentRepo)

			doc, err := service.PatchContent(ctx, tt.path, tt.value)

			saved, getErr := contentRepo.GetContent(ctx)
			require.NoError(t, getErr)

			tt.validate(t, doc, err, saved)
		})
	}
}

func TestService_ReplaceContentItem(t *testing.T) {
	ctx := context.Background()
	service := NewService(repository.NewContentRepository(store.NewMemoryStore()))

	original := domain.DefaultContent()
	services := original["services"].([]any)
	id := services[0].(map[string]any)["id"].(string)

	doc, err := service.ReplaceContentItem(ctx, "services", id, map[string]any{"title": "PERFORMANS"})
	require.NoError(t, err)

	updated := doc["services"].([]any)
	require.Len(t, updated, len(services))
	assert.Equal(t, "PERFORMANS", updated[0].(map[string]any)["title"])
	assert.Equal(t, services[0].(map[string]any)["tagline"], updated[0].(map[string]any)["tagline"])

	_, err = service.ReplaceContentItem(ctx, "hero", id, map[string]any{"title": "x"})
	assert.ErrorIs(t, err, docpatch.ErrNotAnArray)
}

func TestService_SaveContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockContentRepository(ctrl)
	service := NewService(mockRepo)
	ctx := context.Background()

	t.Run("Documento válido", func(t *testing.T) {
		content := domain.DefaultContent()
		mockRepo.EXPECT().SaveContent(gomock.Any(), content).Return(nil)

		assert.NoError(t, service.SaveContent(ctx, content))
	})

	t.Run("Documento vazio", func(t *testing.T) {
		assert.ErrorIs(t, service.SaveContent(ctx, nil), ErrInvalidContent)
	})

	t.Run("Erro ao gravar", func(t *testing.T) {
		mockRepo.EXPECT().SaveContent(gomock.Any(), gomock.Any()).Return(errors.New("disco cheio"))

		assert.Error(t, service.SaveContent(ctx, domain.DefaultContent()))
	})
}

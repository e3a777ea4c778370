package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/agency-os-api/internal/usecases/publishing"
	"github.com/vfg2006/agency-os-api/internal/usecases/publishing/mocks"
	"github.com/vfg2006/agency-os-api/pkg/docpatch"
	"go.uber.org/mock/gomock"
)

func TestContentRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPublisher := mocks.NewMockPublisher(ctrl)
	routes := Content(mockPublisher)

	tests := []struct {
		name     string
		method   string
		target   string
		body     string
		setup    func()
		validate func(t *testing.T, rr *httptest.ResponseRecorder)
	}{
		{
			name:   "Leitura pública do conteúdo",
			method: http.MethodGet,
			target: "/v1/content",
			setup: func() {
				mockPublisher.EXPECT().GetContent(gomock.Any()).Return(map[string]any{"hero": map[string]any{"titlePart1": "Tilki"}}, nil)
			},
			validate: func(t *testing.T, rr *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rr.Code)
				assert.JSONEq(t, `{"hero":{"titlePart1":"Tilki"}}`, rr.Body.String())
			},
		},
		{
			name:   "Patch aplica valor no caminho",
			method: http.MethodPatch,
			target: "/v1/content",
			body:   `{"path":"hero.titlePart1","value":"Novo"}`,
			setup: func() {
				mockPublisher.EXPECT().
					PatchContent(gomock.Any(), "hero.titlePart1", "Novo").
					Return(map[string]any{"hero": map[string]any{"titlePart1": "Novo"}}, nil)
			},
			validate: func(t *testing.T, rr *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rr.Code)
				assert.Contains(t, rr.Body.String(), "Novo")
			},
		},
		{
			name:   "Patch sem caminho",
			method: http.MethodPatch,
			target: "/v1/content",
			body:   `{"value":"x"}`,
			setup:  func() {},
			validate: func(t *testing.T, rr *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rr.Code)
				assert.Contains(t, rr.Body.String(), "VAL_002")
			},
		},
		{
			name:   "Patch em caminho conflitante",
			method: http.MethodPatch,
			target: "/v1/content",
			body:   `{"path":"hero.titlePart1.x","value":"x"}`,
			setup: func() {
				mockPublisher.EXPECT().
					PatchContent(gomock.Any(), "hero.titlePart1.x", "x").
					Return(nil, docpatch.ErrPathConflict)
			},
			validate: func(t *testing.T, rr *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
				assert.Contains(t, rr.Body.String(), "VAL_005")
			},
		},
		{
			name:   "Substituição de item inexistente no esquema",
			method: http.MethodPatch,
			target: "/v1/content/items",
			body:   `{"path":"services","id":"s1","fields":{"title":1}}`,
			setup: func() {
				mockPublisher.EXPECT().
					ReplaceContentItem(gomock.Any(), "services", "s1", map[string]any{"title": float64(1)}).
					Return(nil, publishing.ErrInvalidContent)
			},
			validate: func(t *testing.T, rr *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
				assert.Contains(t, rr.Body.String(), "VAL_006")
			},
		},
		{
			name:   "Gravação completa do documento",
			method: http.MethodPut,
			target: "/v1/content",
			body:   `{"hero":{}}`,
			setup: func() {
				mockPublisher.EXPECT().SaveContent(gomock.Any(), map[string]any{"hero": map[string]any{}}).Return(nil)
			},
			validate: func(t *testing.T, rr *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rr.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			rr := serve(routes, adminClaims, tt.method, tt.target, tt.body)
			tt.validate(t, rr)
		})
	}

	t.Run("Funcionário não edita o conteúdo", func(t *testing.T) {
		rr := serve(routes, employeeClaims, http.MethodPatch, "/v1/content", `{"path":"a","value":1}`)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

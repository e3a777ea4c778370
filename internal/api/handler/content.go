package handler

import (
	"net/http"

	"github.com/vfg2006/agency-os-api/internal/usecases/publishing"
	"github.com/vfg2006/agency-os-api/pkg/apiErrors"
)

type PatchContentRequest struct {
	Path  string `json:"path"`
	Value any    `json:"value"`
}

type ReplaceContentItemRequest struct {
	Path   string         `json:"path"`
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

// GetContent é público: o site lê o documento sem autenticação
func GetContent(service publishing.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		content, err := service.GetContent(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar conteúdo do site")
			return
		}

		writeJSON(w, http.StatusOK, content)
	}
}

func SaveContent(service publishing.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var content map[string]any
		if err := decodeBody(r, &content); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if err := service.SaveContent(r.Context(), content); err != nil {
			writeServiceError(w, r, err, "Erro ao salvar conteúdo do site")
			return
		}

		writeJSON(w, http.StatusOK, content)
	}
}

func PatchContent(service publishing.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PatchContentRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.Path == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo path é obrigatório", nil)
			return
		}

		content, err := service.PatchContent(r.Context(), req.Path, req.Value)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar conteúdo do site")
			return
		}

		writeJSON(w, http.StatusOK, content)
	}
}

func ReplaceContentItem(service publishing.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ReplaceContentItemRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.Path == "" || req.ID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campos path e id são obrigatórios", nil)
			return
		}

		content, err := service.ReplaceContentItem(r.Context(), req.Path, req.ID, req.Fields)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar item do conteúdo")
			return
		}

		writeJSON(w, http.StatusOK, content)
	}
}

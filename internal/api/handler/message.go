package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/agency-os-api/internal/domain"
	"github.com/vfg2006/agency-os-api/internal/usecases/messaging"
	"github.com/vfg2006/agency-os-api/pkg/apiErrors"
)

type UpdateMessageStatusRequest struct {
	Status domain.MessageStatus `json:"status"`
}

// SubmitMessage recebe o formulário de contato público
func SubmitMessage(service messaging.Inbox) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req messaging.SubmitRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		message, err := service.Submit(r.Context(), req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao enviar mensagem")
			return
		}

		writeJSON(w, http.StatusCreated, message)
	}
}

func ListMessages(service messaging.Inbox) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := service.List(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar mensagens")
			return
		}

		writeJSON(w, http.StatusOK, messages)
	}
}

func UpdateMessageStatus(service messaging.Inbox) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateMessageStatusRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		messageID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		message, err := service.UpdateStatus(r.Context(), messageID, req.Status)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar mensagem")
			return
		}

		writeJSON(w, http.StatusOK, message)
	}
}

func DeleteMessage(service messaging.Inbox) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messageID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.Delete(r.Context(), messageID); err != nil {
			writeServiceError(w, r, err, "Erro ao excluir mensagem")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

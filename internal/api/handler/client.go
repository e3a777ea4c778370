package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/agency-os-api/internal/domain"
	"github.com/vfg2006/agency-os-api/internal/usecases/ledgering"
	"github.com/vfg2006/agency-os-api/internal/usecases/reporting"
	"github.com/vfg2006/agency-os-api/pkg/apiErrors"
	"github.com/vfg2006/agency-os-api/pkg/middleware"
)

type CreateClientRequest struct {
	Name string `json:"name"`
}

type PatchMonthRequest struct {
	Path  string `json:"path"`
	Value any    `json:"value"`
}

func ListClients(service ledgering.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clients, err := service.ListClients(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar clientes")
			return
		}

		writeJSON(w, http.StatusOK, clients)
	}
}

func GetClient(service ledgering.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		client, err := service.GetClient(r.Context(), clientIDParam(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar cliente")
			return
		}

		writeJSON(w, http.StatusOK, client)
	}
}

func CreateClient(service ledgering.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateClient")

		var req CreateClientRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		client, err := service.CreateClient(r.Context(), req.Name)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar cliente")
			return
		}

		writeJSON(w, http.StatusCreated, client)
	}
}

func UpdateClient(service ledgering.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.UpdateClientRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		client, err := service.UpdateClient(r.Context(), clientIDParam(r), &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar cliente")
			return
		}

		writeJSON(w, http.StatusOK, client)
	}
}

// DeleteClient exige ?confirm=true
func DeleteClient(service ledgering.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.DeleteClient(r.Context(), clientIDParam(r), confirmed(r)); err != nil {
			writeServiceError(w, r, err, "Erro ao excluir cliente")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func GetMonth(service ledgering.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, ok := periodParam(w, r)
		if !ok {
			return
		}

		month, err := service.GetMonth(r.Context(), clientIDParam(r), period)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar dados do mês")
			return
		}

		writeJSON(w, http.StatusOK, month)
	}
}

func PatchMonth(service ledgering.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, ok := periodParam(w, r)
		if !ok {
			return
		}

		var req PatchMonthRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.Path == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo path é obrigatório", nil)
			return
		}

		data, err := service.PatchMonth(r.Context(), clientIDParam(r), period, req.Path, req.Value)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar dados do mês")
			return
		}

		writeJSON(w, http.StatusOK, data)
	}
}

// ClientOverview mostra o mês mais recente. Usuários CLIENT só veem o próprio cliente.
func ClientOverview(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID := clientIDParam(r)

		userClaims, ok := middleware.UserFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		if userClaims.Role == domain.UserRoleClient && userClaims.ClientID != clientID {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você só pode ver os dados do seu cliente", nil)
			return
		}

		overview, err := service.ClientOverview(r.Context(), userClaims.Role, clientID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar visão geral do cliente")
			return
		}

		writeJSON(w, http.StatusOK, overview)
	}
}

func SyncMetaCampaigns(service ledgering.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SyncMetaCampaigns")

		period, err := domain.ParsePeriod(r.URL.Query().Get("period"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
			return
		}

		result, err := service.SyncMetaCampaigns(r.Context(), clientIDParam(r), period)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao sincronizar campanhas do Meta")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func AddAsset(service ledgering.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var asset domain.Asset
		if err := decodeBody(r, &asset); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		created, err := service.AddAsset(r.Context(), clientIDParam(r), asset)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao adicionar mídia")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func RemoveAsset(service ledgering.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assetID := httprouter.ParamsFromContext(r.Context()).ByName("asset_id")

		if err := service.RemoveAsset(r.Context(), clientIDParam(r), assetID); err != nil {
			writeServiceError(w, r, err, "Erro ao remover mídia")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func clientIDParam(r *http.Request) string {
	return httprouter.ParamsFromContext(r.Context()).ByName("id")
}

func periodParam(w http.ResponseWriter, r *http.Request) (domain.Period, bool) {
	period, err := domain.ParsePeriod(httprouter.ParamsFromContext(r.Context()).ByName("period"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
		return domain.Period{}, false
	}
	return period, true
}

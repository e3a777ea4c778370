package handler

import (
	"net/http"

	"github.com/vfg2006/agency-os-api/internal/domain"
	"github.com/vfg2006/agency-os-api/internal/usecases/reporting"
	"github.com/vfg2006/agency-os-api/pkg/apiErrors"
	"github.com/vfg2006/agency-os-api/pkg/middleware"
)

// rangeFilter lê year, start e end da query string
func rangeFilter(r *http.Request) reporting.RangeFilter {
	query := r.URL.Query()
	return reporting.RangeFilter{
		Year:       query.Get("year"),
		StartMonth: query.Get("start"),
		EndMonth:   query.Get("end"),
	}
}

func GetSummary(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := service.Summary(r.Context(), rangeFilter(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular resumo")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func GetMonthlySeries(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		series, err := service.MonthlySeries(r.Context(), rangeFilter(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular série mensal")
			return
		}

		writeJSON(w, http.StatusOK, series)
	}
}

func GetOverview(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		overviews, err := service.Overview(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar visão geral")
			return
		}

		writeJSON(w, http.StatusOK, overviews)
	}
}

// GetDashboard usa o cliente do token para usuários CLIENT e ?clientId= para a equipe
func GetDashboard(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := middleware.UserFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		clientID := r.URL.Query().Get("clientId")
		if userClaims.Role == domain.UserRoleClient {
			clientID = userClaims.ClientID
		}

		dashboard, err := service.Dashboard(r.Context(), userClaims.Role, clientID, rangeFilter(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar painel")
			return
		}

		writeJSON(w, http.StatusOK, dashboard)
	}
}

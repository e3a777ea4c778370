package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/agency-os-api/internal/domain"
	"github.com/vfg2006/agency-os-api/internal/usecases/reporting"
	"github.com/vfg2006/agency-os-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func TestReportRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)
	routes := Reports(mockReporter)

	tests := []struct {
		name     string
		claims   *domain.Claims
		target   string
		setup    func()
		validate func(t *testing.T, rr *httptest.ResponseRecorder)
	}{
		{
			name:   "Resumo com filtro da query string",
			claims: employeeClaims,
			target: "/v1/reports/summary?year=2024&start=01&end=03",
			setup: func() {
				mockReporter.EXPECT().
					Summary(gomock.Any(), reporting.RangeFilter{Year: "2024", StartMonth: "01", EndMonth: "03"}).
					Return(&reporting.AggregateResult{Spend: "₺3.000", Roas: "2.5x", Points: []float64{1, 2, 3}}, nil)
			},
			validate: func(t *testing.T, rr *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rr.Code)
				assert.Contains(t, rr.Body.String(), `"roas":"2.5x"`)
			},
		},
		{
			name:   "Intervalo invertido",
			claims: adminClaims,
			target: "/v1/reports/summary?year=2024&start=05&end=02",
			setup: func() {
				mockReporter.EXPECT().Summary(gomock.Any(), gomock.Any()).Return(nil, reporting.ErrInvalidRange)
			},
			validate: func(t *testing.T, rr *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rr.Code)
				assert.Contains(t, rr.Body.String(), "VAL_007")
			},
		},
		{
			name:   "Cliente não acessa relatórios da agência",
			claims: clientClaims,
			target: "/v1/reports/monthly",
			setup:  func() {},
			validate: func(t *testing.T, rr *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusForbidden, rr.Code)
			},
		},
		{
			name:   "Série mensal",
			claims: employeeClaims,
			target: "/v1/reports/monthly?year=2024",
			setup: func() {
				mockReporter.EXPECT().MonthlySeries(gomock.Any(), reporting.RangeFilter{Year: "2024"}).
					Return([]reporting.MonthlyPoint{{Month: "Ocak", MonthID: "01", Roas: 2, Spend: 1000, Clients: 1}}, nil)
			},
			validate: func(t *testing.T, rr *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rr.Code)
				assert.Contains(t, rr.Body.String(), `"month":"Ocak"`)
			},
		},
		{
			name:   "Visão geral de todos os clientes",
			claims: adminClaims,
			target: "/v1/reports/overview",
			setup: func() {
				mockReporter.EXPECT().Overview(gomock.Any()).Return([]reporting.ClientOverview{{ClientID: "c_1"}}, nil)
			},
			validate: func(t *testing.T, rr *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rr.Code)
			},
		},
		{
			name:   "Painel do cliente ignora clientId da query",
			claims: clientClaims,
			target: "/v1/dashboard?clientId=c_9",
			setup: func() {
				mockReporter.EXPECT().Dashboard(gomock.Any(), domain.UserRoleClient, "c_1", reporting.RangeFilter{}).
					Return(&reporting.Dashboard{ClientID: "c_1"}, nil)
			},
			validate: func(t *testing.T, rr *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rr.Code)
			},
		},
		{
			name:   "Painel da equipe usa clientId da query",
			claims: employeeClaims,
			target: "/v1/dashboard?clientId=c_9&year=2024",
			setup: func() {
				mockReporter.EXPECT().Dashboard(gomock.Any(), domain.UserRoleEmployee, "c_9", reporting.RangeFilter{Year: "2024"}).
					Return(&reporting.Dashboard{ClientID: "c_9"}, nil)
			},
			validate: func(t *testing.T, rr *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rr.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			rr := serve(routes, tt.claims, http.MethodGet, tt.target, "")
			tt.validate(t, rr)
		})
	}
}

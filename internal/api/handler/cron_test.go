package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeCronJob struct {
	triggered int
	running   bool
}

func (f *fakeCronJob) TriggerManualSync() bool {
	f.triggered++
	return !f.running
}

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"running": f.running}
}

func TestCronRoutes(t *testing.T) {
	meta := &fakeCronJob{}
	backup := &fakeCronJob{running: true}
	routes := CronJobs(CronJobServices{MetaCampaignSync: meta, BackupSnapshot: backup})

	t.Run("Dispara sincronização do Meta", func(t *testing.T) {
		rr := serve(routes, adminClaims, http.MethodPost, "/v1/cron/run/meta", "")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 1, meta.triggered)
		assert.Contains(t, rr.Body.String(), `"meta":true`)
	})

	t.Run("Dispara todas as rotinas", func(t *testing.T) {
		rr := serve(routes, adminClaims, http.MethodPost, "/v1/cron/run/all", "")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 2, meta.triggered)
		assert.Equal(t, 1, backup.triggered)
		assert.Contains(t, rr.Body.String(), `"backup":false`)
	})

	t.Run("Tipo desconhecido", func(t *testing.T) {
		rr := serve(routes, adminClaims, http.MethodPost, "/v1/cron/run/ssotica", "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Rotina não configurada", func(t *testing.T) {
		rr := serve(CronJobs(CronJobServices{MetaCampaignSync: meta}), adminClaims, http.MethodPost, "/v1/cron/run/backup", "")
		assert.Equal(t, http.StatusNotImplemented, rr.Code)
	})

	t.Run("Status das rotinas", func(t *testing.T) {
		rr := serve(routes, adminClaims, http.MethodGet, "/v1/cron/status", "")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"meta":{"running":false},"backup":{"running":true}}`, rr.Body.String())
	})

	t.Run("Funcionário não dispara rotinas", func(t *testing.T) {
		rr := serve(routes, employeeClaims, http.MethodPost, "/v1/cron/run/meta", "")
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

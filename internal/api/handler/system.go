package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/agency-os-api/internal/domain"
	"github.com/vfg2006/agency-os-api/internal/usecases/archiving"
	"github.com/vfg2006/agency-os-api/pkg/apiErrors"
	"github.com/vfg2006/agency-os-api/pkg/utils"
)

// ExportBackup devolve o backup completo como arquivo para download
func ExportBackup(service archiving.Archiver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ExportBackup")

		payload, err := service.Export(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar backup")
			return
		}

		body, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar backup")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", utils.BackupFileName(time.Now())))
		w.WriteHeader(http.StatusOK)
		w.Write(body)
	}
}

// RestoreBackup sobrescreve todas as coleções; exige ?confirm=true
func RestoreBackup(service archiving.Archiver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RestoreBackup")

		var payload domain.BackupPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Arquivo de backup inválido", nil)
			return
		}

		if err := service.Restore(r.Context(), &payload, confirmed(r)); err != nil {
			writeServiceError(w, r, err, "Erro ao restaurar backup")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"message":   "Backup restaurado com sucesso",
			"timestamp": payload.Timestamp,
		})
	}
}

func ListSnapshots(service archiving.Archiver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshots, err := service.ListSnapshots(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar snapshots")
			return
		}

		writeJSON(w, http.StatusOK, snapshots)
	}
}

func CreateSnapshot(service archiving.Archiver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := service.CreateSnapshot(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar snapshot")
			return
		}

		writeJSON(w, http.StatusCreated, snapshot)
	}
}

func RestoreSnapshot(service archiving.Archiver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshotID, err := strconv.ParseInt(httprouter.ParamsFromContext(r.Context()).ByName("id"), 10, 64)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID de snapshot inválido", nil)
			return
		}

		if err := service.RestoreSnapshot(r.Context(), snapshotID, confirmed(r)); err != nil {
			writeServiceError(w, r, err, "Erro ao restaurar snapshot")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"message":     "Snapshot restaurado com sucesso",
			"snapshot_id": snapshotID,
		})
	}
}

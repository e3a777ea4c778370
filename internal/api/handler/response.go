package handler

import (
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/agency-os-api/internal/domain"
	"github.com/vfg2006/agency-os-api/internal/usecases/archiving"
	"github.com/vfg2006/agency-os-api/internal/usecases/authenticating"
	"github.com/vfg2006/agency-os-api/internal/usecases/ledgering"
	"github.com/vfg2006/agency-os-api/internal/usecases/messaging"
	"github.com/vfg2006/agency-os-api/internal/usecases/publishing"
	"github.com/vfg2006/agency-os-api/internal/usecases/reporting"
	"github.com/vfg2006/agency-os-api/pkg/apiErrors"
	"github.com/vfg2006/agency-os-api/pkg/docpatch"
	"github.com/vfg2006/agency-os-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

// decodeBody lê o corpo JSON; corpo vazio é aceito e deixa dst inalterado
func decodeBody(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// writeServiceError traduz os erros dos casos de uso para a resposta padronizada
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		if authErr.Code == apiErrors.ErrDatabaseOperation || authErr.Code == apiErrors.ErrInternalServer {
			log.ForContext(r.Context()).WithError(err).Error(fallbackMessage)
		}
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	var ledgerErr *ledgering.LedgerError
	if errors.As(err, &ledgerErr) {
		var details map[string]any
		if ledgerErr.ClientID != "" {
			details = map[string]any{"client_id": ledgerErr.ClientID}
		}
		apiErrors.WriteError(w, ledgerErr.Code, ledgerErr.Error(), details)
		return
	}

	switch {
	case errors.Is(err, docpatch.ErrInvalidPath),
		errors.Is(err, docpatch.ErrPathConflict),
		errors.Is(err, docpatch.ErrIndexOutOfRange),
		errors.Is(err, docpatch.ErrNotAnArray),
		errors.Is(err, docpatch.ErrPathNotFound):
		apiErrors.WriteError(w, apiErrors.ErrInvalidDocumentPath, err.Error(), nil)

	case errors.Is(err, publishing.ErrInvalidContent):
		apiErrors.WriteError(w, apiErrors.ErrInvalidContent, err.Error(), nil)

	case errors.Is(err, reporting.ErrInvalidRange), errors.Is(err, domain.ErrInvalidPeriod):
		apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)

	case errors.Is(err, messaging.ErrMissingRequiredData):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, messaging.ErrInvalidEmail), errors.Is(err, messaging.ErrInvalidStatus):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	case errors.Is(err, messaging.ErrMessageNotFound):
		apiErrors.WriteError(w, apiErrors.ErrMessageNotFound, err.Error(), nil)

	case errors.Is(err, archiving.ErrConfirmationRequired):
		apiErrors.WriteError(w, apiErrors.ErrConfirmationRequired, err.Error(), nil)

	case errors.Is(err, archiving.ErrInvalidBackup):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	case errors.Is(err, archiving.ErrSnapshotsDisabled):
		apiErrors.WriteError(w, apiErrors.ErrFeatureDisabled, err.Error(), nil)

	case errors.Is(err, archiving.ErrSnapshotNotFound):
		apiErrors.WriteError(w, apiErrors.ErrSnapshotNotFound, err.Error(), nil)

	default:
		log.ForContext(r.Context()).WithError(err).Error(fallbackMessage)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallbackMessage, nil)
	}
}

// confirmed aceita confirm=true na query string
func confirmed(r *http.Request) bool {
	return r.URL.Query().Get("confirm") == "true"
}

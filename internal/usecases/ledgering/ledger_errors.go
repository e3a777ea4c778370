package ledgering

import (
	"errors"
	"fmt"
)

var (
	ErrClientNotFound        = errors.New("cliente não encontrado")
	ErrAssetNotFound         = errors.New("mídia não encontrada")
	ErrConfirmationRequired  = errors.New("confirmação obrigatória para esta ação")
	ErrMissingClientName     = errors.New("nome do cliente é obrigatório")
	ErrInvalidMonthlyData    = errors.New("dados mensais inválidos")
	ErrInvalidAsset          = errors.New("mídia inválida")
	ErrMetaNotConfigured     = errors.New("integração com o Meta não configurada para o cliente")
	ErrMetaTokenExpired      = errors.New("token do Meta expirado ou inválido")
	ErrMetaRequestFailed     = errors.New("falha ao consultar o Meta")
	ErrSyncAlreadyInProgress = errors.New("sincronização já em andamento")
)

// LedgerError carrega o cliente e o código de API junto do erro base
type LedgerError struct {
	Err      error
	Code     string
	ClientID string
	Details  string
}

func (e *LedgerError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *LedgerError) Unwrap() error {
	return e.Err
}

func NewLedgerError(baseErr error, code, clientID, details string) *LedgerError {
	return &LedgerError{
		Err:      baseErr,
		Code:     code,
		ClientID: clientID,
		Details:  details,
	}
}

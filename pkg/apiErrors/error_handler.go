package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de autenticação
	ErrInvalidCredentials    = "AUTH_001" // Credenciais inválidas
	ErrUserNotFound          = "AUTH_003" // Usuário não encontrado
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes
	ErrUserAlreadyExists     = "AUTH_009" // Usuário já existe

	// Erros de validação
	ErrInvalidRequest        = "VAL_001" // Requisição inválida
	ErrMissingRequiredData   = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat         = "VAL_003" // Formato de dados inválido
	ErrConfirmationRequired  = "VAL_004" // Ação destrutiva sem confirmação
	ErrInvalidDocumentPath   = "VAL_005" // Caminho inexistente ou em conflito no documento
	ErrInvalidContent        = "VAL_006" // Documento fora do esquema do site
	ErrInvalidPeriod         = "VAL_007" // Período fora do formato YYYY-MM
	ErrIntegrationNotEnabled = "VAL_008" // Integração não configurada para o cliente

	// Recursos inexistentes
	ErrClientNotFound   = "RES_001" // Cliente não encontrado
	ErrMessageNotFound  = "RES_002" // Mensagem não encontrada
	ErrAssetNotFound    = "RES_003" // Mídia não encontrada
	ErrSnapshotNotFound = "RES_004" // Snapshot de backup não encontrado
	ErrItemNotFound     = "RES_005" // Item de coleção não encontrado
	ErrRouteNotFound    = "RES_006" // Rota inexistente
	ErrMethodNotAllowed = "RES_007" // Método não suportado pela rota

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrCommunication     = "SRV_004" // Erro de comunicação
	ErrExternalToken     = "SRV_005" // Token do serviço externo expirado
	ErrFeatureDisabled   = "SRV_006" // Recurso desabilitado na configuração
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserNotFound:          http.StatusNotFound,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrUserAlreadyExists:     http.StatusConflict,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrConfirmationRequired:  http.StatusPreconditionRequired,
	ErrInvalidDocumentPath:   http.StatusUnprocessableEntity,
	ErrInvalidContent:        http.StatusUnprocessableEntity,
	ErrInvalidPeriod:         http.StatusBadRequest,
	ErrIntegrationNotEnabled: http.StatusBadRequest,
	ErrClientNotFound:        http.StatusNotFound,
	ErrMessageNotFound:       http.StatusNotFound,
	ErrAssetNotFound:         http.StatusNotFound,
	ErrSnapshotNotFound:      http.StatusNotFound,
	ErrItemNotFound:          http.StatusNotFound,
	ErrRouteNotFound:         http.StatusNotFound,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
	ErrCommunication:         http.StatusServiceUnavailable,
	ErrExternalToken:         http.StatusFailedDependency,
	ErrFeatureDisabled:       http.StatusNotImplemented,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP associado ao código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}

package metadomain

import "fmt"

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	FBTraceID    string `json:"fbtrace_id"`
}

// APIError é devolvido quando a Graph API responde com erro
type APIError struct {
	StatusCode int
	Details    ErrorDetails
}

func (e *APIError) Error() string {
	return fmt.Sprintf("meta: status %d: %s", e.StatusCode, e.Details.Message)
}

// IsTokenExpired verifica se o erro é de token expirado ou inválido
func (e *APIError) IsTokenExpired() bool {
	// 190 é o código de token inválido; 460, 463 e 467 são subcódigos de expiração
	return e.Details.Code == 190 ||
		(e.Details.Type == "OAuthException" && (e.Details.ErrorSubcode == 460 || e.Details.ErrorSubcode == 463 || e.Details.ErrorSubcode == 467))
}

package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de autenticação
	ErrMissingToken        = "AUTH_001" // Cookie de token ausente
	ErrOAuthDenied         = "AUTH_002" // Usuário negou a autorização no Facebook
	ErrInvalidState        = "AUTH_003" // State do OAuth inválido ou expirado
	ErrTokenExchange       = "AUTH_004" // Falha na troca do code pelo token
	ErrTokenRejected       = "AUTH_005" // Token recusado pela Graph API
	ErrInvalidToken        = "AUTH_006" // Token inválido
	ErrExpiredToken        = "AUTH_007" // Token expirado
	ErrNoAdAccountSelected = "AUTH_008" // Nenhuma conta de anúncio selecionada
	ErrInvalidCronSecret   = "AUTH_009" // Segredo do cron ausente ou incorreto

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrRouteNotFound       = "VAL_004" // Rota inexistente
	ErrMethodNotAllowed    = "VAL_005" // Método não aceito pela rota

	// Erros da Graph API
	ErrMetaAPI         = "META_001" // Erro permanente retornado pela Graph API
	ErrMetaRateLimited = "META_002" // Limite de requisições atingido
	ErrMetaUnavailable = "META_003" // Erro transitório após as tentativas

	// Erros de configuração
	ErrMissingConfig = "CFG_001" // Configuração do app Meta ausente

	// Erros do servidor
	ErrInternalServer = "SRV_001" // Erro interno do servidor
	ErrCommunication  = "SRV_004" // Erro de comunicação
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrMissingToken:        http.StatusUnauthorized,
	ErrOAuthDenied:         http.StatusUnauthorized,
	ErrInvalidState:        http.StatusBadRequest,
	ErrTokenExchange:       http.StatusBadGateway,
	ErrTokenRejected:       http.StatusUnauthorized,
	ErrInvalidToken:        http.StatusUnauthorized,
	ErrExpiredToken:        http.StatusUnauthorized,
	ErrNoAdAccountSelected: http.StatusBadRequest,
	ErrInvalidCronSecret:   http.StatusUnauthorized,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrRouteNotFound:       http.StatusNotFound,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrMetaAPI:             http.StatusBadGateway,
	ErrMetaRateLimited:     http.StatusTooManyRequests,
	ErrMetaUnavailable:     http.StatusServiceUnavailable,
	ErrMissingConfig:       http.StatusServiceUnavailable,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrCommunication:       http.StatusServiceUnavailable,
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

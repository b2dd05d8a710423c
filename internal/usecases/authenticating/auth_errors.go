package authenticating

import (
	"errors"
	"fmt"
)

// Tipos de erros de autenticação personalizados
var (
	// Erros de configuração
	ErrMissingConfig = errors.New("configuração do app Meta ausente")

	// Erros de credencial
	ErrMissingToken        = errors.New("token ausente")
	ErrInvalidToken        = errors.New("token inválido")
	ErrExpiredToken        = errors.New("token expirado")
	ErrNoAdAccountSelected = errors.New("nenhuma conta de anúncio selecionada")

	// Erros do fluxo OAuth
	ErrInvalidState  = errors.New("state do OAuth inválido")
	ErrOAuthDenied   = errors.New("autorização negada pelo usuário")
	ErrMissingCode   = errors.New("code do OAuth ausente")
	ErrTokenExchange = errors.New("falha ao trocar o code pelo token")
)

// AuthError é um erro com contexto adicional para autenticação
type AuthError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsCredentialError verifica se o erro exige que o usuário conecte novamente
func IsCredentialError(err error) bool {
	return errors.Is(err, ErrMissingToken) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken)
}

// NewAuthError cria um novo erro de autenticação
func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

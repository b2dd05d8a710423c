package domain

import "time"

// Credential é o token de acesso do Meta já decifrado.
// ExpiresAt zero significa validade desconhecida e o token é tratado como válido.
type Credential struct {
	AccessToken string
	ExpiresAt   time.Time
}

func (c Credential) IsExpired(now time.Time) bool {
	if c.ExpiresAt.IsZero() {
		return false
	}

	return !now.Before(c.ExpiresAt)
}

// Session reúne os valores lidos dos cookies da requisição
type Session struct {
	EncryptedToken string
	ExpiresAt      string
	AdAccountID    string
	AdAccountName  string
}

// ConnectionStatus é a resposta de /api/meta/status
type ConnectionStatus struct {
	Connected     bool    `json:"connected"`
	AdAccountID   *string `json:"adAccountId"`
	AdAccountName *string `json:"adAccountName"`
}

// IssuedCredential é o resultado do fluxo OAuth, pronto para ir para o cookie
type IssuedCredential struct {
	EncryptedToken string
	ExpiresAt      time.Time
	MaxAge         time.Duration
}

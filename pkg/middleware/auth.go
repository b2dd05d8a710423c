package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/meta-ads-dashboard-api/internal/domain"
	"github.com/vfg2006/meta-ads-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/meta-ads-dashboard-api/pkg/apiErrors"
)

type contextKey string

const (
	ContextKeySession    contextKey = "meta_session"
	ContextKeyCredential contextKey = "meta_credential"
	ContextKeyAdAccount  contextKey = "meta_ad_account"
)

// Cookies da sessão Meta
const (
	CookieAccessToken   = "meta_access_token"
	CookieExpiresAt     = "meta_access_expires_at"
	CookieAdAccountID   = "meta_selected_ad_account_id"
	CookieAdAccountName = "meta_selected_ad_account_name"
	CookieOAuthState    = "meta_oauth_state"
)

// SessionFromRequest lê os cookies da sessão, valores ausentes ficam vazios
func SessionFromRequest(r *http.Request) domain.Session {
	return domain.Session{
		EncryptedToken: cookieValue(r, CookieAccessToken),
		ExpiresAt:      cookieValue(r, CookieExpiresAt),
		AdAccountID:    cookieValue(r, CookieAdAccountID),
		AdAccountName:  unescapeCookie(cookieValue(r, CookieAdAccountName)),
	}
}

// EscapeCookie codifica valores livres, como o nome da conta, que podem ter
// espaços ou acentos
func EscapeCookie(value string) string {
	return url.QueryEscape(value)
}

func unescapeCookie(value string) string {
	unescaped, err := url.QueryUnescape(value)
	if err != nil {
		return value
	}
	return unescaped
}

func cookieValue(r *http.Request, name string) string {
	cookie, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// SessionMiddleware coloca a sessão lida dos cookies no contexto
func SessionMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), ContextKeySession, SessionFromRequest(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireCredential resolve o token da sessão antes do handler. A expiração é
// conferida localmente, sem chamada à Graph API.
func RequireCredential(authenticator authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			credential, err := authenticator.ResolveCredential(SessionFromContext(r))
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"path":  r.URL.Path,
					"error": err.Error(),
				}).Warn("Tentativa de acesso sem credencial Meta válida")
				WriteAuthError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyCredential, credential)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext retorna a sessão do contexto ou, fora do middleware, dos cookies
func SessionFromContext(r *http.Request) domain.Session {
	if session, ok := r.Context().Value(ContextKeySession).(domain.Session); ok {
		return session
	}
	return SessionFromRequest(r)
}

func CredentialFromContext(ctx context.Context) (*domain.Credential, bool) {
	credential, ok := ctx.Value(ContextKeyCredential).(*domain.Credential)
	return credential, ok && credential != nil
}

// WriteAuthError traduz os erros de autenticação para a resposta padronizada
func WriteAuthError(w http.ResponseWriter, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao validar a credencial", nil)
}

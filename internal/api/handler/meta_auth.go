package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/meta-ads-dashboard-api/internal/config"
	"github.com/vfg2006/meta-ads-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/meta-ads-dashboard-api/pkg/middleware"
)

// Motivos enviados ao dashboard quando o OAuth falha
const (
	reasonMissingCodeOrState = "missing_code_or_state"
	reasonInvalidState       = "invalid_state"
	reasonMissingAppConfig   = "missing_app_config"
	reasonTokenExchange      = "token_exchange_failed"
	reasonInternal           = "internal_error"
)

// OAuthStart redireciona para o diálogo do Facebook com o state assinado
func OAuthStart(cfg *config.Config, service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authURL, state, err := service.StartOAuth(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Erro ao iniciar o OAuth do Meta")
			writeError(w, err)
			return
		}

		setCookie(w, cfg, middleware.CookieOAuthState, state, cfg.Session.StateTTL)
		http.Redirect(w, r, authURL, http.StatusFound)
	})
}

// OAuthCallback conclui o OAuth e sempre termina em um redirect para o dashboard
func OAuthCallback(cfg *config.Config, service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		if oauthErr := query.Get("error"); oauthErr != "" {
			reason := query.Get("error_description")
			if reason == "" {
				reason = oauthErr
			}
			logrus.WithField("reason", reason).Warn("OAuth do Meta negado pelo usuário")
			redirectToDashboard(w, r, cfg, "error", reason)
			return
		}

		code, state := query.Get("code"), query.Get("state")
		if code == "" || state == "" {
			redirectToDashboard(w, r, cfg, "error", reasonMissingCodeOrState)
			return
		}

		expectedState := ""
		if cookie, err := r.Cookie(middleware.CookieOAuthState); err == nil {
			expectedState = cookie.Value
		}

		// o state é de uso único
		clearCookie(w, cfg, middleware.CookieOAuthState)

		issued, err := service.CompleteOAuth(r.Context(), code, state, expectedState)
		if err != nil {
			logrus.WithError(err).Error("Erro ao concluir o OAuth do Meta")
			redirectToDashboard(w, r, cfg, "error", callbackReason(err))
			return
		}

		setCookie(w, cfg, middleware.CookieAccessToken, issued.EncryptedToken, issued.MaxAge)
		setCookie(w, cfg, middleware.CookieExpiresAt, authenticating.FormatExpiresAt(issued.ExpiresAt), issued.MaxAge)

		redirectToDashboard(w, r, cfg, "connected", "")
	})
}

func callbackReason(err error) string {
	switch {
	case errors.Is(err, authenticating.ErrInvalidState):
		return reasonInvalidState
	case errors.Is(err, authenticating.ErrMissingCode):
		return reasonMissingCodeOrState
	case errors.Is(err, authenticating.ErrMissingConfig):
		return reasonMissingAppConfig
	case errors.Is(err, authenticating.ErrTokenExchange):
		return reasonTokenExchange
	default:
		return reasonInternal
	}
}

func redirectToDashboard(w http.ResponseWriter, r *http.Request, cfg *config.Config, result, reason string) {
	params := url.Values{}
	params.Set("meta", result)
	if reason != "" {
		params.Set("reason", reason)
	}

	http.Redirect(w, r, cfg.Session.DashboardURL+cfg.Session.DashboardPath+"?"+params.Encode(), http.StatusFound)
}

// ConnectionStatus informa se há uma credencial válida e a conta selecionada
func ConnectionStatus(service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.Status(middleware.SessionFromContext(r)))
	})
}

// Disconnect remove todos os cookies da sessão Meta
func Disconnect(cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, name := range []string{
			middleware.CookieAccessToken,
			middleware.CookieExpiresAt,
			middleware.CookieAdAccountID,
			middleware.CookieAdAccountName,
		} {
			clearCookie(w, cfg, name)
		}

		logrus.Info("Conta Meta desconectada")
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	})
}

package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/meta-ads-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/meta-ads-dashboard-api/pkg/apiErrors"
)

// CronSecretHeader carrega o segredo das rotas de cron. Authorization: Bearer também é aceito.
const CronSecretHeader = "X-Cron-Secret"

// RequireAdAccount exige uma conta de anúncio selecionada na sessão e guarda o
// id já normalizado no contexto
func RequireAdAccount(authenticator authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accountID, err := authenticator.SelectedAdAccount(SessionFromContext(r))
			if err != nil {
				logrus.Warningf("Acesso a %s sem conta de anúncio selecionada", r.URL.Path)
				WriteAuthError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyAdAccount, accountID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Connected exige apenas a credencial
func Connected(authenticator authenticating.Authenticator) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{RequireCredential(authenticator)}
}

// ConnectedWithAccount exige a credencial e a conta selecionada, nessa ordem
func ConnectedWithAccount(authenticator authenticating.Authenticator) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		RequireCredential(authenticator),
		RequireAdAccount(authenticator),
	}
}

func AdAccountFromContext(ctx context.Context) string {
	accountID, _ := ctx.Value(ContextKeyAdAccount).(string)
	return accountID
}

// RequireCronSecret libera a rota apenas para quem envia o segredo configurado.
// Sem segredo configurado a rota responde 503.
func RequireCronSecret(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				apiErrors.WriteError(w, apiErrors.ErrMissingConfig, "CRON_SECRET não configurado", nil)
				return
			}

			provided := r.Header.Get(CronSecretHeader)
			if provided == "" {
				provided = strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			}

			if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
				logrus.Warningf("Acesso a %s com segredo de cron inválido", r.URL.Path)
				apiErrors.WriteError(w, apiErrors.ErrInvalidCronSecret, "Segredo do cron ausente ou incorreto", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// CronOnly protege as rotas acionadas pelo agendador externo
func CronOnly(secret string) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{RequireCronSecret(secret)}
}

package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/meta-ads-dashboard-api/internal/config"
	"github.com/vfg2006/meta-ads-dashboard-api/internal/domain"
	"github.com/vfg2006/meta-ads-dashboard-api/internal/usecases/account"
	"github.com/vfg2006/meta-ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/meta-ads-dashboard-api/pkg/middleware"
)

func AdAccountList(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := accessToken(w, r)
		if !ok {
			return
		}

		adAccounts, err := service.ListAdAccounts(r.Context(), token)
		if err != nil {
			logrus.Error("Error listing accounts:", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"data": adAccounts})
	})
}

// SelectAdAccount guarda a conta escolhida e o nome dela nos cookies da sessão
func SelectAdAccount(cfg *config.Config, service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := accessToken(w, r)
		if !ok {
			return
		}

		var req domain.SelectAdAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		resp, err := service.SelectAdAccount(r.Context(), token, req)
		if err != nil {
			writeError(w, err)
			return
		}

		setCookie(w, cfg, middleware.CookieAdAccountID, resp.AdAccountID, cfg.Session.AccountMaxAge)
		setCookie(w, cfg, middleware.CookieAdAccountName, middleware.EscapeCookie(resp.AdAccountName), cfg.Session.AccountMaxAge)

		writeJSON(w, http.StatusOK, resp)
	})
}

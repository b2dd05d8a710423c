package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/meta-ads-dashboard-api/internal/config"
	"github.com/vfg2006/meta-ads-dashboard-api/pkg/middleware"
)

type HealthcheckResponse struct {
	OK           bool            `json:"ok"`
	Now          string          `json:"now"`
	Env          map[string]bool `json:"env"`
	TokenPresent *bool           `json:"tokenPresent,omitempty"`
}

// HealthcheckHandler indica quais configurações do Meta estão presentes, nunca os valores
func HealthcheckHandler(cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthcheck(cfg))
	})
}

// DebugHandler é o healthcheck mais a presença do cookie de token
func DebugHandler(cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := healthcheck(cfg)
		present := middleware.SessionFromContext(r).EncryptedToken != ""
		resp.TokenPresent = &present

		writeJSON(w, http.StatusOK, resp)
	})
}

func healthcheck(cfg *config.Config) HealthcheckResponse {
	return HealthcheckResponse{
		OK:  true,
		Now: time.Now().UTC().Format(time.RFC3339),
		Env: map[string]bool{
			"META_APP_ID":       cfg.Meta.AppID != "",
			"META_APP_SECRET":   cfg.Meta.AppSecret != "",
			"META_REDIRECT_URI": cfg.Meta.RedirectURI != "",
			"META_TOKEN_SECRET": cfg.Meta.HasTokenSecret(),
		},
	}
}

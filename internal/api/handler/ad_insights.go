package handler

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/meta-ads-dashboard-api/internal/domain"
	"github.com/vfg2006/meta-ads-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/meta-ads-dashboard-api/pkg/middleware"
)

type listFunc func(ctx context.Context, token, accountID string, filters domain.ListFilters) (*domain.EntityPage, error)

// entityList é o handler comum de campaigns, adsets e ads
func entityList(level domain.EntityLevel, list listFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := accessToken(w, r)
		if !ok {
			return
		}

		filters, err := parseListFilters(r)
		if err != nil {
			writeFilterError(w, err)
			return
		}

		accountID := middleware.AdAccountFromContext(r.Context())

		page, err := list(r.Context(), token, accountID, filters)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": accountID,
				"level":      level,
				"error":      err.Error(),
			}).Error("Erro ao listar entidades")
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, page)
	})
}

func ListCampaigns(service insighting.Insighter) http.Handler {
	return entityList(domain.LevelCampaign, service.ListCampaigns)
}

func ListAdSets(service insighting.Insighter) http.Handler {
	return entityList(domain.LevelAdSet, service.ListAdSets)
}

func ListAds(service insighting.Insighter) http.Handler {
	return entityList(domain.LevelAd, service.ListAds)
}

// AccountInsights retorna o resumo agregado da conta selecionada
func AccountInsights(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := accessToken(w, r)
		if !ok {
			return
		}

		filters, err := parseInsightFilters(r)
		if err != nil {
			writeFilterError(w, err)
			return
		}

		accountID := middleware.AdAccountFromContext(r.Context())

		resp, err := service.Summary(r.Context(), token, accountID, filters)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": accountID,
				"error":      err.Error(),
			}).Error("Erro ao buscar insights da conta")
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	})
}

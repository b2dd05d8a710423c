package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/meta-ads-dashboard-api/internal/domain"
	"github.com/vfg2006/meta-ads-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/meta-ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/meta-ads-dashboard-api/pkg/middleware"
)

// UpdateStatus ativa ou pausa uma campaign, adset ou ad
func UpdateStatus(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := accessToken(w, r)
		if !ok {
			return
		}

		var req domain.StatusUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if err := req.Validate(); err != nil {
			writeError(w, err)
			return
		}

		resp, err := service.UpdateStatus(r.Context(), token, req)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"object_id": req.ObjectID,
				"status":    req.Status,
				"error":     err.Error(),
			}).Error("Erro ao atualizar status")
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	})
}

// UpdateAdSetBudget recebe o orçamento diário na unidade exibida
func UpdateAdSetBudget(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := accessToken(w, r)
		if !ok {
			return
		}

		var req domain.BudgetUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if err := req.Validate(); err != nil {
			writeError(w, err)
			return
		}

		resp, err := service.UpdateDailyBudget(r.Context(), token, req)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"adset_id": req.AdSetID,
				"error":    err.Error(),
			}).Error("Erro ao atualizar orçamento")
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	})
}

// CreateCampaign cria uma campaign na conta selecionada, pausada por padrão
func CreateCampaign(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := accessToken(w, r)
		if !ok {
			return
		}

		var req domain.CreateCampaignRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if err := req.Validate(); err != nil {
			writeError(w, err)
			return
		}

		accountID := middleware.AdAccountFromContext(r.Context())

		resp, err := service.CreateCampaign(r.Context(), token, accountID, req)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": accountID,
				"error":      err.Error(),
			}).Error("Erro ao criar campaign")
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, resp)
	})
}

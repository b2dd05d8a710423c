package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/meta-ads-dashboard-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/meta-ads-dashboard-api/internal/domain"
	"github.com/vfg2006/meta-ads-dashboard-api/internal/usecases/account"
	"github.com/vfg2006/meta-ads-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/meta-ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/meta-ads-dashboard-api/pkg/middleware"
	"github.com/vfg2006/meta-ads-dashboard-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
	}
}

// writeError traduz os erros dos casos de uso e da Graph API para a resposta padronizada
func writeError(w http.ResponseWriter, err error) {
	var (
		authErr    *authenticating.AuthError
		accountErr *account.AccountError
	)

	if errors.As(err, &authErr) {
		middleware.WriteAuthError(w, err)
		return
	}

	if errors.As(err, &accountErr) {
		apiErrors.WriteError(w, accountErr.Code, accountErr.Error(), nil)
		return
	}

	if graphErr, ok := metaclient.AsGraphError(err); ok {
		writeGraphError(w, graphErr)
		return
	}

	switch {
	case errors.Is(err, domain.ErrHalfOpenRange),
		errors.Is(err, domain.ErrInvertedRange),
		errors.Is(err, domain.ErrUnknownDatePreset):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	case errors.Is(err, domain.ErrInvalidObjectID),
		errors.Is(err, domain.ErrInvalidCampaignName),
		errors.Is(err, domain.ErrInvalidObjective):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidBudget):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	case errors.Is(err, metaclient.ErrRequestFailed),
		errors.Is(err, context.DeadlineExceeded):
		apiErrors.WriteError(w, apiErrors.ErrCommunication, "Não foi possível se comunicar com a Graph API", nil)

	default:
		logrus.WithError(err).Error("Erro não mapeado na requisição")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
	}
}

// writeGraphError repassa o objeto de erro do Meta como details
func writeGraphError(w http.ResponseWriter, graphErr *metaclient.GraphError) {
	var details any = map[string]string{"message": http.StatusText(graphErr.StatusCode)}
	if graphErr.Detail != nil && len(graphErr.Detail.Raw) > 0 {
		details = graphErr.Detail.Raw
	}

	switch {
	case graphErr.IsTokenExpired():
		apiErrors.WriteError(w, apiErrors.ErrTokenRejected, "Token recusado pela Graph API, conecte a conta novamente", details)
	case graphErr.StatusCode == http.StatusTooManyRequests:
		apiErrors.WriteError(w, apiErrors.ErrMetaRateLimited, "Limite de requisições da Graph API atingido, tente novamente mais tarde", details)
	case graphErr.Transient:
		apiErrors.WriteError(w, apiErrors.ErrMetaUnavailable, "Graph API indisponível", details)
	default:
		apiErrors.WriteError(w, apiErrors.ErrMetaAPI, graphErr.Error(), details)
	}
}

// parseInsightFilters lê date_preset, since e until da query string
func parseInsightFilters(r *http.Request) (domain.InsightFilters, error) {
	query := r.URL.Query()

	since, err := utils.ParseDate(strings.TrimSpace(query.Get("since")))
	if err != nil {
		return domain.InsightFilters{}, err
	}

	until, err := utils.ParseDate(strings.TrimSpace(query.Get("until")))
	if err != nil {
		return domain.InsightFilters{}, err
	}

	filters := domain.InsightFilters{
		DatePreset: strings.TrimSpace(query.Get("date_preset")),
		Since:      since,
		Until:      until,
	}

	return filters, filters.Validate()
}

func parseListFilters(r *http.Request) (domain.ListFilters, error) {
	filters, err := parseInsightFilters(r)
	if err != nil {
		return domain.ListFilters{}, err
	}

	return domain.ListFilters{
		InsightFilters: filters,
		After:          strings.TrimSpace(r.URL.Query().Get("after")),
	}, nil
}

func writeFilterError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrHalfOpenRange) || errors.Is(err, domain.ErrInvertedRange) || errors.Is(err, domain.ErrUnknownDatePreset) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
		return
	}
	apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas devem estar no formato AAAA-MM-DD", nil)
}

// accessToken retorna o token resolvido pelo middleware de credencial
func accessToken(w http.ResponseWriter, r *http.Request) (string, bool) {
	credential, ok := middleware.CredentialFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Conta Meta não conectada", nil)
		return "", false
	}
	return credential.AccessToken, true
}

package metaclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pkg/errors"

	metadomain "github.com/vfg2006/meta-ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-dashboard-api/internal/domain"
	"github.com/vfg2006/meta-ads-dashboard-api/pkg/utils"
)

func (c *MetaClient) post(ctx context.Context, req Request, token string) (*metadomain.MutationResponse, error) {
	req.Method = http.MethodPost

	var result metadomain.MutationResponse
	if err := c.call(ctx, req, token, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// UpdateStatus altera o status de uma campaign, adset ou ad
func (c *MetaClient) UpdateStatus(ctx context.Context, token, objectID, status string) (*metadomain.MutationResponse, error) {
	form := url.Values{}
	form.Set("status", status)

	result, err := c.post(ctx, Request{Path: "/" + objectID, Form: form}, token)
	if err != nil {
		return nil, errors.Wrapf(err, "error updating status of %s", objectID)
	}

	return result, nil
}

// UpdateDailyBudget recebe o orçamento já em centavos
func (c *MetaClient) UpdateDailyBudget(ctx context.Context, token, adSetID string, minorUnits int64) (*metadomain.MutationResponse, error) {
	form := url.Values{}
	form.Set("daily_budget", strconv.FormatInt(minorUnits, 10))

	result, err := c.post(ctx, Request{Path: "/" + adSetID, Form: form}, token)
	if err != nil {
		return nil, errors.Wrapf(err, "error updating budget of %s", adSetID)
	}

	return result, nil
}

func (c *MetaClient) CreateCampaign(ctx context.Context, token, accountID string, req domain.CreateCampaignRequest) (*metadomain.MutationResponse, error) {
	status := req.Status
	if status == "" {
		status = domain.StatusPaused
	}

	form := url.Values{}
	form.Set("name", req.Name)
	form.Set("objective", req.Objective)
	form.Set("status", status)
	form.Set("special_ad_categories", "[]")
	if req.DailyBudget > 0 {
		form.Set("daily_budget", strconv.FormatInt(utils.ToMinorUnits(req.DailyBudget), 10))
	}

	result, err := c.post(ctx, Request{
		Path:          "/" + NormalizeAccountID(accountID) + "/campaigns",
		Form:          form,
		NonIdempotent: true,
	}, token)
	if err != nil {
		return nil, errors.Wrap(err, "error creating campaign")
	}

	return result, nil
}

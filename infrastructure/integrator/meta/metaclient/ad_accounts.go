package metaclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pkg/errors"

	metadomain "github.com/vfg2006/meta-ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-dashboard-api/pkg/log"
)

// ListAdAccounts lista as contas de anúncio acessíveis pelo token
func (c *MetaClient) ListAdAccounts(ctx context.Context, token string) ([]metadomain.AdAccount, error) {
	params := url.Values{}
	params.Set("fields", adAccountFields)
	params.Set("limit", strconv.Itoa(c.Cfg.Graph.PageLimit))

	items, err := c.FetchAllPages(ctx, "/me/adaccounts", token, params, c.Cfg.Graph.MaxPages)
	if err != nil {
		return nil, errors.Wrap(err, "error listing ad accounts")
	}

	accounts := make([]metadomain.AdAccount, 0, len(items))
	for _, item := range items {
		var account metadomain.AdAccount
		if err := jsonCodec.Unmarshal(item, &account); err != nil {
			log.ForContext(ctx).WithError(err).Warn("meta graph: conta de anúncio ignorada, formato inválido")
			continue
		}
		accounts = append(accounts, account)
	}

	return accounts, nil
}

func (c *MetaClient) GetAdAccount(ctx context.Context, token, accountID string) (*metadomain.AdAccount, error) {
	params := url.Values{}
	params.Set("fields", adAccountFields)

	req := Request{
		Method: http.MethodGet,
		Path:   "/" + NormalizeAccountID(accountID),
		Query:  params,
	}

	var account metadomain.AdAccount
	if err := c.call(ctx, req, token, &account); err != nil {
		return nil, errors.Wrap(err, "error fetching ad account")
	}

	return &account, nil
}

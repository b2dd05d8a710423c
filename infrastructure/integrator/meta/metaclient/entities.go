package metaclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pkg/errors"

	metadomain "github.com/vfg2006/meta-ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-dashboard-api/internal/domain"
)

// ListEntities busca uma página de campaigns, adsets ou ads da conta.
// after é o cursor devolvido em paging.cursors.after da página anterior.
func (c *MetaClient) ListEntities(ctx context.Context, token, accountID string, level domain.EntityLevel, after string) (*metadomain.ListResponse, error) {
	edge, fields, err := entityEdge(level)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("fields", fields)
	params.Set("limit", strconv.Itoa(c.Cfg.Graph.PageLimit))
	if after != "" {
		params.Set("after", after)
	}

	req := Request{
		Method: http.MethodGet,
		Path:   "/" + NormalizeAccountID(accountID) + "/" + edge,
		Query:  params,
	}

	var list metadomain.ListResponse
	if err := c.call(ctx, req, token, &list); err != nil {
		return nil, errors.Wrapf(err, "error listing %s", edge)
	}

	return &list, nil
}

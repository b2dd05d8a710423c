package metaclient

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/vfg2006/meta-ads-dashboard-api/internal/domain"
)

// GetInsights busca todas as linhas de insight da conta no nível informado
func (c *MetaClient) GetInsights(ctx context.Context, token, accountID string, level domain.EntityLevel, filters domain.InsightFilters) ([]json.RawMessage, error) {
	query, err := InsightsQuery(level, filters, c.Cfg.Insights.DefaultDatePreset, c.Cfg.Graph.PageLimit)
	if err != nil {
		return nil, err
	}

	path := "/" + NormalizeAccountID(accountID) + "/insights"

	rows, err := c.FetchAllPages(ctx, path, token, query, c.Cfg.Graph.MaxPages)
	if err != nil {
		return nil, errors.Wrapf(err, "error fetching %s insights", level)
	}

	return rows, nil
}

package metaclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	metadomain "github.com/vfg2006/meta-ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-dashboard-api/pkg/log"
)

// FetchAllPages segue paging.next acumulando os itens de data na ordem em que
// chegam. maxPages <= 0 não limita a quantidade de páginas.
func (c *MetaClient) FetchAllPages(ctx context.Context, path, token string, query url.Values, maxPages int) ([]json.RawMessage, error) {
	var items []json.RawMessage

	req := Request{Method: http.MethodGet, Path: path, Query: query}

	for page := 1; ; page++ {
		var list metadomain.ListResponse
		if err := c.call(ctx, req, token, &list); err != nil {
			return nil, errors.Wrapf(err, "error fetching page %d of %s", page, path)
		}

		items = append(items, list.Data...)

		if list.Paging.Next == "" {
			break
		}

		if maxPages > 0 && page >= maxPages {
			log.ForContext(ctx).Warnf("meta graph: limite de %d páginas atingido em %s", maxPages, path)
			break
		}

		// a URL de next já carrega todos os parâmetros
		req = Request{Method: http.MethodGet, Path: list.Paging.Next}
	}

	return items, nil
}

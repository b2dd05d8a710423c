package metaclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/vfg2006/meta-ads-dashboard-api/pkg/log"
)

// Request descreve uma chamada à Graph API. Path é relativo à versão
// ("/act_1/campaigns") ou uma URL absoluta do mesmo host, como paging.next.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Form   url.Values

	// NonIdempotent marca criações: só 429 é retentado e falhas de transporte
	// não se repetem, porque o Graph pode ter processado a primeira tentativa.
	NonIdempotent bool
}

// retryable diz se a resposta com este status pode ser repetida para req
func (c *MetaClient) retryable(req Request, statusCode int) bool {
	if req.NonIdempotent && statusCode != http.StatusTooManyRequests {
		return false
	}
	return c.policy.retryable(statusCode)
}

// Response guarda o status, os headers e o corpo já lido
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

func (c *MetaClient) buildURL(req Request) (string, error) {
	var target *url.URL
	var err error

	if strings.HasPrefix(req.Path, "http://") || strings.HasPrefix(req.Path, "https://") {
		target, err = url.Parse(req.Path)
		if err != nil {
			return "", err
		}

		base, err := url.Parse(c.Cfg.Meta.URL)
		if err != nil {
			return "", err
		}
		if target.Host != base.Host {
			return "", fmt.Errorf("unexpected host %q", target.Host)
		}
	} else {
		path := req.Path
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		target, err = url.Parse(c.Cfg.Meta.URL + path)
		if err != nil {
			return "", err
		}
	}

	if len(req.Query) > 0 {
		query := target.Query()
		for key, values := range req.Query {
			query.Del(key)
			for _, v := range values {
				query.Add(key, v)
			}
		}
		target.RawQuery = query.Encode()
	}

	return target.String(), nil
}

func (c *MetaClient) newHTTPRequest(ctx context.Context, req Request, target, token string) (*http.Request, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if req.Form != nil {
		body = strings.NewReader(req.Form.Encode())
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, err
	}

	httpReq.Header.Set("Authorization", "Bearer "+token)
	if req.Form != nil {
		httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	return httpReq, nil
}

// Do executa a requisição aplicando a política de retentativa. Depois da última
// tentativa a resposta é devolvida mesmo que não seja 2xx. Se nenhuma tentativa
// obteve resposta, o último erro de transporte vem envolvido em ErrRequestFailed.
func (c *MetaClient) Do(ctx context.Context, req Request, token string) (*Response, error) {
	target, err := c.buildURL(req)
	if err != nil {
		return nil, errors.Wrap(err, "invalid graph url")
	}

	logger := log.ForContext(ctx)
	attempts := c.policy.attempts()

	var lastResp *Response
	var lastErr error

	for attempt := 0; attempt < attempts; attempt++ {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		httpReq, err := c.newHTTPRequest(ctx, req, target, token)
		if err != nil {
			return nil, errors.Wrap(err, "error building graph request")
		}

		resp, err := c.send(httpReq)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}

			lastErr = err
			logger.WithError(err).Warnf("meta graph: tentativa %d/%d falhou para %s", attempt+1, attempts, req.Path)

			if req.NonIdempotent {
				break
			}

			if attempt < attempts-1 {
				if err := c.sleep(ctx, c.policy.delay(attempt)); err != nil {
					return nil, err
				}
			}
			continue
		}

		lastResp = resp
		if !c.retryable(req, resp.StatusCode) || attempt == attempts-1 {
			return resp, nil
		}

		wait, ok := retryAfter(resp.Header)
		if !ok {
			wait = c.policy.delay(attempt)
		}

		logger.Warnf("meta graph: status %d em %s, nova tentativa em %s (%d/%d)", resp.StatusCode, req.Path, wait, attempt+1, attempts)

		if err := c.sleep(ctx, wait); err != nil {
			return nil, err
		}
	}

	if lastResp != nil {
		return lastResp, nil
	}

	if lastErr == nil {
		lastErr = errors.New("no attempt was made")
	}

	return nil, fmt.Errorf("%w: %w", ErrRequestFailed, lastErr)
}

func (c *MetaClient) send(httpReq *http.Request) (*Response, error) {
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}

// call executa a requisição e converte respostas não 2xx em *GraphError
func (c *MetaClient) call(ctx context.Context, req Request, token string, out any) error {
	resp, err := c.Do(ctx, req, token)
	if err != nil {
		return err
	}

	if !resp.OK() {
		return newGraphError(resp)
	}

	if out == nil {
		return nil
	}

	if err := jsonCodec.Unmarshal(resp.Body, out); err != nil {
		return errors.Wrap(err, "error decoding graph response")
	}

	return nil
}

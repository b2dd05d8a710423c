package metaclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	metadomain "github.com/vfg2006/meta-ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-dashboard-api/internal/config"
	"github.com/vfg2006/meta-ads-dashboard-api/internal/domain"
)

//go:generate mockgen -source=client.go -destination=mocks/client.go -package=mocks

type Client interface {
	Do(ctx context.Context, req Request, token string) (*Response, error)
	FetchAllPages(ctx context.Context, path, token string, query url.Values, maxPages int) ([]json.RawMessage, error)

	ListEntities(ctx context.Context, token, accountID string, level domain.EntityLevel, after string) (*metadomain.ListResponse, error)
	GetInsights(ctx context.Context, token, accountID string, level domain.EntityLevel, filters domain.InsightFilters) ([]json.RawMessage, error)
	ListAdAccounts(ctx context.Context, token string) ([]metadomain.AdAccount, error)
	GetAdAccount(ctx context.Context, token, accountID string) (*metadomain.AdAccount, error)

	UpdateStatus(ctx context.Context, token, objectID, status string) (*metadomain.MutationResponse, error)
	UpdateDailyBudget(ctx context.Context, token, adSetID string, minorUnits int64) (*metadomain.MutationResponse, error)
	CreateCampaign(ctx context.Context, token, accountID string, req domain.CreateCampaignRequest) (*metadomain.MutationResponse, error)

	AuthCodeURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error)
	ExchangeLongLivedToken(ctx context.Context, shortLivedToken string) (*TokenResponse, error)
}

var _ Client = (*MetaClient)(nil)

type MetaClient struct {
	Cfg        *config.Config
	httpClient *http.Client
	limiter    *rate.Limiter
	policy     RetryPolicy
	oauth      *oauth2.Config
	sleep      func(ctx context.Context, d time.Duration) error
}

type Option func(*MetaClient)

// WithHTTPClient substitui o cliente HTTP usado nas chamadas
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *MetaClient) {
		c.httpClient = httpClient
	}
}

func WithRetryPolicy(policy RetryPolicy) Option {
	return func(c *MetaClient) {
		c.policy = policy
	}
}

func WithRateLimiter(limiter *rate.Limiter) Option {
	return func(c *MetaClient) {
		c.limiter = limiter
	}
}

func NewClient(cfg *config.Config, opts ...Option) *MetaClient {
	policy := DefaultRetryPolicy(cfg.Graph.BaseDelay)
	if cfg.Graph.MaxAttempts > 0 {
		policy.MaxAttempts = cfg.Graph.MaxAttempts
	}

	client := &MetaClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Graph.Timeout,
		},
		policy: policy,
		oauth:  newOAuthConfig(cfg),
		sleep:  sleepContext,
	}

	if cfg.Graph.RateLimit > 0 {
		burst := cfg.Graph.RateBurst
		if burst <= 0 {
			burst = 1
		}
		client.limiter = rate.NewLimiter(rate.Limit(cfg.Graph.RateLimit), burst)
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

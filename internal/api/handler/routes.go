package handler

import (
	"net/http"

	"github.com/vfg2006/meta-ads-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/meta-ads-dashboard-api/internal/config"
	"github.com/vfg2006/meta-ads-dashboard-api/internal/scheduler"
	"github.com/vfg2006/meta-ads-dashboard-api/internal/usecases/account"
	"github.com/vfg2006/meta-ads-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/meta-ads-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/meta-ads-dashboard-api/pkg/middleware"
)

func Healthcheck(cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(cfg),
		},
		{
			Path:    "/api/meta/debug",
			Method:  http.MethodGet,
			Handler: DebugHandler(cfg),
		},
	}
}

func Authentication(cfg *config.Config, service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/api/meta/oauth/start",
			Method:  http.MethodGet,
			Handler: OAuthStart(cfg, service),
		},
		{
			Path:    "/api/meta/oauth/callback",
			Method:  http.MethodGet,
			Handler: OAuthCallback(cfg, service),
		},
		{
			Path:    "/api/meta/status",
			Method:  http.MethodGet,
			Handler: ConnectionStatus(service),
		},
		{
			Path:    "/api/meta/disconnect",
			Method:  http.MethodPost,
			Handler: Disconnect(cfg),
		},
	}
}

func AdAccounts(cfg *config.Config, service account.AccountService, authenticator authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/api/meta/adaccounts",
			Method:      http.MethodGet,
			Handler:     AdAccountList(service),
			Middlewares: middleware.Connected(authenticator),
		},
		{
			Path:        "/api/meta/select-adaccount",
			Method:      http.MethodPost,
			Handler:     SelectAdAccount(cfg, service),
			Middlewares: middleware.Connected(authenticator),
		},
	}
}

func Insights(service insighting.Insighter, authenticator authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/api/meta/campaigns",
			Method:      http.MethodGet,
			Handler:     ListCampaigns(service),
			Middlewares: middleware.ConnectedWithAccount(authenticator),
		},
		{
			Path:        "/api/meta/adsets",
			Method:      http.MethodGet,
			Handler:     ListAdSets(service),
			Middlewares: middleware.ConnectedWithAccount(authenticator),
		},
		{
			Path:        "/api/meta/ads",
			Method:      http.MethodGet,
			Handler:     ListAds(service),
			Middlewares: middleware.ConnectedWithAccount(authenticator),
		},
		{
			Path:        "/api/meta/insights",
			Method:      http.MethodGet,
			Handler:     AccountInsights(service),
			Middlewares: middleware.ConnectedWithAccount(authenticator),
		},
	}
}

func Mutations(service insighting.Insighter, authenticator authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/api/meta/status",
			Method:      http.MethodPost,
			Handler:     UpdateStatus(service),
			Middlewares: middleware.Connected(authenticator),
		},
		{
			Path:        "/api/meta/adset-budget",
			Method:      http.MethodPost,
			Handler:     UpdateAdSetBudget(service),
			Middlewares: middleware.Connected(authenticator),
		},
		{
			Path:        "/api/meta/campaigns",
			Method:      http.MethodPost,
			Handler:     CreateCampaign(service),
			Middlewares: middleware.ConnectedWithAccount(authenticator),
		},
	}
}

func CronJobs(cfg *config.Config, cacheCleanup *scheduler.CacheCleanupService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/cache-cleanup/run",
			Method:      http.MethodPost,
			Handler:     RunCacheCleanup(cacheCleanup),
			Middlewares: middleware.CronOnly(cfg.Server.CronSecret),
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(cacheCleanup),
			Middlewares: middleware.CronOnly(cfg.Server.CronSecret),
		},
	}
}

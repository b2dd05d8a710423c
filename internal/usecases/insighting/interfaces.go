package insighting

import (
	"context"

	"github.com/vfg2006/meta-ads-dashboard-api/internal/domain"
)

// EntityLister lista entidades de um nível já com as métricas do período
type EntityLister interface {
	ListCampaigns(ctx context.Context, token, accountID string, filters domain.ListFilters) (*domain.EntityPage, error)
	ListAdSets(ctx context.Context, token, accountID string, filters domain.ListFilters) (*domain.EntityPage, error)
	ListAds(ctx context.Context, token, accountID string, filters domain.ListFilters) (*domain.EntityPage, error)
}

// Mutator altera objetos na conta de anúncio
type Mutator interface {
	UpdateStatus(ctx context.Context, token string, req domain.StatusUpdateRequest) (*domain.MutationResponse, error)
	UpdateDailyBudget(ctx context.Context, token string, req domain.BudgetUpdateRequest) (*domain.MutationResponse, error)
	CreateCampaign(ctx context.Context, token, accountID string, req domain.CreateCampaignRequest) (*domain.MutationResponse, error)
}

// Insighter é a interface completa usada pelos handlers do dashboard
type Insighter interface {
	EntityLister
	Mutator

	// Summary agrega os insights da conta no período
	Summary(ctx context.Context, token, accountID string, filters domain.InsightFilters) (*domain.InsightsResponse, error)
}

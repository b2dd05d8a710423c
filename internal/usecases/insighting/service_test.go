package insighting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/meta-ads-dashboard-api/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/meta-ads-dashboard-api/internal/cache"
	"github.com/vfg2006/meta-ads-dashboard-api/internal/config"
	"github.com/vfg2006/meta-ads-dashboard-api/internal/domain"
)

func newTestService(t *testing.T) (*Service, *mocks.MockIntegrator) {
	ctrl := gomock.NewController(t)
	mockMeta := mocks.NewMockIntegrator(ctrl)

	cfg := &config.Config{}
	cfg.Insights.DefaultDatePreset = "last_30d"

	service := NewService(cfg, mockMeta).(*Service).WithCache(cache.New(time.Minute))
	return service, mockMeta
}

func TestService_ListCampaigns_Cache(t *testing.T) {
	service, mockMeta := newTestService(t)

	page := &domain.EntityPage{
		Data:   []domain.EnrichedEntity{{AdEntity: domain.AdEntity{ID: "c1"}}},
		Paging: domain.PageInfo{NextCursor: "abc"},
	}

	mockMeta.EXPECT().
		ListEntities(gomock.Any(), "token", "act_1", domain.LevelCampaign, gomock.Any()).
		Return(page, nil).
		Times(1)

	first, err := service.ListCampaigns(context.Background(), "token", "act_1", domain.ListFilters{})
	require.NoError(t, err)

	// preset padrão explícito cai na mesma chave que o omitido
	second, err := service.ListCampaigns(context.Background(), "token", "act_1", domain.ListFilters{
		InsightFilters: domain.InsightFilters{DatePreset: "last_30d"},
	})
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestService_ListEntities_CacheIsPerToken(t *testing.T) {
	service, mockMeta := newTestService(t)

	mockMeta.EXPECT().
		ListEntities(gomock.Any(), gomock.Any(), "act_1", domain.LevelAd, gomock.Any()).
		Return(&domain.EntityPage{Data: []domain.EnrichedEntity{}}, nil).
		Times(2)

	_, err := service.ListAds(context.Background(), "token-a", "act_1", domain.ListFilters{})
	require.NoError(t, err)
	_, err = service.ListAds(context.Background(), "token-b", "act_1", domain.ListFilters{})
	require.NoError(t, err)
}

func TestService_ListEntities_PartialIsNotCached(t *testing.T) {
	service, mockMeta := newTestService(t)

	mockMeta.EXPECT().
		ListEntities(gomock.Any(), "token", "act_1", domain.LevelAdSet, gomock.Any()).
		Return(&domain.EntityPage{Data: []domain.EnrichedEntity{}, Partial: true}, nil).
		Times(2)

	for i := 0; i < 2; i++ {
		page, err := service.ListAdSets(context.Background(), "token", "act_1", domain.ListFilters{})
		require.NoError(t, err)
		assert.True(t, page.Partial)
	}
}

func TestService_ListEntities_InvalidFilters(t *testing.T) {
	service, _ := newTestService(t)

	since := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := service.ListCampaigns(context.Background(), "token", "act_1", domain.ListFilters{
		InsightFilters: domain.InsightFilters{Since: &since},
	})
	assert.ErrorIs(t, err, domain.ErrHalfOpenRange)
}

func TestService_Summary(t *testing.T) {
	service, mockMeta := newTestService(t)

	roas := 2.5
	summary := &domain.SummaryInsights{
		InsightMetrics: domain.InsightMetrics{Spend: 100, PurchaseValue: 250, ROAS: &roas},
		Rows:           2,
	}

	mockMeta.EXPECT().
		AccountSummary(gomock.Any(), "token", "act_1", domain.InsightFilters{}).
		Return(summary, nil).
		Times(1)

	resp, err := service.Summary(context.Background(), "token", "act_1", domain.InsightFilters{})
	require.NoError(t, err)
	assert.Equal(t, "act_1", resp.AdAccountID)
	assert.Equal(t, "last_30d", resp.Filters.DatePreset)
	assert.Equal(t, 100.0, resp.Summary.Spend)

	cached, err := service.Summary(context.Background(), "token", "act_1", domain.InsightFilters{})
	require.NoError(t, err)
	assert.Same(t, resp, cached)
}

func TestService_Summary_Error(t *testing.T) {
	service, mockMeta := newTestService(t)

	mockMeta.EXPECT().
		AccountSummary(gomock.Any(), "token", "act_1", gomock.Any()).
		Return(nil, errors.New("boom"))

	_, err := service.Summary(context.Background(), "token", "act_1", domain.InsightFilters{})
	assert.EqualError(t, err, "boom")
}

func TestService_MutationsInvalidateCache(t *testing.T) {
	service, mockMeta := newTestService(t)

	mockMeta.EXPECT().
		ListEntities(gomock.Any(), "token", "act_1", domain.LevelCampaign, gomock.Any()).
		Return(&domain.EntityPage{Data: []domain.EnrichedEntity{}}, nil).
		Times(2)

	_, err := service.ListCampaigns(context.Background(), "token", "act_1", domain.ListFilters{})
	require.NoError(t, err)

	req := domain.StatusUpdateRequest{ObjectID: "c1", Status: domain.StatusPaused}
	mockMeta.EXPECT().UpdateStatus(gomock.Any(), "token", req).Return(&domain.MutationResponse{Success: true, ID: "c1"}, nil)

	resp, err := service.UpdateStatus(context.Background(), "token", req)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 0, service.cache.Len())

	_, err = service.ListCampaigns(context.Background(), "token", "act_1", domain.ListFilters{})
	require.NoError(t, err)
}

func TestService_FailedMutationKeepsCache(t *testing.T) {
	service, mockMeta := newTestService(t)

	mockMeta.EXPECT().
		ListEntities(gomock.Any(), "token", "act_1", domain.LevelAdSet, gomock.Any()).
		Return(&domain.EntityPage{Data: []domain.EnrichedEntity{}}, nil)

	_, err := service.ListAdSets(context.Background(), "token", "act_1", domain.ListFilters{})
	require.NoError(t, err)

	req := domain.BudgetUpdateRequest{AdSetID: "as1", DailyBudget: 0}
	mockMeta.EXPECT().UpdateDailyBudget(gomock.Any(), "token", req).Return(nil, domain.ErrInvalidBudget)

	_, err = service.UpdateDailyBudget(context.Background(), "token", req)
	assert.ErrorIs(t, err, domain.ErrInvalidBudget)
	assert.Equal(t, 1, service.cache.Len())
}

func TestService_CreateCampaign(t *testing.T) {
	service, mockMeta := newTestService(t)

	req := domain.CreateCampaignRequest{Name: "Black Friday", Objective: "OUTCOME_SALES", DailyBudget: 50}
	mockMeta.EXPECT().
		CreateCampaign(gomock.Any(), "token", "act_1", req).
		Return(&domain.MutationResponse{Success: true, ID: "123"}, nil)

	resp, err := service.CreateCampaign(context.Background(), "token", "act_1", req)
	require.NoError(t, err)
	assert.Equal(t, "123", resp.ID)
}

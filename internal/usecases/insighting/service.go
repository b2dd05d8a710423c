package insighting

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/meta-ads-dashboard-api/infrastructure/integrator/meta"
	"github.com/vfg2006/meta-ads-dashboard-api/internal/cache"
	"github.com/vfg2006/meta-ads-dashboard-api/internal/config"
	"github.com/vfg2006/meta-ads-dashboard-api/internal/domain"
	"github.com/vfg2006/meta-ads-dashboard-api/pkg/utils"
)

// Service implementa Insighter sobre o integrador do Meta
type Service struct {
	cfg         *config.Config
	metaService meta.Integrator
	cache       *cache.Store
}

// NewService cria uma nova instância do serviço de insights
func NewService(cfg *config.Config, metaService meta.Integrator) Insighter {
	return &Service{
		cfg:         cfg,
		metaService: metaService,
	}
}

// WithCache habilita o cache curto de respostas das listagens e do resumo
func (s *Service) WithCache(store *cache.Store) *Service {
	s.cache = store
	return s
}

func (s *Service) ListCampaigns(ctx context.Context, token, accountID string, filters domain.ListFilters) (*domain.EntityPage, error) {
	return s.listEntities(ctx, token, accountID, domain.LevelCampaign, filters)
}

func (s *Service) ListAdSets(ctx context.Context, token, accountID string, filters domain.ListFilters) (*domain.EntityPage, error) {
	return s.listEntities(ctx, token, accountID, domain.LevelAdSet, filters)
}

func (s *Service) ListAds(ctx context.Context, token, accountID string, filters domain.ListFilters) (*domain.EntityPage, error) {
	return s.listEntities(ctx, token, accountID, domain.LevelAd, filters)
}

func (s *Service) listEntities(ctx context.Context, token, accountID string, level domain.EntityLevel, filters domain.ListFilters) (*domain.EntityPage, error) {
	if err := filters.Validate(); err != nil {
		return nil, err
	}

	scope := cache.Fingerprint(token)
	key := cache.Key(scope, "entities", string(level), accountID, s.filtersKey(filters.InsightFilters), filters.After)

	if page, ok := cache.Lookup[*domain.EntityPage](s.cache, key); ok {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"level":      level,
		}).Debug("insights: serving entities from cache")
		return page, nil
	}

	page, err := s.metaService.ListEntities(ctx, token, accountID, level, filters)
	if err != nil {
		return nil, err
	}

	// página parcial não vai para o cache, a próxima chamada tenta os insights de novo
	if !page.Partial {
		s.cache.Set(scope, key, page)
	}

	return page, nil
}

func (s *Service) Summary(ctx context.Context, token, accountID string, filters domain.InsightFilters) (*domain.InsightsResponse, error) {
	if err := filters.Validate(); err != nil {
		return nil, err
	}

	scope := cache.Fingerprint(token)
	key := cache.Key(scope, "summary", accountID, s.filtersKey(filters))

	if resp, ok := cache.Lookup[*domain.InsightsResponse](s.cache, key); ok {
		return resp, nil
	}

	summary, err := s.metaService.AccountSummary(ctx, token, accountID, filters)
	if err != nil {
		return nil, err
	}

	if !filters.HasTimeRange() {
		filters.DatePreset = filters.EffectivePreset(s.cfg.Insights.DefaultDatePreset)
	}

	resp := &domain.InsightsResponse{
		AdAccountID: accountID,
		Summary:     *summary,
		Filters:     filters,
	}

	s.cache.Set(scope, key, resp)

	return resp, nil
}

func (s *Service) UpdateStatus(ctx context.Context, token string, req domain.StatusUpdateRequest) (*domain.MutationResponse, error) {
	resp, err := s.metaService.UpdateStatus(ctx, token, req)
	if err != nil {
		return nil, err
	}

	s.invalidate(token, "status")
	return resp, nil
}

func (s *Service) UpdateDailyBudget(ctx context.Context, token string, req domain.BudgetUpdateRequest) (*domain.MutationResponse, error) {
	resp, err := s.metaService.UpdateDailyBudget(ctx, token, req)
	if err != nil {
		return nil, err
	}

	s.invalidate(token, "budget")
	return resp, nil
}

func (s *Service) CreateCampaign(ctx context.Context, token, accountID string, req domain.CreateCampaignRequest) (*domain.MutationResponse, error) {
	resp, err := s.metaService.CreateCampaign(ctx, token, accountID, req)
	if err != nil {
		return nil, err
	}

	s.invalidate(token, "create_campaign")
	return resp, nil
}

func (s *Service) invalidate(token, reason string) {
	removed := s.cache.InvalidateScope(cache.Fingerprint(token))
	if removed > 0 {
		logrus.WithFields(logrus.Fields{
			"reason":  reason,
			"removed": removed,
		}).Debug("insights: cache invalidated after mutation")
	}
}

// filtersKey resolve o período efetivo para que preset omitido e preset
// padrão explícito caiam na mesma chave
func (s *Service) filtersKey(filters domain.InsightFilters) string {
	if filters.HasTimeRange() {
		return utils.FormatDate(*filters.Since) + ".." + utils.FormatDate(*filters.Until)
	}
	return filters.EffectivePreset(s.cfg.Insights.DefaultDatePreset)
}

package meta

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	metadomain "github.com/vfg2006/meta-ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-dashboard-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/meta-ads-dashboard-api/internal/config"
	"github.com/vfg2006/meta-ads-dashboard-api/internal/domain"
	"github.com/vfg2006/meta-ads-dashboard-api/pkg/utils"
)

const (
	UnnamedAccount = "Unnamed Account"
	UnknownAccount = "Unknown Account"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// Integrator é a fachada do Meta usada pelos casos de uso
type Integrator interface {
	ListEntities(ctx context.Context, token, accountID string, level domain.EntityLevel, filters domain.ListFilters) (*domain.EntityPage, error)
	AccountSummary(ctx context.Context, token, accountID string, filters domain.InsightFilters) (*domain.SummaryInsights, error)
	ListAdAccounts(ctx context.Context, token string) ([]domain.AdAccount, error)
	GetAdAccountName(ctx context.Context, token, accountID string) string
	UpdateStatus(ctx context.Context, token string, req domain.StatusUpdateRequest) (*domain.MutationResponse, error)
	UpdateDailyBudget(ctx context.Context, token string, req domain.BudgetUpdateRequest) (*domain.MutationResponse, error)
	CreateCampaign(ctx context.Context, token, accountID string, req domain.CreateCampaignRequest) (*domain.MutationResponse, error)
}

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

var _ Integrator = (*MetaIntegrator)(nil)

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// ListEntities busca uma página de entidades e os insights do mesmo nível em
// paralelo e junta os dois pelo id da entidade.
func (s *MetaIntegrator) ListEntities(ctx context.Context, token, accountID string, level domain.EntityLevel, filters domain.ListFilters) (*domain.EntityPage, error) {
	if err := filters.Validate(); err != nil {
		return nil, err
	}

	var (
		list        *metadomain.ListResponse
		rawInsights []json.RawMessage
		listErr     error
		insightsErr error
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		list, listErr = s.Client.ListEntities(ctx, token, accountID, level, filters.After)
	}()

	go func() {
		defer wg.Done()
		rawInsights, insightsErr = s.Client.GetInsights(ctx, token, accountID, level, filters.InsightFilters)
	}()

	wg.Wait()

	if listErr != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"level":      level,
			"error":      listErr.Error(),
		}).Error("insights: failed to list entities")
		return nil, listErr
	}

	page := &domain.EntityPage{
		Data:   []domain.EnrichedEntity{},
		Paging: domain.PageInfo{NextCursor: list.Paging.Cursors.After},
	}

	if insightsErr != nil {
		if graphErr, ok := metaclient.AsGraphError(insightsErr); ok && graphErr.IsTokenExpired() {
			return nil, insightsErr
		}

		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"level":      level,
			"error":      insightsErr.Error(),
		}).Warn("insights: failed to get insights, returning entities without metrics")
		page.Partial = true
	}

	raw := DecodeEntities(list.Data)
	if len(raw) == 0 {
		page.Paging = domain.PageInfo{}
		return page, nil
	}

	entities := make([]domain.AdEntity, 0, len(raw))
	for _, r := range raw {
		entities = append(entities, NormalizeEntity(r, level))
	}

	page.Data = MergeInsightsByForeignKey(entities, DecodeInsightRows(rawInsights), level.ForeignKey())

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"level":      level,
		"entities":   len(page.Data),
		"rows":       len(rawInsights),
	}).Debug("insights: entities merged with insights")

	return page, nil
}

// AccountSummary agrega os insights da conta no período
func (s *MetaIntegrator) AccountSummary(ctx context.Context, token, accountID string, filters domain.InsightFilters) (*domain.SummaryInsights, error) {
	rawRows, err := s.Client.GetInsights(ctx, token, accountID, domain.LevelAccount, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("insights: failed to get ad account insights from API")
		return nil, err
	}

	summary := AggregateAcrossRows(DecodeInsightRows(rawRows))
	return &summary, nil
}

func (s *MetaIntegrator) ListAdAccounts(ctx context.Context, token string) ([]domain.AdAccount, error) {
	accounts, err := s.Client.ListAdAccounts(ctx, token)
	if err != nil {
		logrus.WithError(err).Error("insights: failed to list ad accounts")
		return nil, err
	}

	result := make([]domain.AdAccount, 0, len(accounts))
	for _, account := range accounts {
		result = append(result, FactoryAdAccount(account))
	}

	logrus.WithField("total_accounts", len(result)).Debug("insights: successfully retrieved all ad accounts")

	return result, nil
}

// GetAdAccountName busca o nome da conta, usando "Unknown Account" quando a
// busca falha
func (s *MetaIntegrator) GetAdAccountName(ctx context.Context, token, accountID string) string {
	account, err := s.Client.GetAdAccount(ctx, token, accountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Warn("insights: failed to get ad account name")
		return UnknownAccount
	}

	if strings.TrimSpace(account.Name) == "" {
		return UnknownAccount
	}

	return account.Name
}

func (s *MetaIntegrator) UpdateStatus(ctx context.Context, token string, req domain.StatusUpdateRequest) (*domain.MutationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	resp, err := s.Client.UpdateStatus(ctx, token, req.ObjectID, req.Status)
	if err != nil {
		return nil, err
	}

	return &domain.MutationResponse{Success: resp.Success || resp.ID != "", ID: req.ObjectID}, nil
}

// UpdateDailyBudget recebe o orçamento na unidade exibida e envia em centavos
func (s *MetaIntegrator) UpdateDailyBudget(ctx context.Context, token string, req domain.BudgetUpdateRequest) (*domain.MutationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	resp, err := s.Client.UpdateDailyBudget(ctx, token, req.AdSetID, utils.ToMinorUnits(req.DailyBudget))
	if err != nil {
		return nil, err
	}

	return &domain.MutationResponse{Success: resp.Success || resp.ID != "", ID: req.AdSetID}, nil
}

func (s *MetaIntegrator) CreateCampaign(ctx context.Context, token, accountID string, req domain.CreateCampaignRequest) (*domain.MutationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	resp, err := s.Client.CreateCampaign(ctx, token, accountID, req)
	if err != nil {
		return nil, err
	}

	if resp.ID == "" {
		return nil, errors.New("meta graph did not return the campaign id")
	}

	return &domain.MutationResponse{Success: true, ID: resp.ID}, nil
}

// FactoryAdAccount converte a conta da Graph API na forma canônica
func FactoryAdAccount(account metadomain.AdAccount) domain.AdAccount {
	name := account.Name
	if strings.TrimSpace(name) == "" {
		name = UnnamedAccount
	}

	accountID := account.AccountID
	if accountID == "" {
		accountID = strings.TrimPrefix(account.ID, "act_")
	}

	result := domain.AdAccount{
		ID:        metaclient.NormalizeAccountID(account.ID),
		AccountID: accountID,
		Name:      name,
		Currency:  account.Currency,
		Status:    account.AccountStatus,
		Timezone:  account.TimezoneName,
	}

	if account.Business != nil {
		result.BusinessID = account.Business.ID
		result.BusinessName = account.Business.Name
	}

	return result
}

package account

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/meta-ads-dashboard-api/infrastructure/integrator/meta"
	"github.com/vfg2006/meta-ads-dashboard-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/meta-ads-dashboard-api/internal/domain"
	"github.com/vfg2006/meta-ads-dashboard-api/pkg/apiErrors"
)

type AccountService interface {
	ListAdAccounts(ctx context.Context, token string) ([]domain.AdAccount, error)
	SelectAdAccount(ctx context.Context, token string, req domain.SelectAdAccountRequest) (*domain.SelectAdAccountResponse, error)
}

type Service struct {
	metaService meta.Integrator
}

func NewService(metaService meta.Integrator) AccountService {
	return &Service{
		metaService: metaService,
	}
}

func (s *Service) ListAdAccounts(ctx context.Context, token string) ([]domain.AdAccount, error) {
	accounts, err := s.metaService.ListAdAccounts(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, ErrMetaIntegration.Error())
	}

	return accounts, nil
}

// SelectAdAccount normaliza o id e busca o nome da conta para guardar junto na sessão
func (s *Service) SelectAdAccount(ctx context.Context, token string, req domain.SelectAdAccountRequest) (*domain.SelectAdAccountResponse, error) {
	if strings.TrimSpace(req.AdAccountID) == "" {
		return nil, NewAccountError(ErrAccountIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	accountID := metaclient.NormalizeAccountID(req.AdAccountID)
	name := s.metaService.GetAdAccountName(ctx, token, accountID)

	logrus.WithFields(logrus.Fields{
		"account_id":   accountID,
		"account_name": name,
	}).Info("account: ad account selected")

	return &domain.SelectAdAccountResponse{
		Success:       true,
		AdAccountID:   accountID,
		AdAccountName: name,
	}, nil
}

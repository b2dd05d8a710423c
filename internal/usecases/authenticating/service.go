package authenticating

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/meta-ads-dashboard-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/meta-ads-dashboard-api/internal/config"
	"github.com/vfg2006/meta-ads-dashboard-api/internal/domain"
	"github.com/vfg2006/meta-ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/meta-ads-dashboard-api/pkg/tokencrypt"
	"github.com/vfg2006/meta-ads-dashboard-api/pkg/utils"
)

const (
	stateIssuer   = "meta-oauth"
	stateIDLength = 21
)

type Authenticator interface {
	StartOAuth(ctx context.Context) (authURL string, state string, err error)
	CompleteOAuth(ctx context.Context, code, state, expectedState string) (*domain.IssuedCredential, error)
	ResolveCredential(session domain.Session) (*domain.Credential, error)
	SelectedAdAccount(session domain.Session) (string, error)
	Status(session domain.Session) domain.ConnectionStatus
}

type Service struct {
	cfg    *config.Config
	client metaclient.Client
	cipher *tokencrypt.Cipher
	now    func() time.Time
}

func NewService(cfg *config.Config, client metaclient.Client, cipher *tokencrypt.Cipher) Authenticator {
	return &Service{
		cfg:    cfg,
		client: client,
		cipher: cipher,
		now:    time.Now,
	}
}

// StartOAuth gera o state assinado e a URL do diálogo do Facebook
func (s *Service) StartOAuth(ctx context.Context) (string, string, error) {
	if err := s.checkOAuthConfig(); err != nil {
		return "", "", err
	}

	jti, err := utils.GenerateID(stateIDLength)
	if err != nil {
		return "", "", NewAuthError(err, apiErrors.ErrInternalServer, "erro ao gerar o state")
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		ID:        jti,
		Issuer:    stateIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Session.StateTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	state, err := token.SignedString([]byte(s.cfg.Meta.TokenSecret))
	if err != nil {
		return "", "", NewAuthError(err, apiErrors.ErrInternalServer, "erro ao assinar o state")
	}

	logrus.WithField("state_id", jti).Debug("auth: oauth flow started")

	return s.client.AuthCodeURL(state), state, nil
}

// CompleteOAuth valida o state, troca o code pelo token e devolve o token cifrado
func (s *Service) CompleteOAuth(ctx context.Context, code, state, expectedState string) (*domain.IssuedCredential, error) {
	if state == "" || expectedState == "" || state != expectedState {
		return nil, NewAuthError(ErrInvalidState, apiErrors.ErrInvalidState, "state não confere com o cookie")
	}

	if err := s.validateState(state); err != nil {
		return nil, NewAuthError(ErrInvalidState, apiErrors.ErrInvalidState, err.Error())
	}

	if code == "" {
		return nil, NewAuthError(ErrMissingCode, apiErrors.ErrMissingRequiredData, "")
	}

	if err := s.checkOAuthConfig(); err != nil {
		return nil, err
	}

	token, err := s.client.ExchangeCode(ctx, code)
	if err != nil {
		return nil, NewAuthError(ErrTokenExchange, apiErrors.ErrTokenExchange, err.Error())
	}

	now := s.now()
	accessToken := token.AccessToken
	expiresAt := token.Expiry
	if expiresAt.IsZero() {
		expiresAt = now.Add(s.cfg.Session.TokenMaxAge)
	}

	if s.cfg.Meta.ExchangeLongLived {
		longLived, err := s.client.ExchangeLongLivedToken(ctx, accessToken)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"token": metaclient.MaskToken(accessToken),
				"error": err.Error(),
			}).Warn("auth: failed to exchange long-lived token, keeping short-lived token")
		} else {
			accessToken = longLived.AccessToken
			expiresAt = metaclient.CalculateTokenExpiration(now, longLived.ExpiresIn, s.cfg.Session.TokenMaxAge)
		}
	}

	encrypted, err := s.cipher.Encrypt(accessToken)
	if err != nil {
		if errors.Is(err, tokencrypt.ErrSecretNotConfigured) {
			return nil, NewAuthError(ErrMissingConfig, apiErrors.ErrMissingConfig, "META_TOKEN_SECRET")
		}
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "erro ao cifrar o token")
	}

	logrus.WithFields(logrus.Fields{
		"token":      metaclient.MaskToken(accessToken),
		"expires_at": expiresAt.Format(time.RFC3339),
	}).Info("auth: meta account connected")

	return &domain.IssuedCredential{
		EncryptedToken: encrypted,
		ExpiresAt:      expiresAt,
		MaxAge:         s.cfg.Session.TokenMaxAge,
	}, nil
}

// ResolveCredential confere presença e validade antes de decifrar, para não
// gastar uma chamada na Graph API com um token já vencido.
func (s *Service) ResolveCredential(session domain.Session) (*domain.Credential, error) {
	if session.EncryptedToken == "" {
		return nil, NewAuthError(ErrMissingToken, apiErrors.ErrMissingToken, "")
	}

	credential := domain.Credential{ExpiresAt: ParseExpiresAt(session.ExpiresAt)}
	if credential.IsExpired(s.now()) {
		return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
	}

	accessToken, err := s.cipher.Decrypt(session.EncryptedToken)
	if err != nil {
		if errors.Is(err, tokencrypt.ErrSecretNotConfigured) {
			return nil, NewAuthError(ErrMissingConfig, apiErrors.ErrMissingConfig, "META_TOKEN_SECRET")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	credential.AccessToken = accessToken
	return &credential, nil
}

// SelectedAdAccount retorna a conta escolhida já com o prefixo act_
func (s *Service) SelectedAdAccount(session domain.Session) (string, error) {
	accountID := metaclient.NormalizeAccountID(session.AdAccountID)
	if accountID == "" {
		return "", NewAuthError(ErrNoAdAccountSelected, apiErrors.ErrNoAdAccountSelected, "")
	}
	return accountID, nil
}

func (s *Service) Status(session domain.Session) domain.ConnectionStatus {
	if _, err := s.ResolveCredential(session); err != nil {
		return domain.ConnectionStatus{Connected: false}
	}

	status := domain.ConnectionStatus{Connected: true}
	if session.AdAccountID != "" {
		id := session.AdAccountID
		status.AdAccountID = &id
	}
	if session.AdAccountName != "" {
		name := session.AdAccountName
		status.AdAccountName = &name
	}

	return status
}

func (s *Service) checkOAuthConfig() error {
	if !s.cfg.Meta.HasOAuth() {
		return NewAuthError(ErrMissingConfig, apiErrors.ErrMissingConfig, "META_APP_ID, META_APP_SECRET ou META_REDIRECT_URI")
	}
	if !s.cfg.Meta.HasTokenSecret() {
		return NewAuthError(ErrMissingConfig, apiErrors.ErrMissingConfig, "META_TOKEN_SECRET")
	}
	return nil
}

func (s *Service) validateState(state string) error {
	_, err := jwt.ParseWithClaims(state, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Meta.TokenSecret), nil
	},
		jwt.WithTimeFunc(s.now),
		jwt.WithIssuer(stateIssuer),
		jwt.WithExpirationRequired(),
	)

	return err
}

// ParseExpiresAt lê o cookie de expiração em milissegundos desde a época.
// Valor ausente ou ilegível vira validade desconhecida.
func ParseExpiresAt(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}

	ms, err := strconv.ParseInt(value, 10, 64)
	if err != nil || ms <= 0 {
		return time.Time{}
	}

	return time.UnixMilli(ms)
}

// FormatExpiresAt é o inverso de ParseExpiresAt
func FormatExpiresAt(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}

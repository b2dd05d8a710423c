package metaclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"

	"github.com/vfg2006/meta-ads-dashboard-api/internal/config"
	"github.com/vfg2006/meta-ads-dashboard-api/pkg/log"
)

const facebookDialogURL = "https://www.facebook.com"

// TokenResponse representa a resposta da API do Meta ao trocar um token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

func newOAuthConfig(cfg *config.Config) *oauth2.Config {
	endpoint := facebook.Endpoint
	endpoint.AuthURL = fmt.Sprintf("%s/%s/dialog/oauth", facebookDialogURL, cfg.Meta.Version)
	endpoint.TokenURL = cfg.Meta.URL + "/oauth/access_token"
	endpoint.AuthStyle = oauth2.AuthStyleInParams

	return &oauth2.Config{
		ClientID:     cfg.Meta.AppID,
		ClientSecret: cfg.Meta.AppSecret,
		RedirectURL:  cfg.Meta.RedirectURI,
		Scopes:       cfg.Meta.Scopes,
		Endpoint:     endpoint,
	}
}

// AuthCodeURL monta a URL do diálogo OAuth do Facebook
func (c *MetaClient) AuthCodeURL(state string) string {
	return c.oauth.AuthCodeURL(state)
}

// ExchangeCode troca o code do callback OAuth por um token de curta duração
func (c *MetaClient) ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error) {
	if code == "" {
		return nil, errors.New("authorization code não pode ser vazio")
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)

	token, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao trocar authorization code")
	}

	if token.AccessToken == "" {
		return nil, errors.New("token retornado pela API é vazio")
	}

	return token, nil
}

// ExchangeLongLivedToken obtém um token de longa duração do Meta
// usando um token de curta duração
func (c *MetaClient) ExchangeLongLivedToken(ctx context.Context, shortLivedToken string) (*TokenResponse, error) {
	if shortLivedToken == "" {
		return nil, errors.New("token de acesso não pode ser vazio")
	}

	params := url.Values{}
	params.Set("grant_type", "fb_exchange_token")
	params.Set("client_id", c.Cfg.Meta.AppID)
	params.Set("client_secret", c.Cfg.Meta.AppSecret)
	params.Set("fb_exchange_token", shortLivedToken)

	req := Request{
		Method: http.MethodGet,
		Path:   "/oauth/access_token",
		Query:  params,
	}

	var tokenResp TokenResponse
	if err := c.call(ctx, req, shortLivedToken, &tokenResp); err != nil {
		return nil, errors.Wrap(err, "erro ao obter token de longa duração")
	}

	if tokenResp.AccessToken == "" {
		return nil, errors.New("token retornado pela API é vazio")
	}

	log.ForContext(ctx).Infof("Token de longa duração obtido com sucesso. Expira em %s.", FormatDuration(tokenResp.ExpiresIn))

	return &tokenResp, nil
}

// FormatDuration formata a duração em segundos para um formato legível
func FormatDuration(seconds int64) string {
	duration := time.Duration(seconds) * time.Second
	days := duration / (24 * time.Hour)
	hours := (duration % (24 * time.Hour)) / time.Hour
	minutes := (duration % time.Hour) / time.Minute

	return fmt.Sprintf("%d dias, %d horas e %d minutos", days, hours, minutes)
}

// CalculateTokenExpiration calcula a data de expiração do token com base no tempo de expiração em segundos.
// Sem expires_in o fallback informado é usado.
func CalculateTokenExpiration(now time.Time, expiresIn int64, fallback time.Duration) time.Time {
	if expiresIn <= 0 {
		return now.Add(fallback)
	}

	return now.Add(time.Duration(expiresIn) * time.Second)
}

// MaskToken deixa só o início e o fim do token visíveis para log
func MaskToken(token string) string {
	if len(token) <= 12 {
		return strings.Repeat("*", len(token))
	}
	return token[:6] + "..." + token[len(token)-4:]
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// MinTokenSecretLength é o tamanho mínimo aceito para META_TOKEN_SECRET
const MinTokenSecretLength = 32

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Meta     Meta     `mapstructure:",squash"`
	Graph    Graph    `mapstructure:",squash"`
	Session  Session  `mapstructure:",squash"`
	Cache    Cache    `mapstructure:",squash"`
	Insights Insights `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`

	// Segredo exigido nas rotas /v1/cron, vazio desabilita as rotas
	CronSecret string `mapstructure:"cron_secret"`
}

type Meta struct {
	BaseURL     string   `mapstructure:"meta_base_url"`
	URL         string   `mapstructure:"-"`
	Version     string   `mapstructure:"meta_version"`
	AppID       string   `mapstructure:"meta_app_id"`
	AppSecret   string   `mapstructure:"meta_app_secret"`
	RedirectURI string   `mapstructure:"meta_redirect_uri"`
	TokenSecret string   `mapstructure:"meta_token_secret"`
	Scopes      []string `mapstructure:"meta_scopes"`

	// Troca o token de curta duração por um de longa duração após o OAuth
	ExchangeLongLived bool `mapstructure:"meta_exchange_long_lived"`
}

// Graph controla o comportamento do cliente HTTP da Graph API
type Graph struct {
	Timeout     time.Duration `mapstructure:"graph_timeout"`
	MaxAttempts int           `mapstructure:"graph_max_attempts"`
	BaseDelay   time.Duration `mapstructure:"graph_base_delay"`
	RateLimit   float64       `mapstructure:"graph_rate_limit"`
	RateBurst   int           `mapstructure:"graph_rate_burst"`
	MaxPages    int           `mapstructure:"graph_max_pages"`
	PageLimit   int           `mapstructure:"graph_page_limit"`
}

type Session struct {
	CookieSecure  bool          `mapstructure:"cookie_secure"`
	TokenMaxAge   time.Duration `mapstructure:"session_token_max_age"`
	AccountMaxAge time.Duration `mapstructure:"session_account_max_age"`
	StateTTL      time.Duration `mapstructure:"oauth_state_ttl"`
	DashboardURL  string        `mapstructure:"dashboard_url"`
	DashboardPath string        `mapstructure:"dashboard_integration_path"`
}

type Cache struct {
	Enabled      bool          `mapstructure:"cache_enabled"`
	TTL          time.Duration `mapstructure:"cache_ttl"`
	CleanupEvery string        `mapstructure:"cache_cleanup_cron"`
}

type Insights struct {
	DefaultDatePreset string `mapstructure:"insights_default_date_preset"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

// HasTokenSecret indica se o segredo de criptografia do token está configurado
func (m Meta) HasTokenSecret() bool {
	return len(m.TokenSecret) >= MinTokenSecretLength
}

// HasOAuth indica se os dados do app Meta necessários para o OAuth estão presentes
func (m Meta) HasOAuth() bool {
	return m.AppID != "" && m.AppSecret != "" && m.RedirectURI != ""
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CRON_SECRET", "")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v20.0")
	viper.SetDefault("META_APP_ID", "")
	viper.SetDefault("META_APP_SECRET", "")
	viper.SetDefault("META_REDIRECT_URI", "")
	viper.SetDefault("META_TOKEN_SECRET", "")
	viper.SetDefault("META_SCOPES", "ads_read,ads_management,business_management")
	viper.SetDefault("META_EXCHANGE_LONG_LIVED", true)

	viper.SetDefault("GRAPH_TIMEOUT", "30s")
	viper.SetDefault("GRAPH_MAX_ATTEMPTS", 3)
	viper.SetDefault("GRAPH_BASE_DELAY", "1s")
	viper.SetDefault("GRAPH_RATE_LIMIT", 10.0) // requisições por segundo, 0 desabilita
	viper.SetDefault("GRAPH_RATE_BURST", 5)
	viper.SetDefault("GRAPH_MAX_PAGES", 50)
	viper.SetDefault("GRAPH_PAGE_LIMIT", 50)

	viper.SetDefault("COOKIE_SECURE", false)
	viper.SetDefault("SESSION_TOKEN_MAX_AGE", "2160h") // 90 dias
	viper.SetDefault("SESSION_ACCOUNT_MAX_AGE", "720h") // 30 dias
	viper.SetDefault("OAUTH_STATE_TTL", "10m")
	viper.SetDefault("DASHBOARD_URL", "http://localhost:3000")
	viper.SetDefault("DASHBOARD_INTEGRATION_PATH", "/dashboard/entegrasyon")

	viper.SetDefault("CACHE_ENABLED", true)
	viper.SetDefault("CACHE_TTL", "60s")
	viper.SetDefault("CACHE_CLEANUP_CRON", "*/1 * * * *") // a cada minuto

	viper.SetDefault("INSIGHTS_DEFAULT_DATE_PRESET", "last_30d")

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_ENV", "development")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Normalize()

	if !config.Meta.HasTokenSecret() {
		logrus.Warnf("META_TOKEN_SECRET ausente ou com menos de %d caracteres: tokens não poderão ser cifrados", MinTokenSecretLength)
	}
	if !config.Meta.HasOAuth() {
		logrus.Warn("META_APP_ID, META_APP_SECRET ou META_REDIRECT_URI ausentes: conexão OAuth indisponível")
	}
	if config.Server.CronSecret == "" {
		logrus.Warn("CRON_SECRET ausente: rotas /v1/cron desabilitadas")
	}

	return config, nil
}

// Normalize preenche campos derivados e corrige valores fora do intervalo
func (c *Config) Normalize() {
	c.Meta.BaseURL = strings.TrimRight(c.Meta.BaseURL, "/")
	c.Meta.URL = fmt.Sprintf("%s/%s", c.Meta.BaseURL, c.Meta.Version)

	if c.Graph.MaxAttempts <= 0 {
		c.Graph.MaxAttempts = 3
	}
	if c.Graph.BaseDelay <= 0 {
		c.Graph.BaseDelay = time.Second
	}
	if c.Graph.Timeout <= 0 {
		c.Graph.Timeout = 30 * time.Second
	}
	if c.Graph.PageLimit <= 0 {
		c.Graph.PageLimit = 50
	}
	if c.Insights.DefaultDatePreset == "" {
		c.Insights.DefaultDatePreset = "last_30d"
	}

	origins := make([]string, 0, len(c.Server.AllowedOrigins))
	for _, o := range c.Server.AllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	c.Server.AllowedOrigins = origins
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}

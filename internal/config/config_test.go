package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cfg := &Config{
		Server: Server{AllowedOrigins: []string{" http://localhost:3000 ", "", "https://app.example.com"}},
		Meta:   Meta{BaseURL: "https://graph.facebook.com/", Version: "v20.0"},
	}

	cfg.Normalize()

	assert.Equal(t, "https://graph.facebook.com/v20.0", cfg.Meta.URL)
	assert.Equal(t, []string{"http://localhost:3000", "https://app.example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 3, cfg.Graph.MaxAttempts)
	assert.Equal(t, time.Second, cfg.Graph.BaseDelay)
	assert.Equal(t, 30*time.Second, cfg.Graph.Timeout)
	assert.Equal(t, 50, cfg.Graph.PageLimit)
	assert.Equal(t, "last_30d", cfg.Insights.DefaultDatePreset)
}

func TestMeta_Checks(t *testing.T) {
	meta := Meta{AppID: "id", AppSecret: "secret", RedirectURI: "http://localhost/cb"}
	assert.True(t, meta.HasOAuth())
	assert.False(t, meta.HasTokenSecret())

	meta.TokenSecret = "0123456789abcdef0123456789abcdef"
	assert.True(t, meta.HasTokenSecret())

	meta.RedirectURI = ""
	assert.False(t, meta.HasOAuth())
}

func TestNewConfig_FromEnv(t *testing.T) {
	t.Setenv("META_APP_ID", "app-id")
	t.Setenv("GRAPH_MAX_ATTEMPTS", "5")
	t.Setenv("CACHE_TTL", "2m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,https://app.example.com")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "app-id", cfg.Meta.AppID)
	assert.Equal(t, 5, cfg.Graph.MaxAttempts)
	assert.Equal(t, 2*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, []string{"http://localhost:3000", "https://app.example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 90*24*time.Hour, cfg.Session.TokenMaxAge)
	assert.Equal(t, "https://graph.facebook.com/v20.0", cfg.Meta.URL)
	assert.True(t, cfg.Meta.ExchangeLongLived)
}

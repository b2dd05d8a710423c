package metaclient

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/meta-ads-dashboard-api/internal/domain"
)

func TestInsightsQuery_DatePrecedence(t *testing.T) {
	since := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		filters    domain.InsightFilters
		wantPreset string
		wantRange  string
	}{
		{
			name:       "sem filtros usa o padrão",
			filters:    domain.InsightFilters{},
			wantPreset: "last_30d",
		},
		{
			name:       "preset explícito",
			filters:    domain.InsightFilters{DatePreset: "last_7d"},
			wantPreset: "last_7d",
		},
		{
			name:      "intervalo explícito",
			filters:   domain.InsightFilters{Since: &since, Until: &until},
			wantRange: `{"since":"2024-01-01","until":"2024-01-31"}`,
		},
		{
			name:      "intervalo vence o preset",
			filters:   domain.InsightFilters{DatePreset: "yesterday", Since: &since, Until: &until},
			wantRange: `{"since":"2024-01-01","until":"2024-01-31"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := InsightsQuery(domain.LevelAdSet, tt.filters, "last_30d", 50)
			require.NoError(t, err)

			assert.Equal(t, "adset", params.Get("level"))
			assert.Equal(t, "50", params.Get("limit"))
			assert.Contains(t, params.Get("fields"), "adset_id,")
			assert.Equal(t, tt.wantPreset, params.Get("date_preset"))
			if tt.wantRange == "" {
				assert.Empty(t, params.Get("time_range"))
			} else {
				assert.JSONEq(t, tt.wantRange, params.Get("time_range"))
			}
		})
	}
}

func TestInsightsQuery_HalfOpenRange(t *testing.T) {
	until := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	_, err := InsightsQuery(domain.LevelAd, domain.InsightFilters{DatePreset: "last_7d", Until: &until}, "last_30d", 0)
	assert.ErrorIs(t, err, domain.ErrHalfOpenRange)
}

func TestInsightsQuery_AccountLevelHasNoForeignKey(t *testing.T) {
	params, err := InsightsQuery(domain.LevelAccount, domain.InsightFilters{}, "maximum", 0)
	require.NoError(t, err)

	assert.NotContains(t, params.Get("fields"), "account_id")
	assert.Equal(t, "maximum", params.Get("date_preset"))
	assert.Empty(t, params.Get("limit"))
}

func TestNormalizeAccountID(t *testing.T) {
	assert.Equal(t, "act_123", NormalizeAccountID("123"))
	assert.Equal(t, "act_123", NormalizeAccountID("act_123"))
	assert.Equal(t, "act_123", NormalizeAccountID(" act_123 "))
	assert.Equal(t, "", NormalizeAccountID(""))
}

func TestCalculateTokenExpiration(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, now.Add(time.Hour), CalculateTokenExpiration(now, 3600, 24*time.Hour))
	assert.Equal(t, now.Add(24*time.Hour), CalculateTokenExpiration(now, 0, 24*time.Hour))
	assert.Equal(t, "60 dias, 0 horas e 0 minutos", FormatDuration(60*24*60*60))
	assert.Equal(t, "EAABsb...wxyz", MaskToken("EAABsbCDEFGHIJKLMNOPwxyz"))
}

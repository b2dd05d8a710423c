package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	metadomain "github.com/vfg2006/meta-ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-dashboard-api/internal/domain"
)

func TestMergeInsightsByForeignKey(t *testing.T) {
	entities := []domain.AdEntity{
		{ID: "c1", Name: "Primeira"},
		{ID: "c2", Name: "Segunda"},
		{ID: "c3", Name: "Terceira"},
	}
	rows := []metadomain.InsightRow{
		row(t, `{"campaign_id":"c2","spend":"50","impressions":"1000","clicks":"10"}`),
		row(t, `{"campaign_id":"c1","spend":"20","impressions":"400","clicks":"4"}`),
		row(t, `{"campaign_id":"c2","spend":"999"}`),
		row(t, `{"campaign_id":"c9","spend":"1"}`),
		row(t, `{"spend":"7"}`),
	}

	merged := MergeInsightsByForeignKey(entities, rows, metadomain.KeyCampaignID)
	require.Len(t, merged, 3)

	assert.Equal(t, "c1", merged[0].ID)
	assert.Equal(t, 20.0, merged[0].Spend)

	assert.Equal(t, "c2", merged[1].ID)
	assert.Equal(t, 50.0, merged[1].Spend)
	assert.Equal(t, int64(1000), merged[1].Impressions)

	assert.Equal(t, "c3", merged[2].ID)
	assert.Zero(t, merged[2].Spend)
	assert.Zero(t, merged[2].Clicks)
	assert.Nil(t, merged[2].ROAS)
}

func TestMergeInsightsByForeignKey_Empty(t *testing.T) {
	assert.Empty(t, MergeInsightsByForeignKey(nil, []metadomain.InsightRow{row(t, `{"ad_id":"1"}`)}, metadomain.KeyAdID))

	merged := MergeInsightsByForeignKey([]domain.AdEntity{{ID: "1"}}, nil, metadomain.KeyAdID)
	require.Len(t, merged, 1)
	assert.Zero(t, merged[0].InsightMetrics)
}

func TestAggregateAcrossRows_SingleRowIsIdempotent(t *testing.T) {
	r := row(t, `{
		"spend": "100",
		"impressions": "5000",
		"clicks": "50",
		"ctr": "0.987",
		"cpc": "2.05",
		"actions": [{"action_type":"omni_purchase","value":"2"}],
		"action_values": [{"action_type":"omni_purchase","value":"150"}],
		"purchase_roas": [{"action_type":"omni_purchase","value":"1.49"}],
		"date_start": "2024-01-01",
		"date_stop": "2024-01-31"
	}`)

	summary := AggregateAcrossRows([]metadomain.InsightRow{r})

	assert.Equal(t, NormalizeInsight(r), summary.InsightMetrics)
	assert.Equal(t, 1, summary.Rows)
	assert.Equal(t, "2024-01-01", summary.DateStart)
	assert.Equal(t, "2024-01-31", summary.DateStop)
}

func TestAggregateAcrossRows_RecomputesRatios(t *testing.T) {
	rows := []metadomain.InsightRow{
		row(t, `{
			"spend": "100", "impressions": "1000", "clicks": "10", "ctr": "1.0", "cpc": "10",
			"actions": [{"action_type":"purchase","value":"1"}],
			"action_values": [{"action_type":"purchase","value":"200"}],
			"purchase_roas": [{"action_type":"omni_purchase","value":"2"}],
			"date_start": "2024-01-08", "date_stop": "2024-01-14"
		}`),
		row(t, `{
			"spend": "300", "impressions": "9000", "clicks": "90", "ctr": "1.0", "cpc": "3.33",
			"actions": [{"action_type":"purchase","value":"3"}],
			"action_values": [{"action_type":"purchase","value":"400"}],
			"date_start": "2024-01-01", "date_stop": "2024-01-07"
		}`),
	}

	summary := AggregateAcrossRows(rows)

	assert.Equal(t, 2, summary.Rows)
	assert.Equal(t, 400.0, summary.Spend)
	assert.Equal(t, int64(10000), summary.Impressions)
	assert.Equal(t, int64(100), summary.Clicks)
	assert.Equal(t, int64(4), summary.Purchases)
	assert.Equal(t, 600.0, summary.PurchaseValue)
	assert.InDelta(t, 1.0, summary.CTR, 1e-9)
	assert.InDelta(t, 4.0, summary.CPC, 1e-9)
	require.NotNil(t, summary.ROAS)
	assert.InDelta(t, 1.5, *summary.ROAS, 1e-9)
	assert.Equal(t, "2024-01-01", summary.DateStart)
	assert.Equal(t, "2024-01-14", summary.DateStop)
}

func TestAggregateAcrossRows_NoSpend(t *testing.T) {
	summary := AggregateAcrossRows([]metadomain.InsightRow{
		row(t, `{"impressions":"10"}`),
		row(t, `{"impressions":"20","action_values":[{"action_type":"purchase","value":"5"}]}`),
	})

	assert.Equal(t, int64(30), summary.Impressions)
	assert.Zero(t, summary.CTR)
	assert.Zero(t, summary.CPC)
	assert.Nil(t, summary.ROAS)
}

func TestAggregateAcrossRows_SingleRowNoSpend(t *testing.T) {
	summary := AggregateAcrossRows([]metadomain.InsightRow{
		row(t, `{"spend":"0","impressions":"40","purchase_roas":[{"action_type":"omni_purchase","value":"0"}]}`),
	})

	assert.Equal(t, 1, summary.Rows)
	assert.Equal(t, int64(40), summary.Impressions)
	assert.Nil(t, summary.ROAS)
}

func TestAggregateAcrossRows_Empty(t *testing.T) {
	summary := AggregateAcrossRows(nil)

	assert.Zero(t, summary.Rows)
	assert.Nil(t, summary.ROAS)
}

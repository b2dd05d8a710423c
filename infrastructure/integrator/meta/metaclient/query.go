package metaclient

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/vfg2006/meta-ads-dashboard-api/internal/domain"
	"github.com/vfg2006/meta-ads-dashboard-api/pkg/utils"
)

const (
	campaignFields  = "id,name,status,effective_status,objective,daily_budget,lifetime_budget"
	adSetFields     = "id,name,status,effective_status,campaign_id,daily_budget,lifetime_budget"
	adFields        = "id,name,status,effective_status,campaign_id,adset_id"
	insightFields   = "spend,impressions,clicks,ctr,cpc,reach,actions,action_values,purchase_roas,date_start,date_stop"
	adAccountFields = "id,account_id,name,currency,account_status,timezone_name,business{id,name}"
)

// NormalizeAccountID garante o prefixo act_ exigido pela Graph API
func NormalizeAccountID(accountID string) string {
	id := strings.TrimSpace(accountID)
	if id == "" {
		return ""
	}
	return "act_" + strings.TrimPrefix(id, "act_")
}

func entityEdge(level domain.EntityLevel) (edge, fields string, err error) {
	switch level {
	case domain.LevelCampaign:
		return "campaigns", campaignFields, nil
	case domain.LevelAdSet:
		return "adsets", adSetFields, nil
	case domain.LevelAd:
		return "ads", adFields, nil
	}
	return "", "", fmt.Errorf("unsupported entity level %q", level)
}

// InsightsQuery monta os parâmetros de /insights. Um intervalo since/until vira
// time_range e tem precedência sobre date_preset.
func InsightsQuery(level domain.EntityLevel, filters domain.InsightFilters, defaultPreset string, limit int) (url.Values, error) {
	if err := filters.Validate(); err != nil {
		return nil, err
	}

	fields := insightFields
	if key := level.ForeignKey(); key != "" && level != domain.LevelAccount {
		fields = key + "," + fields
	}

	params := url.Values{}
	params.Set("level", string(level))
	params.Set("fields", fields)

	if filters.HasTimeRange() {
		timeRange, err := jsonCodec.MarshalToString(map[string]string{
			"since": utils.FormatDate(*filters.Since),
			"until": utils.FormatDate(*filters.Until),
		})
		if err != nil {
			return nil, err
		}
		params.Set("time_range", timeRange)
	} else {
		params.Set("date_preset", filters.EffectivePreset(defaultPreset))
	}

	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	return params, nil
}

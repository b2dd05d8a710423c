package metadomain

import (
	"encoding/json"
	"strings"
)

// Campos usados para associar uma linha de insight à entidade, conforme o level
const (
	KeyCampaignID = "campaign_id"
	KeyAdSetID    = "adset_id"
	KeyAdID       = "ad_id"
)

type Action struct {
	ActionType string  `json:"action_type"`
	Value      Numeric `json:"value"`
}

// ActionList decodifica actions, action_values e purchase_roas.
// Um valor escalar vira uma lista com um único item sem action_type,
// elementos que não são objetos são descartados.
type ActionList []Action

func (l *ActionList) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))

	switch {
	case raw == "" || raw == "null":
		*l = nil
	case strings.HasPrefix(raw, "["):
		var items []json.RawMessage
		if err := jsonCodec.Unmarshal(data, &items); err != nil {
			*l = nil
			return nil
		}

		actions := make(ActionList, 0, len(items))
		for _, item := range items {
			var a Action
			if err := jsonCodec.Unmarshal(item, &a); err != nil {
				continue
			}
			actions = append(actions, a)
		}
		*l = actions
	case strings.HasPrefix(raw, "{"):
		*l = nil
	default:
		if n := ParseNumeric(data); n.Valid {
			*l = ActionList{{Value: n}}
		} else {
			*l = nil
		}
	}

	return nil
}

type InsightRow struct {
	AccountID    string     `json:"account_id,omitempty"`
	CampaignID   string     `json:"campaign_id,omitempty"`
	AdSetID      string     `json:"adset_id,omitempty"`
	AdID         string     `json:"ad_id,omitempty"`
	DateStart    string     `json:"date_start,omitempty"`
	DateStop     string     `json:"date_stop,omitempty"`
	Spend        Numeric    `json:"spend"`
	Impressions  Numeric    `json:"impressions"`
	Clicks       Numeric    `json:"clicks"`
	CTR          Numeric    `json:"ctr"`
	CPC          Numeric    `json:"cpc"`
	Reach        Numeric    `json:"reach"`
	Actions      ActionList `json:"actions,omitempty"`
	ActionValues ActionList `json:"action_values,omitempty"`
	PurchaseROAS ActionList `json:"purchase_roas,omitempty"`
}

// ForeignKey retorna o id da entidade referenciada pelo campo informado
func (r InsightRow) ForeignKey(field string) string {
	switch field {
	case KeyCampaignID:
		return r.CampaignID
	case KeyAdSetID:
		return r.AdSetID
	case KeyAdID:
		return r.AdID
	case "account_id":
		return r.AccountID
	}
	return ""
}

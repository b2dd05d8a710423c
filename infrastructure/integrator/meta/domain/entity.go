package metadomain

import "encoding/json"

// Entity é o formato bruto de campaign, adset e ad na Graph API
type Entity struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Status          string  `json:"status"`
	EffectiveStatus string  `json:"effective_status"`
	CampaignID      string  `json:"campaign_id"`
	AdSetID         string  `json:"adset_id"`
	Objective       string  `json:"objective"`
	DailyBudget     Numeric `json:"daily_budget"`
	LifetimeBudget  Numeric `json:"lifetime_budget"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors  Cursors `json:"cursors"`
	Next     string  `json:"next"`
	Previous string  `json:"previous"`
}

// ListResponse é o envelope {data, paging} das listagens. Os itens ficam
// brutos para que um elemento malformado não derrube a página inteira.
type ListResponse struct {
	Data   []json.RawMessage `json:"data"`
	Paging Paging            `json:"paging"`
}

// MutationResponse cobre as respostas de POST (status, orçamento, criação)
type MutationResponse struct {
	ID      string `json:"id,omitempty"`
	Success bool   `json:"success,omitempty"`
}

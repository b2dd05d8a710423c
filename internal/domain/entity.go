package domain

type EntityLevel string

const (
	LevelAccount  EntityLevel = "account"
	LevelCampaign EntityLevel = "campaign"
	LevelAdSet    EntityLevel = "adset"
	LevelAd       EntityLevel = "ad"
)

// ForeignKey é o campo da linha de insight que referencia uma entidade do nível
func (l EntityLevel) ForeignKey() string {
	switch l {
	case LevelCampaign:
		return "campaign_id"
	case LevelAdSet:
		return "adset_id"
	case LevelAd:
		return "ad_id"
	case LevelAccount:
		return "account_id"
	}
	return ""
}

// Placeholder é o nome usado quando a entidade vem sem nome
func (l EntityLevel) Placeholder() string {
	switch l {
	case LevelCampaign:
		return "Unnamed Campaign"
	case LevelAdSet:
		return "Unnamed Ad Set"
	case LevelAd:
		return "Unnamed Ad"
	}
	return "Unnamed"
}

func (l EntityLevel) IsValid() bool {
	switch l {
	case LevelCampaign, LevelAdSet, LevelAd, LevelAccount:
		return true
	}
	return false
}

// AdEntity é a forma canônica de campaign, adset e ad.
// Orçamentos já estão na unidade exibida (centavos / 100).
type AdEntity struct {
	ID             string      `json:"id"`
	Level          EntityLevel `json:"level"`
	Name           string      `json:"name"`
	Status         string      `json:"status"`
	RawStatus      string      `json:"rawStatus"`
	StatusLabel    string      `json:"statusLabel"`
	StatusClass    string      `json:"statusColor"`
	ParentID       string      `json:"parentId"`
	Objective      string      `json:"objective,omitempty"`
	DailyBudget    float64     `json:"dailyBudget"`
	LifetimeBudget float64     `json:"lifetimeBudget"`
	Budget         float64     `json:"budget"`
}

// InsightMetrics são as métricas de uma linha de insight ou de um agregado.
// ROAS nil significa desconhecido, diferente de zero.
type InsightMetrics struct {
	Spend         float64  `json:"spent"`
	Impressions   int64    `json:"impressions"`
	Clicks        int64    `json:"clicks"`
	CTR           float64  `json:"ctr"`
	CPC           float64  `json:"cpc"`
	Purchases     int64    `json:"purchases"`
	PurchaseValue float64  `json:"purchaseValue"`
	ROAS          *float64 `json:"roas"`
}

type EnrichedEntity struct {
	AdEntity
	InsightMetrics
}

type SummaryInsights struct {
	InsightMetrics
	Rows      int    `json:"rows"`
	DateStart string `json:"dateStart,omitempty"`
	DateStop  string `json:"dateStop,omitempty"`
}

type PageInfo struct {
	NextCursor string `json:"nextCursor,omitempty"`
}

// EntityPage é uma página de entidades com métricas. Partial indica que os
// insights não puderam ser buscados e as métricas estão zeradas.
type EntityPage struct {
	Data    []EnrichedEntity `json:"data"`
	Paging  PageInfo         `json:"paging"`
	Partial bool             `json:"partial,omitempty"`
}

type InsightsResponse struct {
	AdAccountID string          `json:"adAccountId"`
	Summary     SummaryInsights `json:"summary"`
	Filters     InsightFilters  `json:"filters"`
}

package meta

import (
	metadomain "github.com/vfg2006/meta-ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-dashboard-api/internal/domain"
	"github.com/vfg2006/meta-ads-dashboard-api/pkg/utils"
)

// MergeInsightsByForeignKey faz um left join das entidades com as linhas de
// insight pelo campo key (campaign_id, adset_id ou ad_id). A ordem das
// entidades é mantida e, havendo mais de uma linha por chave, vale a primeira.
func MergeInsightsByForeignKey(entities []domain.AdEntity, rows []metadomain.InsightRow, key string) []domain.EnrichedEntity {
	byKey := make(map[string]metadomain.InsightRow, len(rows))
	for _, row := range rows {
		id := row.ForeignKey(key)
		if id == "" {
			continue
		}
		if _, exists := byKey[id]; exists {
			continue
		}
		byKey[id] = row
	}

	enriched := make([]domain.EnrichedEntity, 0, len(entities))
	for _, entity := range entities {
		item := domain.EnrichedEntity{AdEntity: entity}
		if row, ok := byKey[entity.ID]; ok {
			item.InsightMetrics = NormalizeInsight(row)
		}
		enriched = append(enriched, item)
	}

	return enriched
}

// AggregateAcrossRows soma as linhas e recalcula CTR, CPC e ROAS a partir dos
// totais. Com uma única linha o resultado é o da própria linha.
func AggregateAcrossRows(rows []metadomain.InsightRow) domain.SummaryInsights {
	summary := domain.SummaryInsights{Rows: len(rows)}
	if len(rows) == 0 {
		return summary
	}

	summary.DateStart = rows[0].DateStart
	summary.DateStop = rows[0].DateStop

	if len(rows) == 1 {
		summary.InsightMetrics = NormalizeInsight(rows[0])
		return summary
	}

	var totals domain.InsightMetrics
	hasPurchaseValue := false

	for _, row := range rows {
		metrics := NormalizeInsight(row)

		totals.Spend += metrics.Spend
		totals.Impressions += metrics.Impressions
		totals.Clicks += metrics.Clicks
		totals.Purchases += metrics.Purchases
		totals.PurchaseValue += metrics.PurchaseValue

		if _, ok := findAction(row.ActionValues, PurchaseActionTypes...); ok {
			hasPurchaseValue = true
		}

		if row.DateStart != "" && (summary.DateStart == "" || row.DateStart < summary.DateStart) {
			summary.DateStart = row.DateStart
		}
		if row.DateStop > summary.DateStop {
			summary.DateStop = row.DateStop
		}
	}

	totals.CTR = utils.SafeDivide(float64(totals.Clicks), float64(totals.Impressions)) * 100
	totals.CPC = utils.SafeDivide(totals.Spend, float64(totals.Clicks))

	if totals.Spend > 0 && hasPurchaseValue {
		roas := totals.PurchaseValue / totals.Spend
		totals.ROAS = &roas
	}

	summary.InsightMetrics = totals
	return summary
}

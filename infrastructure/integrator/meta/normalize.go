package meta

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	metadomain "github.com/vfg2006/meta-ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-dashboard-api/internal/domain"
	"github.com/vfg2006/meta-ads-dashboard-api/pkg/utils"
)

// PurchaseActionTypes são os action_type contados como compra
var PurchaseActionTypes = []string{"purchase", "omni_purchase"}

// NormalizeEntity converte campaign, adset ou ad na forma canônica.
// Nunca falha: campos ausentes recebem valores padrão.
func NormalizeEntity(raw metadomain.Entity, level domain.EntityLevel) domain.AdEntity {
	status := raw.EffectiveStatus
	if status == "" {
		status = raw.Status
	}
	if status == "" {
		status = StatusUnknown
	}

	name := raw.Name
	if strings.TrimSpace(name) == "" {
		name = level.Placeholder()
	}

	var parentID string
	switch level {
	case domain.LevelAdSet:
		parentID = raw.CampaignID
	case domain.LevelAd:
		parentID = raw.AdSetID
	}

	daily := utils.FromMinorUnits(raw.DailyBudget.Float())
	lifetime := utils.FromMinorUnits(raw.LifetimeBudget.Float())

	budget := lifetime
	if daily > 0 {
		budget = daily
	}

	return domain.AdEntity{
		ID:             raw.ID,
		Level:          level,
		Name:           name,
		Status:         status,
		RawStatus:      raw.Status,
		StatusLabel:    StatusLabel(status),
		StatusClass:    StatusStyleClass(status),
		ParentID:       parentID,
		Objective:      raw.Objective,
		DailyBudget:    daily,
		LifetimeBudget: lifetime,
		Budget:         budget,
	}
}

// ExtractActionValue retorna o valor da primeira ação cujo tipo está em types.
// Valores que não são números viram 0.
func ExtractActionValue(actions metadomain.ActionList, types ...string) float64 {
	if action, ok := findAction(actions, types...); ok {
		return action.Value.Float()
	}
	return 0
}

func findAction(actions metadomain.ActionList, types ...string) (metadomain.Action, bool) {
	for _, action := range actions {
		for _, t := range types {
			if action.ActionType == t {
				return action, true
			}
		}
	}
	return metadomain.Action{}, false
}

// platformRoas lê purchase_roas. O formato escalar chega sem action_type.
func platformRoas(purchaseRoas metadomain.ActionList) (float64, bool) {
	for _, item := range purchaseRoas {
		if !item.Value.Valid {
			continue
		}
		if item.ActionType == "" {
			return item.Value.Value, true
		}
		for _, t := range PurchaseActionTypes {
			if item.ActionType == t {
				return item.Value.Value, true
			}
		}
	}
	return 0, false
}

// ComputeRoas prefere o purchase_roas da plataforma. Sem ele, divide o valor de
// compra pelo gasto. Sem gasto o ROAS é nil mesmo que a plataforma informe um.
func ComputeRoas(spend float64, actionValues, purchaseRoas metadomain.ActionList) *float64 {
	if spend <= 0 {
		return nil
	}

	if roas, ok := platformRoas(purchaseRoas); ok {
		return &roas
	}

	action, ok := findAction(actionValues, PurchaseActionTypes...)
	if !ok || !action.Value.Valid {
		return nil
	}

	roas := action.Value.Value / spend
	return &roas
}

// NormalizeInsight extrai as métricas de uma linha de insight. CTR e CPC
// vêm da plataforma.
func NormalizeInsight(row metadomain.InsightRow) domain.InsightMetrics {
	spend := row.Spend.Float()

	return domain.InsightMetrics{
		Spend:         spend,
		Impressions:   row.Impressions.Int(),
		Clicks:        row.Clicks.Int(),
		CTR:           row.CTR.Float(),
		CPC:           row.CPC.Float(),
		Purchases:     int64(ExtractActionValue(row.Actions, PurchaseActionTypes...)),
		PurchaseValue: ExtractActionValue(row.ActionValues, PurchaseActionTypes...),
		ROAS:          ComputeRoas(spend, row.ActionValues, row.PurchaseROAS),
	}
}

// DecodeEntities decodifica cada item separadamente. Um item malformado é
// aproveitado campo a campo e itens que não são objetos são descartados.
func DecodeEntities(items []json.RawMessage) []metadomain.Entity {
	entities := make([]metadomain.Entity, 0, len(items))

	for i, item := range items {
		var entity metadomain.Entity
		if err := jsonCodec.Unmarshal(item, &entity); err == nil {
			entities = append(entities, entity)
			continue
		}

		var fields map[string]any
		if err := jsonCodec.Unmarshal(item, &fields); err != nil {
			logrus.WithFields(logrus.Fields{
				"index": i,
				"error": err.Error(),
			}).Warn("normalizer: ignoring entity that is not an object")
			continue
		}

		entities = append(entities, entityFromFields(fields))
	}

	return entities
}

func entityFromFields(fields map[string]any) metadomain.Entity {
	return metadomain.Entity{
		ID:              scalarString(fields["id"]),
		Name:            scalarString(fields["name"]),
		Status:          scalarString(fields["status"]),
		EffectiveStatus: scalarString(fields["effective_status"]),
		CampaignID:      scalarString(fields["campaign_id"]),
		AdSetID:         scalarString(fields["adset_id"]),
		Objective:       scalarString(fields["objective"]),
		DailyBudget:     metadomain.ParseNumericString(scalarString(fields["daily_budget"])),
		LifetimeBudget:  metadomain.ParseNumericString(scalarString(fields["lifetime_budget"])),
	}
}

func scalarString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	}
	return ""
}

// DecodeInsightRows decodifica cada linha separadamente. Uma linha malformada é
// aproveitada campo a campo e linhas que não são objetos são descartadas.
func DecodeInsightRows(items []json.RawMessage) []metadomain.InsightRow {
	rows := make([]metadomain.InsightRow, 0, len(items))

	for i, item := range items {
		var row metadomain.InsightRow
		if err := jsonCodec.Unmarshal(item, &row); err == nil {
			rows = append(rows, row)
			continue
		}

		var fields map[string]json.RawMessage
		if err := jsonCodec.Unmarshal(item, &fields); err != nil {
			logrus.WithFields(logrus.Fields{
				"index": i,
				"error": err.Error(),
			}).Warn("normalizer: ignoring insight row that is not an object")
			continue
		}

		rows = append(rows, insightRowFromFields(fields))
	}

	return rows
}

func insightRowFromFields(fields map[string]json.RawMessage) metadomain.InsightRow {
	row := metadomain.InsightRow{
		AccountID:   rawString(fields["account_id"]),
		CampaignID:  rawString(fields[metadomain.KeyCampaignID]),
		AdSetID:     rawString(fields[metadomain.KeyAdSetID]),
		AdID:        rawString(fields[metadomain.KeyAdID]),
		DateStart:   rawString(fields["date_start"]),
		DateStop:    rawString(fields["date_stop"]),
		Spend:       metadomain.ParseNumeric(fields["spend"]),
		Impressions: metadomain.ParseNumeric(fields["impressions"]),
		Clicks:      metadomain.ParseNumeric(fields["clicks"]),
		CTR:         metadomain.ParseNumeric(fields["ctr"]),
		CPC:         metadomain.ParseNumeric(fields["cpc"]),
		Reach:       metadomain.ParseNumeric(fields["reach"]),
	}

	// ActionList nunca devolve erro
	_ = row.Actions.UnmarshalJSON(fields["actions"])
	_ = row.ActionValues.UnmarshalJSON(fields["action_values"])
	_ = row.PurchaseROAS.UnmarshalJSON(fields["purchase_roas"])

	return row
}

// rawString aceita string ou escalar; objetos e listas viram ""
func rawString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var value any
	if err := jsonCodec.Unmarshal(raw, &value); err != nil {
		return ""
	}
	return scalarString(value)
}

package domain

import (
	"errors"
	"time"

	"github.com/vfg2006/meta-ads-dashboard-api/pkg/utils"
)

const DefaultDatePreset = "last_30d"

var (
	ErrHalfOpenRange     = errors.New("since and until must be informed together")
	ErrInvertedRange     = errors.New("since must not be after until")
	ErrUnknownDatePreset = errors.New("unknown date_preset")
)

var datePresets = map[string]struct{}{
	"today":               {},
	"yesterday":           {},
	"this_month":          {},
	"last_month":          {},
	"this_quarter":        {},
	"last_quarter":        {},
	"this_year":           {},
	"last_year":           {},
	"maximum":             {},
	"data_maximum":        {},
	"last_3d":             {},
	"last_7d":             {},
	"last_14d":            {},
	"last_28d":            {},
	"last_30d":            {},
	"last_90d":            {},
	"last_week_mon_sun":   {},
	"last_week_sun_sat":   {},
	"this_week_mon_today": {},
	"this_week_sun_today": {},
}

func IsDatePreset(preset string) bool {
	_, ok := datePresets[preset]
	return ok
}

// InsightFilters são os filtros de período aceitos pelas rotas de insights.
// Um intervalo explícito (since + until) tem precedência sobre o preset.
type InsightFilters struct {
	DatePreset string     `json:"datePreset,omitempty"`
	Since      *time.Time `json:"-"`
	Until      *time.Time `json:"-"`
}

func (f InsightFilters) HasTimeRange() bool {
	return f.Since != nil && f.Until != nil
}

func (f InsightFilters) Validate() error {
	if (f.Since == nil) != (f.Until == nil) {
		return ErrHalfOpenRange
	}

	if f.HasTimeRange() && f.Since.After(*f.Until) {
		return ErrInvertedRange
	}

	if !f.HasTimeRange() && f.DatePreset != "" && !IsDatePreset(f.DatePreset) {
		return ErrUnknownDatePreset
	}

	return nil
}

// EffectivePreset retorna o preset que será enviado quando não há intervalo
func (f InsightFilters) EffectivePreset(defaultPreset string) string {
	if f.DatePreset != "" {
		return f.DatePreset
	}
	if defaultPreset != "" {
		return defaultPreset
	}
	return DefaultDatePreset
}

func (f InsightFilters) MarshalJSON() ([]byte, error) {
	type filtersJSON struct {
		DatePreset string `json:"datePreset,omitempty"`
		Since      string `json:"since,omitempty"`
		Until      string `json:"until,omitempty"`
	}

	out := filtersJSON{DatePreset: f.DatePreset}
	if f.HasTimeRange() {
		out.DatePreset = ""
		out.Since = utils.FormatDate(*f.Since)
		out.Until = utils.FormatDate(*f.Until)
	}

	return json.Marshal(out)
}

// ListFilters combina o período com o cursor de paginação das listagens
type ListFilters struct {
	InsightFilters
	After string
}

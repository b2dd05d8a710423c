package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusLabelAndClass(t *testing.T) {
	tests := []struct {
		status string
		label  string
		class  string
	}{
		{"ACTIVE", "Aktif", "bg-green-100 text-green-800"},
		{"PAUSED", "Duraklatıldı", "bg-yellow-100 text-yellow-800"},
		{"ARCHIVED", "Arşivlendi", "bg-gray-100 text-gray-800"},
		{"DELETED", "Silindi", "bg-red-100 text-red-800"},
		{"DISAPPROVED", "Reddedildi", "bg-red-100 text-red-800"},
		{"PREAPPROVED", "Ön Onaylı", "bg-blue-100 text-blue-800"},
		{"PENDING_REVIEW", "İnceleme Bekliyor", "bg-yellow-100 text-yellow-800"},
		{"PENDING_BILLING_INFO", "Faturalama Bekliyor", "bg-yellow-100 text-yellow-800"},
		{"CAMPAIGN_PAUSED", "Duraklatıldı", "bg-yellow-100 text-yellow-800"},
		{"ADGROUP_PAUSED", "Duraklatıldı", "bg-yellow-100 text-yellow-800"},
		{"WITH_ISSUES", "Sorunlu", "bg-red-100 text-red-800"},
		{"IN_PROCESS", "IN_PROCESS", "bg-gray-100 text-gray-800"},
		{"", "UNKNOWN", "bg-gray-100 text-gray-800"},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Equal(t, tt.label, StatusLabel(tt.status))
			assert.Equal(t, tt.class, StatusStyleClass(tt.status))
		})
	}
}

package meta

const (
	StatusUnknown = "UNKNOWN"

	classGreen  = "bg-green-100 text-green-800"
	classYellow = "bg-yellow-100 text-yellow-800"
	classGray   = "bg-gray-100 text-gray-800"
	classRed    = "bg-red-100 text-red-800"
	classBlue   = "bg-blue-100 text-blue-800"
)

var statusLabels = map[string]string{
	"ACTIVE":               "Aktif",
	"PAUSED":               "Duraklatıldı",
	"ARCHIVED":             "Arşivlendi",
	"DELETED":              "Silindi",
	"DISAPPROVED":          "Reddedildi",
	"PREAPPROVED":          "Ön Onaylı",
	"PENDING_REVIEW":       "İnceleme Bekliyor",
	"PENDING_BILLING_INFO": "Faturalama Bekliyor",
	"CAMPAIGN_PAUSED":      "Duraklatıldı",
	"ADGROUP_PAUSED":       "Duraklatıldı",
	"WITH_ISSUES":          "Sorunlu",
}

var statusClasses = map[string]string{
	"ACTIVE":               classGreen,
	"PAUSED":               classYellow,
	"ARCHIVED":             classGray,
	"DELETED":              classRed,
	"DISAPPROVED":          classRed,
	"PREAPPROVED":          classBlue,
	"PENDING_REVIEW":       classYellow,
	"PENDING_BILLING_INFO": classYellow,
	"CAMPAIGN_PAUSED":      classYellow,
	"ADGROUP_PAUSED":       classYellow,
	"WITH_ISSUES":          classRed,
}

// StatusLabel traduz o status efetivo para exibição. Códigos desconhecidos
// voltam como vieram.
func StatusLabel(status string) string {
	if status == "" {
		return StatusUnknown
	}
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}

// StatusStyleClass retorna as classes de estilo do badge de status
func StatusStyleClass(status string) string {
	if class, ok := statusClasses[status]; ok {
		return class
	}
	return classGray
}

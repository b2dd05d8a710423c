package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/meta-ads-dashboard-api/internal/scheduler"
	"github.com/vfg2006/meta-ads-dashboard-api/pkg/apiErrors"
)

// RunCacheCleanup executa a limpeza do cache fora do agendamento
func RunCacheCleanup(service *scheduler.CacheCleanupService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCacheCleanup")

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de limpeza do cache não disponível", nil)
			return
		}

		removed := service.Cleanup()

		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Limpeza do cache executada",
			"removed": removed,
		})
	})
}

// GetCronStatus retorna o status da limpeza agendada do cache
func GetCronStatus(service *scheduler.CacheCleanupService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de limpeza do cache não disponível", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"cache-cleanup": service.GetStatus(),
		})
	})
}

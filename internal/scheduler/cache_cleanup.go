package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/meta-ads-dashboard-api/internal/config"
)

// ExpiredEntriesCleaner é o cache limpo periodicamente pelo agendador
type ExpiredEntriesCleaner interface {
	DeleteExpired() int
	Len() int
}

// CacheCleanupConfig representa a configuração da limpeza do cache de respostas
type CacheCleanupConfig struct {
	CronSchedule string
	Enabled      bool
}

// CacheCleanupService remove periodicamente as respostas vencidas do cache
type CacheCleanupService struct {
	scheduler      *gocron.Scheduler
	config         CacheCleanupConfig
	cache          ExpiredEntriesCleaner
	running        bool
	mutex          sync.Mutex
	lastCleanupAt  time.Time
	lastRemovedQty int
}

func NewCacheCleanupService(cache ExpiredEntriesCleaner, appConfig *config.Config) *CacheCleanupService {
	cleanupConfig := CacheCleanupConfig{
		CronSchedule: appConfig.Cache.CleanupEvery,
		Enabled:      appConfig.Cache.Enabled && appConfig.Cache.CleanupEvery != "",
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": cleanupConfig.CronSchedule,
		"enabled":       cleanupConfig.Enabled,
		"ttl":           appConfig.Cache.TTL.String(),
	}).Info("Configuração da limpeza do cache carregada")

	return &CacheCleanupService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    cleanupConfig,
		cache:     cache,
	}
}

// Start inicia o agendador
func (s *CacheCleanupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Limpeza do cache desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de limpeza do cache")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.Cleanup()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza do cache: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza do cache")
		s.scheduler.Stop()
	}()

	return nil
}

// Cleanup remove as entradas vencidas. Execuções sobrepostas são ignoradas.
func (s *CacheCleanupService) Cleanup() int {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		logrus.Debug("Limpeza do cache já em andamento, ignorando")
		return 0
	}
	s.running = true
	s.mutex.Unlock()

	defer func() {
		s.mutex.Lock()
		s.running = false
		s.mutex.Unlock()
	}()

	removed := s.cache.DeleteExpired()

	s.mutex.Lock()
	s.lastCleanupAt = time.Now()
	s.lastRemovedQty = removed
	s.mutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"removed":   removed,
		"remaining": s.cache.Len(),
	}).Debug("Limpeza do cache concluída")

	return removed
}

// LastRun retorna quando a última limpeza terminou e quantas entradas removeu
func (s *CacheCleanupService) LastRun() (time.Time, int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.lastCleanupAt, s.lastRemovedQty
}

// GetStatus resume a configuração e a última execução para a rota de status
func (s *CacheCleanupService) GetStatus() map[string]any {
	lastRun, removed := s.LastRun()

	status := map[string]any{
		"cleanup_enabled":   s.config.Enabled,
		"cleanup_cron":      s.config.CronSchedule,
		"scheduler_running": s.scheduler.IsRunning(),
		"entries":           s.cache.Len(),
		"last_removed":      removed,
	}
	if !lastRun.IsZero() {
		status["last_cleanup_at"] = lastRun
	}

	return status
}

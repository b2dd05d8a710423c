package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/meta-ads-dashboard-api/internal/cache"
	"github.com/vfg2006/meta-ads-dashboard-api/internal/config"
)

func TestCacheCleanupService_Cleanup(t *testing.T) {
	store := cache.New(time.Nanosecond)
	store.Set("s", "k1", 1)
	store.Set("s", "k2", 2)
	time.Sleep(time.Millisecond)

	service := NewCacheCleanupService(store, &config.Config{
		Cache: config.Cache{Enabled: true, TTL: time.Nanosecond, CleanupEvery: "*/1 * * * *"},
	})

	assert.Equal(t, 2, service.Cleanup())
	assert.Zero(t, store.Len())

	lastRun, removed := service.LastRun()
	assert.False(t, lastRun.IsZero())
	assert.Equal(t, 2, removed)
}

func TestCacheCleanupService_StartDisabled(t *testing.T) {
	service := NewCacheCleanupService(cache.New(time.Minute), &config.Config{
		Cache: config.Cache{Enabled: false, CleanupEvery: "*/1 * * * *"},
	})

	require.NoError(t, service.Start(context.Background()))
	assert.False(t, service.scheduler.IsRunning())
}

func TestCacheCleanupService_StartInvalidCron(t *testing.T) {
	service := NewCacheCleanupService(cache.New(time.Minute), &config.Config{
		Cache: config.Cache{Enabled: true, CleanupEvery: "not a cron"},
	})

	assert.Error(t, service.Start(context.Background()))
}

func TestCacheCleanupService_StopsWithContext(t *testing.T) {
	service := NewCacheCleanupService(cache.New(time.Minute), &config.Config{
		Cache: config.Cache{Enabled: true, CleanupEvery: "*/1 * * * *"},
	})

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, service.Start(ctx))
	assert.True(t, service.scheduler.IsRunning())

	cancel()
	assert.Eventually(t, func() bool { return !service.scheduler.IsRunning() }, time.Second, 10*time.Millisecond)
}

func TestCacheCleanupService_GetStatus(t *testing.T) {
	store := cache.New(time.Minute)
	store.Set("s", "k1", 1)

	service := NewCacheCleanupService(store, &config.Config{
		Cache: config.Cache{Enabled: true, TTL: time.Minute, CleanupEvery: "*/5 * * * *"},
	})

	status := service.GetStatus()
	assert.Equal(t, true, status["cleanup_enabled"])
	assert.Equal(t, "*/5 * * * *", status["cleanup_cron"])
	assert.Equal(t, 1, status["entries"])
	assert.NotContains(t, status, "last_cleanup_at")

	service.Cleanup()
	assert.Contains(t, service.GetStatus(), "last_cleanup_at")
}

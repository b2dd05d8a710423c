package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/meta-ads-dashboard-api/infrastructure/integrator/meta"
	"github.com/vfg2006/meta-ads-dashboard-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/meta-ads-dashboard-api/internal/api"
	"github.com/vfg2006/meta-ads-dashboard-api/internal/cache"
	"github.com/vfg2006/meta-ads-dashboard-api/internal/config"
	"github.com/vfg2006/meta-ads-dashboard-api/internal/scheduler"
	"github.com/vfg2006/meta-ads-dashboard-api/internal/usecases/account"
	"github.com/vfg2006/meta-ads-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/meta-ads-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/meta-ads-dashboard-api/pkg/log"
	"github.com/vfg2006/meta-ads-dashboard-api/pkg/tokencrypt"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cipher := tokencrypt.New(cfg.Meta.TokenSecret)

	metaClient := metaclient.NewClient(cfg)
	metaIntegrator := meta.New(cfg, metaClient)

	var store *cache.Store
	if cfg.Cache.Enabled {
		store = cache.New(cfg.Cache.TTL)
	}

	authenticator := authenticating.NewService(cfg, metaClient, cipher)
	accountService := account.NewService(metaIntegrator)

	insightService := insighting.NewService(cfg, metaIntegrator)
	cachedInsightService := insightService.(*insighting.Service).WithCache(store)

	cacheCleanupService := scheduler.NewCacheCleanupService(store, cfg)
	if err := cacheCleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza do cache")
	} else {
		logrus.Info("Agendador de limpeza do cache iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		cachedInsightService,
		accountService,
		authenticator,
		cacheCleanupService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource faz o .env ao lado do main ser encontrado em execução local
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	os.Chdir(path.Dir(file))
}

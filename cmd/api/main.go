package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/seller-pnl-api/infrastructure/database/postgres"
	"github.com/vfg2006/seller-pnl-api/infrastructure/integrator/marketplace"
	"github.com/vfg2006/seller-pnl-api/infrastructure/integrator/marketplace/marketplaceclient"
	"github.com/vfg2006/seller-pnl-api/infrastructure/repository"
	"github.com/vfg2006/seller-pnl-api/internal/api"
	"github.com/vfg2006/seller-pnl-api/internal/config"
	"github.com/vfg2006/seller-pnl-api/internal/scheduler"
	"github.com/vfg2006/seller-pnl-api/internal/usecases/allocating"
	"github.com/vfg2006/seller-pnl-api/internal/usecases/analyzing"
	"github.com/vfg2006/seller-pnl-api/internal/usecases/authenticating"
	"github.com/vfg2006/seller-pnl-api/internal/usecases/ledger"
	"github.com/vfg2006/seller-pnl-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	shopRepo := repository.NewShopRepository(pgConn)
	orderRepo := repository.NewOrderRepository(pgConn)
	shopConfigRepo := repository.NewShopConfigRepository(pgConn)
	ledgerCacheRepo := repository.NewLedgerCacheRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	strategies := allocating.DefaultRegistry()
	if _, err := strategies.Get(cfg.Analytics.AllocationStrategy); err != nil {
		logrus.WithError(err).Fatal("Estratégia de rateio inválida")
	}

	analyzer := analyzing.NewService(
		shopRepo,
		orderRepo,
		shopConfigRepo,
		ledger.NewAccessor(ledgerCacheRepo),
		strategies,
		cfg.Analytics,
	)

	marketplaceClient := marketplaceclient.NewClient(cfg)
	marketplaceIntegrator := marketplace.New(marketplaceClient)

	ledgerCacheRefreshService := scheduler.NewLedgerCacheRefreshService(
		shopRepo,
		orderRepo,
		ledgerCacheRepo,
		marketplaceIntegrator,
		cfg,
	)

	if err := ledgerCacheRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização do cache do relatório")
	} else {
		logrus.Info("Agendador de atualização do cache do relatório iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Dependencies{
		Analyzer:           analyzer,
		Authenticator:      authenticator,
		LedgerCacheRefresh: ledgerCacheRefreshService,
		Database:           pgConn,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

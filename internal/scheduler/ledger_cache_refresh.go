package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/seller-pnl-api/infrastructure/integrator/marketplace"
	"github.com/vfg2006/seller-pnl-api/infrastructure/repository"
	"github.com/vfg2006/seller-pnl-api/internal/config"
	"github.com/vfg2006/seller-pnl-api/internal/domain"
	"github.com/vfg2006/seller-pnl-api/internal/usecases/period"
)

// LedgerCacheRefreshConfig representa a configuração do agendador de atualização do cache
type LedgerCacheRefreshConfig struct {
	CronSchedule      string
	LookbackDays      int
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// LedgerCacheRefreshService baixa o relatório financeiro de cada loja ativa e materializa as partições do cache
type LedgerCacheRefreshService struct {
	scheduler           *gocron.Scheduler
	config              LedgerCacheRefreshConfig
	shopRepo            repository.ShopRepository
	orderRepo           repository.OrderRepository
	cacheRepo           repository.LedgerCacheRepository
	marketplace         marketplace.MarketplaceIntegrator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRefreshed       int
	lastFailed          int
	now                 func() time.Time
}

func NewLedgerCacheRefreshService(
	shopRepo repository.ShopRepository,
	orderRepo repository.OrderRepository,
	cacheRepo repository.LedgerCacheRepository,
	marketplaceService marketplace.MarketplaceIntegrator,
	appConfig *config.Config,
) *LedgerCacheRefreshService {
	refreshConfig := LedgerCacheRefreshConfig{
		CronSchedule:      appConfig.LedgerCacheRefresh.CronSchedule,
		LookbackDays:      appConfig.LedgerCacheRefresh.LookbackDays,
		MaxConcurrentJobs: appConfig.LedgerCacheRefresh.MaxConcurrentJobs,
		SyncEnabled:       appConfig.LedgerCacheRefresh.Enabled,
	}
	if refreshConfig.MaxConcurrentJobs <= 0 {
		refreshConfig.MaxConcurrentJobs = 1
	}
	if refreshConfig.LookbackDays <= 0 {
		refreshConfig.LookbackDays = 365
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       refreshConfig.CronSchedule,
		"lookback_days":       refreshConfig.LookbackDays,
		"max_concurrent_jobs": refreshConfig.MaxConcurrentJobs,
		"sync_enabled":        refreshConfig.SyncEnabled,
	}).Info("Configuração do agendador de cache do relatório carregada")

	return &LedgerCacheRefreshService{
		scheduler:   scheduler,
		config:      refreshConfig,
		shopRepo:    shopRepo,
		orderRepo:   orderRepo,
		cacheRepo:   cacheRepo,
		marketplace: marketplaceService,
		now:         time.Now,
	}
}

// Start inicia o agendador
func (s *LedgerCacheRefreshService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Atualização do cache do relatório desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização do cache do relatório")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshAllShops(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do cache do relatório: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização do cache do relatório")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *LedgerCacheRefreshService) refreshAllShops(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização do cache do relatório já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	startTime := time.Now()

	shops, err := s.shopRepo.ListActiveShops()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lojas para atualização do cache")
		return
	}

	if len(shops) == 0 {
		logrus.Info("Nenhuma loja ativa encontrada para atualização do cache")
		return
	}

	refreshed, failed := s.processShops(ctx, shops)

	logrus.WithFields(logrus.Fields{
		"duration":  time.Since(startTime).String(),
		"shops":     len(shops),
		"refreshed": refreshed,
		"failed":    failed,
	}).Info("Atualização do cache do relatório concluída")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = s.now()
	s.lastRefreshed = refreshed
	s.lastFailed = failed
	s.syncMutex.Unlock()
}

// processShops atualiza as lojas em paralelo, limitado por MaxConcurrentJobs
func (s *LedgerCacheRefreshService) processShops(ctx context.Context, shops []*domain.Shop) (refreshed, failed int) {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)

	for _, shop := range shops {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(shop *domain.Shop) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			err := s.RefreshShop(ctx, shop)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed++
				logrus.WithFields(logrus.Fields{
					"shop_id": shop.ID,
					"error":   err.Error(),
				}).Error("Erro ao atualizar cache da loja")
				return
			}
			refreshed++
		}(shop)
	}

	wg.Wait()
	return refreshed, failed
}

// RefreshShop baixa o relatório da janela configurada, grava o snapshot particionado e atualiza os pedidos locais
func (s *LedgerCacheRefreshService) RefreshShop(ctx context.Context, shop *domain.Shop) error {
	now := s.now()
	from := now.AddDate(0, 0, -s.config.LookbackDays)

	records, err := s.marketplace.FetchLedger(ctx, shop, from, now)
	if err != nil {
		return fmt.Errorf("erro ao baixar relatório da loja %d: %w", shop.ID, err)
	}

	snapshot := BuildSnapshot(shop.ID, records, now)
	if err := s.cacheRepo.SaveSnapshot(snapshot); err != nil {
		return fmt.Errorf("erro ao salvar cache da loja %d: %w", shop.ID, err)
	}

	logrus.WithFields(logrus.Fields{
		"shop_id": shop.ID,
		"week":    len(snapshot.Records[domain.PartitionWeek]),
		"month":   len(snapshot.Records[domain.PartitionMonth]),
		"year":    len(snapshot.Records[domain.PartitionYear]),
		"all":     len(snapshot.Records[domain.PartitionAll]),
	}).Info("Cache do relatório atualizado para loja")

	orders, err := s.marketplace.FetchOrders(ctx, shop, from)
	if err != nil {
		// o cache já foi gravado; os pedidos ficam para a próxima rodada
		logrus.WithError(err).WithField("shop_id", shop.ID).Warn("Erro ao baixar pedidos da loja")
		return nil
	}

	if err := s.orderRepo.SaveOrders(orders); err != nil {
		logrus.WithError(err).WithField("shop_id", shop.ID).Error("Erro ao salvar pedidos da loja")
	}

	return nil
}

// BuildSnapshot distribui as linhas pelas partições semana, mês e ano corrente.
// A partição completa guarda todas as linhas baixadas.
func BuildSnapshot(shopID int64, records []domain.LedgerRecord, now time.Time) *domain.LedgerSnapshot {
	weekStart := period.WeekStart(now)
	monthStart := period.MonthStart(now)
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())

	partitions := map[domain.LedgerPartition][]domain.LedgerRecord{
		domain.PartitionWeek:  make([]domain.LedgerRecord, 0),
		domain.PartitionMonth: make([]domain.LedgerRecord, 0),
		domain.PartitionYear:  make([]domain.LedgerRecord, 0),
		domain.PartitionAll:   records,
	}
	if records == nil {
		partitions[domain.PartitionAll] = make([]domain.LedgerRecord, 0)
	}

	for _, r := range records {
		saleDate, err := r.SaleDate()
		if err != nil {
			continue
		}

		if !saleDate.Before(weekStart) {
			partitions[domain.PartitionWeek] = append(partitions[domain.PartitionWeek], r)
		}
		if !saleDate.Before(monthStart) {
			partitions[domain.PartitionMonth] = append(partitions[domain.PartitionMonth], r)
		}
		if !saleDate.Before(yearStart) {
			partitions[domain.PartitionYear] = append(partitions[domain.PartitionYear], r)
		}
	}

	return &domain.LedgerSnapshot{
		ShopID:    shopID,
		Records:   partitions,
		UpdatedAt: now,
	}
}

// TriggerManualSync inicia manualmente a atualização do cache de todas as lojas
func (s *LedgerCacheRefreshService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização do cache já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização manual do cache do relatório")
	go s.refreshAllShops(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *LedgerCacheRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_refreshed_shops":   s.lastRefreshed,
		"last_failed_shops":      s.lastFailed,
	}
}

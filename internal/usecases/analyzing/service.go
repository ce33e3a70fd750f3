package analyzing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vfg2006/seller-pnl-api/infrastructure/repository"
	"github.com/vfg2006/seller-pnl-api/internal/config"
	"github.com/vfg2006/seller-pnl-api/internal/domain"
	"github.com/vfg2006/seller-pnl-api/internal/usecases/aggregating"
	"github.com/vfg2006/seller-pnl-api/internal/usecases/allocating"
	"github.com/vfg2006/seller-pnl-api/internal/usecases/forecasting"
	"github.com/vfg2006/seller-pnl-api/internal/usecases/ledger"
	"github.com/vfg2006/seller-pnl-api/internal/usecases/period"
	"github.com/vfg2006/seller-pnl-api/internal/usecases/reporting"
	"github.com/vfg2006/seller-pnl-api/pkg/apiErrors"
	"github.com/vfg2006/seller-pnl-api/pkg/utils"
)

const reportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Analyzer expõe as consultas financeiras de uma loja
type Analyzer interface {
	ShopMetrics(ctx context.Context, shopID int64, req period.Request) (*domain.ShopMetricsResult, error)
	Summary(ctx context.Context, shopID int64, req period.Request) (string, error)
	SummaryPDF(ctx context.Context, shopID int64, req period.Request) (*ReportFile, error)
	ArticleReport(ctx context.Context, shopID int64, req period.Request) (*ReportFile, error)
	ArticleProfitability(ctx context.Context, shopID int64) ([]domain.ArticleProfitability, error)
	TopProducts(ctx context.Context, shopID int64) ([]domain.TopProduct, error)
	WhatIf(ctx context.Context, shopID int64, article, input string) (*domain.WhatIfResult, error)
	ComparePrevious(ctx context.Context, shopID int64, req period.Request) (*domain.PeriodComparison, error)
	AnnualYield(ctx context.Context, shopID int64) (*domain.AnnualYield, error)
	Payback(ctx context.Context, shopID int64, req period.Request) (*domain.PaybackReport, error)
}

// ReportFile é um artefato binário pronto para download
type ReportFile struct {
	Name        string
	ContentType string
	Content     []byte
}

type Service struct {
	shopRepo   repository.ShopRepository
	orderRepo  repository.OrderRepository
	configRepo repository.ShopConfigRepository
	ledger     *ledger.Accessor
	strategies *allocating.Registry
	cfg        config.Analytics
	now        func() time.Time
}

func NewService(
	shopRepo repository.ShopRepository,
	orderRepo repository.OrderRepository,
	configRepo repository.ShopConfigRepository,
	accessor *ledger.Accessor,
	strategies *allocating.Registry,
	cfg config.Analytics,
) *Service {
	if cfg.ProfitabilityWindowDays <= 0 {
		cfg.ProfitabilityWindowDays = 30
	}
	if cfg.TopProducts <= 0 {
		cfg.TopProducts = 5
	}

	return &Service{
		shopRepo:   shopRepo,
		orderRepo:  orderRepo,
		configRepo: configRepo,
		ledger:     accessor,
		strategies: strategies,
		cfg:        cfg,
		now:        time.Now,
	}
}

// WithClock substitui o relógio usado para resolver os períodos
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) getShop(shopID int64) (*domain.Shop, error) {
	shop, err := s.shopRepo.GetShopByID(shopID)
	if err != nil {
		return nil, NewAnalyticsError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, shopID, "Falha ao buscar loja")
	}
	if shop == nil {
		return nil, NewAnalyticsError(ErrShopNotFound, apiErrors.ErrShopNotFound, shopID, "")
	}
	return shop, nil
}

func (s *Service) resolve(shopID int64, req period.Request) (domain.Period, error) {
	p, err := period.Resolve(req, s.now())
	if err != nil {
		return domain.Period{}, NewAnalyticsError(ErrInvalidPeriod, apiErrors.ErrInvalidPeriod, shopID, err.Error())
	}
	return p, nil
}

func (s *Service) records(ctx context.Context, shopID int64, p domain.Period) ([]domain.LedgerRecord, error) {
	records, err := s.ledger.Records(ctx, shopID, p)
	if err != nil {
		return nil, s.ledgerError(shopID, err)
	}
	return records, nil
}

func (s *Service) allRecords(ctx context.Context, shopID int64) ([]domain.LedgerRecord, error) {
	records, err := s.ledger.AllRecords(ctx, shopID)
	if err != nil {
		return nil, s.ledgerError(shopID, err)
	}
	return records, nil
}

func (s *Service) ledgerError(shopID int64, err error) error {
	if errors.Is(err, ledger.ErrCacheNotWarmed) {
		return NewAnalyticsError(ledger.ErrCacheNotWarmed, apiErrors.ErrCacheNotWarmed, shopID, "")
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	logrus.WithError(err).WithField("shop_id", shopID).Error("analytics: falha ao ler cache do relatório")
	return NewAnalyticsError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, shopID, "Falha ao ler cache do relatório")
}

// loadConfiguration busca em paralelo a configuração de custos da loja para o período
func (s *Service) loadConfiguration(ctx context.Context, shopID int64, p domain.Period) (domain.ShopConfiguration, error) {
	var cfg domain.ShopConfiguration

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		cfg.ProductCosts, err = s.configRepo.ListProductCosts(shopID)
		return err
	})
	g.Go(func() (err error) {
		cfg.RegularExpenses, err = s.configRepo.ListRegularExpenses(shopID)
		return err
	})
	g.Go(func() (err error) {
		cfg.OneTimeExpenses, err = s.configRepo.ListOneTimeExpenses(shopID)
		return err
	})
	g.Go(func() (err error) {
		cfg.Advertisements, err = s.configRepo.ListAdvertisements(shopID, p.Start, p.End)
		return err
	})
	g.Go(func() (err error) {
		cfg.Penalties, err = s.configRepo.ListPenalties(shopID, p.Start, p.End)
		return err
	})
	g.Go(func() (err error) {
		cfg.TaxSetting, err = s.configRepo.GetTaxSetting(shopID)
		return err
	})

	if err := g.Wait(); err != nil {
		logrus.WithError(err).WithField("shop_id", shopID).Error("analytics: falha ao carregar configuração da loja")
		return cfg, NewAnalyticsError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, shopID, "Falha ao carregar configuração da loja")
	}

	return cfg, nil
}

func (s *Service) purchasedOrders(shopID int64) ([]domain.OrderRecord, error) {
	orders, err := s.orderRepo.ListPurchased(shopID)
	if err != nil {
		logrus.WithError(err).WithField("shop_id", shopID).Error("analytics: falha ao listar pedidos")
		return nil, NewAnalyticsError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, shopID, "Falha ao listar pedidos")
	}
	return orders, nil
}

// metrics agrega o período e anexa a previsão de retorno do investimento
func (s *Service) metrics(ctx context.Context, shopID int64, p domain.Period, topUp bool) (*domain.ShopMetricsResult, error) {
	records, err := s.records(ctx, shopID, p)
	if err != nil {
		return nil, err
	}

	cfg, err := s.loadConfiguration(ctx, shopID, p)
	if err != nil {
		return nil, err
	}

	orders, err := s.purchasedOrders(shopID)
	if err != nil {
		return nil, err
	}

	result := aggregating.Aggregate(aggregating.Input{
		ShopID:             shopID,
		Period:             p,
		Records:            records,
		Orders:             orders,
		Config:             cfg,
		IncludeCurrentWeek: topUp,
		Now:                s.now(),
	})

	if len(result.MissingCostArticles) > 0 {
		logrus.WithFields(logrus.Fields{
			"shop_id":  shopID,
			"articles": result.MissingCostArticles,
		}).Warn("analytics: artigos sem custo cadastrado, custo considerado zero")
	}

	investment := cfg.InvestmentTotal()
	payback := s.payback(orders, result.NetProfit, investment)
	result.Payback = &payback

	if roi, ok := forecasting.ROI(result.NetProfit, investment); ok {
		result.ROI = &roi
	}

	return &result, nil
}

func (s *Service) payback(orders []domain.OrderRecord, netProfit, investment float64) domain.Payback {
	history := forecasting.History(forecasting.MonthlyProfit(orders))
	if len(history) == 0 || investment <= 0 {
		return forecasting.EstimateFromNet(netProfit, investment)
	}
	return forecasting.Forecast(history, investment)
}

// ShopMetrics calcula o resultado da loja no período. Apenas a semana corrente é complementada com os pedidos recentes.
func (s *Service) ShopMetrics(ctx context.Context, shopID int64, req period.Request) (*domain.ShopMetricsResult, error) {
	p, err := s.resolve(shopID, req)
	if err != nil {
		return nil, err
	}

	if _, err := s.getShop(shopID); err != nil {
		return nil, err
	}

	return s.metrics(ctx, shopID, p, p.Kind == domain.PeriodWeek)
}

func (s *Service) Summary(ctx context.Context, shopID int64, req period.Request) (string, error) {
	p, err := s.resolve(shopID, req)
	if err != nil {
		return "", err
	}

	shop, err := s.getShop(shopID)
	if err != nil {
		return "", err
	}

	current, err := s.metrics(ctx, shopID, p, p.Kind == domain.PeriodWeek)
	if err != nil {
		return "", err
	}

	previous, err := s.metrics(ctx, shopID, period.Previous(p), false)
	if err != nil {
		// sem o período anterior o resumo sai sem indicador de tendência
		logrus.WithError(err).WithField("shop_id", shopID).Debug("analytics: período anterior indisponível")
		previous = nil
	}

	return reporting.FormatSummary(shop.DisplayName(), *current, previous), nil
}

func (s *Service) SummaryPDF(ctx context.Context, shopID int64, req period.Request) (*ReportFile, error) {
	p, err := s.resolve(shopID, req)
	if err != nil {
		return nil, err
	}

	shop, err := s.getShop(shopID)
	if err != nil {
		return nil, err
	}

	result, err := s.metrics(ctx, shopID, p, p.Kind == domain.PeriodWeek)
	if err != nil {
		return nil, err
	}

	content, err := reporting.RenderSummaryPDF(shop.DisplayName(), *result)
	if err != nil {
		logrus.WithError(err).WithField("shop_id", shopID).Error("analytics: falha ao gerar PDF")
		return nil, NewAnalyticsError(ErrRenderReport, apiErrors.ErrInternalServer, shopID, "Falha ao gerar PDF do resumo")
	}

	return &ReportFile{
		Name:        s.fileName("resumo", shopID, "pdf"),
		ContentType: "application/pdf",
		Content:     content,
	}, nil
}

// ArticleReport gera a planilha de análise de produtos do período
func (s *Service) ArticleReport(ctx context.Context, shopID int64, req period.Request) (*ReportFile, error) {
	p, err := s.resolve(shopID, req)
	if err != nil {
		return nil, err
	}

	if _, err := s.getShop(shopID); err != nil {
		return nil, err
	}

	records, err := s.records(ctx, shopID, p)
	if err != nil {
		return nil, err
	}

	now := s.now()

	// publicidade desde o início do período e penalidades dos últimos 30 dias, como no relatório por artigo
	adsWindow := domain.Period{Kind: p.Kind, Start: p.Start, End: now}
	cfg, err := s.loadConfiguration(ctx, shopID, adsWindow)
	if err != nil {
		return nil, err
	}

	penaltyWindow := period.LastDays(30, now)
	penalties, err := s.configRepo.ListPenalties(shopID, penaltyWindow.Start, penaltyWindow.End)
	if err != nil {
		return nil, NewAnalyticsError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, shopID, "Falha ao listar penalidades")
	}

	weekOrders, err := s.orderRepo.ListPurchasedSince(shopID, period.WeekStart(now))
	if err != nil {
		return nil, NewAnalyticsError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, shopID, "Falha ao listar pedidos da semana")
	}

	strategy, err := s.strategies.Get(s.cfg.AllocationStrategy)
	if err != nil {
		logrus.WithError(err).WithField("strategy", s.cfg.AllocationStrategy).Warn("analytics: estratégia desconhecida, usando padrão")
		strategy, _ = s.strategies.Get("")
	}

	regular := 0.0
	for _, e := range cfg.RegularExpenses {
		regular += e.ProratedAmount(p.Days())
	}

	rows := reporting.BuildArticleRows(reporting.RowsInput{
		Records:         records,
		WeekOrders:      weekOrders,
		Costs:           cfg.CostByArticle(),
		RegularExpenses: regular,
		TaxRate:         cfg.TaxSetting.Rate(),
		Advertising:     advertisingByArticle(cfg.Advertisements),
		Penalties:       penaltiesByArticle(penalties),
		Strategy:        strategy,
	})

	content, err := reporting.RenderWorkbook(rows)
	if err != nil {
		logrus.WithError(err).WithField("shop_id", shopID).Error("analytics: falha ao gerar planilha")
		return nil, NewAnalyticsError(ErrRenderReport, apiErrors.ErrInternalServer, shopID, "Falha ao gerar planilha")
	}

	logrus.WithFields(logrus.Fields{
		"shop_id":  shopID,
		"articles": len(rows),
		"strategy": strategy.Name(),
	}).Info("analytics: relatório por artigo gerado")

	return &ReportFile{
		Name:        s.fileName("analise_produtos", shopID, "xlsx"),
		ContentType: reportContentType,
		Content:     content,
	}, nil
}

func (s *Service) fileName(prefix string, shopID int64, ext string) string {
	id, err := utils.GenerateID(8)
	if err != nil {
		id = s.now().Format("150405")
	}
	return fmt.Sprintf("%s_%d_%s_%s.%s", prefix, shopID, s.now().Format("2006-01-02"), id, ext)
}

func advertisingByArticle(ads []domain.Advertisement) map[int64]float64 {
	byArticle := make(map[int64]float64)
	for _, ad := range ads {
		if ad.NmID == nil {
			continue
		}
		byArticle[*ad.NmID] += ad.Amount
	}
	return byArticle
}

func penaltiesByArticle(penalties []domain.Penalty) map[int64]float64 {
	byArticle := make(map[int64]float64)
	for _, p := range penalties {
		if p.NmID == nil {
			continue
		}
		byArticle[*p.NmID] += p.Sum
	}
	return byArticle
}

// Payback retorna a previsão de retorno e o ROI calculado sobre o lucro líquido do período
func (s *Service) Payback(ctx context.Context, shopID int64, req period.Request) (*domain.PaybackReport, error) {
	result, err := s.ShopMetrics(ctx, shopID, req)
	if err != nil {
		return nil, err
	}

	report := &domain.PaybackReport{
		Period:    result.Period,
		NetProfit: result.NetProfit,
		ROI:       result.ROI,
	}
	if result.Payback != nil {
		report.Payback = *result.Payback
		report.Investment = result.Payback.Investment
	}
	report.Recouped = report.ROI != nil && *report.ROI > 100

	return report, nil
}

package analyzing

import (
	"context"
	"math"
	"time"

	"github.com/vfg2006/seller-pnl-api/internal/domain"
	"github.com/vfg2006/seller-pnl-api/internal/usecases/aggregating"
	"github.com/vfg2006/seller-pnl-api/internal/usecases/forecasting"
	"github.com/vfg2006/seller-pnl-api/internal/usecases/ledger"
	"github.com/vfg2006/seller-pnl-api/internal/usecases/period"
	"github.com/vfg2006/seller-pnl-api/pkg/utils"
)

const (
	yieldWindowDays = 30
	maxYieldWindows = 12
)

// ComparePrevious compara o período com o período anterior de mesma duração.
// O período anterior nunca é complementado com os pedidos da semana corrente.
func (s *Service) ComparePrevious(ctx context.Context, shopID int64, req period.Request) (*domain.PeriodComparison, error) {
	p, err := s.resolve(shopID, req)
	if err != nil {
		return nil, err
	}

	if _, err := s.getShop(shopID); err != nil {
		return nil, err
	}

	current, err := s.metrics(ctx, shopID, p, p.Kind == domain.PeriodWeek)
	if err != nil {
		return nil, err
	}

	previous, err := s.metrics(ctx, shopID, period.Previous(p), false)
	if err != nil {
		return nil, err
	}

	return compare(*current, *previous), nil
}

func compare(current, previous domain.ShopMetricsResult) *domain.PeriodComparison {
	return &domain.PeriodComparison{
		Current:       current.Period,
		Previous:      previous.Period,
		Revenue:       delta(current.Revenue, previous.Revenue),
		NetProfit:     delta(current.NetProfit, previous.NetProfit),
		Profitability: delta(current.Profitability, previous.Profitability),
		Commission:    delta(current.Commission, previous.Commission),
		Logistics:     delta(current.Logistics, previous.Logistics),
		UnitsSold:     delta(current.UnitsSold, previous.UnitsSold),
	}
}

func delta(current, previous float64) domain.MetricDelta {
	d := domain.MetricDelta{
		Current:  current,
		Previous: previous,
		Delta:    current - previous,
	}
	if previous != 0 {
		d.Percent = utils.Percent(d.Delta, math.Abs(previous))
	}
	return d
}

// AnnualYield percorre a partição completa em janelas de 30 dias, da mais recente para trás,
// até encontrar uma janela sem vendas, e calcula o retorno sobre o investimento do que foi coberto
func (s *Service) AnnualYield(ctx context.Context, shopID int64) (*domain.AnnualYield, error) {
	if _, err := s.getShop(shopID); err != nil {
		return nil, err
	}

	all, err := s.allRecords(ctx, shopID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	windows := yieldWindows(all, now)

	start := now
	if len(windows) > 0 {
		start = windows[len(windows)-1].period.Start
	}
	covered := domain.Period{Kind: domain.PeriodCustom, Start: start, End: now}

	cfg, err := s.loadConfiguration(ctx, shopID, covered)
	if err != nil {
		return nil, err
	}

	orders, err := s.purchasedOrders(shopID)
	if err != nil {
		return nil, err
	}

	return annualYield(shopID, windows, covered, cfg, orders, now), nil
}

type yieldWindow struct {
	period  domain.Period
	records []domain.LedgerRecord
}

// yieldWindows fatia o histórico em janelas consecutivas sem sobreposição
func yieldWindows(records []domain.LedgerRecord, now time.Time) []yieldWindow {
	windows := make([]yieldWindow, 0, maxYieldWindows)

	for i := 0; i < maxYieldWindows; i++ {
		end := now.AddDate(0, 0, -yieldWindowDays*i)
		if i > 0 {
			end = end.Add(-time.Nanosecond)
		}
		p := domain.Period{
			Kind:  domain.PeriodCustom,
			Start: now.AddDate(0, 0, -yieldWindowDays*(i+1)),
			End:   end,
		}

		inWindow := ledger.FilterByPeriod(records, p)
		if len(inWindow) == 0 {
			break
		}

		windows = append(windows, yieldWindow{period: p, records: inWindow})
	}

	return windows
}

func annualYield(shopID int64, windows []yieldWindow, covered domain.Period, cfg domain.ShopConfiguration, orders []domain.OrderRecord, now time.Time) *domain.AnnualYield {
	result := &domain.AnnualYield{
		Period:     covered,
		Months:     len(windows),
		Windows:    make([]domain.YieldWindow, 0, len(windows)),
		Investment: cfg.InvestmentTotal(),
	}

	if len(windows) == 0 {
		return result
	}

	records := make([]domain.LedgerRecord, 0)
	for _, w := range windows {
		metrics := aggregating.Aggregate(aggregating.Input{
			ShopID:  shopID,
			Period:  w.period,
			Records: w.records,
			Orders:  orders,
			Config:  cfg,
			Now:     now,
		})
		result.Windows = append(result.Windows, domain.YieldWindow{
			Period:    w.period,
			Revenue:   metrics.Revenue,
			NetProfit: metrics.NetProfit,
		})
		records = append(records, w.records...)
	}

	total := aggregating.Aggregate(aggregating.Input{
		ShopID:  shopID,
		Period:  covered,
		Records: records,
		Orders:  orders,
		Config:  cfg,
		Now:     now,
	})

	result.Revenue = total.Revenue
	result.NetProfit = total.NetProfit
	if roi, ok := forecasting.ROI(total.NetProfit, result.Investment); ok {
		result.Yield = &roi
	}

	return result
}

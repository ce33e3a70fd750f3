package analyzing

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/seller-pnl-api/internal/domain"
	"github.com/vfg2006/seller-pnl-api/internal/usecases/allocating"
	"github.com/vfg2006/seller-pnl-api/internal/usecases/ledger"
	"github.com/vfg2006/seller-pnl-api/internal/usecases/period"
	"github.com/vfg2006/seller-pnl-api/pkg/apiErrors"
)

// windowRecords retorna as linhas do relatório da janela móvel de rentabilidade
func (s *Service) windowRecords(ctx context.Context, shopID int64) ([]domain.LedgerRecord, map[string]float64, error) {
	if _, err := s.getShop(shopID); err != nil {
		return nil, nil, err
	}

	all, err := s.allRecords(ctx, shopID)
	if err != nil {
		return nil, nil, err
	}

	records := ledger.FilterByPeriod(all, period.LastDays(s.cfg.ProfitabilityWindowDays, s.now()))

	costs, err := s.configRepo.ListProductCosts(shopID)
	if err != nil {
		logrus.WithError(err).WithField("shop_id", shopID).Error("analytics: falha ao listar custos de produtos")
		return nil, nil, NewAnalyticsError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, shopID, "Falha ao listar custos de produtos")
	}

	return records, domain.ShopConfiguration{ProductCosts: costs}.CostByArticle(), nil
}

// ArticleProfitability calcula a rentabilidade de cada artigo na janela móvel.
// Logística e armazenagem da loja são rateadas pela receita de cada artigo.
func (s *Service) ArticleProfitability(ctx context.Context, shopID int64) ([]domain.ArticleProfitability, error) {
	records, costs, err := s.windowRecords(ctx, shopID)
	if err != nil {
		return nil, err
	}

	return articleProfitability(records, costs, allocating.NewRevenueProportional()), nil
}

func articleProfitability(records []domain.LedgerRecord, costs map[string]float64, strategy allocating.Strategy) []domain.ArticleProfitability {
	order := make([]string, 0)
	byArticle := make(map[string]*domain.ArticleProfitability)
	logistics, storage := 0.0, 0.0

	for _, r := range records {
		if r.IsPromotionService() {
			continue
		}

		logistics += r.DeliveryRub
		storage += r.StorageFee

		if r.SaName == "" {
			continue
		}

		item, ok := byArticle[r.SaName]
		if !ok {
			item = &domain.ArticleProfitability{Article: r.SaName, NmID: r.NmID}
			byArticle[r.SaName] = item
			order = append(order, r.SaName)
		}

		item.Revenue += r.RetailPriceWithDisc
		item.Units += r.Quantity
		item.Commission += r.PlatformFee()
	}

	shares := make([]allocating.Share, 0, len(order))
	for _, article := range order {
		shares = append(shares, allocating.Share{Key: article, Weight: byArticle[article].Revenue})
	}

	logisticsShares := strategy.Allocate(logistics, shares)
	storageShares := strategy.Allocate(storage, shares)

	result := make([]domain.ArticleProfitability, 0, len(order))
	for _, article := range order {
		item := byArticle[article]
		item.Logistics = logisticsShares[article]
		item.Storage = storageShares[article]
		item.CostOfGoods = costs[article] * item.Units
		item.Profit = item.Revenue - (item.Commission + item.Logistics + item.Storage + item.CostOfGoods)
		if item.Revenue != 0 {
			item.Profitability = item.Profit / item.Revenue * 100
		}
		item.Level = domain.LevelFor(item.Profitability).Code
		result = append(result, *item)
	}

	return result
}

// TopProducts ordena os artigos pelo lucro da janela móvel e retorna os primeiros
func (s *Service) TopProducts(ctx context.Context, shopID int64) ([]domain.TopProduct, error) {
	records, costs, err := s.windowRecords(ctx, shopID)
	if err != nil {
		return nil, err
	}

	return topProducts(records, costs, s.cfg.TopProducts), nil
}

func topProducts(records []domain.LedgerRecord, costs map[string]float64, limit int) []domain.TopProduct {
	if len(records) == 0 {
		return []domain.TopProduct{}
	}

	// custos de logística e armazenagem de cada linha são diluídos pelo total de linhas do relatório
	lines := float64(len(records))
	byArticle := make(map[string]*domain.ArticleProfitability)
	articles := make([]string, 0)

	for _, r := range records {
		if r.SaName == "" {
			continue
		}

		item, ok := byArticle[r.SaName]
		if !ok {
			item = &domain.ArticleProfitability{Article: r.SaName, NmID: r.NmID}
			byArticle[r.SaName] = item
			articles = append(articles, r.SaName)
		}

		revenue := r.RetailPriceWithDisc * r.Quantity
		commission := r.PlatformFee()
		logistics := r.DeliveryRub / lines * r.Quantity
		storage := r.StorageFee / lines * r.Quantity
		cost := costs[r.SaName] * r.Quantity

		item.Revenue += revenue
		item.Units += r.Quantity
		item.Commission += commission
		item.Logistics += logistics
		item.Storage += storage
		item.CostOfGoods += cost
		item.Profit += revenue - (cost + commission + logistics + storage)
	}

	sort.SliceStable(articles, func(i, j int) bool {
		return byArticle[articles[i]].Profit > byArticle[articles[j]].Profit
	})

	if len(articles) > limit {
		articles = articles[:limit]
	}

	top := make([]domain.TopProduct, 0, len(articles))
	for i, article := range articles {
		item := byArticle[article]
		if item.Revenue != 0 {
			item.Profitability = item.Profit / item.Revenue * 100
		}
		item.Level = domain.LevelFor(item.Profitability).Code
		top = append(top, domain.TopProduct{Position: i + 1, Product: *item})
	}

	return top
}

// ParseWhatIfInput lê "preço, custo" ou "preço custo"
func ParseWhatIfInput(input string) (price, cost decimal.Decimal, err error) {
	input = strings.TrimSpace(input)

	var parts []string
	if strings.Contains(input, ",") {
		parts = strings.Split(input, ",")
	} else {
		parts = strings.Fields(input)
	}

	if len(parts) != 2 {
		return decimal.Zero, decimal.Zero, ErrInvalidWhatIfInput
	}

	price, err = decimal.NewFromString(strings.TrimSpace(parts[0]))
	if err != nil {
		return decimal.Zero, decimal.Zero, ErrInvalidWhatIfInput
	}

	cost, err = decimal.NewFromString(strings.TrimSpace(parts[1]))
	if err != nil {
		return decimal.Zero, decimal.Zero, ErrInvalidWhatIfInput
	}

	return price, cost, nil
}

// WhatIf projeta receita e lucro do artigo com novo preço e novo custo, mantendo as unidades da janela móvel
func (s *Service) WhatIf(ctx context.Context, shopID int64, article, input string) (*domain.WhatIfResult, error) {
	newPrice, newCost, err := ParseWhatIfInput(input)
	if err != nil {
		return nil, NewAnalyticsError(ErrInvalidWhatIfInput, apiErrors.ErrInvalidWhatIfInput, shopID, "")
	}

	records, costs, err := s.windowRecords(ctx, shopID)
	if err != nil {
		return nil, err
	}

	result, ok := whatIf(records, article, costs[article], newPrice, newCost)
	if !ok {
		return nil, NewAnalyticsError(ErrArticleNotFound, apiErrors.ErrMissingRequiredData, shopID, article)
	}

	return result, nil
}

func whatIf(records []domain.LedgerRecord, article string, currentCost float64, newPrice, newCost decimal.Decimal) (*domain.WhatIfResult, bool) {
	units, revenue, commission := decimal.Zero, decimal.Zero, decimal.Zero
	found := false

	for _, r := range records {
		if r.SaName != article {
			continue
		}
		found = true
		units = units.Add(decimal.NewFromFloat(r.Quantity))
		revenue = revenue.Add(decimal.NewFromFloat(r.RetailPriceWithDisc))
		commission = commission.Add(decimal.NewFromFloat(r.PlatformFee()))
	}

	if !found {
		return nil, false
	}

	cost := decimal.NewFromFloat(currentCost)
	currentProfit := revenue.Sub(commission).Sub(cost.Mul(units))
	forecastRevenue := newPrice.Mul(units)
	forecastProfit := forecastRevenue.Sub(commission).Sub(newCost.Mul(units))

	result := &domain.WhatIfResult{
		Article:           article,
		Units:             units.InexactFloat64(),
		CurrentCost:       currentCost,
		NewPrice:          newPrice.InexactFloat64(),
		NewCost:           newCost.InexactFloat64(),
		CurrentRevenue:    revenue.Round(2).InexactFloat64(),
		CurrentProfit:     currentProfit.Round(2).InexactFloat64(),
		ForecastRevenue:   forecastRevenue.Round(2).InexactFloat64(),
		ForecastProfit:    forecastProfit.Round(2).InexactFloat64(),
		RevenueDelta:      forecastRevenue.Sub(revenue).Round(2).InexactFloat64(),
		ProfitDelta:       forecastProfit.Sub(currentProfit).Round(2).InexactFloat64(),
		RevenueDeltaPct:   percentChange(forecastRevenue, revenue),
		ProfitDeltaPct:    percentChange(forecastProfit, currentProfit),
	}

	if !units.IsZero() {
		result.CurrentPrice = revenue.Div(units).Round(2).InexactFloat64()
	}
	if !forecastRevenue.IsZero() {
		result.ForecastMarginPct = forecastProfit.Div(forecastRevenue).Mul(decimal.NewFromInt(100)).Round(2).InexactFloat64()
	}

	return result, true
}

// percentChange retorna (novo/atual - 1) * 100, ou zero quando o valor atual é zero
func percentChange(next, current decimal.Decimal) float64 {
	if current.IsZero() {
		return 0
	}
	return next.Div(current).Sub(decimal.NewFromInt(1)).Mul(decimal.NewFromInt(100)).Round(2).InexactFloat64()
}

package aggregating

import (
	"sort"
	"time"

	"github.com/vfg2006/seller-pnl-api/internal/domain"
	"github.com/vfg2006/seller-pnl-api/internal/usecases/period"
)

// Input reúne tudo o que o cálculo precisa. Nenhum dado é buscado durante a agregação.
type Input struct {
	ShopID  int64
	Period  domain.Period
	Records []domain.LedgerRecord
	// Orders é o feed local de pedidos: resolve nm_id para o artigo do vendedor
	// e, quando IncludeCurrentWeek está ativo, complementa a semana corrente.
	Orders             []domain.OrderRecord
	Config             domain.ShopConfiguration
	IncludeCurrentWeek bool
	Now                time.Time
}

// Aggregate calcula o resultado financeiro da loja no período em uma única passada pelo relatório
func Aggregate(in Input) domain.ShopMetricsResult {
	result := domain.ShopMetricsResult{
		ShopID: in.ShopID,
		Period: in.Period,
	}

	units := make(map[int64]float64)
	ledgerArticles := make(map[int64]string)

	for _, r := range in.Records {
		if r.IsPromotionService() {
			continue
		}

		result.Revenue += r.RetailPriceWithDisc * r.Quantity
		result.Commission += r.RetailPriceWithDisc - r.PpvzForPay - r.PpvzReward - r.PpvzSalesCommission
		result.Reward += r.PpvzReward
		result.Logistics += r.DeliveryRub
		result.Storage += r.StorageFee
		result.Deduction += r.Deduction

		if r.HasArticle() {
			units[r.NmID] += r.Quantity
			if _, ok := ledgerArticles[r.NmID]; !ok && r.SaName != "" {
				ledgerArticles[r.NmID] = r.SaName
			}
		}
	}

	if in.IncludeCurrentWeek {
		weekStart := period.WeekStart(in.Now)
		for _, o := range in.Orders {
			if !o.Counts() || o.Date.Before(weekStart) {
				continue
			}
			result.Revenue += o.PriceWithDisc
			result.Commission += o.Profit()
			units[o.NmID]++
		}
	}

	for _, u := range units {
		result.UnitsSold += u
	}

	result.CostOfGoods, result.MissingCostArticles = costOfGoods(units, in.Orders, ledgerArticles, in.Config.CostByArticle())

	result.Tax = result.Revenue * in.Config.TaxSetting.Rate()

	days := in.Period.Days()
	for _, e := range in.Config.RegularExpenses {
		result.RegularExpenses += e.ProratedAmount(days)
	}

	for _, ad := range in.Config.Advertisements {
		if in.Period.Contains(ad.Date) {
			result.Advertising += ad.Amount
		}
	}

	for _, p := range in.Config.Penalties {
		if in.Period.Contains(p.Date) {
			result.Penalties += p.Sum
		}
	}

	result.NetProfit = result.Revenue - result.TotalCosts()
	if result.Revenue > 0 {
		result.Profitability = result.NetProfit / result.Revenue * 100
	}

	return result
}

// ArticleIndex resolve nm_id para o artigo do vendedor pelo primeiro pedido que o contém
func ArticleIndex(orders []domain.OrderRecord) map[int64]string {
	index := make(map[int64]string)
	for _, o := range orders {
		if o.SupplierArticle == "" {
			continue
		}
		if _, ok := index[o.NmID]; !ok {
			index[o.NmID] = o.SupplierArticle
		}
	}
	return index
}

func costOfGoods(units map[int64]float64, orders []domain.OrderRecord, ledgerArticles map[int64]string, costs map[string]float64) (float64, []int64) {
	fromOrders := ArticleIndex(orders)

	total := 0.0
	var missing []int64

	for nmID, qty := range units {
		article, ok := fromOrders[nmID]
		if !ok {
			article, ok = ledgerArticles[nmID]
		}

		cost, hasCost := costs[article]
		if !ok || !hasCost {
			missing = append(missing, nmID)
			continue
		}

		total += cost * qty
	}

	sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })

	return total, missing
}

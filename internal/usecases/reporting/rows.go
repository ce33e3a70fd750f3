package reporting

import (
	"math"

	"github.com/vfg2006/seller-pnl-api/internal/domain"
	"github.com/vfg2006/seller-pnl-api/internal/usecases/allocating"
)

// RowsInput reúne os dados do relatório por artigo
type RowsInput struct {
	Records []domain.LedgerRecord
	// WeekOrders são os pedidos comprados da semana corrente, ainda fora do relatório financeiro
	WeekOrders      []domain.OrderRecord
	Costs           map[string]float64
	RegularExpenses float64
	TaxRate         float64
	// Advertising e Penalties são indexados por nm_id
	Advertising map[int64]float64
	Penalties   map[int64]float64
	Strategy    allocating.Strategy
}

// BuildArticleRows monta uma linha por artigo, na ordem em que cada artigo aparece
func BuildArticleRows(in RowsInput) []domain.ArticleReportRow {
	buckets := make([]*domain.ArticleReportRow, 0)
	byArticle := make(map[string]*domain.ArticleReportRow)

	findByNmID := func(nmID int64) *domain.ArticleReportRow {
		for _, b := range buckets {
			if b.NmID == nmID {
				return b
			}
		}
		return nil
	}

	add := func(article, name string, nmID int64) *domain.ArticleReportRow {
		b := &domain.ArticleReportRow{Name: name, Article: article, NmID: nmID}
		buckets = append(buckets, b)
		byArticle[article] = b
		return b
	}

	for _, r := range in.Records {
		var row *domain.ArticleReportRow

		if r.SaName != "" {
			row = byArticle[r.SaName]
			if row == nil {
				row = add(r.SaName, r.SubjectName, r.NmID)
			}
		} else if r.HasArticle() {
			row = findByNmID(r.NmID)
		}

		if row == nil {
			continue
		}

		switch r.DocType() {
		case domain.DocTypeSale:
			row.Sales += r.Quantity
			row.SalesValue += r.RetailPriceWithDisc * r.Quantity
		case domain.DocTypeReturn:
			row.Returns += r.Quantity
			row.ReturnsValue += r.RetailPriceWithDisc
		case domain.DocTypeCancellation:
			row.Cancellations += r.Quantity
		}

		row.Deduction += r.Deduction
		row.Commission += r.RetailPriceWithDisc - r.PpvzForPay - r.PpvzReward - r.PpvzSalesCommission
		row.Logistics += r.DeliveryRub
		row.Storage += r.StorageFee
		row.Orders += r.Quantity
	}

	for _, o := range in.WeekOrders {
		if !o.Counts() {
			continue
		}
		row := byArticle[o.SupplierArticle]
		if row == nil {
			row = add(o.SupplierArticle, o.SupplierArticle, o.NmID)
		}
		row.SalesValue += o.PriceWithDisc
		row.Sales++
		row.Orders++
		row.Commission += o.Profit()
	}

	if len(buckets) == 0 {
		return []domain.ArticleReportRow{}
	}

	shares := make([]allocating.Share, len(buckets))
	for i, b := range buckets {
		shares[i] = allocating.Share{Key: b.Article, Weight: b.SalesValue - b.ReturnsValue}
	}

	strategy := in.Strategy
	if strategy == nil {
		strategy = allocating.NewEqualSplit()
	}

	adjustments := allocating.ReconcileUnattributed(in.Records, shares, strategy)
	regularShare := in.RegularExpenses / float64(len(buckets))

	rows := make([]domain.ArticleReportRow, 0, len(buckets))
	for _, b := range buckets {
		row := *b

		adj := adjustments[row.Article]
		row.Commission += adj.Commission
		row.Deduction += adj.Deduction
		row.Storage += adj.Storage
		row.RegularShare = regularShare

		finishRow(&row, in)
		rows = append(rows, row)
	}

	return rows
}

func finishRow(row *domain.ArticleReportRow, in RowsInput) {
	row.Revenue = row.SalesValue - row.ReturnsValue
	row.UnitsSold = row.Sales - row.Returns
	row.BuyoutRate = ratio(row.UnitsSold, row.Orders)

	row.CommissionPercent = ratio(row.Commission, row.Revenue)
	row.LogisticsPerUnit = ratio(row.Logistics, row.UnitsSold)
	row.LogisticsPercent = ratio(row.Logistics, row.Revenue)

	// ReturnShipping fica zerado enquanto o relatório não discrimina a logística reversa
	row.TotalDeductions = row.Commission + row.Logistics + row.ReturnShipping + row.Storage + row.Deduction
	row.TotalDeductionsPercent = ratio(row.TotalDeductions, row.Revenue)

	row.Tax = row.Revenue * in.TaxRate
	row.CostOfGoods = in.Costs[row.Article] * row.UnitsSold

	row.ProfitWithoutAds = row.Revenue -
		math.Abs(row.CostOfGoods) -
		math.Abs(row.TotalDeductions) -
		math.Abs(row.Tax) -
		math.Abs(row.RegularShare)

	row.Advertising = in.Advertising[row.NmID]
	penalty := in.Penalties[row.NmID]

	row.ProfitWithAds = row.ProfitWithoutAds - math.Abs(row.Advertising) - math.Abs(penalty)
	row.OtherDeductions = row.Deduction

	if row.CostOfGoods != 0 {
		row.CostRelativeProfitRatio = row.ProfitWithoutAds / row.CostOfGoods * 100
	}
}

func ratio(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

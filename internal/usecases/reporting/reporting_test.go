package reporting

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/seller-pnl-api/internal/domain"
	"github.com/vfg2006/seller-pnl-api/internal/usecases/allocating"
	"github.com/xuri/excelize/v2"
)

func sampleRecords() []domain.LedgerRecord {
	return []domain.LedgerRecord{
		{NmID: 1, SaName: "A", SubjectName: "Camiseta", Srid: "s1", DocTypeName: "Продажа", Quantity: 2, RetailPriceWithDisc: 500, PpvzForPay: 450, DeliveryRub: 30},
		{NmID: 2, SaName: "B", SubjectName: "Caneca", Srid: "s2", DocTypeName: "Продажа", Quantity: 1, RetailPriceWithDisc: 200, PpvzForPay: 170, DeliveryRub: 10},
		{NmID: 2, SaName: "B", SubjectName: "Caneca", Srid: "s3", DocTypeName: "Возврат", Quantity: 1, RetailPriceWithDisc: 200, PpvzForPay: 200},
		{NmID: 1, SubjectName: "Camiseta", DocTypeName: "Отмена", Quantity: 1},
		{NmID: 0, Srid: "s1", PpvzReward: 6, Deduction: 40, StorageFee: 20},
		{NmID: 0, BonusTypeName: domain.PromotionServiceBonusType, Deduction: 999},
		{NmID: 77, SubjectName: "sem artigo", Quantity: 5, RetailPriceWithDisc: 1},
	}
}

func TestBuildArticleRows(t *testing.T) {
	rows := BuildArticleRows(RowsInput{
		Records: sampleRecords(),
		WeekOrders: []domain.OrderRecord{
			{NmID: 3, SupplierArticle: "C", PriceWithDisc: 300, ForPay: 260, IsBought: true},
			{NmID: 3, SupplierArticle: "C", PriceWithDisc: 300, ForPay: 260, IsBought: true, IsCancel: true},
		},
		Costs:           map[string]float64{"A": 100},
		RegularExpenses: 90,
		TaxRate:         0.06,
		Advertising:     map[int64]float64{1: 50},
		Penalties:       map[int64]float64{1: 10},
		Strategy:        allocating.NewEqualSplit(),
	})

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"A", "B", "C"}, []string{rows[0].Article, rows[1].Article, rows[2].Article})

	a := rows[0]
	assert.Equal(t, "Camiseta", a.Name)
	assert.InDelta(t, 2, a.Sales, 1e-9)
	assert.InDelta(t, 1, a.Cancellations, 1e-9)
	assert.InDelta(t, 3, a.Orders, 1e-9)
	assert.InDelta(t, 1000, a.Revenue, 1e-9)
	assert.InDelta(t, 50-6, a.Commission, 1e-9)
	assert.InDelta(t, 40.0/3, a.Deduction, 1e-9)
	assert.InDelta(t, 20.0/3, a.Storage, 1e-9)
	assert.InDelta(t, 30, a.RegularShare, 1e-9)
	assert.InDelta(t, 200, a.CostOfGoods, 1e-9)
	assert.InDelta(t, 60, a.Tax, 1e-9)
	assert.InDelta(t, 2.0/3, a.BuyoutRate, 1e-9)

	totalDeductions := 44 + 30 + 20.0/3 + 40.0/3
	assert.InDelta(t, totalDeductions, a.TotalDeductions, 1e-9)
	assert.InDelta(t, 1000-200-totalDeductions-60-30, a.ProfitWithoutAds, 1e-9)
	assert.InDelta(t, a.ProfitWithoutAds-50-10, a.ProfitWithAds, 1e-9)
	assert.InDelta(t, a.ProfitWithoutAds/200*100, a.CostRelativeProfitRatio, 1e-9)
	assert.Equal(t, a.Deduction, a.OtherDeductions)

	b := rows[1]
	assert.InDelta(t, 0, b.Revenue, 1e-9)
	assert.InDelta(t, 0, b.UnitsSold, 1e-9)
	assert.Equal(t, 0.0, b.CommissionPercent)
	assert.Equal(t, 0.0, b.CostRelativeProfitRatio)

	c := rows[2]
	assert.Equal(t, "C", c.Name)
	assert.InDelta(t, 300, c.SalesValue, 1e-9)
	assert.InDelta(t, 1, c.Sales, 1e-9)
	assert.InDelta(t, 40, c.Commission, 1e-9)
}

func TestBuildArticleRows_Empty(t *testing.T) {
	rows := BuildArticleRows(RowsInput{})
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestColumnFormat(t *testing.T) {
	tests := []struct {
		col    int
		format string
	}{
		{1, formatInteger},
		{3, formatInteger},
		{7, formatMoney},
		{10, formatInteger},
		{11, formatPercent},
		{12, formatMoney},
		{13, formatPercent},
		{16, formatPercent},
		{18, formatPercent},
		{24, formatMoney},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.format, columnFormat(tt.col), "coluna %d", tt.col)
	}
}

func TestRenderWorkbook(t *testing.T) {
	rows := BuildArticleRows(RowsInput{Records: sampleRecords(), Costs: map[string]float64{"A": 100}})

	data, err := RenderWorkbook(rows)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue(ReportSheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Nome", header)

	last, err := f.GetCellValue(ReportSheetName, "X1")
	require.NoError(t, err)
	assert.Equal(t, "Rentabilidade CPM", last)

	article, err := f.GetCellValue(ReportSheetName, "B2")
	require.NoError(t, err)
	assert.Equal(t, "A", article)

	panes, err := f.GetPanes(ReportSheetName)
	require.NoError(t, err)
	assert.True(t, panes.Freeze)
	assert.Equal(t, "A2", panes.TopLeftCell)

	assert.Len(t, ReportHeaders, 24)
}

func TestFormatSummary(t *testing.T) {
	roi := 25.0
	result := domain.ShopMetricsResult{
		Period: domain.Period{
			Start: time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC),
		},
		Revenue:       1000,
		Commission:    50,
		Logistics:     20,
		Storage:       10,
		NetProfit:     920,
		Profitability: 92,
		Payback:       &domain.Payback{Status: domain.PaybackRecouped, Months: 7, Investment: 1000},
		ROI:           &roi,
	}

	text := FormatSummary("Loja Centro", result, &domain.ShopMetricsResult{NetProfit: 500})

	assert.True(t, strings.HasPrefix(text, "Loja Centro\n"))
	assert.Contains(t, text, "13/01/2025 - 16/01/2025")
	assert.Contains(t, text, "1.000,00 rub")
	assert.Contains(t, text, "▲")
	assert.Contains(t, text, "7 meses")
	assert.Contains(t, text, "25,0%")
}

func TestRenderWorkbook_CustosEmModulo(t *testing.T) {
	rows := []domain.ArticleReportRow{{
		Article:         "A",
		Commission:      -120,
		OtherDeductions: -35,
		Advertising:     -10,
		ProfitWithAds:   -50,
	}}

	data, err := RenderWorkbook(rows)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	tests := []struct {
		cell string
		want string
	}{
		{"L2", "120"},
		{"U2", "10"},
		{"V2", "35"},
		{"W2", "-50"},
	}

	for _, tt := range tests {
		value, err := f.GetCellValue(ReportSheetName, tt.cell, excelize.Options{RawCellValue: true})
		require.NoError(t, err)
		assert.Equal(t, tt.want, value, "célula %s", tt.cell)
	}
}

func TestFormatSummary_CustosNegativos(t *testing.T) {
	result := domain.ShopMetricsResult{
		Revenue:    1000,
		Commission: -50,
		Storage:    -10,
		Deduction:  -30,
		NetProfit:  -40,
	}

	text := FormatSummary("Loja Centro", result, nil)

	assert.Contains(t, text, "- Comissões: 50,00 rub (5,0%)")
	assert.Contains(t, text, "- Armazenagem: 10,00 rub (1,0%)")
	assert.Contains(t, text, "- Outras retenções: 30,00 rub (3,0%)")
	assert.Contains(t, text, "Lucro líquido: -40,00 rub")
}

func TestPaybackLabel(t *testing.T) {
	assert.Equal(t, "não determinado", PaybackLabel(nil))
	assert.Equal(t, "mais de 120 meses", PaybackLabel(&domain.Payback{Status: domain.PaybackBeyondHorizon}))
	assert.Equal(t, "4,0 meses (estimativa)", PaybackLabel(&domain.Payback{Status: domain.PaybackEstimated, Estimated: 4}))
}

func TestRenderSummaryPDF(t *testing.T) {
	data, err := RenderSummaryPDF("Loja Centro", domain.ShopMetricsResult{Revenue: 1000, NetProfit: 920})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

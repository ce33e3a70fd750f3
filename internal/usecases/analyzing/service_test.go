package analyzing

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/seller-pnl-api/infrastructure/repository/mocks"
	"github.com/vfg2006/seller-pnl-api/internal/config"
	"github.com/vfg2006/seller-pnl-api/internal/domain"
	"github.com/vfg2006/seller-pnl-api/internal/usecases/allocating"
	"github.com/vfg2006/seller-pnl-api/internal/usecases/ledger"
	"github.com/vfg2006/seller-pnl-api/internal/usecases/period"
	"github.com/vfg2006/seller-pnl-api/pkg/apiErrors"
)

var fixedNow = time.Date(2025, 3, 12, 12, 0, 0, 0, time.Local)

type serviceMocks struct {
	shops   *mocks.MockShopRepository
	orders  *mocks.MockOrderRepository
	configs *mocks.MockShopConfigRepository
	cache   *mocks.MockLedgerCacheRepository
}

func newTestService(t *testing.T) (*Service, serviceMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := serviceMocks{
		shops:   mocks.NewMockShopRepository(ctrl),
		orders:  mocks.NewMockOrderRepository(ctrl),
		configs: mocks.NewMockShopConfigRepository(ctrl),
		cache:   mocks.NewMockLedgerCacheRepository(ctrl),
	}

	svc := NewService(
		m.shops,
		m.orders,
		m.configs,
		ledger.NewAccessor(m.cache),
		allocating.DefaultRegistry(),
		config.Analytics{AllocationStrategy: allocating.EqualSplitName},
	).WithClock(func() time.Time { return fixedNow })

	return svc, m
}

func expectShop(m serviceMocks) {
	m.shops.EXPECT().GetShopByID(int64(1)).Return(&domain.Shop{ID: 1, Name: "Loja Teste"}, nil).AnyTimes()
}

func expectEmptyConfiguration(m serviceMocks) {
	m.configs.EXPECT().ListProductCosts(int64(1)).Return([]domain.ProductCost{}, nil).AnyTimes()
	m.configs.EXPECT().ListRegularExpenses(int64(1)).Return([]domain.RegularExpense{}, nil).AnyTimes()
	m.configs.EXPECT().ListOneTimeExpenses(int64(1)).Return([]domain.OneTimeExpense{}, nil).AnyTimes()
	m.configs.EXPECT().ListAdvertisements(int64(1), gomock.Any(), gomock.Any()).Return([]domain.Advertisement{}, nil).AnyTimes()
	m.configs.EXPECT().ListPenalties(int64(1), gomock.Any(), gomock.Any()).Return([]domain.Penalty{}, nil).AnyTimes()
	m.configs.EXPECT().GetTaxSetting(int64(1)).Return(nil, nil).AnyTimes()
}

func snapshot(partition domain.LedgerPartition, records ...domain.LedgerRecord) *domain.LedgerSnapshot {
	return &domain.LedgerSnapshot{
		ShopID:  1,
		Records: map[domain.LedgerPartition][]domain.LedgerRecord{partition: records},
	}
}

func saleDate(t time.Time) string {
	return t.Format("2006-01-02T15:04:05")
}

func TestService_ShopMetrics(t *testing.T) {
	tests := []struct {
		name     string
		req      period.Request
		setup    func(m serviceMocks)
		validate func(t *testing.T, result *domain.ShopMetricsResult, err error)
	}{
		{
			name: "Mês com uma venda e sem custos locais",
			req:  period.Request{Kind: domain.PeriodMonth},
			setup: func(m serviceMocks) {
				expectShop(m)
				expectEmptyConfiguration(m)
				m.cache.EXPECT().GetPartition(int64(1), domain.PartitionMonth).
					Return(snapshot(domain.PartitionMonth, domain.LedgerRecord{
						NmID: 10, SaName: "A", Quantity: 1, RetailPriceWithDisc: 1000, PpvzForPay: 920,
					}), nil)
				m.orders.EXPECT().ListPurchased(int64(1)).Return(nil, nil)
			},
			validate: func(t *testing.T, result *domain.ShopMetricsResult, err error) {
				require.NoError(t, err)
				assert.InDelta(t, 1000, result.Revenue, 0.001)
				assert.InDelta(t, 80, result.Commission, 0.001)
				assert.InDelta(t, 920, result.NetProfit, 0.001)
				assert.InDelta(t, 92, result.Profitability, 0.001)
				require.NotNil(t, result.Payback)
				assert.Equal(t, domain.PaybackUndetermined, result.Payback.Status)
				assert.Nil(t, result.ROI)
			},
		},
		{
			name: "Investimento com histórico de pedidos gera previsão e ROI",
			req:  period.Request{Kind: domain.PeriodMonth},
			setup: func(m serviceMocks) {
				expectShop(m)
				m.configs.EXPECT().ListProductCosts(int64(1)).Return(nil, nil)
				m.configs.EXPECT().ListRegularExpenses(int64(1)).Return(nil, nil)
				m.configs.EXPECT().ListOneTimeExpenses(int64(1)).Return([]domain.OneTimeExpense{{Amount: 1000}}, nil)
				m.configs.EXPECT().ListAdvertisements(int64(1), gomock.Any(), gomock.Any()).Return(nil, nil)
				m.configs.EXPECT().ListPenalties(int64(1), gomock.Any(), gomock.Any()).Return(nil, nil)
				m.configs.EXPECT().GetTaxSetting(int64(1)).Return(nil, nil)
				m.cache.EXPECT().GetPartition(int64(1), domain.PartitionMonth).
					Return(snapshot(domain.PartitionMonth, domain.LedgerRecord{
						NmID: 10, Quantity: 1, RetailPriceWithDisc: 1000, PpvzForPay: 720, PpvzSalesCommission: 0,
					}), nil)
				m.orders.EXPECT().ListPurchased(int64(1)).Return([]domain.OrderRecord{
					{NmID: 10, PriceWithDisc: 100, IsBought: true, Date: time.Date(2024, 10, 5, 0, 0, 0, 0, time.Local)},
					{NmID: 10, PriceWithDisc: 120, IsBought: true, Date: time.Date(2024, 11, 5, 0, 0, 0, 0, time.Local)},
					{NmID: 10, PriceWithDisc: 140, IsBought: true, Date: time.Date(2024, 12, 5, 0, 0, 0, 0, time.Local)},
				}, nil)
			},
			validate: func(t *testing.T, result *domain.ShopMetricsResult, err error) {
				require.NoError(t, err)
				assert.InDelta(t, 720, result.NetProfit, 0.001)
				require.NotNil(t, result.Payback)
				assert.Equal(t, domain.PaybackRecouped, result.Payback.Status)
				assert.Equal(t, 7, result.Payback.Months)
				require.NotNil(t, result.ROI)
				assert.InDelta(t, 72, *result.ROI, 0.001)
			},
		},
		{
			name: "Cache ainda não gerado",
			req:  period.Request{Kind: domain.PeriodWeek},
			setup: func(m serviceMocks) {
				expectShop(m)
				m.cache.EXPECT().GetPartition(int64(1), domain.PartitionWeek).Return(nil, nil)
			},
			validate: func(t *testing.T, result *domain.ShopMetricsResult, err error) {
				require.Error(t, err)
				assert.Nil(t, result)
				assert.True(t, errors.Is(err, ledger.ErrCacheNotWarmed))

				var analyticsErr *AnalyticsError
				require.True(t, errors.As(err, &analyticsErr))
				assert.Equal(t, apiErrors.ErrCacheNotWarmed, analyticsErr.Code)
			},
		},
		{
			name: "Loja inexistente",
			req:  period.Request{Kind: domain.PeriodMonth},
			setup: func(m serviceMocks) {
				m.shops.EXPECT().GetShopByID(int64(1)).Return(nil, nil)
			},
			validate: func(t *testing.T, result *domain.ShopMetricsResult, err error) {
				var analyticsErr *AnalyticsError
				require.True(t, errors.As(err, &analyticsErr))
				assert.Equal(t, apiErrors.ErrShopNotFound, analyticsErr.Code)
				assert.ErrorIs(t, err, ErrShopNotFound)
			},
		},
		{
			name:  "Tipo de período desconhecido não consulta nada",
			req:   period.Request{Kind: domain.PeriodKind("quarter")},
			setup: func(m serviceMocks) {},
			validate: func(t *testing.T, result *domain.ShopMetricsResult, err error) {
				var analyticsErr *AnalyticsError
				require.True(t, errors.As(err, &analyticsErr))
				assert.Equal(t, apiErrors.ErrInvalidPeriod, analyticsErr.Code)
			},
		},
		{
			name: "Falha no banco ao carregar configuração",
			req:  period.Request{Kind: domain.PeriodYear},
			setup: func(m serviceMocks) {
				expectShop(m)
				m.cache.EXPECT().GetPartition(int64(1), domain.PartitionYear).Return(snapshot(domain.PartitionYear), nil)
				m.configs.EXPECT().ListProductCosts(int64(1)).Return(nil, errors.New("conexão perdida")).AnyTimes()
				m.configs.EXPECT().ListRegularExpenses(int64(1)).Return(nil, nil).AnyTimes()
				m.configs.EXPECT().ListOneTimeExpenses(int64(1)).Return(nil, nil).AnyTimes()
				m.configs.EXPECT().ListAdvertisements(int64(1), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
				m.configs.EXPECT().ListPenalties(int64(1), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
				m.configs.EXPECT().GetTaxSetting(int64(1)).Return(nil, nil).AnyTimes()
			},
			validate: func(t *testing.T, result *domain.ShopMetricsResult, err error) {
				assert.ErrorIs(t, err, ErrDatabaseOperation)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestService(t)
			tt.setup(m)

			result, err := svc.ShopMetrics(context.Background(), 1, tt.req)
			tt.validate(t, result, err)
		})
	}
}

func TestService_Summary(t *testing.T) {
	svc, m := newTestService(t)
	expectShop(m)
	expectEmptyConfiguration(m)
	m.cache.EXPECT().GetPartition(int64(1), domain.PartitionAll).
		Return(snapshot(domain.PartitionAll,
			domain.LedgerRecord{NmID: 1, Quantity: 1, RetailPriceWithDisc: 1000, PpvzForPay: 900, SaleDt: saleDate(fixedNow.Add(-time.Hour))},
			domain.LedgerRecord{NmID: 1, Quantity: 1, RetailPriceWithDisc: 500, PpvzForPay: 400, SaleDt: saleDate(fixedNow.AddDate(0, 0, -1))},
		), nil).Times(2)
	m.orders.EXPECT().ListPurchased(int64(1)).Return(nil, nil).Times(2)

	text, err := svc.Summary(context.Background(), 1, period.Request{Kind: domain.PeriodDay})
	require.NoError(t, err)
	assert.Contains(t, text, "Loja Teste")
	assert.Contains(t, text, "▲")
}

func TestService_ComparePrevious(t *testing.T) {
	sale := domain.LedgerRecord{
		NmID: 10, SaName: "A", Quantity: 1, RetailPriceWithDisc: 1000, PpvzForPay: 920,
		SaleDt: saleDate(fixedNow.Add(-time.Hour)),
	}
	februarySale := domain.LedgerRecord{
		NmID: 10, SaName: "A", Quantity: 1, RetailPriceWithDisc: 400, PpvzForPay: 380,
		SaleDt: saleDate(time.Date(2025, 2, 10, 10, 0, 0, 0, time.Local)),
	}

	tests := []struct {
		name     string
		all      []domain.LedgerRecord
		validate func(t *testing.T, result *domain.PeriodComparison)
	}{
		{
			name: "Mês anterior sem vendas não repete o mês corrente",
			all:  []domain.LedgerRecord{sale},
			validate: func(t *testing.T, result *domain.PeriodComparison) {
				assert.InDelta(t, 1000, result.Revenue.Current, 0.001)
				assert.InDelta(t, 0, result.Revenue.Previous, 0.001)
				assert.InDelta(t, 1000, result.Revenue.Delta, 0.001)
			},
		},
		{
			name: "Mês anterior lido da partição completa",
			all:  []domain.LedgerRecord{sale, februarySale},
			validate: func(t *testing.T, result *domain.PeriodComparison) {
				assert.InDelta(t, 400, result.Revenue.Previous, 0.001)
				assert.InDelta(t, 150, result.Revenue.Percent, 0.001)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestService(t)
			expectShop(m)
			expectEmptyConfiguration(m)
			m.cache.EXPECT().GetPartition(int64(1), domain.PartitionMonth).
				Return(snapshot(domain.PartitionMonth, sale), nil)
			m.cache.EXPECT().GetPartition(int64(1), domain.PartitionAll).
				Return(snapshot(domain.PartitionAll, tt.all...), nil)
			m.orders.EXPECT().ListPurchased(int64(1)).Return(nil, nil).AnyTimes()

			result, err := svc.ComparePrevious(context.Background(), 1, period.Request{Kind: domain.PeriodMonth})
			require.NoError(t, err)

			assert.Equal(t, domain.PeriodCustom, result.Previous.Kind)
			assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local), result.Previous.Start)
			tt.validate(t, result)
		})
	}
}

func TestService_ArticleReport(t *testing.T) {
	svc, m := newTestService(t)
	expectShop(m)
	expectEmptyConfiguration(m)
	m.cache.EXPECT().GetPartition(int64(1), domain.PartitionMonth).
		Return(snapshot(domain.PartitionMonth,
			domain.LedgerRecord{NmID: 1, SaName: "A", SubjectName: "Camisa", DocTypeName: "Продажа", Quantity: 1, RetailPriceWithDisc: 1000, PpvzForPay: 900},
		), nil)
	m.orders.EXPECT().ListPurchasedSince(int64(1), period.WeekStart(fixedNow)).Return(nil, nil)

	file, err := svc.ArticleReport(context.Background(), 1, period.Request{Kind: domain.PeriodMonth})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(file.Name, "analise_produtos_1_2025-03-12_"))
	assert.True(t, strings.HasSuffix(file.Name, ".xlsx"))
	assert.Equal(t, reportContentType, file.ContentType)
	assert.NotEmpty(t, file.Content)
}

func TestService_WhatIf_InvalidInput(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.WhatIf(context.Background(), 1, "A", "1500")

	var analyticsErr *AnalyticsError
	require.True(t, errors.As(err, &analyticsErr))
	assert.Equal(t, apiErrors.ErrInvalidWhatIfInput, analyticsErr.Code)
	assert.ErrorIs(t, err, ErrInvalidWhatIfInput)
}

func TestService_TopProducts(t *testing.T) {
	svc, m := newTestService(t)
	expectShop(m)
	m.cache.EXPECT().GetPartition(int64(1), domain.PartitionAll).
		Return(snapshot(domain.PartitionAll,
			domain.LedgerRecord{SaName: "A", Quantity: 1, RetailPriceWithDisc: 100, SaleDt: saleDate(fixedNow.AddDate(0, 0, -2))},
			domain.LedgerRecord{SaName: "B", Quantity: 1, RetailPriceWithDisc: 300, SaleDt: saleDate(fixedNow.AddDate(0, 0, -3))},
			domain.LedgerRecord{SaName: "C", Quantity: 1, RetailPriceWithDisc: 900, SaleDt: saleDate(fixedNow.AddDate(0, 0, -45))},
		), nil)
	m.configs.EXPECT().ListProductCosts(int64(1)).Return(nil, nil)

	top, err := svc.TopProducts(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "B", top[0].Product.Article)
	assert.Equal(t, 1, top[0].Position)
	assert.Equal(t, "A", top[1].Product.Article)
}

func TestArticleProfitability(t *testing.T) {
	records := []domain.LedgerRecord{
		{NmID: 1, SaName: "A", Quantity: 2, RetailPriceWithDisc: 600, PpvzSalesCommission: 60},
		{NmID: 2, SaName: "B", Quantity: 1, RetailPriceWithDisc: 400, PpvzSalesCommission: 40},
		{DeliveryRub: 100, StorageFee: 50},
		{SaName: "A", BonusTypeName: domain.PromotionServiceBonusType, DeliveryRub: 999},
	}

	result := articleProfitability(records, map[string]float64{"A": 100}, allocating.NewRevenueProportional())
	require.Len(t, result, 2)

	a, b := result[0], result[1]
	assert.Equal(t, "A", a.Article)
	assert.InDelta(t, 60, a.Logistics, 0.001)
	assert.InDelta(t, 30, a.Storage, 0.001)
	assert.InDelta(t, 200, a.CostOfGoods, 0.001)
	assert.InDelta(t, 250, a.Profit, 0.001)
	assert.Equal(t, "average", a.Level)

	assert.Equal(t, "B", b.Article)
	assert.InDelta(t, 40, b.Logistics, 0.001)
	assert.InDelta(t, 20, b.Storage, 0.001)
	assert.InDelta(t, 300, b.Profit, 0.001)
	assert.InDelta(t, 75, b.Profitability, 0.001)
	assert.Equal(t, "high", b.Level)

	assert.InDelta(t, 100, a.Logistics+b.Logistics, 0.001)
}

func TestTopProducts(t *testing.T) {
	records := []domain.LedgerRecord{
		{SaName: "A", Quantity: 2, RetailPriceWithDisc: 100, PpvzSalesCommission: 10, DeliveryRub: 20},
		{SaName: "B", Quantity: 1, RetailPriceWithDisc: 50, PpvzSalesCommission: 5},
	}

	tests := []struct {
		name     string
		limit    int
		expected []string
	}{
		{name: "Ordena pelo lucro", limit: 5, expected: []string{"A", "B"}},
		{name: "Respeita o limite", limit: 1, expected: []string{"A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			top := topProducts(records, map[string]float64{"A": 30}, tt.limit)

			articles := make([]string, 0, len(top))
			for _, p := range top {
				articles = append(articles, p.Product.Article)
			}
			assert.Equal(t, tt.expected, articles)
			assert.InDelta(t, 110, top[0].Product.Profit, 0.001)
		})
	}

	assert.Empty(t, topProducts(nil, nil, 5))
}

func TestParseWhatIfInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		price   string
		cost    string
		wantErr bool
	}{
		{name: "Separado por vírgula", input: "1500, 700", price: "1500", cost: "700"},
		{name: "Separado por espaço", input: " 1500   700 ", price: "1500", cost: "700"},
		{name: "Decimais com ponto", input: "1500.50,700.25", price: "1500.5", cost: "700.25"},
		{name: "Um único valor", input: "1500", wantErr: true},
		{name: "Três valores", input: "1,2,3", wantErr: true},
		{name: "Texto", input: "caro, barato", wantErr: true},
		{name: "Vazio", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, cost, err := ParseWhatIfInput(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidWhatIfInput)
				return
			}
			require.NoError(t, err)
			assert.True(t, price.Equal(decimal.RequireFromString(tt.price)))
			assert.True(t, cost.Equal(decimal.RequireFromString(tt.cost)))
		})
	}
}

func TestWhatIf(t *testing.T) {
	records := []domain.LedgerRecord{
		{SaName: "X", Quantity: 2, RetailPriceWithDisc: 1000, PpvzSalesCommission: 100},
		{SaName: "Y", Quantity: 5, RetailPriceWithDisc: 10},
	}

	result, ok := whatIf(records, "X", 300, decimal.NewFromInt(600), decimal.NewFromInt(250))
	require.True(t, ok)

	assert.InDelta(t, 2, result.Units, 0.001)
	assert.InDelta(t, 500, result.CurrentPrice, 0.001)
	assert.InDelta(t, 300, result.CurrentProfit, 0.001)
	assert.InDelta(t, 1200, result.ForecastRevenue, 0.001)
	assert.InDelta(t, 600, result.ForecastProfit, 0.001)
	assert.InDelta(t, 20, result.RevenueDeltaPct, 0.001)
	assert.InDelta(t, 100, result.ProfitDeltaPct, 0.001)
	assert.InDelta(t, 50, result.ForecastMarginPct, 0.001)

	_, ok = whatIf(records, "Z", 0, decimal.NewFromInt(1), decimal.NewFromInt(1))
	assert.False(t, ok)
}

func TestDelta(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		expected domain.MetricDelta
	}{
		{name: "Crescimento", current: 120, previous: 100, expected: domain.MetricDelta{Current: 120, Previous: 100, Delta: 20, Percent: 20}},
		{name: "Período anterior zerado", current: 50, previous: 0, expected: domain.MetricDelta{Current: 50, Delta: 50}},
		{name: "Prejuízo menor", current: -50, previous: -100, expected: domain.MetricDelta{Current: -50, Previous: -100, Delta: 50, Percent: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, delta(tt.current, tt.previous))
		})
	}
}

func TestYieldWindows(t *testing.T) {
	records := []domain.LedgerRecord{
		{RrdID: 1, SaleDt: saleDate(fixedNow.AddDate(0, 0, -1))},
		{RrdID: 2, SaleDt: saleDate(fixedNow.AddDate(0, 0, -40))},
		{RrdID: 3, SaleDt: saleDate(fixedNow.AddDate(0, 0, -100))},
	}

	windows := yieldWindows(records, fixedNow)
	require.Len(t, windows, 2)
	assert.Equal(t, int64(1), windows[0].records[0].RrdID)
	assert.Equal(t, int64(2), windows[1].records[0].RrdID)
	assert.True(t, windows[1].period.End.Before(windows[0].period.Start))
}

func TestAnnualYield(t *testing.T) {
	records := []domain.LedgerRecord{
		{NmID: 1, Quantity: 1, RetailPriceWithDisc: 500, PpvzForPay: 500, SaleDt: saleDate(fixedNow.AddDate(0, 0, -1))},
		{NmID: 1, Quantity: 1, RetailPriceWithDisc: 500, PpvzForPay: 500, SaleDt: saleDate(fixedNow.AddDate(0, 0, -35))},
	}
	windows := yieldWindows(records, fixedNow)
	covered := domain.Period{Kind: domain.PeriodCustom, Start: windows[len(windows)-1].period.Start, End: fixedNow}

	cfg := domain.ShopConfiguration{OneTimeExpenses: []domain.OneTimeExpense{{Amount: 1000}}}
	result := annualYield(1, windows, covered, cfg, nil, fixedNow)

	assert.Equal(t, 2, result.Months)
	require.Len(t, result.Windows, 2)
	assert.InDelta(t, 1000, result.Revenue, 0.001)
	assert.InDelta(t, 1000, result.NetProfit, 0.001)
	require.NotNil(t, result.Yield)
	assert.InDelta(t, 100, *result.Yield, 0.001)

	empty := annualYield(1, nil, covered, domain.ShopConfiguration{}, nil, fixedNow)
	assert.Equal(t, 0, empty.Months)
	assert.Nil(t, empty.Yield)
}

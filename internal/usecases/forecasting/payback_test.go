package forecasting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/seller-pnl-api/internal/domain"
)

func TestLinearFit(t *testing.T) {
	k, b := LinearFit([]float64{100, 120, 140})
	assert.InDelta(t, 20, k, 1e-9)
	assert.InDelta(t, 100, b, 1e-9)

	k, b = LinearFit([]float64{50})
	assert.Equal(t, 0.0, k)
	assert.Equal(t, 50.0, b)

	k, b = LinearFit(nil)
	assert.Equal(t, 0.0, k)
	assert.Equal(t, 0.0, b)
}

func TestForecast(t *testing.T) {
	tests := []struct {
		name       string
		history    []float64
		investment float64
		validate   func(t *testing.T, p domain.Payback)
	}{
		{
			name:       "Histórico crescente recupera 1000 em 7 meses",
			history:    []float64{100, 120, 140},
			investment: 1000,
			validate: func(t *testing.T, p domain.Payback) {
				assert.Equal(t, domain.PaybackRecouped, p.Status)
				assert.Equal(t, 7, p.Months)
				assert.InDelta(t, 20, p.Slope, 1e-9)
				assert.InDelta(t, 100, p.Intercept, 1e-9)
			},
		},
		{
			name:       "Investimento já recuperado pelo histórico",
			history:    []float64{500, 600},
			investment: 1000,
			validate: func(t *testing.T, p domain.Payback) {
				assert.Equal(t, domain.PaybackRecouped, p.Status)
				assert.Equal(t, 2, p.Months)
			},
		},
		{
			name:       "Tendência negativa não recupera dentro do horizonte",
			history:    []float64{100, 50, 0},
			investment: 1000,
			validate: func(t *testing.T, p domain.Payback) {
				assert.Equal(t, domain.PaybackBeyondHorizon, p.Status)
				assert.Equal(t, 0, p.Months)
			},
		},
		{
			name:       "Sem investimento é indeterminado",
			history:    []float64{100},
			investment: 0,
			validate: func(t *testing.T, p domain.Payback) {
				assert.Equal(t, domain.PaybackUndetermined, p.Status)
			},
		},
		{
			name:       "Sem histórico é indeterminado",
			history:    nil,
			investment: 1000,
			validate: func(t *testing.T, p domain.Payback) {
				assert.Equal(t, domain.PaybackUndetermined, p.Status)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, Forecast(tt.history, tt.investment))
		})
	}
}

func TestForecast_MonotonicInInvestment(t *testing.T) {
	history := []float64{80, 95, 70, 110, 120}

	previous := 0
	for investment := 100.0; investment <= 20000; investment += 250 {
		p := Forecast(history, investment)
		if p.Status != domain.PaybackRecouped {
			assert.Equal(t, domain.PaybackBeyondHorizon, p.Status)
			continue
		}
		require.GreaterOrEqual(t, p.Months, previous, "investimento %.0f", investment)
		require.LessOrEqual(t, p.Months, MaxForecastMonths)
		previous = p.Months
	}
}

func TestMonthlyProfit(t *testing.T) {
	orders := []domain.OrderRecord{
		{PriceWithDisc: 100, ForPay: 80, IsBought: true, Date: time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)},
		{PriceWithDisc: 100, ForPay: 70, IsBought: true, Date: time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)},
		{PriceWithDisc: 100, ForPay: 90, IsBought: true, Date: time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)},
		{PriceWithDisc: 999, ForPay: 0, IsBought: true, IsCancel: true, Date: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)},
		{PriceWithDisc: 999, ForPay: 0, IsBought: false, Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
	}

	months := MonthlyProfit(orders)

	require.Len(t, months, 2)
	assert.Equal(t, "2025-01", months[0].Month)
	assert.InDelta(t, 30, months[0].Profit, 1e-9)
	assert.Equal(t, "2025-02", months[1].Month)
	assert.InDelta(t, 30, months[1].Profit, 1e-9)
	assert.Equal(t, []float64{30, 30}, History(months))
}

func TestEstimateFromNet(t *testing.T) {
	p := EstimateFromNet(250, 1000)
	assert.Equal(t, domain.PaybackEstimated, p.Status)
	assert.InDelta(t, 4, p.Estimated, 1e-9)

	assert.Equal(t, domain.PaybackUndetermined, EstimateFromNet(-10, 1000).Status)
}

func TestROI(t *testing.T) {
	roi, ok := ROI(250, 1000)
	assert.True(t, ok)
	assert.InDelta(t, 25, roi, 1e-9)

	_, ok = ROI(250, 0)
	assert.False(t, ok)
}

package forecasting

import (
	"math"
	"sort"

	"github.com/vfg2006/seller-pnl-api/internal/domain"
)

// MaxForecastMonths limita a projeção de retorno do investimento
const MaxForecastMonths = 120

const monthLayout = "2006-01"

// MonthlyProfit agrupa o lucro dos pedidos comprados e não cancelados por mês de calendário
func MonthlyProfit(orders []domain.OrderRecord) []domain.MonthlyProfit {
	byMonth := make(map[string]float64)
	for _, o := range orders {
		if !o.Counts() {
			continue
		}
		byMonth[o.Date.Format(monthLayout)] += o.Profit()
	}

	months := make([]domain.MonthlyProfit, 0, len(byMonth))
	for month, profit := range byMonth {
		months = append(months, domain.MonthlyProfit{Month: month, Profit: profit})
	}

	sort.Slice(months, func(i, j int) bool { return months[i].Month < months[j].Month })

	return months
}

// History extrai a série de lucros em ordem cronológica
func History(months []domain.MonthlyProfit) []float64 {
	history := make([]float64, len(months))
	for i, m := range months {
		history[i] = m.Profit
	}
	return history
}

// LinearFit ajusta y = k*x + b por mínimos quadrados com x = 0..n-1.
// Com um único ponto a reta é horizontal.
func LinearFit(ys []float64) (k, b float64) {
	n := float64(len(ys))
	if n == 0 {
		return 0, 0
	}
	if n == 1 {
		return 0, ys[0]
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, y := range ys {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	denominator := n*sumXX - sumX*sumX
	if denominator == 0 {
		return 0, sumY / n
	}

	k = (n*sumXY - sumX*sumY) / denominator
	b = (sumY - k*sumX) / n

	return k, b
}

// Forecast projeta em quantos meses o investimento é recuperado a partir do histórico mensal
func Forecast(history []float64, investment float64) domain.Payback {
	payback := domain.Payback{
		Status:     domain.PaybackUndetermined,
		Investment: investment,
		History:    history,
	}

	if investment <= 0 || len(history) == 0 {
		return payback
	}

	k, b := LinearFit(history)
	payback.Slope = k
	payback.Intercept = b

	cumulative := 0.0
	for _, y := range history {
		cumulative += y
	}

	index := len(history)
	for cumulative < investment && index < MaxForecastMonths {
		cumulative += math.Max(k*float64(index)+b, 0)
		index++
	}

	if cumulative >= investment {
		payback.Status = domain.PaybackRecouped
		payback.Months = index
		return payback
	}

	payback.Status = domain.PaybackBeyondHorizon
	return payback
}

// EstimateFromNet é a estimativa simples investimento / lucro líquido, usada quando não há histórico de pedidos
func EstimateFromNet(netProfit, investment float64) domain.Payback {
	payback := domain.Payback{
		Status:     domain.PaybackUndetermined,
		Investment: investment,
	}

	if netProfit > 0 && investment > 0 {
		payback.Status = domain.PaybackEstimated
		payback.Estimated = investment / netProfit
	}

	return payback
}

// ROI retorna o retorno percentual sobre o investimento; ok é falso quando não há investimento
func ROI(netProfit, investment float64) (float64, bool) {
	if investment == 0 {
		return 0, false
	}
	return netProfit / investment * 100, true
}

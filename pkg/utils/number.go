package utils

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// RoundWithTwoDecimalPlace arredonda valores monetários sem o erro de float de math.Round(f*100)
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}
	return decimal.NewFromFloat(f).Round(2).InexactFloat64()
}

// Percent devolve part/total em pontos percentuais com duas casas. Total zero devolve zero.
func Percent(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return decimal.NewFromFloat(part).Div(decimal.NewFromFloat(total)).Mul(hundred).Round(2).InexactFloat64()
}

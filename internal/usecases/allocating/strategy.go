package allocating

import (
	"github.com/shopspring/decimal"
)

const (
	EqualSplitName          = "equal-split"
	RevenueProportionalName = "revenue-proportional"
)

// Share é um participante do rateio. Weight é usado apenas por estratégias proporcionais.
type Share struct {
	Key    string
	Weight float64
}

// Strategy distribui um valor entre os participantes.
// A soma das parcelas é sempre igual ao valor distribuído; a última parcela absorve o resíduo de arredondamento.
type Strategy interface {
	Name() string
	Description() string
	Allocate(amount float64, shares []Share) map[string]float64
}

type baseStrategy struct {
	name        string
	description string
}

func (b baseStrategy) Name() string {
	return b.name
}

func (b baseStrategy) Description() string {
	return b.description
}

type EqualSplit struct {
	baseStrategy
}

func NewEqualSplit() *EqualSplit {
	return &EqualSplit{
		baseStrategy: baseStrategy{
			name:        EqualSplitName,
			description: "Divide o valor igualmente entre todos os artigos",
		},
	}
}

func (s *EqualSplit) Allocate(amount float64, shares []Share) map[string]float64 {
	weights := make([]decimal.Decimal, len(shares))
	for i := range shares {
		weights[i] = decimal.NewFromInt(1)
	}
	return distribute(amount, shares, weights)
}

type RevenueProportional struct {
	baseStrategy
	fallback *EqualSplit
}

func NewRevenueProportional() *RevenueProportional {
	return &RevenueProportional{
		baseStrategy: baseStrategy{
			name:        RevenueProportionalName,
			description: "Divide o valor proporcionalmente à receita de cada artigo",
		},
		fallback: NewEqualSplit(),
	}
}

// Allocate usa a divisão igualitária quando a receita total não é positiva
func (s *RevenueProportional) Allocate(amount float64, shares []Share) map[string]float64 {
	total := decimal.Zero
	weights := make([]decimal.Decimal, len(shares))
	for i, share := range shares {
		w := decimal.NewFromFloat(share.Weight)
		if w.IsNegative() {
			w = decimal.Zero
		}
		weights[i] = w
		total = total.Add(w)
	}

	if !total.IsPositive() {
		return s.fallback.Allocate(amount, shares)
	}

	return distribute(amount, shares, weights)
}

func distribute(amount float64, shares []Share, weights []decimal.Decimal) map[string]float64 {
	result := make(map[string]float64, len(shares))
	if len(shares) == 0 {
		return result
	}

	total := decimal.Zero
	for _, w := range weights {
		total = total.Add(w)
	}

	value := decimal.NewFromFloat(amount)
	allocated := decimal.Zero
	last := len(shares) - 1

	for i, share := range shares {
		var part decimal.Decimal
		if i == last {
			part = value.Sub(allocated)
		} else {
			part = value.Mul(weights[i]).Div(total)
			allocated = allocated.Add(part)
		}
		result[share.Key] += part.InexactFloat64()
	}

	return result
}

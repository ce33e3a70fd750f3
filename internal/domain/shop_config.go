package domain

import "time"

type ExpenseFrequency string

const (
	ExpenseFrequencyDaily   ExpenseFrequency = "daily"
	ExpenseFrequencyWeekly  ExpenseFrequency = "weekly"
	ExpenseFrequencyMonthly ExpenseFrequency = "monthly"
)

type TaxSystem string

const (
	TaxSystemUSN6   TaxSystem = "usn_6"
	TaxSystemCustom TaxSystem = "custom"
	TaxSystemNone   TaxSystem = "none"
)

// USN6Rate é a alíquota do regime de percentual sobre a receita
const USN6Rate = 0.06

type ProductCost struct {
	ID      int64   `json:"id"`
	ShopID  int64   `json:"shop_id"`
	Article string  `json:"article"`
	Cost    float64 `json:"cost"`
}

type RegularExpense struct {
	ID        int64            `json:"id"`
	ShopID    int64            `json:"shop_id"`
	Name      string           `json:"name"`
	Amount    float64          `json:"amount"`
	Frequency ExpenseFrequency `json:"frequency"`
}

// ProratedAmount distribui a despesa recorrente pela quantidade de dias do período
func (e RegularExpense) ProratedAmount(days int) float64 {
	switch e.Frequency {
	case ExpenseFrequencyDaily:
		return e.Amount * float64(days)
	case ExpenseFrequencyWeekly:
		return e.Amount * float64(days) / 7
	case ExpenseFrequencyMonthly:
		return e.Amount * float64(days) / 30
	default:
		return 0
	}
}

type OneTimeExpense struct {
	ID     int64     `json:"id"`
	ShopID int64     `json:"shop_id"`
	Name   string    `json:"name"`
	Amount float64   `json:"amount"`
	Date   time.Time `json:"date"`
}

type Advertisement struct {
	ID     int64     `json:"id"`
	ShopID int64     `json:"shop_id"`
	NmID   *int64    `json:"nm_id,omitempty"`
	Amount float64   `json:"amount"`
	Date   time.Time `json:"date"`
}

type Penalty struct {
	ID     int64     `json:"id"`
	ShopID int64     `json:"shop_id"`
	NmID   *int64    `json:"nm_id,omitempty"`
	Sum    float64   `json:"sum"`
	Reason string    `json:"reason"`
	Date   time.Time `json:"date"`
}

type TaxSystemSetting struct {
	ShopID        int64     `json:"shop_id"`
	TaxSystem     TaxSystem `json:"tax_system"`
	CustomPercent float64   `json:"custom_percent"`
}

// Rate retorna a alíquota aplicada sobre a receita. Sem configuração, não há imposto.
func (s *TaxSystemSetting) Rate() float64 {
	if s == nil {
		return 0
	}

	switch s.TaxSystem {
	case TaxSystemUSN6:
		return USN6Rate
	case TaxSystemCustom:
		return s.CustomPercent / 100
	default:
		return 0
	}
}

// ShopConfiguration agrupa a configuração local de custos de uma loja para um período
type ShopConfiguration struct {
	ProductCosts    []ProductCost
	RegularExpenses []RegularExpense
	OneTimeExpenses []OneTimeExpense
	Advertisements  []Advertisement
	Penalties       []Penalty
	TaxSetting      *TaxSystemSetting
}

// CostByArticle indexa o custo unitário pelo código do artigo do vendedor
func (c ShopConfiguration) CostByArticle() map[string]float64 {
	costs := make(map[string]float64, len(c.ProductCosts))
	for _, pc := range c.ProductCosts {
		costs[pc.Article] = pc.Cost
	}
	return costs
}

func (c ShopConfiguration) InvestmentTotal() float64 {
	total := 0.0
	for _, e := range c.OneTimeExpenses {
		total += e.Amount
	}
	return total
}

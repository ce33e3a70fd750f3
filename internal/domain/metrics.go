package domain

// ShopMetricsResult é o resultado agregado de uma loja para um período. Não é persistido.
type ShopMetricsResult struct {
	ShopID              int64    `json:"shop_id"`
	Period              Period   `json:"period"`
	Revenue             float64  `json:"revenue"`
	Commission          float64  `json:"commission"`
	Reward              float64  `json:"reward"`
	Logistics           float64  `json:"logistics"`
	Storage             float64  `json:"storage"`
	CostOfGoods         float64  `json:"cost_of_goods"`
	Tax                 float64  `json:"tax"`
	RegularExpenses     float64  `json:"regular_expenses"`
	Advertising         float64  `json:"advertising"`
	Penalties           float64  `json:"penalties"`
	Deduction           float64  `json:"deduction"`
	NetProfit           float64  `json:"net_profit"`
	Profitability       float64  `json:"profitability"`
	UnitsSold           float64  `json:"units_sold"`
	MissingCostArticles []int64  `json:"missing_cost_articles,omitempty"`
	Payback             *Payback `json:"payback,omitempty"`
	ROI                 *float64 `json:"roi,omitempty"`
}

// TotalCosts soma todos os custos que reduzem a receita
func (r ShopMetricsResult) TotalCosts() float64 {
	return r.Commission + r.Logistics + r.Storage + r.Tax + r.CostOfGoods +
		r.RegularExpenses + r.Advertising + r.Penalties + r.Deduction
}

type PaybackStatus string

const (
	PaybackRecouped      PaybackStatus = "recouped"
	PaybackBeyondHorizon PaybackStatus = "beyond_horizon"
	PaybackUndetermined  PaybackStatus = "undetermined"
	// PaybackEstimated indica estimativa simples investimento / lucro líquido, sem histórico de pedidos
	PaybackEstimated PaybackStatus = "estimated"
)

// Payback é a previsão de retorno do investimento único
type Payback struct {
	Status     PaybackStatus `json:"status"`
	Months     int           `json:"months,omitempty"`
	Estimated  float64       `json:"estimated_months,omitempty"`
	Investment float64       `json:"investment"`
	Slope      float64       `json:"slope"`
	Intercept  float64       `json:"intercept"`
	History    []float64     `json:"history,omitempty"`
}

// MonthlyProfit é o lucro de pedidos de um mês de calendário (YYYY-MM)
type MonthlyProfit struct {
	Month  string  `json:"month"`
	Profit float64 `json:"profit"`
}

// PaybackReport combina a previsão de retorno com o ROI do período consultado
type PaybackReport struct {
	Period     Period   `json:"period"`
	NetProfit  float64  `json:"net_profit"`
	Investment float64  `json:"investment"`
	Payback    Payback  `json:"payback"`
	ROI        *float64 `json:"roi,omitempty"`
	Recouped   bool     `json:"recouped"`
}

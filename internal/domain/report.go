package domain

// ArticleReportRow é uma linha por artigo do relatório de análise de produtos
type ArticleReportRow struct {
	Name                    string  `json:"name"`
	Article                 string  `json:"article"`
	NmID                    int64   `json:"nm_id"`
	Orders                  float64 `json:"orders"`
	Sales                   float64 `json:"sales"`
	Returns                 float64 `json:"returns"`
	Cancellations           float64 `json:"cancellations"`
	SalesValue              float64 `json:"sales_value"`
	ReturnsValue            float64 `json:"returns_value"`
	Revenue                 float64 `json:"revenue"`
	UnitsSold               float64 `json:"units_sold"`
	BuyoutRate              float64 `json:"buyout_rate"`
	Commission              float64 `json:"commission"`
	CommissionPercent       float64 `json:"commission_percent"`
	Logistics               float64 `json:"logistics"`
	LogisticsPerUnit        float64 `json:"logistics_per_unit"`
	LogisticsPercent        float64 `json:"logistics_percent"`
	TotalDeductions         float64 `json:"total_deductions"`
	TotalDeductionsPercent  float64 `json:"total_deductions_percent"`
	Tax                     float64 `json:"tax"`
	ProfitWithoutAds        float64 `json:"profit_without_ads"`
	Advertising             float64 `json:"advertising"`
	OtherDeductions         float64 `json:"other_deductions"`
	ProfitWithAds           float64 `json:"profit_with_ads"`
	CostRelativeProfitRatio float64 `json:"cost_relative_profitability"`

	// Campos auxiliares, fora das 24 colunas
	Storage        float64 `json:"storage"`
	Deduction      float64 `json:"deduction"`
	CostOfGoods    float64 `json:"cost_of_goods"`
	RegularShare   float64 `json:"regular_share"`
	ReturnShipping float64 `json:"return_shipping"`
}

// ArticleProfitability é a rentabilidade de um artigo nos últimos dias
type ArticleProfitability struct {
	Article       string  `json:"article"`
	NmID          int64   `json:"nm_id"`
	Revenue       float64 `json:"revenue"`
	Units         float64 `json:"units"`
	Commission    float64 `json:"commission"`
	Logistics     float64 `json:"logistics"`
	Storage       float64 `json:"storage"`
	CostOfGoods   float64 `json:"cost_of_goods"`
	Profit        float64 `json:"profit"`
	Profitability float64 `json:"profitability"`
	Level         string  `json:"level"`
}

type TopProduct struct {
	Position int                  `json:"position"`
	Product  ArticleProfitability `json:"product"`
}

type WhatIfResult struct {
	Article           string  `json:"article"`
	Units             float64 `json:"units"`
	CurrentPrice      float64 `json:"current_price"`
	CurrentCost       float64 `json:"current_cost"`
	NewPrice          float64 `json:"new_price"`
	NewCost           float64 `json:"new_cost"`
	CurrentRevenue    float64 `json:"current_revenue"`
	CurrentProfit     float64 `json:"current_profit"`
	ForecastRevenue   float64 `json:"forecast_revenue"`
	ForecastProfit    float64 `json:"forecast_profit"`
	RevenueDelta      float64 `json:"revenue_delta"`
	ProfitDelta       float64 `json:"profit_delta"`
	RevenueDeltaPct   float64 `json:"revenue_delta_pct"`
	ProfitDeltaPct    float64 `json:"profit_delta_pct"`
	ForecastMarginPct float64 `json:"forecast_margin_pct"`
}

type MetricDelta struct {
	Current  float64 `json:"current"`
	Previous float64 `json:"previous"`
	Delta    float64 `json:"delta"`
	Percent  float64 `json:"percent"`
}

type PeriodComparison struct {
	Current       Period      `json:"current"`
	Previous      Period      `json:"previous"`
	Revenue       MetricDelta `json:"revenue"`
	NetProfit     MetricDelta `json:"net_profit"`
	Profitability MetricDelta `json:"profitability"`
	Commission    MetricDelta `json:"commission"`
	Logistics     MetricDelta `json:"logistics"`
	UnitsSold     MetricDelta `json:"units_sold"`
}

type YieldWindow struct {
	Period    Period  `json:"period"`
	Revenue   float64 `json:"revenue"`
	NetProfit float64 `json:"net_profit"`
}

// AnnualYield soma as janelas de 30 dias consecutivas com vendas, da mais recente para a mais antiga.
// Yield é nil quando a loja não tem investimento cadastrado.
type AnnualYield struct {
	Period     Period        `json:"period"`
	Months     int           `json:"months"`
	Windows    []YieldWindow `json:"windows"`
	Revenue    float64       `json:"revenue"`
	NetProfit  float64       `json:"net_profit"`
	Investment float64       `json:"investment"`
	Yield      *float64      `json:"yield,omitempty"`
}

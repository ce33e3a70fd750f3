package reporting

import (
	"fmt"
	"math"
	"strings"

	"github.com/vfg2006/seller-pnl-api/internal/domain"
	"github.com/vfg2006/seller-pnl-api/internal/usecases/forecasting"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const dateLayout = "02/01/2006"

var printer = message.NewPrinter(language.BrazilianPortuguese)

type summaryLine struct {
	Label string
	Value string
	Share string
}

func money(v float64) string {
	return printer.Sprintf("%.2f rub", v)
}

func percentOf(part, revenue float64) string {
	if revenue == 0 {
		return ""
	}
	return printer.Sprintf("%.1f%%", part/revenue*100)
}

// PeriodLabel descreve o período no formato dd/mm/aaaa - dd/mm/aaaa
func PeriodLabel(p domain.Period) string {
	return fmt.Sprintf("%s - %s", p.Start.Format(dateLayout), p.End.Format(dateLayout))
}

// PaybackLabel descreve a previsão de retorno do investimento
func PaybackLabel(p *domain.Payback) string {
	if p == nil {
		return "não determinado"
	}

	switch p.Status {
	case domain.PaybackRecouped:
		return printer.Sprintf("%d meses", p.Months)
	case domain.PaybackEstimated:
		return printer.Sprintf("%.1f meses (estimativa)", p.Estimated)
	case domain.PaybackBeyondHorizon:
		return printer.Sprintf("mais de %d meses", forecasting.MaxForecastMonths)
	default:
		return "não determinado"
	}
}

func roiLabel(roi *float64) string {
	if roi == nil {
		return "sem investimento cadastrado"
	}
	return printer.Sprintf("%.1f%%", *roi)
}

// costLine exibe custos e retenções em módulo, inclusive a participação na receita
func costLine(label string, v, revenue float64) summaryLine {
	v = math.Abs(v)
	return summaryLine{Label: label, Value: money(v), Share: percentOf(v, revenue)}
}

func costLines(r domain.ShopMetricsResult) []summaryLine {
	return []summaryLine{
		{Label: "Receita", Value: money(r.Revenue)},
		costLine("Comissões", r.Commission, r.Revenue),
		costLine("Logística", r.Logistics, r.Revenue),
		costLine("Armazenagem", r.Storage, r.Revenue),
		costLine("Custo dos produtos", r.CostOfGoods, r.Revenue),
		costLine("Imposto", r.Tax, r.Revenue),
		costLine("Despesas recorrentes", r.RegularExpenses, r.Revenue),
		costLine("Publicidade", r.Advertising, r.Revenue),
		costLine("Outras retenções", r.Deduction, r.Revenue),
		costLine("Penalidades", r.Penalties, r.Revenue),
	}
}

// FormatSummary monta o resumo em texto do resultado da loja.
// Quando previous é informado, o lucro líquido mostra a variação em relação ao período anterior.
func FormatSummary(title string, r domain.ShopMetricsResult, previous *domain.ShopMetricsResult) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s\n", title)
	fmt.Fprintf(&sb, "Período: %s\n\n", PeriodLabel(r.Period))

	sb.WriteString("Indicadores principais:\n")
	for _, line := range costLines(r) {
		if line.Share != "" {
			fmt.Fprintf(&sb, "- %s: %s (%s)\n", line.Label, line.Value, line.Share)
			continue
		}
		fmt.Fprintf(&sb, "- %s: %s\n", line.Label, line.Value)
	}

	fmt.Fprintf(&sb, "\nLucro líquido: %s", money(r.NetProfit))
	if previous != nil {
		arrow := "▼"
		if previous.NetProfit < r.NetProfit {
			arrow = "▲"
		}
		fmt.Fprintf(&sb, " (%s %s)", arrow, money(previous.NetProfit))
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Rentabilidade: %s\n", printer.Sprintf("%.1f%%", r.Profitability))

	if len(r.MissingCostArticles) > 0 {
		fmt.Fprintf(&sb, "Artigos sem custo cadastrado: %d\n", len(r.MissingCostArticles))
	}

	if r.Payback != nil {
		sb.WriteString("\nRetorno do investimento:\n")
		fmt.Fprintf(&sb, "- Investimentos únicos: %s\n", money(r.Payback.Investment))
		fmt.Fprintf(&sb, "- Prazo de retorno: %s\n", PaybackLabel(r.Payback))
		fmt.Fprintf(&sb, "- ROI: %s\n", roiLabel(r.ROI))
	}

	return sb.String()
}

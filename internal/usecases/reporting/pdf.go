package reporting

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/vfg2006/seller-pnl-api/internal/domain"
)

var (
	colorPrimary = &props.Color{Red: 31, Green: 78, Blue: 121}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// RenderSummaryPDF gera o resumo financeiro da loja em PDF
func RenderSummaryPDF(title string, r domain.ShopMetricsResult) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle(title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(text.New(title, props.Text{Style: fontstyle.Bold, Size: 14, Color: colorPrimary})),
		),
		row.New(8).Add(
			col.New(12).Add(text.New("Período: "+PeriodLabel(r.Period), props.Text{Size: 9, Color: colorGray})),
		),
	)
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.4}))

	for _, l := range costLines(r) {
		m.AddRows(summaryRow(l.Label, l.Value, l.Share, false))
	}

	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.2}))
	m.AddRows(
		summaryRow("Lucro líquido", money(r.NetProfit), percentOf(r.NetProfit, r.Revenue), true),
		summaryRow("Rentabilidade", printer.Sprintf("%.1f%%", r.Profitability), "", true),
	)

	if r.Payback != nil {
		m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.2}))
		m.AddRows(
			summaryRow("Investimentos únicos", money(r.Payback.Investment), "", false),
			summaryRow("Prazo de retorno", PaybackLabel(r.Payback), "", false),
			summaryRow("ROI", roiLabel(r.ROI), "", false),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar PDF do resumo: %w", err)
	}

	return doc.GetBytes(), nil
}

func summaryRow(label, value, share string, bold bool) core.Row {
	style := fontstyle.Normal
	if bold {
		style = fontstyle.Bold
	}

	return row.New(7).Add(
		col.New(6).Add(text.New(label, props.Text{Style: style})),
		col.New(4).Add(text.New(value, props.Text{Style: style, Align: align.Right})),
		col.New(2).Add(text.New(share, props.Text{Align: align.Right, Color: colorGray})),
	)
}

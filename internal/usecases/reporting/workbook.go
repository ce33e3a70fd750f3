package reporting

import (
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/vfg2006/seller-pnl-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	ReportSheetName = "Análise de produtos"
	headerFill      = "DDEBF7"

	formatPercent = "0.00%"
	formatMoney   = "#,##0.00"
	formatInteger = "#,##0"
)

var ReportHeaders = []string{
	"Nome",
	"Artigo",
	"Pedidos (un)",
	"Vendas (un)",
	"Devoluções (un)",
	"Cancelamentos (un)",
	"Vendas (rub)",
	"Devoluções (rub)",
	"Receita",
	"Total de vendas (un)",
	"% de resgate",
	"Comissão (rub)",
	"% de comissão",
	"Logística (rub)",
	"Logística por unidade",
	"% de logística",
	"Total de retenções",
	"% de retenções",
	"Imposto",
	"Lucro sem publicidade",
	"Publicidade",
	"Retenções",
	"Lucro líquido com publicidade",
	"Rentabilidade CPM",
}

// colunas K, M, P e R
var percentColumns = map[int]bool{11: true, 13: true, 16: true, 18: true}

// columnFormat retorna o formato numérico da coluna (1-based)
func columnFormat(col int) string {
	switch {
	case percentColumns[col]:
		return formatPercent
	case col >= 7 && col <= 24 && col != 10 && col != 11:
		return formatMoney
	default:
		return formatInteger
	}
}

// rowValues converte a linha nas 24 colunas da planilha. Valores de receita, custo e retenção
// são exibidos em módulo. Só as colunas de lucro mantêm o sinal.
func rowValues(r domain.ArticleReportRow) []any {
	return []any{
		r.Name,
		r.Article,
		math.Abs(r.Orders),
		math.Abs(r.Sales),
		math.Abs(r.Returns),
		math.Abs(r.Cancellations),
		math.Abs(r.SalesValue),
		math.Abs(r.ReturnsValue),
		math.Abs(r.Revenue),
		math.Abs(r.UnitsSold),
		math.Abs(r.BuyoutRate),
		math.Abs(r.Commission),
		math.Abs(r.CommissionPercent),
		math.Abs(r.Logistics + r.ReturnShipping),
		math.Abs(r.LogisticsPerUnit),
		math.Abs(r.LogisticsPercent),
		math.Abs(r.TotalDeductions),
		math.Abs(r.TotalDeductionsPercent),
		math.Abs(r.Tax),
		math.Trunc(r.ProfitWithoutAds),
		math.Abs(r.Advertising),
		math.Abs(r.OtherDeductions),
		r.ProfitWithAds,
		r.CostRelativeProfitRatio,
	}
}

// RenderWorkbook gera o arquivo xlsx do relatório por artigo
func RenderWorkbook(rows []domain.ArticleReportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ReportSheetName); err != nil {
		return nil, fmt.Errorf("erro ao renomear planilha: %w", err)
	}

	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFill}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    border,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao criar estilo do cabeçalho: %w", err)
	}

	styles := make(map[string]int, 3)
	for _, format := range []string{formatPercent, formatMoney, formatInteger} {
		numFmt := format
		id, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt, Border: border})
		if err != nil {
			return nil, fmt.Errorf("erro ao criar estilo %s: %w", format, err)
		}
		styles[format] = id
	}

	widths := make([]int, len(ReportHeaders))

	for i, header := range ReportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(ReportSheetName, cell, header); err != nil {
			return nil, fmt.Errorf("erro ao escrever cabeçalho: %w", err)
		}
		widths[i] = utf8.RuneCountInString(header)
	}

	first, _ := excelize.CoordinatesToCellName(1, 1)
	last, _ := excelize.CoordinatesToCellName(len(ReportHeaders), 1)
	if err := f.SetCellStyle(ReportSheetName, first, last, headerStyle); err != nil {
		return nil, fmt.Errorf("erro ao aplicar estilo do cabeçalho: %w", err)
	}

	for r, row := range rows {
		for c, value := range rowValues(row) {
			col := c + 1
			cell, _ := excelize.CoordinatesToCellName(col, r+2)
			if err := f.SetCellValue(ReportSheetName, cell, value); err != nil {
				return nil, fmt.Errorf("erro ao escrever célula %s: %w", cell, err)
			}
			if err := f.SetCellStyle(ReportSheetName, cell, cell, styles[columnFormat(col)]); err != nil {
				return nil, fmt.Errorf("erro ao aplicar estilo na célula %s: %w", cell, err)
			}
			if n := utf8.RuneCountInString(displayValue(value)); n > widths[c] {
				widths[c] = n
			}
		}
	}

	for i, w := range widths {
		name, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(ReportSheetName, name, name, float64(w+2)*1.2); err != nil {
			return nil, fmt.Errorf("erro ao ajustar largura da coluna %s: %w", name, err)
		}
	}

	err = f.SetPanes(ReportSheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao congelar cabeçalho: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar planilha: %w", err)
	}

	return buf.Bytes(), nil
}

func displayValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

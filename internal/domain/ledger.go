package domain

import (
	"errors"
	"strings"
	"time"
)

// PromotionServiceBonusType identifica a linha de cobrança do serviço de promoção do marketplace.
// Essas linhas são custo da plataforma e nunca entram na receita.
const PromotionServiceBonusType = "Оказание услуг «ВБ.Продвижение»"

var ErrInvalidSaleDate = errors.New("data de venda inválida")

type DocType string

const (
	DocTypeSale         DocType = "sale"
	DocTypeReturn       DocType = "return"
	DocTypeCancellation DocType = "cancellation"
	DocTypeOther        DocType = "other"
)

type LedgerPartition string

const (
	PartitionWeek  LedgerPartition = "week"
	PartitionMonth LedgerPartition = "month"
	PartitionYear  LedgerPartition = "year"
	PartitionAll   LedgerPartition = "all"
)

// LedgerRecord representa uma linha do relatório financeiro detalhado do marketplace
type LedgerRecord struct {
	RrdID               int64   `json:"rrd_id"`
	NmID                int64   `json:"nm_id"`
	SaName              string  `json:"sa_name"`
	Srid                string  `json:"srid"`
	SubjectName         string  `json:"subject_name"`
	BrandName           string  `json:"brand_name"`
	DocTypeName         string  `json:"doc_type_name"`
	SupplierOperName    string  `json:"supplier_oper_name"`
	BonusTypeName       string  `json:"bonus_type_name"`
	Quantity            float64 `json:"quantity"`
	RetailPriceWithDisc float64 `json:"retail_price_withdisc_rub"`
	PpvzForPay          float64 `json:"ppvz_for_pay"`
	PpvzReward          float64 `json:"ppvz_reward"`
	PpvzSalesCommission float64 `json:"ppvz_sales_commission"`
	PpvzVw              float64 `json:"ppvz_vw"`
	PpvzVwNds           float64 `json:"ppvz_vw_nds"`
	DeliveryRub         float64 `json:"delivery_rub"`
	StorageFee          float64 `json:"storage_fee"`
	Deduction           float64 `json:"deduction"`
	Penalty             float64 `json:"penalty"`
	SaleDt              string  `json:"sale_dt"`
}

var saleDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// SaleDate interpreta o campo sale_dt nos formatos usados pelo relatório.
// Todas as formas viram horário de parede no fuso local, inclusive as com "Z" ou offset,
// para que o dia da venda não mude conforme o fuso do host.
func (r LedgerRecord) SaleDate() (time.Time, error) {
	value := strings.TrimSpace(r.SaleDt)
	if value == "" {
		return time.Time{}, ErrInvalidSaleDate
	}

	for _, layout := range saleDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return wallClock(t), nil
		}
	}

	// formatos com sufixo desconhecido: vale só a data
	if len(value) >= 10 {
		if t, err := time.Parse(time.DateOnly, value[:10]); err == nil {
			return wallClock(t), nil
		}
	}

	return time.Time{}, ErrInvalidSaleDate
}

func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.Local)
}

func (r LedgerRecord) DocType() DocType {
	switch strings.ToLower(strings.TrimSpace(r.DocTypeName)) {
	case "продажа", "sale":
		return DocTypeSale
	case "возврат", "return":
		return DocTypeReturn
	case "отмена", "cancellation":
		return DocTypeCancellation
	default:
		return DocTypeOther
	}
}

func (r LedgerRecord) IsPromotionService() bool {
	return r.BonusTypeName == PromotionServiceBonusType
}

// PlatformFee é a comissão do marketplace discriminada na linha (comissão de venda + remuneração + IVA)
func (r LedgerRecord) PlatformFee() float64 {
	return r.PpvzSalesCommission + r.PpvzVw + r.PpvzVwNds
}

// HasArticle indica se a linha está vinculada a um artigo do vendedor
func (r LedgerRecord) HasArticle() bool {
	return r.NmID != 0
}

// LedgerSnapshot é o cache materializado do relatório de uma loja
type LedgerSnapshot struct {
	ShopID    int64                              `json:"shop_id"`
	Records   map[LedgerPartition][]LedgerRecord `json:"records"`
	UpdatedAt time.Time                          `json:"updated_at"`
}

package domain

import "time"

// OrderRecord é um pedido registrado localmente a partir do feed de pedidos do marketplace.
// Cobre os dias mais recentes que ainda não aparecem no relatório financeiro.
type OrderRecord struct {
	ID              int64     `json:"id"`
	ShopID          int64     `json:"shop_id"`
	Srid            string    `json:"srid"`
	NmID            int64     `json:"nm_id"`
	SupplierArticle string    `json:"supplier_article"`
	PriceWithDisc   float64   `json:"price_with_disc"`
	ForPay          float64   `json:"for_pay"`
	IsBought        bool      `json:"is_bought"`
	IsCancel        bool      `json:"is_cancel"`
	Date            time.Time `json:"date"`
}

// Counts indica se o pedido deve ser contabilizado como venda
func (o OrderRecord) Counts() bool {
	return o.IsBought && !o.IsCancel
}

// Profit é o valor retido pelo marketplace no pedido
func (o OrderRecord) Profit() float64 {
	return o.PriceWithDisc - o.ForPay
}

package marketplaceclient

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const salesPath = "/api/v1/supplier/sales"

// Sale é uma linha do feed de vendas. SaleID começa com "S" para vendas e "R" para devoluções.
type Sale struct {
	Date            string  `json:"date"`
	Srid            string  `json:"srid"`
	SaleID          string  `json:"saleID"`
	NmID            int64   `json:"nmId"`
	SupplierArticle string  `json:"supplierArticle"`
	PriceWithDisc   float64 `json:"priceWithDisc"`
	ForPay          float64 `json:"forPay"`
	IsCancel        bool    `json:"isCancel"`
}

func (s Sale) IsSale() bool {
	return strings.HasPrefix(s.SaleID, "S")
}

func (s Sale) ParsedDate() (time.Time, error) {
	return time.ParseInLocation("2006-01-02T15:04:05", s.Date, time.Local)
}

func (c *MarketplaceClient) GetSales(ctx context.Context, token string, since time.Time) ([]Sale, error) {
	query := url.Values{}
	query.Set("dateFrom", since.Format("2006-01-02T15:04:05"))
	query.Set("flag", "0")

	sales := make([]Sale, 0)
	if err := c.getJSON(ctx, token, salesPath, query, &sales); err != nil {
		return nil, errors.Wrap(err, "erro ao buscar vendas")
	}

	return sales, nil
}

package marketplace

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/seller-pnl-api/infrastructure/integrator/marketplace/marketplaceclient"
	"github.com/vfg2006/seller-pnl-api/internal/domain"
)

// MarketplaceIntegrator traduz as respostas do marketplace para o domínio da loja
type MarketplaceIntegrator interface {
	FetchLedger(ctx context.Context, shop *domain.Shop, from, to time.Time) ([]domain.LedgerRecord, error)
	FetchOrders(ctx context.Context, shop *domain.Shop, since time.Time) ([]domain.OrderRecord, error)
}

type MarketplaceService struct {
	Client marketplaceclient.Client
}

func New(client marketplaceclient.Client) MarketplaceIntegrator {
	return &MarketplaceService{
		Client: client,
	}
}

func (s *MarketplaceService) FetchLedger(ctx context.Context, shop *domain.Shop, from, to time.Time) ([]domain.LedgerRecord, error) {
	return s.Client.GetReportDetail(ctx, shop.APIToken, from, to)
}

// FetchOrders converte o feed de vendas em pedidos locais. Devoluções entram como não compradas.
func (s *MarketplaceService) FetchOrders(ctx context.Context, shop *domain.Shop, since time.Time) ([]domain.OrderRecord, error) {
	sales, err := s.Client.GetSales(ctx, shop.APIToken, since)
	if err != nil {
		return nil, err
	}

	orders := make([]domain.OrderRecord, 0, len(sales))
	skipped := 0

	for _, sale := range sales {
		date, err := sale.ParsedDate()
		if err != nil || sale.Srid == "" {
			skipped++
			continue
		}

		orders = append(orders, domain.OrderRecord{
			ShopID:          shop.ID,
			Srid:            sale.Srid,
			NmID:            sale.NmID,
			SupplierArticle: sale.SupplierArticle,
			PriceWithDisc:   sale.PriceWithDisc,
			ForPay:          sale.ForPay,
			IsBought:        sale.IsSale(),
			IsCancel:        sale.IsCancel,
			Date:            date,
		})
	}

	if skipped > 0 {
		logrus.WithFields(logrus.Fields{
			"shop_id": shop.ID,
			"skipped": skipped,
		}).Warn("marketplace: vendas sem srid ou com data inválida ignoradas")
	}

	return orders, nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/seller-pnl-api/infrastructure/database/postgres"
	"github.com/vfg2006/seller-pnl-api/internal/domain"
)

const (
	ordersTable = "orders o"

	// o Postgres aceita no máximo 65535 parâmetros por comando
	orderBatchSize = 1000
)

var orderInsertColumns = []string{
	"shop_id", "srid", "nm_id", "supplier_article", "price_with_disc", "for_pay", "is_bought", "is_cancel", "date",
}

var orderColumns = []string{
	"o.id", "o.shop_id", "o.srid", "o.nm_id", "o.supplier_article",
	"o.price_with_disc", "o.for_pay", "o.is_bought", "o.is_cancel", "o.date",
}

type OrderRepository interface {
	// ListPurchasedSince retorna pedidos comprados e não cancelados a partir de "since"
	ListPurchasedSince(shopID int64, since time.Time) ([]domain.OrderRecord, error)
	// ListPurchased retorna todo o histórico de pedidos comprados, em ordem cronológica
	ListPurchased(shopID int64) ([]domain.OrderRecord, error)
	ListByShop(shopID int64) ([]domain.OrderRecord, error)
	SaveOrders(orders []domain.OrderRecord) error
}

type orderRepository struct {
	conn *postgres.Connection
}

func NewOrderRepository(conn *postgres.Connection) OrderRepository {
	return &orderRepository{
		conn: conn,
	}
}

func (r *orderRepository) ListPurchasedSince(shopID int64, since time.Time) ([]domain.OrderRecord, error) {
	return r.list(squirrel.And{
		squirrel.Eq{"o.shop_id": shopID, "o.is_bought": true, "o.is_cancel": false},
		squirrel.GtOrEq{"o.date": since},
	})
}

func (r *orderRepository) ListPurchased(shopID int64) ([]domain.OrderRecord, error) {
	return r.list(squirrel.Eq{"o.shop_id": shopID, "o.is_bought": true, "o.is_cancel": false})
}

func (r *orderRepository) ListByShop(shopID int64) ([]domain.OrderRecord, error) {
	return r.list(squirrel.Eq{"o.shop_id": shopID})
}

func (r *orderRepository) list(where squirrel.Sqlizer) ([]domain.OrderRecord, error) {
	query, args, err := squirrel.
		Select(orderColumns...).
		From(ordersTable).
		Where(where).
		OrderBy("o.date ASC", "o.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.OrderRecord, 0)
	for rows.Next() {
		var o domain.OrderRecord
		err := rows.Scan(
			&o.ID,
			&o.ShopID,
			&o.Srid,
			&o.NmID,
			&o.SupplierArticle,
			&o.PriceWithDisc,
			&o.ForPay,
			&o.IsBought,
			&o.IsCancel,
			&o.Date,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear pedido: %w", err)
		}
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return orders, nil
}

// SaveOrders grava os pedidos em lotes de orderBatchSize linhas numa única transação.
// Linhas repetidas de um mesmo srid ficam só com a mais recente.
func (r *orderRepository) SaveOrders(orders []domain.OrderRecord) error {
	orders = dedupeOrders(orders)
	if len(orders) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		for _, batch := range orderBatches(orders) {
			if err := insertOrders(tx, batch); err != nil {
				return err
			}
		}
		return nil
	})
}

func insertOrders(tx *sql.Tx, orders []domain.OrderRecord) error {
	query := squirrel.StatementBuilder.
		Insert("orders").
		Columns(orderInsertColumns...)

	for _, o := range orders {
		query = query.Values(
			o.ShopID,
			o.Srid,
			o.NmID,
			o.SupplierArticle,
			o.PriceWithDisc,
			o.ForPay,
			o.IsBought,
			o.IsCancel,
			o.Date,
		)
	}

	sqlQuery, args, err := query.
		Suffix(`
			ON CONFLICT (shop_id, srid) DO UPDATE SET
				price_with_disc = EXCLUDED.price_with_disc,
				for_pay = EXCLUDED.for_pay,
				is_bought = EXCLUDED.is_bought,
				is_cancel = EXCLUDED.is_cancel,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = tx.Exec(sqlQuery, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// dedupeOrders mantém uma linha por loja e srid, a de data mais recente.
// Em empate vence a que aparece por último. A ordem da primeira ocorrência é preservada.
func dedupeOrders(orders []domain.OrderRecord) []domain.OrderRecord {
	type key struct {
		shopID int64
		srid   string
	}

	index := make(map[key]int, len(orders))
	unique := make([]domain.OrderRecord, 0, len(orders))
	for _, o := range orders {
		k := key{o.ShopID, o.Srid}
		i, seen := index[k]
		if !seen {
			index[k] = len(unique)
			unique = append(unique, o)
			continue
		}
		if !o.Date.Before(unique[i].Date) {
			unique[i] = o
		}
	}
	return unique
}

// orderBatches divide os pedidos em fatias de até orderBatchSize linhas
func orderBatches(orders []domain.OrderRecord) [][]domain.OrderRecord {
	batches := make([][]domain.OrderRecord, 0, len(orders)/orderBatchSize+1)
	for start := 0; start < len(orders); start += orderBatchSize {
		end := min(start+orderBatchSize, len(orders))
		batches = append(batches, orders[start:end])
	}
	return batches
}

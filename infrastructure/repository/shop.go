package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/seller-pnl-api/infrastructure/database/postgres"
	"github.com/vfg2006/seller-pnl-api/internal/domain"
)

const (
	shopsTable = "shops s"
)

type ShopRepository interface {
	GetShopByID(shopID int64) (*domain.Shop, error)
	ListActiveShops() ([]*domain.Shop, error)
}

type shopRepository struct {
	conn *postgres.Connection
}

func NewShopRepository(conn *postgres.Connection) ShopRepository {
	return &shopRepository{
		conn: conn,
	}
}

func (r *shopRepository) selectShops() squirrel.SelectBuilder {
	return squirrel.
		Select("s.id", "s.name", "s.api_token", "s.active", "s.created_at", "s.updated_at").
		From(shopsTable).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *shopRepository) GetShopByID(shopID int64) (*domain.Shop, error) {
	query, args, err := r.selectShops().
		Where(squirrel.Eq{"s.id": shopID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	shop := &domain.Shop{}
	err = r.conn.QueryRow(query, args...).Scan(
		&shop.ID,
		&shop.Name,
		&shop.APIToken,
		&shop.Active,
		&shop.CreatedAt,
		&shop.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar loja: %w", err)
	}

	return shop, nil
}

func (r *shopRepository) ListActiveShops() ([]*domain.Shop, error) {
	query, args, err := r.selectShops().
		Where(squirrel.Eq{"s.active": true}).
		Where(squirrel.NotEq{"s.api_token": ""}).
		OrderBy("s.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	shops := make([]*domain.Shop, 0)
	for rows.Next() {
		shop := &domain.Shop{}
		err := rows.Scan(
			&shop.ID,
			&shop.Name,
			&shop.APIToken,
			&shop.Active,
			&shop.CreatedAt,
			&shop.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear loja: %w", err)
		}
		shops = append(shops, shop)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return shops, nil
}

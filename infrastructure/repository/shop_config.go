package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/seller-pnl-api/infrastructure/database/postgres"
	"github.com/vfg2006/seller-pnl-api/internal/domain"
)

const (
	productCostsTable    = "product_costs pc"
	regularExpensesTable = "regular_expenses re"
	oneTimeExpensesTable = "one_time_expenses ote"
	advertisementsTable  = "advertisements a"
	penaltiesTable       = "penalties p"
	taxSettingsTable     = "tax_settings ts"
)

// ShopConfigRepository lê a configuração local de custos cadastrada para cada loja
type ShopConfigRepository interface {
	ListProductCosts(shopID int64) ([]domain.ProductCost, error)
	ListRegularExpenses(shopID int64) ([]domain.RegularExpense, error)
	ListOneTimeExpenses(shopID int64) ([]domain.OneTimeExpense, error)
	ListAdvertisements(shopID int64, start, end time.Time) ([]domain.Advertisement, error)
	ListPenalties(shopID int64, start, end time.Time) ([]domain.Penalty, error)
	// GetTaxSetting retorna nil, nil quando a loja não configurou regime tributário
	GetTaxSetting(shopID int64) (*domain.TaxSystemSetting, error)
}

type shopConfigRepository struct {
	conn *postgres.Connection
}

func NewShopConfigRepository(conn *postgres.Connection) ShopConfigRepository {
	return &shopConfigRepository{
		conn: conn,
	}
}

func (r *shopConfigRepository) ListProductCosts(shopID int64) ([]domain.ProductCost, error) {
	query, args, err := squirrel.
		Select("pc.id", "pc.shop_id", "pc.article", "pc.cost").
		From(productCostsTable).
		Where(squirrel.Eq{"pc.shop_id": shopID}).
		OrderBy("pc.article ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	costs := make([]domain.ProductCost, 0)
	for rows.Next() {
		var c domain.ProductCost
		if err := rows.Scan(&c.ID, &c.ShopID, &c.Article, &c.Cost); err != nil {
			return nil, fmt.Errorf("erro ao escanear custo de produto: %w", err)
		}
		costs = append(costs, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return costs, nil
}

func (r *shopConfigRepository) ListRegularExpenses(shopID int64) ([]domain.RegularExpense, error) {
	query, args, err := squirrel.
		Select("re.id", "re.shop_id", "re.name", "re.amount", "re.frequency").
		From(regularExpensesTable).
		Where(squirrel.Eq{"re.shop_id": shopID}).
		OrderBy("re.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	expenses := make([]domain.RegularExpense, 0)
	for rows.Next() {
		var e domain.RegularExpense
		if err := rows.Scan(&e.ID, &e.ShopID, &e.Name, &e.Amount, &e.Frequency); err != nil {
			return nil, fmt.Errorf("erro ao escanear despesa recorrente: %w", err)
		}
		expenses = append(expenses, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return expenses, nil
}

func (r *shopConfigRepository) ListOneTimeExpenses(shopID int64) ([]domain.OneTimeExpense, error) {
	query, args, err := squirrel.
		Select("ote.id", "ote.shop_id", "ote.name", "ote.amount", "ote.date").
		From(oneTimeExpensesTable).
		Where(squirrel.Eq{"ote.shop_id": shopID}).
		OrderBy("ote.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	expenses := make([]domain.OneTimeExpense, 0)
	for rows.Next() {
		var e domain.OneTimeExpense
		if err := rows.Scan(&e.ID, &e.ShopID, &e.Name, &e.Amount, &e.Date); err != nil {
			return nil, fmt.Errorf("erro ao escanear despesa única: %w", err)
		}
		expenses = append(expenses, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return expenses, nil
}

func (r *shopConfigRepository) ListAdvertisements(shopID int64, start, end time.Time) ([]domain.Advertisement, error) {
	query, args, err := squirrel.
		Select("a.id", "a.shop_id", "a.nm_id", "a.amount", "a.date").
		From(advertisementsTable).
		Where(squirrel.Eq{"a.shop_id": shopID}).
		Where(squirrel.GtOrEq{"a.date": start}).
		Where(squirrel.LtOrEq{"a.date": end}).
		OrderBy("a.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	ads := make([]domain.Advertisement, 0)
	for rows.Next() {
		var (
			ad   domain.Advertisement
			nmID sql.NullInt64
		)
		if err := rows.Scan(&ad.ID, &ad.ShopID, &nmID, &ad.Amount, &ad.Date); err != nil {
			return nil, fmt.Errorf("erro ao escanear gasto com publicidade: %w", err)
		}
		if nmID.Valid {
			ad.NmID = &nmID.Int64
		}
		ads = append(ads, ad)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return ads, nil
}

func (r *shopConfigRepository) ListPenalties(shopID int64, start, end time.Time) ([]domain.Penalty, error) {
	query, args, err := squirrel.
		Select("p.id", "p.shop_id", "p.nm_id", "p.sum", "p.reason", "p.date").
		From(penaltiesTable).
		Where(squirrel.Eq{"p.shop_id": shopID}).
		Where(squirrel.GtOrEq{"p.date": start}).
		Where(squirrel.LtOrEq{"p.date": end}).
		OrderBy("p.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	penalties := make([]domain.Penalty, 0)
	for rows.Next() {
		var (
			p      domain.Penalty
			nmID   sql.NullInt64
			reason sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.ShopID, &nmID, &p.Sum, &reason, &p.Date); err != nil {
			return nil, fmt.Errorf("erro ao escanear penalidade: %w", err)
		}
		if nmID.Valid {
			p.NmID = &nmID.Int64
		}
		p.Reason = reason.String
		penalties = append(penalties, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return penalties, nil
}

func (r *shopConfigRepository) GetTaxSetting(shopID int64) (*domain.TaxSystemSetting, error) {
	query, args, err := squirrel.
		Select("ts.shop_id", "ts.tax_system", "COALESCE(ts.custom_percent, 0)").
		From(taxSettingsTable).
		Where(squirrel.Eq{"ts.shop_id": shopID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	setting := &domain.TaxSystemSetting{}
	err = r.conn.QueryRow(query, args...).Scan(&setting.ShopID, &setting.TaxSystem, &setting.CustomPercent)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar regime tributário: %w", err)
	}

	return setting, nil
}

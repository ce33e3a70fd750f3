package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/vfg2006/seller-pnl-api/infrastructure/database/postgres"
	"github.com/vfg2006/seller-pnl-api/internal/domain"
)

const (
	ledgerCacheTable = "cached_shop_data csd"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var partitionColumns = map[domain.LedgerPartition]string{
	domain.PartitionWeek:  "cached_week",
	domain.PartitionMonth: "cached_month",
	domain.PartitionYear:  "cached_year",
	domain.PartitionAll:   "cached_all",
}

type LedgerCacheRepository interface {
	// GetPartition retorna nil, nil quando a loja ainda não possui cache
	GetPartition(shopID int64, partition domain.LedgerPartition) (*domain.LedgerSnapshot, error)
	SaveSnapshot(snapshot *domain.LedgerSnapshot) error
}

type ledgerCacheRepository struct {
	conn *postgres.Connection
}

func NewLedgerCacheRepository(conn *postgres.Connection) LedgerCacheRepository {
	return &ledgerCacheRepository{
		conn: conn,
	}
}

func (r *ledgerCacheRepository) GetPartition(shopID int64, partition domain.LedgerPartition) (*domain.LedgerSnapshot, error) {
	column, ok := partitionColumns[partition]
	if !ok {
		return nil, fmt.Errorf("partição de cache desconhecida: %s", partition)
	}

	query, args, err := squirrel.
		Select("csd.shop_id", "csd."+column, "csd.updated_at").
		From(ledgerCacheTable).
		Where(squirrel.Eq{"csd.shop_id": shopID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		snapshot = &domain.LedgerSnapshot{}
		payload  []byte
	)

	err = r.conn.QueryRow(query, args...).Scan(&snapshot.ShopID, &payload, &snapshot.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar cache do relatório: %w", err)
	}

	records := make([]domain.LedgerRecord, 0)
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &records); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de %s: %w", column, err)
		}
	}

	snapshot.Records = map[domain.LedgerPartition][]domain.LedgerRecord{
		partition: records,
	}

	return snapshot, nil
}

func (r *ledgerCacheRepository) SaveSnapshot(snapshot *domain.LedgerSnapshot) error {
	values := make([]any, 0, len(partitionColumns)+2)
	values = append(values, snapshot.ShopID)

	for _, partition := range []domain.LedgerPartition{
		domain.PartitionWeek,
		domain.PartitionMonth,
		domain.PartitionYear,
		domain.PartitionAll,
	} {
		records := snapshot.Records[partition]
		if records == nil {
			records = []domain.LedgerRecord{}
		}

		payload, err := json.Marshal(records)
		if err != nil {
			return fmt.Errorf("erro ao serializar partição %s para JSON: %w", partition, err)
		}
		values = append(values, payload)
	}

	updatedAt := snapshot.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}
	values = append(values, updatedAt)

	query := squirrel.StatementBuilder.
		Insert("cached_shop_data").
		Columns("shop_id", "cached_week", "cached_month", "cached_year", "cached_all", "updated_at").
		Values(values...).
		Suffix(`
			ON CONFLICT (shop_id) DO UPDATE SET
				cached_week = EXCLUDED.cached_week,
				cached_month = EXCLUDED.cached_month,
				cached_year = EXCLUDED.cached_year,
				cached_all = EXCLUDED.cached_all,
				updated_at = EXCLUDED.updated_at
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/seller-pnl-api/infrastructure/database/postgres"
	"github.com/vfg2006/seller-pnl-api/internal/domain"
)

func newMockConnection(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &postgres.Connection{DB: db}, mock
}

func TestLedgerCacheRepository_GetPartition(t *testing.T) {
	updatedAt := time.Date(2025, 1, 16, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		partition domain.LedgerPartition
		setup     func(mock sqlmock.Sqlmock)
		validate  func(t *testing.T, snapshot *domain.LedgerSnapshot, err error)
	}{
		{
			name:      "Partição mensal decodificada em registros tipados",
			partition: domain.PartitionMonth,
			setup: func(mock sqlmock.Sqlmock) {
				payload := `[{"nm_id": 101, "sa_name": "ART-1", "quantity": 2, "retail_price_withdisc_rub": 500, "ppvz_for_pay": 450, "sale_dt": "2025-01-10T12:00:00"}]`
				mock.ExpectQuery(regexp.QuoteMeta("SELECT csd.shop_id, csd.cached_month, csd.updated_at FROM cached_shop_data csd WHERE csd.shop_id = $1")).
					WithArgs(int64(7)).
					WillReturnRows(sqlmock.NewRows([]string{"shop_id", "cached_month", "updated_at"}).
						AddRow(int64(7), []byte(payload), updatedAt))
			},
			validate: func(t *testing.T, snapshot *domain.LedgerSnapshot, err error) {
				require.NoError(t, err)
				require.NotNil(t, snapshot)
				records := snapshot.Records[domain.PartitionMonth]
				require.Len(t, records, 1)
				assert.Equal(t, int64(101), records[0].NmID)
				assert.Equal(t, "ART-1", records[0].SaName)
				assert.Equal(t, 2.0, records[0].Quantity)
				assert.Equal(t, updatedAt, snapshot.UpdatedAt)
			},
		},
		{
			name:      "Loja sem cache retorna nil sem erro",
			partition: domain.PartitionWeek,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT csd.shop_id, csd.cached_week")).
					WithArgs(int64(7)).
					WillReturnError(sql.ErrNoRows)
			},
			validate: func(t *testing.T, snapshot *domain.LedgerSnapshot, err error) {
				assert.NoError(t, err)
				assert.Nil(t, snapshot)
			},
		},
		{
			name:      "JSON inválido retorna erro",
			partition: domain.PartitionAll,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT csd.shop_id, csd.cached_all")).
					WithArgs(int64(7)).
					WillReturnRows(sqlmock.NewRows([]string{"shop_id", "cached_all", "updated_at"}).
						AddRow(int64(7), []byte(`{"broken"`), updatedAt))
			},
			validate: func(t *testing.T, snapshot *domain.LedgerSnapshot, err error) {
				assert.Error(t, err)
				assert.Nil(t, snapshot)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConnection(t)
			tt.setup(mock)

			repo := NewLedgerCacheRepository(conn)
			snapshot, err := repo.GetPartition(7, tt.partition)
			tt.validate(t, snapshot, err)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestLedgerCacheRepository_GetPartition_UnknownPartition(t *testing.T) {
	conn, mock := newMockConnection(t)

	repo := NewLedgerCacheRepository(conn)
	_, err := repo.GetPartition(7, domain.LedgerPartition("quarter"))

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerCacheRepository_SaveSnapshot(t *testing.T) {
	conn, mock := newMockConnection(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO cached_shop_data (shop_id,cached_week,cached_month,cached_year,cached_all,updated_at) VALUES ($1,$2,$3,$4,$5,$6)")).
		WithArgs(int64(3), sqlmock.AnyArg(), []byte(`[]`), []byte(`[]`), []byte(`[]`), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewLedgerCacheRepository(conn)
	err := repo.SaveSnapshot(&domain.LedgerSnapshot{
		ShopID: 3,
		Records: map[domain.LedgerPartition][]domain.LedgerRecord{
			domain.PartitionWeek: {{NmID: 5, Quantity: 1}},
		},
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShopRepository(t *testing.T) {
	now := time.Now()
	columns := []string{"id", "name", "api_token", "active", "created_at", "updated_at"}

	t.Run("Busca loja por ID", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT s.id, s.name, s.api_token, s.active, s.created_at, s.updated_at FROM shops s WHERE s.id = $1")).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(int64(1), "Loja Centro", "token", true, now, now))

		shop, err := NewShopRepository(conn).GetShopByID(1)
		require.NoError(t, err)
		assert.Equal(t, "Loja Centro", shop.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Loja inexistente retorna nil", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		mock.ExpectQuery("SELECT (.+) FROM shops s").
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)

		shop, err := NewShopRepository(conn).GetShopByID(99)
		assert.NoError(t, err)
		assert.Nil(t, shop)
	})

	t.Run("Lista apenas lojas ativas com token", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM shops s WHERE s.active = $1 AND s.api_token <> $2 ORDER BY s.id ASC")).
			WithArgs(true, "").
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(int64(1), "A", "t1", true, now, now).
				AddRow(int64(2), "B", "t2", true, now, now))

		shops, err := NewShopRepository(conn).ListActiveShops()
		require.NoError(t, err)
		assert.Len(t, shops, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository(t *testing.T) {
	date := time.Date(2025, 1, 14, 9, 0, 0, 0, time.UTC)
	columns := []string{"id", "shop_id", "srid", "nm_id", "supplier_article", "price_with_disc", "for_pay", "is_bought", "is_cancel", "date"}

	t.Run("Lista pedidos comprados desde a data", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM orders o WHERE (")).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(int64(1), int64(7), "srid-1", int64(101), "ART-1", 500.0, 450.0, true, false, date))

		orders, err := NewOrderRepository(conn).ListPurchasedSince(7, date.AddDate(0, 0, -1))
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, "ART-1", orders[0].SupplierArticle)
		assert.True(t, orders[0].Counts())
		assert.Equal(t, 50.0, orders[0].Profit())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Salva pedidos com upsert por srid", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO orders")).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		err := NewOrderRepository(conn).SaveOrders([]domain.OrderRecord{
			{ShopID: 7, Srid: "a", NmID: 1, Date: date},
			{ShopID: 7, Srid: "b", NmID: 2, Date: date},
		})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Lista vazia não executa query", func(t *testing.T) {
		conn, mock := newMockConnection(t)

		err := NewOrderRepository(conn).SaveOrders(nil)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_SaveOrders(t *testing.T) {
	saleDate := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	returnDate := saleDate.Add(48 * time.Hour)

	manyOrders := func(n int) []domain.OrderRecord {
		orders := make([]domain.OrderRecord, n)
		for i := range orders {
			orders[i] = domain.OrderRecord{ShopID: 7, Srid: fmt.Sprintf("srid-%d", i), NmID: int64(i), Date: saleDate}
		}
		return orders
	}

	tests := []struct {
		name     string
		orders   []domain.OrderRecord
		setup    func(mock sqlmock.Sqlmock)
		validate func(t *testing.T, err error)
	}{
		{
			name: "Srid repetido grava só a linha mais recente",
			orders: []domain.OrderRecord{
				{ShopID: 7, Srid: "a", NmID: 1, SupplierArticle: "ART-1", PriceWithDisc: 500, ForPay: 450, IsBought: true, Date: saleDate},
				{ShopID: 7, Srid: "a", NmID: 1, SupplierArticle: "ART-1", PriceWithDisc: 500, ForPay: 450, IsCancel: true, Date: returnDate},
			},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO orders")).
					WithArgs(int64(7), "a", int64(1), "ART-1", 500.0, 450.0, false, true, returnDate).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:   "Volume grande é dividido em lotes na mesma transação",
			orders: manyOrders(2*orderBatchSize + 500),
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				for i := 0; i < 3; i++ {
					mock.ExpectExec(regexp.QuoteMeta("INSERT INTO orders")).
						WillReturnResult(sqlmock.NewResult(0, orderBatchSize))
				}
				mock.ExpectCommit()
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:   "Falha em um lote desfaz a transação",
			orders: manyOrders(orderBatchSize + 1),
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO orders")).
					WillReturnResult(sqlmock.NewResult(0, orderBatchSize))
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO orders")).
					WillReturnError(errors.New("conexão perdida"))
				mock.ExpectRollback()
			},
			validate: func(t *testing.T, err error) {
				assert.ErrorContains(t, err, "conexão perdida")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConnection(t)
			tt.setup(mock)

			err := NewOrderRepository(conn).SaveOrders(tt.orders)
			tt.validate(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDedupeOrders(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	orders := []domain.OrderRecord{
		{ShopID: 7, Srid: "a", ForPay: 1, Date: day.Add(time.Hour)},
		{ShopID: 7, Srid: "b", ForPay: 2, Date: day},
		{ShopID: 7, Srid: "a", ForPay: 3, Date: day},
		{ShopID: 8, Srid: "a", ForPay: 4, Date: day},
		{ShopID: 7, Srid: "b", ForPay: 5, Date: day},
	}

	unique := dedupeOrders(orders)
	require.Len(t, unique, 3)

	// linha mais antiga não substitui a mais recente
	assert.Equal(t, 1.0, unique[0].ForPay)
	// empate de data fica com a última ocorrência
	assert.Equal(t, 5.0, unique[1].ForPay)
	// srid igual em outra loja é outro pedido
	assert.Equal(t, int64(8), unique[2].ShopID)
}

func TestOrderBatches(t *testing.T) {
	orders := make([]domain.OrderRecord, 2*orderBatchSize+1)

	batches := orderBatches(orders)
	require.Len(t, batches, 3)
	for _, batch := range batches {
		assert.LessOrEqual(t, len(batch)*len(orderInsertColumns), 65535)
	}
	assert.Len(t, batches[2], 1)
	assert.Empty(t, orderBatches(nil))
}

func TestShopConfigRepository(t *testing.T) {
	t.Run("Regime tributário ausente retorna nil", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM tax_settings ts WHERE ts.shop_id = $1")).
			WithArgs(int64(7)).
			WillReturnError(sql.ErrNoRows)

		setting, err := NewShopConfigRepository(conn).GetTaxSetting(7)
		assert.NoError(t, err)
		assert.Nil(t, setting)
		assert.Equal(t, 0.0, setting.Rate())
	})

	t.Run("Publicidade sem artigo mantém nm_id nulo", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

		mock.ExpectQuery(regexp.QuoteMeta("FROM advertisements a WHERE a.shop_id = $1 AND a.date >= $2 AND a.date <= $3")).
			WithArgs(int64(7), start, end).
			WillReturnRows(sqlmock.NewRows([]string{"id", "shop_id", "nm_id", "amount", "date"}).
				AddRow(int64(1), int64(7), nil, 150.0, start).
				AddRow(int64(2), int64(7), int64(101), 50.0, end))

		ads, err := NewShopConfigRepository(conn).ListAdvertisements(7, start, end)
		require.NoError(t, err)
		require.Len(t, ads, 2)
		assert.Nil(t, ads[0].NmID)
		require.NotNil(t, ads[1].NmID)
		assert.Equal(t, int64(101), *ads[1].NmID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Custos de produto por artigo", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM product_costs pc WHERE pc.shop_id = $1")).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "shop_id", "article", "cost"}).
				AddRow(int64(1), int64(7), "ART-1", 100.0))

		costs, err := NewShopConfigRepository(conn).ListProductCosts(7)
		require.NoError(t, err)
		cfg := domain.ShopConfiguration{ProductCosts: costs}
		assert.Equal(t, 100.0, cfg.CostByArticle()["ART-1"])
	})
}

func TestUserRepository_GetUserByEmail(t *testing.T) {
	conn, mock := newMockConnection(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users u WHERE u.deleted = $1 AND u.email = $2")).
		WithArgs(false, "ana@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "active", "role_id", "created_at", "updated_at"}).
			AddRow(1, "Ana", "ana@example.com", "hash", true, 2, now, now))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT shop_id FROM user_shops WHERE user_id = $1")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"shop_id"}).AddRow(int64(7)).AddRow(int64(9)))

	user, err := NewUserRepository(conn).GetUserByEmail("ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, []int64{7, 9}, user.ShopIDs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

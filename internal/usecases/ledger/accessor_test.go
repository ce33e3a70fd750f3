package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/seller-pnl-api/infrastructure/repository/mocks"
	"github.com/vfg2006/seller-pnl-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestAccessor_Records(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLedgerCacheRepository(ctrl)
	accessor := NewAccessor(mockRepo)

	day := domain.Period{
		Kind:  domain.PeriodCustom,
		Size:  domain.CustomSizeDay,
		Start: time.Date(2025, 1, 10, 0, 0, 0, 0, time.Local),
		End:   time.Date(2025, 1, 10, 23, 59, 59, 0, time.Local),
	}

	tests := []struct {
		name     string
		period   domain.Period
		setup    func()
		validate func(t *testing.T, records []domain.LedgerRecord, err error)
	}{
		{
			name:   "Semana usa a partição semanal sem filtro",
			period: domain.Period{Kind: domain.PeriodWeek},
			setup: func() {
				mockRepo.EXPECT().
					GetPartition(int64(1), domain.PartitionWeek).
					Return(&domain.LedgerSnapshot{
						ShopID: 1,
						Records: map[domain.LedgerPartition][]domain.LedgerRecord{
							domain.PartitionWeek: {{NmID: 1}, {NmID: 2, SaleDt: "lixo"}},
						},
					}, nil)
			},
			validate: func(t *testing.T, records []domain.LedgerRecord, err error) {
				require.NoError(t, err)
				assert.Len(t, records, 2)
			},
		},
		{
			name:   "Dia personalizado filtra a partição completa pela data de venda",
			period: day,
			setup: func() {
				mockRepo.EXPECT().
					GetPartition(int64(1), domain.PartitionAll).
					Return(&domain.LedgerSnapshot{
						ShopID: 1,
						Records: map[domain.LedgerPartition][]domain.LedgerRecord{
							domain.PartitionAll: {
								{NmID: 1, SaleDt: "2025-01-10T08:00:00"},
								{NmID: 2, SaleDt: "2025-01-11T08:00:00"},
								{NmID: 3, SaleDt: "data inválida"},
								{NmID: 4, SaleDt: "2025-01-10"},
							},
						},
					}, nil)
			},
			validate: func(t *testing.T, records []domain.LedgerRecord, err error) {
				require.NoError(t, err)
				require.Len(t, records, 2)
				assert.Equal(t, int64(1), records[0].NmID)
				assert.Equal(t, int64(4), records[1].NmID)
			},
		},
		{
			name:   "Cache ausente retorna ErrCacheNotWarmed",
			period: domain.Period{Kind: domain.PeriodMonth},
			setup: func() {
				mockRepo.EXPECT().
					GetPartition(int64(1), domain.PartitionMonth).
					Return(nil, nil)
			},
			validate: func(t *testing.T, records []domain.LedgerRecord, err error) {
				assert.ErrorIs(t, err, ErrCacheNotWarmed)
				assert.Nil(t, records)
			},
		},
		{
			name:   "Partição vazia é resultado válido",
			period: domain.Period{Kind: domain.PeriodYear},
			setup: func() {
				mockRepo.EXPECT().
					GetPartition(int64(1), domain.PartitionYear).
					Return(&domain.LedgerSnapshot{ShopID: 1}, nil)
			},
			validate: func(t *testing.T, records []domain.LedgerRecord, err error) {
				require.NoError(t, err)
				assert.NotNil(t, records)
				assert.Empty(t, records)
			},
		},
		{
			name:   "Erro do repositório é propagado",
			period: domain.Period{Kind: domain.PeriodWeek},
			setup: func() {
				mockRepo.EXPECT().
					GetPartition(int64(1), domain.PartitionWeek).
					Return(nil, errors.New("conexão recusada"))
			},
			validate: func(t *testing.T, records []domain.LedgerRecord, err error) {
				assert.Error(t, err)
				assert.False(t, errors.Is(err, ErrCacheNotWarmed))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			records, err := accessor.Records(context.Background(), 1, tt.period)
			tt.validate(t, records, err)
		})
	}
}

func TestAccessor_CanceledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewAccessor(mocks.NewMockLedgerCacheRepository(ctrl)).AllRecords(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seller-pnl-api/infrastructure/repository"
	"github.com/vfg2006/seller-pnl-api/internal/domain"
)

// ErrCacheNotWarmed indica que o cache da loja ainda não foi gerado pelo agendador
var ErrCacheNotWarmed = errors.New("cache do relatório financeiro ainda não disponível, tente novamente em 1-2 minutos")

type Accessor struct {
	repo repository.LedgerCacheRepository
}

func NewAccessor(repo repository.LedgerCacheRepository) *Accessor {
	return &Accessor{repo: repo}
}

// Records retorna as linhas do relatório que pertencem ao período.
// Semana, mês e ano vêm direto da partição correspondente; dia e personalizado
// são filtrados pela data de venda a partir da partição completa.
func (a *Accessor) Records(ctx context.Context, shopID int64, period domain.Period) ([]domain.LedgerRecord, error) {
	partition := period.Partition()

	records, err := a.partition(ctx, shopID, partition)
	if err != nil {
		return nil, err
	}

	if partition != domain.PartitionAll {
		return records, nil
	}

	return FilterByPeriod(records, period), nil
}

// AllRecords retorna a partição completa sem filtro
func (a *Accessor) AllRecords(ctx context.Context, shopID int64) ([]domain.LedgerRecord, error) {
	return a.partition(ctx, shopID, domain.PartitionAll)
}

func (a *Accessor) partition(ctx context.Context, shopID int64, partition domain.LedgerPartition) ([]domain.LedgerRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snapshot, err := a.repo.GetPartition(shopID, partition)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler cache da loja %d: %w", shopID, err)
	}

	if snapshot == nil {
		return nil, ErrCacheNotWarmed
	}

	records := snapshot.Records[partition]
	if records == nil {
		records = []domain.LedgerRecord{}
	}

	return records, nil
}

// FilterByPeriod mantém apenas as linhas cuja data de venda está dentro do período.
// Linhas com data ilegível são descartadas.
func FilterByPeriod(records []domain.LedgerRecord, period domain.Period) []domain.LedgerRecord {
	filtered := make([]domain.LedgerRecord, 0, len(records))
	skipped := 0

	for _, record := range records {
		saleDate, err := record.SaleDate()
		if err != nil {
			skipped++
			continue
		}

		if period.Contains(saleDate) {
			filtered = append(filtered, record)
		}
	}

	if skipped > 0 {
		logrus.WithFields(logrus.Fields{
			"skipped": skipped,
			"start":   period.Start,
			"end":     period.End,
		}).Debug("ledger: linhas com data de venda inválida ignoradas")
	}

	return filtered
}

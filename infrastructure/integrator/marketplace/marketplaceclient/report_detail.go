package marketplaceclient

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/seller-pnl-api/internal/domain"
)

const (
	reportDetailPath = "/api/v5/supplier/reportDetailByPeriod"
	// reportPageLimit é o máximo de linhas por página aceito pelo relatório
	reportPageLimit = 100000
)

func (c *MarketplaceClient) GetReportDetail(ctx context.Context, token string, from, to time.Time) ([]domain.LedgerRecord, error) {
	records := make([]domain.LedgerRecord, 0)

	for _, interval := range SplitIntervals(from, to, c.chunkDays) {
		chunk, err := c.reportDetailChunk(ctx, token, interval)
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao buscar relatório de %s a %s",
				interval.From.Format(time.DateOnly), interval.To.Format(time.DateOnly))
		}
		records = append(records, chunk...)
	}

	logrus.WithFields(logrus.Fields{
		"from":    from.Format(time.DateOnly),
		"to":      to.Format(time.DateOnly),
		"records": len(records),
	}).Debug("marketplace: relatório detalhado obtido")

	return records, nil
}

// reportDetailChunk pagina pelo rrd_id da última linha até receber uma página incompleta
func (c *MarketplaceClient) reportDetailChunk(ctx context.Context, token string, interval Interval) ([]domain.LedgerRecord, error) {
	records := make([]domain.LedgerRecord, 0)
	var rrdID int64

	for {
		query := url.Values{}
		query.Set("dateFrom", interval.From.Format(time.DateOnly))
		query.Set("dateTo", interval.To.Format(time.DateOnly))
		query.Set("limit", strconv.Itoa(reportPageLimit))
		query.Set("rrdid", strconv.FormatInt(rrdID, 10))

		var page []domain.LedgerRecord
		if err := c.getJSON(ctx, token, reportDetailPath, query, &page); err != nil {
			return nil, err
		}

		records = append(records, page...)

		if len(page) < reportPageLimit {
			return records, nil
		}
		rrdID = page[len(page)-1].RrdID
	}
}

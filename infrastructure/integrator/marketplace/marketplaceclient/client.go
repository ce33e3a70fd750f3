package marketplaceclient

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/vfg2006/seller-pnl-api/internal/config"
	"github.com/vfg2006/seller-pnl-api/internal/domain"
)

const (
	defaultChunkDays  = 28
	defaultMaxRetries = 3
	defaultRetryDelay = 5 * time.Second
	// defaultRetryAfter é a espera quando o marketplace responde 429 sem o cabeçalho X-Ratelimit-Retry
	defaultRetryAfter = 54 * time.Second
)

type Client interface {
	// GetReportDetail busca o relatório financeiro detalhado, dividindo o intervalo em blocos
	GetReportDetail(ctx context.Context, token string, from, to time.Time) ([]domain.LedgerRecord, error)
	// GetSales busca as vendas e devoluções registradas a partir de "since"
	GetSales(ctx context.Context, token string, since time.Time) ([]Sale, error)
}

type MarketplaceClient struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	chunkDays  int
	maxRetries int
	retryDelay time.Duration
	sleep      func(ctx context.Context, d time.Duration) error
}

// NewClient cria o cliente da API de estatísticas do marketplace.
// Todas as chamadas compartilham o mesmo limitador de taxa.
func NewClient(cfg *config.Config) *MarketplaceClient {
	timeout := time.Duration(cfg.Marketplace.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	chunkDays := cfg.Marketplace.ChunkDays
	if chunkDays <= 0 {
		chunkDays = defaultChunkDays
	}

	burst := cfg.Marketplace.Burst
	if burst <= 0 {
		burst = 1
	}

	limit := rate.Inf
	if cfg.Marketplace.RatePerSecond > 0 {
		limit = rate.Limit(cfg.Marketplace.RatePerSecond)
	}

	return &MarketplaceClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:    cfg.Marketplace.StatisticsURL,
		limiter:    rate.NewLimiter(limit, burst),
		chunkDays:  chunkDays,
		maxRetries: defaultMaxRetries,
		retryDelay: defaultRetryDelay,
		sleep:      sleepContext,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Interval é um bloco [From, To] de datas enviado em uma única chamada
type Interval struct {
	From time.Time
	To   time.Time
}

// SplitIntervals divide o período em blocos de no máximo chunkDays dias de calendário,
// com as duas pontas inclusivas e sem sobreposição
func SplitIntervals(from, to time.Time, chunkDays int) []Interval {
	intervals := make([]Interval, 0)
	if chunkDays <= 0 {
		chunkDays = defaultChunkDays
	}

	current := from
	for !current.After(to) {
		// To é inclusivo: o bloco termina chunkDays-1 dias depois do início
		next := current.AddDate(0, 0, chunkDays-1)
		if next.After(to) {
			next = to
		}
		intervals = append(intervals, Interval{From: current, To: next})
		current = next.AddDate(0, 0, 1)
	}

	return intervals
}

package allocating

import (
	"github.com/vfg2006/seller-pnl-api/internal/domain"
)

// Adjustment é o ajuste aplicado a um artigo a partir das linhas sem artigo
type Adjustment struct {
	Commission float64
	Deduction  float64
	Storage    float64
}

// ReconcileUnattributed trata as linhas do relatório sem artigo (nm_id zero).
// Linhas do serviço de promoção são ignoradas. A remuneração de uma linha sem artigo
// é abatida da comissão do artigo que tem a mesma srid; retenções e armazenagem
// restantes são rateadas entre os artigos conhecidos pela estratégia informada.
func ReconcileUnattributed(records []domain.LedgerRecord, shares []Share, strategy Strategy) map[string]Adjustment {
	adjustments := make(map[string]Adjustment, len(shares))
	if len(shares) == 0 {
		return adjustments
	}

	known := make(map[string]struct{}, len(shares))
	for _, share := range shares {
		known[share.Key] = struct{}{}
	}

	articleBySrid := make(map[string]string)
	for _, r := range records {
		if r.Srid == "" || r.SaName == "" {
			continue
		}
		if _, ok := articleBySrid[r.Srid]; !ok {
			articleBySrid[r.Srid] = r.SaName
		}
	}

	var deduction, storage float64
	for _, r := range records {
		if r.HasArticle() || r.IsPromotionService() {
			continue
		}

		if r.PpvzReward != 0 {
			if article, ok := articleBySrid[r.Srid]; ok {
				if _, isKnown := known[article]; isKnown {
					adj := adjustments[article]
					adj.Commission -= r.PpvzReward
					adjustments[article] = adj
				}
			}
		}

		deduction += r.Deduction
		storage += r.StorageFee
	}

	for key, part := range strategy.Allocate(deduction, shares) {
		adj := adjustments[key]
		adj.Deduction += part
		adjustments[key] = adj
	}

	for key, part := range strategy.Allocate(storage, shares) {
		adj := adjustments[key]
		adj.Storage += part
		adjustments[key] = adj
	}

	return adjustments
}

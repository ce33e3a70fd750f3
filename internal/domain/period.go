package domain

import "time"

type PeriodKind string

const (
	PeriodDay    PeriodKind = "day"
	PeriodWeek   PeriodKind = "week"
	PeriodMonth  PeriodKind = "month"
	PeriodYear   PeriodKind = "year"
	PeriodCustom PeriodKind = "custom"
)

type CustomSize string

const (
	CustomSizeDay   CustomSize = "day"
	CustomSizeWeek  CustomSize = "week"
	CustomSizeMonth CustomSize = "month"
)

// Period é um intervalo resolvido, com início inclusivo
type Period struct {
	Kind  PeriodKind `json:"kind"`
	Size  CustomSize `json:"size,omitempty"`
	Start time.Time  `json:"start"`
	End   time.Time  `json:"end"`
}

// Days retorna a quantidade de dias de calendário cobertos pelo período, incluindo as pontas
func (p Period) Days() int {
	start := time.Date(p.Start.Year(), p.Start.Month(), p.Start.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(p.End.Year(), p.End.Month(), p.End.Day(), 0, 0, 0, 0, time.UTC)
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// Partition indica qual partição do cache atende o período.
// Períodos de um dia e personalizados são filtrados a partir da partição completa.
func (p Period) Partition() LedgerPartition {
	switch p.Kind {
	case PeriodWeek:
		return PartitionWeek
	case PeriodMonth:
		return PartitionMonth
	case PeriodYear:
		return PartitionYear
	default:
		return PartitionAll
	}
}

func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

package period

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/seller-pnl-api/internal/domain"
)

var (
	ErrUnknownPeriodKind = errors.New("tipo de período desconhecido")
	ErrUnknownCustomSize = errors.New("tamanho de período personalizado desconhecido")
	ErrMissingAnchor     = errors.New("data de referência obrigatória para período personalizado")
)

// Request descreve o período pedido pelo usuário
type Request struct {
	Kind   domain.PeriodKind
	Size   domain.CustomSize
	Anchor time.Time
}

// ParseKind converte o token recebido na API para o tipo de período
func ParseKind(token string) (domain.PeriodKind, error) {
	kind := domain.PeriodKind(strings.ToLower(strings.TrimSpace(token)))
	switch kind {
	case domain.PeriodDay, domain.PeriodWeek, domain.PeriodMonth, domain.PeriodYear, domain.PeriodCustom:
		return kind, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPeriodKind, token)
	}
}

func ParseCustomSize(token string) (domain.CustomSize, error) {
	size := domain.CustomSize(strings.ToLower(strings.TrimSpace(token)))
	switch size {
	case domain.CustomSizeDay, domain.CustomSizeWeek, domain.CustomSizeMonth:
		return size, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCustomSize, token)
	}
}

// Resolve calcula os limites do período. Para períodos correntes o fim é o próprio "now".
func Resolve(req Request, now time.Time) (domain.Period, error) {
	today := startOfDay(now)

	switch req.Kind {
	case domain.PeriodDay:
		return domain.Period{Kind: req.Kind, Start: today, End: now}, nil
	case domain.PeriodWeek:
		return domain.Period{Kind: req.Kind, Start: WeekStart(now), End: now}, nil
	case domain.PeriodMonth:
		return domain.Period{Kind: req.Kind, Start: MonthStart(now), End: now}, nil
	case domain.PeriodYear:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return domain.Period{Kind: req.Kind, Start: start, End: now}, nil
	case domain.PeriodCustom:
		return resolveCustom(req)
	default:
		return domain.Period{}, fmt.Errorf("%w: %q", ErrUnknownPeriodKind, req.Kind)
	}
}

func resolveCustom(req Request) (domain.Period, error) {
	if req.Anchor.IsZero() {
		return domain.Period{}, ErrMissingAnchor
	}

	anchor := startOfDay(req.Anchor)
	var start, end time.Time

	switch req.Size {
	case domain.CustomSizeDay:
		start = anchor
		end = endOfDay(anchor)
	case domain.CustomSizeWeek:
		start = WeekStart(anchor)
		end = endOfDay(start.AddDate(0, 0, 6))
	case domain.CustomSizeMonth:
		start = MonthStart(anchor)
		end = endOfDay(start.AddDate(0, 1, -1))
	default:
		return domain.Period{}, fmt.Errorf("%w: %q", ErrUnknownCustomSize, req.Size)
	}

	return domain.Period{Kind: domain.PeriodCustom, Size: req.Size, Start: start, End: end}, nil
}

// Previous retorna o período imediatamente anterior, com a mesma duração
func Previous(p domain.Period) domain.Period {
	// sempre personalizado: lido da partição completa com filtro por data
	prev := domain.Period{Kind: domain.PeriodCustom, Size: p.Size}

	switch p.Kind {
	case domain.PeriodWeek:
		prev.Size = domain.CustomSizeWeek
		prev.Start, prev.End = p.Start.AddDate(0, 0, -7), p.Start.Add(-time.Nanosecond)
	case domain.PeriodMonth:
		prev.Size = domain.CustomSizeMonth
		prev.Start, prev.End = p.Start.AddDate(0, -1, 0), p.Start.Add(-time.Nanosecond)
	case domain.PeriodYear:
		prev.Start, prev.End = p.Start.AddDate(-1, 0, 0), p.Start.Add(-time.Nanosecond)
	case domain.PeriodCustom:
		switch p.Size {
		case domain.CustomSizeMonth:
			prev.Start, prev.End = p.Start.AddDate(0, -1, 0), endOfDay(p.Start.AddDate(0, 0, -1))
		case domain.CustomSizeWeek:
			prev.Start = p.Start.AddDate(0, 0, -7)
			prev.End = endOfDay(prev.Start.AddDate(0, 0, 6))
		default:
			prev.Start = p.Start.AddDate(0, 0, -1)
			prev.End = endOfDay(prev.Start)
		}
	default:
		prev.Size = domain.CustomSizeDay
		prev.Start = startOfDay(p.Start).AddDate(0, 0, -1)
		prev.End = endOfDay(prev.Start)
	}

	return prev
}

// LastDays retorna a janela móvel dos últimos n dias até "now"
func LastDays(n int, now time.Time) domain.Period {
	return domain.Period{Kind: domain.PeriodCustom, Start: now.AddDate(0, 0, -n), End: now}
}

// WeekStart retorna a segunda-feira 00:00 da semana ISO que contém t
func WeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return startOfDay(t).AddDate(0, 0, -offset)
}

func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

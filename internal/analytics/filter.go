package analytics

import (
	"time"

	"github.com/thisisbigmike/deriversedashboard/internal/domain"
)

// FilterAll is the pass-through value for any filter dimension.
const FilterAll = "all"

type Timeframe string

const (
	Timeframe7D  Timeframe = "7D"
	Timeframe30D Timeframe = "30D"
	Timeframe90D Timeframe = "90D"
	TimeframeAll Timeframe = "ALL"
)

var timeframeDays = map[Timeframe]int{
	Timeframe7D:  7,
	Timeframe30D: 30,
	Timeframe90D: 90,
	TimeframeAll: 365,
}

// Days returns the lookback window; unknown timeframes behave as ALL.
func (tf Timeframe) Days() int {
	if days, ok := timeframeDays[tf]; ok {
		return days
	}
	return timeframeDays[TimeframeAll]
}

// Filter narrows a trade set by symbol, order type, side and a lookback
// window. Stateless: it is re-applied on every input change, which is a
// linear scan and cheap relative to the staleness risk of caching.
type Filter struct {
	Symbol    string
	OrderType string
	Side      string
	Timeframe Timeframe
}

// DefaultFilter matches the dashboard's initial selection.
func DefaultFilter() Filter {
	return Filter{
		Symbol:    FilterAll,
		OrderType: FilterAll,
		Side:      FilterAll,
		Timeframe: Timeframe30D,
	}
}

// Apply returns the trades passing every predicate. The time cutoff is
// computed as now minus the timeframe's day count.
func (f Filter) Apply(trades []domain.Trade, now time.Time) []domain.Trade {
	cutoff := now.AddDate(0, 0, -f.Timeframe.Days())

	out := make([]domain.Trade, 0, len(trades))
	for _, t := range trades {
		if !f.matches(t, cutoff) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (f Filter) matches(t domain.Trade, cutoff time.Time) bool {
	if f.Symbol != "" && f.Symbol != FilterAll && t.Symbol != f.Symbol {
		return false
	}
	if f.OrderType != "" && f.OrderType != FilterAll && string(t.OrderType) != f.OrderType {
		return false
	}
	if f.Side != "" && f.Side != FilterAll && string(t.Side) != f.Side {
		return false
	}
	return !t.EntryTime.Before(cutoff)
}

package analytics

import (
	"math"
	"sort"

	"github.com/thisisbigmike/deriversedashboard/internal/domain"
)

// Calendar-date bucketing uses UTC everywhere: daily PnL, volume series
// and the heatmap all key on the UTC components of entryTime so that one
// trade always lands in the same bucket regardless of server locale.

const dateLayout = "2006-01-02"

// tradingDaysPerYear annualizes the Sharpe ratio.
const tradingDaysPerYear = 252

// DailyPnL groups trades by UTC entry date and walks the dates in order,
// accumulating cumulative PnL and tracking drawdown against the running
// peak equity. Peak equity starts at initialBalance.
func DailyPnL(trades []domain.Trade, initialBalance float64) []domain.DailyPnL {
	type bucket struct {
		pnl    float64
		trades int
	}

	daily := make(map[string]*bucket)
	for _, t := range trades {
		key := t.EntryTime.UTC().Format(dateLayout)
		b, ok := daily[key]
		if !ok {
			b = &bucket{}
			daily[key] = b
		}
		b.pnl += t.Pnl
		b.trades++
	}

	dates := make([]string, 0, len(daily))
	for date := range daily {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	startingEquity := initialBalance
	if startingEquity < 0 {
		startingEquity = 0
	}
	peakEquity := startingEquity

	var cumulative float64
	out := make([]domain.DailyPnL, 0, len(dates))
	for _, date := range dates {
		b := daily[date]
		cumulative += b.pnl

		currentEquity := startingEquity + cumulative
		if currentEquity > peakEquity {
			peakEquity = currentEquity
		}

		var drawdown float64
		if peakEquity > 0 {
			drawdown = (peakEquity - currentEquity) / peakEquity * 100
		}

		out = append(out, domain.DailyPnL{
			Date:          date,
			Pnl:           sanitizeCurrency(b.pnl),
			CumulativePnl: sanitizeCurrency(cumulative),
			Drawdown:      round(drawdown, 2),
			Trades:        b.trades,
		})
	}

	return out
}

// SharpeRatio annualizes mean/stddev of the raw per-day PnL values.
// This intentionally matches the dashboard's historical formula, which
// uses currency PnL rather than returns on equity; see DESIGN.md.
func SharpeRatio(daily []domain.DailyPnL) float64 {
	if len(daily) < 2 {
		return 0
	}

	var sum float64
	for _, d := range daily {
		sum += d.Pnl
	}
	mean := sum / float64(len(daily))

	var sq float64
	for _, d := range daily {
		diff := d.Pnl - mean
		sq += diff * diff
	}
	stddev := math.Sqrt(sq / float64(len(daily)-1))
	if stddev == 0 {
		return 0
	}

	return mean / stddev * math.Sqrt(tradingDaysPerYear)
}

// MaxDrawdown is the largest per-day drawdown in the series.
func MaxDrawdown(daily []domain.DailyPnL) float64 {
	var max float64
	for _, d := range daily {
		if d.Drawdown > max {
			max = d.Drawdown
		}
	}
	return max
}

// FeeBreakdown sums maker, taker and funding fees independently across
// the trade set. The total equals the sum of each trade's TotalFees
// within rounding.
func FeeBreakdown(trades []domain.Trade) domain.FeeBreakdown {
	var maker, taker, funding float64
	for _, t := range trades {
		maker += t.MakerFee
		taker += t.TakerFee
		funding += t.FundingFee
	}

	return domain.FeeBreakdown{
		Maker:   round(maker, 2),
		Taker:   round(taker, 2),
		Funding: round(funding, 2),
		Total:   round(maker+taker+funding, 2),
	}
}

// VolumeData sums notional per UTC entry date, ascending by date.
func VolumeData(trades []domain.Trade) []domain.VolumeData {
	type bucket struct {
		volume float64
		trades int
	}

	daily := make(map[string]*bucket)
	for _, t := range trades {
		key := t.EntryTime.UTC().Format(dateLayout)
		b, ok := daily[key]
		if !ok {
			b = &bucket{}
			daily[key] = b
		}
		b.volume += t.Notional
		b.trades++
	}

	dates := make([]string, 0, len(daily))
	for date := range daily {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	out := make([]domain.VolumeData, 0, len(dates))
	for _, date := range dates {
		b := daily[date]
		out = append(out, domain.VolumeData{
			Date:   date,
			Volume: round(b.volume, 2),
			Trades: b.trades,
		})
	}

	return out
}

// HeatmapData buckets trades into a 7x24 weekday-by-hour grid keyed on
// UTC entry time. Only non-empty cells are emitted, ordered by day then
// hour.
func HeatmapData(trades []domain.Trade) []domain.HeatmapData {
	type cell struct {
		pnl    float64
		trades int
	}

	grid := make(map[int]*cell)
	for _, t := range trades {
		entry := t.EntryTime.UTC()
		key := int(entry.Weekday())*24 + entry.Hour()
		c, ok := grid[key]
		if !ok {
			c = &cell{}
			grid[key] = c
		}
		c.pnl += t.Pnl
		c.trades++
	}

	out := make([]domain.HeatmapData, 0, len(grid))
	for day := 0; day < 7; day++ {
		for hour := 0; hour < 24; hour++ {
			c, ok := grid[day*24+hour]
			if !ok {
				continue
			}
			out = append(out, domain.HeatmapData{
				Hour:      hour,
				DayOfWeek: day,
				Pnl:       round(c.pnl, 2),
				Trades:    c.trades,
			})
		}
	}

	return out
}

// SymbolStats groups trades by symbol and reports count, PnL, win rate
// and volume per symbol, sorted by PnL descending.
func SymbolStats(trades []domain.Trade) []domain.SymbolStats {
	grouped := make(map[string][]domain.Trade)
	for _, t := range trades {
		grouped[t.Symbol] = append(grouped[t.Symbol], t)
	}

	out := make([]domain.SymbolStats, 0, len(grouped))
	for symbol, symbolTrades := range grouped {
		var pnl, volume float64
		var winners int
		for _, t := range symbolTrades {
			pnl += t.Pnl
			volume += t.Notional
			if t.Pnl > 0 {
				winners++
			}
		}

		out = append(out, domain.SymbolStats{
			Symbol:  symbol,
			Trades:  len(symbolTrades),
			Pnl:     round(pnl, 2),
			WinRate: round(float64(winners)/float64(len(symbolTrades))*100, 1),
			Volume:  round(volume, 2),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Pnl != out[j].Pnl {
			return out[i].Pnl > out[j].Pnl
		}
		return out[i].Symbol < out[j].Symbol
	})

	return out
}

package analytics

import (
	"math"

	"github.com/thisisbigmike/deriversedashboard/internal/domain"
)

// profitFactorCap is emitted instead of +Inf when there are winning
// trades but no losing ones.
const profitFactorCap = 999

// PortfolioStats composes the metric primitives into one summary record.
// An empty trade set returns the all-zero record so downstream consumers
// never divide by zero. Trades with pnl exactly 0 count toward totals but
// neither the winner nor the loser bucket.
func PortfolioStats(trades []domain.Trade, initialBalance float64) domain.PortfolioStats {
	if len(trades) == 0 {
		return domain.PortfolioStats{}
	}

	var (
		winners, losers, longs           int
		grossProfit, grossLoss           float64
		totalPnl, totalVolume, totalFees float64
		totalDuration                    float64
		largestWin, largestLoss          float64
	)

	for _, t := range trades {
		totalPnl += t.Pnl
		totalVolume += t.Notional
		totalFees += t.TotalFees
		totalDuration += t.Duration

		if t.Side == domain.TradeSideLong {
			longs++
		}

		switch {
		case t.Pnl > 0:
			winners++
			grossProfit += t.Pnl
			if t.Pnl > largestWin {
				largestWin = t.Pnl
			}
		case t.Pnl < 0:
			losers++
			grossLoss += math.Abs(t.Pnl)
			if t.Pnl < largestLoss {
				largestLoss = t.Pnl
			}
		}
	}

	total := float64(len(trades))

	var avgWin, avgLoss float64
	if winners > 0 {
		avgWin = grossProfit / float64(winners)
	}
	if losers > 0 {
		avgLoss = grossLoss / float64(losers)
	}

	profitFactor := 0.0
	switch {
	case grossLoss > 0:
		profitFactor = round(grossProfit/grossLoss, 2)
	case grossProfit > 0:
		profitFactor = profitFactorCap
	}

	daily := DailyPnL(trades, initialBalance)

	// totalPnlPercent is measured against totalVolume x 0.1 as a rough
	// margin-used proxy, not against initialBalance. Existing dashboards
	// expect this base.
	capitalBase := math.Max(totalVolume*0.1, 1)

	return domain.PortfolioStats{
		TotalPnl:         round(totalPnl, 2),
		TotalPnlPercent:  round(totalPnl/capitalBase*100, 2),
		WinRate:          round(float64(winners)/total*100, 1),
		TotalTrades:      len(trades),
		WinningTrades:    winners,
		LosingTrades:     losers,
		AvgWin:           round(avgWin, 2),
		AvgLoss:          round(avgLoss, 2),
		LargestWin:       round(largestWin, 2),
		LargestLoss:      round(largestLoss, 2),
		AvgTradeDuration: round(totalDuration/total, 0),
		TotalVolume:      round(totalVolume, 2),
		TotalFees:        round(totalFees, 2),
		LongRatio:        round(float64(longs)/total*100, 1),
		ShortRatio:       round(float64(len(trades)-longs)/total*100, 1),
		ProfitFactor:     profitFactor,
		SharpeRatio:      round(SharpeRatio(daily), 2),
		MaxDrawdown:      round(MaxDrawdown(daily), 2),
	}
}

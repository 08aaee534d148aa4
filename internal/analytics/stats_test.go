package analytics

import (
	"testing"
	"time"

	"github.com/thisisbigmike/deriversedashboard/internal/domain"
)

func TestPortfolioStatsEmptyInput(t *testing.T) {
	for _, balance := range []float64{0, 1000, -50} {
		stats := PortfolioStats(nil, balance)
		if stats != (domain.PortfolioStats{}) {
			t.Fatalf("balance %v: expected all-zero stats, got %+v", balance, stats)
		}
	}
}

func TestPortfolioStatsTwoTradesOneDay(t *testing.T) {
	trades := []domain.Trade{
		{
			Symbol: "SOL/USDC", Side: domain.TradeSideLong, Pnl: 100,
			EntryTime: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			Symbol: "SOL/USDC", Side: domain.TradeSideShort, Pnl: -40,
			EntryTime: time.Date(2024, 1, 1, 14, 0, 0, 0, time.UTC),
		},
	}

	stats := PortfolioStats(trades, 1000)

	if stats.TotalTrades != 2 {
		t.Fatalf("expected 2 trades, got %d", stats.TotalTrades)
	}
	if stats.TotalPnl != 60 {
		t.Fatalf("expected total pnl 60, got %f", stats.TotalPnl)
	}
	if stats.WinRate != 50 {
		t.Fatalf("expected win rate 50, got %f", stats.WinRate)
	}
	if stats.WinningTrades != 1 || stats.LosingTrades != 1 {
		t.Fatalf("unexpected partition %d/%d", stats.WinningTrades, stats.LosingTrades)
	}
	if stats.LongRatio != 50 || stats.ShortRatio != 50 {
		t.Fatalf("unexpected side ratios %f/%f", stats.LongRatio, stats.ShortRatio)
	}
	if stats.MaxDrawdown != 0 {
		t.Fatalf("equity never dipped, expected zero drawdown, got %f", stats.MaxDrawdown)
	}
}

func TestPortfolioStatsProfitFactorSentinel(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	onlyWinners := []domain.Trade{
		{Pnl: 50, EntryTime: now},
		{Pnl: 30, EntryTime: now.Add(time.Hour)},
	}

	stats := PortfolioStats(onlyWinners, 1000)
	if stats.ProfitFactor != profitFactorCap {
		t.Fatalf("expected sentinel %d, got %f", profitFactorCap, stats.ProfitFactor)
	}

	breakEven := []domain.Trade{{Pnl: 0, EntryTime: now}}
	stats = PortfolioStats(breakEven, 1000)
	if stats.ProfitFactor != 0 {
		t.Fatalf("no profit and no loss should yield 0, got %f", stats.ProfitFactor)
	}
}

func TestPortfolioStatsZeroPnlTradesCountTowardTotalsOnly(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	trades := []domain.Trade{
		{Pnl: 20, EntryTime: now},
		{Pnl: 0, EntryTime: now.Add(time.Hour)},
		{Pnl: -10, EntryTime: now.Add(2 * time.Hour)},
	}

	stats := PortfolioStats(trades, 1000)

	if stats.TotalTrades != 3 {
		t.Fatalf("expected 3 trades, got %d", stats.TotalTrades)
	}
	if stats.WinningTrades+stats.LosingTrades != 2 {
		t.Fatalf("zero-pnl trade must join neither bucket: %d/%d", stats.WinningTrades, stats.LosingTrades)
	}
}

func TestPortfolioStatsAverages(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	trades := []domain.Trade{
		{Pnl: 100, Duration: 60, Notional: 1000, TotalFees: 1.5, EntryTime: now},
		{Pnl: 50, Duration: 120, Notional: 500, TotalFees: 0.75, EntryTime: now.Add(time.Hour)},
		{Pnl: -30, Duration: 90, Notional: 300, TotalFees: 0.45, EntryTime: now.Add(2 * time.Hour)},
	}

	stats := PortfolioStats(trades, 1000)

	if stats.AvgWin != 75 {
		t.Fatalf("expected avg win 75, got %f", stats.AvgWin)
	}
	if stats.AvgLoss != 30 {
		t.Fatalf("expected avg loss 30, got %f", stats.AvgLoss)
	}
	if stats.LargestWin != 100 || stats.LargestLoss != -30 {
		t.Fatalf("unexpected extremes %f/%f", stats.LargestWin, stats.LargestLoss)
	}
	if stats.AvgTradeDuration != 90 {
		t.Fatalf("expected avg duration 90, got %f", stats.AvgTradeDuration)
	}
	if stats.TotalVolume != 1800 {
		t.Fatalf("expected volume 1800, got %f", stats.TotalVolume)
	}
	if stats.TotalFees != 2.7 {
		t.Fatalf("expected fees 2.7, got %f", stats.TotalFees)
	}
	// pnl 120 against capital base 1800 x 0.1 = 180
	if stats.TotalPnlPercent != 66.67 {
		t.Fatalf("expected pnl percent 66.67, got %f", stats.TotalPnlPercent)
	}
}

package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/thisisbigmike/deriversedashboard/internal/analytics"
	"github.com/thisisbigmike/deriversedashboard/internal/domain"
)

func TestBuildDashboardDerivesBaseline(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	trades := []domain.Trade{
		{ID: "a", Symbol: "SOL/USDC", Side: domain.TradeSideLong, Pnl: 100, EntryTime: now.AddDate(0, 0, -2)},
		{ID: "b", Symbol: "SOL/USDC", Side: domain.TradeSideShort, Pnl: -40, EntryTime: now.AddDate(0, 0, -1)},
	}

	dash := BuildDashboard(trades, 1060, now)

	// equity 1060 minus period pnl 60
	if dash.InitialBalance != 1000 {
		t.Fatalf("expected initial balance 1000, got %f", dash.InitialBalance)
	}
	if dash.TradeCount != 2 {
		t.Fatalf("expected 2 trades, got %d", dash.TradeCount)
	}
	if dash.Stats.TotalPnl != 60 {
		t.Fatalf("expected total pnl 60, got %f", dash.Stats.TotalPnl)
	}
	if len(dash.DailyPnl) != 2 {
		t.Fatalf("expected 2 daily entries, got %d", len(dash.DailyPnl))
	}
	if last := dash.DailyPnl[len(dash.DailyPnl)-1]; last.CumulativePnl != 60 {
		t.Fatalf("expected final cumulative 60, got %f", last.CumulativePnl)
	}
}

func TestBuildDashboardZeroEquity(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	trades := []domain.Trade{{ID: "a", Pnl: 50, EntryTime: now.AddDate(0, 0, -1)}}

	dash := BuildDashboard(trades, 0, now)

	if dash.InitialBalance != 0 {
		t.Fatalf("no equity supplied, baseline should be 0, got %f", dash.InitialBalance)
	}
}

func TestBuildDashboardEmpty(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	dash := BuildDashboard(nil, 1000, now)

	if dash.Stats != (domain.PortfolioStats{}) {
		t.Fatalf("expected all-zero stats, got %+v", dash.Stats)
	}
	if len(dash.DailyPnl) != 0 || len(dash.Volume) != 0 || len(dash.Heatmap) != 0 || len(dash.Symbols) != 0 {
		t.Fatal("expected empty series for empty trade set")
	}
}

func TestDashboardAppliesFilter(t *testing.T) {
	repo := newFakeTradeRepo()
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	seed := []domain.Trade{
		{ID: "sol", OwnerID: "o1", Symbol: "SOL/USDC", Pnl: 30, EntryTime: now.AddDate(0, 0, -5)},
		{ID: "btc", OwnerID: "o1", Symbol: "BTC/USDC", Pnl: 90, EntryTime: now.AddDate(0, 0, -5)},
		{ID: "stale", OwnerID: "o1", Symbol: "SOL/USDC", Pnl: 500, EntryTime: now.AddDate(-2, 0, 0)},
	}
	if err := repo.UpsertTrades(context.Background(), seed); err != nil {
		t.Fatalf("seed: %v", err)
	}

	svc, err := NewAnalyticsService(repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	svc.now = func() time.Time { return now }

	filter := analytics.Filter{Symbol: "SOL/USDC", OrderType: analytics.FilterAll, Side: analytics.FilterAll, Timeframe: analytics.Timeframe30D}
	dash, err := svc.Dashboard(context.Background(), "o1", filter, 0, 0)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}

	if dash.TradeCount != 1 {
		t.Fatalf("expected 1 filtered trade, got %d", dash.TradeCount)
	}
	if dash.Stats.TotalPnl != 30 {
		t.Fatalf("expected filtered pnl 30, got %f", dash.Stats.TotalPnl)
	}
}

package analytics

import (
	"testing"
	"time"

	"github.com/thisisbigmike/deriversedashboard/internal/domain"
)

func TestFilterPassThrough(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	trades := []domain.Trade{
		{Symbol: "SOL/USDC", Side: domain.TradeSideLong, OrderType: domain.OrderTypeMarket, EntryTime: now.AddDate(0, 0, -1)},
		{Symbol: "BTC/USDC", Side: domain.TradeSideShort, OrderType: domain.OrderTypeLimit, EntryTime: now.AddDate(0, 0, -2)},
	}

	got := DefaultFilter().Apply(trades, now)
	if len(got) != 2 {
		t.Fatalf("default filter should pass everything recent, got %d", len(got))
	}
}

func TestFilterBySymbolSideAndOrderType(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	trades := []domain.Trade{
		{Symbol: "SOL/USDC", Side: domain.TradeSideLong, OrderType: domain.OrderTypeMarket, EntryTime: now.AddDate(0, 0, -1)},
		{Symbol: "SOL/USDC", Side: domain.TradeSideShort, OrderType: domain.OrderTypeLimit, EntryTime: now.AddDate(0, 0, -1)},
		{Symbol: "BTC/USDC", Side: domain.TradeSideLong, OrderType: domain.OrderTypeMarket, EntryTime: now.AddDate(0, 0, -1)},
	}

	f := Filter{Symbol: "SOL/USDC", OrderType: FilterAll, Side: FilterAll, Timeframe: Timeframe30D}
	if got := f.Apply(trades, now); len(got) != 2 {
		t.Fatalf("symbol filter: expected 2 trades, got %d", len(got))
	}

	f.Side = string(domain.TradeSideLong)
	if got := f.Apply(trades, now); len(got) != 1 {
		t.Fatalf("symbol+side filter: expected 1 trade, got %d", len(got))
	}

	f = Filter{Symbol: FilterAll, OrderType: string(domain.OrderTypeLimit), Side: FilterAll, Timeframe: Timeframe30D}
	if got := f.Apply(trades, now); len(got) != 1 || got[0].OrderType != domain.OrderTypeLimit {
		t.Fatalf("order type filter: unexpected result %+v", got)
	}
}

func TestFilterTimeframeCutoff(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	trades := []domain.Trade{
		{Symbol: "SOL/USDC", EntryTime: now.AddDate(0, 0, -3)},
		{Symbol: "SOL/USDC", EntryTime: now.AddDate(0, 0, -20)},
		{Symbol: "SOL/USDC", EntryTime: now.AddDate(0, 0, -120)},
	}

	f := Filter{Symbol: FilterAll, OrderType: FilterAll, Side: FilterAll, Timeframe: Timeframe7D}
	if got := f.Apply(trades, now); len(got) != 1 {
		t.Fatalf("7D: expected 1 trade, got %d", len(got))
	}

	f.Timeframe = Timeframe30D
	if got := f.Apply(trades, now); len(got) != 2 {
		t.Fatalf("30D: expected 2 trades, got %d", len(got))
	}

	f.Timeframe = TimeframeAll
	if got := f.Apply(trades, now); len(got) != 3 {
		t.Fatalf("ALL: expected 3 trades, got %d", len(got))
	}
}

func TestTimeframeDaysFallback(t *testing.T) {
	if Timeframe("bogus").Days() != TimeframeAll.Days() {
		t.Fatal("unknown timeframe should behave as ALL")
	}
}

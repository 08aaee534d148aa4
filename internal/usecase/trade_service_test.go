package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/thisisbigmike/deriversedashboard/internal/domain"
)

type fakeTradeRepo struct {
	trades map[string]domain.Trade
}

func newFakeTradeRepo() *fakeTradeRepo {
	return &fakeTradeRepo{trades: make(map[string]domain.Trade)}
}

func (r *fakeTradeRepo) UpsertTrades(_ context.Context, trades []domain.Trade) error {
	for _, t := range trades {
		r.trades[t.ID] = t
	}
	return nil
}

func (r *fakeTradeRepo) GetTrade(_ context.Context, ownerID, tradeID string) (domain.Trade, error) {
	t, ok := r.trades[tradeID]
	if !ok || t.OwnerID != ownerID {
		return domain.Trade{}, errors.New("trade not found")
	}
	return t, nil
}

func (r *fakeTradeRepo) ListTrades(_ context.Context, ownerID string, limit int) ([]domain.Trade, error) {
	out := make([]domain.Trade, 0, len(r.trades))
	for _, t := range r.trades {
		if t.OwnerID != ownerID {
			continue
		}
		out = append(out, t)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func TestMergeTradesLiveOverridesStored(t *testing.T) {
	now := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)

	stored := []domain.Trade{
		{ID: "a", Pnl: 10, EntryTime: now.Add(-2 * time.Hour)},
		{ID: "b", Pnl: -5, EntryTime: now.Add(-3 * time.Hour)},
	}
	live := []domain.Trade{
		{ID: "a", Pnl: 12, EntryTime: now.Add(-2 * time.Hour)}, // corrected pnl
		{ID: "c", Pnl: 7, EntryTime: now.Add(-1 * time.Hour)},
	}

	merged := MergeTrades(live, stored)

	if len(merged) != 3 {
		t.Fatalf("expected 3 merged trades, got %d", len(merged))
	}
	for _, tr := range merged {
		if tr.ID == "a" && tr.Pnl != 12 {
			t.Fatalf("live record should override stored, got pnl %f", tr.Pnl)
		}
	}
	// newest first
	if merged[0].ID != "c" || merged[2].ID != "b" {
		t.Fatalf("merge not sorted by entry time desc: %v %v %v", merged[0].ID, merged[1].ID, merged[2].ID)
	}
}

func TestMergeTradesPreservesStoredOnly(t *testing.T) {
	now := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)

	stored := []domain.Trade{{ID: "old-closed", EntryTime: now.AddDate(0, -2, 0)}}
	merged := MergeTrades(nil, stored)

	if len(merged) != 1 || merged[0].ID != "old-closed" {
		t.Fatalf("stored-only trade should be preserved, got %+v", merged)
	}
}

func TestSaveTradesNormalizes(t *testing.T) {
	repo := newFakeTradeRepo()
	svc, err := NewTradeService(repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entry := time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)
	trades := []domain.Trade{{
		ID:         "t1",
		Symbol:     "SOL/USDC",
		Size:       2,
		EntryPrice: 150,
		EntryTime:  entry,
		ExitTime:   entry.Add(90 * time.Minute),
		TakerFee:   0.15,
		TotalFees:  42, // wrong on purpose, must be recomputed
	}}

	count, err := svc.SaveTrades(context.Background(), "owner-1", trades)
	if err != nil {
		t.Fatalf("save trades: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 trade saved, got %d", count)
	}

	saved := repo.trades["t1"]
	if saved.OwnerID != "owner-1" {
		t.Fatalf("owner not stamped: %q", saved.OwnerID)
	}
	if saved.Notional != 300 {
		t.Fatalf("expected notional 300, got %f", saved.Notional)
	}
	if saved.Duration != 90 {
		t.Fatalf("expected duration 90, got %f", saved.Duration)
	}
	if saved.TotalFees != 0.15 {
		t.Fatalf("total fees must be the sum of fee fields, got %f", saved.TotalFees)
	}
}

func TestSaveTradesRejectsMissingID(t *testing.T) {
	svc, _ := NewTradeService(newFakeTradeRepo())

	_, err := svc.SaveTrades(context.Background(), "owner-1", []domain.Trade{{Symbol: "SOL/USDC"}})
	if err == nil {
		t.Fatal("expected error for trade without id")
	}
}

func TestNewTradeServiceRequiresRepo(t *testing.T) {
	if _, err := NewTradeService(nil); err == nil {
		t.Fatal("expected error for nil repository")
	}
}

package demo

import (
	"math"
	"testing"
	"time"
)

func TestGenerateTradesDeterministic(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	a := GenerateTrades(30, now, 42)
	b := GenerateTrades(30, now, 42)

	if len(a) == 0 {
		t.Fatal("expected generated trades")
	}
	if len(a) != len(b) {
		t.Fatalf("same seed produced different counts: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].Pnl != b[i].Pnl {
			t.Fatalf("same seed diverged at index %d", i)
		}
	}
}

func TestGeneratedTradesHoldFeeInvariants(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	for _, tr := range GenerateTrades(60, now, 7) {
		if tr.MakerFee != 0 && tr.TakerFee != 0 {
			t.Fatalf("trade %s has both maker and taker fees", tr.ID)
		}
		sum := tr.MakerFee + tr.TakerFee + tr.FundingFee
		if math.Abs(tr.TotalFees-sum) > 1e-6 {
			t.Fatalf("trade %s: total fees %f != component sum %f", tr.ID, tr.TotalFees, sum)
		}
		if !tr.ExitTime.After(tr.EntryTime) {
			t.Fatalf("trade %s exit not after entry", tr.ID)
		}
	}
}

func TestGenerateTradesNewestFirst(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	trades := GenerateTrades(10, now, 1)
	for i := 1; i < len(trades); i++ {
		if trades[i].EntryTime.After(trades[i-1].EntryTime) {
			t.Fatalf("trades not sorted newest first at index %d", i)
		}
	}
}

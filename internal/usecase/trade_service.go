package usecase

import (
	"context"
	"errors"
	"sort"

	"github.com/thisisbigmike/deriversedashboard/internal/analytics"
	"github.com/thisisbigmike/deriversedashboard/internal/domain"
)

const defaultTradeLimit = 1000

type TradeService struct {
	tradeRepo domain.TradeRepository
}

func NewTradeService(tradeRepo domain.TradeRepository) (*TradeService, error) {
	if tradeRepo == nil {
		return nil, errors.New("trade repository required")
	}
	return &TradeService{tradeRepo: tradeRepo}, nil
}

// SaveTrades reconciles an incoming batch against the stored history and
// persists the merged set. Incoming records are the live source: they
// override stored records sharing the same id, while stored-only records
// (e.g. old closed trades no longer visible upstream) are preserved.
func (s *TradeService) SaveTrades(ctx context.Context, ownerID string, incoming []domain.Trade) (int, error) {
	if ownerID == "" {
		return 0, errors.New("owner id required")
	}
	if len(incoming) == 0 {
		return 0, errors.New("trades required")
	}

	normalized := make([]domain.Trade, 0, len(incoming))
	for _, t := range incoming {
		if t.ID == "" {
			return 0, errors.New("trade id required")
		}
		normalized = append(normalized, normalizeTrade(ownerID, t))
	}

	stored, err := s.tradeRepo.ListTrades(ctx, ownerID, 0)
	if err != nil {
		return 0, err
	}

	merged := MergeTrades(normalized, stored)
	if err := s.tradeRepo.UpsertTrades(ctx, merged); err != nil {
		return 0, err
	}

	return len(merged), nil
}

func (s *TradeService) ListTrades(ctx context.Context, ownerID string, limit int) ([]domain.Trade, error) {
	if ownerID == "" {
		return nil, errors.New("owner id required")
	}
	if limit <= 0 {
		limit = defaultTradeLimit
	}
	return s.tradeRepo.ListTrades(ctx, ownerID, limit)
}

// MergeTrades deduplicates live and stored trade sets by id. Live records
// win; stored-only records survive. The result is sorted by entry time
// descending (newest first).
func MergeTrades(live, stored []domain.Trade) []domain.Trade {
	merged := make(map[string]domain.Trade, len(live)+len(stored))
	for _, t := range stored {
		merged[t.ID] = t
	}
	for _, t := range live {
		merged[t.ID] = t
	}

	out := make([]domain.Trade, 0, len(merged))
	for _, t := range merged {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].EntryTime.Equal(out[j].EntryTime) {
			return out[i].EntryTime.After(out[j].EntryTime)
		}
		return out[i].ID < out[j].ID
	})

	return out
}

// normalizeTrade fills derivable fields the client may omit. TotalFees is
// always recomputed from the three fee fields so the invariant holds no
// matter what the payload claimed.
func normalizeTrade(ownerID string, t domain.Trade) domain.Trade {
	t.OwnerID = ownerID

	if t.Notional == 0 {
		t.Notional = analytics.Notional(t.Size, t.EntryPrice)
	}
	if t.Duration == 0 && t.ExitTime.After(t.EntryTime) {
		t.Duration = t.ExitTime.Sub(t.EntryTime).Minutes()
	}
	t.TotalFees = t.MakerFee + t.TakerFee + t.FundingFee

	return t
}

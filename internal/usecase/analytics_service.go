package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/thisisbigmike/deriversedashboard/internal/analytics"
	"github.com/thisisbigmike/deriversedashboard/internal/domain"
)

// AnalyticsService loads an owner's trade history and runs the pure
// analytics pipeline over it. All computation happens in the analytics
// package; this service only supplies the inputs (trades, filter,
// baseline) and bundles the outputs.
type AnalyticsService struct {
	tradeRepo domain.TradeRepository
	now       func() time.Time
}

func NewAnalyticsService(tradeRepo domain.TradeRepository) (*AnalyticsService, error) {
	if tradeRepo == nil {
		return nil, errors.New("trade repository required")
	}
	return &AnalyticsService{
		tradeRepo: tradeRepo,
		now:       time.Now,
	}, nil
}

// Dashboard computes every display projection over the owner's filtered
// trades. equity is the caller-supplied current account equity; the
// initial-balance baseline is derived as equity minus the filtered
// period's total pnl, so the equity curve ends at the reported equity.
func (s *AnalyticsService) Dashboard(ctx context.Context, ownerID string, filter analytics.Filter, equity float64, limit int) (domain.Dashboard, error) {
	if ownerID == "" {
		return domain.Dashboard{}, errors.New("owner id required")
	}
	if limit <= 0 {
		limit = defaultTradeLimit
	}

	trades, err := s.tradeRepo.ListTrades(ctx, ownerID, limit)
	if err != nil {
		return domain.Dashboard{}, err
	}

	now := s.now().UTC()
	return BuildDashboard(filter.Apply(trades, now), equity, now), nil
}

// BuildDashboard runs the analytics pipeline over an already-filtered
// trade set. Exposed so demo data and tests can feed trades directly.
func BuildDashboard(filtered []domain.Trade, equity float64, now time.Time) domain.Dashboard {
	var periodPnl float64
	for _, t := range filtered {
		periodPnl += t.Pnl
	}

	initialBalance := 0.0
	if equity > 0 {
		initialBalance = equity - periodPnl
	}

	return domain.Dashboard{
		AsOf:           now,
		InitialBalance: initialBalance,
		TradeCount:     len(filtered),
		Stats:          analytics.PortfolioStats(filtered, initialBalance),
		DailyPnl:       analytics.DailyPnL(filtered, initialBalance),
		Fees:           analytics.FeeBreakdown(filtered),
		Volume:         analytics.VolumeData(filtered),
		Heatmap:        analytics.HeatmapData(filtered),
		Symbols:        analytics.SymbolStats(filtered),
	}
}

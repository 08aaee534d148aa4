// Package demo produces synthetic trade history for guest sessions and
// test fixtures. Trades are generated through the real fee model so all
// fee invariants hold on demo data too.
package demo

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/thisisbigmike/deriversedashboard/internal/analytics"
	"github.com/thisisbigmike/deriversedashboard/internal/domain"
)

var (
	symbols = []string{"SOL/USDC", "BTC/USDC", "ETH/USDC"}

	// Weighted toward perps, matching the venue's real mix.
	marketTypes = []domain.MarketType{
		domain.MarketTypePerp,
		domain.MarketTypePerp,
		domain.MarketTypePerp,
		domain.MarketTypeSpot,
	}

	orderTypes = []domain.OrderType{domain.OrderTypeMarket, domain.OrderTypeLimit, domain.OrderTypeStop}
	sides      = []domain.TradeSide{domain.TradeSideLong, domain.TradeSideShort}
	tags       = []string{"breakout", "reversal", "scalp", "swing", "news", "trend", "range"}
)

// GenerateTrades returns the given number of days of synthetic history
// ending at now, newest first. The same seed yields the same history.
func GenerateTrades(days int, now time.Time, seed int64) []domain.Trade {
	rng := rand.New(rand.NewSource(seed))

	var trades []domain.Trade
	id := 1
	for d := days; d >= 0; d-- {
		day := now.UTC().AddDate(0, 0, -d)
		perDay := 2 + rng.Intn(6)
		for i := 0; i < perDay; i++ {
			trades = append(trades, generateTrade(rng, id, day))
			id++
		}
	}

	sort.Slice(trades, func(i, j int) bool {
		return trades[i].EntryTime.After(trades[j].EntryTime)
	})

	return trades
}

func generateTrade(rng *rand.Rand, id int, day time.Time) domain.Trade {
	symbol := symbols[rng.Intn(len(symbols))]
	side := sides[rng.Intn(len(sides))]
	orderType := orderTypes[rng.Intn(len(orderTypes))]
	entryPrice := basePrice(rng, symbol)

	// Slight negative skew: roughly 45% winners.
	direction := -1.0
	if rng.Float64() < 0.45 {
		direction = 1.0
	}
	move := between(rng, 0.002, 0.06) * entryPrice * direction

	exitPrice := entryPrice + move
	if side == domain.TradeSideShort {
		exitPrice = entryPrice - move
	}

	size := positionSize(rng, symbol)
	notional := analytics.Notional(size, entryPrice)

	sign := 1.0
	if side == domain.TradeSideShort {
		sign = -1.0
	}
	pnl := (exitPrice - entryPrice) * size * sign
	pnlPercent := (exitPrice - entryPrice) / entryPrice * 100 * sign

	entryTime := time.Date(day.Year(), day.Month(), day.Day(), rng.Intn(24), rng.Intn(60), 0, 0, time.UTC)
	duration := float64(5 + rng.Intn(715)) // 5 minutes to ~12 hours
	exitTime := entryTime.Add(time.Duration(duration) * time.Minute)

	fees := analytics.TotalFees(size, entryPrice, orderType, duration, analytics.DefaultFundingRate)

	t := domain.Trade{
		ID:         fmt.Sprintf("demo-%d", id),
		Symbol:     symbol,
		Side:       side,
		MarketType: marketTypes[rng.Intn(len(marketTypes))],
		OrderType:  orderType,
		EntryPrice: round2(entryPrice),
		ExitPrice:  round2(exitPrice),
		Size:       round4(size),
		Notional:   round2(notional),
		Pnl:        round2(pnl),
		PnlPercent: round2(pnlPercent),
		EntryTime:  entryTime,
		ExitTime:   exitTime,
		Duration:   duration,
		MakerFee:   fees.Maker,
		TakerFee:   fees.Taker,
		FundingFee: fees.Funding,
		TotalFees:  fees.Total,
	}

	if rng.Float64() > 0.5 {
		t.Tags = []string{tags[rng.Intn(len(tags))]}
	}

	return t
}

func basePrice(rng *rand.Rand, symbol string) float64 {
	switch {
	case symbol == "BTC/USDC":
		return between(rng, 45000, 55000)
	case symbol == "ETH/USDC":
		return between(rng, 2800, 3500)
	default:
		return between(rng, 120, 180)
	}
}

func positionSize(rng *rand.Rand, symbol string) float64 {
	switch {
	case symbol == "BTC/USDC":
		return between(rng, 0.01, 0.5)
	case symbol == "ETH/USDC":
		return between(rng, 0.1, 5)
	default:
		return between(rng, 1, 50)
	}
}

func between(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }

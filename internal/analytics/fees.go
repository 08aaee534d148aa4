// Package analytics is the pure computation core of the dashboard: fee
// model, metric primitives, portfolio aggregation and trade filtering.
// Every function is a side-effect-free transformation of its inputs; no
// I/O, no shared state, no caching. Numeric edge cases return 0 or a
// documented sentinel, never NaN or Inf.
package analytics

import (
	"math"

	"github.com/thisisbigmike/deriversedashboard/internal/domain"
)

// Deriverse fee schedule. The taker rate is a governance parameter; the
// maker rebate ratio is hardcoded at launch. Maker fees are negative: the
// trader is paid for providing liquidity.
const (
	TakerFeeRate       = 0.0005 // 5 bps of notional
	MakerRebateRatio   = 0.125  // maker rebate as a share of the taker fee
	MakerFeeRate       = -(TakerFeeRate * MakerRebateRatio)
	DefaultFundingRate = 0.0001 // per 8-hour interval

	// FundingIntervalMinutes is the length of one funding window.
	// Partial intervals do not accrue funding.
	FundingIntervalMinutes = 480
)

// FeeAmounts is the per-trade fee breakdown produced by TotalFees.
// Maker and Taker are mutually exclusive; Total is always the sum of the
// other three fields.
type FeeAmounts struct {
	Maker   float64
	Taker   float64
	Funding float64
	Total   float64
}

// Notional returns the gross economic exposure of a trade.
func Notional(size, price float64) float64 {
	return size * price
}

// TakerFee applies to MARKET and STOP orders. Non-positive size or price
// yields a zero fee.
func TakerFee(size, price float64) float64 {
	if size <= 0 || price <= 0 {
		return 0
	}
	return round(Notional(size, price)*TakerFeeRate, 6)
}

// MakerFee applies to LIMIT orders and is negative (a rebate).
func MakerFee(size, price float64) float64 {
	if size <= 0 || price <= 0 {
		return 0
	}
	return round(Notional(size, price)*MakerFeeRate, 6)
}

// FundingFee accrues per completed 8-hour interval the position was held.
func FundingFee(size, price, rate float64, intervals int) float64 {
	if size <= 0 || price <= 0 || intervals <= 0 {
		return 0
	}
	return round(Notional(size, price)*rate*float64(intervals), 6)
}

// FundingIntervals returns the number of completed funding windows within
// a holding duration expressed in minutes.
func FundingIntervals(durationMinutes float64) int {
	if durationMinutes < FundingIntervalMinutes {
		return 0
	}
	return int(math.Floor(durationMinutes / FundingIntervalMinutes))
}

// TotalFees classifies the order and returns the full fee breakdown.
// MARKET and STOP orders pay the taker fee, LIMIT orders earn the maker
// rebate; funding is added regardless of classification once at least one
// full interval has elapsed.
func TotalFees(size, price float64, orderType domain.OrderType, durationMinutes, fundingRate float64) FeeAmounts {
	isTaker := orderType == domain.OrderTypeMarket || orderType == domain.OrderTypeStop

	var fees FeeAmounts
	if isTaker {
		fees.Taker = TakerFee(size, price)
	} else {
		fees.Maker = MakerFee(size, price)
	}

	if intervals := FundingIntervals(durationMinutes); intervals > 0 {
		fees.Funding = FundingFee(size, price, fundingRate, intervals)
	}

	fees.Total = round(fees.Maker+fees.Taker+fees.Funding, 6)
	return fees
}

package domain

import "time"

type TradeSide string

const (
	TradeSideLong  TradeSide = "LONG"
	TradeSideShort TradeSide = "SHORT"
)

type OrderType string

const (
	OrderTypeMarket OrderType = "MARKET"
	OrderTypeLimit  OrderType = "LIMIT"
	OrderTypeStop   OrderType = "STOP"
)

type MarketType string

const (
	MarketTypePerp MarketType = "PERP"
	MarketTypeSpot MarketType = "SPOT"
)

// Trade is an immutable record of one completed (or still open) position.
// Exactly one of MakerFee/TakerFee is non-zero, decided by order type:
// MARKET and STOP consume liquidity (taker), LIMIT provides it (maker,
// negative fee = rebate). TotalFees is always the sum of the three fee
// fields and is never set independently.
type Trade struct {
	ID         string     `json:"id"`
	OwnerID    string     `json:"ownerId,omitempty"`
	Symbol     string     `json:"symbol"`
	Side       TradeSide  `json:"side"`
	MarketType MarketType `json:"marketType"`
	OrderType  OrderType  `json:"orderType"`
	EntryPrice float64    `json:"entryPrice"`
	ExitPrice  float64    `json:"exitPrice"`
	Size       float64    `json:"size"`
	Notional   float64    `json:"notional"`
	Pnl        float64    `json:"pnl"`
	PnlPercent float64    `json:"pnlPercent"`
	EntryTime  time.Time  `json:"entryTime"`
	ExitTime   time.Time  `json:"exitTime"`
	Duration   float64    `json:"duration"` // minutes
	MakerFee   float64    `json:"makerFee"`
	TakerFee   float64    `json:"takerFee"`
	FundingFee float64    `json:"fundingFee"`
	TotalFees  float64    `json:"totalFees"`
	Notes      string     `json:"notes,omitempty"`
	Tags       []string   `json:"tags,omitempty"`
	CreatedAt  time.Time  `json:"createdAt,omitempty"`
	UpdatedAt  time.Time  `json:"updatedAt,omitempty"`
}

package domain

import "time"

// DailyPnL is one entry per calendar date (UTC) with at least one trade.
// Derived fresh on every computation, never persisted.
type DailyPnL struct {
	Date          string  `json:"date"` // YYYY-MM-DD
	Pnl           float64 `json:"pnl"`
	CumulativePnl float64 `json:"cumulativePnl"`
	Drawdown      float64 `json:"drawdown"` // % below running peak equity
	Trades        int     `json:"trades"`
}

// PortfolioStats is a single aggregate snapshot over a trade set and an
// initial-balance baseline. Recomputed wholesale on each call.
type PortfolioStats struct {
	TotalPnl         float64 `json:"totalPnl"`
	TotalPnlPercent  float64 `json:"totalPnlPercent"`
	WinRate          float64 `json:"winRate"`
	TotalTrades      int     `json:"totalTrades"`
	WinningTrades    int     `json:"winningTrades"`
	LosingTrades     int     `json:"losingTrades"`
	AvgWin           float64 `json:"avgWin"`
	AvgLoss          float64 `json:"avgLoss"`
	LargestWin       float64 `json:"largestWin"`
	LargestLoss      float64 `json:"largestLoss"`
	AvgTradeDuration float64 `json:"avgTradeDuration"` // minutes
	TotalVolume      float64 `json:"totalVolume"`
	TotalFees        float64 `json:"totalFees"`
	LongRatio        float64 `json:"longRatio"`
	ShortRatio       float64 `json:"shortRatio"`
	ProfitFactor     float64 `json:"profitFactor"`
	SharpeRatio      float64 `json:"sharpeRatio"`
	MaxDrawdown      float64 `json:"maxDrawdown"`
}

// FeeBreakdown sums each fee type independently across a trade set.
type FeeBreakdown struct {
	Maker   float64 `json:"maker"`
	Taker   float64 `json:"taker"`
	Funding float64 `json:"funding"`
	Total   float64 `json:"total"`
}

// VolumeData is the summed notional and trade count for one entry date.
type VolumeData struct {
	Date   string  `json:"date"`
	Volume float64 `json:"volume"`
	Trades int     `json:"trades"`
}

// HeatmapData is one non-empty cell of the weekday-by-hour grid.
type HeatmapData struct {
	Hour      int     `json:"hour"`      // 0-23
	DayOfWeek int     `json:"dayOfWeek"` // 0 = Sunday
	Pnl       float64 `json:"pnl"`
	Trades    int     `json:"trades"`
}

// SymbolStats aggregates a trade set along the symbol dimension.
type SymbolStats struct {
	Symbol  string  `json:"symbol"`
	Trades  int     `json:"trades"`
	Pnl     float64 `json:"pnl"`
	WinRate float64 `json:"winRate"`
	Volume  float64 `json:"volume"`
}

// Dashboard bundles every display-ready projection computed over one
// filtered trade set. Plain data, safe to serialize.
type Dashboard struct {
	AsOf           time.Time      `json:"asOf"`
	InitialBalance float64        `json:"initialBalance"`
	TradeCount     int            `json:"tradeCount"`
	Stats          PortfolioStats `json:"stats"`
	DailyPnl       []DailyPnL     `json:"dailyPnl"`
	Fees           FeeBreakdown   `json:"fees"`
	Volume         []VolumeData   `json:"volume"`
	Heatmap        []HeatmapData  `json:"heatmap"`
	Symbols        []SymbolStats  `json:"symbols"`
}

package repository

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"github.com/thisisbigmike/deriversedashboard/internal/domain"
)

type TradeRecordModel struct {
	ID         int64          `gorm:"column:id"`
	OwnerID    string         `gorm:"column:owner_id;not null;uniqueIndex:idx_owner_trade"`
	TradeID    string         `gorm:"column:trade_id;not null;uniqueIndex:idx_owner_trade"`
	Symbol     string         `gorm:"column:symbol;not null;index"`
	Side       string         `gorm:"column:side;not null"`
	MarketType string         `gorm:"column:market_type"`
	OrderType  string         `gorm:"column:order_type;not null"`
	EntryPrice float64        `gorm:"column:entry_price"`
	ExitPrice  float64        `gorm:"column:exit_price"`
	Size       float64        `gorm:"column:size"`
	Notional   float64        `gorm:"column:notional"`
	Pnl        float64        `gorm:"column:pnl"`
	PnlPercent float64        `gorm:"column:pnl_percent"`
	EntryTime  time.Time      `gorm:"column:entry_time;index"`
	ExitTime   time.Time      `gorm:"column:exit_time"`
	Duration   float64        `gorm:"column:duration_minutes"`
	MakerFee   float64        `gorm:"column:maker_fee"`
	TakerFee   float64        `gorm:"column:taker_fee"`
	FundingFee float64        `gorm:"column:funding_fee"`
	TotalFees  float64        `gorm:"column:total_fees"`
	Notes      *string        `gorm:"column:notes"`
	Tags       datatypes.JSON `gorm:"column:tags"`
	CreatedAt  time.Time      `gorm:"column:created_at"`
	UpdatedAt  time.Time      `gorm:"column:updated_at"`
}

func (TradeRecordModel) TableName() string {
	return "trade_records"
}

func toTradeRecordModel(trade domain.Trade) TradeRecordModel {
	return TradeRecordModel{
		OwnerID:    trade.OwnerID,
		TradeID:    trade.ID,
		Symbol:     trade.Symbol,
		Side:       string(trade.Side),
		MarketType: string(trade.MarketType),
		OrderType:  string(trade.OrderType),
		EntryPrice: trade.EntryPrice,
		ExitPrice:  trade.ExitPrice,
		Size:       trade.Size,
		Notional:   trade.Notional,
		Pnl:        trade.Pnl,
		PnlPercent: trade.PnlPercent,
		EntryTime:  trade.EntryTime,
		ExitTime:   trade.ExitTime,
		Duration:   trade.Duration,
		MakerFee:   trade.MakerFee,
		TakerFee:   trade.TakerFee,
		FundingFee: trade.FundingFee,
		TotalFees:  trade.TotalFees,
		Notes:      stringPointerOrNil(trade.Notes),
		Tags:       tagsToJSON(trade.Tags),
	}
}

func (m TradeRecordModel) toDomain() domain.Trade {
	return domain.Trade{
		ID:         m.TradeID,
		OwnerID:    m.OwnerID,
		Symbol:     m.Symbol,
		Side:       domain.TradeSide(m.Side),
		MarketType: domain.MarketType(m.MarketType),
		OrderType:  domain.OrderType(m.OrderType),
		EntryPrice: m.EntryPrice,
		ExitPrice:  m.ExitPrice,
		Size:       m.Size,
		Notional:   m.Notional,
		Pnl:        m.Pnl,
		PnlPercent: m.PnlPercent,
		EntryTime:  m.EntryTime,
		ExitTime:   m.ExitTime,
		Duration:   m.Duration,
		MakerFee:   m.MakerFee,
		TakerFee:   m.TakerFee,
		FundingFee: m.FundingFee,
		TotalFees:  m.TotalFees,
		Notes:      stringValueOrEmpty(m.Notes),
		Tags:       tagsFromJSON(m.Tags),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

type JournalEntryModel struct {
	ID        int64          `gorm:"column:id"`
	EntryID   string         `gorm:"column:entry_id;not null;uniqueIndex"`
	OwnerID   string         `gorm:"column:owner_id;not null;uniqueIndex:idx_owner_journal_trade"`
	TradeID   string         `gorm:"column:trade_id;not null;uniqueIndex:idx_owner_journal_trade"`
	Note      string         `gorm:"column:note;not null"`
	Tags      datatypes.JSON `gorm:"column:tags"`
	Sentiment string         `gorm:"column:sentiment"`
	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
}

func (JournalEntryModel) TableName() string {
	return "journal_entries"
}

func toJournalEntryModel(entry domain.JournalEntry) JournalEntryModel {
	return JournalEntryModel{
		EntryID:   entry.ID,
		OwnerID:   entry.OwnerID,
		TradeID:   entry.TradeID,
		Note:      entry.Note,
		Tags:      tagsToJSON(entry.Tags),
		Sentiment: string(entry.Sentiment),
	}
}

func (m JournalEntryModel) toDomain() domain.JournalEntry {
	return domain.JournalEntry{
		ID:        m.EntryID,
		OwnerID:   m.OwnerID,
		TradeID:   m.TradeID,
		Note:      m.Note,
		Tags:      tagsFromJSON(m.Tags),
		Sentiment: domain.Sentiment(m.Sentiment),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func stringPointerOrNil(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func stringValueOrEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func tagsToJSON(tags []string) datatypes.JSON {
	if len(tags) == 0 {
		return datatypes.JSON([]byte("[]"))
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(raw)
}

func tagsFromJSON(data datatypes.JSON) []string {
	if len(data) == 0 {
		return nil
	}
	var tags []string
	if err := json.Unmarshal(data, &tags); err != nil {
		return nil
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}

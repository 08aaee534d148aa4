package domain

import "context"

// TradeRepository persists reconciled trade records per owner.
type TradeRepository interface {
	UpsertTrades(ctx context.Context, trades []Trade) error
	GetTrade(ctx context.Context, ownerID, tradeID string) (Trade, error)
	ListTrades(ctx context.Context, ownerID string, limit int) ([]Trade, error)
}

// JournalRepository persists trade annotations.
type JournalRepository interface {
	UpsertEntry(ctx context.Context, entry JournalEntry) error
	ListEntries(ctx context.Context, ownerID string, limit int) ([]JournalEntry, error)
	DeleteEntry(ctx context.Context, ownerID, entryID string) error
	DeleteEntryByTrade(ctx context.Context, ownerID, tradeID string) error
}

// QuoteFeed fetches market quotes from an external source.
type QuoteFeed interface {
	FetchQuotes(ctx context.Context) ([]Quote, error)
}

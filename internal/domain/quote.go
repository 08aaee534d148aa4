package domain

import "time"

// Quote is one market price snapshot from the external quote feed.
type Quote struct {
	Symbol           string    `json:"symbol"`
	Name             string    `json:"name"`
	Price            float64   `json:"price"`
	PercentChange24h float64   `json:"percentChange24h"`
	Volume24h        float64   `json:"volume24h"`
	LastUpdated      time.Time `json:"lastUpdated"`
}

// QuoteSnapshot is the cached quote set served to clients. Stale marks a
// snapshot that could not be refreshed and is being served from cache.
type QuoteSnapshot struct {
	Quotes    []Quote   `json:"quotes"`
	FetchedAt time.Time `json:"fetchedAt"`
	Stale     bool      `json:"stale"`
}

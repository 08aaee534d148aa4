package domain

import "time"

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// JournalEntry is a free-text annotation attached to a trade.
type JournalEntry struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId,omitempty"`
	TradeID   string    `json:"tradeId"`
	Note      string    `json:"note"`
	Tags      []string  `json:"tags,omitempty"`
	Sentiment Sentiment `json:"sentiment"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

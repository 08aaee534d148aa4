package httpclient

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/thisisbigmike/deriversedashboard/internal/domain"
)

// QuoteFeed pulls market quotes from an external ticker endpoint that
// returns a JSON array of quote rows.
type QuoteFeed struct {
	client  *resty.Client
	baseURL string
}

type rawQuote struct {
	Symbol           string  `json:"symbol"`
	Name             string  `json:"name"`
	Price            float64 `json:"price"`
	PercentChange24h float64 `json:"percent_change_24h"`
	Volume24h        float64 `json:"volume_24h"`
	LastUpdated      string  `json:"last_updated"`
}

func NewQuoteFeed(baseURL string, opts ...func(*resty.Client)) (*QuoteFeed, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, fmt.Errorf("baseURL is required")
	}

	client := resty.New().
		SetHeader("Accept", "application/json").
		SetTimeout(15 * time.Second)

	for _, opt := range opts {
		opt(client)
	}

	return &QuoteFeed{
		client:  client,
		baseURL: baseURL,
	}, nil
}

func (f *QuoteFeed) FetchQuotes(ctx context.Context) ([]domain.Quote, error) {
	var payload []rawQuote

	resp, err := f.client.R().
		SetContext(ctx).
		SetResult(&payload).
		Get(f.baseURL)
	if err != nil {
		return nil, fmt.Errorf("fetch quotes: %w", err)
	}

	if resp.StatusCode() >= 400 {
		return nil, fmt.Errorf("quote feed responded with status %d", resp.StatusCode())
	}

	quotes := make([]domain.Quote, 0, len(payload))
	for _, item := range payload {
		symbol := strings.TrimSpace(item.Symbol)
		if symbol == "" || item.Price <= 0 {
			// Skip malformed rows while allowing the rest through.
			continue
		}

		updated, err := time.Parse(time.RFC3339, item.LastUpdated)
		if err != nil {
			updated = time.Now().UTC()
		}

		quotes = append(quotes, domain.Quote{
			Symbol:           symbol,
			Name:             strings.TrimSpace(item.Name),
			Price:            item.Price,
			PercentChange24h: item.PercentChange24h,
			Volume24h:        item.Volume24h,
			LastUpdated:      updated.UTC(),
		})
	}

	return quotes, nil
}

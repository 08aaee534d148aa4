package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/thisisbigmike/deriversedashboard/internal/domain"
)

var ErrNoQuotes = errors.New("no quotes fetched")

// quoteMaxAge is how long a cached snapshot is served before a refresh is
// attempted on read. The scheduler normally refreshes well inside this
// window; the read path only refetches after an outage.
const quoteMaxAge = time.Minute

// QuoteService caches the latest quote snapshot from the external feed.
// When the feed is unavailable the last good snapshot is served marked
// stale instead of failing the request.
type QuoteService struct {
	feed domain.QuoteFeed
	now  func() time.Time

	mu       sync.RWMutex
	snapshot domain.QuoteSnapshot
}

func NewQuoteService(feed domain.QuoteFeed) (*QuoteService, error) {
	if feed == nil {
		return nil, errors.New("quote feed required")
	}
	return &QuoteService{
		feed: feed,
		now:  time.Now,
	}, nil
}

// Refresh fetches quotes from the feed and replaces the cached snapshot.
func (s *QuoteService) Refresh(ctx context.Context) (int, error) {
	quotes, err := s.feed.FetchQuotes(ctx)
	if err != nil {
		return 0, err
	}
	if len(quotes) == 0 {
		return 0, ErrNoQuotes
	}

	s.mu.Lock()
	s.snapshot = domain.QuoteSnapshot{
		Quotes:    quotes,
		FetchedAt: s.now().UTC(),
	}
	s.mu.Unlock()

	return len(quotes), nil
}

// Snapshot serves the cached quotes, refreshing first when the cache is
// empty or older than quoteMaxAge. A failed refresh falls back to the
// cached snapshot with Stale set.
func (s *QuoteService) Snapshot(ctx context.Context) (domain.QuoteSnapshot, error) {
	s.mu.RLock()
	cached := s.snapshot
	s.mu.RUnlock()

	if len(cached.Quotes) > 0 && s.now().UTC().Sub(cached.FetchedAt) < quoteMaxAge {
		return cached, nil
	}

	if _, err := s.Refresh(ctx); err != nil {
		if len(cached.Quotes) > 0 {
			cached.Stale = true
			return cached, nil
		}
		return domain.QuoteSnapshot{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot, nil
}

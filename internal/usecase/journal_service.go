package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/thisisbigmike/deriversedashboard/internal/domain"
)

type JournalService struct {
	journalRepo domain.JournalRepository
	tradeRepo   domain.TradeRepository
}

func NewJournalService(journalRepo domain.JournalRepository, tradeRepo domain.TradeRepository) (*JournalService, error) {
	if journalRepo == nil {
		return nil, errors.New("journal repository required")
	}
	if tradeRepo == nil {
		return nil, errors.New("trade repository required")
	}
	return &JournalService{
		journalRepo: journalRepo,
		tradeRepo:   tradeRepo,
	}, nil
}

// UpdateTradeNote attaches a note to a trade and keeps the journal in
// sync: a non-empty note upserts the trade's journal entry, an empty note
// removes it. Sentiment defaults from the trade's pnl sign.
func (s *JournalService) UpdateTradeNote(ctx context.Context, ownerID, tradeID, note string) (domain.JournalEntry, error) {
	if ownerID == "" {
		return domain.JournalEntry{}, errors.New("owner id required")
	}
	if tradeID == "" {
		return domain.JournalEntry{}, errors.New("trade id required")
	}

	trade, err := s.tradeRepo.GetTrade(ctx, ownerID, tradeID)
	if err != nil {
		return domain.JournalEntry{}, err
	}

	trade.Notes = note
	if err := s.tradeRepo.UpsertTrades(ctx, []domain.Trade{trade}); err != nil {
		return domain.JournalEntry{}, err
	}

	if strings.TrimSpace(note) == "" {
		if err := s.journalRepo.DeleteEntryByTrade(ctx, ownerID, tradeID); err != nil {
			return domain.JournalEntry{}, err
		}
		return domain.JournalEntry{}, nil
	}

	sentiment := domain.SentimentNegative
	if trade.Pnl >= 0 {
		sentiment = domain.SentimentPositive
	}

	entry := domain.JournalEntry{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		TradeID:   tradeID,
		Note:      note,
		Tags:      trade.Tags,
		Sentiment: sentiment,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.journalRepo.UpsertEntry(ctx, entry); err != nil {
		return domain.JournalEntry{}, err
	}

	return entry, nil
}

func (s *JournalService) ListEntries(ctx context.Context, ownerID string, limit int) ([]domain.JournalEntry, error) {
	if ownerID == "" {
		return nil, errors.New("owner id required")
	}
	if limit <= 0 {
		limit = 100
	}
	return s.journalRepo.ListEntries(ctx, ownerID, limit)
}

func (s *JournalService) DeleteEntry(ctx context.Context, ownerID, entryID string) error {
	if ownerID == "" {
		return errors.New("owner id required")
	}
	if entryID == "" {
		return errors.New("entry id required")
	}
	return s.journalRepo.DeleteEntry(ctx, ownerID, entryID)
}

package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/thisisbigmike/deriversedashboard/internal/domain"
)

type GormJournalRepository struct {
	db *gorm.DB
}

func NewGormJournalRepository(db *gorm.DB) (*GormJournalRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("db is required")
	}
	return &GormJournalRepository{db: db}, nil
}

// UpsertEntry keys on (owner_id, trade_id): one journal entry per trade,
// rewriting the note keeps the original entry id.
func (r *GormJournalRepository) UpsertEntry(ctx context.Context, entry domain.JournalEntry) error {
	model := toJournalEntryModel(entry)

	assignments := clause.Assignments(map[string]interface{}{
		"note":       gorm.Expr("EXCLUDED.note"),
		"tags":       gorm.Expr("EXCLUDED.tags"),
		"sentiment":  gorm.Expr("EXCLUDED.sentiment"),
		"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
	})

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_id"}, {Name: "trade_id"}},
			DoUpdates: assignments,
		}).
		Create(&model).Error
}

func (r *GormJournalRepository) ListEntries(ctx context.Context, ownerID string, limit int) ([]domain.JournalEntry, error) {
	var models []JournalEntryModel
	query := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	entries := make([]domain.JournalEntry, len(models))
	for i, model := range models {
		entries[i] = model.toDomain()
	}

	return entries, nil
}

func (r *GormJournalRepository) DeleteEntry(ctx context.Context, ownerID, entryID string) error {
	return r.db.WithContext(ctx).
		Where("owner_id = ? AND entry_id = ?", ownerID, entryID).
		Delete(&JournalEntryModel{}).Error
}

func (r *GormJournalRepository) DeleteEntryByTrade(ctx context.Context, ownerID, tradeID string) error {
	return r.db.WithContext(ctx).
		Where("owner_id = ? AND trade_id = ?", ownerID, tradeID).
		Delete(&JournalEntryModel{}).Error
}
